package handlers

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"portal/buddy"
	"portal/models"
)

// Responder produces the assistant's answer for one buddy request.
type Responder interface {
	Respond(ctx context.Context, req models.BuddyRequest) (models.BuddyResponse, error)
}

// SpeechSynthesizer produces an audio clip for a text.
type SpeechSynthesizer interface {
	Synthesize(ctx context.Context, text string) ([]byte, error)
}

// BuddyHandler serves the assistant and speech endpoints.
type BuddyHandler struct {
	assistant Responder
	speech    SpeechSynthesizer
}

func NewBuddyHandler(assistant Responder, speech SpeechSynthesizer) *BuddyHandler {
	return &BuddyHandler{assistant: assistant, speech: speech}
}

// HandleBuddy proxies one conversational request to the completion provider.
// POST /api/buddy
func (h *BuddyHandler) HandleBuddy(c *fiber.Ctx) error {
	var req models.BuddyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid request body."})
	}

	resp, err := h.assistant.Respond(c.Context(), req)
	if err != nil {
		if errors.Is(err, buddy.ErrEmptyMessage) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Mensagem vazia"})
		}
		log.Error().Err(err).Msg("buddy request failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": err.Error()})
	}
	return c.JSON(resp)
}

// HandleSpeech synthesizes audio for the text query value and returns the
// whole clip as an audio/mpeg byte stream.
// GET /api/buddy/speech?text=...
func (h *BuddyHandler) HandleSpeech(c *fiber.Ctx) error {
	audio, err := h.speech.Synthesize(c.Context(), c.Query("text"))
	if err != nil {
		log.Error().Err(err).Msg("speech synthesis failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": err.Error()})
	}

	c.Set(fiber.HeaderContentType, "audio/mpeg")
	return c.Send(audio)
}
