package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portal/buddy"
	"portal/models"
)

type fakeResponder struct {
	resp models.BuddyResponse
	err  error
	got  models.BuddyRequest
}

func (f *fakeResponder) Respond(_ context.Context, req models.BuddyRequest) (models.BuddyResponse, error) {
	f.got = req
	if strings.TrimSpace(req.Message) == "" {
		return models.BuddyResponse{}, buddy.ErrEmptyMessage
	}
	return f.resp, f.err
}

type fakeSynthesizer struct {
	audio []byte
	err   error
	text  string
}

func (f *fakeSynthesizer) Synthesize(_ context.Context, text string) ([]byte, error) {
	f.text = text
	return f.audio, f.err
}

func newBuddyApp(responder *fakeResponder, synth *fakeSynthesizer) *fiber.App {
	h := NewBuddyHandler(responder, synth)
	app := fiber.New()
	app.Post("/api/buddy", h.HandleBuddy)
	app.Get("/api/buddy/speech", h.HandleSpeech)
	return app
}

func TestHandleBuddySuccess(t *testing.T) {
	audioURL := "/api/buddy/speech?text=ol%C3%A1"
	responder := &fakeResponder{resp: models.BuddyResponse{Response: "olá", AudioURL: &audioURL}}
	app := newBuddyApp(responder, &fakeSynthesizer{})

	req := httptest.NewRequest("POST", "/api/buddy", strings.NewReader(`{"message": "Oi", "voice_enabled": true}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body models.BuddyResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "olá", body.Response)
	require.NotNil(t, body.AudioURL)
	assert.Equal(t, audioURL, *body.AudioURL)

	assert.Equal(t, "Oi", responder.got.Message)
	assert.True(t, responder.got.VoiceEnabled)
}

func TestHandleBuddyOmitsAudioURL(t *testing.T) {
	responder := &fakeResponder{resp: models.BuddyResponse{Response: "olá"}}
	app := newBuddyApp(responder, &fakeSynthesizer{})

	req := httptest.NewRequest("POST", "/api/buddy", strings.NewReader(`{"message": "Oi"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)

	raw, _ := io.ReadAll(resp.Body)
	assert.NotContains(t, string(raw), "audio_url")
}

func TestHandleBuddyEmptyMessage(t *testing.T) {
	app := newBuddyApp(&fakeResponder{}, &fakeSynthesizer{})

	req := httptest.NewRequest("POST", "/api/buddy", strings.NewReader(`{"message": ""}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "Mensagem vazia")
}

func TestHandleBuddyProviderFailure(t *testing.T) {
	responder := &fakeResponder{err: errors.New("completion request failed: boom")}
	app := newBuddyApp(responder, &fakeSynthesizer{})

	req := httptest.NewRequest("POST", "/api/buddy", strings.NewReader(`{"message": "Oi"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 500, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "boom")
}

func TestHandleSpeechReturnsAudio(t *testing.T) {
	synth := &fakeSynthesizer{audio: []byte("mp3-bytes")}
	app := newBuddyApp(&fakeResponder{}, synth)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/buddy/speech?text=Ol%C3%A1", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "audio/mpeg", resp.Header.Get("Content-Type"))

	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, []byte("mp3-bytes"), body)
	assert.Equal(t, "Olá", synth.text)
}

func TestHandleSpeechSynthesisFailure(t *testing.T) {
	synth := &fakeSynthesizer{err: errors.New("speech synthesis failed: boom")}
	app := newBuddyApp(&fakeResponder{}, synth)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/buddy/speech?text=Oi", nil))
	require.NoError(t, err)
	assert.Equal(t, 500, resp.StatusCode)
}
