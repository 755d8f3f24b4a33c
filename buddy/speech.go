package buddy

import (
	"context"
	"fmt"
	"io"

	"github.com/openai/openai-go/v2"
)

const speechInstructions = "Responda de forma gentil, lembrando que você é um robo e vive em 2047, mas fale como um garato sapeca."

// Synthesizer requests spoken audio for a text from the speech provider,
// using a fixed voice and persona.
type Synthesizer struct {
	client *openai.Client
	model  openai.SpeechModel
}

// NewSynthesizer creates a speech bridge over the given OpenAI client.
func NewSynthesizer(client *openai.Client, model string) *Synthesizer {
	return &Synthesizer{client: client, model: openai.SpeechModel(model)}
}

// Synthesize returns the full audio clip for text. The whole clip is buffered
// in memory before returning.
func (s *Synthesizer) Synthesize(ctx context.Context, text string) ([]byte, error) {
	resp, err := s.client.Audio.Speech.New(ctx, openai.AudioSpeechNewParams{
		Model:        s.model,
		Voice:        openai.AudioSpeechNewParamsVoiceEcho,
		Input:        text,
		Instructions: openai.String(speechInstructions),
	})
	if err != nil {
		return nil, fmt.Errorf("speech synthesis failed: %w", err)
	}
	defer resp.Body.Close()

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading speech audio failed: %w", err)
	}
	return audio, nil
}
