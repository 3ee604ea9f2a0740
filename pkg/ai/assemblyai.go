package ai

import (
	"bytes"
	"context"
	"fmt"
	"os"

	aai "github.com/AssemblyAI/assemblyai-go-sdk"

	"github.com/notetakerhq/meeting-notes-api/pkg/config"
)

// AssemblyAIClient wraps the official SDK for synchronous speech-to-text.
// Audio bytes are uploaded and transcribed in one call; the caller decides
// what to do when the provider is unreachable.
type AssemblyAIClient struct {
	client *aai.Client
}

// NewAssemblyAIClient creates an AssemblyAI client using values from the
// provided config. Pass a nil config to fall back to environment variables.
func NewAssemblyAIClient(cfg *config.AssemblyAIConfig) *AssemblyAIClient {
	var apiKey string
	if cfg != nil {
		apiKey = cfg.APIKey
	}
	if apiKey == "" {
		apiKey = os.Getenv("ASSEMBLYAI_API_KEY")
	}

	return &AssemblyAIClient{
		client: aai.NewClient(apiKey),
	}
}

// Transcribe uploads the audio bytes and waits for the transcript.
// languageCode is the provider-side code ("en", "hi", ...), not the
// request-level language hint.
func (c *AssemblyAIClient) Transcribe(ctx context.Context, audio []byte, languageCode string) (string, float64, error) {
	params := &aai.TranscriptOptionalParams{
		Punctuate:  aai.Bool(true),
		FormatText: aai.Bool(true),
	}
	if languageCode != "" {
		params.LanguageCode = aai.TranscriptLanguageCode(languageCode)
	}

	transcript, err := c.client.Transcripts.TranscribeFromReader(ctx, bytes.NewReader(audio), params)
	if err != nil {
		return "", 0, fmt.Errorf("assemblyai transcription failed: %w", err)
	}

	if transcript.Status == aai.TranscriptStatusError {
		reason := "unknown error"
		if transcript.Error != nil {
			reason = *transcript.Error
		}
		return "", 0, fmt.Errorf("assemblyai returned error status: %s", reason)
	}

	text := ""
	if transcript.Text != nil {
		text = *transcript.Text
	}
	confidence := 0.0
	if transcript.Confidence != nil {
		confidence = *transcript.Confidence
	}

	return text, confidence, nil
}
