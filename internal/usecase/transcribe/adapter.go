package transcribe

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Language is the request-level language hint
type Language string

const (
	LanguageEnglish  Language = "en"
	LanguageHinglish Language = "hinglish"
)

// providerCodes maps the request language to the provider model code.
// There is no native code-mixed model upstream, so Hinglish uses the Hindi
// model and the output is transliterated back to Roman afterwards.
var providerCodes = map[Language]string{
	LanguageEnglish:  "en",
	LanguageHinglish: "hi",
}

// ParseLanguage normalizes a language hint, defaulting to Hinglish
func ParseLanguage(s string) Language {
	if Language(s) == LanguageEnglish {
		return LanguageEnglish
	}
	return LanguageHinglish
}

// Result is the outcome of one transcription. Provider is "assemblyai" for
// real transcripts and "fallback" when the provider could not deliver.
type Result struct {
	Text             string   `json:"text"`
	Confidence       float64  `json:"confidence"`
	ProcessingTimeMs int64    `json:"processing_time_ms"`
	Provider         string   `json:"source"`
	Language         Language `json:"language"`
}

// Provider performs the actual speech-to-text call
type Provider interface {
	Transcribe(ctx context.Context, audio []byte, languageCode string) (text string, confidence float64, err error)
}

// Adapter turns raw audio into a transcript and absorbs every provider
// failure into the fallback corpus. Transcribe never returns an error;
// an empty audio payload is the caller's mistake and must be rejected
// before reaching the adapter.
type Adapter struct {
	provider           Provider
	fallbackConfidence float64
	logger             *zap.Logger
}

// NewAdapter creates a transcription adapter
func NewAdapter(provider Provider, fallbackConfidence float64, logger *zap.Logger) *Adapter {
	if fallbackConfidence <= 0 || fallbackConfidence > 1 {
		fallbackConfidence = 0.80
	}
	return &Adapter{
		provider:           provider,
		fallbackConfidence: fallbackConfidence,
		logger:             logger,
	}
}

// Transcribe sends the audio to the provider and post-processes the result.
// On transport failure, provider error, or empty text it falls back to the
// mock corpus for the requested language.
func (a *Adapter) Transcribe(ctx context.Context, audio []byte, lang Language) Result {
	start := time.Now()

	code, ok := providerCodes[lang]
	if !ok {
		code = "en"
	}

	text, confidence, err := a.provider.Transcribe(ctx, audio, code)
	if err != nil || strings.TrimSpace(text) == "" {
		if a.logger != nil {
			a.logger.Warn("transcription provider unavailable, using fallback corpus",
				zap.String("language", string(lang)),
				zap.Error(err),
			)
		}
		return a.fallback(lang, start)
	}

	if lang == LanguageHinglish {
		text = TransliterateDevanagari(text)
	}
	if confidence <= 0 {
		confidence = 0.9
	}

	if a.logger != nil {
		a.logger.Info("transcription completed",
			zap.String("language", string(lang)),
			zap.Int("chars", len(text)),
			zap.Float64("confidence", confidence),
			zap.Duration("elapsed", time.Since(start)),
		)
	}

	return Result{
		Text:             text,
		Confidence:       confidence,
		ProcessingTimeMs: time.Since(start).Milliseconds(),
		Provider:         "assemblyai",
		Language:         lang,
	}
}

func (a *Adapter) fallback(lang Language, start time.Time) Result {
	return Result{
		Text:             fallbackTranscript(lang),
		Confidence:       a.fallbackConfidence,
		ProcessingTimeMs: time.Since(start).Milliseconds(),
		Provider:         "fallback",
		Language:         lang,
	}
}
