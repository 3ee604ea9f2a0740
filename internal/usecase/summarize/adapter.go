package summarize

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Result is the structured output of one summarization. Provider is "groq"
// for LLM output and "heuristic" when the fallback extractor produced it.
type Result struct {
	Summary          string   `json:"summary"`
	KeyPoints        []string `json:"keyPoints"`
	ActionItems      []string `json:"actionItems"`
	Decisions        []string `json:"decisions"`
	NextSteps        []string `json:"nextSteps"`
	Participants     []string `json:"participants"`
	Provider         string   `json:"provider"`
	ProcessingTimeMs int64    `json:"processing_time_ms"`
}

// Provider runs one chat completion and returns the assistant content
type Provider interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Adapter turns a transcript into a structured summary. Summarize never
// returns an error: LLM transport failures and unparseable responses both
// degrade to the heuristic extractor.
type Adapter struct {
	provider Provider
	logger   *zap.Logger
}

// NewAdapter creates a summarization adapter
func NewAdapter(provider Provider, logger *zap.Logger) *Adapter {
	return &Adapter{provider: provider, logger: logger}
}

// Summarize prompts the LLM for a strict six-field JSON object and parses
// the response, falling back to keyword heuristics on any failure.
func (a *Adapter) Summarize(ctx context.Context, transcript, title string, participants []string) Result {
	start := time.Now()

	content, err := a.provider.Complete(ctx, buildPrompt(transcript, title, participants))
	if err != nil {
		if a.logger != nil {
			a.logger.Warn("summarization provider unavailable, using heuristic extractor",
				zap.String("title", title),
				zap.Error(err),
			)
		}
		return a.heuristic(transcript, title, participants, start)
	}

	parsed, err := parseSummaryResponse(content)
	if err != nil {
		if a.logger != nil {
			a.logger.Warn("unparseable summarization response, using heuristic extractor",
				zap.String("title", title),
				zap.Error(err),
			)
		}
		return a.heuristic(transcript, title, participants, start)
	}

	parsed.Provider = "groq"
	parsed.ProcessingTimeMs = time.Since(start).Milliseconds()
	if len(parsed.Participants) == 0 {
		parsed.Participants = append([]string{}, participants...)
	}

	if a.logger != nil {
		a.logger.Info("summarization completed",
			zap.String("title", title),
			zap.Int("key_points", len(parsed.KeyPoints)),
			zap.Int("action_items", len(parsed.ActionItems)),
			zap.Duration("elapsed", time.Since(start)),
		)
	}

	return parsed
}

func (a *Adapter) heuristic(transcript, title string, participants []string, start time.Time) Result {
	res := heuristicSummary(transcript, title, participants)
	res.Provider = "heuristic"
	res.ProcessingTimeMs = time.Since(start).Milliseconds()
	return res
}

func buildPrompt(transcript, title string, participants []string) string {
	names := "unknown"
	if len(participants) > 0 {
		names = strings.Join(participants, ", ")
	}

	return fmt.Sprintf(`You are an expert meeting analyst. Analyze the following meeting transcript and respond with ONLY a valid JSON object, no markdown, no explanations.

The JSON object must have exactly these fields:
{
  "summary": "2-3 sentence overview of the meeting",
  "keyPoints": ["important discussion points"],
  "actionItems": ["concrete tasks with owners where mentioned"],
  "decisions": ["decisions that were made"],
  "nextSteps": ["planned follow-ups"],
  "participants": ["participant names mentioned or provided"]
}

Meeting title: %s
Participants: %s

Transcript:
%s`, title, names, transcript)
}
