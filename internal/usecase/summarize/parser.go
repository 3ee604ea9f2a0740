package summarize

import (
	"encoding/json"
	"fmt"
	"strings"
)

const defaultSummaryText = "No summary available"

type rawSummary struct {
	Summary      json.RawMessage `json:"summary"`
	KeyPoints    json.RawMessage `json:"keyPoints"`
	ActionItems  json.RawMessage `json:"actionItems"`
	Decisions    json.RawMessage `json:"decisions"`
	NextSteps    json.RawMessage `json:"nextSteps"`
	Participants json.RawMessage `json:"participants"`
}

// parseSummaryResponse decodes the LLM response into a Result. The model is
// asked for strict JSON but still wraps it in code fences or returns scalar
// values for list fields often enough that both are coerced here.
func parseSummaryResponse(content string) (Result, error) {
	content = extractJSON(content)

	var raw rawSummary
	if err := json.Unmarshal([]byte(content), &raw); err != nil {
		return Result{}, fmt.Errorf("failed to parse summary JSON: %w", err)
	}

	return Result{
		Summary:      coerceString(raw.Summary, defaultSummaryText),
		KeyPoints:    coerceStringList(raw.KeyPoints),
		ActionItems:  coerceStringList(raw.ActionItems),
		Decisions:    coerceStringList(raw.Decisions),
		NextSteps:    coerceStringList(raw.NextSteps),
		Participants: coerceStringList(raw.Participants),
	}, nil
}

// extractJSON extracts JSON content from markdown code blocks or plain text
func extractJSON(content string) string {
	content = strings.TrimSpace(content)

	if strings.HasPrefix(content, "```json") {
		content = strings.TrimPrefix(content, "```json")
		content = strings.TrimPrefix(content, "```")
		if idx := strings.LastIndex(content, "```"); idx != -1 {
			content = content[:idx]
		}
	} else if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```")
		if idx := strings.LastIndex(content, "```"); idx != -1 {
			content = content[:idx]
		}
	}

	return strings.TrimSpace(content)
}

// coerceString returns the decoded string or the fallback for missing,
// empty, or non-string values
func coerceString(raw json.RawMessage, fallback string) string {
	if len(raw) == 0 {
		return fallback
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil || strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}

// coerceStringList returns the decoded list, dropping non-string elements.
// Non-array values coerce to an empty slice, never nil.
func coerceStringList(raw json.RawMessage) []string {
	out := make([]string, 0)
	if len(raw) == 0 {
		return out
	}

	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return out
	}

	for _, item := range items {
		var s string
		if err := json.Unmarshal(item, &s); err != nil {
			continue
		}
		if strings.TrimSpace(s) == "" {
			continue
		}
		out = append(out, s)
	}
	return out
}
