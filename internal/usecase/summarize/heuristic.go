package summarize

import (
	"fmt"
	"strings"
)

// Heuristic extractor caps, per field
const (
	maxKeyPoints   = 5
	maxActionItems = 4
	maxDecisions   = 3
	maxNextSteps   = 3
)

var (
	keyPointKeywords = []string{
		"discussed", "review", "update", "progress", "status", "important",
		"focus", "priority", "issue", "problem",
	}
	actionItemKeywords = []string{
		"will", "should", "need to", "needs to", "must", "have to",
		"going to", "action", "task", "assign",
	}
	decisionKeywords = []string{
		"decided", "agreed", "approved", "concluded", "confirmed", "finalized",
	}
	nextStepKeywords = []string{
		"next", "follow up", "follow-up", "plan", "schedule", "upcoming",
	}
)

// heuristicSummary extracts summary fields from the raw transcript using
// keyword matching. Every list comes back non-empty: fields with no matching
// sentences get a generic placeholder.
func heuristicSummary(transcript, title string, participants []string) Result {
	sentences := splitSentences(transcript)

	res := Result{
		Summary:      buildHeuristicOverview(title, sentences),
		KeyPoints:    matchSentences(sentences, keyPointKeywords, maxKeyPoints),
		ActionItems:  matchSentences(sentences, actionItemKeywords, maxActionItems),
		Decisions:    matchSentences(sentences, decisionKeywords, maxDecisions),
		NextSteps:    matchSentences(sentences, nextStepKeywords, maxNextSteps),
		Participants: append([]string{}, participants...),
	}

	if len(res.KeyPoints) == 0 {
		res.KeyPoints = []string{"Meeting discussion was held"}
	}
	if len(res.ActionItems) == 0 {
		res.ActionItems = []string{"Follow up on meeting topics"}
	}
	if len(res.Decisions) == 0 {
		res.Decisions = []string{"No explicit decisions recorded"}
	}
	if len(res.NextSteps) == 0 {
		res.NextSteps = []string{"Schedule follow-up discussion"}
	}

	return res
}

func buildHeuristicOverview(title string, sentences []string) string {
	if len(sentences) == 0 {
		return defaultSummaryText
	}

	take := 2
	if len(sentences) < take {
		take = len(sentences)
	}
	overview := strings.Join(sentences[:take], ". ")
	if title != "" {
		return fmt.Sprintf("%s: %s.", title, overview)
	}
	return overview + "."
}

// matchSentences collects up to max distinct sentences containing any of the
// keywords (case-insensitive)
func matchSentences(sentences []string, keywords []string, max int) []string {
	matched := make([]string, 0, max)
	seen := make(map[string]struct{})

	for _, sentence := range sentences {
		if len(matched) >= max {
			break
		}
		lower := strings.ToLower(sentence)
		for _, kw := range keywords {
			if strings.Contains(lower, kw) {
				if _, dup := seen[lower]; !dup {
					seen[lower] = struct{}{}
					matched = append(matched, sentence)
				}
				break
			}
		}
	}

	return matched
}

func splitSentences(text string) []string {
	parts := strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	})

	sentences := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			sentences = append(sentences, p)
		}
	}
	return sentences
}
