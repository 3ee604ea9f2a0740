package summarize

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHeuristicSummary_KeywordExtraction(t *testing.T) {
	transcript := "We discussed the roadmap for Q4. The team will prepare estimates by Friday. " +
		"We decided to ship the beta next month. Next step is to schedule the design review."

	res := heuristicSummary(transcript, "Planning", []string{"Asha", "Ben"})

	assert.Contains(t, strings.Join(res.KeyPoints, " "), "discussed")
	assert.Contains(t, strings.Join(res.ActionItems, " "), "will prepare")
	assert.Contains(t, strings.Join(res.Decisions, " "), "decided")
	assert.Contains(t, strings.Join(res.NextSteps, " "), "schedule")
	assert.Equal(t, []string{"Asha", "Ben"}, res.Participants)
	assert.Contains(t, res.Summary, "Planning")
}

func TestHeuristicSummary_KeywordFreeInputStillNonEmpty(t *testing.T) {
	res := heuristicSummary("Hello there", "Catch-up", nil)

	assert.NotEmpty(t, res.Summary)
	assert.NotEmpty(t, res.KeyPoints)
	assert.NotEmpty(t, res.ActionItems)
	assert.NotEmpty(t, res.Decisions)
	assert.NotEmpty(t, res.NextSteps)
}

func TestHeuristicSummary_CapsRespected(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 20; i++ {
		sb.WriteString(fmt.Sprintf("We discussed topic %d. ", i))
		sb.WriteString(fmt.Sprintf("The team will handle task %d. ", i))
		sb.WriteString(fmt.Sprintf("We decided on option %d. ", i))
		sb.WriteString(fmt.Sprintf("Next we plan milestone %d. ", i))
	}

	res := heuristicSummary(sb.String(), "Big meeting", nil)

	assert.LessOrEqual(t, len(res.KeyPoints), maxKeyPoints)
	assert.LessOrEqual(t, len(res.ActionItems), maxActionItems)
	assert.LessOrEqual(t, len(res.Decisions), maxDecisions)
	assert.LessOrEqual(t, len(res.NextSteps), maxNextSteps)
}

func TestHeuristicSummary_DedupsRepeatedSentences(t *testing.T) {
	transcript := "We decided to ship. We decided to ship. We decided to ship."

	res := heuristicSummary(transcript, "", nil)

	assert.Len(t, res.Decisions, 1)
}
