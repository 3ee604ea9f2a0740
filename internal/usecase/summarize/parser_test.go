package summarize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSummaryResponse_Plain(t *testing.T) {
	content := `{"summary":"Team reviewed sprint progress.","keyPoints":["a","b","c"],"actionItems":["do x"],"decisions":[],"nextSteps":["plan y"],"participants":["Asha","Ben"]}`

	res, err := parseSummaryResponse(content)
	require.NoError(t, err)

	assert.Equal(t, "Team reviewed sprint progress.", res.Summary)
	assert.Equal(t, []string{"a", "b", "c"}, res.KeyPoints)
	assert.Equal(t, []string{"do x"}, res.ActionItems)
	assert.Empty(t, res.Decisions)
	assert.NotNil(t, res.Decisions)
	assert.Equal(t, []string{"Asha", "Ben"}, res.Participants)
}

func TestParseSummaryResponse_CodeFenced(t *testing.T) {
	content := "```json\n{\"summary\":\"ok\",\"keyPoints\":[\"one\"]}\n```"

	res, err := parseSummaryResponse(content)
	require.NoError(t, err)

	assert.Equal(t, "ok", res.Summary)
	assert.Equal(t, []string{"one"}, res.KeyPoints)
}

func TestParseSummaryResponse_CoercesNonArrayLists(t *testing.T) {
	content := `{"summary":"ok","keyPoints":"not a list","actionItems":42,"decisions":null}`

	res, err := parseSummaryResponse(content)
	require.NoError(t, err)

	assert.Empty(t, res.KeyPoints)
	assert.Empty(t, res.ActionItems)
	assert.Empty(t, res.Decisions)
	assert.NotNil(t, res.KeyPoints)
	assert.NotNil(t, res.ActionItems)
}

func TestParseSummaryResponse_DefaultsMissingSummary(t *testing.T) {
	res, err := parseSummaryResponse(`{"keyPoints":["a"]}`)
	require.NoError(t, err)

	assert.Equal(t, defaultSummaryText, res.Summary)
}

func TestParseSummaryResponse_RejectsNonJSON(t *testing.T) {
	_, err := parseSummaryResponse("I could not produce JSON, sorry.")
	assert.Error(t, err)
}

func TestParseSummaryResponse_DropsNonStringElements(t *testing.T) {
	res, err := parseSummaryResponse(`{"summary":"ok","keyPoints":["a",1,null,"b",""]}`)
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b"}, res.KeyPoints)
}
