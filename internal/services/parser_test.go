package services

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-analyzer/internal/models"
)

func TestParse_ExactJSONRoundTrip(t *testing.T) {
	input := models.AnalysisResult{
		MatchScore:          72,
		Rationale:           "Solid backend experience, weaker on cloud.",
		QualificationsMatch: "Most core qualifications are met.",
		Strengths:           []string{"5 years Python", "API design"},
		MissingSkills:       []string{"Terraform"},
		ImprovementAreas:    []string{"Quantify achievements"},
		SuggestedEdits:      []string{"Add AWS certification to the summary"},
		MissingKeywords:     []string{"Kubernetes", "CI/CD"},
	}
	raw, err := json.Marshal(input)
	require.NoError(t, err)

	result, err := NewResponseParser().Parse(string(raw))
	require.NoError(t, err)
	assert.Equal(t, &input, result)
}

func TestParse_ToleratesSurroundingProse(t *testing.T) {
	raw := `Sure! Here is the analysis: {"matchScore": 85, "rationale": "Good fit"}`

	result, err := NewResponseParser().Parse(raw)
	require.NoError(t, err)

	assert.Equal(t, 85, result.MatchScore)
	assert.Equal(t, "Good fit", result.Rationale)
	assert.False(t, result.ScoreClamped)
	assert.Empty(t, result.QualificationsMatch)
	assert.Equal(t, []string{}, result.Strengths)
	assert.Equal(t, []string{}, result.MissingSkills)
	assert.Equal(t, []string{}, result.ImprovementAreas)
	assert.Equal(t, []string{}, result.SuggestedEdits)
	assert.Equal(t, []string{}, result.MissingKeywords)
}

func TestParse_MarkdownFencedJSON(t *testing.T) {
	raw := "```json\n{\"matchScore\": 60, \"rationale\": \"Partial match\"}\n```"

	result, err := NewResponseParser().Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, 60, result.MatchScore)
}

func TestParse_BracesInsideStringValues(t *testing.T) {
	raw := `{"matchScore": 40, "rationale": "resume mentions {braces} and \"quotes\" and }"}`

	result, err := NewResponseParser().Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, `resume mentions {braces} and "quotes" and }`, result.Rationale)
}

func TestParse_NoBraceAtAll(t *testing.T) {
	_, err := NewResponseParser().Parse("I am unable to analyze this resume.")
	require.ErrorIs(t, err, ErrMalformedResponse)
}

func TestParse_EmptyResponse(t *testing.T) {
	_, err := NewResponseParser().Parse("")
	require.ErrorIs(t, err, ErrMalformedResponse)
}

func TestParse_UnterminatedObject(t *testing.T) {
	_, err := NewResponseParser().Parse(`{"matchScore": 85, "rationale": "truncated`)
	require.ErrorIs(t, err, ErrMalformedResponse)
}

func TestParse_ClampsHighScore(t *testing.T) {
	result, err := NewResponseParser().Parse(`{"matchScore": 150, "rationale": "enthusiastic model"}`)
	require.NoError(t, err)

	assert.Equal(t, 100, result.MatchScore)
	assert.True(t, result.ScoreClamped)
}

func TestParse_ClampsNegativeScore(t *testing.T) {
	result, err := NewResponseParser().Parse(`{"matchScore": -5, "rationale": "harsh model"}`)
	require.NoError(t, err)

	assert.Equal(t, 0, result.MatchScore)
	assert.True(t, result.ScoreClamped)
}

func TestParse_FractionalScoreRounds(t *testing.T) {
	result, err := NewResponseParser().Parse(`{"matchScore": 84.6, "rationale": "ok"}`)
	require.NoError(t, err)

	assert.Equal(t, 85, result.MatchScore)
	assert.False(t, result.ScoreClamped)
}

func TestParse_MissingRationale(t *testing.T) {
	_, err := NewResponseParser().Parse(`{"matchScore": 85}`)
	require.ErrorIs(t, err, ErrSchemaViolation)
	assert.Contains(t, err.Error(), "rationale")
}

func TestParse_MissingMatchScore(t *testing.T) {
	_, err := NewResponseParser().Parse(`{"rationale": "no score"}`)
	require.ErrorIs(t, err, ErrSchemaViolation)
	assert.Contains(t, err.Error(), "matchScore")
}

func TestParse_NonNumericScore(t *testing.T) {
	_, err := NewResponseParser().Parse(`{"matchScore": "high", "rationale": "ok"}`)
	require.ErrorIs(t, err, ErrSchemaViolation)
}

func TestParse_NullScore(t *testing.T) {
	_, err := NewResponseParser().Parse(`{"matchScore": null, "rationale": "ok"}`)
	require.ErrorIs(t, err, ErrSchemaViolation)
}

func TestParse_WrongTypedSequenceField(t *testing.T) {
	_, err := NewResponseParser().Parse(`{"matchScore": 50, "rationale": "ok", "strengths": "none"}`)
	require.ErrorIs(t, err, ErrSchemaViolation)
	assert.Contains(t, err.Error(), "strengths")
}

func TestParse_NullSequenceFieldCoercedEmpty(t *testing.T) {
	result, err := NewResponseParser().Parse(`{"matchScore": 50, "rationale": "ok", "strengths": null}`)
	require.NoError(t, err)
	assert.Equal(t, []string{}, result.Strengths)
}

func TestParse_SkipsMalformedBlockBeforeValidOne(t *testing.T) {
	raw := `{not json at all} some prose {"matchScore": 70, "rationale": "second block"}`

	result, err := NewResponseParser().Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "second block", result.Rationale)
}

func TestParse_SkipsWellFormedBlockFailingSchema(t *testing.T) {
	raw := `{"note": "irrelevant"} {"matchScore": 64, "rationale": "real one"}`

	result, err := NewResponseParser().Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, 64, result.MatchScore)
}

func TestParse_OnlySchemaFailingBlocksReportViolation(t *testing.T) {
	raw := `{"matchScore": 64} {"note": "irrelevant"}`

	_, err := NewResponseParser().Parse(raw)
	require.ErrorIs(t, err, ErrSchemaViolation)
}
