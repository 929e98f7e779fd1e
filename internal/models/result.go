package models

import "github.com/google/uuid"

// AnalysisResult is the normalized object recovered from a model completion.
// MatchScore and Rationale are mandatory; the remaining fields default to
// empty when the model omits them.
type AnalysisResult struct {
	MatchScore          int      `json:"matchScore"`
	Rationale           string   `json:"rationale"`
	QualificationsMatch string   `json:"qualificationsMatch"`
	Strengths           []string `json:"strengths"`
	MissingSkills       []string `json:"missingSkills"`
	ImprovementAreas    []string `json:"improvementAreas"`
	SuggestedEdits      []string `json:"suggestedEdits"`
	MissingKeywords     []string `json:"missingKeywords"`

	// ScoreClamped records that the model returned a score outside [0,100]
	// and it was pulled back to the nearest bound.
	ScoreClamped bool `json:"scoreClamped,omitempty"`
}

// Analysis is the outcome of one full pipeline run.
type Analysis struct {
	ID        uuid.UUID
	PageCount int
	Result    AnalysisResult
}

// Section is one labeled block of the rendered report.
type Section struct {
	Key   string   `json:"key"`
	Title string   `json:"title"`
	Text  string   `json:"text,omitempty"`
	Items []string `json:"items,omitempty"`
}

type AnalyzeResponse struct {
	ID           string    `json:"id"`
	MatchScore   int       `json:"match_score"`
	ScoreClamped bool      `json:"score_clamped,omitempty"`
	PageCount    int       `json:"page_count"`
	Sections     []Section `json:"sections"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Hint  string `json:"hint,omitempty"`
}
