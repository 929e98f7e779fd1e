package services

import (
	"fmt"

	"resume-analyzer/internal/models"
)

// BuildReport maps an AnalysisResult to labeled display sections in fixed
// order: score, rationale, qualifications, strengths, missing skills,
// improvement areas, suggested edits, missing keywords. Empty optional
// fields are omitted rather than rendered as blank sections.
func BuildReport(result *models.AnalysisResult) []models.Section {
	sections := []models.Section{
		{
			Key:   "match_score",
			Title: "Overall Match Score",
			Text:  fmt.Sprintf("%d/100", result.MatchScore),
		},
		{
			Key:   "rationale",
			Title: "Score Rationale",
			Text:  result.Rationale,
		},
	}

	if result.QualificationsMatch != "" {
		sections = append(sections, models.Section{
			Key:   "qualifications_match",
			Title: "Key Qualifications Match",
			Text:  result.QualificationsMatch,
		})
	}

	for _, part := range []struct {
		key   string
		title string
		items []string
	}{
		{"strengths", "Strengths", result.Strengths},
		{"missing_skills", "Missing Skills & Requirements", result.MissingSkills},
		{"improvement_areas", "Areas for Improvement", result.ImprovementAreas},
		{"suggested_edits", "Suggested Resume Improvements", result.SuggestedEdits},
		{"missing_keywords", "Missing Keywords", result.MissingKeywords},
	} {
		if len(part.items) == 0 {
			continue
		}
		sections = append(sections, models.Section{
			Key:   part.key,
			Title: part.title,
			Items: part.items,
		})
	}

	return sections
}
