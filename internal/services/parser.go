package services

import (
	"encoding/json"
	"fmt"
	"log"
	"math"
	"strings"

	"resume-analyzer/internal/models"
)

// ResponseParser recovers a normalized AnalysisResult from a raw model
// completion. The completion is expected to be a single JSON object but the
// parser tolerates surrounding prose and markdown fences.
type ResponseParser struct{}

func NewResponseParser() *ResponseParser {
	return &ResponseParser{}
}

// Parse scans the completion for brace-balanced candidates and returns the
// first one that is valid JSON and satisfies the result schema. A candidate
// that parses but fails validation is remembered so that an input holding a
// JSON object with missing mandatory fields reports a schema violation, not
// a malformed response.
func (rp *ResponseParser) Parse(raw string) (*models.AnalysisResult, error) {
	text := stripCodeFences(raw)

	var firstSchemaErr error
	for i := 0; i < len(text); i++ {
		if text[i] != '{' {
			continue
		}

		end, ok := matchingBrace(text, i)
		if !ok {
			continue
		}
		candidate := text[i : end+1]

		var obj map[string]json.RawMessage
		if err := json.Unmarshal([]byte(candidate), &obj); err != nil {
			// Brace-balanced but not JSON; an embedded object may
			// still parse, so keep scanning inside it
			continue
		}

		result, err := normalizeResult(obj)
		if err != nil {
			if firstSchemaErr == nil {
				firstSchemaErr = err
			}
			// Well-formed object that fails the schema; skip past it
			i = end
			continue
		}

		return result, nil
	}

	if firstSchemaErr != nil {
		return nil, firstSchemaErr
	}
	return nil, fmt.Errorf("%w: raw response: %s", ErrMalformedResponse, snippet(raw))
}

// normalizeResult validates field presence and types per the result schema.
// matchScore and rationale are mandatory; sequence fields default to empty
// when absent. An out-of-range score is clamped to the nearest bound and
// flagged rather than rejected.
func normalizeResult(obj map[string]json.RawMessage) (*models.AnalysisResult, error) {
	scoreRaw, ok := obj["matchScore"]
	if !ok {
		return nil, fmt.Errorf("%w: missing required field %q", ErrSchemaViolation, "matchScore")
	}
	var score float64
	if isJSONNull(scoreRaw) {
		return nil, fmt.Errorf("%w: %q must be a number", ErrSchemaViolation, "matchScore")
	}
	if err := json.Unmarshal(scoreRaw, &score); err != nil {
		return nil, fmt.Errorf("%w: %q must be a number", ErrSchemaViolation, "matchScore")
	}

	rationaleRaw, ok := obj["rationale"]
	if !ok {
		return nil, fmt.Errorf("%w: missing required field %q", ErrSchemaViolation, "rationale")
	}
	var rationale string
	if isJSONNull(rationaleRaw) {
		return nil, fmt.Errorf("%w: %q must be a string", ErrSchemaViolation, "rationale")
	}
	if err := json.Unmarshal(rationaleRaw, &rationale); err != nil {
		return nil, fmt.Errorf("%w: %q must be a string", ErrSchemaViolation, "rationale")
	}

	matchScore := int(math.Round(score))
	clamped := false
	switch {
	case matchScore < 0:
		matchScore = 0
		clamped = true
	case matchScore > 100:
		matchScore = 100
		clamped = true
	}
	if clamped {
		log.Printf("⚠️  matchScore %v outside [0,100], clamped to %d\n", score, matchScore)
	}

	qualifications, err := optionalString(obj, "qualificationsMatch")
	if err != nil {
		return nil, err
	}

	result := &models.AnalysisResult{
		MatchScore:          matchScore,
		Rationale:           rationale,
		QualificationsMatch: qualifications,
		ScoreClamped:        clamped,
	}

	for key, dst := range map[string]*[]string{
		"strengths":        &result.Strengths,
		"missingSkills":    &result.MissingSkills,
		"improvementAreas": &result.ImprovementAreas,
		"suggestedEdits":   &result.SuggestedEdits,
		"missingKeywords":  &result.MissingKeywords,
	} {
		items, err := optionalStringSlice(obj, key)
		if err != nil {
			return nil, err
		}
		*dst = items
	}

	return result, nil
}

func optionalString(obj map[string]json.RawMessage, key string) (string, error) {
	raw, ok := obj[key]
	if !ok || isJSONNull(raw) {
		return "", nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", fmt.Errorf("%w: %q must be a string", ErrSchemaViolation, key)
	}
	return s, nil
}

func optionalStringSlice(obj map[string]json.RawMessage, key string) ([]string, error) {
	raw, ok := obj[key]
	if !ok || isJSONNull(raw) {
		return []string{}, nil
	}
	var items []string
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("%w: %q must be a list of strings", ErrSchemaViolation, key)
	}
	if items == nil {
		items = []string{}
	}
	return items, nil
}

// matchingBrace returns the index of the brace closing the object that opens
// at start, skipping braces inside string values.
func matchingBrace(s string, start int) (int, bool) {
	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i, true
			}
		}
	}

	return 0, false
}

// stripCodeFences removes markdown code fences the model may wrap its JSON in.
func stripCodeFences(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	return strings.ReplaceAll(text, "```", "")
}

func isJSONNull(raw json.RawMessage) bool {
	return strings.TrimSpace(string(raw)) == "null"
}

func snippet(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "<empty response>"
	}
	const max = 200
	if len(s) > max {
		return s[:max] + "..."
	}
	return s
}
