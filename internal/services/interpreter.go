package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/dhvanil3103/ats-resume/internal/models"
)

var (
	ErrNoJSONObject        = errors.New("no JSON object found in response")
	ErrMalformedSimilarity = errors.New("similarity response has no score")
)

// ParseText trims a free-text answer (summary, cover letter).
func ParseText(response string) (string, error) {
	text := strings.TrimSpace(response)
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}

// ExtractJSONObject returns the span from the first '{' to the last '}'.
// Several objects in one response yield one span covering all of them.
func ExtractJSONObject(text string) (string, bool) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end <= start {
		return "", false
	}
	return text[start : end+1], true
}

func ParseSimilarity(response string) (models.SimilarityResult, error) {
	jsonStr, ok := ExtractJSONObject(response)
	if !ok {
		return models.SimilarityResult{}, ErrNoJSONObject
	}

	var result models.SimilarityResult
	if err := json.Unmarshal([]byte(jsonStr), &result); err != nil {
		return models.SimilarityResult{}, fmt.Errorf("failed to unmarshal JSON: %w", err)
	}

	if strings.TrimSpace(result.SimilarityScore) == "" {
		return models.SimilarityResult{}, ErrMalformedSimilarity
	}

	return result, nil
}

// ParseKeywords reads the MISSING KEYWORDS / SUGGESTIONS block. It never
// fails: text without the keywords marker gives an empty result.
func ParseKeywords(response string) models.KeywordsResult {
	result := models.KeywordsResult{MissingKeywords: []string{}}

	text := strings.TrimSpace(response)
	markerAt := strings.Index(text, MarkerMissingKeywords)
	if markerAt == -1 {
		return result
	}

	keywordsSection := text[markerAt+len(MarkerMissingKeywords):]

	// Only the first SUGGESTIONS: counts, and only when it follows the
	// keywords marker.
	if suggestionsAt := strings.Index(text, MarkerSuggestions); suggestionsAt > markerAt {
		keywordsSection = text[markerAt+len(MarkerMissingKeywords) : suggestionsAt]
		result.OptimizationSuggestions = strings.TrimSpace(text[suggestionsAt+len(MarkerSuggestions):])
	} else if suggestionsAt != -1 {
		if cut := strings.Index(keywordsSection, MarkerSuggestions); cut != -1 {
			keywordsSection = keywordsSection[:cut]
		}
	}

	for _, line := range strings.Split(keywordsSection, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "- ") {
			result.MissingKeywords = append(result.MissingKeywords, line[2:])
		}
	}

	return result
}
