package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

type PersonalInfo struct {
	FullName string `json:"fullName"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Address  string `json:"address,omitempty"`
}

type CompanyInfo struct {
	CompanyName    string `json:"companyName"`
	HiringManager  string `json:"hiringManager,omitempty"`
	CompanyAddress string `json:"companyAddress,omitempty"`
}

type SummaryResponse struct {
	Summary string `json:"summary"`
}

type SimilarityResult struct {
	SimilarityScore       string `json:"similarityScore"`
	SimilarityExplanation string `json:"similarityExplanation"`
}

// UnmarshalJSON accepts the score either as a string ("82%") or as a bare
// number (82), which is rendered as "82%".
func (s *SimilarityResult) UnmarshalJSON(data []byte) error {
	var raw struct {
		SimilarityScore       json.RawMessage `json:"similarityScore"`
		SimilarityExplanation string          `json:"similarityExplanation"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	score, err := decodeScore(raw.SimilarityScore)
	if err != nil {
		return err
	}

	s.SimilarityScore = score
	s.SimilarityExplanation = raw.SimilarityExplanation
	return nil
}

func decodeScore(raw json.RawMessage) (string, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return "", nil
	}

	var text string
	if err := json.Unmarshal(raw, &text); err == nil {
		return text, nil
	}

	var number float64
	if err := json.Unmarshal(raw, &number); err == nil {
		return strconv.FormatFloat(number, 'f', -1, 64) + "%", nil
	}

	return "", fmt.Errorf("similarityScore must be a string or number, got %s", raw)
}

type KeywordsResult struct {
	MissingKeywords         []string `json:"missingKeywords"`
	OptimizationSuggestions string   `json:"optimizationSuggestions"`
}

type CoverLetterResponse struct {
	CoverLetter string `json:"coverLetter"`
}

type ErrorResponse struct {
	Detail string `json:"detail"`
}
