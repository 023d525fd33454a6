package models

import (
	"time"

	"github.com/google/uuid"
)

type Operation string

const (
	OperationSummary     Operation = "summary"
	OperationSimilarity  Operation = "similarity"
	OperationKeywords    Operation = "keywords"
	OperationCoverLetter Operation = "cover_letter"
)

type ResumeSource string

const (
	ResumeSourceText ResumeSource = "text"
	ResumeSourceFile ResumeSource = "file"
)

// AnalysisEvent records that an analysis ran and whether it degraded to a
// fallback. It never stores resume, job description or generated text.
type AnalysisEvent struct {
	ID           uuid.UUID    `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Operation    Operation    `gorm:"type:text;not null;index" json:"operation"`
	ResumeSource ResumeSource `gorm:"type:text" json:"resume_source"`
	Fallback     bool         `gorm:"not null;default:false" json:"fallback"`
	Cause        string       `gorm:"type:text" json:"cause,omitempty"`
	DurationMS   int64        `gorm:"not null" json:"duration_ms"`
	CreatedAt    time.Time    `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (AnalysisEvent) TableName() string {
	return "analysis_events"
}
