package models

import (
	"time"

	"gorm.io/gorm"
)

// TranscriptRecord is the persisted snapshot written when an interview
// completes. The full session and report are kept as JSON blobs; the summary
// columns exist so transcripts can be queried without unmarshalling.
type TranscriptRecord struct {
	gorm.Model
	SessionID     string    `gorm:"uniqueIndex;not null" json:"session_id"`
	Role          string    `gorm:"not null" json:"role"`
	CandidateName string    `gorm:"not null" json:"candidate_name"`
	Difficulty    string    `gorm:"not null" json:"difficulty"`
	Overall       int       `gorm:"not null" json:"overall"`
	Grade         string    `gorm:"not null" json:"grade"`
	RiskFlagCount int       `gorm:"not null;default:0" json:"risk_flag_count"`
	SessionJSON   string    `gorm:"type:text;not null" json:"-"`
	ReportJSON    string    `gorm:"type:text;not null" json:"-"`
	CompletedAt   time.Time `gorm:"not null;index" json:"completed_at"`
}
