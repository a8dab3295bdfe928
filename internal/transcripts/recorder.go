// Package transcripts persists completed interview snapshots so reports
// survive session eviction.
package transcripts

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"

	"mockmate/interview/internal/models"
)

// Recorder writes one TranscriptRecord per completed session.
type Recorder struct {
	db *gorm.DB
}

func NewRecorder(db *gorm.DB) *Recorder {
	return &Recorder{db: db}
}

// Migrate creates the transcript table.
func (r *Recorder) Migrate() error {
	if err := r.db.AutoMigrate(&models.TranscriptRecord{}); err != nil {
		return fmt.Errorf("failed to migrate transcript table: %w", err)
	}
	return nil
}

// Save snapshots a completed session. Saving the same session twice is an
// error; completion happens exactly once.
func (r *Recorder) Save(session *models.Session) error {
	if session.Report == nil || session.EndTime == nil {
		return fmt.Errorf("session %s is not completed", session.ID)
	}

	sessionJSON, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to serialize session %s: %w", session.ID, err)
	}
	reportJSON, err := json.Marshal(session.Report)
	if err != nil {
		return fmt.Errorf("failed to serialize report for %s: %w", session.ID, err)
	}

	record := &models.TranscriptRecord{
		SessionID:     session.ID,
		Role:          session.Role,
		CandidateName: session.CandidateName,
		Difficulty:    session.Difficulty,
		Overall:       session.Report.Overall,
		Grade:         session.Report.Grade,
		RiskFlagCount: len(session.Report.RiskFlags),
		SessionJSON:   string(sessionJSON),
		ReportJSON:    string(reportJSON),
		CompletedAt:   *session.EndTime,
	}

	if err := r.db.Create(record).Error; err != nil {
		return fmt.Errorf("failed to store transcript for %s: %w", session.ID, err)
	}
	return nil
}

// Get loads the persisted snapshot for a session id.
func (r *Recorder) Get(sessionID string) (*models.TranscriptRecord, error) {
	var record models.TranscriptRecord
	if err := r.db.First(&record, "session_id = ?", sessionID).Error; err != nil {
		return nil, fmt.Errorf("failed to load transcript for %s: %w", sessionID, err)
	}
	return &record, nil
}

// Exists reports whether a transcript was already persisted for the id.
func (r *Recorder) Exists(sessionID string) (bool, error) {
	var count int64
	if err := r.db.Model(&models.TranscriptRecord{}).Where("session_id = ?", sessionID).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check transcript for %s: %w", sessionID, err)
	}
	return count > 0, nil
}

// ListCompletedSince returns summary rows for transcripts completed after
// the given time, newest first.
func (r *Recorder) ListCompletedSince(since time.Time, limit int) ([]models.TranscriptRecord, error) {
	var records []models.TranscriptRecord

	query := r.db.Where("completed_at >= ?", since).Order("completed_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to list transcripts: %w", err)
	}
	return records, nil
}
