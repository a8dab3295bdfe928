package transcripts

import (
	"fmt"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"mockmate/interview/internal/models"
)

func newTestRecorder(t *testing.T) *Recorder {
	t.Helper()

	dsn := fmt.Sprintf("file:%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}

	recorder := NewRecorder(db)
	if err := recorder.Migrate(); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return recorder
}

func completedSession(id string) *models.Session {
	end := time.Date(2026, 3, 1, 11, 0, 0, 0, time.UTC)
	return &models.Session{
		ID:            id,
		Role:          "backend engineer",
		CandidateName: "Ada",
		Difficulty:    "medium",
		State:         models.StateCompleted,
		StartTime:     end.Add(-30 * time.Minute),
		EndTime:       &end,
		Report: &models.ScoreReport{
			Overall: 84,
			Grade:   "A",
			RiskFlags: []models.RiskFlag{
				{Type: models.RiskPasteDetected, Severity: models.SeverityDanger},
			},
		},
	}
}

func TestSaveAndGet(t *testing.T) {
	recorder := newTestRecorder(t)

	if err := recorder.Save(completedSession("s1")); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	record, err := recorder.Get("s1")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if record.Overall != 84 || record.Grade != "A" {
		t.Fatalf("unexpected summary columns: %d %s", record.Overall, record.Grade)
	}
	if record.RiskFlagCount != 1 {
		t.Fatalf("expected 1 risk flag counted, got %d", record.RiskFlagCount)
	}
	if record.SessionJSON == "" || record.ReportJSON == "" {
		t.Fatal("expected JSON blobs to be populated")
	}
}

func TestSaveRejectsIncompleteSession(t *testing.T) {
	recorder := newTestRecorder(t)

	session := completedSession("s2")
	session.Report = nil
	if err := recorder.Save(session); err == nil {
		t.Fatal("expected error for session without a report")
	}

	session = completedSession("s3")
	session.EndTime = nil
	if err := recorder.Save(session); err == nil {
		t.Fatal("expected error for session without an end time")
	}
}

func TestSaveDuplicateFails(t *testing.T) {
	recorder := newTestRecorder(t)

	if err := recorder.Save(completedSession("dup")); err != nil {
		t.Fatalf("first Save returned error: %v", err)
	}
	if err := recorder.Save(completedSession("dup")); err == nil {
		t.Fatal("expected unique index violation on second save")
	}
}

func TestExistsAndListCompletedSince(t *testing.T) {
	recorder := newTestRecorder(t)

	ok, err := recorder.Exists("nope")
	if err != nil {
		t.Fatalf("Exists returned error: %v", err)
	}
	if ok {
		t.Fatal("expected Exists false for unknown id")
	}

	if err := recorder.Save(completedSession("s4")); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	ok, err = recorder.Exists("s4")
	if err != nil {
		t.Fatalf("Exists returned error: %v", err)
	}
	if !ok {
		t.Fatal("expected Exists true after save")
	}

	records, err := recorder.ListCompletedSince(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), 10)
	if err != nil {
		t.Fatalf("ListCompletedSince returned error: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected one record, got %d", len(records))
	}

	records, err = recorder.ListCompletedSince(time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC), 10)
	if err != nil {
		t.Fatalf("ListCompletedSince returned error: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("expected no records after cutoff, got %d", len(records))
	}
}
