package models

// RiskSeverity classifies how strongly a flag should be surfaced
type RiskSeverity string

const (
	SeverityWarning RiskSeverity = "warning"
	SeverityDanger  RiskSeverity = "danger"
)

// Risk flag types
const (
	RiskConfidenceDecay   = "confidence_decay"
	RiskPasteDetected     = "paste_detected"
	RiskInstantCoding     = "instant_coding"
	RiskVocabularyJump    = "vocabulary_jump"
	RiskMCQSpokenMismatch = "mcq_spoken_mismatch"
)

// RiskFlag is a heuristic signal about answer authenticity.
type RiskFlag struct {
	Type     string       `json:"type"`
	Severity RiskSeverity `json:"severity"`
	Label    string       `json:"label"`
	Detail   string       `json:"detail"`
}

// ScoreBreakdown holds the six weighted dimensions, each 0-100.
type ScoreBreakdown struct {
	AnswerQuality   int `json:"answer_quality"`
	DepthStability  int `json:"depth_stability"`
	MCQAccuracy     int `json:"mcq_accuracy"`
	CodingScore     int `json:"coding_score"`
	BehavioralTrust int `json:"behavioral_trust"`
	Consistency     int `json:"consistency"`
}

// ScoreReport is the terminal readiness report. Immutable once computed.
type ScoreReport struct {
	Overall    int            `json:"overall"` // 0-100
	Breakdown  ScoreBreakdown `json:"breakdown"`
	Grade      string         `json:"grade"`
	GradeLabel string         `json:"grade_label"`
	RiskFlags  []RiskFlag     `json:"risk_flags"`
	Answered   int            `json:"answered_slots"`
	Skipped    int            `json:"skipped_slots"`
}
