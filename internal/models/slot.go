package models

import (
	"strings"
	"time"
)

// SlotType discriminates the three slot variants
type SlotType string

const (
	SlotSpoken SlotType = "spoken"
	SlotMCQ    SlotType = "mcq"
	SlotCoding SlotType = "coding"
)

// Slot is one scheduled interview item. Exactly one of Spoken/MCQ/Coding is
// non-nil, matching Type; submit and advance logic switches on Type.
type Slot struct {
	Type       SlotType   `json:"type"`
	Difficulty string     `json:"difficulty"`
	CreatedAt  time.Time  `json:"created_at"`
	AnsweredAt *time.Time `json:"answered_at,omitempty"`

	Spoken *SpokenSlot `json:"spoken,omitempty"`
	MCQ    *MCQSlot    `json:"mcq,omitempty"`
	Coding *CodingSlot `json:"coding,omitempty"`
}

// ResponseLatency is the time between the slot being asked and the main
// answer landing. Zero until answered.
func (s *Slot) ResponseLatency() time.Duration {
	if s.AnsweredAt == nil {
		return 0
	}
	return s.AnsweredAt.Sub(s.CreatedAt)
}

type SpokenSlot struct {
	Question   string            `json:"question"`
	Answer     string            `json:"answer,omitempty"`
	Evaluation *AnswerEvaluation `json:"evaluation,omitempty"`
	FollowUps  []*FollowUp       `json:"follow_ups,omitempty"`
	Skipped    bool              `json:"skipped,omitempty"`
}

// FollowUp is a probing sub-question attached to a spoken slot.
type FollowUp struct {
	Question   string            `json:"question"`
	Answer     string            `json:"answer,omitempty"`
	Evaluation *AnswerEvaluation `json:"evaluation,omitempty"`
	Depth      int               `json:"depth"`
	CreatedAt  time.Time         `json:"created_at"`
	AnsweredAt *time.Time        `json:"answered_at,omitempty"`
}

type MCQSlot struct {
	Question            string            `json:"question"`
	Options             []string          `json:"options"`
	CorrectKey          string            `json:"correct_key"`
	Topic               string            `json:"topic,omitempty"`
	SelectedOption      string            `json:"selected_option,omitempty"`
	SelectionTimeMs     int64             `json:"selection_time_ms,omitempty"`
	IsCorrect           bool              `json:"is_correct"`
	JustificationPrompt string            `json:"justification_prompt,omitempty"`
	Justification       string            `json:"justification,omitempty"`
	JustificationEval   *AnswerEvaluation `json:"justification_eval,omitempty"`
	Skipped             bool              `json:"skipped,omitempty"`
}

// SelectionMatches compares the leading character of the selection against
// the correct key, so both "B" and "B) hash table" count as the same choice.
func (m *MCQSlot) SelectionMatches(selected string) bool {
	selected = strings.TrimSpace(selected)
	correct := strings.TrimSpace(m.CorrectKey)
	if selected == "" || correct == "" {
		return false
	}
	return strings.EqualFold(selected[:1], correct[:1])
}

type CodingSlot struct {
	Problem       string                  `json:"problem"`
	ExampleInput  string                  `json:"example_input,omitempty"`
	ExampleOutput string                  `json:"example_output,omitempty"`
	Topic         string                  `json:"topic,omitempty"`
	Code          string                  `json:"code,omitempty"`
	Explanation   string                  `json:"explanation,omitempty"`
	Evaluation    *CodingEvaluation       `json:"evaluation,omitempty"`
	Behavior      *BehaviorData           `json:"behavior,omitempty"`
	Interruptions []*InterruptionResponse `json:"interruptions,omitempty"`
	Interrupted   bool                    `json:"interrupted,omitempty"`
	PendingPrompt string                  `json:"pending_prompt,omitempty"`
	Skipped       bool                    `json:"skipped,omitempty"`
}

// BehaviorData is captured client-side while the candidate types code.
type BehaviorData struct {
	PasteCount             int         `json:"paste_count"`
	TimeToFirstKeystrokeMs int64       `json:"time_to_first_keystroke_ms"`
	TotalTimeMs            int64       `json:"total_time_ms"`
	EditEvents             []EditEvent `json:"edit_events,omitempty"`
}

type EditEvent struct {
	Kind     string `json:"kind"` // "insert", "delete", "paste"
	OffsetMs int64  `json:"offset_ms"`
}

type InterruptionResponse struct {
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	Timestamp time.Time `json:"timestamp"`
}

// AnswerEvaluation is the oracle's quality verdict on a spoken answer,
// follow-up answer or MCQ justification. FallbackUsed marks verdicts that
// were substituted with neutral defaults after an oracle failure.
type AnswerEvaluation struct {
	Quality      int      `json:"quality"`    // 1-10
	Confidence   float64  `json:"confidence"` // 0-1
	Clarity      string   `json:"clarity"`    // "low", "medium", "high"
	Feedback     string   `json:"feedback,omitempty"`
	Concepts     []string `json:"concepts,omitempty"`
	FallbackUsed bool     `json:"fallback_used,omitempty"`
}

// CodingEvaluation is the oracle's verdict on a code submission.
type CodingEvaluation struct {
	CodeQuality          int     `json:"code_quality"`          // 1-10
	LogicUnderstanding   string  `json:"logic_understanding"`   // "excellent".."poor"
	ExplanationAlignment float64 `json:"explanation_alignment"` // 0-1
	Feedback             string  `json:"feedback,omitempty"`
	FallbackUsed         bool    `json:"fallback_used,omitempty"`
}

// LogicUnderstandingScore maps the enum onto the 1-10 scale the scorer uses.
func (c *CodingEvaluation) LogicUnderstandingScore() int {
	switch strings.ToLower(strings.TrimSpace(c.LogicUnderstanding)) {
	case "excellent":
		return 9
	case "good":
		return 7
	case "fair":
		return 5
	case "poor":
		return 3
	default:
		return 5
	}
}
