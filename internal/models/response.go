package models

// uniform error responses
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *ErrorResponse) Error() string {
	return e.Message
}

// SlotPrompt is the payload handed to the presentation layer whenever a new
// slot becomes active.
type SlotPrompt struct {
	Type          SlotType     `json:"type"`
	State         SessionState `json:"state"`
	SlotNumber    int          `json:"slot_number"` // 1-based
	TotalSlots    int          `json:"total_slots"`
	Question      string       `json:"question,omitempty"`
	Options       []string     `json:"options,omitempty"`
	Problem       string       `json:"problem,omitempty"`
	ExampleInput  string       `json:"example_input,omitempty"`
	ExampleOutput string       `json:"example_output,omitempty"`
}

// NextStep is what every advancing operation returns: either the prompt for
// the next slot, or the terminal report.
type NextStep struct {
	Completed bool         `json:"completed"`
	Slot      *SlotPrompt  `json:"slot,omitempty"`
	Report    *ScoreReport `json:"report,omitempty"`
}

// SpokenAnswerResult is returned by submitSpokenAnswer: either a follow-up
// probe or an advance.
type SpokenAnswerResult struct {
	FollowUpQuestion string    `json:"follow_up_question,omitempty"`
	FollowUpDepth    int       `json:"follow_up_depth,omitempty"`
	Next             *NextStep `json:"next,omitempty"`
}

// MCQAnswerResult reports correctness and carries the justification prompt.
type MCQAnswerResult struct {
	Correct             bool   `json:"correct"`
	CorrectKey          string `json:"correct_key"`
	JustificationPrompt string `json:"justification_prompt"`
}

// InterruptionPrompt is returned by triggerCodingInterruption.
type InterruptionPrompt struct {
	Question string `json:"question"`
}

// InterruptionAck tells the caller to resume code entry.
type InterruptionAck struct {
	Resume bool `json:"resume"`
}

// Transcript is the full slot history plus the report once completed.
type Transcript struct {
	SessionID     string       `json:"session_id"`
	Role          string       `json:"role"`
	CandidateName string       `json:"candidate_name"`
	State         SessionState `json:"state"`
	Slots         []*Slot      `json:"slots"`
	CoveredTopics []string     `json:"covered_topics,omitempty"`
	Report        *ScoreReport `json:"report,omitempty"`
}

// MCQPayload is the oracle's generated multiple-choice item.
type MCQPayload struct {
	Question   string   `json:"question"`
	Options    []string `json:"options"`
	CorrectKey string   `json:"correct_key"`
	Topic      string   `json:"topic"`
}

// CodingPayload is the oracle's generated coding problem.
type CodingPayload struct {
	Problem       string `json:"problem"`
	ExampleInput  string `json:"example_input"`
	ExampleOutput string `json:"example_output"`
	Topic         string `json:"topic"`
}
