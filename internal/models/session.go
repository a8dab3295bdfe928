package models

import "time"

// SessionState tracks where a session is in the interview flow
type SessionState string

const (
	StateCreated         SessionState = "CREATED"
	StateWarmup          SessionState = "WARMUP"
	StateCoreQuestion    SessionState = "CORE_QUESTION"
	StateFollowUp        SessionState = "FOLLOW_UP"
	StateMCQ             SessionState = "MCQ"
	StateMCQJustify      SessionState = "MCQ_JUSTIFY"
	StateCoding          SessionState = "CODING"
	StateCodingInterrupt SessionState = "CODING_INTERRUPT"
	StateCompleted       SessionState = "COMPLETED"
)

// Session is one interview attempt. The engine is the only writer; the
// scoring package only ever reads a completed session.
type Session struct {
	ID            string `json:"id"`
	Role          string `json:"role"`
	CandidateName string `json:"candidate_name"`
	Difficulty    string `json:"difficulty"`

	State                SessionState `json:"state"`
	CurrentSlotIndex     int          `json:"current_slot_index"`
	CurrentFollowUpDepth int          `json:"current_follow_up_depth"`
	CoveredTopics        []string     `json:"covered_topics"`
	Slots                []*Slot      `json:"slots"`

	// Slot indexes for the MCQ/coding sub-flows. Stored as indexes rather
	// than pointers so sessions survive a JSON round-trip through redis.
	// -1 means no slot of that kind is active.
	CurrentMCQSlot    int `json:"current_mcq_slot"`
	CurrentCodingSlot int `json:"current_coding_slot"`

	StartTime time.Time  `json:"start_time"`
	EndTime   *time.Time `json:"end_time,omitempty"`

	Report *ScoreReport `json:"report,omitempty"`
}

// Completed reports whether the session reached its terminal state.
func (s *Session) Completed() bool {
	return s.State == StateCompleted
}

// ActiveMCQ returns the MCQ slot currently being answered, nil if none.
func (s *Session) ActiveMCQ() *Slot {
	if s.CurrentMCQSlot < 0 || s.CurrentMCQSlot >= len(s.Slots) {
		return nil
	}
	slot := s.Slots[s.CurrentMCQSlot]
	if slot.Type != SlotMCQ {
		return nil
	}
	return slot
}

// ActiveCoding returns the coding slot currently being worked, nil if none.
func (s *Session) ActiveCoding() *Slot {
	if s.CurrentCodingSlot < 0 || s.CurrentCodingSlot >= len(s.Slots) {
		return nil
	}
	slot := s.Slots[s.CurrentCodingSlot]
	if slot.Type != SlotCoding {
		return nil
	}
	return slot
}

// CurrentSlot returns the slot under the cursor, nil before Start.
func (s *Session) CurrentSlot() *Slot {
	if s.CurrentSlotIndex < 0 || s.CurrentSlotIndex >= len(s.Slots) {
		return nil
	}
	return s.Slots[s.CurrentSlotIndex]
}
