package models

// contains all valid interview difficulties (in lowercase)
var ValidDifficulties = map[string]bool{
	"easy":   true,
	"medium": true,
	"hard":   true,
}

func ValidDifficultiesList() []string {
	return []string{"easy", "medium", "hard"}
}

// contains all valid clarity levels the oracle may report
var ValidClarityLevels = map[string]bool{
	"low":    true,
	"medium": true,
	"high":   true,
}

// contains all valid logic-understanding levels the oracle may report
var ValidLogicLevels = map[string]bool{
	"excellent": true,
	"good":      true,
	"fair":      true,
	"poor":      true,
}

// DefaultSlotTypes is the fixed interview plan used when none is configured.
var DefaultSlotTypes = []SlotType{
	SlotSpoken, SlotSpoken, SlotSpoken, SlotMCQ, SlotSpoken,
	SlotSpoken, SlotMCQ, SlotSpoken, SlotCoding, SlotSpoken,
}

// DefaultSlotDifficulties ramps difficulty across the default plan.
var DefaultSlotDifficulties = []string{
	"easy", "easy", "medium", "medium", "medium",
	"medium", "hard", "hard", "hard", "medium",
}

// SkippedAnswerSentinel marks answers recorded by the operator skip escape
// hatch so transcripts can tell them apart from real answers.
const SkippedAnswerSentinel = "[skipped]"
