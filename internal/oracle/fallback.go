package oracle

import "mockmate/interview/internal/models"

// Marker prefix recorded on substituted evaluations so transcript readers
// can tell an oracle outage apart from a genuinely weak answer.
const FallbackFeedbackMarker = "[oracle fallback]"

// Neutral defaults used whenever the oracle fails or returns garbage.
const (
	DefaultQuality              = 5
	DefaultConfidence           = 0.5
	DefaultClarity              = "medium"
	DefaultLogicUnderstanding   = "fair"
	DefaultExplanationAlignment = 0.5
)

// FallbackAnswerEvaluation builds the neutral answer verdict for a failed
// evaluateAnswer call.
func FallbackAnswerEvaluation(reason string) *models.AnswerEvaluation {
	return &models.AnswerEvaluation{
		Quality:      DefaultQuality,
		Confidence:   DefaultConfidence,
		Clarity:      DefaultClarity,
		Feedback:     FallbackFeedbackMarker + " " + reason,
		FallbackUsed: true,
	}
}

// FallbackCodingEvaluation builds the neutral coding verdict for a failed
// evaluateCodingAnswer call.
func FallbackCodingEvaluation(reason string) *models.CodingEvaluation {
	return &models.CodingEvaluation{
		CodeQuality:          DefaultQuality,
		LogicUnderstanding:   DefaultLogicUnderstanding,
		ExplanationAlignment: DefaultExplanationAlignment,
		Feedback:             FallbackFeedbackMarker + " " + reason,
		FallbackUsed:         true,
	}
}

// Canned prompts used when question generation itself fails. The interview
// must keep moving even through a full oracle outage.

func FallbackQuestion(role string) string {
	return "Walk me through a recent " + role + " project you worked on. What were the main technical decisions, and what would you change today?"
}

func FallbackFollowUp() string {
	return "Can you go one level deeper on the last point you made? What is actually happening underneath?"
}

func FallbackJustificationPrompt() string {
	return "Why did you choose that option? Talk me through your reasoning."
}

func FallbackInterruption() string {
	return "Pause for a second. What does the code you have written so far actually do?"
}

func FallbackMCQ() *models.MCQPayload {
	return &models.MCQPayload{
		Question: "Which data structure offers O(1) average-case lookup by key?",
		Options: []string{
			"A) Sorted array",
			"B) Hash table",
			"C) Binary search tree",
			"D) Linked list",
		},
		CorrectKey: "B",
		Topic:      "data structures",
	}
}

func FallbackCodingQuestion() *models.CodingPayload {
	return &models.CodingPayload{
		Problem:       "Write a function that returns the first non-repeating character in a string, or an empty result if every character repeats.",
		ExampleInput:  "swiss",
		ExampleOutput: "w",
		Topic:         "strings",
	}
}
