package handlers

import (
	"context"

	"go.uber.org/zap"

	"mockmate/interview/internal/interview"
	"mockmate/interview/internal/models"
	"mockmate/interview/internal/store"
)

// stubOracle answers every call with fixed content so handler tests stay
// deterministic.
type stubOracle struct{}

func (stubOracle) GenerateQuestion(context.Context, string, int, string, []string) (string, error) {
	return "Tell me about caching strategies.", nil
}

func (stubOracle) GenerateFollowUp(context.Context, string, string, int) (string, error) {
	return "What about cache invalidation?", nil
}

func (stubOracle) EvaluateAnswer(context.Context, string, string, string) (*models.AnswerEvaluation, error) {
	return &models.AnswerEvaluation{Quality: 7, Confidence: 0.7, Clarity: "high", Feedback: "fine"}, nil
}

func (stubOracle) GenerateMCQ(context.Context, string, string, []string) (*models.MCQPayload, error) {
	return &models.MCQPayload{
		Question:   "Which structure backs an LRU cache?",
		Options:    []string{"A) heap", "B) hash map + doubly linked list", "C) trie", "D) b-tree"},
		CorrectKey: "B",
		Topic:      "caching",
	}, nil
}

func (stubOracle) GenerateMCQFollowUp(context.Context, string, string, string) (string, error) {
	return "Why that structure?", nil
}

func (stubOracle) GenerateCodingQuestion(context.Context, string, string) (*models.CodingPayload, error) {
	return &models.CodingPayload{Problem: "Implement an LRU cache.", Topic: "caching"}, nil
}

func (stubOracle) GenerateCodingInterruption(context.Context, string, string) (string, error) {
	return "What is the eviction path here?", nil
}

func (stubOracle) EvaluateCodingAnswer(context.Context, string, string, string, string) (*models.CodingEvaluation, error) {
	return &models.CodingEvaluation{CodeQuality: 7, LogicUnderstanding: "good", ExplanationAlignment: 0.7, Feedback: "fine"}, nil
}

func (stubOracle) GetProviderName() string { return "stub" }

func newTestEngine() *interview.Engine {
	plan := interview.Plan{
		SlotTypes:        []models.SlotType{models.SlotSpoken, models.SlotMCQ, models.SlotCoding},
		SlotDifficulties: []string{"easy", "medium", "medium"},
		MaxFollowUps:     0,
	}
	return interview.NewEngine(stubOracle{}, store.NewMemoryStore(), plan, zap.NewNop())
}
