package oracle

import (
	"context"

	"mockmate/interview/internal/models"
)

// Provider is the question/evaluation oracle the interview engine depends
// on. Implementations may fail or return malformed payloads; the engine
// substitutes neutral defaults (see fallback.go) so an outage never stalls
// an interview.
type Provider interface {
	GenerateQuestion(ctx context.Context, role string, slotNumber int, difficulty string, coveredTopics []string) (string, error)
	GenerateFollowUp(ctx context.Context, originalQuestion, answer string, depth int) (string, error)
	EvaluateAnswer(ctx context.Context, question, answer, difficulty string) (*models.AnswerEvaluation, error)
	GenerateMCQ(ctx context.Context, role, difficulty string, coveredTopics []string) (*models.MCQPayload, error)
	GenerateMCQFollowUp(ctx context.Context, question, selectedOption, correctKey string) (string, error)
	GenerateCodingQuestion(ctx context.Context, role, difficulty string) (*models.CodingPayload, error)
	GenerateCodingInterruption(ctx context.Context, partialCode, problem string) (string, error)
	EvaluateCodingAnswer(ctx context.Context, problem, code, explanation, difficulty string) (*models.CodingEvaluation, error)
	GetProviderName() string
}

// represents an error from an oracle provider
type ProviderError struct {
	Provider string
	Code     string
	Message  string
	Err      error
}

func (e *ProviderError) Error() string {
	if e.Err != nil {
		return e.Provider + " error: " + e.Message + " (" + e.Err.Error() + ")"
	}
	return e.Provider + " error: " + e.Message
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// Common error codes
const (
	ErrCodeAPIKey        = "invalid_api_key"
	ErrCodeRateLimit     = "rate_limit_exceeded"
	ErrCodeServiceDown   = "service_unavailable"
	ErrCodeInvalidOutput = "invalid_output"
	ErrCodeTimeout       = "timeout"
)
