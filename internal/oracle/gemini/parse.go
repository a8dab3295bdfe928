package gemini

import (
	"encoding/json"
	"strings"

	"mockmate/interview/internal/models"
	"mockmate/interview/internal/oracle"
	"mockmate/interview/internal/utils"
)

func parseError(message string, err error) *oracle.ProviderError {
	return &oracle.ProviderError{
		Provider: "gemini",
		Code:     oracle.ErrCodeInvalidOutput,
		Message:  message,
		Err:      err,
	}
}

// ParseAnswerEvaluation decodes the evaluate_answer JSON verdict, clamping
// out-of-range numbers instead of rejecting them.
func ParseAnswerEvaluation(text string) (*models.AnswerEvaluation, error) {
	raw := utils.ExtractJSONObject(text)
	if raw == "" {
		return nil, parseError("No JSON object in evaluation response", nil)
	}

	var payload struct {
		Quality    float64  `json:"quality"`
		Concepts   []string `json:"concepts"`
		Confidence float64  `json:"confidence"`
		Clarity    string   `json:"clarity"`
		Feedback   string   `json:"feedback"`
	}
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, parseError("Malformed evaluation JSON", err)
	}

	clarity := strings.ToLower(strings.TrimSpace(payload.Clarity))
	if !models.ValidClarityLevels[clarity] {
		clarity = oracle.DefaultClarity
	}

	return &models.AnswerEvaluation{
		Quality:    clampInt(int(payload.Quality), 1, 10),
		Confidence: clampFloat(payload.Confidence, 0, 1),
		Clarity:    clarity,
		Feedback:   strings.TrimSpace(payload.Feedback),
		Concepts:   cleanTopics(payload.Concepts),
	}, nil
}

// ParseCodingEvaluation decodes the evaluate_coding JSON verdict.
func ParseCodingEvaluation(text string) (*models.CodingEvaluation, error) {
	raw := utils.ExtractJSONObject(text)
	if raw == "" {
		return nil, parseError("No JSON object in coding evaluation response", nil)
	}

	var payload struct {
		CodeQuality          float64 `json:"code_quality"`
		LogicUnderstanding   string  `json:"logic_understanding"`
		ExplanationAlignment float64 `json:"explanation_alignment"`
		Feedback             string  `json:"feedback"`
	}
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, parseError("Malformed coding evaluation JSON", err)
	}

	logic := strings.ToLower(strings.TrimSpace(payload.LogicUnderstanding))
	if !models.ValidLogicLevels[logic] {
		logic = oracle.DefaultLogicUnderstanding
	}

	return &models.CodingEvaluation{
		CodeQuality:          clampInt(int(payload.CodeQuality), 1, 10),
		LogicUnderstanding:   logic,
		ExplanationAlignment: clampFloat(payload.ExplanationAlignment, 0, 1),
		Feedback:             strings.TrimSpace(payload.Feedback),
	}, nil
}

// ParseMCQPayload decodes a generated multiple-choice item. An item without
// at least two options or a usable correct key is rejected.
func ParseMCQPayload(text string) (*models.MCQPayload, error) {
	raw := utils.ExtractJSONObject(text)
	if raw == "" {
		return nil, parseError("No JSON object in MCQ response", nil)
	}

	var payload models.MCQPayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, parseError("Malformed MCQ JSON", err)
	}

	payload.Question = strings.TrimSpace(payload.Question)
	payload.CorrectKey = strings.TrimSpace(payload.CorrectKey)
	payload.Options = cleanTopics(payload.Options)

	if payload.Question == "" {
		return nil, parseError("MCQ payload missing question", nil)
	}
	if len(payload.Options) < 2 {
		return nil, parseError("MCQ payload needs at least two options", nil)
	}
	if payload.CorrectKey == "" {
		return nil, parseError("MCQ payload missing correct key", nil)
	}
	payload.CorrectKey = strings.ToUpper(payload.CorrectKey[:1])

	return &payload, nil
}

// ParseCodingPayload decodes a generated coding problem.
func ParseCodingPayload(text string) (*models.CodingPayload, error) {
	raw := utils.ExtractJSONObject(text)
	if raw == "" {
		return nil, parseError("No JSON object in coding question response", nil)
	}

	var payload models.CodingPayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, parseError("Malformed coding question JSON", err)
	}

	payload.Problem = strings.TrimSpace(payload.Problem)
	if payload.Problem == "" {
		return nil, parseError("Coding payload missing problem statement", nil)
	}

	return &payload, nil
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func cleanTopics(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
