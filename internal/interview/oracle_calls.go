package interview

import (
	"context"

	"go.uber.org/zap"

	"mockmate/interview/internal/metrics"
	"mockmate/interview/internal/models"
	"mockmate/interview/internal/oracle"
)

// Oracle wrappers. Every call site degrades to a neutral fallback on
// error so a provider outage never stalls an interview; fallbacks are
// counted per call type.

func (e *Engine) generateQuestion(ctx context.Context, session *models.Session, slotNumber int) string {
	question, err := e.provider.GenerateQuestion(ctx, session.Role, slotNumber, e.plan.SlotDifficulties[slotNumber], session.CoveredTopics)
	if err != nil {
		e.oracleFailed("generate_question", session.ID, err)
		return oracle.FallbackQuestion(session.Role)
	}
	return question
}

func (e *Engine) generateFollowUp(ctx context.Context, originalQuestion, answer string, depth int) string {
	question, err := e.provider.GenerateFollowUp(ctx, originalQuestion, answer, depth)
	if err != nil {
		e.oracleFailed("generate_follow_up", "", err)
		return oracle.FallbackFollowUp()
	}
	return question
}

func (e *Engine) evaluateAnswer(ctx context.Context, question, answer, difficulty string) *models.AnswerEvaluation {
	eval, err := e.provider.EvaluateAnswer(ctx, question, answer, difficulty)
	if err != nil {
		e.oracleFailed("evaluate_answer", "", err)
		return oracle.FallbackAnswerEvaluation(err.Error())
	}
	return eval
}

func (e *Engine) generateMCQ(ctx context.Context, session *models.Session, difficulty string) *models.MCQPayload {
	payload, err := e.provider.GenerateMCQ(ctx, session.Role, difficulty, session.CoveredTopics)
	if err != nil {
		e.oracleFailed("generate_mcq", session.ID, err)
		return oracle.FallbackMCQ()
	}
	return payload
}

func (e *Engine) generateJustificationPrompt(ctx context.Context, question, selectedOption, correctKey string) string {
	prompt, err := e.provider.GenerateMCQFollowUp(ctx, question, selectedOption, correctKey)
	if err != nil {
		e.oracleFailed("generate_mcq_follow_up", "", err)
		return oracle.FallbackJustificationPrompt()
	}
	return prompt
}

func (e *Engine) generateCodingQuestion(ctx context.Context, session *models.Session, difficulty string) *models.CodingPayload {
	payload, err := e.provider.GenerateCodingQuestion(ctx, session.Role, difficulty)
	if err != nil {
		e.oracleFailed("generate_coding_question", session.ID, err)
		return oracle.FallbackCodingQuestion()
	}
	return payload
}

func (e *Engine) generateInterruption(ctx context.Context, partialCode, problem string) string {
	question, err := e.provider.GenerateCodingInterruption(ctx, partialCode, problem)
	if err != nil {
		e.oracleFailed("generate_coding_interruption", "", err)
		return oracle.FallbackInterruption()
	}
	return question
}

func (e *Engine) evaluateCode(ctx context.Context, problem, code, explanation, difficulty string) *models.CodingEvaluation {
	eval, err := e.provider.EvaluateCodingAnswer(ctx, problem, code, explanation, difficulty)
	if err != nil {
		e.oracleFailed("evaluate_coding_answer", "", err)
		return oracle.FallbackCodingEvaluation(err.Error())
	}
	return eval
}

func (e *Engine) oracleFailed(call, sessionID string, err error) {
	metrics.OracleFallback(call)
	e.logger.Warn("oracle call failed, using fallback",
		zap.String("call", call),
		zap.String("session_id", sessionID),
		zap.Error(err))
}
