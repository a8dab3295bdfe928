// Package interview holds the flow state machine: slot sequencing,
// follow-up probing, skip handling and the transition into the terminal
// scored state. It is the only writer of session state.
package interview

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"mockmate/interview/internal/metrics"
	"mockmate/interview/internal/models"
	"mockmate/interview/internal/oracle"
	"mockmate/interview/internal/scoring"
	"mockmate/interview/internal/store"
	"mockmate/interview/internal/transcripts"
	"mockmate/interview/internal/utils"
)

// Plan fixes the slot sequence for every interview the engine runs.
type Plan struct {
	SlotTypes        []models.SlotType
	SlotDifficulties []string
	MaxFollowUps     int
}

// DefaultPlan returns the standard 10-slot interview.
func DefaultPlan() Plan {
	return Plan{
		SlotTypes:        append([]models.SlotType(nil), models.DefaultSlotTypes...),
		SlotDifficulties: append([]string(nil), models.DefaultSlotDifficulties...),
		MaxFollowUps:     2,
	}
}

// Engine orchestrates interview sessions. Operations against one session
// are serialized with a per-session lock held across the oracle call;
// different sessions proceed in parallel.
type Engine struct {
	provider oracle.Provider
	sessions store.Store
	recorder *transcripts.Recorder // nil disables transcript persistence
	plan     Plan
	logger   *zap.Logger

	locks sync.Map // session id -> *sync.Mutex

	// injectable clock for tests
	now func() time.Time
}

func NewEngine(provider oracle.Provider, sessions store.Store, plan Plan, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = utils.GetLogger()
	}
	return &Engine{
		provider: provider,
		sessions: sessions,
		plan:     plan,
		logger:   logger,
		now:      time.Now,
	}
}

// SetRecorder enables transcript persistence at completion.
func (e *Engine) SetRecorder(recorder *transcripts.Recorder) {
	e.recorder = recorder
}

func (e *Engine) lockSession(id string) func() {
	m, _ := e.locks.LoadOrStore(id, &sync.Mutex{})
	mu := m.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

func (e *Engine) load(ctx context.Context, id string) (*models.Session, error) {
	session, err := e.sessions.Get(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return session, nil
}

// Create registers a new session. No oracle call, no slot yet.
func (e *Engine) Create(ctx context.Context, role, candidateName, difficulty string) (*models.Session, error) {
	session := &models.Session{
		ID:                uuid.New().String(),
		Role:              role,
		CandidateName:     candidateName,
		Difficulty:        difficulty,
		State:             models.StateCreated,
		CurrentSlotIndex:  0,
		CurrentMCQSlot:    -1,
		CurrentCodingSlot: -1,
		StartTime:         e.now().UTC(),
	}

	if err := e.sessions.Create(ctx, session); err != nil {
		return nil, err
	}

	e.logger.Info("session created",
		zap.String("session_id", session.ID),
		zap.String("role", role),
		zap.String("difficulty", difficulty))

	return session, nil
}

// Start generates the warmup slot and moves the session out of CREATED.
func (e *Engine) Start(ctx context.Context, id string) (*models.SlotPrompt, error) {
	defer e.lockSession(id)()

	session, err := e.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if session.State != models.StateCreated {
		return nil, fmt.Errorf("%w: cannot start session in state %s", ErrInvalidStateTransition, session.State)
	}

	// slot 0 is always spoken
	question := e.generateQuestion(ctx, session, 0)
	session.Slots = append(session.Slots, &models.Slot{
		Type:       models.SlotSpoken,
		Difficulty: e.plan.SlotDifficulties[0],
		CreatedAt:  e.now().UTC(),
		Spoken:     &models.SpokenSlot{Question: question},
	})
	session.State = models.StateWarmup

	if err := e.sessions.Update(ctx, session); err != nil {
		return nil, err
	}

	return &models.SlotPrompt{
		Type:       models.SlotSpoken,
		State:      models.StateWarmup,
		SlotNumber: 1,
		TotalSlots: len(e.plan.SlotTypes),
		Question:   question,
	}, nil
}

// SubmitSpokenAnswer records a spoken answer (main or follow-up), decides
// whether to probe deeper, and otherwise advances.
func (e *Engine) SubmitSpokenAnswer(ctx context.Context, id, text string) (*models.SpokenAnswerResult, error) {
	defer e.lockSession(id)()

	session, err := e.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if session.Completed() {
		return nil, fmt.Errorf("%w: session already completed", ErrInvalidStateTransition)
	}

	slot := session.CurrentSlot()
	if slot == nil || slot.Type != models.SlotSpoken || slot.Spoken == nil {
		return nil, fmt.Errorf("%w: no spoken slot awaiting an answer", ErrInvalidStateTransition)
	}

	now := e.now().UTC()
	var eval *models.AnswerEvaluation

	if session.CurrentFollowUpDepth > 0 {
		followUp := slot.Spoken.FollowUps[len(slot.Spoken.FollowUps)-1]
		followUp.Answer = text
		followUp.AnsweredAt = &now
		eval = e.evaluateAnswer(ctx, followUp.Question, text, slot.Difficulty)
		followUp.Evaluation = eval
	} else {
		slot.Spoken.Answer = text
		slot.AnsweredAt = &now
		eval = e.evaluateAnswer(ctx, slot.Spoken.Question, text, slot.Difficulty)
		slot.Spoken.Evaluation = eval
		session.CoveredTopics = append(session.CoveredTopics, eval.Concepts...)
	}

	// A non-answer or a very weak answer means further probing would be
	// pointless; move on instead.
	shouldSkipFollowUps := isDontKnow(text) || eval.Quality <= 2

	if session.CurrentFollowUpDepth < e.plan.MaxFollowUps && !shouldSkipFollowUps {
		session.CurrentFollowUpDepth++
		session.State = models.StateFollowUp

		question := e.generateFollowUp(ctx, slot.Spoken.Question, text, session.CurrentFollowUpDepth)
		slot.Spoken.FollowUps = append(slot.Spoken.FollowUps, &models.FollowUp{
			Question:  question,
			Depth:     session.CurrentFollowUpDepth,
			CreatedAt: now,
		})

		if err := e.sessions.Update(ctx, session); err != nil {
			return nil, err
		}
		return &models.SpokenAnswerResult{
			FollowUpQuestion: question,
			FollowUpDepth:    session.CurrentFollowUpDepth,
		}, nil
	}

	next, err := e.advance(ctx, session)
	if err != nil {
		return nil, err
	}
	return &models.SpokenAnswerResult{Next: next}, nil
}

// SubmitMCQAnswer records the selection, grades it, and asks for a
// justification.
func (e *Engine) SubmitMCQAnswer(ctx context.Context, id, selectedOption string, selectionTimeMs int64) (*models.MCQAnswerResult, error) {
	defer e.lockSession(id)()

	session, err := e.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if session.State != models.StateMCQ {
		return nil, fmt.Errorf("%w: MCQ answer submitted in state %s", ErrInvalidStateTransition, session.State)
	}
	slot := session.ActiveMCQ()
	if slot == nil {
		return nil, fmt.Errorf("%w: no active MCQ slot", ErrInvalidStateTransition)
	}

	now := e.now().UTC()
	mcq := slot.MCQ
	mcq.SelectedOption = selectedOption
	mcq.SelectionTimeMs = selectionTimeMs
	mcq.IsCorrect = mcq.SelectionMatches(selectedOption)
	slot.AnsweredAt = &now

	prompt := e.generateJustificationPrompt(ctx, mcq.Question, selectedOption, mcq.CorrectKey)
	mcq.JustificationPrompt = prompt
	session.State = models.StateMCQJustify

	if err := e.sessions.Update(ctx, session); err != nil {
		return nil, err
	}

	return &models.MCQAnswerResult{
		Correct:             mcq.IsCorrect,
		CorrectKey:          mcq.CorrectKey,
		JustificationPrompt: prompt,
	}, nil
}

// SubmitMCQJustification evaluates the candidate's reasoning and advances.
func (e *Engine) SubmitMCQJustification(ctx context.Context, id, text string) (*models.NextStep, error) {
	defer e.lockSession(id)()

	session, err := e.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if session.State != models.StateMCQJustify {
		return nil, fmt.Errorf("%w: justification submitted in state %s", ErrInvalidStateTransition, session.State)
	}
	slot := session.ActiveMCQ()
	if slot == nil {
		return nil, fmt.Errorf("%w: no active MCQ slot", ErrInvalidStateTransition)
	}

	slot.MCQ.Justification = text
	slot.MCQ.JustificationEval = e.evaluateAnswer(ctx, slot.MCQ.JustificationPrompt, text, slot.Difficulty)

	return e.advance(ctx, session)
}

// SubmitCode records a coding submission, evaluates it, and advances.
func (e *Engine) SubmitCode(ctx context.Context, id, code, explanation string, behavior *models.BehaviorData) (*models.NextStep, error) {
	defer e.lockSession(id)()

	session, err := e.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if session.Completed() {
		return nil, fmt.Errorf("%w: session already completed", ErrInvalidStateTransition)
	}
	slot := session.ActiveCoding()
	if slot == nil {
		return nil, fmt.Errorf("%w: no active coding slot", ErrInvalidStateTransition)
	}

	now := e.now().UTC()
	coding := slot.Coding
	coding.Code = code
	coding.Explanation = explanation
	coding.Behavior = behavior
	coding.Evaluation = e.evaluateCode(ctx, coding.Problem, code, explanation, slot.Difficulty)
	slot.AnsweredAt = &now

	return e.advance(ctx, session)
}

// TriggerCodingInterruption asks a mid-coding probe. At most one
// interruption fires per coding slot; further triggers are a no-op.
func (e *Engine) TriggerCodingInterruption(ctx context.Context, id, currentCode string) (*models.InterruptionPrompt, error) {
	defer e.lockSession(id)()

	session, err := e.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if session.Completed() {
		return nil, fmt.Errorf("%w: session already completed", ErrInvalidStateTransition)
	}
	slot := session.ActiveCoding()
	if slot == nil {
		return nil, fmt.Errorf("%w: no active coding slot", ErrInvalidStateTransition)
	}
	if session.State == models.StateCodingInterrupt {
		return &models.InterruptionPrompt{Question: slot.Coding.PendingPrompt}, nil
	}
	if slot.Coding.Interrupted {
		return nil, nil
	}

	question := e.generateInterruption(ctx, currentCode, slot.Coding.Problem)
	slot.Coding.PendingPrompt = question
	session.State = models.StateCodingInterrupt

	if err := e.sessions.Update(ctx, session); err != nil {
		return nil, err
	}
	return &models.InterruptionPrompt{Question: question}, nil
}

// SubmitInterruptionResponse records the answer to an interruption and
// hands control back to code entry. The slot cursor does not move.
func (e *Engine) SubmitInterruptionResponse(ctx context.Context, id, text string) (*models.InterruptionAck, error) {
	defer e.lockSession(id)()

	session, err := e.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if session.State != models.StateCodingInterrupt {
		return nil, fmt.Errorf("%w: interruption response submitted in state %s", ErrInvalidStateTransition, session.State)
	}
	slot := session.ActiveCoding()
	if slot == nil {
		return nil, fmt.Errorf("%w: no active coding slot", ErrInvalidStateTransition)
	}

	coding := slot.Coding
	coding.Interruptions = append(coding.Interruptions, &models.InterruptionResponse{
		Question:  coding.PendingPrompt,
		Answer:    text,
		Timestamp: e.now().UTC(),
	})
	coding.Interrupted = true
	coding.PendingPrompt = ""
	session.State = models.StateCoding

	if err := e.sessions.Update(ctx, session); err != nil {
		return nil, err
	}
	return &models.InterruptionAck{Resume: true}, nil
}

// Skip is the operator escape hatch: mark the current slot skipped and
// advance unconditionally, bypassing follow-up and justification logic.
func (e *Engine) Skip(ctx context.Context, id string) (*models.NextStep, error) {
	defer e.lockSession(id)()

	session, err := e.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if session.Completed() {
		return nil, fmt.Errorf("%w: session already completed", ErrInvalidStateTransition)
	}
	slot := session.CurrentSlot()
	if slot == nil {
		return nil, fmt.Errorf("%w: session has not started", ErrInvalidStateTransition)
	}

	now := e.now().UTC()
	slot.AnsweredAt = &now
	switch slot.Type {
	case models.SlotSpoken:
		slot.Spoken.Skipped = true
		slot.Spoken.Answer = models.SkippedAnswerSentinel
	case models.SlotMCQ:
		slot.MCQ.Skipped = true
		slot.MCQ.SelectedOption = models.SkippedAnswerSentinel
	case models.SlotCoding:
		slot.Coding.Skipped = true
		slot.Coding.Code = models.SkippedAnswerSentinel
	}

	e.logger.Info("slot skipped",
		zap.String("session_id", session.ID),
		zap.Int("slot", session.CurrentSlotIndex))

	return e.advance(ctx, session)
}

// GetSession is a raw lookup for the presentation layer.
func (e *Engine) GetSession(ctx context.Context, id string) (*models.Session, error) {
	return e.load(ctx, id)
}

// Transcript returns the full slot history, plus the report once the
// session has completed.
func (e *Engine) Transcript(ctx context.Context, id string) (*models.Transcript, error) {
	session, err := e.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return &models.Transcript{
		SessionID:     session.ID,
		Role:          session.Role,
		CandidateName: session.CandidateName,
		State:         session.State,
		Slots:         session.Slots,
		CoveredTopics: session.CoveredTopics,
		Report:        session.Report,
	}, nil
}

// advance moves the cursor to the next slot, generating it, or completes
// the interview when the plan is exhausted. The caller holds the session
// lock and is responsible for having recorded the current slot's answer.
func (e *Engine) advance(ctx context.Context, session *models.Session) (*models.NextStep, error) {
	session.CurrentFollowUpDepth = 0
	session.CurrentMCQSlot = -1
	session.CurrentCodingSlot = -1
	session.CurrentSlotIndex++

	if session.CurrentSlotIndex >= len(e.plan.SlotTypes) {
		return e.complete(ctx, session)
	}

	index := session.CurrentSlotIndex
	difficulty := e.plan.SlotDifficulties[index]
	now := e.now().UTC()
	slot := &models.Slot{
		Difficulty: difficulty,
		CreatedAt:  now,
	}
	prompt := &models.SlotPrompt{
		SlotNumber: index + 1,
		TotalSlots: len(e.plan.SlotTypes),
	}

	switch e.plan.SlotTypes[index] {
	case models.SlotSpoken:
		question := e.generateQuestion(ctx, session, index)
		slot.Type = models.SlotSpoken
		slot.Spoken = &models.SpokenSlot{Question: question}
		session.State = models.StateCoreQuestion
		prompt.Type = models.SlotSpoken
		prompt.Question = question

	case models.SlotMCQ:
		payload := e.generateMCQ(ctx, session, difficulty)
		slot.Type = models.SlotMCQ
		slot.MCQ = &models.MCQSlot{
			Question:   payload.Question,
			Options:    payload.Options,
			CorrectKey: payload.CorrectKey,
			Topic:      payload.Topic,
		}
		session.State = models.StateMCQ
		session.CurrentMCQSlot = index
		prompt.Type = models.SlotMCQ
		prompt.Question = payload.Question
		prompt.Options = payload.Options

	case models.SlotCoding:
		payload := e.generateCodingQuestion(ctx, session, difficulty)
		slot.Type = models.SlotCoding
		slot.Coding = &models.CodingSlot{
			Problem:       payload.Problem,
			ExampleInput:  payload.ExampleInput,
			ExampleOutput: payload.ExampleOutput,
			Topic:         payload.Topic,
		}
		session.State = models.StateCoding
		session.CurrentCodingSlot = index
		prompt.Type = models.SlotCoding
		prompt.Problem = payload.Problem
		prompt.ExampleInput = payload.ExampleInput
		prompt.ExampleOutput = payload.ExampleOutput
	}

	session.Slots = append(session.Slots, slot)
	prompt.State = session.State

	if err := e.sessions.Update(ctx, session); err != nil {
		return nil, err
	}
	return &models.NextStep{Slot: prompt}, nil
}

// complete stamps the terminal state, scores the session and persists the
// transcript snapshot.
func (e *Engine) complete(ctx context.Context, session *models.Session) (*models.NextStep, error) {
	now := e.now().UTC()
	session.State = models.StateCompleted
	session.EndTime = &now
	session.Report = scoring.ComputeScore(session)

	if err := e.sessions.Update(ctx, session); err != nil {
		return nil, err
	}

	if e.recorder != nil {
		if err := e.recorder.Save(session); err != nil {
			// scoring already succeeded; losing the snapshot must not fail
			// the interview
			e.logger.Error("failed to persist transcript",
				zap.String("session_id", session.ID),
				zap.Error(err))
		}
	}

	metrics.InterviewCompleted(session.Report.Overall)
	e.logger.Info("interview completed",
		zap.String("session_id", session.ID),
		zap.Int("overall", session.Report.Overall),
		zap.String("grade", session.Report.Grade),
		zap.Int("risk_flags", len(session.Report.RiskFlags)))

	return &models.NextStep{Completed: true, Report: session.Report}, nil
}
