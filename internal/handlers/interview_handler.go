package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"mockmate/interview/internal/interview"
	"mockmate/interview/internal/middleware"
	"mockmate/interview/internal/models"
	"mockmate/interview/internal/utils"
)

type InterviewHandler struct {
	engine *interview.Engine
	logger *zap.Logger
}

func NewInterviewHandler(engine *interview.Engine, logger *zap.Logger) *InterviewHandler {
	return &InterviewHandler{
		engine: engine,
		logger: logger,
	}
}

// writeEngineError maps engine sentinels onto the HTTP surface. Anything
// unrecognized is a 500.
func (h *InterviewHandler) writeEngineError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, interview.ErrSessionNotFound):
		utils.JSON(w, http.StatusNotFound, models.ErrorResponse{
			Code:    "session_not_found",
			Message: "No interview session with that id",
		})
	case errors.Is(err, interview.ErrInvalidStateTransition):
		utils.JSON(w, http.StatusConflict, models.ErrorResponse{
			Code:    "invalid_state",
			Message: err.Error(),
		})
	default:
		h.logger.Error("interview operation failed", zap.Error(err))
		utils.JSON(w, http.StatusInternalServerError, models.ErrorResponse{
			Code:    "internal_error",
			Message: "Interview operation failed",
		})
	}
}

func sessionID(r *http.Request) string {
	return chi.URLParam(r, "id")
}

func (h *InterviewHandler) CreateHandler(w http.ResponseWriter, r *http.Request) {
	req := middleware.GetValidatedRequest[*models.CreateInterviewRequest](r)

	session, err := h.engine.Create(r.Context(), req.Role, req.CandidateName, req.Difficulty)
	if err != nil {
		h.writeEngineError(w, err)
		return
	}

	utils.JSON(w, http.StatusCreated, session)
}

func (h *InterviewHandler) StartHandler(w http.ResponseWriter, r *http.Request) {
	prompt, err := h.engine.Start(r.Context(), sessionID(r))
	if err != nil {
		h.writeEngineError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, prompt)
}

func (h *InterviewHandler) SpokenAnswerHandler(w http.ResponseWriter, r *http.Request) {
	req := middleware.GetValidatedRequest[*models.SpokenAnswerRequest](r)

	result, err := h.engine.SubmitSpokenAnswer(r.Context(), sessionID(r), req.Answer)
	if err != nil {
		h.writeEngineError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, result)
}

func (h *InterviewHandler) MCQAnswerHandler(w http.ResponseWriter, r *http.Request) {
	req := middleware.GetValidatedRequest[*models.MCQAnswerRequest](r)

	result, err := h.engine.SubmitMCQAnswer(r.Context(), sessionID(r), req.SelectedOption, req.SelectionTimeMs)
	if err != nil {
		h.writeEngineError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, result)
}

func (h *InterviewHandler) JustificationHandler(w http.ResponseWriter, r *http.Request) {
	req := middleware.GetValidatedRequest[*models.JustificationRequest](r)

	next, err := h.engine.SubmitMCQJustification(r.Context(), sessionID(r), req.Justification)
	if err != nil {
		h.writeEngineError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, next)
}

func (h *InterviewHandler) CodeSubmissionHandler(w http.ResponseWriter, r *http.Request) {
	req := middleware.GetValidatedRequest[*models.CodeSubmissionRequest](r)

	next, err := h.engine.SubmitCode(r.Context(), sessionID(r), req.Code, req.Explanation, req.Behavior)
	if err != nil {
		h.writeEngineError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, next)
}

func (h *InterviewHandler) InterruptHandler(w http.ResponseWriter, r *http.Request) {
	req := middleware.GetValidatedRequest[*models.InterruptionTriggerRequest](r)

	prompt, err := h.engine.TriggerCodingInterruption(r.Context(), sessionID(r), req.CurrentCode)
	if err != nil {
		h.writeEngineError(w, err)
		return
	}
	if prompt == nil {
		// interruption budget for this slot already spent
		w.WriteHeader(http.StatusNoContent)
		return
	}
	utils.JSON(w, http.StatusOK, prompt)
}

func (h *InterviewHandler) InterruptResponseHandler(w http.ResponseWriter, r *http.Request) {
	req := middleware.GetValidatedRequest[*models.InterruptionAnswerRequest](r)

	ack, err := h.engine.SubmitInterruptionResponse(r.Context(), sessionID(r), req.Answer)
	if err != nil {
		h.writeEngineError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, ack)
}

func (h *InterviewHandler) SkipHandler(w http.ResponseWriter, r *http.Request) {
	next, err := h.engine.Skip(r.Context(), sessionID(r))
	if err != nil {
		h.writeEngineError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, next)
}

func (h *InterviewHandler) GetSessionHandler(w http.ResponseWriter, r *http.Request) {
	session, err := h.engine.GetSession(r.Context(), sessionID(r))
	if err != nil {
		h.writeEngineError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, session)
}

func (h *InterviewHandler) TranscriptHandler(w http.ResponseWriter, r *http.Request) {
	transcript, err := h.engine.Transcript(r.Context(), sessionID(r))
	if err != nil {
		h.writeEngineError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, transcript)
}
