package routers

import (
	"mockmate/interview/internal/handlers"
	"mockmate/interview/internal/middleware"
	"mockmate/interview/internal/models"

	"github.com/go-chi/chi/v5"
)

func InterviewRoutes(router *chi.Mux, interviewHandler *handlers.InterviewHandler) {
	router.Route("/api/v1/interviews", func(r chi.Router) {
		r.With(middleware.ValidateRequest[*models.CreateInterviewRequest]()).Post("/", interviewHandler.CreateHandler)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", interviewHandler.GetSessionHandler)
			r.Get("/transcript", interviewHandler.TranscriptHandler)

			r.Post("/start", interviewHandler.StartHandler)
			r.Post("/skip", interviewHandler.SkipHandler)

			r.With(middleware.ValidateRequest[*models.SpokenAnswerRequest]()).Post("/answers/spoken", interviewHandler.SpokenAnswerHandler)
			r.With(middleware.ValidateRequest[*models.MCQAnswerRequest]()).Post("/answers/mcq", interviewHandler.MCQAnswerHandler)
			r.With(middleware.ValidateRequest[*models.JustificationRequest]()).Post("/answers/justification", interviewHandler.JustificationHandler)
			r.With(middleware.ValidateRequest[*models.CodeSubmissionRequest]()).Post("/answers/code", interviewHandler.CodeSubmissionHandler)

			r.With(middleware.ValidateRequest[*models.InterruptionTriggerRequest]()).Post("/interrupt", interviewHandler.InterruptHandler)
			r.With(middleware.ValidateRequest[*models.InterruptionAnswerRequest]()).Post("/interrupt/response", interviewHandler.InterruptResponseHandler)
		})
	})
}
