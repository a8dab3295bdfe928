package models

import "strings"

type CreateInterviewRequest struct {
	Role          string `json:"role"`
	CandidateName string `json:"candidate_name"`
	Difficulty    string `json:"difficulty"`
}

// implements the Validator interface
func (r *CreateInterviewRequest) Validate() error {
	if strings.TrimSpace(r.Role) == "" {
		return &ErrorResponse{
			Code:    "missing_role",
			Message: "Role field is required",
		}
	}

	if strings.TrimSpace(r.CandidateName) == "" {
		return &ErrorResponse{
			Code:    "missing_candidate_name",
			Message: "Candidate name field is required",
		}
	}

	if r.Difficulty == "" {
		r.Difficulty = "medium"
	}
	r.Difficulty = strings.ToLower(strings.TrimSpace(r.Difficulty))

	if !ValidDifficulties[r.Difficulty] {
		return &ErrorResponse{
			Code:    "invalid_difficulty",
			Message: "Difficulty must be one of: easy, medium, hard",
		}
	}

	return nil
}

type SpokenAnswerRequest struct {
	Answer string `json:"answer"`
}

func (r *SpokenAnswerRequest) Validate() error {
	if strings.TrimSpace(r.Answer) == "" {
		return &ErrorResponse{Code: "missing_answer", Message: "Answer field is required"}
	}
	return nil
}

type MCQAnswerRequest struct {
	SelectedOption  string `json:"selected_option"`
	SelectionTimeMs int64  `json:"selection_time_ms"`
}

func (r *MCQAnswerRequest) Validate() error {
	if strings.TrimSpace(r.SelectedOption) == "" {
		return &ErrorResponse{Code: "missing_selected_option", Message: "Selected option field is required"}
	}
	if r.SelectionTimeMs < 0 {
		return &ErrorResponse{Code: "invalid_selection_time", Message: "Selection time must not be negative"}
	}
	return nil
}

type JustificationRequest struct {
	Justification string `json:"justification"`
}

func (r *JustificationRequest) Validate() error {
	if strings.TrimSpace(r.Justification) == "" {
		return &ErrorResponse{Code: "missing_justification", Message: "Justification field is required"}
	}
	return nil
}

type CodeSubmissionRequest struct {
	Code        string        `json:"code"`
	Explanation string        `json:"explanation"`
	Behavior    *BehaviorData `json:"behavior"`
}

func (r *CodeSubmissionRequest) Validate() error {
	if strings.TrimSpace(r.Code) == "" {
		return &ErrorResponse{Code: "missing_code", Message: "Code field is required"}
	}
	if r.Behavior != nil {
		if r.Behavior.PasteCount < 0 || r.Behavior.TimeToFirstKeystrokeMs < 0 || r.Behavior.TotalTimeMs < 0 {
			return &ErrorResponse{Code: "invalid_behavior_data", Message: "Behavior counters must not be negative"}
		}
	}
	return nil
}

type InterruptionTriggerRequest struct {
	CurrentCode string `json:"current_code"`
}

func (r *InterruptionTriggerRequest) Validate() error {
	// an empty snapshot is allowed, the candidate may not have typed yet
	return nil
}

type InterruptionAnswerRequest struct {
	Answer string `json:"answer"`
}

func (r *InterruptionAnswerRequest) Validate() error {
	if strings.TrimSpace(r.Answer) == "" {
		return &ErrorResponse{Code: "missing_answer", Message: "Answer field is required"}
	}
	return nil
}
