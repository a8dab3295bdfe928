package models

import (
	"testing"
)

func expectErrCode(t *testing.T, err error, code string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error code %s but got nil", code)
	}
	resp, ok := err.(*ErrorResponse)
	if !ok {
		t.Fatalf("expected ErrorResponse, got %T", err)
	}
	if resp.Code != code {
		t.Fatalf("expected error code %s, got %s", code, resp.Code)
	}
}

func TestErrorResponse_Error(t *testing.T) {
	err := &ErrorResponse{Message: "failed"}
	if err.Error() != "failed" {
		t.Fatalf("expected message to be returned, got %s", err.Error())
	}
}

func TestCreateInterviewRequestValidate(t *testing.T) {
	expectErrCode(t, (&CreateInterviewRequest{CandidateName: "Ada"}).Validate(), "missing_role")
	expectErrCode(t, (&CreateInterviewRequest{Role: "backend engineer"}).Validate(), "missing_candidate_name")
	expectErrCode(t, (&CreateInterviewRequest{Role: "backend engineer", CandidateName: "Ada", Difficulty: "brutal"}).Validate(), "invalid_difficulty")

	req := &CreateInterviewRequest{Role: "backend engineer", CandidateName: "Ada"}
	if err := req.Validate(); err != nil {
		t.Fatalf("unexpected validation error: %v", err)
	}
	if req.Difficulty != "medium" {
		t.Fatalf("expected default difficulty medium, got %s", req.Difficulty)
	}

	req = &CreateInterviewRequest{Role: "backend engineer", CandidateName: "Ada", Difficulty: " Hard "}
	if err := req.Validate(); err != nil {
		t.Fatalf("unexpected validation error: %v", err)
	}
	if req.Difficulty != "hard" {
		t.Fatalf("expected normalized difficulty hard, got %s", req.Difficulty)
	}
}

func TestAnswerRequestsValidate(t *testing.T) {
	expectErrCode(t, (&SpokenAnswerRequest{Answer: "  "}).Validate(), "missing_answer")
	if err := (&SpokenAnswerRequest{Answer: "a binary heap"}).Validate(); err != nil {
		t.Fatalf("unexpected validation error: %v", err)
	}

	expectErrCode(t, (&MCQAnswerRequest{}).Validate(), "missing_selected_option")
	expectErrCode(t, (&MCQAnswerRequest{SelectedOption: "B", SelectionTimeMs: -1}).Validate(), "invalid_selection_time")
	if err := (&MCQAnswerRequest{SelectedOption: "B", SelectionTimeMs: 4200}).Validate(); err != nil {
		t.Fatalf("unexpected validation error: %v", err)
	}

	expectErrCode(t, (&JustificationRequest{}).Validate(), "missing_justification")
	expectErrCode(t, (&InterruptionAnswerRequest{}).Validate(), "missing_answer")
}

func TestCodeSubmissionRequestValidate(t *testing.T) {
	expectErrCode(t, (&CodeSubmissionRequest{}).Validate(), "missing_code")
	expectErrCode(t, (&CodeSubmissionRequest{
		Code:     "print(1)",
		Behavior: &BehaviorData{PasteCount: -1},
	}).Validate(), "invalid_behavior_data")

	if err := (&CodeSubmissionRequest{Code: "print(1)"}).Validate(); err != nil {
		t.Fatalf("unexpected validation error: %v", err)
	}
}

func TestSelectionMatches(t *testing.T) {
	mcq := &MCQSlot{CorrectKey: "B"}

	if !mcq.SelectionMatches("B") {
		t.Fatal("expected bare key to match")
	}
	if !mcq.SelectionMatches("b) hash table") {
		t.Fatal("expected full option text to match on leading character")
	}
	if mcq.SelectionMatches("C") {
		t.Fatal("expected wrong key not to match")
	}
	if mcq.SelectionMatches("") {
		t.Fatal("expected empty selection not to match")
	}
}

func TestLogicUnderstandingScore(t *testing.T) {
	cases := map[string]int{
		"excellent": 9,
		"Good":      7,
		"fair":      5,
		"poor":      3,
		"???":       5,
		"":          5,
	}
	for level, want := range cases {
		eval := &CodingEvaluation{LogicUnderstanding: level}
		if got := eval.LogicUnderstandingScore(); got != want {
			t.Fatalf("LogicUnderstandingScore(%q): expected %d, got %d", level, want, got)
		}
	}
}
