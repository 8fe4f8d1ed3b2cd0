package service

import "testing"

func validTestRequest() CreateTestRequest {
	return CreateTestRequest{
		Title:    "Go Basics",
		Duration: 30,
		Domain:   "Web Development",
		Questions: []QuestionRequest{
			{Question: "q1", Options: []string{"a", "b", "c", "d"}, CorrectAnswer: 0},
			{Question: "q2", Options: []string{"a", "b", "c", "d"}, CorrectAnswer: 3},
		},
	}
}

func TestValidateTestRequestAccepts(t *testing.T) {
	if err := ValidateTestRequest(validTestRequest()); err != nil {
		t.Fatalf("valid request rejected: %v", err)
	}
}

func TestValidateTestRequestNoQuestions(t *testing.T) {
	req := validTestRequest()
	req.Questions = nil
	if err := ValidateTestRequest(req); err == nil {
		t.Fatal("expected error for empty question list")
	}
}

func TestValidateTestRequestWrongOptionCount(t *testing.T) {
	req := validTestRequest()
	req.Questions[1].Options = []string{"a", "b", "c"}
	if err := ValidateTestRequest(req); err == nil {
		t.Fatal("expected error for 3 options")
	}

	req = validTestRequest()
	req.Questions[0].Options = []string{"a", "b", "c", "d", "e"}
	if err := ValidateTestRequest(req); err == nil {
		t.Fatal("expected error for 5 options")
	}
}

func TestValidateTestRequestEmptyOption(t *testing.T) {
	req := validTestRequest()
	req.Questions[0].Options[2] = ""
	if err := ValidateTestRequest(req); err == nil {
		t.Fatal("expected error for empty option")
	}
}

func TestValidateTestRequestAnswerOutOfRange(t *testing.T) {
	req := validTestRequest()
	req.Questions[0].CorrectAnswer = 4
	if err := ValidateTestRequest(req); err == nil {
		t.Fatal("expected error for answer index 4")
	}

	req = validTestRequest()
	req.Questions[0].CorrectAnswer = -1
	if err := ValidateTestRequest(req); err == nil {
		t.Fatal("expected error for negative answer index")
	}
}
