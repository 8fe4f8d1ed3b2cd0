package service

import (
	"intern_portal_backend/internal/model"
	"intern_portal_backend/internal/util"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

type fakeScoreStore struct {
	records  []*model.TestScore
	failNext bool
}

func newFakeScoreStore() *fakeScoreStore {
	return &fakeScoreStore{}
}

func (s *fakeScoreStore) Exists(studentID uint, testID string) (bool, error) {
	for _, r := range s.records {
		if r.StudentID == studentID && r.TestID == testID {
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeScoreStore) Create(score *model.TestScore) error {
	if s.failNext {
		s.failNext = false
		return errors.New("store unavailable")
	}
	s.records = append(s.records, score)
	return nil
}

func makeTest(t *testing.T, id string, duration int, correct []int) *model.Test {
	t.Helper()
	test := &model.Test{Title: "Sample Test", Duration: duration, Domain: "Web Development"}
	test.ID = id
	opts, _ := json.Marshal([]string{"A", "B", "C", "D"})
	for i, answer := range correct {
		test.Questions = append(test.Questions, model.TestQuestion{
			Content:       "q",
			Options:       opts,
			CorrectAnswer: answer,
			Order:         i,
		})
	}
	return test
}

func newTestEngine(store *fakeScoreStore) (*AttemptEngine, *time.Time) {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	clock := &now
	engine := NewAttemptEngineWithClock(store, func() time.Time { return *clock })
	return engine, clock
}

func TestSubmitAllCorrect(t *testing.T) {
	store := newFakeScoreStore()
	engine, _ := newTestEngine(store)
	test := makeTest(t, "t1", 30, []int{0, 1, 2, 3})

	snap, err := engine.Start(7, test)
	if err != nil {
		t.Fatalf("start failed: %v", err)
	}
	for i, answer := range []int{0, 1, 2, 3} {
		if err := engine.SelectAnswer(snap.ID, 7, i, answer); err != nil {
			t.Fatalf("answer %d failed: %v", i, err)
		}
	}

	result, err := engine.Submit(snap.ID, 7)
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if result.Score != 100 {
		t.Fatalf("expected score 100, got %v", result.Score)
	}
	if !result.Passed {
		t.Fatal("expected passed result")
	}
	if result.TimedOut {
		t.Fatal("manual submit should not be marked timed out")
	}
	if len(store.records) != 1 || store.records[0].Score != 100 {
		t.Fatalf("expected one persisted score of 100, got %+v", store.records)
	}
}

func TestSubmitAllWrong(t *testing.T) {
	store := newFakeScoreStore()
	engine, _ := newTestEngine(store)
	test := makeTest(t, "t1", 30, []int{0, 1, 2})

	snap, _ := engine.Start(7, test)
	for i := 0; i < 3; i++ {
		if err := engine.SelectAnswer(snap.ID, 7, i, 3); err != nil {
			t.Fatalf("answer failed: %v", err)
		}
	}

	result, err := engine.Submit(snap.ID, 7)
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if result.Score != 0 {
		t.Fatalf("expected score 0, got %v", result.Score)
	}
	if result.Passed {
		t.Fatal("expected failed result")
	}
}

func TestPartialScoreRounding(t *testing.T) {
	store := newFakeScoreStore()
	engine, _ := newTestEngine(store)
	test := makeTest(t, "t1", 30, []int{1, 0, 2})

	snap, _ := engine.Start(7, test)
	for i, answer := range []int{1, 0, 3} { // 2 of 3 correct
		if err := engine.SelectAnswer(snap.ID, 7, i, answer); err != nil {
			t.Fatalf("answer failed: %v", err)
		}
	}

	result, err := engine.Submit(snap.ID, 7)
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if result.Score != 66.7 {
		t.Fatalf("expected 66.7, got %v", result.Score)
	}
	if result.Passed {
		t.Fatal("66.7 is below the pass mark")
	}
	if result.CorrectAnswers != 2 {
		t.Fatalf("expected 2 correct, got %d", result.CorrectAnswers)
	}
}

func TestSubmitRejectsUnanswered(t *testing.T) {
	store := newFakeScoreStore()
	engine, _ := newTestEngine(store)
	test := makeTest(t, "t1", 30, []int{0, 1, 2})

	snap, _ := engine.Start(7, test)
	if err := engine.SelectAnswer(snap.ID, 7, 0, 0); err != nil {
		t.Fatalf("answer failed: %v", err)
	}

	if _, err := engine.Submit(snap.ID, 7); !errors.Is(err, util.ErrUnansweredQuestions) {
		t.Fatalf("expected ErrUnansweredQuestions, got %v", err)
	}

	// 拒绝提交不产生状态转换，答题仍可继续
	state, err := engine.Snapshot(snap.ID, 7)
	if err != nil {
		t.Fatalf("snapshot failed: %v", err)
	}
	if state.State != AttemptInProgress {
		t.Fatalf("expected attempt to stay in progress, got %s", state.State)
	}
	if len(store.records) != 0 {
		t.Fatal("rejected submit must not persist a score")
	}
}

func TestAnswerOverwriteAndNavigate(t *testing.T) {
	store := newFakeScoreStore()
	engine, _ := newTestEngine(store)
	test := makeTest(t, "t1", 30, []int{2, 2})

	snap, _ := engine.Start(7, test)
	if err := engine.SelectAnswer(snap.ID, 7, 0, 1); err != nil {
		t.Fatalf("answer failed: %v", err)
	}
	if err := engine.SelectAnswer(snap.ID, 7, 0, 2); err != nil {
		t.Fatalf("overwrite failed: %v", err)
	}
	if err := engine.Navigate(snap.ID, 7, 1); err != nil {
		t.Fatalf("navigate failed: %v", err)
	}
	if err := engine.Navigate(snap.ID, 7, 5); !errors.Is(err, util.ErrQuestionIndex) {
		t.Fatalf("expected ErrQuestionIndex, got %v", err)
	}
	if err := engine.SelectAnswer(snap.ID, 7, 1, 2); err != nil {
		t.Fatalf("answer failed: %v", err)
	}

	state, _ := engine.Snapshot(snap.ID, 7)
	if state.CurrentQuestion != 1 {
		t.Fatalf("expected current question 1, got %d", state.CurrentQuestion)
	}
	if state.Answers[0] != 2 {
		t.Fatalf("expected overwritten answer 2, got %d", state.Answers[0])
	}

	result, err := engine.Submit(snap.ID, 7)
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if result.Score != 100 {
		t.Fatalf("expected 100 after overwrite, got %v", result.Score)
	}
}

func TestExpiryForcesScoring(t *testing.T) {
	store := newFakeScoreStore()
	engine, clock := newTestEngine(store)
	test := makeTest(t, "t1", 10, []int{0, 1, 2, 3})

	snap, _ := engine.Start(7, test)
	// 只答对前两题，其余缺答
	_ = engine.SelectAnswer(snap.ID, 7, 0, 0)
	_ = engine.SelectAnswer(snap.ID, 7, 1, 1)

	*clock = clock.Add(10 * time.Minute)
	engine.ExpireOverdue()

	if engine.ActiveCount() != 0 {
		t.Fatalf("expected no active attempts, got %d", engine.ActiveCount())
	}
	if len(store.records) != 1 {
		t.Fatalf("expected one persisted score, got %d", len(store.records))
	}
	if store.records[0].Score != 50 {
		t.Fatalf("missing answers must count as wrong, expected 50, got %v", store.records[0].Score)
	}
}

func TestSubmitAfterDeadlineAllowsIncomplete(t *testing.T) {
	store := newFakeScoreStore()
	engine, clock := newTestEngine(store)
	test := makeTest(t, "t1", 10, []int{0, 1})

	snap, _ := engine.Start(7, test)
	_ = engine.SelectAnswer(snap.ID, 7, 0, 0)

	*clock = clock.Add(11 * time.Minute)
	result, err := engine.Submit(snap.ID, 7)
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if !result.TimedOut {
		t.Fatal("expected timed out result")
	}
	if result.Score != 50 {
		t.Fatalf("expected 50, got %v", result.Score)
	}
}

func TestStartRejectedAfterScoreExists(t *testing.T) {
	store := newFakeScoreStore()
	engine, _ := newTestEngine(store)
	test := makeTest(t, "t1", 30, []int{0})

	snap, _ := engine.Start(7, test)
	_ = engine.SelectAnswer(snap.ID, 7, 0, 0)
	if _, err := engine.Submit(snap.ID, 7); err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	if _, err := engine.Start(7, test); !errors.Is(err, util.ErrTestAlreadyTaken) {
		t.Fatalf("expected ErrTestAlreadyTaken, got %v", err)
	}
}

func TestStartIsIdempotentWhileInProgress(t *testing.T) {
	store := newFakeScoreStore()
	engine, _ := newTestEngine(store)
	test := makeTest(t, "t1", 30, []int{0, 1})

	first, _ := engine.Start(7, test)
	second, err := engine.Start(7, test)
	if err != nil {
		t.Fatalf("second start failed: %v", err)
	}
	if first.ID != second.ID {
		t.Fatalf("expected same attempt, got %s and %s", first.ID, second.ID)
	}
	if engine.ActiveCount() != 1 {
		t.Fatalf("expected 1 active attempt, got %d", engine.ActiveCount())
	}
}

func TestRemainingSecondsClamped(t *testing.T) {
	store := newFakeScoreStore()
	engine, clock := newTestEngine(store)
	test := makeTest(t, "t1", 1, []int{0})

	snap, _ := engine.Start(7, test)
	if snap.RemainingSeconds != 60 {
		t.Fatalf("expected 60 seconds, got %d", snap.RemainingSeconds)
	}

	*clock = clock.Add(2 * time.Minute)
	state, err := engine.Snapshot(snap.ID, 7)
	if err != nil {
		t.Fatalf("snapshot failed: %v", err)
	}
	if state.RemainingSeconds != 0 {
		t.Fatalf("remaining time must not go negative, got %d", state.RemainingSeconds)
	}
}

func TestPersistFailureStillReturnsResult(t *testing.T) {
	store := newFakeScoreStore()
	engine, _ := newTestEngine(store)
	test := makeTest(t, "t1", 30, []int{0})

	snap, _ := engine.Start(7, test)
	_ = engine.SelectAnswer(snap.ID, 7, 0, 0)

	store.failNext = true
	result, err := engine.Submit(snap.ID, 7)
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if result.Persisted {
		t.Fatal("expected Persisted=false on store failure")
	}
	if result.Score != 100 {
		t.Fatalf("score must still be computed, got %v", result.Score)
	}

	// 成绩未落库，学生可以重新开始
	if _, err := engine.Start(7, test); err != nil {
		t.Fatalf("restart after persist failure should succeed: %v", err)
	}
}

func TestAttemptOwnership(t *testing.T) {
	store := newFakeScoreStore()
	engine, _ := newTestEngine(store)
	test := makeTest(t, "t1", 30, []int{0})

	snap, _ := engine.Start(7, test)
	if err := engine.SelectAnswer(snap.ID, 8, 0, 0); !errors.Is(err, util.ErrAttemptNotFound) {
		t.Fatalf("other student must not touch the attempt, got %v", err)
	}
	if _, err := engine.Snapshot(snap.ID, 8); !errors.Is(err, util.ErrAttemptNotFound) {
		t.Fatalf("expected ErrAttemptNotFound, got %v", err)
	}
}
