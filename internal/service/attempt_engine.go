package service

import (
	"intern_portal_backend/internal/model"
	"intern_portal_backend/internal/util"
	"intern_portal_backend/pkg/logger"
	"intern_portal_backend/pkg/monitoring"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ScoreStore 答题引擎对成绩存储的依赖，便于测试时替换
type ScoreStore interface {
	Exists(studentID uint, testID string) (bool, error)
	Create(score *model.TestScore) error
}

type AttemptState string

const (
	AttemptInProgress AttemptState = "in_progress"
	AttemptEnded      AttemptState = "ended" // 计时结束或提交后、评分落库前的瞬时状态
	AttemptCompleted  AttemptState = "completed"
)

// attemptTest 开始答题时对测试的快照，之后测试变化不影响进行中的答题
type attemptTest struct {
	ID             string
	Title          string
	Duration       int // Minutes
	CorrectAnswers []int
}

// Attempt 一名学生对一份测试的一次答题
type Attempt struct {
	mu        sync.Mutex
	ID        string
	StudentID uint
	test      attemptTest
	state     AttemptState
	current   int
	answers   map[int]int
	startedAt time.Time
	deadline  time.Time
}

type ownerKey struct {
	studentID uint
	testID    string
}

// AttemptSnapshot 引擎对外暴露的状态视图
type AttemptSnapshot struct {
	ID               string       `json:"id"`
	TestID           string       `json:"testId"`
	TestTitle        string       `json:"testTitle"`
	State            AttemptState `json:"state"`
	CurrentQuestion  int          `json:"currentQuestion"`
	TotalQuestions   int          `json:"totalQuestions"`
	Answers          map[int]int  `json:"answers"`
	RemainingSeconds int          `json:"remainingSeconds"`
}

// AttemptResult 评分结果；Persisted=false 表示成绩已计算但落库失败
type AttemptResult struct {
	TestID         string  `json:"testId"`
	TestTitle      string  `json:"testTitle"`
	Score          float64 `json:"score"`
	TotalQuestions int     `json:"totalQuestions"`
	CorrectAnswers int     `json:"correctAnswers"`
	Passed         bool    `json:"passed"`
	TimedOut       bool    `json:"timedOut"`
	Persisted      bool    `json:"persisted"`
}

// AttemptEngine 管理所有进行中的答题。答题期间的状态只在内存中，
// 唯一的持久化副作用是完成时写入一条 TestScore。
type AttemptEngine struct {
	mu       sync.Mutex
	attempts map[string]*Attempt
	byOwner  map[ownerKey]*Attempt
	scores   ScoreStore
	now      func() time.Time
}

func NewAttemptEngine(scores ScoreStore) *AttemptEngine {
	return NewAttemptEngineWithClock(scores, time.Now)
}

// NewAttemptEngineWithClock 测试用，注入时钟保证确定性
func NewAttemptEngineWithClock(scores ScoreStore, now func() time.Time) *AttemptEngine {
	return &AttemptEngine{
		attempts: make(map[string]*Attempt),
		byOwner:  make(map[ownerKey]*Attempt),
		scores:   scores,
		now:      now,
	}
}

// Start 开始一次答题。(student, test) 已有成绩时拒绝；
// 已有进行中的答题时返回原有答题（幂等）。
func (e *AttemptEngine) Start(studentID uint, test *model.Test) (*AttemptSnapshot, error) {
	if len(test.Questions) == 0 {
		return nil, util.ErrTestNotFound
	}

	taken, err := e.scores.Exists(studentID, test.ID)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, util.ErrTestAlreadyTaken
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	key := ownerKey{studentID: studentID, testID: test.ID}
	if existing, ok := e.byOwner[key]; ok {
		return existing.snapshot(e.now()), nil
	}

	correct := make([]int, len(test.Questions))
	for i, q := range test.Questions {
		correct[i] = q.CorrectAnswer
	}

	now := e.now()
	attempt := &Attempt{
		ID:        uuid.New().String(),
		StudentID: studentID,
		test: attemptTest{
			ID:             test.ID,
			Title:          test.Title,
			Duration:       test.Duration,
			CorrectAnswers: correct,
		},
		state:     AttemptInProgress,
		answers:   make(map[int]int),
		startedAt: now,
		deadline:  now.Add(time.Duration(test.Duration) * time.Minute),
	}

	e.attempts[attempt.ID] = attempt
	e.byOwner[key] = attempt
	monitoring.ActiveAttempts.Inc()

	return attempt.snapshot(now), nil
}

// SelectAnswer 记录某题的选项，提交前可以覆盖任意次
func (e *AttemptEngine) SelectAnswer(attemptID string, studentID uint, questionIndex, optionIndex int) error {
	attempt, err := e.lookup(attemptID, studentID)
	if err != nil {
		return err
	}

	attempt.mu.Lock()
	defer attempt.mu.Unlock()

	if attempt.state != AttemptInProgress {
		return util.ErrAttemptFinished
	}
	if questionIndex < 0 || questionIndex >= len(attempt.test.CorrectAnswers) {
		return util.ErrQuestionIndex
	}

	attempt.answers[questionIndex] = optionIndex
	return nil
}

// Navigate 跳到任意题号，不要求前面的题已作答
func (e *AttemptEngine) Navigate(attemptID string, studentID uint, questionIndex int) error {
	attempt, err := e.lookup(attemptID, studentID)
	if err != nil {
		return err
	}

	attempt.mu.Lock()
	defer attempt.mu.Unlock()

	if attempt.state != AttemptInProgress {
		return util.ErrAttemptFinished
	}
	if questionIndex < 0 || questionIndex >= len(attempt.test.CorrectAnswers) {
		return util.ErrQuestionIndex
	}

	attempt.current = questionIndex
	return nil
}

// Snapshot 当前答题状态，剩余时间按服务器时钟推算
func (e *AttemptEngine) Snapshot(attemptID string, studentID uint) (*AttemptSnapshot, error) {
	attempt, err := e.lookup(attemptID, studentID)
	if err != nil {
		return nil, err
	}
	return attempt.snapshot(e.now()), nil
}

// Submit 手动提交。所有题都已作答才允许；时间已到则按超时路径处理，
// 未作答的题按答错计。
func (e *AttemptEngine) Submit(attemptID string, studentID uint) (*AttemptResult, error) {
	attempt, err := e.lookup(attemptID, studentID)
	if err != nil {
		return nil, err
	}

	now := e.now()
	timedOut := !now.Before(attempt.deadline)

	attempt.mu.Lock()
	if attempt.state != AttemptInProgress {
		attempt.mu.Unlock()
		return nil, util.ErrAttemptFinished
	}
	if !timedOut && len(attempt.answers) < len(attempt.test.CorrectAnswers) {
		// 不发生状态转换，也不落库
		attempt.mu.Unlock()
		return nil, util.ErrUnansweredQuestions
	}
	attempt.state = AttemptEnded
	attempt.mu.Unlock()

	return e.finish(attempt, timedOut), nil
}

// ExpireOverdue 由后台每秒调用一次，把超时的答题强制提交。
// 与手动提交竞争时先进入 Ended 的一方生效，另一方为空操作。
func (e *AttemptEngine) ExpireOverdue() {
	now := e.now()

	e.mu.Lock()
	var overdue []*Attempt
	for _, attempt := range e.attempts {
		if !now.Before(attempt.deadline) {
			overdue = append(overdue, attempt)
		}
	}
	e.mu.Unlock()

	for _, attempt := range overdue {
		attempt.mu.Lock()
		if attempt.state != AttemptInProgress {
			attempt.mu.Unlock()
			continue
		}
		attempt.state = AttemptEnded
		attempt.mu.Unlock()

		result := e.finish(attempt, true)
		logger.Log.Info("attempt expired",
			zap.String("attemptId", attempt.ID),
			zap.Uint("studentId", attempt.StudentID),
			zap.Float64("score", result.Score),
		)
	}
}

// ActiveCount 进行中的答题数
func (e *AttemptEngine) ActiveCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.attempts)
}

// finish 评分并落库。调用方必须已把状态置为 Ended。
// 落库失败不回滚成绩：结果照常返回，仅记录错误并标记 Persisted=false。
func (e *AttemptEngine) finish(attempt *Attempt, timedOut bool) *AttemptResult {
	attempt.mu.Lock()

	total := len(attempt.test.CorrectAnswers)
	correctCount := 0
	for i, want := range attempt.test.CorrectAnswers {
		if got, ok := attempt.answers[i]; ok && got == want {
			correctCount++
		}
	}

	score := math.Round(float64(correctCount)/float64(total)*1000) / 10

	record := &model.TestScore{
		StudentID:      attempt.StudentID,
		TestID:         attempt.test.ID,
		TestTitle:      attempt.test.Title,
		Score:          score,
		TotalQuestions: total,
		CorrectAnswers: correctCount,
	}

	attempt.state = AttemptCompleted
	attempt.mu.Unlock()

	persisted := true
	if err := e.scores.Create(record); err != nil {
		persisted = false
		logger.Log.Error("failed to persist test score",
			zap.String("testId", attempt.test.ID),
			zap.Uint("studentId", attempt.StudentID),
			zap.Error(err),
		)
	}

	e.evict(attempt)

	return &AttemptResult{
		TestID:         attempt.test.ID,
		TestTitle:      attempt.test.Title,
		Score:          score,
		TotalQuestions: total,
		CorrectAnswers: correctCount,
		Passed:         score >= model.PassPercent,
		TimedOut:       timedOut,
		Persisted:      persisted,
	}
}

func (e *AttemptEngine) lookup(attemptID string, studentID uint) (*Attempt, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	attempt, ok := e.attempts[attemptID]
	if !ok || attempt.StudentID != studentID {
		return nil, util.ErrAttemptNotFound
	}
	return attempt, nil
}

func (e *AttemptEngine) evict(attempt *Attempt) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, ok := e.attempts[attempt.ID]; ok {
		delete(e.attempts, attempt.ID)
		delete(e.byOwner, ownerKey{studentID: attempt.StudentID, testID: attempt.test.ID})
		monitoring.ActiveAttempts.Dec()
	}
}

func (a *Attempt) snapshot(now time.Time) *AttemptSnapshot {
	a.mu.Lock()
	defer a.mu.Unlock()

	remaining := int(a.deadline.Sub(now).Seconds())
	if remaining < 0 {
		remaining = 0
	}

	answers := make(map[int]int, len(a.answers))
	for k, v := range a.answers {
		answers[k] = v
	}

	return &AttemptSnapshot{
		ID:               a.ID,
		TestID:           a.test.ID,
		TestTitle:        a.test.Title,
		State:            a.state,
		CurrentQuestion:  a.current,
		TotalQuestions:   len(a.test.CorrectAnswers),
		Answers:          answers,
		RemainingSeconds: remaining,
	}
}
