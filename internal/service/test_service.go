package service

import (
	"intern_portal_backend/internal/model"
	"intern_portal_backend/internal/repository"
	"intern_portal_backend/internal/util"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

type TestService struct {
	Repo      *repository.TestRepository
	ScoreRepo *repository.TestScoreRepository
}

func NewTestService(repo *repository.TestRepository, scoreRepo *repository.TestScoreRepository) *TestService {
	return &TestService{Repo: repo, ScoreRepo: scoreRepo}
}

type QuestionRequest struct {
	Question      string   `json:"question" binding:"required"`
	Options       []string `json:"options" binding:"required"`
	CorrectAnswer int      `json:"correctAnswer"`
}

type CreateTestRequest struct {
	Title         string            `json:"title" binding:"required"`
	Description   string            `json:"description"`
	Duration      int               `json:"duration" binding:"required,min=1"` // Minutes
	TotalMarks    int               `json:"totalMarks"`
	ScheduledDate *time.Time        `json:"scheduledDate"`
	Domain        string            `json:"domain" binding:"required"`
	Questions     []QuestionRequest `json:"questions" binding:"required"`
}

// ValidateTestRequest 测试创建的不变量：至少一道题，每题恰好 4 个非空选项，
// 正确答案下标在 [0,3] 内。
func ValidateTestRequest(req CreateTestRequest) error {
	if len(req.Questions) == 0 {
		return errors.New("test must contain at least one question")
	}
	for i, q := range req.Questions {
		if len(q.Options) != model.OptionsPerQuestion {
			return fmt.Errorf("question %d must have exactly %d options", i+1, model.OptionsPerQuestion)
		}
		for j, opt := range q.Options {
			if opt == "" {
				return fmt.Errorf("question %d option %d is empty", i+1, j+1)
			}
		}
		if q.CorrectAnswer < 0 || q.CorrectAnswer >= model.OptionsPerQuestion {
			return fmt.Errorf("question %d correct answer index out of range", i+1)
		}
	}
	return nil
}

// CreateTest 创建后不可修改不可删除
func (s *TestService) CreateTest(creatorID uint, req CreateTestRequest) (*model.Test, error) {
	if err := ValidateTestRequest(req); err != nil {
		return nil, err
	}

	test := &model.Test{
		Title:         req.Title,
		Description:   req.Description,
		Duration:      req.Duration,
		TotalMarks:    req.TotalMarks,
		ScheduledDate: req.ScheduledDate,
		Domain:        req.Domain,
		CreatorID:     creatorID,
	}

	for i, q := range req.Questions {
		opts, err := json.Marshal(q.Options)
		if err != nil {
			return nil, err
		}
		test.Questions = append(test.Questions, model.TestQuestion{
			Content:       q.Question,
			Options:       opts,
			CorrectAnswer: q.CorrectAnswer,
			Order:         i,
		})
	}

	if err := s.Repo.CreateWithQuestions(test); err != nil {
		return nil, err
	}
	return test, nil
}

func (s *TestService) ListAll() ([]model.Test, error) {
	return s.Repo.ListAll()
}

func (s *TestService) GetByID(id string) (*model.Test, error) {
	test, err := s.Repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrTestNotFound
		}
		return nil, err
	}
	return test, nil
}

// StudentQuestionView 学生端题目视图，不带正确答案
type StudentQuestionView struct {
	Question string          `json:"question"`
	Options  json.RawMessage `json:"options"`
}

// StudentTestView 学生端测试视图；已有成绩时带上成绩
type StudentTestView struct {
	ID            string                `json:"id"`
	Title         string                `json:"title"`
	Description   string                `json:"description"`
	Duration      int                   `json:"duration"`
	TotalMarks    int                   `json:"totalMarks"`
	ScheduledDate *time.Time            `json:"scheduledDate,omitempty"`
	Domain        string                `json:"domain"`
	QuestionCount int                   `json:"questionCount"`
	Questions     []StudentQuestionView `json:"questions,omitempty"`
	Score         *model.TestScore      `json:"score,omitempty"`
}

// ListForStudent 只返回与学生实习方向一致的测试
func (s *TestService) ListForStudent(student *model.User) ([]StudentTestView, error) {
	tests, err := s.Repo.ListByDomain(student.InternshipDomain)
	if err != nil {
		return nil, err
	}

	views := make([]StudentTestView, 0, len(tests))
	for i := range tests {
		view := s.studentView(&tests[i], false)
		if score, err := s.ScoreRepo.FindByStudentAndTest(student.ID, tests[i].ID); err == nil {
			view.Score = score
		}
		views = append(views, *view)
	}
	return views, nil
}

// GetForStudent 测试详情（含题目，不含答案）。方向不匹配时拒绝。
func (s *TestService) GetForStudent(student *model.User, testID string) (*StudentTestView, error) {
	test, err := s.GetByID(testID)
	if err != nil {
		return nil, err
	}
	if test.Domain != student.InternshipDomain {
		return nil, util.ErrTestNotInDomain
	}

	view := s.studentView(test, true)
	if score, err := s.ScoreRepo.FindByStudentAndTest(student.ID, testID); err == nil {
		view.Score = score
	}
	return view, nil
}

func (s *TestService) studentView(test *model.Test, withQuestions bool) *StudentTestView {
	view := &StudentTestView{
		ID:            test.ID,
		Title:         test.Title,
		Description:   test.Description,
		Duration:      test.Duration,
		TotalMarks:    test.TotalMarks,
		ScheduledDate: test.ScheduledDate,
		Domain:        test.Domain,
		QuestionCount: len(test.Questions),
	}
	if withQuestions {
		for _, q := range test.Questions {
			view.Questions = append(view.Questions, StudentQuestionView{
				Question: q.Content,
				Options:  q.Options,
			})
		}
	}
	return view
}

func (s *TestService) ListScores(testID string) ([]model.TestScore, error) {
	return s.ScoreRepo.ListByTest(testID)
}

func (s *TestService) GetScore(studentID uint, testID string) (*model.TestScore, error) {
	return s.ScoreRepo.FindByStudentAndTest(studentID, testID)
}
