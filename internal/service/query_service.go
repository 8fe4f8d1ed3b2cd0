package service

import (
	"intern_portal_backend/internal/model"
	"intern_portal_backend/internal/repository"
	"intern_portal_backend/internal/util"
	"errors"
	"time"

	"gorm.io/gorm"
)

type QueryService struct {
	Repo *repository.QueryRepository
}

func NewQueryService(repo *repository.QueryRepository) *QueryService {
	return &QueryService{Repo: repo}
}

type CreateQueryRequest struct {
	Subject     string `json:"subject" binding:"required"`
	Description string `json:"description" binding:"required"`
}

func (s *QueryService) Create(student *model.User, req CreateQueryRequest) (*model.StudentQuery, error) {
	query := &model.StudentQuery{
		StudentID:    student.ID,
		StudentName:  student.Name,
		StudentEmail: student.Email,
		Subject:      req.Subject,
		Description:  req.Description,
		Status:       model.QueryStatusPending,
	}
	if err := s.Repo.Create(query); err != nil {
		return nil, err
	}
	return query, nil
}

type ReplyQueryRequest struct {
	Reply string `json:"reply" binding:"required"`
}

// Reply 回复提问并标记为 Resolved，已解决的提问不允许再回复
func (s *QueryService) Reply(queryID string, req ReplyQueryRequest) (*model.StudentQuery, error) {
	query, err := s.Repo.FindByID(queryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrQueryNotFound
		}
		return nil, err
	}
	if query.Status == model.QueryStatusResolved {
		return nil, util.ErrQueryResolved
	}

	now := time.Now()
	query.Reply = req.Reply
	query.RepliedAt = &now
	query.Status = model.QueryStatusResolved
	if err := s.Repo.Update(query); err != nil {
		return nil, err
	}
	return query, nil
}

func (s *QueryService) ListAll() ([]model.StudentQuery, error) {
	return s.Repo.ListAll()
}

func (s *QueryService) ListByStudent(studentID uint) ([]model.StudentQuery, error) {
	return s.Repo.ListByStudent(studentID)
}
