package service

import (
	"intern_portal_backend/internal/model"
	"intern_portal_backend/internal/repository"
	"intern_portal_backend/internal/util"
	"errors"
	"time"

	"gorm.io/gorm"
)

type PointService struct {
	Repo     *repository.PointRepository
	UserRepo *repository.UserRepository
}

func NewPointService(repo *repository.PointRepository, userRepo *repository.UserRepository) *PointService {
	return &PointService{Repo: repo, UserRepo: userRepo}
}

type AllocatePointsRequest struct {
	StudentID uint   `json:"studentId" binding:"required"`
	Points    int    `json:"points" binding:"required"` // 可为负，不得为零
	Reason    string `json:"reason" binding:"required"`
}

// Allocate 追加一条积分流水
func (s *PointService) Allocate(req AllocatePointsRequest) (*model.PerformancePoint, error) {
	if _, err := s.UserRepo.FindByID(req.StudentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}

	entry := &model.PerformancePoint{
		StudentID: req.StudentID,
		Points:    req.Points,
		Reason:    req.Reason,
		Date:      time.Now(),
	}
	if err := s.Repo.Append(entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// StudentLedger 学生积分流水与总分
type StudentLedger struct {
	Entries  []model.PerformancePoint `json:"entries"`
	Total    int                      `json:"total"`
	Eligible bool                     `json:"eligibleForReferral"`
}

func (s *PointService) Ledger(studentID uint) (*StudentLedger, error) {
	entries, err := s.Repo.ListByStudent(studentID)
	if err != nil {
		return nil, err
	}
	total := model.TotalPoints(entries)
	return &StudentLedger{
		Entries:  entries,
		Total:    total,
		Eligible: model.EligibleForReferral(total),
	}, nil
}

// StudentPointSummary 管理端概览行
type StudentPointSummary struct {
	StudentID        uint   `json:"studentId"`
	Name             string `json:"name"`
	Email            string `json:"email"`
	InternshipDomain string `json:"internshipDomain"`
	Total            int    `json:"total"`
	Eligible         bool   `json:"eligibleForReferral"`
}

// Overview 所有学生的积分总览，无流水的学生总分为 0
func (s *PointService) Overview(search string, page, limit int) ([]StudentPointSummary, int64, error) {
	students, total, err := s.UserRepo.ListStudents(search, page, limit)
	if err != nil {
		return nil, 0, err
	}
	totals, err := s.Repo.TotalsByStudent()
	if err != nil {
		return nil, 0, err
	}

	rows := make([]StudentPointSummary, 0, len(students))
	for _, st := range students {
		sum := totals[st.ID]
		rows = append(rows, StudentPointSummary{
			StudentID:        st.ID,
			Name:             st.Name,
			Email:            st.Email,
			InternshipDomain: st.InternshipDomain,
			Total:            sum,
			Eligible:         model.EligibleForReferral(sum),
		})
	}
	return rows, total, nil
}
