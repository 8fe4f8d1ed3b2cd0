package service

import (
	"intern_portal_backend/internal/model"
	"intern_portal_backend/internal/repository"
	"intern_portal_backend/internal/util"
	"errors"
	"time"

	"gorm.io/gorm"
)

type ReferralService struct {
	Repo      *repository.ReferralRepository
	PointRepo *repository.PointRepository
	UserRepo  *repository.UserRepository
}

func NewReferralService(repo *repository.ReferralRepository, pointRepo *repository.PointRepository, userRepo *repository.UserRepository) *ReferralService {
	return &ReferralService{Repo: repo, PointRepo: pointRepo, UserRepo: userRepo}
}

type CreateReferralRequest struct {
	StudentID           uint       `json:"studentId" binding:"required"`
	Company             string     `json:"company" binding:"required"`
	Position            string     `json:"position" binding:"required"`
	InterviewDate       *time.Time `json:"interviewDate"`
	InterviewEndingInfo string     `json:"interviewEndingInfo"`
	Notes               string     `json:"notes"`
}

// Create 创建推荐。只对创建时刻的积分做资格校验，之后积分下降不影响已有推荐。
func (s *ReferralService) Create(req CreateReferralRequest) (*model.InterviewReferral, error) {
	student, err := s.UserRepo.FindByID(req.StudentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}

	total, err := s.PointRepo.TotalByStudent(req.StudentID)
	if err != nil {
		return nil, err
	}
	if !model.EligibleForReferral(total) {
		return nil, util.ErrNotEligible
	}

	referral := &model.InterviewReferral{
		StudentID:           student.ID,
		StudentName:         student.Name,
		StudentEmail:        student.Email,
		Company:             req.Company,
		Position:            req.Position,
		InterviewDate:       req.InterviewDate,
		InterviewEndingInfo: req.InterviewEndingInfo,
		Notes:               req.Notes,
		Status:              model.ReferralStatusPending,
		ReferredDate:        time.Now(),
	}
	if err := s.Repo.Create(referral); err != nil {
		return nil, err
	}
	return referral, nil
}

// ReferralView 推荐的读取视图，状态为投影后的展示状态
type ReferralView struct {
	model.InterviewReferral
	Status string `json:"status"`
}

func (s *ReferralService) ListAll() ([]ReferralView, error) {
	referrals, err := s.Repo.ListAll()
	if err != nil {
		return nil, err
	}
	return s.project(referrals), nil
}

func (s *ReferralService) ListByStudent(studentID uint) ([]ReferralView, error) {
	referrals, err := s.Repo.ListByStudent(studentID)
	if err != nil {
		return nil, err
	}
	return s.project(referrals), nil
}

func (s *ReferralService) project(referrals []model.InterviewReferral) []ReferralView {
	now := time.Now()
	views := make([]ReferralView, 0, len(referrals))
	for _, r := range referrals {
		views = append(views, ReferralView{
			InterviewReferral: r,
			Status:            r.DisplayStatus(now),
		})
	}
	return views
}
