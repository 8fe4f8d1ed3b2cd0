package repository

import (
	"intern_portal_backend/internal/model"

	"gorm.io/gorm"
)

type ReferralRepository struct {
	DB *gorm.DB
}

func NewReferralRepository(db *gorm.DB) *ReferralRepository {
	return &ReferralRepository{DB: db}
}

func (r *ReferralRepository) Create(referral *model.InterviewReferral) error {
	return r.DB.Create(referral).Error
}

func (r *ReferralRepository) ListAll() ([]model.InterviewReferral, error) {
	var referrals []model.InterviewReferral
	err := r.DB.Order("referred_date DESC").Find(&referrals).Error
	return referrals, err
}

func (r *ReferralRepository) ListByStudent(studentID uint) ([]model.InterviewReferral, error) {
	var referrals []model.InterviewReferral
	err := r.DB.Where("student_id = ?", studentID).Order("referred_date DESC").Find(&referrals).Error
	return referrals, err
}

func (r *ReferralRepository) Count() (int64, error) {
	var count int64
	err := r.DB.Model(&model.InterviewReferral{}).Count(&count).Error
	return count, err
}
