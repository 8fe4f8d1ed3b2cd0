package repository

import (
	"intern_portal_backend/internal/model"
	"errors"

	"gorm.io/gorm"
)

type TestScoreRepository struct {
	DB *gorm.DB
}

func NewTestScoreRepository(db *gorm.DB) *TestScoreRepository {
	return &TestScoreRepository{DB: db}
}

func (r *TestScoreRepository) Create(score *model.TestScore) error {
	return r.DB.Create(score).Error
}

func (r *TestScoreRepository) FindByStudentAndTest(studentID uint, testID string) (*model.TestScore, error) {
	var score model.TestScore
	err := r.DB.Where("student_id = ? AND test_id = ?", studentID, testID).First(&score).Error
	return &score, err
}

// Exists (student, test) 是否已有成绩
func (r *TestScoreRepository) Exists(studentID uint, testID string) (bool, error) {
	_, err := r.FindByStudentAndTest(studentID, testID)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	return false, err
}

func (r *TestScoreRepository) ListByStudent(studentID uint) ([]model.TestScore, error) {
	var scores []model.TestScore
	err := r.DB.Where("student_id = ?", studentID).Order("created_at DESC").Find(&scores).Error
	return scores, err
}

func (r *TestScoreRepository) ListByTest(testID string) ([]model.TestScore, error) {
	var scores []model.TestScore
	err := r.DB.Where("test_id = ?", testID).Order("score DESC").Find(&scores).Error
	return scores, err
}
