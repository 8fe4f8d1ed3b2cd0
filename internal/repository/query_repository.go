package repository

import (
	"intern_portal_backend/internal/model"

	"gorm.io/gorm"
)

type QueryRepository struct {
	DB *gorm.DB
}

func NewQueryRepository(db *gorm.DB) *QueryRepository {
	return &QueryRepository{DB: db}
}

func (r *QueryRepository) Create(query *model.StudentQuery) error {
	return r.DB.Create(query).Error
}

func (r *QueryRepository) FindByID(id string) (*model.StudentQuery, error) {
	var query model.StudentQuery
	err := r.DB.First(&query, "id = ?", id).Error
	return &query, err
}

func (r *QueryRepository) Update(query *model.StudentQuery) error {
	return r.DB.Save(query).Error
}

func (r *QueryRepository) ListAll() ([]model.StudentQuery, error) {
	var queries []model.StudentQuery
	err := r.DB.Order("created_at DESC").Find(&queries).Error
	return queries, err
}

func (r *QueryRepository) ListByStudent(studentID uint) ([]model.StudentQuery, error) {
	var queries []model.StudentQuery
	err := r.DB.Where("student_id = ?", studentID).Order("created_at DESC").Find(&queries).Error
	return queries, err
}

func (r *QueryRepository) CountPending() (int64, error) {
	var count int64
	err := r.DB.Model(&model.StudentQuery{}).Where("status = ?", model.QueryStatusPending).Count(&count).Error
	return count, err
}
