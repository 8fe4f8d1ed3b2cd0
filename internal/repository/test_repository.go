package repository

import (
	"intern_portal_backend/internal/model"

	"gorm.io/gorm"
)

type TestRepository struct {
	DB *gorm.DB
}

func NewTestRepository(db *gorm.DB) *TestRepository {
	return &TestRepository{DB: db}
}

// CreateWithQuestions 测试和题目在同一事务内创建，测试创建后不可修改
func (r *TestRepository) CreateWithQuestions(test *model.Test) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Create(test).Error
	})
}

func (r *TestRepository) FindByID(id string) (*model.Test, error) {
	var test model.Test
	err := r.DB.Preload("Questions", func(db *gorm.DB) *gorm.DB {
		return db.Order("test_questions.order ASC")
	}).First(&test, "id = ?", id).Error
	return &test, err
}

func (r *TestRepository) ListAll() ([]model.Test, error) {
	var tests []model.Test
	err := r.DB.Preload("Questions", func(db *gorm.DB) *gorm.DB {
		return db.Order("test_questions.order ASC")
	}).Order("created_at DESC").Find(&tests).Error
	return tests, err
}

// ListByDomain 按实习方向过滤（学生端列表）
func (r *TestRepository) ListByDomain(domain string) ([]model.Test, error) {
	var tests []model.Test
	err := r.DB.Preload("Questions", func(db *gorm.DB) *gorm.DB {
		return db.Order("test_questions.order ASC")
	}).Where("domain = ?", domain).Order("created_at DESC").Find(&tests).Error
	return tests, err
}

func (r *TestRepository) Count() (int64, error) {
	var count int64
	err := r.DB.Model(&model.Test{}).Count(&count).Error
	return count, err
}
