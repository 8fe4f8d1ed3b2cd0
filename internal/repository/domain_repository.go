package repository

import (
	"intern_portal_backend/internal/model"

	"gorm.io/gorm"
)

type DomainRepository struct {
	DB *gorm.DB
}

func NewDomainRepository(db *gorm.DB) *DomainRepository {
	return &DomainRepository{DB: db}
}

func (r *DomainRepository) Create(domain *model.InternshipDomain) error {
	return r.DB.Create(domain).Error
}

func (r *DomainRepository) List() ([]model.InternshipDomain, error) {
	var domains []model.InternshipDomain
	err := r.DB.Order("name ASC").Find(&domains).Error
	return domains, err
}

func (r *DomainRepository) FindByID(id string) (*model.InternshipDomain, error) {
	var domain model.InternshipDomain
	err := r.DB.First(&domain, "id = ?", id).Error
	return &domain, err
}

func (r *DomainRepository) FindByName(name string) (*model.InternshipDomain, error) {
	var domain model.InternshipDomain
	err := r.DB.Where("name = ?", name).First(&domain).Error
	return &domain, err
}

// Delete 删除方向；引用它的学生和测试保留原字符串，不级联
func (r *DomainRepository) Delete(id string) error {
	return r.DB.Delete(&model.InternshipDomain{}, "id = ?", id).Error
}
