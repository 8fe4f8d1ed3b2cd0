package service

import (
	"intern_portal_backend/internal/model"
	"intern_portal_backend/internal/repository"
	"intern_portal_backend/internal/util"
	"errors"

	"gorm.io/gorm"
)

type DomainService struct {
	Repo *repository.DomainRepository
}

func NewDomainService(repo *repository.DomainRepository) *DomainService {
	return &DomainService{Repo: repo}
}

type CreateDomainRequest struct {
	Name string `json:"name" binding:"required"`
}

func (s *DomainService) Create(req CreateDomainRequest) (*model.InternshipDomain, error) {
	if _, err := s.Repo.FindByName(req.Name); err == nil {
		return nil, util.ErrDomainExists
	}
	domain := &model.InternshipDomain{Name: req.Name}
	if err := s.Repo.Create(domain); err != nil {
		return nil, err
	}
	return domain, nil
}

func (s *DomainService) List() ([]model.InternshipDomain, error) {
	return s.Repo.List()
}

// Delete 删除方向。引用该名称的学生和测试不受影响（冗余字符串，无外键）。
func (s *DomainService) Delete(id string) error {
	if _, err := s.Repo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrDomainNotFound
		}
		return err
	}
	return s.Repo.Delete(id)
}
