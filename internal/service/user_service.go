package service

import (
	"intern_portal_backend/internal/model"
	"intern_portal_backend/internal/repository"
	"intern_portal_backend/internal/util"
	"encoding/csv"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService struct {
	UserRepo *repository.UserRepository
}

func NewUserService(userRepo *repository.UserRepository) *UserService {
	return &UserService{UserRepo: userRepo}
}

type CreateStudentRequest struct {
	Name             string `json:"name" binding:"required"`
	Email            string `json:"email" binding:"required,email"`
	Password         string `json:"password" binding:"required,min=6"`
	Phone            string `json:"phone"`
	InternshipDomain string `json:"internshipDomain"`
	Department       string `json:"department"`
	College          string `json:"college"`
}

// CreateStudent 管理员创建学生账号
func (s *UserService) CreateStudent(req CreateStudentRequest) (*model.User, error) {
	_, err := s.UserRepo.FindByEmail(req.Email)
	if err == nil {
		return nil, util.ErrEmailRegistered
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	student := &model.User{
		Name:             req.Name,
		Email:            req.Email,
		Password:         string(hashed),
		Role:             model.Student,
		Phone:            req.Phone,
		InternshipDomain: req.InternshipDomain,
		Department:       req.Department,
		College:          req.College,
	}

	if err := s.UserRepo.Create(student); err != nil {
		return nil, err
	}
	return student, nil
}

// BulkImportResult 批量导入统计
type BulkImportResult struct {
	Created int      `json:"created"`
	Skipped int      `json:"skipped"`
	Errors  []string `json:"errors,omitempty"`
}

// ParseStudentCSV 解析批量导入数据，每行：
// name,email,password,phone,internshipDomain,department,college
// 缺少 name/email/password 的行跳过。
func ParseStudentCSV(data string) ([]CreateStudentRequest, int) {
	reader := csv.NewReader(strings.NewReader(strings.TrimSpace(data)))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var students []CreateStudentRequest
	skipped := 0

	for {
		record, err := reader.Read()
		if err != nil {
			break
		}

		for i := range record {
			record[i] = strings.TrimSpace(record[i])
		}
		// 不足 7 列的行补空
		for len(record) < 7 {
			record = append(record, "")
		}

		req := CreateStudentRequest{
			Name:             record[0],
			Email:            record[1],
			Password:         record[2],
			Phone:            record[3],
			InternshipDomain: record[4],
			Department:       record[5],
			College:          record[6],
		}

		if req.Name == "" || req.Email == "" || req.Password == "" {
			skipped++
			continue
		}
		students = append(students, req)
	}

	return students, skipped
}

// BulkCreateStudents 批量创建，单条失败不中断其余行
func (s *UserService) BulkCreateStudents(data string) (*BulkImportResult, error) {
	students, skipped := ParseStudentCSV(data)
	if len(students) == 0 {
		return nil, errors.New("no valid students found in import data")
	}

	result := &BulkImportResult{Skipped: skipped}
	for _, req := range students {
		if _, err := s.CreateStudent(req); err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, req.Email+": "+err.Error())
			continue
		}
		result.Created++
	}

	return result, nil
}

func (s *UserService) ListStudents(search string, page, limit int) ([]model.User, int64, error) {
	return s.UserRepo.ListStudents(search, page, limit)
}

func (s *UserService) GetUserByID(id uint) (*model.User, error) {
	return s.UserRepo.FindByID(id)
}

type UpdateProfileRequest struct {
	Phone      *string `json:"phone"`
	Department *string `json:"department"`
	College    *string `json:"college"`
	Skills     *string `json:"skills"`
	Interests  *string `json:"interests"`
	Github     *string `json:"github"`
	Linkedin   *string `json:"linkedin"`
}

// UpdateProfile 学生自助修改资料，邮箱和角色不可改
func (s *UserService) UpdateProfile(userID uint, req UpdateProfileRequest) (*model.User, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, util.ErrUserNotFound
	}

	if req.Phone != nil {
		user.Phone = *req.Phone
	}
	if req.Department != nil {
		user.Department = *req.Department
	}
	if req.College != nil {
		user.College = *req.College
	}
	if req.Skills != nil {
		user.Skills = *req.Skills
	}
	if req.Interests != nil {
		user.Interests = *req.Interests
	}
	if req.Github != nil {
		user.Github = *req.Github
	}
	if req.Linkedin != nil {
		user.Linkedin = *req.Linkedin
	}

	if err := s.UserRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) UpdateAvatar(userID uint, url string) error {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return util.ErrUserNotFound
	}
	user.Avatar = url
	return s.UserRepo.Update(user)
}
