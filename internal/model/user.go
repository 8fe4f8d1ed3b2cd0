package model

import (
	"time"
)

type UserRole string

const (
	Student UserRole = "student"
	Admin   UserRole = "admin"
)

// swagger:model User
type User struct {
	BaseModel
	Name             string    `gorm:"size:100;not null" json:"name"`
	Email            string    `gorm:"size:100;unique;not null" json:"email"`
	Password         string    `gorm:"size:100;not null" json:"-"`
	Role             UserRole  `gorm:"type:enum('student','admin');default:'student'" json:"role"`
	Phone            string    `gorm:"size:20" json:"phone"`
	InternshipDomain string    `gorm:"size:100" json:"internshipDomain"` // 冗余字符串，不做外键（见 internship_domain.go）
	Department       string    `gorm:"size:100" json:"department"`
	College          string    `gorm:"size:255" json:"college"`
	Skills           string    `gorm:"type:text" json:"skills"`
	Interests        string    `gorm:"type:text" json:"interests"`
	Github           string    `gorm:"size:255" json:"github"`
	Linkedin         string    `gorm:"size:255" json:"linkedin"`
	Avatar           string    `gorm:"size:255" json:"avatar"`
	LastLogin        time.Time `gorm:"default:CURRENT_TIMESTAMP(3)" json:"lastLogin"`
}

func (User) TableName() string {
	return "users"
}
