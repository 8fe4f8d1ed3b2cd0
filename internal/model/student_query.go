package model

import "time"

const (
	QueryStatusPending  = "Pending"
	QueryStatusResolved = "Resolved"
)

// StudentQuery 学生提问，管理员回复后转为 Resolved。
// swagger:model StudentQuery
type StudentQuery struct {
	UUIDBase
	StudentID    uint       `gorm:"index;type:bigint unsigned" json:"studentId"`
	StudentName  string     `gorm:"size:100" json:"studentName"`
	StudentEmail string     `gorm:"size:100" json:"studentEmail"`
	Subject      string     `gorm:"size:255;not null" json:"subject"`
	Description  string     `gorm:"type:text;not null" json:"description"`
	Status       string     `gorm:"size:20;default:'Pending'" json:"status"`
	Reply        string     `gorm:"type:text" json:"reply,omitempty"`
	RepliedAt    *time.Time `json:"repliedAt,omitempty"`
}

func (StudentQuery) TableName() string {
	return "student_queries"
}
