package model

import "time"

const (
	ReferralStatusPending = "Pending"
	// 只在展示时推导，永远不会写入存储
	ReferralStatusCompleted = "COMPLETED"
)

// swagger:model InterviewReferral
type InterviewReferral struct {
	UUIDBase
	StudentID           uint       `gorm:"index;type:bigint unsigned" json:"studentId"`
	StudentName         string     `gorm:"size:100" json:"studentName"`
	StudentEmail        string     `gorm:"size:100" json:"studentEmail"`
	Company             string     `gorm:"size:255;not null" json:"company"`
	Position            string     `gorm:"size:255;not null" json:"position"`
	InterviewDate       *time.Time `json:"interviewDate,omitempty"`
	InterviewEndingInfo string     `gorm:"type:text" json:"interviewEndingInfo,omitempty"`
	Notes               string     `gorm:"type:text" json:"notes"`
	Status              string     `gorm:"size:20;default:'Pending'" json:"status"`
	ReferredDate        time.Time  `gorm:"not null" json:"referredDate"`
}

func (InterviewReferral) TableName() string {
	return "interview_referrals"
}

// DisplayStatus 读取时投影：面试时间已过则显示 COMPLETED，
// 否则返回存储的状态。不会回写。
func (r *InterviewReferral) DisplayStatus(now time.Time) string {
	if r.InterviewDate != nil && now.After(*r.InterviewDate) {
		return ReferralStatusCompleted
	}
	return r.Status
}
