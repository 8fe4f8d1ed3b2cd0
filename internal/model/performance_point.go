package model

import "time"

// 面试推荐的积分门槛
const ReferralPointThreshold = 70

// PerformancePoint 绩效积分流水，只追加不修改。
// swagger:model PerformancePoint
type PerformancePoint struct {
	UUIDBase
	StudentID uint      `gorm:"index;type:bigint unsigned" json:"studentId"`
	Points    int       `gorm:"not null" json:"points"` // 可为负
	Reason    string    `gorm:"type:text;not null" json:"reason"`
	Date      time.Time `gorm:"not null" json:"date"`
}

func (PerformancePoint) TableName() string {
	return "performance_points"
}

// TotalPoints 流水求和，总分永远从流水重新推导，不落库。
func TotalPoints(entries []PerformancePoint) int {
	total := 0
	for _, e := range entries {
		total += e.Points
	}
	return total
}

// EligibleForReferral 判断积分是否达到推荐门槛
func EligibleForReferral(total int) bool {
	return total >= ReferralPointThreshold
}
