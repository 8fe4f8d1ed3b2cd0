package model

// 及格线（百分比），仅用于展示标签，不影响积分
const PassPercent = 70.0

// TestScore 一次测试的最终成绩，(student, test) 至多一条。
// swagger:model TestScore
type TestScore struct {
	UUIDBase
	StudentID      uint    `gorm:"uniqueIndex:idx_student_test;type:bigint unsigned" json:"studentId"`
	TestID         string  `gorm:"uniqueIndex:idx_student_test;type:varchar(36)" json:"testId"`
	TestTitle      string  `gorm:"size:255" json:"testTitle"`
	Score          float64 `gorm:"not null" json:"score"` // 百分比 0-100，保留一位小数
	TotalQuestions int     `gorm:"not null" json:"totalQuestions"`
	CorrectAnswers int     `gorm:"not null" json:"correctAnswers"`
}

func (TestScore) TableName() string {
	return "test_scores"
}

// Passed 及格标签
func (s *TestScore) Passed() bool {
	return s.Score >= PassPercent
}
