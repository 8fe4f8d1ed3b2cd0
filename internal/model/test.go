package model

import (
	"encoding/json"
	"time"
)

// 每道题固定 4 个选项，正确答案为选项下标
const OptionsPerQuestion = 4

// swagger:model Test
type Test struct {
	UUIDBase
	Title         string         `gorm:"size:255;not null" json:"title"`
	Description   string         `gorm:"type:text" json:"description"`
	Duration      int            `gorm:"not null" json:"duration"` // Minutes
	TotalMarks    int            `gorm:"default:0" json:"totalMarks"`
	ScheduledDate *time.Time     `json:"scheduledDate,omitempty"`
	Domain        string         `gorm:"size:100;not null" json:"domain"`
	CreatorID     uint           `gorm:"index;type:bigint unsigned" json:"creatorId"`
	Questions     []TestQuestion `gorm:"foreignKey:TestID" json:"questions,omitempty"`
}

func (Test) TableName() string {
	return "tests"
}

// swagger:model TestQuestion
type TestQuestion struct {
	UUIDBase
	TestID        string          `gorm:"index;type:varchar(36)" json:"testId"`
	Content       string          `gorm:"type:text;not null" json:"question"`
	Options       json.RawMessage `gorm:"type:json" json:"options"` // JSON: [4]string
	CorrectAnswer int             `gorm:"not null" json:"correctAnswer"`
	Order         int             `gorm:"default:0" json:"order"`
}

func (TestQuestion) TableName() string {
	return "test_questions"
}

// OptionList 解析存储的选项 JSON
func (q *TestQuestion) OptionList() ([]string, error) {
	var opts []string
	if err := json.Unmarshal(q.Options, &opts); err != nil {
		return nil, err
	}
	return opts, nil
}
