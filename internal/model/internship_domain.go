package model

// InternshipDomain 实习方向（如 "Web Development"）。
// Student.InternshipDomain 和 Test.Domain 保存的是名称副本，
// 删除方向不会级联修改已有数据。
// swagger:model InternshipDomain
type InternshipDomain struct {
	UUIDBase
	Name string `gorm:"size:100;unique;not null" json:"name"`
}

func (InternshipDomain) TableName() string {
	return "internship_domains"
}
