package repository

import (
	"intern_portal_backend/internal/model"

	"gorm.io/gorm"
)

type PointRepository struct {
	DB *gorm.DB
}

func NewPointRepository(db *gorm.DB) *PointRepository {
	return &PointRepository{DB: db}
}

// Append 追加一条流水，已有条目永不修改
func (r *PointRepository) Append(entry *model.PerformancePoint) error {
	return r.DB.Create(entry).Error
}

func (r *PointRepository) ListByStudent(studentID uint) ([]model.PerformancePoint, error) {
	var entries []model.PerformancePoint
	err := r.DB.Where("student_id = ?", studentID).Order("date DESC").Find(&entries).Error
	return entries, err
}

// TotalByStudent 总分每次从流水 SUM 推导，不落库
func (r *PointRepository) TotalByStudent(studentID uint) (int, error) {
	var total int64
	err := r.DB.Model(&model.PerformancePoint{}).
		Where("student_id = ?", studentID).
		Select("COALESCE(SUM(points), 0)").
		Scan(&total).Error
	return int(total), err
}

// TotalsByStudent 一次查询取回所有学生的总分
func (r *PointRepository) TotalsByStudent() (map[uint]int, error) {
	type row struct {
		StudentID uint
		Total     int64
	}
	var rows []row
	err := r.DB.Model(&model.PerformancePoint{}).
		Select("student_id, SUM(points) AS total").
		Group("student_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	totals := make(map[uint]int, len(rows))
	for _, r := range rows {
		totals[r.StudentID] = int(r.Total)
	}
	return totals, nil
}
