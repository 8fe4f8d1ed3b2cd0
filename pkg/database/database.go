package database

import (
	"intern_portal_backend/internal/config"
	"intern_portal_backend/internal/model"
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig, admin *config.AdminConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	err = db.AutoMigrate(
		&model.User{},
		&model.InternshipDomain{},
		&model.Test{},
		&model.TestQuestion{},
		&model.TestScore{},
		&model.PerformancePoint{},
		&model.InterviewReferral{},
		&model.StudentQuery{},
	)

	if err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	// 管理员种子账号
	if admin != nil && admin.Email != "" {
		var count int64
		db.Model(&model.User{}).Where("role = ?", model.Admin).Count(&count)
		if count == 0 {
			hashed, err := bcrypt.GenerateFromPassword([]byte(admin.Password), bcrypt.DefaultCost)
			if err != nil {
				return nil, err
			}
			name := admin.Name
			if name == "" {
				name = "Admin"
			}
			db.Create(&model.User{
				Name:     name,
				Email:    admin.Email,
				Password: string(hashed),
				Role:     model.Admin,
			})
			log.Printf("Seeded admin account %s", admin.Email)
		}
	}

	// 默认实习方向（为空时插入常用方向）
	var domainCount int64
	db.Model(&model.InternshipDomain{}).Count(&domainCount)
	if domainCount == 0 {
		defaultDomains := []string{
			"Web Development",
			"Data Science",
			"Mobile Development",
			"Cloud Computing",
			"UI/UX Design",
		}
		for _, name := range defaultDomains {
			db.Create(&model.InternshipDomain{Name: name})
		}
	}

	return db, nil
}
