package service

import (
	"intern_portal_backend/internal/model"
	"intern_portal_backend/internal/repository"
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	adminDashboardCacheKey = "dashboard:admin"
	adminDashboardCacheTTL = 30 * time.Second
)

// DashboardService 聚合各仓储的统计数据，管理端概览走 Redis 短缓存
type DashboardService struct {
	UserRepo     *repository.UserRepository
	TestRepo     *repository.TestRepository
	ScoreRepo    *repository.TestScoreRepository
	PointRepo    *repository.PointRepository
	ReferralRepo *repository.ReferralRepository
	QueryRepo    *repository.QueryRepository
	Redis        *redis.Client
}

func NewDashboardService(
	userRepo *repository.UserRepository,
	testRepo *repository.TestRepository,
	scoreRepo *repository.TestScoreRepository,
	pointRepo *repository.PointRepository,
	referralRepo *repository.ReferralRepository,
	queryRepo *repository.QueryRepository,
	rdb *redis.Client,
) *DashboardService {
	return &DashboardService{
		UserRepo:     userRepo,
		TestRepo:     testRepo,
		ScoreRepo:    scoreRepo,
		PointRepo:    pointRepo,
		ReferralRepo: referralRepo,
		QueryRepo:    queryRepo,
		Redis:        rdb,
	}
}

type AdminDashboard struct {
	TotalStudents  int64 `json:"totalStudents"`
	TotalTests     int64 `json:"totalTests"`
	TotalReferrals int64 `json:"totalReferrals"`
	PendingQueries int64 `json:"pendingQueries"`
}

// AdminOverview 管理端概览计数，命中缓存时直接返回
func (s *DashboardService) AdminOverview(ctx context.Context) (*AdminDashboard, error) {
	if s.Redis != nil {
		if cached, err := s.Redis.Get(ctx, adminDashboardCacheKey).Result(); err == nil {
			var dashboard AdminDashboard
			if err := json.Unmarshal([]byte(cached), &dashboard); err == nil {
				return &dashboard, nil
			}
		}
	}

	students, err := s.UserRepo.CountStudents()
	if err != nil {
		return nil, err
	}
	tests, err := s.TestRepo.Count()
	if err != nil {
		return nil, err
	}
	referrals, err := s.ReferralRepo.Count()
	if err != nil {
		return nil, err
	}
	pending, err := s.QueryRepo.CountPending()
	if err != nil {
		return nil, err
	}

	dashboard := &AdminDashboard{
		TotalStudents:  students,
		TotalTests:     tests,
		TotalReferrals: referrals,
		PendingQueries: pending,
	}

	if s.Redis != nil {
		if data, err := json.Marshal(dashboard); err == nil {
			if err := s.Redis.Set(ctx, adminDashboardCacheKey, data, adminDashboardCacheTTL).Err(); err != nil {
				zap.L().Warn("缓存管理端概览失败", zap.Error(err))
			}
		}
	}
	return dashboard, nil
}

type StudentDashboard struct {
	AvailableTests int               `json:"availableTests"`
	CompletedTests int               `json:"completedTests"`
	TotalPoints    int               `json:"totalPoints"`
	Eligible       bool              `json:"eligibleForReferral"`
	Referrals      int               `json:"referrals"`
	PendingQueries int               `json:"pendingQueries"`
	RecentScores   []model.TestScore `json:"recentScores"`
	UpcomingTests  []StudentTestView `json:"upcomingTests"`
}

// StudentOverview 学生端概览，按学生方向与流水实时推导
func (s *DashboardService) StudentOverview(student *model.User, tests *TestService) (*StudentDashboard, error) {
	views, err := tests.ListForStudent(student)
	if err != nil {
		return nil, err
	}

	scores, err := s.ScoreRepo.ListByStudent(student.ID)
	if err != nil {
		return nil, err
	}
	total, err := s.PointRepo.TotalByStudent(student.ID)
	if err != nil {
		return nil, err
	}
	referrals, err := s.ReferralRepo.ListByStudent(student.ID)
	if err != nil {
		return nil, err
	}
	queries, err := s.QueryRepo.ListByStudent(student.ID)
	if err != nil {
		return nil, err
	}

	pending := 0
	for _, q := range queries {
		if q.Status == model.QueryStatusPending {
			pending++
		}
	}

	upcoming := make([]StudentTestView, 0)
	for _, v := range views {
		if v.Score == nil {
			upcoming = append(upcoming, v)
		}
	}

	recent := scores
	if len(recent) > 5 {
		recent = recent[:5]
	}

	return &StudentDashboard{
		AvailableTests: len(views),
		CompletedTests: len(scores),
		TotalPoints:    total,
		Eligible:       model.EligibleForReferral(total),
		Referrals:      len(referrals),
		PendingQueries: pending,
		RecentScores:   recent,
		UpcomingTests:  upcoming,
	}, nil
}
