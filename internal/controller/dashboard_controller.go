package controller

import (
	"intern_portal_backend/internal/service"
	"intern_portal_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	DashboardService *service.DashboardService
	TestService      *service.TestService
	ContentService   *service.ContentService
	AuthService      *service.AuthService
}

func NewDashboardController(
	dashboardService *service.DashboardService,
	testService *service.TestService,
	contentService *service.ContentService,
	authService *service.AuthService,
) *DashboardController {
	return &DashboardController{
		DashboardService: dashboardService,
		TestService:      testService,
		ContentService:   contentService,
		AuthService:      authService,
	}
}

// AdminDashboard godoc
// @Summary 管理端概览
// @Description 学生、测试、推荐、待处理提问的计数，短缓存
// @Tags 概览
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=service.AdminDashboard}
// @Router /api/admin/dashboard [get]
func (c *DashboardController) AdminDashboard(ctx *gin.Context) {
	dashboard, err := c.DashboardService.AdminOverview(ctx.Request.Context())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, dashboard)
}

// StudentDashboard godoc
// @Summary 学生端概览
// @Description 可考测试、成绩、积分与推荐资格的汇总
// @Tags 概览
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=service.StudentDashboard}
// @Router /api/dashboard [get]
func (c *DashboardController) StudentDashboard(ctx *gin.Context) {
	student := c.AuthService.GetCurrentUser(ctx)
	if student == nil {
		util.Unauthorized(ctx)
		return
	}

	dashboard, err := c.DashboardService.StudentOverview(student, c.TestService)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, dashboard)
}

// WeeklySchedule godoc
// @Summary 实习周程表
// @Tags 学习内容
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]service.ScheduleDay}
// @Router /api/schedule [get]
func (c *DashboardController) WeeklySchedule(ctx *gin.Context) {
	util.Success(ctx, c.ContentService.WeeklySchedule())
}

// VideoLibrary godoc
// @Summary 学习视频库
// @Tags 学习内容
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]service.Video}
// @Router /api/videos [get]
func (c *DashboardController) VideoLibrary(ctx *gin.Context) {
	util.Success(ctx, c.ContentService.VideoLibrary())
}
