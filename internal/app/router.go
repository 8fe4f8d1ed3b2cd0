package app

import (
	"intern_portal_backend/docs"
	"intern_portal_backend/internal/config"
	"intern_portal_backend/internal/middleware"
	"intern_portal_backend/internal/model"

	"intern_portal_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 1. 公共路由(无需登录)
	a.registerPublicRoutes(router, c)

	// 2. 需要授权的路由
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg))
	{
		a.registerStudentRoutes(authGroup, c)
	}

	// 3. 管理员相关接口
	a.registerAdminRoutes(router, c, cfg)
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/login", c.auth.Login)
	}
}

func (a *App) registerStudentRoutes(rg *gin.RouterGroup, c *controllers) {
	rg.GET("/profile", c.auth.Me)
	rg.PUT("/profile", c.user.UpdateProfile)
	rg.POST("/profile/avatar", c.user.UploadAvatar)

	rg.GET("/dashboard", c.dashboard.StudentDashboard)
	rg.GET("/schedule", c.dashboard.WeeklySchedule)
	rg.GET("/videos", c.dashboard.VideoLibrary)
	rg.GET("/domains", c.domain.ListDomains)

	// 测试与答题
	rg.GET("/tests", c.test.ListStudentTests)
	rg.GET("/tests/:id", c.test.GetStudentTest)
	rg.POST("/tests/:id/start", c.attempt.StartAttempt)
	rg.GET("/attempts/:id", c.attempt.GetAttempt)
	rg.POST("/attempts/:id/answer", c.attempt.SelectAnswer)
	rg.POST("/attempts/:id/navigate", c.attempt.Navigate)
	rg.POST("/attempts/:id/submit", c.attempt.SubmitAttempt)

	// 积分 / 推荐 / 提问
	rg.GET("/points", c.point.MyPoints)
	rg.GET("/referrals", c.referral.MyReferrals)
	rg.GET("/queries", c.query.MyQueries)
	rg.POST("/queries", c.query.CreateQuery)
}

func (a *App) registerAdminRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	admin := router.Group("/api/admin")
	admin.Use(middleware.AuthMiddleware(cfg), middleware.RoleMiddleware(model.Admin))
	{
		admin.GET("/dashboard", c.dashboard.AdminDashboard)

		// 学生管理
		admin.POST("/students", c.user.CreateStudent)
		admin.POST("/students/bulk", c.user.BulkCreateStudents)
		admin.GET("/students", c.user.ListStudents)
		admin.GET("/students/:id", c.user.GetStudent)
		admin.GET("/students/:id/points", c.point.StudentLedger)

		// 实习方向
		admin.POST("/domains", c.domain.CreateDomain)
		admin.GET("/domains", c.domain.ListDomains)
		admin.DELETE("/domains/:id", c.domain.DeleteDomain)

		// 测试与成绩
		admin.POST("/tests", c.test.CreateTest)
		admin.GET("/tests", c.test.ListTests)
		admin.GET("/tests/:id", c.test.GetTest)
		admin.GET("/tests/:id/scores", c.test.ListTestScores)

		// 积分
		admin.POST("/points", c.point.AllocatePoints)
		admin.GET("/points/overview", c.point.PointsOverview)

		// 面试推荐
		admin.POST("/referrals", c.referral.CreateReferral)
		admin.GET("/referrals", c.referral.ListReferrals)

		// 学生提问
		admin.GET("/queries", c.query.ListQueries)
		admin.POST("/queries/:id/reply", c.query.ReplyQuery)
	}
}
