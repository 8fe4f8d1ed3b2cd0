package controller

import (
	"intern_portal_backend/internal/service"
	"intern_portal_backend/internal/util"
	"errors"

	"github.com/gin-gonic/gin"
)

type TestController struct {
	TestService *service.TestService
	AuthService *service.AuthService
}

func NewTestController(testService *service.TestService, authService *service.AuthService) *TestController {
	return &TestController{
		TestService: testService,
		AuthService: authService,
	}
}

// CreateTest godoc
// @Summary 创建测试
// @Description 创建带题目的测试，创建后不可修改。每题 4 个选项，正确答案下标 0-3。
// @Tags 测试
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body service.CreateTestRequest true "测试内容"
// @Success 201 {object} util.Response{data=model.Test}
// @Failure 400 {object} util.Response "题目不合法"
// @Router /api/admin/tests [post]
func (c *TestController) CreateTest(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.CreateTestRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	test, err := c.TestService.CreateTest(claims.UserID, req)
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	util.Created(ctx, test)
}

// ListTests godoc
// @Summary 测试列表（管理端）
// @Description 返回全部测试及题目
// @Tags 测试
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.Test}
// @Router /api/admin/tests [get]
func (c *TestController) ListTests(ctx *gin.Context) {
	tests, err := c.TestService.ListAll()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, tests)
}

// GetTest godoc
// @Summary 测试详情（管理端）
// @Tags 测试
// @Produce  json
// @Security BearerAuth
// @Param   id path string true "测试 ID"
// @Success 200 {object} util.Response{data=model.Test}
// @Failure 404 {object} util.Response "测试不存在"
// @Router /api/admin/tests/{id} [get]
func (c *TestController) GetTest(ctx *gin.Context) {
	test, err := c.TestService.GetByID(ctx.Param("id"))
	if err != nil {
		if errors.Is(err, util.ErrTestNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, test)
}

// ListTestScores godoc
// @Summary 测试成绩列表
// @Description 某个测试的全部学生成绩
// @Tags 测试
// @Produce  json
// @Security BearerAuth
// @Param   id path string true "测试 ID"
// @Success 200 {object} util.Response{data=[]model.TestScore}
// @Router /api/admin/tests/{id}/scores [get]
func (c *TestController) ListTestScores(ctx *gin.Context) {
	scores, err := c.TestService.ListScores(ctx.Param("id"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, scores)
}

// ListStudentTests godoc
// @Summary 测试列表（学生端）
// @Description 只返回与学生实习方向一致的测试，已考过的附带成绩
// @Tags 测试
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]service.StudentTestView}
// @Router /api/tests [get]
func (c *TestController) ListStudentTests(ctx *gin.Context) {
	student := c.AuthService.GetCurrentUser(ctx)
	if student == nil {
		util.Unauthorized(ctx)
		return
	}

	views, err := c.TestService.ListForStudent(student)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, views)
}

// GetStudentTest godoc
// @Summary 测试详情（学生端）
// @Description 含题目但不含正确答案，方向不匹配时拒绝
// @Tags 测试
// @Produce  json
// @Security BearerAuth
// @Param   id path string true "测试 ID"
// @Success 200 {object} util.Response{data=service.StudentTestView}
// @Failure 403 {object} util.Response "方向不匹配"
// @Failure 404 {object} util.Response "测试不存在"
// @Router /api/tests/{id} [get]
func (c *TestController) GetStudentTest(ctx *gin.Context) {
	student := c.AuthService.GetCurrentUser(ctx)
	if student == nil {
		util.Unauthorized(ctx)
		return
	}

	view, err := c.TestService.GetForStudent(student, ctx.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, util.ErrTestNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrTestNotInDomain):
			util.Forbidden(ctx)
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, view)
}
