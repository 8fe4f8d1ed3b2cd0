package controller

import (
	"intern_portal_backend/internal/service"
	"intern_portal_backend/internal/util"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type AttemptController struct {
	Engine      *service.AttemptEngine
	TestService *service.TestService
	AuthService *service.AuthService
}

func NewAttemptController(engine *service.AttemptEngine, testService *service.TestService, authService *service.AuthService) *AttemptController {
	return &AttemptController{
		Engine:      engine,
		TestService: testService,
		AuthService: authService,
	}
}

// StartAttempt godoc
// @Summary 开始答题
// @Description 为当前学生开启一次计时答题。同一测试只能考一次，已有成绩时返回 409 并附带成绩。
// @Tags 答题
// @Produce  json
// @Security BearerAuth
// @Param   id path string true "测试 ID"
// @Success 200 {object} util.Response{data=service.AttemptSnapshot}
// @Failure 403 {object} util.Response "方向不匹配"
// @Failure 404 {object} util.Response "测试不存在"
// @Failure 409 {object} util.Response{data=model.TestScore} "已考过"
// @Router /api/tests/{id}/start [post]
func (c *AttemptController) StartAttempt(ctx *gin.Context) {
	student := c.AuthService.GetCurrentUser(ctx)
	if student == nil {
		util.Unauthorized(ctx)
		return
	}

	test, err := c.TestService.GetByID(ctx.Param("id"))
	if err != nil {
		if errors.Is(err, util.ErrTestNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	if test.Domain != student.InternshipDomain {
		util.Forbidden(ctx)
		return
	}

	snapshot, err := c.Engine.Start(student.ID, test)
	if err != nil {
		if errors.Is(err, util.ErrTestAlreadyTaken) {
			score, scoreErr := c.TestService.GetScore(student.ID, test.ID)
			if scoreErr != nil {
				util.Conflict(ctx, "该测试已考过")
				return
			}
			ctx.JSON(http.StatusConflict, util.Response{
				Code:    http.StatusConflict,
				Message: "该测试已考过",
				Data:    score,
			})
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, snapshot)
}

// AnswerRequest 选择答案请求
// swagger:model AnswerRequest
type AnswerRequest struct {
	QuestionIndex int `json:"questionIndex"`
	OptionIndex   int `json:"optionIndex"`
}

// SelectAnswer godoc
// @Summary 选择答案
// @Description 记录某题的选项，同一题可反复改选
// @Tags 答题
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   id path string true "答题 ID"
// @Param   body body AnswerRequest true "题号与选项下标"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response "下标越界"
// @Failure 404 {object} util.Response "答题不存在"
// @Failure 409 {object} util.Response "答题已结束"
// @Router /api/attempts/{id}/answer [post]
func (c *AttemptController) SelectAnswer(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req AnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.Engine.SelectAnswer(ctx.Param("id"), claims.UserID, req.QuestionIndex, req.OptionIndex); err != nil {
		c.attemptError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// NavigateRequest 跳题请求
// swagger:model NavigateRequest
type NavigateRequest struct {
	QuestionIndex int `json:"questionIndex"`
}

// Navigate godoc
// @Summary 跳转题目
// @Description 任意方向跳题，不要求按顺序作答
// @Tags 答题
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   id path string true "答题 ID"
// @Param   body body NavigateRequest true "目标题号"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response "下标越界"
// @Router /api/attempts/{id}/navigate [post]
func (c *AttemptController) Navigate(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req NavigateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.Engine.Navigate(ctx.Param("id"), claims.UserID, req.QuestionIndex); err != nil {
		c.attemptError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// GetAttempt godoc
// @Summary 答题状态
// @Description 当前进度、已选答案与剩余秒数
// @Tags 答题
// @Produce  json
// @Security BearerAuth
// @Param   id path string true "答题 ID"
// @Success 200 {object} util.Response{data=service.AttemptSnapshot}
// @Failure 404 {object} util.Response "答题不存在"
// @Router /api/attempts/{id} [get]
func (c *AttemptController) GetAttempt(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	snapshot, err := c.Engine.Snapshot(ctx.Param("id"), claims.UserID)
	if err != nil {
		c.attemptError(ctx, err)
		return
	}
	util.Success(ctx, snapshot)
}

// SubmitAttempt godoc
// @Summary 提交答题
// @Description 主动交卷。未超时前必须答完所有题目；超时后缺答按错误计分。
// @Tags 答题
// @Produce  json
// @Security BearerAuth
// @Param   id path string true "答题 ID"
// @Success 200 {object} util.Response{data=service.AttemptResult}
// @Failure 400 {object} util.Response "存在未作答题目"
// @Failure 404 {object} util.Response "答题不存在"
// @Router /api/attempts/{id}/submit [post]
func (c *AttemptController) SubmitAttempt(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	result, err := c.Engine.Submit(ctx.Param("id"), claims.UserID)
	if err != nil {
		c.attemptError(ctx, err)
		return
	}
	util.Success(ctx, result)
}

func (c *AttemptController) attemptError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrAttemptNotFound):
		util.NotFound(ctx)
	case errors.Is(err, util.ErrAttemptFinished):
		util.Conflict(ctx, "答题已结束")
	case errors.Is(err, util.ErrQuestionIndex):
		util.BadRequest(ctx, "题目下标越界")
	case errors.Is(err, util.ErrUnansweredQuestions):
		util.BadRequest(ctx, "所有题目作答后才能交卷")
	default:
		util.LogInternalError(ctx, err)
	}
}
