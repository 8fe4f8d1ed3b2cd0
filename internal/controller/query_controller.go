package controller

import (
	"intern_portal_backend/internal/service"
	"intern_portal_backend/internal/util"
	"errors"

	"github.com/gin-gonic/gin"
)

type QueryController struct {
	QueryService *service.QueryService
	AuthService  *service.AuthService
}

func NewQueryController(queryService *service.QueryService, authService *service.AuthService) *QueryController {
	return &QueryController{
		QueryService: queryService,
		AuthService:  authService,
	}
}

// CreateQuery godoc
// @Summary 提交提问
// @Description 学生向管理员提交问题
// @Tags 学生提问
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body service.CreateQueryRequest true "问题内容"
// @Success 201 {object} util.Response{data=model.StudentQuery}
// @Failure 400 {object} util.Response "请求参数错误"
// @Router /api/queries [post]
func (c *QueryController) CreateQuery(ctx *gin.Context) {
	student := c.AuthService.GetCurrentUser(ctx)
	if student == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.CreateQueryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	query, err := c.QueryService.Create(student, req)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, query)
}

// MyQueries godoc
// @Summary 我的提问
// @Tags 学生提问
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.StudentQuery}
// @Router /api/queries [get]
func (c *QueryController) MyQueries(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	queries, err := c.QueryService.ListByStudent(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, queries)
}

// ListQueries godoc
// @Summary 提问列表（管理端）
// @Tags 学生提问
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.StudentQuery}
// @Router /api/admin/queries [get]
func (c *QueryController) ListQueries(ctx *gin.Context) {
	queries, err := c.QueryService.ListAll()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, queries)
}

// ReplyQuery godoc
// @Summary 回复提问
// @Description 回复后提问转为 Resolved，已解决的提问不能再回复
// @Tags 学生提问
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   id path string true "提问 ID"
// @Param   body body service.ReplyQueryRequest true "回复内容"
// @Success 200 {object} util.Response{data=model.StudentQuery}
// @Failure 404 {object} util.Response "提问不存在"
// @Failure 409 {object} util.Response "提问已解决"
// @Router /api/admin/queries/{id}/reply [post]
func (c *QueryController) ReplyQuery(ctx *gin.Context) {
	var req service.ReplyQueryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	query, err := c.QueryService.Reply(ctx.Param("id"), req)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrQueryNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrQueryResolved):
			util.Conflict(ctx, "提问已解决")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, query)
}
