package controller

import (
	"intern_portal_backend/internal/service"
	"intern_portal_backend/internal/util"
	"errors"

	"github.com/gin-gonic/gin"
)

type PointController struct {
	PointService *service.PointService
}

func NewPointController(pointService *service.PointService) *PointController {
	return &PointController{PointService: pointService}
}

// AllocatePoints godoc
// @Summary 分配绩效积分
// @Description 给学生追加一条积分流水，积分可为负
// @Tags 绩效积分
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body service.AllocatePointsRequest true "积分与原因"
// @Success 201 {object} util.Response{data=model.PerformancePoint}
// @Failure 400 {object} util.Response "请求参数错误"
// @Failure 404 {object} util.Response "学生不存在"
// @Router /api/admin/points [post]
func (c *PointController) AllocatePoints(ctx *gin.Context) {
	var req service.AllocatePointsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	entry, err := c.PointService.Allocate(req)
	if err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, entry)
}

// PointsOverview godoc
// @Summary 积分总览
// @Description 所有学生的积分合计与推荐资格
// @Tags 绩效积分
// @Produce  json
// @Security BearerAuth
// @Param   search query string false "姓名或邮箱关键字"
// @Param   page query int false "页码" default(1)
// @Param   limit query int false "每页数量" default(20)
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Router /api/admin/points/overview [get]
func (c *PointController) PointsOverview(ctx *gin.Context) {
	page, limit := util.ParsePage(ctx.Query("page"), ctx.Query("limit"))

	rows, total, err := c.PointService.Overview(ctx.Query("search"), page, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Page(ctx, rows, total, page, limit)
}

// StudentLedger godoc
// @Summary 学生积分明细（管理端）
// @Tags 绩效积分
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "学生 ID"
// @Success 200 {object} util.Response{data=service.StudentLedger}
// @Router /api/admin/students/{id}/points [get]
func (c *PointController) StudentLedger(ctx *gin.Context) {
	ledger, err := c.PointService.Ledger(util.MustParseUint(ctx.Param("id")))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, ledger)
}

// MyPoints godoc
// @Summary 我的积分
// @Description 当前学生的积分流水、总分与推荐资格
// @Tags 绩效积分
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=service.StudentLedger}
// @Router /api/points [get]
func (c *PointController) MyPoints(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	ledger, err := c.PointService.Ledger(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, ledger)
}
