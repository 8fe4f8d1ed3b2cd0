package controller

import (
	"intern_portal_backend/internal/service"
	"intern_portal_backend/internal/util"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ReferralController struct {
	ReferralService *service.ReferralService
}

func NewReferralController(referralService *service.ReferralService) *ReferralController {
	return &ReferralController{ReferralService: referralService}
}

// CreateReferral godoc
// @Summary 创建面试推荐
// @Description 学生积分达到门槛才能创建，资格只在创建时校验
// @Tags 面试推荐
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body service.CreateReferralRequest true "推荐信息"
// @Success 201 {object} util.Response{data=model.InterviewReferral}
// @Failure 400 {object} util.Response "请求参数错误"
// @Failure 404 {object} util.Response "学生不存在"
// @Failure 422 {object} util.Response "积分未达标"
// @Router /api/admin/referrals [post]
func (c *ReferralController) CreateReferral(ctx *gin.Context) {
	var req service.CreateReferralRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	referral, err := c.ReferralService.Create(req)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrUserNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrNotEligible):
			util.Error(ctx, http.StatusUnprocessableEntity, "学生积分未达到推荐门槛")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, referral)
}

// ListReferrals godoc
// @Summary 推荐列表（管理端）
// @Description 面试时间已过的推荐展示为 COMPLETED
// @Tags 面试推荐
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]service.ReferralView}
// @Router /api/admin/referrals [get]
func (c *ReferralController) ListReferrals(ctx *gin.Context) {
	referrals, err := c.ReferralService.ListAll()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, referrals)
}

// MyReferrals godoc
// @Summary 我的推荐
// @Tags 面试推荐
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]service.ReferralView}
// @Router /api/referrals [get]
func (c *ReferralController) MyReferrals(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	referrals, err := c.ReferralService.ListByStudent(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, referrals)
}
