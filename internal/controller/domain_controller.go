package controller

import (
	"intern_portal_backend/internal/service"
	"intern_portal_backend/internal/util"
	"errors"

	"github.com/gin-gonic/gin"
)

type DomainController struct {
	DomainService *service.DomainService
}

func NewDomainController(domainService *service.DomainService) *DomainController {
	return &DomainController{DomainService: domainService}
}

// CreateDomain godoc
// @Summary 新增实习方向
// @Tags 实习方向
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body service.CreateDomainRequest true "方向信息"
// @Success 201 {object} util.Response{data=model.InternshipDomain}
// @Failure 400 {object} util.Response "请求参数错误"
// @Failure 409 {object} util.Response "方向已存在"
// @Router /api/admin/domains [post]
func (c *DomainController) CreateDomain(ctx *gin.Context) {
	var req service.CreateDomainRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	domain, err := c.DomainService.Create(req)
	if err != nil {
		if errors.Is(err, util.ErrDomainExists) {
			util.Conflict(ctx, "方向已存在")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, domain)
}

// ListDomains godoc
// @Summary 实习方向列表
// @Tags 实习方向
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.InternshipDomain}
// @Router /api/domains [get]
func (c *DomainController) ListDomains(ctx *gin.Context) {
	domains, err := c.DomainService.List()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, domains)
}

// DeleteDomain godoc
// @Summary 删除实习方向
// @Description 删除方向不会级联修改既有学生和测试
// @Tags 实习方向
// @Produce  json
// @Security BearerAuth
// @Param   id path string true "方向 ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response "方向不存在"
// @Router /api/admin/domains/{id} [delete]
func (c *DomainController) DeleteDomain(ctx *gin.Context) {
	if err := c.DomainService.Delete(ctx.Param("id")); err != nil {
		if errors.Is(err, util.ErrDomainNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, nil)
}
