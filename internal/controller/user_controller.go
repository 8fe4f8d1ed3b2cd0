package controller

import (
	"intern_portal_backend/internal/service"
	"intern_portal_backend/internal/util"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	UserService    *service.UserService
	StorageService *service.StorageService
}

func NewUserController(userService *service.UserService, storageService *service.StorageService) *UserController {
	return &UserController{
		UserService:    userService,
		StorageService: storageService,
	}
}

// CreateStudent godoc
// @Summary 创建学生账号
// @Description 管理员录入单个学生
// @Tags 学生管理
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body service.CreateStudentRequest true "学生信息"
// @Success 201 {object} util.Response{data=model.User} "创建成功"
// @Failure 400 {object} util.Response "请求参数错误"
// @Failure 409 {object} util.Response "邮箱已被注册"
// @Router /api/admin/students [post]
func (c *UserController) CreateStudent(ctx *gin.Context) {
	var req service.CreateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	student, err := c.UserService.CreateStudent(req)
	if err != nil {
		if errors.Is(err, util.ErrEmailRegistered) {
			util.Conflict(ctx, "该邮箱已被注册")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, student)
}

// BulkImportRequest 批量导入请求，data 为 CSV 文本
// swagger:model BulkImportRequest
type BulkImportRequest struct {
	Data string `json:"data" binding:"required"`
}

// BulkCreateStudents godoc
// @Summary 批量导入学生
// @Description 按行解析 CSV（name,email,password,phone,internshipDomain,department,college），逐行创建，已注册邮箱跳过
// @Tags 学生管理
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body BulkImportRequest true "CSV 文本"
// @Success 200 {object} util.Response{data=service.BulkImportResult}
// @Failure 400 {object} util.Response "请求参数错误"
// @Router /api/admin/students/bulk [post]
func (c *UserController) BulkCreateStudents(ctx *gin.Context) {
	var req BulkImportRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.UserService.BulkCreateStudents(req.Data)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, result)
}

// ListStudents godoc
// @Summary 学生列表
// @Description 分页查询学生，支持按姓名或邮箱搜索
// @Tags 学生管理
// @Produce  json
// @Security BearerAuth
// @Param   search query string false "姓名或邮箱关键字"
// @Param   page query int false "页码" default(1)
// @Param   limit query int false "每页数量" default(20)
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Router /api/admin/students [get]
func (c *UserController) ListStudents(ctx *gin.Context) {
	page, limit := util.ParsePage(ctx.Query("page"), ctx.Query("limit"))

	students, total, err := c.UserService.ListStudents(ctx.Query("search"), page, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Page(ctx, students, total, page, limit)
}

// GetStudent godoc
// @Summary 学生详情
// @Tags 学生管理
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "学生 ID"
// @Success 200 {object} util.Response{data=model.User}
// @Failure 404 {object} util.Response "学生不存在"
// @Router /api/admin/students/{id} [get]
func (c *UserController) GetStudent(ctx *gin.Context) {
	student, err := c.UserService.GetUserByID(util.MustParseUint(ctx.Param("id")))
	if err != nil {
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, student)
}

// UpdateProfile godoc
// @Summary 更新个人资料
// @Description 学生更新自己的联系方式与个人链接，邮箱与角色不可改
// @Tags 用户
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body service.UpdateProfileRequest true "资料字段"
// @Success 200 {object} util.Response{data=model.User}
// @Failure 400 {object} util.Response "请求参数错误"
// @Router /api/profile [put]
func (c *UserController) UpdateProfile(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user, err := c.UserService.UpdateProfile(claims.UserID, req)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, user)
}

// UploadAvatar godoc
// @Summary 上传头像
// @Description 上传图片文件作为头像，5MB 以内
// @Tags 用户
// @Accept  multipart/form-data
// @Produce  json
// @Security BearerAuth
// @Param   file formData file true "图片文件"
// @Success 200 {object} util.Response{data=object} "返回头像 URL"
// @Failure 400 {object} util.Response "文件缺失或类型错误"
// @Router /api/profile/avatar [post]
func (c *UserController) UploadAvatar(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	file, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "File is required")
		return
	}
	if file.Size > util.MaxAvatarSizeByte {
		util.BadRequest(ctx, "File too large")
		return
	}
	contentType := file.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, util.MimeImage) {
		util.BadRequest(ctx, "Only image files are allowed")
		return
	}

	src, err := file.Open()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	defer func(src io.ReadCloser) { _ = src.Close() }(src)

	filename := fmt.Sprintf("avatars/%d_%d%s", claims.UserID, time.Now().UnixNano(), filepath.Ext(file.Filename))
	url, err := c.StorageService.Provider.Upload(ctx.Request.Context(), filename, src, file.Size, contentType)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	if err := c.UserService.UpdateAvatar(claims.UserID, url); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"url": url})
}
