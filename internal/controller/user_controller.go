package controller

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"time"

	"skill_roadmap_backend/internal/model"
	"skill_roadmap_backend/internal/service"
	"skill_roadmap_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// UserController 用户资料、技能清单与当前路线图指针接口。
// 所有路由都经过认证与属主校验中间件。
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

func pathUserID(ctx *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param("userId"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "Invalid user ID")
		return 0, false
	}
	return uint(id), true
}

// GetUser godoc
// @Summary 获取用户资料
// @Tags 用户
// @Produce  json
// @Security ApiKeyAuth
// @Param   userId path int true "用户ID"
// @Success 200 {object} util.Response{data=object} "成功"
// @Failure 403 {object} util.Response "无权访问他人资料"
// @Failure 404 {object} util.Response "用户不存在"
// @Router /api/users/{userId} [get]
func (c *UserController) GetUser(ctx *gin.Context) {
	userID, ok := pathUserID(ctx)
	if !ok {
		return
	}

	user, err := c.UserService.GetUser(userID)
	if err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			util.NotFound(ctx, "User not found")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{"user": user})
}

// swagger:model UpdateProfileRequest
type UpdateProfileRequest struct {
	Name   string `json:"name"`
	Bio    string `json:"bio"`
	Avatar string `json:"avatar"`
}

// UpdateProfile godoc
// @Summary 更新用户资料
// @Tags 用户
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   userId path int true "用户ID"
// @Param   body body UpdateProfileRequest true "资料字段"
// @Success 200 {object} util.Response{data=object} "成功"
// @Failure 403 {object} util.Response "无权修改他人资料"
// @Failure 404 {object} util.Response "用户不存在"
// @Router /api/users/{userId} [put]
func (c *UserController) UpdateProfile(ctx *gin.Context) {
	userID, ok := pathUserID(ctx)
	if !ok {
		return
	}

	var req UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user, err := c.UserService.UpdateProfile(userID, req.Name, req.Bio, req.Avatar)
	if err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			util.NotFound(ctx, "User not found")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{"message": "Profile updated successfully", "user": user})
}

// UploadAvatar godoc
// @Summary 上传用户头像
// @Description 表单文件经配置的存储后端保存，返回可访问地址
// @Tags 用户
// @Accept  multipart/form-data
// @Produce  json
// @Security ApiKeyAuth
// @Param   userId path int true "用户ID"
// @Param   avatar formData file true "头像文件"
// @Success 200 {object} util.Response{data=object} "成功"
// @Failure 400 {object} util.Response "缺少文件"
// @Router /api/users/{userId}/avatar [post]
func (c *UserController) UploadAvatar(ctx *gin.Context) {
	userID, ok := pathUserID(ctx)
	if !ok {
		return
	}

	file, err := ctx.FormFile("avatar")
	if err != nil {
		util.BadRequest(ctx, "Avatar file is required")
		return
	}

	src, err := file.Open()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	defer src.Close()

	filename := fmt.Sprintf("avatars/%d-%d%s", userID, time.Now().UnixNano(), filepath.Ext(file.Filename))
	url, err := c.StorageService.Upload(ctx.Request.Context(), filename, src, file.Size, file.Header.Get("Content-Type"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	if err := c.UserService.UpdateAvatar(userID, url); err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			util.NotFound(ctx, "User not found")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{"avatar": url})
}

// swagger:model AddSkillRequest
type AddSkillRequest struct {
	Name              string  `json:"name" binding:"required"`
	Level             string  `json:"level"`
	YearsOfExperience float64 `json:"yearsOfExperience"`
}

// AddSkill godoc
// @Summary 添加技能
// @Description 技能名在用户内不区分大小写唯一
// @Tags 用户
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   userId path int true "用户ID"
// @Param   body body AddSkillRequest true "技能信息"
// @Success 201 {object} util.Response{data=object} "创建成功"
// @Failure 400 {object} util.Response "缺少技能名"
// @Failure 409 {object} util.Response "技能已存在"
// @Router /api/users/{userId}/skills [post]
func (c *UserController) AddSkill(ctx *gin.Context) {
	userID, ok := pathUserID(ctx)
	if !ok {
		return
	}

	var req AddSkillRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "Skill name is required")
		return
	}

	user, err := c.UserService.AddSkill(userID, req.Name, model.SkillLevel(req.Level), req.YearsOfExperience)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrUserNotFound):
			util.NotFound(ctx, "User not found")
		case errors.Is(err, util.ErrSkillExists):
			util.Conflict(ctx, "Skill already exists")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, gin.H{"message": "Skill added successfully", "user": user})
}

// swagger:model UpdateSkillRequest
type UpdateSkillRequest struct {
	Level             string   `json:"level"`
	YearsOfExperience *float64 `json:"yearsOfExperience"`
}

// UpdateSkill godoc
// @Summary 更新技能级别或年限
// @Tags 用户
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   userId path int true "用户ID"
// @Param   skillId path int true "技能ID"
// @Param   body body UpdateSkillRequest true "要更新的字段"
// @Success 200 {object} util.Response{data=object} "成功"
// @Failure 404 {object} util.Response "技能不存在"
// @Router /api/users/{userId}/skills/{skillId} [put]
func (c *UserController) UpdateSkill(ctx *gin.Context) {
	userID, ok := pathUserID(ctx)
	if !ok {
		return
	}

	skillID, err := strconv.ParseUint(ctx.Param("skillId"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "Invalid skill ID")
		return
	}

	var req UpdateSkillRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user, err := c.UserService.UpdateSkill(userID, uint(skillID), model.SkillLevel(req.Level), req.YearsOfExperience)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrUserNotFound):
			util.NotFound(ctx, "User not found")
		case errors.Is(err, util.ErrSkillNotFound):
			util.NotFound(ctx, "Skill not found")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{"message": "Skill updated successfully", "user": user})
}

// DeleteSkill godoc
// @Summary 删除技能
// @Tags 用户
// @Produce  json
// @Security ApiKeyAuth
// @Param   userId path int true "用户ID"
// @Param   skillId path int true "技能ID"
// @Success 200 {object} util.Response{data=object} "成功"
// @Failure 404 {object} util.Response "技能不存在"
// @Router /api/users/{userId}/skills/{skillId} [delete]
func (c *UserController) DeleteSkill(ctx *gin.Context) {
	userID, ok := pathUserID(ctx)
	if !ok {
		return
	}

	skillID, err := strconv.ParseUint(ctx.Param("skillId"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "Invalid skill ID")
		return
	}

	user, err := c.UserService.DeleteSkill(userID, uint(skillID))
	if err != nil {
		switch {
		case errors.Is(err, util.ErrUserNotFound):
			util.NotFound(ctx, "User not found")
		case errors.Is(err, util.ErrSkillNotFound):
			util.NotFound(ctx, "Skill not found")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{"message": "Skill deleted successfully", "user": user})
}

// swagger:model StartRoadmapRequest
type StartRoadmapRequest struct {
	RoadmapID      string `json:"roadmapId" binding:"required"`
	Role           string `json:"role" binding:"required"`
	CompletedSteps []int  `json:"completedSteps"`
}

// StartRoadmap godoc
// @Summary 开始职业路线图
// @Description 覆盖当前路线图指针，进度清零
// @Tags 用户
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   userId path int true "用户ID"
// @Param   body body StartRoadmapRequest true "路线图信息"
// @Success 200 {object} util.Response{data=object} "成功"
// @Failure 400 {object} util.Response "缺少路线图ID或角色"
// @Router /api/users/{userId}/roadmap [post]
func (c *UserController) StartRoadmap(ctx *gin.Context) {
	userID, ok := pathUserID(ctx)
	if !ok {
		return
	}

	var req StartRoadmapRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "Roadmap ID and role are required")
		return
	}

	user, err := c.UserService.StartRoadmap(userID, req.RoadmapID, req.Role, req.CompletedSteps)
	if err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			util.NotFound(ctx, "User not found")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{"message": "Roadmap started", "user": user})
}

// swagger:model UpdateRoadmapProgressRequest
type UpdateRoadmapProgressRequest struct {
	CompletedSteps []int `json:"completedSteps"`
	Progress       *int  `json:"progress"`
}

// UpdateRoadmapProgress godoc
// @Summary 更新路线图进度
// @Tags 用户
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   userId path int true "用户ID"
// @Param   body body UpdateRoadmapProgressRequest true "进度字段"
// @Success 200 {object} util.Response{data=object} "成功"
// @Failure 404 {object} util.Response "没有进行中的路线图"
// @Router /api/users/{userId}/roadmap/progress [put]
func (c *UserController) UpdateRoadmapProgress(ctx *gin.Context) {
	userID, ok := pathUserID(ctx)
	if !ok {
		return
	}

	var req UpdateRoadmapProgressRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user, err := c.UserService.UpdateRoadmapProgress(userID, req.CompletedSteps, req.Progress)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrUserNotFound):
			util.NotFound(ctx, "User not found")
		case errors.Is(err, util.ErrNoActiveRoadmap):
			util.NotFound(ctx, "No active roadmap")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{"message": "Roadmap progress updated", "user": user})
}
