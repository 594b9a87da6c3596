package controller

import (
	"errors"
	"strconv"

	"skill_roadmap_backend/internal/service"
	"skill_roadmap_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// ProgressController 技能学习进度接口
type ProgressController struct {
	ProgressService *service.ProgressService
}

func NewProgressController(progressService *service.ProgressService) *ProgressController {
	return &ProgressController{ProgressService: progressService}
}

// swagger:model UpdateProgressRequest
type UpdateProgressRequest struct {
	UserID          uint     `json:"userId" binding:"required"`
	Skill           string   `json:"skill" binding:"required"`
	Domain          string   `json:"domain"`
	CompletedTopics []string `json:"completedTopics"`
	TotalTopics     int      `json:"totalTopics"`
}

// UpdateProgress godoc
// @Summary 更新技能进度
// @Description 技能名不区分大小写匹配，完成百分比按完成主题数重算
// @Tags 进度
// @Accept  json
// @Produce  json
// @Param   body body UpdateProgressRequest true "进度更新内容"
// @Success 200 {object} util.Response{data=object} "成功"
// @Failure 400 {object} util.Response "缺少用户或技能"
// @Failure 404 {object} util.Response "用户不存在"
// @Router /api/progress/update [post]
func (c *ProgressController) UpdateProgress(ctx *gin.Context) {
	var req UpdateProgressRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "User ID and skill are required")
		return
	}

	progress, err := c.ProgressService.UpdateSkillProgress(req.UserID, req.Skill, req.Domain, req.CompletedTopics, req.TotalTopics)
	if err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			util.NotFound(ctx, "User not found")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{"skillProgress": progress})
}

// GetProgress godoc
// @Summary 获取用户全部技能进度
// @Tags 进度
// @Produce  json
// @Param   userId path int true "用户ID"
// @Success 200 {object} util.Response{data=object} "成功"
// @Failure 404 {object} util.Response "用户不存在"
// @Router /api/progress/{userId} [get]
func (c *ProgressController) GetProgress(ctx *gin.Context) {
	userID, err := strconv.ParseUint(ctx.Param("userId"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "Invalid user ID")
		return
	}

	progress, err := c.ProgressService.GetProgress(uint(userID))
	if err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			util.NotFound(ctx, "User not found")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{"skillProgress": progress})
}

// DeleteProgress godoc
// @Summary 删除某个技能的进度
// @Description 技能名不区分大小写，删除后返回剩余进度
// @Tags 进度
// @Produce  json
// @Param   userId path int true "用户ID"
// @Param   skill path string true "技能名"
// @Success 200 {object} util.Response{data=object} "成功"
// @Failure 404 {object} util.Response "用户不存在"
// @Router /api/progress/{userId}/{skill} [delete]
func (c *ProgressController) DeleteProgress(ctx *gin.Context) {
	userID, err := strconv.ParseUint(ctx.Param("userId"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "Invalid user ID")
		return
	}

	progress, err := c.ProgressService.DeleteProgress(uint(userID), ctx.Param("skill"))
	if err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			util.NotFound(ctx, "User not found")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{"skillProgress": progress})
}

// swagger:model CompleteMicroSkillRequest
type CompleteMicroSkillRequest struct {
	UserID       uint   `json:"userId" binding:"required"`
	Skill        string `json:"skill" binding:"required"`
	SubSkillID   string `json:"subSkillId" binding:"required"`
	SubSkillName string `json:"subSkillName"`
	MicroSkillID string `json:"microSkillId" binding:"required"`
	Title        string `json:"title"`
}

// CompleteMicroSkill godoc
// @Summary 记录微技能完成
// @Description 缺失的技能/子技能进度自动补建，同一微技能不会重复记录
// @Tags 进度
// @Accept  json
// @Produce  json
// @Param   body body CompleteMicroSkillRequest true "微技能完成信息"
// @Success 200 {object} util.Response{data=model.SkillProgress} "成功"
// @Failure 400 {object} util.Response "缺少参数"
// @Failure 404 {object} util.Response "用户不存在"
// @Router /api/progress/micro-skill [post]
func (c *ProgressController) CompleteMicroSkill(ctx *gin.Context) {
	var req CompleteMicroSkillRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	progress, err := c.ProgressService.CompleteMicroSkill(req.UserID, req.Skill, req.SubSkillID, req.SubSkillName, req.MicroSkillID, req.Title)
	if err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			util.NotFound(ctx, "User not found")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, progress)
}
