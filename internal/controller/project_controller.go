package controller

import (
	"errors"

	"skill_roadmap_backend/internal/service"
	"skill_roadmap_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// ProjectController 实战项目模板与提交评分接口
type ProjectController struct {
	ProjectService *service.ProjectService
}

func NewProjectController(projectService *service.ProjectService) *ProjectController {
	return &ProjectController{ProjectService: projectService}
}

// GetProject godoc
// @Summary 获取子技能的实战项目模板
// @Description 子技能名按关键词匹配模板，无匹配时返回通用模板
// @Tags 项目
// @Produce  json
// @Param   subSkill path string true "子技能名"
// @Success 200 {object} util.Response{data=object} "成功"
// @Router /api/project/{subSkill} [get]
func (c *ProjectController) GetProject(ctx *gin.Context) {
	subSkill := ctx.Param("subSkill")
	project := c.ProjectService.GetProject(subSkill)
	util.Success(ctx, gin.H{
		"subSkill": subSkill,
		"project":  project,
	})
}

// swagger:model SubmitProjectRequest
type SubmitProjectRequest struct {
	UserID         string  `json:"userId"`
	Skill          string  `json:"skill"`
	SubSkill       string  `json:"subSkill" binding:"required"`
	SubmissionType string  `json:"submissionType" binding:"required"`
	Content        string  `json:"content"`
	FileName       *string `json:"fileName"`
}

// SubmitProject godoc
// @Summary 提交实战项目
// @Description 校验提交类型后评分并返回反馈，提交记录尽力持久化
// @Tags 项目
// @Accept  json
// @Produce  json
// @Param   body body SubmitProjectRequest true "项目提交内容"
// @Success 200 {object} util.Response{data=model.SubmissionResult} "成功"
// @Failure 400 {object} util.Response "缺少参数或提交类型非法"
// @Failure 500 {object} util.Response "服务器内部错误"
// @Router /api/project/submit [post]
func (c *ProjectController) SubmitProject(ctx *gin.Context) {
	var req SubmitProjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "subSkill and submissionType are required")
		return
	}

	result, err := c.ProjectService.Submit(req.UserID, req.Skill, req.SubSkill, req.SubmissionType, req.Content, req.FileName)
	if err != nil {
		if errors.Is(err, util.ErrInvalidSubmissionType) {
			util.BadRequest(ctx, "Invalid submission type")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, result)
}
