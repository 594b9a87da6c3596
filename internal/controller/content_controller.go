package controller

import (
	"skill_roadmap_backend/internal/service"
	"skill_roadmap_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// ContentController 学习内容生成接口（路线图、微技能）
type ContentController struct {
	ContentService *service.ContentService
}

func NewContentController(contentService *service.ContentService) *ContentController {
	return &ContentController{ContentService: contentService}
}

// swagger:model RoadmapRequest
type RoadmapRequest struct {
	Skill string `json:"skill" binding:"required"`
}

// GenerateRoadmap godoc
// @Summary 生成技能学习路线图
// @Description 按技能名生成子技能路线图，生成失败时返回内置兜底内容
// @Tags 内容
// @Accept  json
// @Produce  json
// @Param   body body RoadmapRequest true "技能名"
// @Success 200 {object} util.Response{data=model.GeneratedRoadmap} "成功"
// @Failure 400 {object} util.Response "缺少技能名"
// @Router /api/roadmap [post]
func (c *ContentController) GenerateRoadmap(ctx *gin.Context) {
	var req RoadmapRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "Skill is required")
		return
	}

	roadmap := c.ContentService.GetRoadmap(ctx.Request.Context(), req.Skill)
	util.Success(ctx, roadmap)
}

// swagger:model MicroSkillsRequest
type MicroSkillsRequest struct {
	Skill    string `json:"skill" binding:"required"`
	SubSkill string `json:"subSkill" binding:"required"`
}

// GenerateMicroSkills godoc
// @Summary 生成子技能的微技能内容
// @Description 按技能与子技能生成微技能教学内容，生成失败时返回内置兜底内容
// @Tags 内容
// @Accept  json
// @Produce  json
// @Param   body body MicroSkillsRequest true "技能与子技能"
// @Success 200 {object} util.Response{data=model.MicroSkillSet} "成功"
// @Failure 400 {object} util.Response "缺少技能或子技能"
// @Router /api/micro-skills [post]
func (c *ContentController) GenerateMicroSkills(ctx *gin.Context) {
	var req MicroSkillsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "Skill and subSkill are required")
		return
	}

	set := c.ContentService.GetMicroSkills(ctx.Request.Context(), req.Skill, req.SubSkill)
	util.Success(ctx, set)
}
