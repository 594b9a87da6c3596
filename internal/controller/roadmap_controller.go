package controller

import (
	"errors"

	"skill_roadmap_backend/internal/service"
	"skill_roadmap_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// RoadmapController 职业路线图目录与技能搜索接口
type RoadmapController struct {
	RoadmapService *service.RoadmapService
}

func NewRoadmapController(roadmapService *service.RoadmapService) *RoadmapController {
	return &RoadmapController{RoadmapService: roadmapService}
}

// ListRoadmaps godoc
// @Summary 获取全部职业路线图
// @Tags 路线图
// @Produce  json
// @Success 200 {object} util.Response{data=[]model.Roadmap} "成功"
// @Router /api/roadmaps [get]
func (c *RoadmapController) ListRoadmaps(ctx *gin.Context) {
	roadmaps, err := c.RoadmapService.ListRoadmaps()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, roadmaps)
}

// GetRoadmapByRole godoc
// @Summary 按角色名获取职业路线图
// @Description 角色名按不区分大小写的子串匹配
// @Tags 路线图
// @Produce  json
// @Param   role path string true "角色名"
// @Success 200 {object} util.Response{data=model.Roadmap} "成功"
// @Failure 404 {object} util.Response "未找到该角色的路线图"
// @Router /api/roadmaps/{role} [get]
func (c *RoadmapController) GetRoadmapByRole(ctx *gin.Context) {
	roadmap, err := c.RoadmapService.GetRoadmapByRole(ctx.Param("role"))
	if err != nil {
		if errors.Is(err, util.ErrRoadmapNotFound) {
			util.NotFound(ctx, "Roadmap not found")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, roadmap)
}

// SearchSkill godoc
// @Summary 技能搜索
// @Description 按搜索词返回固定三级（入门/进阶/高级）主题与项目路线图
// @Tags 路线图
// @Produce  json
// @Param   skill query string true "技能名"
// @Success 200 {object} util.Response{data=model.RoleRoadmap} "成功"
// @Failure 400 {object} util.Response "缺少技能参数"
// @Router /api/skills/search [get]
func (c *RoadmapController) SearchSkill(ctx *gin.Context) {
	skill := ctx.Query("skill")
	if skill == "" {
		util.BadRequest(ctx, "Skill parameter is required")
		return
	}
	util.Success(ctx, c.RoadmapService.SearchSkill(skill))
}
