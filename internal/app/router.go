package app

import (
	"skill_roadmap_backend/docs"
	"skill_roadmap_backend/internal/config"
	"skill_roadmap_backend/internal/middleware"
	"skill_roadmap_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 公共路由（无需登录）
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)

		public.POST("/roadmap", c.content.GenerateRoadmap)
		public.POST("/micro-skills", c.content.GenerateMicroSkills)

		public.GET("/skills/search", c.roadmap.SearchSkill)
		public.GET("/roadmaps", c.roadmap.ListRoadmaps)
		public.GET("/roadmaps/:role", c.roadmap.GetRoadmapByRole)

		public.POST("/progress/update", c.progress.UpdateProgress)
		public.POST("/progress/micro-skill", c.progress.CompleteMicroSkill)
		public.GET("/progress/:userId", c.progress.GetProgress)
		public.DELETE("/progress/:userId/:skill", c.progress.DeleteProgress)

		public.POST("/project/submit", c.project.SubmitProject)
		public.GET("/project/:subSkill", c.project.GetProject)
	}

	// 用户路由：登录 + 属主校验
	users := router.Group("/api/users/:userId")
	users.Use(middleware.AuthMiddleware(cfg), middleware.OwnershipMiddleware())
	{
		users.GET("", c.user.GetUser)
		users.PUT("", c.user.UpdateProfile)
		users.POST("/avatar", c.user.UploadAvatar)

		users.POST("/skills", c.user.AddSkill)
		users.PUT("/skills/:skillId", c.user.UpdateSkill)
		users.DELETE("/skills/:skillId", c.user.DeleteSkill)

		users.POST("/roadmap", c.user.StartRoadmap)
		users.PUT("/roadmap/progress", c.user.UpdateRoadmapProgress)
	}
}
