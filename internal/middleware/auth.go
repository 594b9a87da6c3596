package middleware

import (
	"strconv"
	"strings"

	"skill_roadmap_backend/internal/config"
	"skill_roadmap_backend/internal/util"

	"github.com/gin-gonic/gin"
)

func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := ""
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
		}

		if tokenString == "" {
			tokenString = c.Query("token")
		}

		if tokenString == "" {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		claims, err := util.ParseJWT(tokenString, cfg.JWT.Secret)
		if err != nil {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set("user", claims)
		c.Next()
	}
}

// OwnershipMiddleware 路径里的 userId 必须等于令牌里的用户，
// 否则 403 且后续处理器不执行。
func OwnershipMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := util.GetUserFromContext(c)
		if claims == nil {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		pathID, err := strconv.ParseUint(c.Param("userId"), 10, 32)
		if err != nil || uint(pathID) != claims.UserID {
			util.Forbidden(c)
			c.Abort()
			return
		}

		c.Next()
	}
}
