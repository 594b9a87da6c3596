package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"skill_roadmap_backend/internal/config"
	"skill_roadmap_backend/internal/model"
	"skill_roadmap_backend/internal/util"

	"github.com/gin-gonic/gin"
)

func newProtectedRouter(cfg *config.Config, hits *int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.PUT("/api/users/:userId",
		AuthMiddleware(cfg),
		OwnershipMiddleware(),
		func(c *gin.Context) {
			*hits++
			c.Status(http.StatusOK)
		})
	return router
}

func testToken(t *testing.T, cfg *config.Config, userID uint) string {
	t.Helper()
	user := &model.User{Email: "lin@example.com"}
	user.ID = userID
	token, err := util.GenerateJWT(user, cfg.JWT.Secret, cfg.JWT.ExpireTime)
	if err != nil {
		t.Fatalf("failed to issue token: %v", err)
	}
	return token
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.ExpireTime = time.Hour
	return cfg
}

func TestOwnershipAllowsOwner(t *testing.T) {
	cfg := testConfig()
	hits := 0
	router := newProtectedRouter(cfg, &hits)

	req := httptest.NewRequest(http.MethodPut, "/api/users/7", nil)
	req.Header.Set("Authorization", "Bearer "+testToken(t, cfg, 7))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if hits != 1 {
		t.Fatalf("expected handler to run once, ran %d times", hits)
	}
}

func TestOwnershipRejectsOtherUser(t *testing.T) {
	cfg := testConfig()
	hits := 0
	router := newProtectedRouter(cfg, &hits)

	req := httptest.NewRequest(http.MethodPut, "/api/users/8", nil)
	req.Header.Set("Authorization", "Bearer "+testToken(t, cfg, 7))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", w.Code)
	}
	// 越权请求不能触达处理器
	if hits != 0 {
		t.Fatalf("handler must not run for foreign user, ran %d times", hits)
	}
}

func TestMissingTokenIsUnauthorized(t *testing.T) {
	cfg := testConfig()
	hits := 0
	router := newProtectedRouter(cfg, &hits)

	req := httptest.NewRequest(http.MethodPut, "/api/users/7", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	if hits != 0 {
		t.Fatalf("handler must not run without token")
	}
}

func TestMalformedTokenIsUnauthorized(t *testing.T) {
	cfg := testConfig()
	hits := 0
	router := newProtectedRouter(cfg, &hits)

	req := httptest.NewRequest(http.MethodPut, "/api/users/7", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}
