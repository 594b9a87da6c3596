package controller

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"skill_roadmap_backend/internal/model"
	"skill_roadmap_backend/internal/service"
	"skill_roadmap_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	logger.Log = zap.NewNop()
	os.Exit(m.Run())
}

type fixedGenerator struct{}

func (fixedGenerator) GenerateRoadmap(ctx context.Context, skill string) (*model.GeneratedRoadmap, error) {
	return &model.GeneratedRoadmap{
		Skill:     skill,
		SubSkills: []model.GeneratedSubSkill{{ID: "x-0", Name: "X", Order: 1, IsUnlocked: true}},
	}, nil
}

func (fixedGenerator) GenerateMicroSkills(ctx context.Context, skill, subSkill string) (*model.MicroSkillSet, error) {
	return &model.MicroSkillSet{SubSkill: subSkill}, nil
}

func newContentRouter() *gin.Engine {
	svc := service.NewContentService(fixedGenerator{}, service.NewGenerationCache(4))
	c := NewContentController(svc)

	router := gin.New()
	router.POST("/api/roadmap", c.GenerateRoadmap)
	router.POST("/api/micro-skills", c.GenerateMicroSkills)
	return router
}

func TestGenerateRoadmapRequiresSkill(t *testing.T) {
	router := newContentRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/roadmap", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestGenerateRoadmapReturnsEnvelope(t *testing.T) {
	router := newContentRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/roadmap", strings.NewReader(`{"skill":"Go"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, `"code":200`) || !strings.Contains(body, `"subSkills"`) {
		t.Fatalf("unexpected body: %s", body)
	}
}

func TestGenerateMicroSkillsRequiresBothFields(t *testing.T) {
	router := newContentRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/micro-skills", strings.NewReader(`{"skill":"Go"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestSubmitProjectValidatesType(t *testing.T) {
	c := NewProjectController(service.NewProjectService(nil))
	router := gin.New()
	router.POST("/api/project/submit", c.SubmitProject)

	req := httptest.NewRequest(http.MethodPost, "/api/project/submit",
		strings.NewReader(`{"subSkill":"react hooks","submissionType":"carrier-pigeon"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestGetProjectAlwaysResolves(t *testing.T) {
	c := NewProjectController(service.NewProjectService(nil))
	router := gin.New()
	router.GET("/api/project/:subSkill", c.GetProject)

	req := httptest.NewRequest(http.MethodGet, "/api/project/react%20hooks", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Task Management Dashboard") {
		t.Fatalf("expected react template in body: %s", w.Body.String())
	}
}
