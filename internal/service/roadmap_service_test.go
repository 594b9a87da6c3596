package service

import (
	"errors"
	"testing"

	"skill_roadmap_backend/internal/repository"
	"skill_roadmap_backend/internal/util"
	"skill_roadmap_backend/pkg/database"
)

func newRoadmapFixture(t *testing.T) *RoadmapService {
	t.Helper()
	db := newTestDB(t)
	if err := database.SeedRoadmaps(db); err != nil {
		t.Fatalf("failed to seed roadmaps: %v", err)
	}
	return NewRoadmapService(repository.NewRoadmapRepository(db))
}

func TestSeedRoadmapsIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	for i := 0; i < 2; i++ {
		if err := database.SeedRoadmaps(db); err != nil {
			t.Fatalf("seed run %d failed: %v", i, err)
		}
	}

	repo := repository.NewRoadmapRepository(db)
	count, err := repo.Count()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 3 {
		t.Fatalf("expected 3 seeded roadmaps, got %d", count)
	}
}

func TestListRoadmapsReturnsOrderedSteps(t *testing.T) {
	svc := newRoadmapFixture(t)

	roadmaps, err := svc.ListRoadmaps()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(roadmaps) != 3 {
		t.Fatalf("expected 3 roadmaps, got %d", len(roadmaps))
	}
	for _, rm := range roadmaps {
		if len(rm.Steps) != 3 {
			t.Fatalf("roadmap %q: expected 3 steps, got %d", rm.Role, len(rm.Steps))
		}
		for i, step := range rm.Steps {
			if step.Step != i+1 {
				t.Fatalf("roadmap %q: steps out of order", rm.Role)
			}
		}
	}
}

func TestGetRoadmapByRoleSubstringMatch(t *testing.T) {
	svc := newRoadmapFixture(t)

	roadmap, err := svc.GetRoadmapByRole("frontend")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if roadmap.Role != "Frontend Developer" {
		t.Fatalf("expected Frontend Developer, got %q", roadmap.Role)
	}
}

func TestGetRoadmapByRoleUnknown(t *testing.T) {
	svc := newRoadmapFixture(t)

	_, err := svc.GetRoadmapByRole("astronaut")
	if !errors.Is(err, util.ErrRoadmapNotFound) {
		t.Fatalf("expected ErrRoadmapNotFound, got %v", err)
	}
}

func TestSearchSkillStaticRoadmap(t *testing.T) {
	svc := NewRoadmapService(nil)

	result := svc.SearchSkill("python")
	if result.SearchedSkill != "python" {
		t.Fatalf("expected searched skill echoed back, got %q", result.SearchedSkill)
	}
	if result.DetectedDomain != "Python Development" {
		t.Fatalf("expected %q, got %q", "Python Development", result.DetectedDomain)
	}
	if len(result.Roadmap) != 3 {
		t.Fatalf("expected 3 levels, got %d", len(result.Roadmap))
	}
	if result.Roadmap[0].Level != "Beginner" || result.Roadmap[2].Level != "Advanced" {
		t.Fatalf("unexpected level ordering: %+v", result.Roadmap)
	}
	if result.Roadmap[0].Topics[0] != "python Fundamentals" {
		t.Fatalf("expected skill-interpolated first topic, got %q", result.Roadmap[0].Topics[0])
	}
}
