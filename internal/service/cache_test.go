package service

import (
	"fmt"
	"testing"

	"skill_roadmap_backend/internal/model"
)

func TestNormalizeSkillKey(t *testing.T) {
	if got := NormalizeSkillKey("  JavaScript "); got != "javascript" {
		t.Fatalf("expected %q, got %q", "javascript", got)
	}
	if got := MicroSkillKey("React", " Hooks "); got != "react-hooks" {
		t.Fatalf("expected %q, got %q", "react-hooks", got)
	}
}

func TestCacheHitReturnsSameInstance(t *testing.T) {
	cache := NewGenerationCache(16)
	roadmap := &model.GeneratedRoadmap{Skill: "Go"}

	cache.SetRoadmap("go", roadmap)
	got, ok := cache.GetRoadmap("go")
	if !ok {
		t.Fatalf("expected cache hit")
	}
	if got != roadmap {
		t.Fatalf("expected identical instance on cache hit")
	}
}

func TestCacheMissReportsNotFound(t *testing.T) {
	cache := NewGenerationCache(16)
	if _, ok := cache.GetRoadmap("go"); ok {
		t.Fatalf("expected cache miss")
	}
	if _, ok := cache.GetMicroSkills("go-basics"); ok {
		t.Fatalf("expected cache miss")
	}
}

func TestCacheEvictsAtCapacity(t *testing.T) {
	cache := NewGenerationCache(2)
	for i := 0; i < 5; i++ {
		cache.SetRoadmap(fmt.Sprintf("skill-%d", i), &model.GeneratedRoadmap{})
	}
	if got := cache.Len(); got != 2 {
		t.Fatalf("expected 2 entries after eviction, got %d", got)
	}
}

func TestCacheOverwriteDoesNotEvict(t *testing.T) {
	cache := NewGenerationCache(2)
	cache.SetRoadmap("a", &model.GeneratedRoadmap{})
	cache.SetRoadmap("b", &model.GeneratedRoadmap{})

	replacement := &model.GeneratedRoadmap{Skill: "A2"}
	cache.SetRoadmap("a", replacement)

	if got := cache.Len(); got != 2 {
		t.Fatalf("expected 2 entries, got %d", got)
	}
	got, _ := cache.GetRoadmap("a")
	if got != replacement {
		t.Fatalf("expected overwritten entry")
	}
}
