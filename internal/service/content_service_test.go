package service

import (
	"context"
	"errors"
	"testing"

	"skill_roadmap_backend/internal/model"
)

type stubGenerator struct {
	roadmapCalls    int
	microSkillCalls int
	fail            bool
}

func (g *stubGenerator) GenerateRoadmap(ctx context.Context, skill string) (*model.GeneratedRoadmap, error) {
	g.roadmapCalls++
	if g.fail {
		return nil, errors.New("upstream unavailable")
	}
	return &model.GeneratedRoadmap{Skill: skill, SubSkills: []model.GeneratedSubSkill{{ID: "x-0", Name: "X"}}}, nil
}

func (g *stubGenerator) GenerateMicroSkills(ctx context.Context, skill, subSkill string) (*model.MicroSkillSet, error) {
	g.microSkillCalls++
	if g.fail {
		return nil, errors.New("upstream unavailable")
	}
	return &model.MicroSkillSet{SubSkill: subSkill, MicroSkills: []model.MicroSkill{{ID: "m-0", Title: "M"}}}, nil
}

func TestGetRoadmapGeneratesOnceThenServesCache(t *testing.T) {
	gen := &stubGenerator{}
	svc := NewContentService(gen, NewGenerationCache(16))

	first := svc.GetRoadmap(context.Background(), "Go")
	second := svc.GetRoadmap(context.Background(), "go")

	if gen.roadmapCalls != 1 {
		t.Fatalf("expected 1 generator call, got %d", gen.roadmapCalls)
	}
	// 键归一化后命中，返回同一个实例
	if first != second {
		t.Fatalf("expected cache hit to return the identical roadmap")
	}
}

func TestGetRoadmapFallsBackOnFailure(t *testing.T) {
	gen := &stubGenerator{fail: true}
	svc := NewContentService(gen, NewGenerationCache(16))

	roadmap := svc.GetRoadmap(context.Background(), "Rust")
	if roadmap == nil {
		t.Fatalf("expected fallback roadmap, got nil")
	}
	if len(roadmap.SubSkills) != 5 {
		t.Fatalf("expected 5 fallback sub-skills, got %d", len(roadmap.SubSkills))
	}

	// 兜底内容不进缓存：下一次仍会尝试生成
	svc.GetRoadmap(context.Background(), "Rust")
	if gen.roadmapCalls != 2 {
		t.Fatalf("expected 2 generator calls, got %d", gen.roadmapCalls)
	}
}

func TestGetMicroSkillsCachesPerSkillPair(t *testing.T) {
	gen := &stubGenerator{}
	svc := NewContentService(gen, NewGenerationCache(16))

	svc.GetMicroSkills(context.Background(), "React", "Hooks")
	svc.GetMicroSkills(context.Background(), "React", "Hooks")
	svc.GetMicroSkills(context.Background(), "React", "Router")

	if gen.microSkillCalls != 2 {
		t.Fatalf("expected 2 generator calls, got %d", gen.microSkillCalls)
	}
}

func TestGetMicroSkillsFallsBackOnFailure(t *testing.T) {
	gen := &stubGenerator{fail: true}
	svc := NewContentService(gen, NewGenerationCache(16))

	set := svc.GetMicroSkills(context.Background(), "React", "Hooks")
	if len(set.MicroSkills) != 4 {
		t.Fatalf("expected 4 fallback micro-skills, got %d", len(set.MicroSkills))
	}
}
