package service

import (
	"strings"
	"testing"
)

func TestFallbackRoadmapShape(t *testing.T) {
	roadmap := FallbackRoadmap("Rust")

	if roadmap.Skill != "Rust" {
		t.Fatalf("expected skill Rust, got %q", roadmap.Skill)
	}
	if roadmap.Domain != "Rust Development" {
		t.Fatalf("expected domain %q, got %q", "Rust Development", roadmap.Domain)
	}
	if len(roadmap.SubSkills) != 5 {
		t.Fatalf("expected 5 sub-skills, got %d", len(roadmap.SubSkills))
	}

	for i, ss := range roadmap.SubSkills {
		wantID := "Rust-" + string(rune('0'+i))
		if ss.ID != wantID {
			t.Fatalf("sub-skill %d: expected id %q, got %q", i, wantID, ss.ID)
		}
		if ss.Order != i+1 {
			t.Fatalf("sub-skill %d: expected order %d, got %d", i, i+1, ss.Order)
		}
		if ss.IsUnlocked != (i == 0) {
			t.Fatalf("sub-skill %d: unexpected unlock state %v", i, ss.IsUnlocked)
		}
		if ss.IsCompleted {
			t.Fatalf("sub-skill %d: expected not completed", i)
		}
	}
	if roadmap.SubSkills[0].Name != "Fundamentals" {
		t.Fatalf("expected first sub-skill Fundamentals, got %q", roadmap.SubSkills[0].Name)
	}
}

func TestFallbackRoadmapDefaultsEmptySkill(t *testing.T) {
	roadmap := FallbackRoadmap("")
	if roadmap.Skill != "Programming" {
		t.Fatalf("expected default skill Programming, got %q", roadmap.Skill)
	}
	if roadmap.SubSkills[0].ID != "Programming-0" {
		t.Fatalf("expected id Programming-0, got %q", roadmap.SubSkills[0].ID)
	}
}

func TestFallbackMicroSkillsShape(t *testing.T) {
	set := FallbackMicroSkills("JavaScript", "DOM Manipulation")

	if set.SubSkill != "DOM Manipulation" {
		t.Fatalf("expected subSkill DOM Manipulation, got %q", set.SubSkill)
	}
	if len(set.MicroSkills) != 4 {
		t.Fatalf("expected 4 micro-skills, got %d", len(set.MicroSkills))
	}

	first := set.MicroSkills[0]
	if first.ID != "JavaScript-DOM Manipulation-0" {
		t.Fatalf("unexpected id %q", first.ID)
	}
	if first.Title != "Introduction" {
		t.Fatalf("unexpected title %q", first.Title)
	}
	if !strings.Contains(first.Explanation, "DOM Manipulation") {
		t.Fatalf("expected sub-skill name in explanation")
	}

	// 代码里的标识符要去掉子技能名中的空格
	second := set.MicroSkills[1]
	if !strings.Contains(second.Code, "demonstrateDOMManipulation") {
		t.Fatalf("expected compacted identifier in code, got %q", second.Code)
	}

	for i, ms := range set.MicroSkills {
		if ms.Order != i+1 {
			t.Fatalf("micro-skill %d: expected order %d, got %d", i, i+1, ms.Order)
		}
		if ms.IsCompleted {
			t.Fatalf("micro-skill %d: expected not completed", i)
		}
	}
}
