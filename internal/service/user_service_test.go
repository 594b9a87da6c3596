package service

import (
	"errors"
	"testing"

	"skill_roadmap_backend/internal/model"
	"skill_roadmap_backend/internal/repository"
	"skill_roadmap_backend/internal/util"
)

func newUserFixture(t *testing.T) (*UserService, uint) {
	t.Helper()
	db := newTestDB(t)
	repo := repository.NewUserRepository(db)

	user := &model.User{Name: "Lin", Email: "lin@example.com", Password: "hash"}
	if err := repo.Create(user); err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	return NewUserService(repo), user.ID
}

func TestAddSkillDefaultsLevel(t *testing.T) {
	svc, userID := newUserFixture(t)

	user, err := svc.AddSkill(userID, "Go", "", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(user.Skills) != 1 {
		t.Fatalf("expected 1 skill, got %d", len(user.Skills))
	}
	if user.Skills[0].Level != model.Beginner {
		t.Fatalf("expected default level Beginner, got %q", user.Skills[0].Level)
	}
}

func TestAddSkillRejectsCaseInsensitiveDuplicate(t *testing.T) {
	svc, userID := newUserFixture(t)

	if _, err := svc.AddSkill(userID, "Go", model.Advanced, 3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err := svc.AddSkill(userID, "go", model.Beginner, 0)
	if !errors.Is(err, util.ErrSkillExists) {
		t.Fatalf("expected ErrSkillExists, got %v", err)
	}

	// 冲突的添加不改动现有清单
	user, err := svc.GetUser(userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(user.Skills) != 1 || user.Skills[0].Name != "Go" {
		t.Fatalf("skill list changed after rejected add: %+v", user.Skills)
	}
}

func TestUpdateSkillPartialFields(t *testing.T) {
	svc, userID := newUserFixture(t)

	user, err := svc.AddSkill(userID, "Python", model.Beginner, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	skillID := user.Skills[0].ID

	user, err = svc.UpdateSkill(userID, skillID, model.Intermediate, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Skills[0].Level != model.Intermediate {
		t.Fatalf("expected Intermediate, got %q", user.Skills[0].Level)
	}
	if user.Skills[0].YearsOfExperience != 1 {
		t.Fatalf("years of experience should be untouched, got %v", user.Skills[0].YearsOfExperience)
	}
}

func TestUpdateSkillUnknownID(t *testing.T) {
	svc, userID := newUserFixture(t)

	_, err := svc.UpdateSkill(userID, 42, model.Advanced, nil)
	if !errors.Is(err, util.ErrSkillNotFound) {
		t.Fatalf("expected ErrSkillNotFound, got %v", err)
	}
}

func TestDeleteSkillRemovesEntry(t *testing.T) {
	svc, userID := newUserFixture(t)

	user, err := svc.AddSkill(userID, "Docker", model.Beginner, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	user, err = svc.DeleteSkill(userID, user.Skills[0].ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(user.Skills) != 0 {
		t.Fatalf("expected empty skill list, got %d", len(user.Skills))
	}
}

func TestStartRoadmapResetsProgress(t *testing.T) {
	svc, userID := newUserFixture(t)

	user, err := svc.StartRoadmap(userID, "roadmap-1", "Frontend Developer", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.CurrentRoadmap == nil {
		t.Fatalf("expected active roadmap")
	}
	if user.CurrentRoadmap.Progress != 0 {
		t.Fatalf("expected progress 0, got %d", user.CurrentRoadmap.Progress)
	}
	if user.CurrentRoadmap.StartedAt.IsZero() {
		t.Fatalf("expected startedAt to be stamped")
	}

	// 重新开始会覆盖旧指针
	user, err = svc.StartRoadmap(userID, "roadmap-2", "DevOps Engineer", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.CurrentRoadmap.RoadmapID != "roadmap-2" {
		t.Fatalf("expected roadmap-2, got %q", user.CurrentRoadmap.RoadmapID)
	}
}

func TestUpdateRoadmapProgressRequiresActive(t *testing.T) {
	svc, userID := newUserFixture(t)

	progress := 40
	_, err := svc.UpdateRoadmapProgress(userID, []int{1, 2}, &progress)
	if !errors.Is(err, util.ErrNoActiveRoadmap) {
		t.Fatalf("expected ErrNoActiveRoadmap, got %v", err)
	}

	if _, err := svc.StartRoadmap(userID, "roadmap-1", "Frontend Developer", nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	user, err := svc.UpdateRoadmapProgress(userID, []int{1, 2}, &progress)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.CurrentRoadmap.Progress != 40 {
		t.Fatalf("expected progress 40, got %d", user.CurrentRoadmap.Progress)
	}
}
