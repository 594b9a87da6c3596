package service

import (
	"encoding/json"
	"errors"
	"time"

	"skill_roadmap_backend/internal/model"
	"skill_roadmap_backend/internal/repository"
	"skill_roadmap_backend/internal/util"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// UserService 用户资料、技能清单与当前路线图指针
type UserService struct {
	UserRepo *repository.UserRepository
}

func NewUserService(userRepo *repository.UserRepository) *UserService {
	return &UserService{UserRepo: userRepo}
}

func (s *UserService) GetUser(userID uint) (*model.User, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// UpdateProfile 只更新资料字段，技能与进度不受影响
func (s *UserService) UpdateProfile(userID uint, name, bio, avatar string) (*model.User, error) {
	user, err := s.GetUser(userID)
	if err != nil {
		return nil, err
	}

	user.Name = name
	user.Bio = bio
	user.Avatar = avatar
	if err := s.UserRepo.Update(user); err != nil {
		return nil, err
	}

	return s.GetUser(userID)
}

func (s *UserService) UpdateAvatar(userID uint, avatarURL string) error {
	if err := s.requireUser(userID); err != nil {
		return err
	}
	return s.UserRepo.UpdateAvatar(userID, avatarURL)
}

// AddSkill 技能名在用户内不区分大小写唯一，重名返回冲突。
// 级别缺省 Beginner，年限缺省 0。
func (s *UserService) AddSkill(userID uint, name string, level model.SkillLevel, years float64) (*model.User, error) {
	if err := s.requireUser(userID); err != nil {
		return nil, err
	}

	exists, err := s.UserRepo.SkillExists(userID, name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, util.ErrSkillExists
	}

	if level == "" {
		level = model.Beginner
	}
	skill := &model.UserSkill{
		UserID:            userID,
		Name:              name,
		Level:             level,
		YearsOfExperience: years,
		AddedAt:           time.Now(),
	}
	if err := s.UserRepo.CreateSkill(skill); err != nil {
		return nil, err
	}

	return s.GetUser(userID)
}

// UpdateSkill 级别为空串、年限为 nil 表示不改动该字段
func (s *UserService) UpdateSkill(userID, skillID uint, level model.SkillLevel, years *float64) (*model.User, error) {
	if err := s.requireUser(userID); err != nil {
		return nil, err
	}

	skill, err := s.UserRepo.FindSkill(userID, skillID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrSkillNotFound
		}
		return nil, err
	}

	if level != "" {
		skill.Level = level
	}
	if years != nil {
		skill.YearsOfExperience = *years
	}
	if err := s.UserRepo.SaveSkill(skill); err != nil {
		return nil, err
	}

	return s.GetUser(userID)
}

func (s *UserService) DeleteSkill(userID, skillID uint) (*model.User, error) {
	if err := s.requireUser(userID); err != nil {
		return nil, err
	}

	skill, err := s.UserRepo.FindSkill(userID, skillID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrSkillNotFound
		}
		return nil, err
	}

	if err := s.UserRepo.DeleteSkill(skill); err != nil {
		return nil, err
	}

	return s.GetUser(userID)
}

// StartRoadmap 覆盖当前路线图指针：进度清零、打开始时间戳，
// completedSteps 允许调用方预置（缺省为空）。
func (s *UserService) StartRoadmap(userID uint, roadmapID, role string, completedSteps []int) (*model.User, error) {
	if err := s.requireUser(userID); err != nil {
		return nil, err
	}

	if completedSteps == nil {
		completedSteps = []int{}
	}
	raw, err := json.Marshal(completedSteps)
	if err != nil {
		return nil, err
	}

	rm := &model.ActiveRoadmap{
		UserID:         userID,
		RoadmapID:      roadmapID,
		Role:           role,
		StartedAt:      time.Now(),
		CompletedSteps: datatypes.JSON(raw),
		Progress:       0,
	}
	if err := s.UserRepo.SaveActiveRoadmap(rm); err != nil {
		return nil, err
	}

	return s.GetUser(userID)
}

// UpdateRoadmapProgress 无进行中路线图时返回 ErrNoActiveRoadmap
func (s *UserService) UpdateRoadmapProgress(userID uint, completedSteps []int, progress *int) (*model.User, error) {
	if err := s.requireUser(userID); err != nil {
		return nil, err
	}

	rm, err := s.UserRepo.FindActiveRoadmap(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrNoActiveRoadmap
		}
		return nil, err
	}

	if completedSteps != nil {
		raw, err := json.Marshal(completedSteps)
		if err != nil {
			return nil, err
		}
		rm.CompletedSteps = datatypes.JSON(raw)
	}
	if progress != nil {
		rm.Progress = *progress
	}
	if err := s.UserRepo.UpdateActiveRoadmap(rm); err != nil {
		return nil, err
	}

	return s.GetUser(userID)
}

func (s *UserService) requireUser(userID uint) error {
	exists, err := s.UserRepo.Exists(userID)
	if err != nil {
		return err
	}
	if !exists {
		return util.ErrUserNotFound
	}
	return nil
}
