package service

import (
	"encoding/json"
	"errors"
	"math"
	"time"

	"skill_roadmap_backend/internal/model"
	"skill_roadmap_backend/internal/repository"
	"skill_roadmap_backend/internal/util"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const defaultTotalTopics = 15

// ProgressService 技能进度读写。
// 所有变更只落到对应的进度行，不回写整个用户记录，
// 避免不同技能的并发更新互相覆盖。
type ProgressService struct {
	UserRepo     *repository.UserRepository
	ProgressRepo *repository.ProgressRepository
}

func NewProgressService(userRepo *repository.UserRepository, progressRepo *repository.ProgressRepository) *ProgressService {
	return &ProgressService{UserRepo: userRepo, ProgressRepo: progressRepo}
}

// UpdateSkillProgress 按技能名（不区分大小写）更新或新建进度：
// 显式传入的字段覆盖，缺省字段保留；完成百分比每次重算。
func (s *ProgressService) UpdateSkillProgress(userID uint, skill, domain string, completedTopics []string, totalTopics int) ([]model.SkillProgress, error) {
	if err := s.requireUser(userID); err != nil {
		return nil, err
	}

	// 百分比按请求里的 totalTopics 计算，<=0 一律记 0
	percentage := 0
	if totalTopics > 0 {
		percentage = int(math.Round(float64(len(completedTopics)) / float64(totalTopics) * 100))
	}

	raw, err := json.Marshal(completedTopics)
	if err != nil {
		return nil, err
	}
	topicsJSON := datatypes.JSON(raw)

	existing, err := s.ProgressRepo.FindByUserAndSkill(userID, skill)
	switch {
	case err == nil:
		existing.Skill = skill
		if domain != "" {
			existing.Domain = domain
		}
		existing.CompletedTopics = topicsJSON
		if totalTopics != 0 {
			existing.TotalTopics = totalTopics
		}
		existing.CompletionPercentage = percentage
		existing.LastUpdated = time.Now()
		if err := s.ProgressRepo.Save(existing); err != nil {
			return nil, err
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		if totalTopics == 0 {
			totalTopics = defaultTotalTopics
		}
		sp := &model.SkillProgress{
			UserID:               userID,
			Skill:                skill,
			Domain:               domain,
			CompletedTopics:      topicsJSON,
			TotalTopics:          totalTopics,
			CompletionPercentage: percentage,
			LastUpdated:          time.Now(),
		}
		if err := s.ProgressRepo.Create(sp); err != nil {
			return nil, err
		}
	default:
		return nil, err
	}

	return s.ProgressRepo.FindByUser(userID)
}

func (s *ProgressService) GetProgress(userID uint) ([]model.SkillProgress, error) {
	if err := s.requireUser(userID); err != nil {
		return nil, err
	}
	return s.ProgressRepo.FindByUser(userID)
}

// DeleteProgress 删除后返回剩余进度列表。技能名不区分大小写，
// 不存在的技能是幂等空操作。
func (s *ProgressService) DeleteProgress(userID uint, skill string) ([]model.SkillProgress, error) {
	if err := s.requireUser(userID); err != nil {
		return nil, err
	}
	if err := s.ProgressRepo.DeleteByUserAndSkill(userID, skill); err != nil {
		return nil, err
	}
	return s.ProgressRepo.FindByUser(userID)
}

// CompleteMicroSkill 记录一条微技能完成：缺失的技能/子技能进度行会补建
// （子技能按已解锁创建），同一 microSkillId 不重复记账。
func (s *ProgressService) CompleteMicroSkill(userID uint, skill, subSkillID, subSkillName, microSkillID, title string) (*model.SkillProgress, error) {
	if err := s.requireUser(userID); err != nil {
		return nil, err
	}

	sp, err := s.ProgressRepo.FindByUserAndSkill(userID, skill)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		sp = &model.SkillProgress{
			UserID:          userID,
			Skill:           skill,
			CompletedTopics: datatypes.JSON("[]"),
			TotalTopics:     defaultTotalTopics,
			LastUpdated:     time.Now(),
		}
		if err := s.ProgressRepo.Create(sp); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	}

	ssp, err := s.ProgressRepo.FindSubSkill(sp.ID, subSkillID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		ssp = &model.SubSkillProgress{
			SkillProgressID: sp.ID,
			SubSkillID:      subSkillID,
			SubSkillName:    subSkillName,
			IsUnlocked:      true,
		}
		if err := s.ProgressRepo.CreateSubSkill(ssp); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	}

	done, err := s.ProgressRepo.MicroSkillCompleted(ssp.ID, microSkillID)
	if err != nil {
		return nil, err
	}
	if !done {
		if err := s.ProgressRepo.CreateMicroSkill(&model.MicroSkillProgress{
			SubSkillProgressID: ssp.ID,
			MicroSkillID:       microSkillID,
			Title:              title,
			CompletedAt:        time.Now(),
		}); err != nil {
			return nil, err
		}
	}

	sp.LastUpdated = time.Now()
	if err := s.ProgressRepo.Save(sp); err != nil {
		return nil, err
	}

	return s.ProgressRepo.FindByUserAndSkill(userID, skill)
}

func (s *ProgressService) requireUser(userID uint) error {
	exists, err := s.UserRepo.Exists(userID)
	if err != nil {
		return err
	}
	if !exists {
		return util.ErrUserNotFound
	}
	return nil
}
