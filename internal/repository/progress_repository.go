package repository

import (
	"strings"

	"skill_roadmap_backend/internal/model"

	"gorm.io/gorm"
)

type ProgressRepository struct {
	DB *gorm.DB
}

func NewProgressRepository(db *gorm.DB) *ProgressRepository {
	return &ProgressRepository{DB: db}
}

func (r *ProgressRepository) FindByUser(userID uint) ([]model.SkillProgress, error) {
	var list []model.SkillProgress
	err := r.DB.
		Preload("SubSkills").
		Preload("SubSkills.MicroSkills").
		Where("user_id = ?", userID).
		Find(&list).Error
	return list, err
}

// FindByUserAndSkill 技能名按不区分大小写匹配
func (r *ProgressRepository) FindByUserAndSkill(userID uint, skill string) (*model.SkillProgress, error) {
	var sp model.SkillProgress
	err := r.DB.
		Preload("SubSkills").
		Preload("SubSkills.MicroSkills").
		Where("user_id = ? AND LOWER(skill) = ?", userID, strings.ToLower(skill)).
		First(&sp).Error
	return &sp, err
}

func (r *ProgressRepository) Create(sp *model.SkillProgress) error {
	return r.DB.Create(sp).Error
}

// Save 仅更新该条技能进度行，不回写整个用户文档
func (r *ProgressRepository) Save(sp *model.SkillProgress) error {
	return r.DB.Save(sp).Error
}

func (r *ProgressRepository) DeleteByUserAndSkill(userID uint, skill string) error {
	return r.DB.
		Where("user_id = ? AND LOWER(skill) = ?", userID, strings.ToLower(skill)).
		Delete(&model.SkillProgress{}).Error
}

func (r *ProgressRepository) FindSubSkill(skillProgressID uint, subSkillID string) (*model.SubSkillProgress, error) {
	var ssp model.SubSkillProgress
	err := r.DB.
		Where("skill_progress_id = ? AND sub_skill_id = ?", skillProgressID, subSkillID).
		First(&ssp).Error
	return &ssp, err
}

func (r *ProgressRepository) CreateSubSkill(ssp *model.SubSkillProgress) error {
	return r.DB.Create(ssp).Error
}

func (r *ProgressRepository) SaveSubSkill(ssp *model.SubSkillProgress) error {
	return r.DB.Save(ssp).Error
}

// MicroSkillCompleted 该微技能是否已有完成记录
func (r *ProgressRepository) MicroSkillCompleted(subSkillProgressID uint, microSkillID string) (bool, error) {
	var count int64
	err := r.DB.Model(&model.MicroSkillProgress{}).
		Where("sub_skill_progress_id = ? AND micro_skill_id = ?", subSkillProgressID, microSkillID).
		Count(&count).Error
	return count > 0, err
}

func (r *ProgressRepository) CreateMicroSkill(msp *model.MicroSkillProgress) error {
	return r.DB.Create(msp).Error
}
