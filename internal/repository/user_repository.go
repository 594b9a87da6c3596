package repository

import (
	"strings"

	"skill_roadmap_backend/internal/model"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(user *model.User) error {
	return r.DB.Create(user).Error
}

func (r *UserRepository) FindByID(id uint) (*model.User, error) {
	var user model.User
	err := r.DB.
		Preload("Skills").
		Preload("SkillProgress").
		Preload("SkillProgress.SubSkills").
		Preload("SkillProgress.SubSkills.MicroSkills").
		Preload("CurrentRoadmap").
		First(&user, id).Error
	return &user, err
}

// Exists 只查存在性，不加载关联
func (r *UserRepository) Exists(id uint) (bool, error) {
	var count int64
	err := r.DB.Model(&model.User{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *UserRepository) FindByEmail(email string) (*model.User, error) {
	var user model.User
	err := r.DB.Where("email = ?", strings.ToLower(strings.TrimSpace(email))).First(&user).Error
	return &user, err
}

func (r *UserRepository) Update(user *model.User) error {
	return r.DB.Model(user).Select("Name", "Bio", "Avatar").Updates(user).Error
}

func (r *UserRepository) UpdateAvatar(userID uint, avatar string) error {
	return r.DB.Model(&model.User{}).Where("id = ?", userID).Update("avatar", avatar).Error
}

// FindSkill 按 ID 查找归属该用户的技能
func (r *UserRepository) FindSkill(userID, skillID uint) (*model.UserSkill, error) {
	var skill model.UserSkill
	err := r.DB.Where("user_id = ? AND id = ?", userID, skillID).First(&skill).Error
	return &skill, err
}

// SkillExists 技能名按不区分大小写判重
func (r *UserRepository) SkillExists(userID uint, name string) (bool, error) {
	var count int64
	err := r.DB.Model(&model.UserSkill{}).
		Where("user_id = ? AND LOWER(name) = ?", userID, strings.ToLower(name)).
		Count(&count).Error
	return count > 0, err
}

func (r *UserRepository) CreateSkill(skill *model.UserSkill) error {
	return r.DB.Create(skill).Error
}

func (r *UserRepository) SaveSkill(skill *model.UserSkill) error {
	return r.DB.Save(skill).Error
}

func (r *UserRepository) DeleteSkill(skill *model.UserSkill) error {
	return r.DB.Delete(skill).Error
}

func (r *UserRepository) FindActiveRoadmap(userID uint) (*model.ActiveRoadmap, error) {
	var rm model.ActiveRoadmap
	err := r.DB.Where("user_id = ?", userID).First(&rm).Error
	return &rm, err
}

// SaveActiveRoadmap 覆盖用户当前路线图指针（一人至多一条）
func (r *UserRepository) SaveActiveRoadmap(rm *model.ActiveRoadmap) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", rm.UserID).Delete(&model.ActiveRoadmap{}).Error; err != nil {
			return err
		}
		return tx.Create(rm).Error
	})
}

func (r *UserRepository) UpdateActiveRoadmap(rm *model.ActiveRoadmap) error {
	return r.DB.Save(rm).Error
}
