package repository

import (
	"strings"

	"skill_roadmap_backend/internal/model"

	"gorm.io/gorm"
)

type RoadmapRepository struct {
	DB *gorm.DB
}

func NewRoadmapRepository(db *gorm.DB) *RoadmapRepository {
	return &RoadmapRepository{DB: db}
}

func (r *RoadmapRepository) FindAll() ([]model.Roadmap, error) {
	var roadmaps []model.Roadmap
	err := r.DB.
		Preload("Steps", func(db *gorm.DB) *gorm.DB {
			return db.Order("step ASC")
		}).
		Order("role ASC").
		Find(&roadmaps).Error
	return roadmaps, err
}

// FindByRole 角色名按不区分大小写的子串匹配
func (r *RoadmapRepository) FindByRole(role string) (*model.Roadmap, error) {
	var roadmap model.Roadmap
	pattern := "%" + strings.ToLower(role) + "%"
	err := r.DB.
		Preload("Steps", func(db *gorm.DB) *gorm.DB {
			return db.Order("step ASC")
		}).
		Where("LOWER(role) LIKE ?", pattern).
		First(&roadmap).Error
	return &roadmap, err
}

func (r *RoadmapRepository) Count() (int64, error) {
	var count int64
	err := r.DB.Model(&model.Roadmap{}).Count(&count).Error
	return count, err
}

func (r *RoadmapRepository) Create(roadmap *model.Roadmap) error {
	return r.DB.Create(roadmap).Error
}
