package repository

import (
	"skill_roadmap_backend/internal/model"

	"gorm.io/gorm"
)

type SubmissionRepository struct {
	DB *gorm.DB
}

func NewSubmissionRepository(db *gorm.DB) *SubmissionRepository {
	return &SubmissionRepository{DB: db}
}

func (r *SubmissionRepository) Create(sub *model.ProjectSubmission) error {
	return r.DB.Create(sub).Error
}

func (r *SubmissionRepository) FindByUser(userID string) ([]model.ProjectSubmission, error) {
	var subs []model.ProjectSubmission
	err := r.DB.
		Where("user_id = ?", userID).
		Order("submitted_at DESC").
		Find(&subs).Error
	return subs, err
}
