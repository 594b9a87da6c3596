package model

import (
	"time"

	"gorm.io/datatypes"
)

const (
	SubmissionTypeCode = "code"
	SubmissionTypeURL  = "url"
	SubmissionTypeFile = "file"
)

// ProjectSubmission 项目提交记录 评分后写入，不再更新或删除
type ProjectSubmission struct {
	UUIDBase
	UserID         string         `gorm:"size:64;index:idx_submission_user" json:"userId"`
	Skill          string         `gorm:"size:100;index:idx_submission_user" json:"skill"`
	SubSkill       string         `gorm:"size:100;index:idx_submission_user" json:"subSkill"`
	ProjectTitle   string         `gorm:"size:200" json:"projectTitle"`
	SubmissionType string         `gorm:"size:10;not null" json:"submissionType"`
	Content        string         `gorm:"type:text" json:"content"`
	FileName       *string        `gorm:"size:255" json:"fileName"`
	Score          int            `gorm:"not null" json:"score"`
	MaxScore       int            `gorm:"default:100" json:"maxScore"`
	Passed         bool           `gorm:"not null" json:"passed"`
	Summary        string         `gorm:"size:500" json:"summary"`
	Strengths      datatypes.JSON `json:"strengths"`    // []string
	Improvements   datatypes.JSON `json:"improvements"` // []string
	SubmittedAt    time.Time      `json:"submittedAt"`
	ReviewedAt     time.Time      `json:"reviewedAt"`
}

func (ProjectSubmission) TableName() string {
	return "project_submissions"
}

// Feedback 评分反馈 按分数段选取
type Feedback struct {
	Summary      string   `json:"summary"`
	Strengths    []string `json:"strengths"`
	Improvements []string `json:"improvements"`
}

// SubmissionResult 提交评分结果（接口返回体）
type SubmissionResult struct {
	SubmissionID   string    `json:"submissionId"`
	UserID         string    `json:"userId"`
	Skill          string    `json:"skill"`
	SubSkill       string    `json:"subSkill"`
	SubmissionType string    `json:"submissionType"`
	Score          int       `json:"score"`
	MaxScore       int       `json:"maxScore"`
	Passed         bool      `json:"passed"`
	Feedback       Feedback  `json:"feedback"`
	SubmittedAt    time.Time `json:"submittedAt"`
}
