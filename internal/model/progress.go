package model

import (
	"time"

	"gorm.io/datatypes"
)

// SkillProgress 用户某个技能的学习进度
// completionPercentage 在每次写入时按 completedTopics/totalTopics 重新计算
type SkillProgress struct {
	BaseModel
	UserID               uint           `gorm:"index:idx_progress_user;not null" json:"-"`
	Skill                string         `gorm:"size:100;not null;index:idx_progress_user" json:"skill"`
	Domain               string         `gorm:"size:100" json:"domain"`
	CompletedTopics      datatypes.JSON `json:"completedTopics"` // []string 主题标识
	TotalTopics          int            `gorm:"default:15" json:"totalTopics"`
	CompletionPercentage int            `gorm:"default:0" json:"completionPercentage"`
	LastUpdated          time.Time      `json:"lastUpdated"`

	SubSkills []SubSkillProgress `gorm:"foreignKey:SkillProgressID" json:"subSkillsProgress"`
}

func (SkillProgress) TableName() string {
	return "skill_progress"
}

// SubSkillProgress 子技能进度 归属某条技能进度
type SubSkillProgress struct {
	BaseModel
	SkillProgressID  uint       `gorm:"index;not null" json:"-"`
	SubSkillID       string     `gorm:"size:191;not null" json:"subSkillId"`
	SubSkillName     string     `gorm:"size:100" json:"subSkillName"`
	IsUnlocked       bool       `gorm:"default:false" json:"isUnlocked"`
	IsCompleted      bool       `gorm:"default:false" json:"isCompleted"`
	ProjectSubmitted bool       `gorm:"default:false" json:"projectSubmitted"`
	ProjectScore     *int       `json:"projectScore"`
	ProjectPassed    bool       `gorm:"default:false" json:"projectPassed"`
	CompletedAt      *time.Time `json:"completedAt"`

	MicroSkills []MicroSkillProgress `gorm:"foreignKey:SubSkillProgressID" json:"microSkillsProgress"`
}

func (SubSkillProgress) TableName() string {
	return "sub_skill_progress"
}

// MicroSkillProgress 微技能完成记录 按 microSkillId 去重，只增不删
type MicroSkillProgress struct {
	BaseModel
	SubSkillProgressID uint      `gorm:"index;not null" json:"-"`
	MicroSkillID       string    `gorm:"size:191;not null" json:"microSkillId"`
	Title              string    `gorm:"size:200" json:"title"`
	CompletedAt        time.Time `json:"completedAt"`
}

func (MicroSkillProgress) TableName() string {
	return "micro_skill_progress"
}
