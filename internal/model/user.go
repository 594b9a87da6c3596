package model

import (
	"time"

	"gorm.io/datatypes"
)

type SkillLevel string

const (
	Beginner     SkillLevel = "Beginner"
	Intermediate SkillLevel = "Intermediate"
	Advanced     SkillLevel = "Advanced"
	Expert       SkillLevel = "Expert"
)

// swagger:model User
type User struct {
	BaseModel
	Name     string `gorm:"size:100;not null" json:"name"`
	Email    string `gorm:"size:100;unique;not null" json:"email"`
	Password string `gorm:"size:100;not null" json:"-"`
	Bio      string `gorm:"size:500" json:"bio"`
	Avatar   string `gorm:"size:255" json:"avatar"`

	Skills         []UserSkill     `gorm:"foreignKey:UserID" json:"skills"`
	SkillProgress  []SkillProgress `gorm:"foreignKey:UserID" json:"skillProgress"`
	CurrentRoadmap *ActiveRoadmap  `gorm:"foreignKey:UserID" json:"currentRoadmap,omitempty"`
}

func (User) TableName() string {
	return "users"
}

// UserSkill 用户技能 每个用户内技能名不区分大小写唯一
type UserSkill struct {
	BaseModel
	UserID            uint       `gorm:"index;not null" json:"-"`
	Name              string     `gorm:"size:100;not null" json:"name"`
	Level             SkillLevel `gorm:"size:20;default:'Beginner'" json:"level"`
	YearsOfExperience float64    `gorm:"default:0" json:"yearsOfExperience"`
	AddedAt           time.Time  `json:"addedAt"`
}

func (UserSkill) TableName() string {
	return "user_skills"
}

// ActiveRoadmap 用户当前进行中的职业路线图指针（每个用户至多一条）
type ActiveRoadmap struct {
	BaseModel
	UserID         uint           `gorm:"uniqueIndex;not null" json:"-"`
	RoadmapID      string         `gorm:"size:64;not null" json:"roadmapId"`
	Role           string         `gorm:"size:100;not null" json:"role"`
	StartedAt      time.Time      `json:"startedAt"`
	CompletedSteps datatypes.JSON `json:"completedSteps"` // []int 步骤编号
	Progress       int            `gorm:"default:0" json:"progress"`
}

func (ActiveRoadmap) TableName() string {
	return "active_roadmaps"
}
