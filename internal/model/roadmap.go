package model

import "gorm.io/datatypes"

// Roadmap 静态职业路线图目录 启动时为空则一次性播种，之后只读
type Roadmap struct {
	BaseModel
	Role        string        `gorm:"size:100;unique;not null" json:"role"`
	Description string        `gorm:"size:500;not null" json:"description"`
	Steps       []RoadmapStep `gorm:"foreignKey:RoadmapID" json:"steps"`
}

func (Roadmap) TableName() string {
	return "roadmaps"
}

type RoadmapStep struct {
	BaseModel
	RoadmapID   uint           `gorm:"index;not null" json:"-"`
	Step        int            `gorm:"not null" json:"step"`
	Title       string         `gorm:"size:200;not null" json:"title"`
	Description string         `gorm:"size:1000" json:"description"`
	Resources   datatypes.JSON `json:"resources"` // []string 资源链接
}

func (RoadmapStep) TableName() string {
	return "roadmap_steps"
}
