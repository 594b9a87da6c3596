package service

import (
	"errors"
	"unicode"

	"skill_roadmap_backend/internal/model"
	"skill_roadmap_backend/internal/repository"
	"skill_roadmap_backend/internal/util"

	"gorm.io/gorm"
)

// RoadmapService 职业路线图目录与技能搜索
type RoadmapService struct {
	RoadmapRepo *repository.RoadmapRepository
}

func NewRoadmapService(roadmapRepo *repository.RoadmapRepository) *RoadmapService {
	return &RoadmapService{RoadmapRepo: roadmapRepo}
}

func (s *RoadmapService) ListRoadmaps() ([]model.Roadmap, error) {
	return s.RoadmapRepo.FindAll()
}

func (s *RoadmapService) GetRoadmapByRole(role string) (*model.Roadmap, error) {
	roadmap, err := s.RoadmapRepo.FindByRole(role)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrRoadmapNotFound
		}
		return nil, err
	}
	return roadmap, nil
}

// SearchSkill 按搜索词产出固定三级（Beginner/Intermediate/Advanced）路线图，
// 领域名取首字母大写的搜索词加 " Development" 后缀
func (s *RoadmapService) SearchSkill(skill string) *model.RoleRoadmap {
	return &model.RoleRoadmap{
		SearchedSkill:  skill,
		DetectedDomain: capitalizeFirst(skill) + " Development",
		Roadmap: []model.RoleLevel{
			{
				Level:    "Beginner",
				Topics:   []string{skill + " Fundamentals", "Basic Concepts", "Getting Started", "Core Principles", "First Steps"},
				Projects: []string{"Hello World Project", "Basic Calculator", "Simple Portfolio"},
			},
			{
				Level:    "Intermediate",
				Topics:   []string{"Advanced Concepts", "Best Practices", "Design Patterns", "Testing Basics", "API Integration"},
				Projects: []string{"Task Manager App", "Weather Dashboard", "Blog Platform"},
			},
			{
				Level:    "Advanced",
				Topics:   []string{"Performance Optimization", "Security Best Practices", "Scalability", "CI/CD Integration", "System Design"},
				Projects: []string{"Full-Stack Application", "Real-time Chat App", "E-commerce Platform"},
			},
		},
	}
}

func capitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
