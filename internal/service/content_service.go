package service

import (
	"context"

	"skill_roadmap_backend/internal/model"
	"skill_roadmap_backend/pkg/logger"
	"skill_roadmap_backend/pkg/monitoring"

	"go.uber.org/zap"
)

// ContentGenerator 外部内容生成器
type ContentGenerator interface {
	GenerateRoadmap(ctx context.Context, skill string) (*model.GeneratedRoadmap, error)
	GenerateMicroSkills(ctx context.Context, skill, subSkill string) (*model.MicroSkillSet, error)
}

// ContentService 内容获取编排：缓存 → 生成 → 失败降级到兜底内容。
// 生成失败只记日志，从不向调用方返回错误。
type ContentService struct {
	generator ContentGenerator
	cache     *GenerationCache
}

func NewContentService(generator ContentGenerator, cache *GenerationCache) *ContentService {
	return &ContentService{
		generator: generator,
		cache:     cache,
	}
}

func (s *ContentService) GetRoadmap(ctx context.Context, skill string) *model.GeneratedRoadmap {
	key := NormalizeSkillKey(skill)

	if roadmap, ok := s.cache.GetRoadmap(key); ok {
		logger.Log.Debug("returning cached roadmap", zap.String("skill", key))
		monitoring.GenerationCounter.WithLabelValues("roadmap", "cache").Inc()
		return roadmap
	}

	logger.Log.Info("generating roadmap", zap.String("skill", key))
	roadmap, err := s.generator.GenerateRoadmap(ctx, skill)
	if err != nil {
		// 兜底内容不进缓存，下次请求仍会尝试生成
		logger.Log.Warn("roadmap generation failed, using fallback",
			zap.String("skill", skill), zap.Error(err))
		monitoring.GenerationCounter.WithLabelValues("roadmap", "fallback").Inc()
		return FallbackRoadmap(skill)
	}

	s.cache.SetRoadmap(key, roadmap)
	monitoring.GenerationCounter.WithLabelValues("roadmap", "generated").Inc()
	return roadmap
}

func (s *ContentService) GetMicroSkills(ctx context.Context, skill, subSkill string) *model.MicroSkillSet {
	key := MicroSkillKey(skill, subSkill)

	if set, ok := s.cache.GetMicroSkills(key); ok {
		logger.Log.Debug("returning cached micro-skills", zap.String("key", key))
		monitoring.GenerationCounter.WithLabelValues("micro_skills", "cache").Inc()
		return set
	}

	logger.Log.Info("generating micro-skills",
		zap.String("skill", skill), zap.String("subSkill", subSkill))
	set, err := s.generator.GenerateMicroSkills(ctx, skill, subSkill)
	if err != nil {
		logger.Log.Warn("micro-skill generation failed, using fallback",
			zap.String("skill", skill), zap.String("subSkill", subSkill), zap.Error(err))
		monitoring.GenerationCounter.WithLabelValues("micro_skills", "fallback").Inc()
		return FallbackMicroSkills(skill, subSkill)
	}

	s.cache.SetMicroSkills(key, set)
	monitoring.GenerationCounter.WithLabelValues("micro_skills", "generated").Inc()
	return set
}
