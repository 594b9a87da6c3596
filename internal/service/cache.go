package service

import (
	"strings"
	"sync"

	"skill_roadmap_backend/internal/model"
)

// GenerationCache 进程内生成内容缓存，显式注入而非包级全局。
// 锁只保证 map 本身的内存安全：两个并发未命中仍可能各自触发一次生成，
// 后写者覆盖先写者（值是新建的不可变对象，覆盖无害）。
type GenerationCache struct {
	mu          sync.RWMutex
	maxEntries  int
	roadmaps    map[string]*model.GeneratedRoadmap
	microSkills map[string]*model.MicroSkillSet
}

func NewGenerationCache(maxEntries int) *GenerationCache {
	if maxEntries <= 0 {
		maxEntries = 1024
	}
	return &GenerationCache{
		maxEntries:  maxEntries,
		roadmaps:    make(map[string]*model.GeneratedRoadmap),
		microSkills: make(map[string]*model.MicroSkillSet),
	}
}

// NormalizeSkillKey 路线图缓存键：小写并去首尾空白
func NormalizeSkillKey(skill string) string {
	return strings.ToLower(strings.TrimSpace(skill))
}

// MicroSkillKey 微技能缓存键：技能-子技能
func MicroSkillKey(skill, subSkill string) string {
	return NormalizeSkillKey(skill) + "-" + NormalizeSkillKey(subSkill)
}

func (c *GenerationCache) GetRoadmap(key string) (*model.GeneratedRoadmap, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	r, ok := c.roadmaps[key]
	return r, ok
}

func (c *GenerationCache) SetRoadmap(key string, roadmap *model.GeneratedRoadmap) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.roadmaps[key]; !ok && len(c.roadmaps) >= c.maxEntries {
		evictOne(c.roadmaps)
	}
	c.roadmaps[key] = roadmap
}

func (c *GenerationCache) GetMicroSkills(key string) (*model.MicroSkillSet, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	m, ok := c.microSkills[key]
	return m, ok
}

func (c *GenerationCache) SetMicroSkills(key string, set *model.MicroSkillSet) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.microSkills[key]; !ok && len(c.microSkills) >= c.maxEntries {
		evictOne(c.microSkills)
	}
	c.microSkills[key] = set
}

// Len 当前缓存条目总数
func (c *GenerationCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.roadmaps) + len(c.microSkills)
}

// evictOne 达到上限时腾出一个位置，牺牲者任取
func evictOne[V any](m map[string]V) {
	for k := range m {
		delete(m, k)
		return
	}
}
