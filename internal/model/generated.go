package model

// 生成内容不落库：首次请求时生成，由 GenerationCache 在进程内持有。

// GeneratedSubSkill 路线图中的一个子技能单元，按 order 渐进解锁
type GeneratedSubSkill struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Order       int    `json:"order"`
	IsUnlocked  bool   `json:"isUnlocked"`
	IsCompleted bool   `json:"isCompleted"`
}

// GeneratedRoadmap 按技能生成的学习路线图
type GeneratedRoadmap struct {
	Skill     string              `json:"skill"`
	Domain    string              `json:"domain"`
	SubSkills []GeneratedSubSkill `json:"subSkills"`
}

// MicroSkill 子技能下最小的教学单元
type MicroSkill struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Explanation string `json:"explanation"`
	Code        string `json:"code"`
	Output      string `json:"output"`
	Notes       string `json:"notes"`
	Order       int    `json:"order"`
	IsCompleted bool   `json:"isCompleted"`
}

// MicroSkillSet 某个 (技能, 子技能) 的微技能集合
type MicroSkillSet struct {
	SubSkill    string       `json:"subSkill"`
	MicroSkills []MicroSkill `json:"microSkills"`
}

// ProjectTemplate 子技能对应的实战项目模板
type ProjectTemplate struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Requirements []string `json:"requirements"`
	PassingScore int      `json:"passingScore"`
	MaxScore     int      `json:"maxScore"`
}

// RoleLevel 静态角色路线图中的一个难度层级
type RoleLevel struct {
	Level    string   `json:"level"`
	Topics   []string `json:"topics"`
	Projects []string `json:"projects"`
}

// RoleRoadmap 按角色关键词生成的静态三级路线图
type RoleRoadmap struct {
	SearchedSkill  string      `json:"searchedSkill"`
	DetectedDomain string      `json:"detectedDomain"`
	Roadmap        []RoleLevel `json:"roadmap"`
}
