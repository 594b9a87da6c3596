package service

import (
	"fmt"
	"strings"

	"skill_roadmap_backend/internal/model"
)

// 兜底内容生成：外部生成调用失败或未配置时返回固定形状的确定性内容，
// 纯函数，不做任何 I/O，不会失败。

// FallbackRoadmap 固定 5 个子技能，仅第一个解锁
func FallbackRoadmap(skill string) *model.GeneratedRoadmap {
	skillName := skill
	if skillName == "" {
		skillName = "Programming"
	}

	subSkills := []struct {
		name        string
		description string
	}{
		{"Fundamentals", "Core concepts and basics"},
		{"Intermediate Concepts", "Building on the basics"},
		{"Advanced Topics", "Expert-level knowledge"},
		{"Best Practices", "Industry standards and patterns"},
		{"Real-world Projects", "Practical applications"},
	}

	roadmap := &model.GeneratedRoadmap{
		Skill:     skillName,
		Domain:    skillName + " Development",
		SubSkills: make([]model.GeneratedSubSkill, 0, len(subSkills)),
	}

	for i, s := range subSkills {
		roadmap.SubSkills = append(roadmap.SubSkills, model.GeneratedSubSkill{
			ID:          fmt.Sprintf("%s-%d", skillName, i),
			Name:        s.name,
			Description: s.description,
			Order:       i + 1,
			IsUnlocked:  i == 0,
			IsCompleted: false,
		})
	}

	return roadmap
}

// FallbackMicroSkills 固定 4 个微技能，文案内插技能/子技能名
func FallbackMicroSkills(skill, subSkill string) *model.MicroSkillSet {
	compact := strings.Join(strings.Fields(subSkill), "")

	return &model.MicroSkillSet{
		SubSkill: subSkill,
		MicroSkills: []model.MicroSkill{
			{
				ID:          fmt.Sprintf("%s-%s-0", skill, subSkill),
				Title:       "Introduction",
				Explanation: fmt.Sprintf("Welcome to %s! This section covers the fundamental concepts you need to understand before diving deeper. Take your time to absorb these concepts as they form the foundation for everything that follows.", subSkill),
				Code:        fmt.Sprintf("// Example code for %s\nconsole.log(\"Hello, %s!\");", subSkill, subSkill),
				Output:      fmt.Sprintf("Hello, %s!", subSkill),
				Notes:       "Start with the basics and practice regularly. Understanding these concepts well will make advanced topics much easier.",
				Order:       1,
				IsCompleted: false,
			},
			{
				ID:          fmt.Sprintf("%s-%s-1", skill, subSkill),
				Title:       "Core Concepts",
				Explanation: fmt.Sprintf("Now that you understand the basics, let's explore the core concepts of %s. These are the building blocks that you'll use in real-world applications.", subSkill),
				Code:        fmt.Sprintf("// Core concept example\nfunction demonstrate%s() {\n  // Implementation here\n  return \"Success!\";\n}", compact),
				Output:      "Success!",
				Notes:       "Practice these concepts with different examples. Try modifying the code to see how it behaves.",
				Order:       2,
				IsCompleted: false,
			},
			{
				ID:          fmt.Sprintf("%s-%s-2", skill, subSkill),
				Title:       "Practical Application",
				Explanation: fmt.Sprintf("Time to put your knowledge into practice! This section shows you how to apply %s concepts in real scenarios.", subSkill),
				Code:        fmt.Sprintf("// Practical example\nclass %sExample {\n  constructor() {\n    this.status = \"ready\";\n  }\n  \n  run() {\n    console.log(\"Running...\");\n  }\n}", compact),
				Output:      "Running...",
				Notes:       "Real-world applications often combine multiple concepts. Try to create your own examples.",
				Order:       3,
				IsCompleted: false,
			},
			{
				ID:          fmt.Sprintf("%s-%s-3", skill, subSkill),
				Title:       "Best Practices",
				Explanation: fmt.Sprintf("Learn the industry best practices for %s. Following these guidelines will make your code more maintainable and professional.", subSkill),
				Code:        "// Best practices example\n// 1. Use meaningful names\n// 2. Keep functions small\n// 3. Write comments\n// 4. Handle errors properly",
				Output:      "Code quality improved!",
				Notes:       "Good practices become habits with consistent application. Review your old code and improve it.",
				Order:       4,
				IsCompleted: false,
			},
		},
	}
}
