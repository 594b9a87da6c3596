package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"skill_roadmap_backend/internal/config"
	"skill_roadmap_backend/internal/model"
)

var (
	ErrAPIKeyMissing = errors.New("gemini api key is not configured")
	ErrEmptyResponse = errors.New("no content generated")
)

// GenerationService 调用外部文本生成接口产出路线图/微技能内容。
// 失败不在此处兜底：调用方统一降级到 Fallback 内容。
type GenerationService struct {
	cfg    config.GeminiConfig
	client *http.Client
}

func NewGenerationService(cfg config.GeminiConfig) *GenerationService {
	return &GenerationService{
		cfg: cfg,
		// 上游未配置超时，这里固定 30s，超时按传输失败处理
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type generationConfig struct {
	Temperature     float64 `json:"temperature"`
	TopK            int     `json:"topK"`
	TopP            float64 `json:"topP"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type geminiRequest struct {
	Contents         []geminiContent  `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

func (s *GenerationService) generateContent(ctx context.Context, prompt string) (string, error) {
	if s.cfg.APIKey == "" {
		return "", ErrAPIKeyMissing
	}

	reqBody := geminiRequest{
		Contents: []geminiContent{
			{Parts: []geminiPart{{Text: prompt}}},
		},
		GenerationConfig: generationConfig{
			Temperature:     0.7,
			TopK:            40,
			TopP:            0.95,
			MaxOutputTokens: 8192,
		},
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/%s:generateContent?key=%s", s.cfg.BaseURL, s.cfg.Model, s.cfg.APIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gemini API error (status %d): %s", resp.StatusCode, string(body))
	}

	var result geminiResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", err
	}

	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return "", ErrEmptyResponse
	}

	text := result.Candidates[0].Content.Parts[0].Text
	if text == "" {
		return "", ErrEmptyResponse
	}

	return text, nil
}

// stripCodeFence 去掉回复首尾可选的 ```json / ``` 围栏
func stripCodeFence(text string) string {
	jsonStr := strings.TrimSpace(text)
	if strings.HasPrefix(jsonStr, "```json") {
		jsonStr = jsonStr[7:]
	} else if strings.HasPrefix(jsonStr, "```") {
		jsonStr = jsonStr[3:]
	}
	if strings.HasSuffix(jsonStr, "```") {
		jsonStr = jsonStr[:len(jsonStr)-3]
	}
	return strings.TrimSpace(jsonStr)
}

// GenerateRoadmap 生成技能路线图并整形：
// 子技能补 id/order/解锁标记，仅第一个子技能解锁。
func (s *GenerationService) GenerateRoadmap(ctx context.Context, skill string) (*model.GeneratedRoadmap, error) {
	prompt := fmt.Sprintf(`Generate a learning roadmap for the skill: "%s".
Return JSON only in this exact format (no markdown, no explanation):

{
  "skill": "%s",
  "domain": "detected domain name",
  "subSkills": [
    {
      "name": "sub skill name",
      "description": "brief description",
      "order": 1
    }
  ]
}

Generate 5-8 sub-skills that progressively build upon each other from beginner to advanced.
Focus on practical, industry-relevant skills.`, skill, skill)

	text, err := s.generateContent(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var roadmap model.GeneratedRoadmap
	if err := json.Unmarshal([]byte(stripCodeFence(text)), &roadmap); err != nil {
		return nil, fmt.Errorf("failed to parse AI response as JSON: %w", err)
	}

	// 仅校验 JSON 语法不够：字段缺失同样按生成失败处理
	if len(roadmap.SubSkills) == 0 {
		return nil, errors.New("generated roadmap has no sub-skills")
	}
	for _, ss := range roadmap.SubSkills {
		if ss.Name == "" {
			return nil, errors.New("generated roadmap has unnamed sub-skill")
		}
	}

	normalized := NormalizeSkillKey(skill)
	for i := range roadmap.SubSkills {
		roadmap.SubSkills[i].ID = fmt.Sprintf("%s-%d", normalized, i)
		if roadmap.SubSkills[i].Order == 0 {
			roadmap.SubSkills[i].Order = i + 1
		}
		roadmap.SubSkills[i].IsUnlocked = i == 0
		roadmap.SubSkills[i].IsCompleted = false
	}

	return &roadmap, nil
}

// GenerateMicroSkills 生成某个子技能下的微技能集合
func (s *GenerationService) GenerateMicroSkills(ctx context.Context, skill, subSkill string) (*model.MicroSkillSet, error) {
	prompt := fmt.Sprintf(`For the skill "%s" and sub-skill "%s", generate detailed micro-skills with learning content.

Return JSON only in this exact format (no markdown, no explanation):

{
  "subSkill": "%s",
  "microSkills": [
    {
      "title": "micro skill title",
      "explanation": "detailed explanation (2-3 paragraphs)",
      "code": "complete code example with comments",
      "output": "expected output or result",
      "notes": "key points and best practices"
    }
  ]
}

Generate 4-6 micro-skills that cover the essential concepts of "%s".
Each micro-skill should include practical code examples that are runnable.
Make the code examples comprehensive with proper comments.`, skill, subSkill, subSkill, subSkill)

	text, err := s.generateContent(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var set model.MicroSkillSet
	if err := json.Unmarshal([]byte(stripCodeFence(text)), &set); err != nil {
		return nil, fmt.Errorf("failed to parse AI response as JSON: %w", err)
	}

	if len(set.MicroSkills) == 0 {
		return nil, errors.New("generated micro-skill set is empty")
	}
	for _, ms := range set.MicroSkills {
		if ms.Title == "" {
			return nil, errors.New("generated micro-skill has no title")
		}
	}

	cacheKey := MicroSkillKey(skill, subSkill)
	for i := range set.MicroSkills {
		set.MicroSkills[i].ID = fmt.Sprintf("%s-%d", cacheKey, i)
		set.MicroSkills[i].Order = i + 1
		set.MicroSkills[i].IsCompleted = false
	}

	return &set, nil
}
