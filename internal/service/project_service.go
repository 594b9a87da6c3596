package service

import (
	"encoding/json"
	"math/rand"
	"strings"
	"time"

	"skill_roadmap_backend/internal/model"
	"skill_roadmap_backend/internal/repository"
	"skill_roadmap_backend/internal/util"
	"skill_roadmap_backend/pkg/logger"

	"gorm.io/datatypes"
	"go.uber.org/zap"
)

const (
	passingScore = 75
	maxScore     = 100
)

// 评分候选集合：分数与提交内容无关（打分为占位实现）
var submissionScores = []int{72, 75, 78, 82, 85, 90}

type projectTemplate struct {
	Title        string
	Description  string
	Requirements []string
}

// 关键词按声明顺序做子串匹配，default 必须排最后
var projectTemplates = []struct {
	Keyword  string
	Template projectTemplate
}{
	// Frontend related
	{"html", projectTemplate{"Personal Portfolio Website", "Create a responsive personal portfolio with sections for About, Skills, Projects, and Contact.", []string{"Semantic HTML5 elements", "At least 4 sections", "Navigation menu", "Contact form", "Responsive images"}}},
	{"css", projectTemplate{"CSS Art Gallery", "Build a beautiful art gallery page with advanced CSS styling and animations.", []string{"Flexbox or Grid layout", "CSS animations", "Hover effects", "Responsive design", "Custom color scheme"}}},
	{"javascript", projectTemplate{"Interactive Quiz App", "Create a quiz application with multiple questions, scoring, and timer.", []string{"DOM manipulation", "Event handling", "Score tracking", "Timer functionality", "Results display"}}},
	{"react", projectTemplate{"Task Management Dashboard", "Build a full-featured task management app with React.", []string{"Component architecture", "State management", "CRUD operations", "Filtering/sorting", "Local storage persistence"}}},

	// Backend related
	{"node", projectTemplate{"REST API Server", "Create a RESTful API with Express.js for a blog system.", []string{"CRUD endpoints", "Error handling", "Input validation", "Authentication", "API documentation"}}},
	{"database", projectTemplate{"Database Design Project", "Design and implement a database for an e-commerce system.", []string{"ER diagram", "Normalized schema", "Relationships", "Indexes", "Sample queries"}}},
	{"api", projectTemplate{"API Integration Service", "Build a service that integrates multiple third-party APIs.", []string{"Multiple API calls", "Data aggregation", "Error handling", "Rate limiting", "Caching"}}},

	// Programming languages
	{"python", projectTemplate{"Data Processing Script", "Create a Python script for processing and analyzing data.", []string{"File handling", "Data parsing", "Statistical analysis", "Report generation", "Error handling"}}},
	{"java", projectTemplate{"Console Banking Application", "Build a banking system with account management.", []string{"OOP principles", "Account operations", "Transaction history", "Data persistence", "Input validation"}}},

	// Data Science
	{"data", projectTemplate{"Mini Prediction Model", "Build a simple machine learning model for prediction.", []string{"Data preprocessing", "Feature selection", "Model training", "Evaluation metrics", "Prediction interface"}}},
	{"visualization", projectTemplate{"Interactive Dashboard", "Create an interactive data visualization dashboard.", []string{"Multiple chart types", "Interactive filters", "Real-time updates", "Export functionality", "Responsive layout"}}},

	// DevOps/Cloud
	{"cloud", projectTemplate{"Cloud Deployment Project", "Deploy a web application to cloud infrastructure.", []string{"Cloud setup", "CI/CD pipeline", "Environment config", "Monitoring", "Documentation"}}},
	{"docker", projectTemplate{"Containerized Application", "Containerize a multi-service application.", []string{"Dockerfile creation", "Docker Compose", "Networking", "Volume management", "Production config"}}},

	// UI/UX
	{"design", projectTemplate{"App Wireframe Design", "Design complete wireframes for a mobile application.", []string{"User research", "Information architecture", "Low-fidelity wireframes", "High-fidelity mockups", "Prototype"}}},
	{"ux", projectTemplate{"UX Case Study", "Complete a UX case study for an existing application redesign.", []string{"User research", "Persona creation", "User journey map", "Usability testing", "Final recommendations"}}},
}

var defaultTemplate = projectTemplate{
	Title:        "Skill Demonstration Project",
	Description:  "Create a project that demonstrates your understanding of the learned skills.",
	Requirements: []string{"Apply core concepts", "Best practices", "Documentation", "Clean code", "Working demo"},
}

// ProjectService 项目模板查询与提交评分
type ProjectService struct {
	SubmissionRepo *repository.SubmissionRepository
}

func NewProjectService(submissionRepo *repository.SubmissionRepository) *ProjectService {
	return &ProjectService{SubmissionRepo: submissionRepo}
}

// GetProject 按子技能名查项目模板，无匹配时返回默认模板
func (s *ProjectService) GetProject(subSkill string) model.ProjectTemplate {
	normalized := strings.ToLower(subSkill)

	tpl := defaultTemplate
	for _, entry := range projectTemplates {
		if strings.Contains(normalized, entry.Keyword) {
			tpl = entry.Template
			break
		}
	}

	return model.ProjectTemplate{
		ID:           "project-" + normalized,
		Title:        tpl.Title,
		Description:  tpl.Description,
		Requirements: tpl.Requirements,
		PassingScore: passingScore,
		MaxScore:     maxScore,
	}
}

// Submit 校验提交类型、评分并持久化。
// 持久化失败只记日志：评分结果照常返回。
func (s *ProjectService) Submit(userID, skill, subSkill, submissionType, content string, fileName *string) (*model.SubmissionResult, error) {
	switch submissionType {
	case model.SubmissionTypeCode, model.SubmissionTypeURL, model.SubmissionTypeFile:
	default:
		return nil, util.ErrInvalidSubmissionType
	}

	score := submissionScores[rand.Intn(len(submissionScores))]
	passed := score >= passingScore
	feedback := feedbackForScore(score)
	now := time.Now()

	submission := &model.ProjectSubmission{
		UserID:         userID,
		Skill:          skill,
		SubSkill:       subSkill,
		ProjectTitle:   s.GetProject(subSkill).Title,
		SubmissionType: submissionType,
		Content:        content,
		FileName:       fileName,
		Score:          score,
		MaxScore:       maxScore,
		Passed:         passed,
		Summary:        feedback.Summary,
		Strengths:      mustJSON(feedback.Strengths),
		Improvements:   mustJSON(feedback.Improvements),
		SubmittedAt:    now,
		ReviewedAt:     now,
	}

	if s.SubmissionRepo != nil {
		if err := s.SubmissionRepo.Create(submission); err != nil {
			logger.Log.Error("failed to persist project submission",
				zap.String("userId", userID), zap.String("subSkill", subSkill), zap.Error(err))
			submission.ID = "sub-" + model.GenerateUUID()
		}
	} else {
		submission.ID = "sub-" + model.GenerateUUID()
	}

	return &model.SubmissionResult{
		SubmissionID:   submission.ID,
		UserID:         userID,
		Skill:          skill,
		SubSkill:       subSkill,
		SubmissionType: submissionType,
		Score:          score,
		MaxScore:       maxScore,
		Passed:         passed,
		Feedback:       feedback,
		SubmittedAt:    now,
	}, nil
}

// feedbackForScore 分数段对应固定话术：>=90 / >=80 / >=75 / 其他
func feedbackForScore(score int) model.Feedback {
	switch {
	case score >= 90:
		return model.Feedback{
			Summary:      "Excellent work! Your project demonstrates outstanding understanding.",
			Strengths:    []string{"Clean code structure", "Complete implementation", "Good documentation"},
			Improvements: []string{"Consider adding more edge case handling"},
		}
	case score >= 80:
		return model.Feedback{
			Summary:      "Great job! Your project shows solid understanding of the concepts.",
			Strengths:    []string{"Good code organization", "Meets requirements", "Working implementation"},
			Improvements: []string{"Add more comments", "Consider edge cases"},
		}
	case score >= passingScore:
		return model.Feedback{
			Summary:      "Good work! You passed and demonstrated competency.",
			Strengths:    []string{"Core functionality works", "Basic requirements met"},
			Improvements: []string{"Improve code structure", "Add error handling", "More testing needed"},
		}
	default:
		return model.Feedback{
			Summary:      "Keep trying! Review the concepts and resubmit.",
			Strengths:    []string{"Shows effort", "Basic structure present"},
			Improvements: []string{"Complete all requirements", "Fix functionality issues", "Review core concepts"},
		}
	}
}

func mustJSON(items []string) datatypes.JSON {
	b, _ := json.Marshal(items)
	return datatypes.JSON(b)
}
