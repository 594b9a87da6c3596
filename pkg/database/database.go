package database

import (
	"encoding/json"
	"fmt"
	"log"

	"skill_roadmap_backend/internal/config"
	"skill_roadmap_backend/internal/model"

	"gorm.io/datatypes"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	if err := Migrate(db); err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	if err := SeedRoadmaps(db); err != nil {
		return nil, err
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.UserSkill{},
		&model.ActiveRoadmap{},
		&model.SkillProgress{},
		&model.SubSkillProgress{},
		&model.MicroSkillProgress{},
		&model.Roadmap{},
		&model.RoadmapStep{},
		&model.ProjectSubmission{},
	)
}

func jsonList(items ...string) datatypes.JSON {
	b, _ := json.Marshal(items)
	return datatypes.JSON(b)
}

// SeedRoadmaps 路线图目录为空时一次性播种，之后不再重播
func SeedRoadmaps(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.Roadmap{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	seed := []model.Roadmap{
		{
			Role:        "Frontend Developer",
			Description: "Master modern web development with React and create stunning user interfaces",
			Steps: []model.RoadmapStep{
				{
					Step:        1,
					Title:       "Master HTML, CSS & JavaScript Fundamentals",
					Description: "Build a strong foundation in core web technologies. Learn semantic HTML, modern CSS including Flexbox and Grid, and ES6+ JavaScript features.",
					Resources: jsonList(
						"https://developer.mozilla.org/en-US/docs/Learn",
						"https://javascript.info/",
						"https://css-tricks.com/guides/",
					),
				},
				{
					Step:        2,
					Title:       "Learn React & Modern Frontend Frameworks",
					Description: "Dive into React fundamentals, hooks, state management, and component architecture. Understand virtual DOM and build interactive applications.",
					Resources: jsonList(
						"https://react.dev/learn",
						"https://www.freecodecamp.org/learn/front-end-development-libraries/",
						"https://www.youtube.com/watch?v=bMknfKXIFA8",
					),
				},
				{
					Step:        3,
					Title:       "Build Real-World Projects & Portfolio",
					Description: "Apply your skills by building full-featured applications. Create a portfolio showcasing responsive designs, API integration, and modern tooling.",
					Resources: jsonList(
						"https://www.frontendmentor.io/",
						"https://github.com/florinpop17/app-ideas",
						"https://www.freecodecamp.org/news/portfolio-app-using-react-618814e35843/",
					),
				},
			},
		},
		{
			Role:        "DevOps Engineer",
			Description: "Learn infrastructure automation, containerization, and cloud deployment practices",
			Steps: []model.RoadmapStep{
				{
					Step:        1,
					Title:       "Master Linux & Command Line Essentials",
					Description: "Gain proficiency in Linux administration, shell scripting, networking fundamentals, and system monitoring tools.",
					Resources: jsonList(
						"https://www.linux.org/forums/#linux-tutorials.122",
						"https://www.freecodecamp.org/news/the-linux-commands-handbook/",
						"https://linuxjourney.com/",
					),
				},
				{
					Step:        2,
					Title:       "Learn Docker & Kubernetes",
					Description: "Master containerization with Docker, orchestration with Kubernetes, and microservices architecture patterns.",
					Resources: jsonList(
						"https://docs.docker.com/get-started/",
						"https://kubernetes.io/docs/tutorials/",
						"https://www.freecodecamp.org/news/the-kubernetes-handbook/",
					),
				},
				{
					Step:        3,
					Title:       "Implement CI/CD Pipelines & Cloud Platforms",
					Description: "Set up automated deployment pipelines using Jenkins, GitHub Actions, or GitLab CI. Learn AWS, Azure, or GCP cloud services.",
					Resources: jsonList(
						"https://www.jenkins.io/doc/tutorials/",
						"https://docs.github.com/en/actions/quickstart",
						"https://aws.amazon.com/getting-started/",
					),
				},
			},
		},
		{
			Role:        "Full Stack Developer",
			Description: "Become proficient in both frontend and backend development with modern tech stacks",
			Steps: []model.RoadmapStep{
				{
					Step:        1,
					Title:       "Frontend Development with React",
					Description: "Master React, JavaScript, state management, and modern CSS frameworks like Tailwind CSS.",
					Resources: jsonList(
						"https://react.dev/learn",
						"https://developer.mozilla.org/en-US/docs/Web/JavaScript",
						"https://tailwindcss.com/docs",
					),
				},
				{
					Step:        2,
					Title:       "Backend Development with Node.js",
					Description: "Learn Node.js, Express, RESTful APIs, authentication, and database design with MongoDB or PostgreSQL.",
					Resources: jsonList(
						"https://nodejs.org/en/docs/",
						"https://expressjs.com/en/starter/installing.html",
						"https://www.mongodb.com/docs/",
					),
				},
				{
					Step:        3,
					Title:       "Deploy Full Stack Applications",
					Description: "Learn deployment strategies, cloud hosting, database management, and monitoring for production applications.",
					Resources: jsonList(
						"https://vercel.com/docs",
						"https://www.digitalocean.com/community/tutorials",
						"https://www.heroku.com/",
					),
				},
			},
		},
	}

	for i := range seed {
		if err := db.Create(&seed[i]).Error; err != nil {
			return err
		}
	}

	return nil
}
