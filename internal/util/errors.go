package util

import "errors"

var (
	ErrUserNotFound          = errors.New("user not found")
	ErrEmailRegistered       = errors.New("email already registered")
	ErrInvalidCredentials    = errors.New("invalid email or password")
	ErrSkillNotFound         = errors.New("skill not found")
	ErrSkillExists           = errors.New("skill already exists")
	ErrRoadmapNotFound       = errors.New("roadmap not found")
	ErrNoActiveRoadmap       = errors.New("no active roadmap")
	ErrInvalidSubmissionType = errors.New("invalid submission type")
)
