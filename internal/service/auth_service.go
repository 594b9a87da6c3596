package service

import (
	"errors"
	"strings"

	"skill_roadmap_backend/internal/config"
	"skill_roadmap_backend/internal/model"
	"skill_roadmap_backend/internal/repository"
	"skill_roadmap_backend/internal/util"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService 注册与登录
type AuthService struct {
	UserRepo *repository.UserRepository
	cfg      *config.Config
}

func NewAuthService(userRepo *repository.UserRepository, cfg *config.Config) *AuthService {
	return &AuthService{UserRepo: userRepo, cfg: cfg}
}

// Register 邮箱统一转小写存储，密码只存 bcrypt 散列
func (s *AuthService) Register(name, email, password string) (*model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	if _, err := s.UserRepo.FindByEmail(email); err == nil {
		return nil, util.ErrEmailRegistered
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Name:     name,
		Email:    email,
		Password: string(hashed),
	}
	if err := s.UserRepo.Create(user); err != nil {
		return nil, err
	}

	return user, nil
}

// Login 凭据错误不区分"用户不存在"和"密码不对"
func (s *AuthService) Login(email, password string) (*model.User, string, error) {
	user, err := s.UserRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", util.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", util.ErrInvalidCredentials
	}

	token, err := util.GenerateJWT(user, s.cfg.JWT.Secret, s.cfg.JWT.ExpireTime)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}
