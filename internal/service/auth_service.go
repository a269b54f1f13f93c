package service

import (
	"context"
	"coursehub_backend/internal/config"
	"coursehub_backend/internal/model"
	"coursehub_backend/internal/repository"
	"coursehub_backend/internal/util"
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	passwordCost = 10
	// bcrypt 只接受 72 字节以内的密码
	maxPasswordBytes = 72
)

type AuthService struct {
	UserRepo *repository.UserRepository
	Cfg      *config.Config
}

func NewAuthService(userRepo *repository.UserRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		UserRepo: userRepo,
		Cfg:      cfg,
	}
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

// LoginResult 登录返回的用户资料，不含密码
type LoginResult struct {
	Username      string         `json:"username"`
	Role          model.UserRole `json:"role"`
	BehaviorScore int            `json:"behavior_score"`
	Email         string         `json:"email"`
	UserID        uint           `json:"user_id"`
	Token         string         `json:"token"`
}

// Register 创建用户。注册管理员需要调用方是管理员，系统里还没有管理员时例外。
// 邮箱重复由数据库唯一约束拒绝。
func (s *AuthService) Register(ctx context.Context, in RegisterInput, caller *util.Claims) (*model.User, error) {
	if in.Password == "" {
		return nil, util.ErrPasswordRequired
	}

	role := model.RoleUser
	if in.Role != "" {
		role = model.UserRole(in.Role)
	}
	if !role.Valid() {
		return nil, util.ErrInvalidRole
	}

	if len(in.Password) > maxPasswordBytes {
		return nil, util.ErrPasswordTooLong
	}

	if role == model.RoleAdmin {
		if err := s.checkAdminRegistration(ctx, caller); err != nil {
			return nil, err
		}
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(in.Password), passwordCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return nil, util.ErrPasswordTooLong
		}
		return nil, err
	}

	user := &model.User{
		Username: in.Name,
		Email:    in.Email,
		Password: string(hashedPassword),
		Role:     role,
	}
	if err := s.UserRepo.Create(ctx, user); err != nil {
		return nil, util.Store(err)
	}
	return user, nil
}

// checkAdminRegistration 调用方在数据库中是管理员，或系统里还没有管理员
func (s *AuthService) checkAdminRegistration(ctx context.Context, caller *util.Claims) error {
	if caller != nil {
		user, err := s.UserRepo.FindByID(ctx, caller.UserID)
		switch {
		case err == nil && user.Role == model.RoleAdmin:
			return nil
		case err != nil && !errors.Is(err, gorm.ErrRecordNotFound):
			return util.Store(err)
		}
	}

	admins, err := s.UserRepo.CountByRole(ctx, model.RoleAdmin)
	if err != nil {
		return util.Store(err)
	}
	if admins > 0 {
		return util.ErrAdminRequired
	}
	return nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	user, err := s.UserRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, util.Store(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, util.ErrInvalidCredentials
	}

	token, err := util.GenerateJWT(user, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		Username:      user.Username,
		Role:          user.Role,
		BehaviorScore: user.BehaviorScore,
		Email:         user.Email,
		UserID:        user.ID,
		Token:         token,
	}, nil
}
