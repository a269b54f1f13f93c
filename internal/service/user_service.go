package service

import (
	"context"
	"coursehub_backend/internal/model"
	"coursehub_backend/internal/repository"
	"coursehub_backend/internal/util"
	"errors"

	"gorm.io/gorm"
)

type UserService struct {
	UserRepo     *repository.UserRepository
	MaterialRepo *repository.MaterialRepository
	LogRepo      *repository.ActivityLogRepository
}

func NewUserService(userRepo *repository.UserRepository, materialRepo *repository.MaterialRepository, logRepo *repository.ActivityLogRepository) *UserService {
	return &UserService{
		UserRepo:     userRepo,
		MaterialRepo: materialRepo,
		LogRepo:      logRepo,
	}
}

// SetRole 把 email 对应用户的角色设为 position，重复设置同一角色不报错
func (s *UserService) SetRole(ctx context.Context, email, position string) error {
	role := model.UserRole(position)
	if !role.Valid() {
		return util.ErrInvalidRole
	}

	user, err := s.UserRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrUserNotFound
		}
		return util.Store(err)
	}

	if err := s.UserRepo.UpdateRole(ctx, user.ID, role); err != nil {
		return util.Store(err)
	}
	return nil
}

func (s *UserService) List(ctx context.Context) ([]model.User, error) {
	users, err := s.UserRepo.List(ctx)
	if err != nil {
		return nil, util.Store(err)
	}
	return users, nil
}

func (s *UserService) Favorites(ctx context.Context, userID uint) ([]model.Material, error) {
	materials, err := s.MaterialRepo.ListFavoritedBy(ctx, userID)
	if err != nil {
		return nil, util.Store(err)
	}
	return materials, nil
}

func (s *UserService) LogActivity(ctx context.Context, userID uint, action string) error {
	if err := s.LogRepo.Create(ctx, &model.ActivityLog{UserID: userID, Action: action}); err != nil {
		return util.Store(err)
	}
	return nil
}

func (s *UserService) Activity(ctx context.Context, userID uint) ([]model.ActivityLog, error) {
	logs, err := s.LogRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, util.Store(err)
	}
	return logs, nil
}
