package service

import (
	"context"
	"coursehub_backend/internal/model"
	"coursehub_backend/internal/util"
	"coursehub_backend/pkg/logger"
	"coursehub_backend/pkg/monitoring"
	"errors"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type DepartmentFinder interface {
	FindByName(ctx context.Context, name string) (*model.Department, error)
}

type UserFinder interface {
	FindByUsername(ctx context.Context, username string) (*model.User, error)
}

type MaterialStore interface {
	Create(ctx context.Context, material *model.Material) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context) ([]model.Material, error)
}

// FileHost 上传流程需要的文件托管能力，StorageService 实现了它
type FileHost interface {
	Upload(ctx context.Context, name string, localPath string, contentType string) (string, error)
	Share(ctx context.Context, objectID string) error
	PublicURL(objectID string) string
	Delete(ctx context.Context, objectID string) error
}

type MaterialService struct {
	Departments DepartmentFinder
	Users       UserFinder
	Materials   MaterialStore
	Files       FileHost
	TempDir     string
}

func NewMaterialService(departments DepartmentFinder, users UserFinder, materials MaterialStore, files FileHost, tempDir string) *MaterialService {
	return &MaterialService{
		Departments: departments,
		Users:       users,
		Materials:   materials,
		Files:       files,
		TempDir:     tempDir,
	}
}

// UploadInput 一次资料上传请求
type UploadInput struct {
	Department  string
	Username    string
	Filename    string
	ContentType string
	Content     io.Reader
}

// Upload 查部门、查用户、暂存、上传、公开、入库。远端副作用发生前先完成所有查询；
// 之后任一步失败都会回滚已完成的步骤，不留下孤立的远端文件。
func (s *MaterialService) Upload(ctx context.Context, in UploadInput) (material *model.Material, err error) {
	defer func() {
		result := "success"
		if err != nil {
			result = string(util.KindOf(err))
		}
		monitoring.UploadCounter.WithLabelValues(result).Inc()
	}()

	if in.Content == nil || in.Filename == "" {
		return nil, util.ErrNoFile
	}

	department, err := s.Departments.FindByName(ctx, in.Department)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrDepartmentNotFound
		}
		return nil, util.Store(err)
	}

	user, err := s.Users.FindByUsername(ctx, in.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.NotFound("User not found.")
		}
		return nil, util.Store(err)
	}

	contentType := in.ContentType
	if contentType == "" {
		contentType = util.MimeOctetStream
	}

	saga := NewSaga("material_upload")
	var (
		tempPath string
		objectID string
	)
	material = &model.Material{
		Title:        in.Filename,
		DepartmentID: department.ID,
		UploadedBy:   user.ID,
	}

	defer func() {
		if tempPath == "" {
			return
		}
		if rmErr := os.Remove(tempPath); rmErr != nil && !os.IsNotExist(rmErr) {
			logger.Log.Warn("remove staged upload", zap.String("path", tempPath), zap.Error(rmErr))
		}
	}()

	steps := []struct {
		name   string
		action func(context.Context) error
		undo   func(context.Context) error
	}{
		{
			name: "stage",
			action: func(context.Context) error {
				p, err := util.StageFile(s.TempDir, in.Content, filepath.Ext(in.Filename))
				tempPath = p
				return err
			},
		},
		{
			name: "upload",
			action: func(ctx context.Context) error {
				id, err := s.Files.Upload(ctx, in.Filename, tempPath, contentType)
				if err != nil {
					return util.Remote(err)
				}
				objectID = id
				return nil
			},
			undo: func(ctx context.Context) error {
				return s.Files.Delete(ctx, objectID)
			},
		},
		{
			name: "share",
			action: func(ctx context.Context) error {
				if err := s.Files.Share(ctx, objectID); err != nil {
					return util.Remote(err)
				}
				material.FileID = objectID
				material.FilePath = s.Files.PublicURL(objectID)
				return nil
			},
		},
		{
			name: "insert",
			action: func(ctx context.Context) error {
				if err := s.Materials.Create(ctx, material); err != nil {
					return util.Store(err)
				}
				return nil
			},
			undo: func(ctx context.Context) error {
				return s.Materials.Delete(ctx, material.ID)
			},
		},
	}

	for _, step := range steps {
		if err := saga.Run(ctx, step.name, step.action, step.undo); err != nil {
			if cErr := saga.Compensate(ctx); cErr != nil {
				logger.Log.Error("material upload rollback incomplete",
					zap.String("file", in.Filename),
					zap.String("object_id", objectID),
					zap.Error(cErr),
				)
			}
			return nil, util.UploadFailed(err)
		}
	}

	logger.Log.Info("material uploaded",
		zap.Uint("material_id", material.ID),
		zap.String("object_id", objectID),
		zap.Uint("uploaded_by", user.ID),
	)
	return material, nil
}

func (s *MaterialService) List(ctx context.Context) ([]model.Material, error) {
	materials, err := s.Materials.List(ctx)
	if err != nil {
		return nil, util.Store(err)
	}
	return materials, nil
}
