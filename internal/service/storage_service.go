package service

import (
	"context"
	"coursehub_backend/internal/config"
	"coursehub_backend/internal/util"
	"coursehub_backend/pkg/logger"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"
	"golang.org/x/oauth2/google"
	"golang.org/x/oauth2/jwt"
	drive "google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// StorageProvider 文件托管服务。Upload 返回托管方的对象标识，后续操作都用这个标识。
type StorageProvider interface {
	Upload(ctx context.Context, name string, localPath string, contentType string) (string, error)
	// Share 授予“任何持有链接的人可读”
	Share(ctx context.Context, objectID string) error
	PublicURL(objectID string) string
	Delete(ctx context.Context, objectID string) error
}

// objectKey 为按路径寻址的存储生成不冲突的对象名
func objectKey(name string) string {
	base := filepath.Base(name)
	base = strings.ReplaceAll(base, " ", "-")
	return "materials/" + uuid.New().String() + "/" + base
}

// LocalStorageProvider 本地存储实现
type LocalStorageProvider struct {
	Config *config.StorageConfig
}

func (p *LocalStorageProvider) Upload(ctx context.Context, name string, localPath string, contentType string) (string, error) {
	key := objectKey(name)
	dst := filepath.Join(p.Config.LocalPath, key)
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return "", err
	}

	srcFile, err := os.Open(localPath)
	if err != nil {
		return "", err
	}
	defer srcFile.Close()

	dstFile, err := os.Create(dst)
	if err != nil {
		return "", err
	}
	defer dstFile.Close()

	if _, err := io.Copy(dstFile, srcFile); err != nil {
		return "", err
	}
	return key, nil
}

// Share 本地文件通过 /uploads 静态路由公开
func (p *LocalStorageProvider) Share(ctx context.Context, objectID string) error {
	return nil
}

func (p *LocalStorageProvider) PublicURL(objectID string) string {
	return "/uploads/" + objectID
}

func (p *LocalStorageProvider) Delete(ctx context.Context, objectID string) error {
	return os.Remove(filepath.Join(p.Config.LocalPath, objectID))
}

// DriveStorageProvider Google Drive 实现，使用服务账号
type DriveStorageProvider struct {
	Config  *config.StorageConfig
	Service *drive.Service
}

func NewDriveStorageProvider(ctx context.Context, cfg *config.StorageConfig) (*DriveStorageProvider, error) {
	if cfg.GoogleClientEmail == "" || cfg.GooglePrivateKey == "" {
		return nil, errors.New("google service account credentials are not configured")
	}

	jwtCfg := &jwt.Config{
		Email:      cfg.GoogleClientEmail,
		PrivateKey: []byte(cfg.GooglePrivateKey),
		Scopes:     []string{drive.DriveFileScope},
		TokenURL:   google.JWTTokenURL,
	}

	srv, err := drive.NewService(ctx, option.WithTokenSource(jwtCfg.TokenSource(ctx)))
	if err != nil {
		return nil, err
	}
	return &DriveStorageProvider{Config: cfg, Service: srv}, nil
}

func (p *DriveStorageProvider) Upload(ctx context.Context, name string, localPath string, contentType string) (string, error) {
	f, err := os.Open(localPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	meta := &drive.File{Name: name}
	if p.Config.DriveFolderID != "" {
		meta.Parents = []string{p.Config.DriveFolderID}
	}

	created, err := p.Service.Files.Create(meta).
		Media(f, googleapi.ContentType(contentType)).
		Fields("id").
		Context(ctx).
		Do()
	if err != nil {
		return "", err
	}
	return created.Id, nil
}

func (p *DriveStorageProvider) Share(ctx context.Context, objectID string) error {
	_, err := p.Service.Permissions.Create(objectID, &drive.Permission{
		Role: "reader",
		Type: "anyone",
	}).Context(ctx).Do()
	return err
}

func (p *DriveStorageProvider) PublicURL(objectID string) string {
	return "https://drive.google.com/uc?export=download&id=" + objectID
}

func (p *DriveStorageProvider) Delete(ctx context.Context, objectID string) error {
	return p.Service.Files.Delete(objectID).Context(ctx).Do()
}

// MinioStorageProvider MinIO存储实现
type MinioStorageProvider struct {
	Config *config.StorageConfig
	Client *minio.Client
}

func NewMinioStorageProvider(cfg *config.StorageConfig) (*MinioStorageProvider, error) {
	client, err := minio.New(cfg.MinioEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinioAccessID, cfg.MinioSecret, ""),
		Secure: cfg.MinioUseSSL,
	})
	if err != nil {
		return nil, err
	}
	return &MinioStorageProvider{Config: cfg, Client: client}, nil
}

func (p *MinioStorageProvider) Upload(ctx context.Context, name string, localPath string, contentType string) (string, error) {
	key := objectKey(name)
	_, err := p.Client.FPutObject(ctx, p.Config.MinioBucket, key, localPath, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", err
	}
	return key, nil
}

// Share MinIO 的读权限由桶策略控制，这里只确认对象存在
func (p *MinioStorageProvider) Share(ctx context.Context, objectID string) error {
	_, err := p.Client.StatObject(ctx, p.Config.MinioBucket, objectID, minio.StatObjectOptions{})
	return err
}

func (p *MinioStorageProvider) PublicURL(objectID string) string {
	return strings.TrimRight(p.Config.MinioPublic, "/") + "/" + p.Config.MinioBucket + "/" + objectID
}

func (p *MinioStorageProvider) Delete(ctx context.Context, objectID string) error {
	return p.Client.RemoveObject(ctx, p.Config.MinioBucket, objectID, minio.RemoveObjectOptions{})
}

// OSSStorageProvider 阿里云OSS存储实现
type OSSStorageProvider struct {
	Config *config.StorageConfig
	Client *oss.Client
}

func NewOSSStorageProvider(cfg *config.StorageConfig) (*OSSStorageProvider, error) {
	client, err := oss.New(cfg.OSSEndpoint, cfg.OSSAccessKey, cfg.OSSSecretKey)
	if err != nil {
		return nil, err
	}
	return &OSSStorageProvider{Config: cfg, Client: client}, nil
}

func (p *OSSStorageProvider) Upload(ctx context.Context, name string, localPath string, contentType string) (string, error) {
	bucket, err := p.Client.Bucket(p.Config.OSSBucket)
	if err != nil {
		return "", err
	}

	key := objectKey(name)
	if err := bucket.PutObjectFromFile(key, localPath, oss.ContentType(contentType), oss.WithContext(ctx)); err != nil {
		return "", err
	}
	return key, nil
}

func (p *OSSStorageProvider) Share(ctx context.Context, objectID string) error {
	bucket, err := p.Client.Bucket(p.Config.OSSBucket)
	if err != nil {
		return err
	}
	return bucket.SetObjectACL(objectID, oss.ACLPublicRead, oss.WithContext(ctx))
}

func (p *OSSStorageProvider) PublicURL(objectID string) string {
	return fmt.Sprintf("https://%s.%s/%s", p.Config.OSSBucket, p.Config.OSSEndpoint, objectID)
}

func (p *OSSStorageProvider) Delete(ctx context.Context, objectID string) error {
	bucket, err := p.Client.Bucket(p.Config.OSSBucket)
	if err != nil {
		return err
	}
	return bucket.DeleteObject(objectID, oss.WithContext(ctx))
}

// StorageService 存储服务
type StorageService struct {
	Provider StorageProvider
}

// NewStorageService 按配置选择存储实现，初始化失败时退回本地存储
func NewStorageService(ctx context.Context, cfg *config.Config) *StorageService {
	var (
		provider StorageProvider
		err      error
	)
	switch cfg.Storage.Type {
	case util.StorageDrive:
		var p *DriveStorageProvider
		if p, err = NewDriveStorageProvider(ctx, &cfg.Storage); err == nil {
			provider = p
		}
	case util.StorageMinio:
		var p *MinioStorageProvider
		if p, err = NewMinioStorageProvider(&cfg.Storage); err == nil {
			provider = p
		}
	case util.StorageOSS:
		var p *OSSStorageProvider
		if p, err = NewOSSStorageProvider(&cfg.Storage); err == nil {
			provider = p
		}
	}

	if provider == nil {
		if err != nil {
			logger.Log.Warn("storage provider unavailable, falling back to local storage",
				zap.String("type", cfg.Storage.Type), zap.Error(err))
		}
		provider = &LocalStorageProvider{Config: &cfg.Storage}
	}

	return &StorageService{Provider: provider}
}

// LocalRoot 实际使用本地存储时返回文件根目录
func (s *StorageService) LocalRoot() (string, bool) {
	if p, ok := s.Provider.(*LocalStorageProvider); ok {
		return p.Config.LocalPath, true
	}
	return "", false
}

func (s *StorageService) Upload(ctx context.Context, name string, localPath string, contentType string) (string, error) {
	return s.Provider.Upload(ctx, name, localPath, contentType)
}

func (s *StorageService) Share(ctx context.Context, objectID string) error {
	return s.Provider.Share(ctx, objectID)
}

func (s *StorageService) PublicURL(objectID string) string {
	return s.Provider.PublicURL(objectID)
}

func (s *StorageService) Delete(ctx context.Context, objectID string) error {
	return s.Provider.Delete(ctx, objectID)
}
