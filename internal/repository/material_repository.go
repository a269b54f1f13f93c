package repository

import (
	"context"
	"coursehub_backend/internal/model"

	"gorm.io/gorm"
)

type MaterialRepository struct {
	DB *gorm.DB
}

func NewMaterialRepository(db *gorm.DB) *MaterialRepository {
	return &MaterialRepository{DB: db}
}

func (r *MaterialRepository) Create(ctx context.Context, material *model.Material) error {
	return r.DB.WithContext(ctx).Create(material).Error
}

// Delete 仅用于上传失败时回滚刚插入的记录
func (r *MaterialRepository) Delete(ctx context.Context, id uint) error {
	return r.DB.WithContext(ctx).Delete(&model.Material{}, "material_id = ?", id).Error
}

func (r *MaterialRepository) List(ctx context.Context) ([]model.Material, error) {
	var materials []model.Material
	err := r.DB.WithContext(ctx).Find(&materials).Error
	return materials, err
}

// ListFavoritedBy 返回用户收藏的资料，重复收藏会出现多次
func (r *MaterialRepository) ListFavoritedBy(ctx context.Context, userID uint) ([]model.Material, error) {
	var materials []model.Material
	err := r.DB.WithContext(ctx).
		Joins("JOIN favorites ON favorites.material_id = materials.material_id").
		Where("favorites.user_id = ?", userID).
		Order("favorites.favorite_id").
		Find(&materials).Error
	return materials, err
}
