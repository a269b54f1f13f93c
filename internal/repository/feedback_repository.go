package repository

import (
	"context"
	"coursehub_backend/internal/model"

	"gorm.io/gorm"
)

type CommentRepository struct {
	DB *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{DB: db}
}

func (r *CommentRepository) Create(ctx context.Context, comment *model.Comment) error {
	return r.DB.WithContext(ctx).Create(comment).Error
}

func (r *CommentRepository) ListByMaterial(ctx context.Context, materialID uint) ([]model.Comment, error) {
	var comments []model.Comment
	err := r.DB.WithContext(ctx).Where("material_id = ?", materialID).Order("comment_id").Find(&comments).Error
	return comments, err
}

type RatingRepository struct {
	DB *gorm.DB
}

func NewRatingRepository(db *gorm.DB) *RatingRepository {
	return &RatingRepository{DB: db}
}

func (r *RatingRepository) Create(ctx context.Context, rating *model.Rating) error {
	return r.DB.WithContext(ctx).Create(rating).Error
}

func (r *RatingRepository) Summary(ctx context.Context, materialID uint) (*model.RatingSummary, error) {
	var row struct {
		Average float64
		Count   int64
	}
	err := r.DB.WithContext(ctx).Model(&model.Rating{}).
		Select("COALESCE(AVG(rating_value), 0) AS average, COUNT(*) AS count").
		Where("material_id = ?", materialID).
		Scan(&row).Error
	if err != nil {
		return nil, err
	}
	return &model.RatingSummary{MaterialID: materialID, Average: row.Average, Count: row.Count}, nil
}

type FavoriteRepository struct {
	DB *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) *FavoriteRepository {
	return &FavoriteRepository{DB: db}
}

func (r *FavoriteRepository) Create(ctx context.Context, favorite *model.Favorite) error {
	return r.DB.WithContext(ctx).Create(favorite).Error
}
