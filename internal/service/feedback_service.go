package service

import (
	"context"
	"coursehub_backend/internal/model"
	"coursehub_backend/internal/repository"
	"coursehub_backend/internal/util"
)

// FeedbackService 评论、评分、收藏。只做最小的格式校验，不检查资料或用户是否存在。
type FeedbackService struct {
	CommentRepo  *repository.CommentRepository
	RatingRepo   *repository.RatingRepository
	FavoriteRepo *repository.FavoriteRepository
}

func NewFeedbackService(commentRepo *repository.CommentRepository, ratingRepo *repository.RatingRepository, favoriteRepo *repository.FavoriteRepository) *FeedbackService {
	return &FeedbackService{
		CommentRepo:  commentRepo,
		RatingRepo:   ratingRepo,
		FavoriteRepo: favoriteRepo,
	}
}

func (s *FeedbackService) AddComment(ctx context.Context, comment *model.Comment) error {
	if err := s.CommentRepo.Create(ctx, comment); err != nil {
		return util.Store(err)
	}
	return nil
}

func (s *FeedbackService) Comments(ctx context.Context, materialID uint) ([]model.Comment, error) {
	comments, err := s.CommentRepo.ListByMaterial(ctx, materialID)
	if err != nil {
		return nil, util.Store(err)
	}
	return comments, nil
}

func (s *FeedbackService) AddRating(ctx context.Context, rating *model.Rating) error {
	if rating.RatingValue < model.MinRating || rating.RatingValue > model.MaxRating {
		return util.ErrRatingOutOfRange
	}
	if err := s.RatingRepo.Create(ctx, rating); err != nil {
		return util.Store(err)
	}
	return nil
}

func (s *FeedbackService) RatingSummary(ctx context.Context, materialID uint) (*model.RatingSummary, error) {
	summary, err := s.RatingRepo.Summary(ctx, materialID)
	if err != nil {
		return nil, util.Store(err)
	}
	return summary, nil
}

func (s *FeedbackService) AddFavorite(ctx context.Context, favorite *model.Favorite) error {
	if err := s.FavoriteRepo.Create(ctx, favorite); err != nil {
		return util.Store(err)
	}
	return nil
}
