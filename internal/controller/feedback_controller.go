package controller

import (
	"coursehub_backend/internal/model"
	"coursehub_backend/internal/service"
	"coursehub_backend/internal/util"
	"math"

	"github.com/gin-gonic/gin"
)

type FeedbackController struct {
	FeedbackService *service.FeedbackService
}

func NewFeedbackController(feedbackService *service.FeedbackService) *FeedbackController {
	return &FeedbackController{FeedbackService: feedbackService}
}

type CommentRequest struct {
	MaterialID  uint   `json:"material_id" binding:"required"`
	UserID      uint   `json:"user_id" binding:"required"`
	CommentText string `json:"comment_text" binding:"required"`
}

// AddComment godoc
// @Summary 评论资料
// @Tags 反馈
// @Accept json
// @Produce plain
// @Param body body CommentRequest true "评论"
// @Success 200 {string} string "Comment added successfully"
// @Failure 400 {object} util.ErrorResponse
// @Router /comments [post]
func (c *FeedbackController) AddComment(ctx *gin.Context) {
	var req CommentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "material_id, user_id and comment_text are required")
		return
	}

	err := c.FeedbackService.AddComment(ctx.Request.Context(), &model.Comment{
		MaterialID:  req.MaterialID,
		UserID:      req.UserID,
		CommentText: req.CommentText,
	})
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Text(ctx, util.MsgCommentAdded)
}

// rating_value 不加 required，0 也要走范围校验返回统一的提示；
// 按浮点数接收，小数单独提示
type RatingRequest struct {
	MaterialID  uint    `json:"material_id" binding:"required"`
	UserID      uint    `json:"user_id" binding:"required"`
	RatingValue float64 `json:"rating_value"`
}

// AddRating godoc
// @Summary 给资料评分
// @Tags 反馈
// @Accept json
// @Produce plain
// @Param body body RatingRequest true "评分，1 到 5"
// @Success 200 {string} string "Rating added successfully"
// @Failure 400 {object} util.ErrorResponse "评分超出范围"
// @Router /ratings [post]
func (c *FeedbackController) AddRating(ctx *gin.Context) {
	var req RatingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "material_id, user_id and a numeric rating_value are required")
		return
	}
	if req.RatingValue != math.Trunc(req.RatingValue) {
		util.BadRequest(ctx, "Rating must be a whole number between 1 and 5")
		return
	}

	err := c.FeedbackService.AddRating(ctx.Request.Context(), &model.Rating{
		MaterialID:  req.MaterialID,
		UserID:      req.UserID,
		RatingValue: int(req.RatingValue),
	})
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Text(ctx, util.MsgRatingAdded)
}

type FavoriteRequest struct {
	UserID     uint `json:"user_id" binding:"required"`
	MaterialID uint `json:"material_id" binding:"required"`
}

// AddFavorite godoc
// @Summary 收藏资料
// @Tags 反馈
// @Accept json
// @Produce plain
// @Param body body FavoriteRequest true "收藏"
// @Success 200 {string} string "Material added to favorites"
// @Router /favorites [post]
func (c *FeedbackController) AddFavorite(ctx *gin.Context) {
	var req FavoriteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "user_id and material_id are required")
		return
	}

	err := c.FeedbackService.AddFavorite(ctx.Request.Context(), &model.Favorite{
		UserID:     req.UserID,
		MaterialID: req.MaterialID,
	})
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Text(ctx, util.MsgFavoriteAdded)
}
