package controller

import (
	"coursehub_backend/internal/config"
	"coursehub_backend/internal/service"
	"coursehub_backend/internal/util"
	"coursehub_backend/pkg/logger"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type MaterialController struct {
	MaterialService *service.MaterialService
	FeedbackService *service.FeedbackService
	Config          *config.Config
}

func NewMaterialController(materialService *service.MaterialService, feedbackService *service.FeedbackService, cfg *config.Config) *MaterialController {
	return &MaterialController{
		MaterialService: materialService,
		FeedbackService: feedbackService,
		Config:          cfg,
	}
}

// Upload godoc
// @Summary 上传课程资料
// @Description 文件上传到托管服务并公开，随后记录到资料表。任何一步失败都会回滚已完成的步骤
// @Tags 资料
// @Accept multipart/form-data
// @Produce plain
// @Param file formData file true "资料文件"
// @Param selectedDipartment formData string true "院系名"
// @Param user formData string true "上传者用户名"
// @Success 200 {string} string "File uploaded and saved."
// @Failure 400 {object} util.ErrorResponse "没有文件或文件过大"
// @Failure 404 {object} util.ErrorResponse "院系或用户不存在"
// @Failure 500 {object} util.ErrorResponse "上传失败"
// @Router /upload [post]
func (c *MaterialController) Upload(ctx *gin.Context) {
	maxSize := c.Config.Upload.MaxSizeMB << 20
	// 请求体上限多留 1 MB 给其他表单字段和分隔符
	maxBody := maxSize + 1<<20
	if maxSize > 0 {
		ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, maxBody)
	}

	file, err := ctx.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) || (maxSize > 0 && ctx.Request.ContentLength > maxBody) {
			c.rejectTooLarge(ctx)
			return
		}
		util.HandleError(ctx, util.ErrNoFile)
		return
	}

	if maxSize > 0 && file.Size > maxSize {
		c.rejectTooLarge(ctx)
		return
	}

	src, err := file.Open()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	defer src.Close()

	// 客户端没有给出具体类型时按内容判断
	contentType := file.Header.Get("Content-Type")
	if contentType == "" || contentType == util.MimeOctetStream {
		if detected, err := util.DetectMimeType(src); err == nil {
			contentType = detected
		}
		if _, err := src.Seek(0, io.SeekStart); err != nil {
			util.LogInternalError(ctx, err)
			return
		}
	}

	_, err = c.MaterialService.Upload(ctx.Request.Context(), service.UploadInput{
		Department:  ctx.PostForm("selectedDipartment"),
		Username:    ctx.PostForm("user"),
		Filename:    file.Filename,
		ContentType: contentType,
		Content:     src,
	})
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	logger.Log.Debug("upload request done", zap.String("file", file.Filename), zap.Int64("size", file.Size))
	util.Text(ctx, util.MsgFileUploaded)
}

func (c *MaterialController) rejectTooLarge(ctx *gin.Context) {
	util.BadRequest(ctx, fmt.Sprintf("File exceeds the %d MB limit.", c.Config.Upload.MaxSizeMB))
}

// ListMaterials godoc
// @Summary 资料列表
// @Tags 资料
// @Produce json
// @Success 200 {array} model.Material
// @Router /materials [get]
func (c *MaterialController) ListMaterials(ctx *gin.Context) {
	materials, err := c.MaterialService.List(ctx.Request.Context())
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.JSON(ctx, materials)
}

// Comments godoc
// @Summary 资料的评论
// @Tags 资料
// @Produce json
// @Param id path int true "资料ID"
// @Success 200 {array} model.Comment
// @Router /materials/{id}/comments [get]
func (c *MaterialController) Comments(ctx *gin.Context) {
	materialID, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	comments, err := c.FeedbackService.Comments(ctx.Request.Context(), materialID)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.JSON(ctx, comments)
}

// Ratings godoc
// @Summary 资料评分汇总
// @Tags 资料
// @Produce json
// @Param id path int true "资料ID"
// @Success 200 {object} model.RatingSummary
// @Router /materials/{id}/ratings [get]
func (c *MaterialController) Ratings(ctx *gin.Context) {
	materialID, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	summary, err := c.FeedbackService.RatingSummary(ctx.Request.Context(), materialID)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.JSON(ctx, summary)
}
