package controller

import (
	"coursehub_backend/internal/service"
	"coursehub_backend/internal/util"
	"strconv"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	UserService *service.UserService
}

func NewUserController(userService *service.UserService) *UserController {
	return &UserController{UserService: userService}
}

// parseID 解析路径参数中的正整数 ID
func parseID(ctx *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 64)
	if err != nil || id == 0 {
		util.BadRequest(ctx, "Invalid "+name)
		return 0, false
	}
	return uint(id), true
}

type SetRoleRequest struct {
	Email    string `json:"email" binding:"required"`
	Position string `json:"position" binding:"required"`
}

// SetRole godoc
// @Summary 修改用户角色
// @Description 管理员把指定邮箱的用户设为 user 或 admin，重复设置同一角色返回成功
// @Tags 用户
// @Accept json
// @Produce plain
// @Security ApiKeyAuth
// @Param body body SetRoleRequest true "邮箱与角色"
// @Success 200 {string} string "User role updated successfully"
// @Failure 400 {object} util.ErrorResponse
// @Failure 401 {object} util.ErrorResponse
// @Failure 403 {object} util.ErrorResponse
// @Failure 404 {object} util.ErrorResponse
// @Router /addadmin [patch]
func (c *UserController) SetRole(ctx *gin.Context) {
	var req SetRoleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "Email and position are required")
		return
	}

	if err := c.UserService.SetRole(ctx.Request.Context(), req.Email, req.Position); err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Text(ctx, util.MsgUserRoleUpdated)
}

// ListUsers godoc
// @Summary 用户列表
// @Tags 用户
// @Produce json
// @Success 200 {array} model.User
// @Router /users [get]
func (c *UserController) ListUsers(ctx *gin.Context) {
	users, err := c.UserService.List(ctx.Request.Context())
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.JSON(ctx, users)
}

// Favorites godoc
// @Summary 用户收藏的资料
// @Tags 用户
// @Produce json
// @Param id path int true "用户ID"
// @Success 200 {array} model.Material
// @Failure 400 {object} util.ErrorResponse
// @Router /users/{id}/favorites [get]
func (c *UserController) Favorites(ctx *gin.Context) {
	userID, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	materials, err := c.UserService.Favorites(ctx.Request.Context(), userID)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.JSON(ctx, materials)
}

type LogActivityRequest struct {
	UserID uint   `json:"user_id" binding:"required"`
	Action string `json:"action" binding:"required"`
}

// LogActivity godoc
// @Summary 记录用户行为
// @Tags 用户
// @Accept json
// @Produce plain
// @Param body body LogActivityRequest true "行为"
// @Success 200 {string} string "User activity logged"
// @Failure 400 {object} util.ErrorResponse
// @Router /logs [post]
func (c *UserController) LogActivity(ctx *gin.Context) {
	var req LogActivityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "user_id and action are required")
		return
	}

	if err := c.UserService.LogActivity(ctx.Request.Context(), req.UserID, req.Action); err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Text(ctx, util.MsgActivityLogged)
}

// Activity godoc
// @Summary 用户行为记录
// @Tags 用户
// @Produce json
// @Param id path int true "用户ID"
// @Success 200 {array} model.ActivityLog
// @Router /users/{id}/logs [get]
func (c *UserController) Activity(ctx *gin.Context) {
	userID, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	logs, err := c.UserService.Activity(ctx.Request.Context(), userID)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.JSON(ctx, logs)
}
