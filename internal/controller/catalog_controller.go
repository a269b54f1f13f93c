package controller

import (
	"coursehub_backend/internal/model"
	"coursehub_backend/internal/service"
	"coursehub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CatalogController struct {
	CatalogService *service.CatalogService
}

func NewCatalogController(catalogService *service.CatalogService) *CatalogController {
	return &CatalogController{CatalogService: catalogService}
}

// 字段名沿用前端已有的拼写
type CreateDepartmentRequest struct {
	Name string `json:"dipartment_name"`
}

// CreateDepartment godoc
// @Summary 新增院系
// @Tags 目录
// @Accept json
// @Produce plain
// @Param body body CreateDepartmentRequest true "院系名"
// @Success 200 {string} string "Department added successfully"
// @Failure 400 {object} util.ErrorResponse
// @Failure 500 {object} util.ErrorResponse "重复的院系名"
// @Router /dipartment [post]
func (c *CatalogController) CreateDepartment(ctx *gin.Context) {
	var req CreateDepartmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "Invalid request body")
		return
	}

	if _, err := c.CatalogService.CreateDepartment(ctx.Request.Context(), req.Name); err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Text(ctx, util.MsgDepartmentAdded)
}

// ListDepartments godoc
// @Summary 院系列表
// @Tags 目录
// @Produce json
// @Success 200 {array} model.Department
// @Router /dipartments [get]
func (c *CatalogController) ListDepartments(ctx *gin.Context) {
	departments, err := c.CatalogService.ListDepartments(ctx.Request.Context())
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.JSON(ctx, departments)
}

type CreateCourseRequest struct {
	Name        string `json:"course_name"`
	Category    string `json:"course_category"`
	Description string `json:"description"`
}

// CreateCourse godoc
// @Summary 新增课程
// @Tags 目录
// @Accept json
// @Produce plain
// @Param body body CreateCourseRequest true "课程"
// @Success 200 {string} string "Course created successfully"
// @Failure 400 {object} util.ErrorResponse
// @Router /courses [post]
func (c *CatalogController) CreateCourse(ctx *gin.Context) {
	var req CreateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "Invalid request body")
		return
	}

	course := &model.Course{
		Name:        req.Name,
		Category:    req.Category,
		Description: req.Description,
	}
	if err := c.CatalogService.CreateCourse(ctx.Request.Context(), course); err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Text(ctx, util.MsgCourseCreated)
}

// ListCourses godoc
// @Summary 课程列表
// @Tags 目录
// @Produce json
// @Success 200 {array} model.Course
// @Router /courses [get]
func (c *CatalogController) ListCourses(ctx *gin.Context) {
	courses, err := c.CatalogService.ListCourses(ctx.Request.Context())
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.JSON(ctx, courses)
}
