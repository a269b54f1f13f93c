package app

import (
	"coursehub_backend/docs"
	"coursehub_backend/internal/config"
	"coursehub_backend/internal/middleware"
	"coursehub_backend/internal/model"
	"coursehub_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// 路由挂在根路径下，路径名（含 dipartment 的拼写）与现有前端保持一致
func registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())
	router.GET("/health", c.health.HealthCheck)

	// 1. 账号
	router.POST("/register", middleware.TryAuthMiddleware(cfg), c.auth.Register)
	router.POST("/login", c.auth.Login)

	// 2. 院系与课程
	router.POST("/dipartment", c.catalog.CreateDepartment)
	router.GET("/dipartments", c.catalog.ListDepartments)
	router.POST("/courses", c.catalog.CreateCourse)
	router.GET("/courses", c.catalog.ListCourses)

	// 3. 资料
	router.POST("/upload", c.material.Upload)
	router.GET("/materials", c.material.ListMaterials)
	router.GET("/materials/:id/comments", c.material.Comments)
	router.GET("/materials/:id/ratings", c.material.Ratings)

	// 4. 反馈与行为
	router.POST("/comments", c.feedback.AddComment)
	router.POST("/ratings", c.feedback.AddRating)
	router.POST("/favorites", c.feedback.AddFavorite)
	router.POST("/logs", c.user.LogActivity)

	// 5. 用户
	router.GET("/users", c.user.ListUsers)
	router.GET("/users/:id/favorites", c.user.Favorites)
	router.GET("/users/:id/logs", c.user.Activity)

	// 6. 管理员
	admin := router.Group("/")
	admin.Use(middleware.AuthMiddleware(cfg), middleware.RoleMiddleware(repos.user, model.RoleAdmin))
	{
		admin.PATCH("/addadmin", c.user.SetRole)
	}
}
