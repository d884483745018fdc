package handlers

import (
	"github.com/labstack/echo/v4"
)

// Register 挂载全部路由。adminAuth 保护 /api/admin 下除登录、登出以外的接口
func (a *App) Register(e *echo.Echo, adminAuth echo.MiddlewareFunc) {
	api := e.Group("/api")

	api.GET("/healthz", a.HealthCheck)

	// 公开读取
	api.GET("/news", a.NewsList)
	api.GET("/news/featured", a.NewsFeatured)
	api.GET("/news/:id", a.NewsGet)

	api.GET("/events", a.EventList)
	api.GET("/events/upcoming", a.EventUpcoming)
	api.GET("/events/:id", a.EventGet)

	api.GET("/publications", a.PublicationList)
	api.GET("/publications/:id", a.PublicationGet)

	api.GET("/leadership", a.LeadershipList)
	api.GET("/leadership/:id", a.LeadershipGet)

	api.GET("/gallery", a.GalleryList)
	api.GET("/gallery/:id", a.GalleryGet)

	api.GET("/resources", a.ResourceList)
	api.GET("/resources/:id", a.ResourceGet)

	api.GET("/courses", a.CourseList)
	api.GET("/courses/:id", a.CourseGet)

	api.GET("/scholarships", a.ScholarshipList)
	api.GET("/scholarships/:id", a.ScholarshipGet)

	api.GET("/settings/:key", a.SettingGet)

	api.POST("/induction-forms", a.InductionFormSubmit)

	// 登录
	api.POST("/admin/login", a.AuthLogin)
	api.POST("/admin/logout", a.AuthLogout)

	// 管理接口
	admin := api.Group("/admin", adminAuth)

	admin.GET("/me", a.AuthMe)

	admin.GET("/users", a.UserList)
	admin.GET("/users/:id", a.UserGet)
	admin.POST("/users", a.UserCreate)
	admin.PUT("/users/:id", a.UserUpdate)
	admin.DELETE("/users/:id", a.UserDelete)

	admin.POST("/news", a.NewsCreate)
	admin.PUT("/news/:id", a.NewsUpdate)
	admin.DELETE("/news/:id", a.NewsDelete)

	admin.POST("/events", a.EventCreate)
	admin.PUT("/events/:id", a.EventUpdate)
	admin.DELETE("/events/:id", a.EventDelete)

	admin.POST("/publications", a.PublicationCreate)
	admin.PUT("/publications/:id", a.PublicationUpdate)
	admin.DELETE("/publications/:id", a.PublicationDelete)

	admin.POST("/leadership", a.LeadershipCreate)
	admin.PUT("/leadership/:id", a.LeadershipUpdate)
	admin.DELETE("/leadership/:id", a.LeadershipDelete)

	admin.POST("/gallery", a.GalleryCreate)
	admin.PUT("/gallery/:id", a.GalleryUpdate)
	admin.DELETE("/gallery/:id", a.GalleryDelete)

	admin.POST("/resources", a.ResourceCreate)
	admin.PUT("/resources/:id", a.ResourceUpdate)
	admin.DELETE("/resources/:id", a.ResourceDelete)

	admin.POST("/courses", a.CourseCreate)
	admin.PUT("/courses/:id", a.CourseUpdate)
	admin.DELETE("/courses/:id", a.CourseDelete)

	admin.POST("/scholarships", a.ScholarshipCreate)
	admin.PUT("/scholarships/:id", a.ScholarshipUpdate)
	admin.DELETE("/scholarships/:id", a.ScholarshipDelete)

	admin.GET("/induction-forms", a.InductionFormList)
	admin.GET("/induction-forms/:id", a.InductionFormGet)
	admin.PUT("/induction-forms/:id", a.InductionFormUpdate)
	admin.DELETE("/induction-forms/:id", a.InductionFormDelete)

	admin.GET("/settings", a.SettingList)
	admin.PUT("/settings/:key", a.SettingUpdate)

	api.POST("/upload/image", a.UploadImage, adminAuth)
}
