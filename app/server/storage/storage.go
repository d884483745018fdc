// Package storage 定义路由层与持久化之间唯一的接缝。
//
// 所有实现遵循同一套约定：
//   - 找不到记录时返回 nil 记录和 nil 错误，不视为错误；
//   - Delete 返回记录是否存在并被删除；
//   - 只有底层存储故障才会返回错误，唯一键冲突包装为 ErrDuplicate；
//   - 列表的过滤条件与默认排序总是同时生效，排序相同时按 id 升序。
package storage

import (
	"context"
	"errors"
	"society-cms/app/server/models"
)

var ErrDuplicate = errors.New("duplicate unique key")

type Storage interface {
	// 管理员
	GetAdminUser(ctx context.Context, id string) (*models.AdminUser, error)
	GetAdminUserByUsername(ctx context.Context, username string) (*models.AdminUser, error)
	GetAdminUserByEmail(ctx context.Context, email string) (*models.AdminUser, error)
	ListAdminUsers(ctx context.Context) ([]models.AdminUser, error)
	CreateAdminUser(ctx context.Context, in models.AdminUserInput) (*models.AdminUser, error)
	UpdateAdminUser(ctx context.Context, id string, patch models.AdminUserPatch) (*models.AdminUser, error)
	DeleteAdminUser(ctx context.Context, id string) (bool, error)

	// 新闻
	GetNews(ctx context.Context, id string) (*models.News, error)
	ListNews(ctx context.Context, published *bool) ([]models.News, error)
	GetFeaturedNews(ctx context.Context) ([]models.News, error)
	CreateNews(ctx context.Context, in models.NewsInput, authorID *string) (*models.News, error)
	UpdateNews(ctx context.Context, id string, patch models.NewsPatch) (*models.News, error)
	DeleteNews(ctx context.Context, id string) (bool, error)

	// 活动
	GetEvent(ctx context.Context, id string) (*models.Event, error)
	ListEvents(ctx context.Context, published *bool) ([]models.Event, error)
	GetUpcomingEvents(ctx context.Context) ([]models.Event, error)
	CreateEvent(ctx context.Context, in models.EventInput) (*models.Event, error)
	UpdateEvent(ctx context.Context, id string, patch models.EventPatch) (*models.Event, error)
	DeleteEvent(ctx context.Context, id string) (bool, error)

	// 出版物
	GetPublication(ctx context.Context, id string) (*models.Publication, error)
	ListPublications(ctx context.Context, published *bool) ([]models.Publication, error)
	GetPublicationsByType(ctx context.Context, pubType string) ([]models.Publication, error)
	CreatePublication(ctx context.Context, in models.PublicationInput) (*models.Publication, error)
	UpdatePublication(ctx context.Context, id string, patch models.PublicationPatch) (*models.Publication, error)
	DeletePublication(ctx context.Context, id string) (bool, error)

	// 领导团队
	GetLeadershipMember(ctx context.Context, id string) (*models.Leadership, error)
	ListLeadership(ctx context.Context, active *bool) ([]models.Leadership, error)
	CreateLeadershipMember(ctx context.Context, in models.LeadershipInput) (*models.Leadership, error)
	UpdateLeadershipMember(ctx context.Context, id string, patch models.LeadershipPatch) (*models.Leadership, error)
	DeleteLeadershipMember(ctx context.Context, id string) (bool, error)

	// 相册
	GetGalleryImage(ctx context.Context, id string) (*models.Gallery, error)
	ListGalleryImages(ctx context.Context, published *bool) ([]models.Gallery, error)
	GetGalleryByCategory(ctx context.Context, category string) ([]models.Gallery, error)
	CreateGalleryImage(ctx context.Context, in models.GalleryInput) (*models.Gallery, error)
	UpdateGalleryImage(ctx context.Context, id string, patch models.GalleryPatch) (*models.Gallery, error)
	DeleteGalleryImage(ctx context.Context, id string) (bool, error)

	// 入会申请
	GetInductionForm(ctx context.Context, id string) (*models.InductionForm, error)
	ListInductionForms(ctx context.Context) ([]models.InductionForm, error)
	CreateInductionForm(ctx context.Context, in models.InductionFormInput) (*models.InductionForm, error)
	UpdateInductionForm(ctx context.Context, id string, patch models.InductionFormPatch) (*models.InductionForm, error)
	DeleteInductionForm(ctx context.Context, id string) (bool, error)

	// 设置
	GetSettingByKey(ctx context.Context, key string) (*models.Setting, error)
	ListSettings(ctx context.Context) ([]models.Setting, error)
	UpsertSetting(ctx context.Context, key string, value string) (*models.Setting, error)

	// 学习资源
	GetResource(ctx context.Context, id string) (*models.Resource, error)
	ListResources(ctx context.Context, published *bool) ([]models.Resource, error)
	CreateResource(ctx context.Context, in models.ResourceInput) (*models.Resource, error)
	UpdateResource(ctx context.Context, id string, patch models.ResourcePatch) (*models.Resource, error)
	DeleteResource(ctx context.Context, id string) (bool, error)

	// 课程
	GetCourse(ctx context.Context, id string) (*models.Course, error)
	ListCourses(ctx context.Context, published *bool) ([]models.Course, error)
	CreateCourse(ctx context.Context, in models.CourseInput) (*models.Course, error)
	UpdateCourse(ctx context.Context, id string, patch models.CoursePatch) (*models.Course, error)
	DeleteCourse(ctx context.Context, id string) (bool, error)

	// 奖学金
	GetScholarship(ctx context.Context, id string) (*models.Scholarship, error)
	ListScholarships(ctx context.Context, published *bool) ([]models.Scholarship, error)
	CreateScholarship(ctx context.Context, in models.ScholarshipInput) (*models.Scholarship, error)
	UpdateScholarship(ctx context.Context, id string, patch models.ScholarshipPatch) (*models.Scholarship, error)
	DeleteScholarship(ctx context.Context, id string) (bool, error)

	// Kind 返回实现名称，用于日志和健康检查
	Kind() string
	Close() error
}
