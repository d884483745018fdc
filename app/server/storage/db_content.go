package storage

import (
	"context"
	"github.com/google/uuid"
	"gorm.io/gorm/clause"
	"society-cms/app/server/models"
	"society-cms/app/server/utils"
)

// 新闻

func (s *DB) GetNews(ctx context.Context, id string) (*models.News, error) {
	return byID[models.News](ctx, s.db, id)
}

func (s *DB) ListNews(ctx context.Context, published *bool) ([]models.News, error) {
	return find[models.News](ctx, s.db, boolFilter("published", published), desc("created_at"), idAsc)
}

func (s *DB) GetFeaturedNews(ctx context.Context) ([]models.News, error) {
	return find[models.News](ctx, s.db, []clause.Expression{
		eq("featured", true),
		eq("published", true),
	}, desc("created_at"), idAsc)
}

func (s *DB) CreateNews(ctx context.Context, in models.NewsInput, authorID *string) (*models.News, error) {
	news := in.ToModel()
	news.ID = uuid.NewString()
	news.AuthorID = authorID
	news.CreatedAt = utils.Now()
	news.UpdatedAt = news.CreatedAt
	news.StampPublished(news.CreatedAt)
	return create(ctx, s.db, &news)
}

func (s *DB) UpdateNews(ctx context.Context, id string, patch models.NewsPatch) (*models.News, error) {
	return update(ctx, s.db, id, func(news *models.News) error {
		now := utils.Now()
		patch.Apply(news, now)
		news.UpdatedAt = now
		return nil
	})
}

func (s *DB) DeleteNews(ctx context.Context, id string) (bool, error) {
	return removeRow[models.News](ctx, s.db, id)
}

// 活动

func (s *DB) GetEvent(ctx context.Context, id string) (*models.Event, error) {
	return byID[models.Event](ctx, s.db, id)
}

func (s *DB) ListEvents(ctx context.Context, published *bool) ([]models.Event, error) {
	return find[models.Event](ctx, s.db, boolFilter("published", published), asc("date"), idAsc)
}

func (s *DB) GetUpcomingEvents(ctx context.Context) ([]models.Event, error) {
	return find[models.Event](ctx, s.db, []clause.Expression{
		eq("published", true),
		clause.Gt{Column: clause.Column{Name: "date"}, Value: utils.Now()},
	}, asc("date"), idAsc)
}

func (s *DB) CreateEvent(ctx context.Context, in models.EventInput) (*models.Event, error) {
	event, err := in.ToModel()
	if err != nil {
		return nil, err
	}
	event.ID = uuid.NewString()
	event.CreatedAt = utils.Now()
	event.UpdatedAt = event.CreatedAt
	return create(ctx, s.db, &event)
}

func (s *DB) UpdateEvent(ctx context.Context, id string, patch models.EventPatch) (*models.Event, error) {
	return update(ctx, s.db, id, func(event *models.Event) error {
		if err := patch.Apply(event); err != nil {
			return err
		}
		event.UpdatedAt = utils.Now()
		return nil
	})
}

func (s *DB) DeleteEvent(ctx context.Context, id string) (bool, error) {
	return removeRow[models.Event](ctx, s.db, id)
}

// 出版物

func (s *DB) GetPublication(ctx context.Context, id string) (*models.Publication, error) {
	return byID[models.Publication](ctx, s.db, id)
}

func (s *DB) ListPublications(ctx context.Context, published *bool) ([]models.Publication, error) {
	return find[models.Publication](ctx, s.db, boolFilter("published", published), desc("date"), idAsc)
}

func (s *DB) GetPublicationsByType(ctx context.Context, pubType string) ([]models.Publication, error) {
	return find[models.Publication](ctx, s.db, []clause.Expression{
		eq("type", pubType),
		eq("published", true),
	}, desc("date"), idAsc)
}

func (s *DB) CreatePublication(ctx context.Context, in models.PublicationInput) (*models.Publication, error) {
	pub, err := in.ToModel()
	if err != nil {
		return nil, err
	}
	pub.ID = uuid.NewString()
	pub.CreatedAt = utils.Now()
	pub.UpdatedAt = pub.CreatedAt
	return create(ctx, s.db, &pub)
}

func (s *DB) UpdatePublication(ctx context.Context, id string, patch models.PublicationPatch) (*models.Publication, error) {
	return update(ctx, s.db, id, func(pub *models.Publication) error {
		if err := patch.Apply(pub); err != nil {
			return err
		}
		pub.UpdatedAt = utils.Now()
		return nil
	})
}

func (s *DB) DeletePublication(ctx context.Context, id string) (bool, error) {
	return removeRow[models.Publication](ctx, s.db, id)
}

// 领导团队

func (s *DB) GetLeadershipMember(ctx context.Context, id string) (*models.Leadership, error) {
	return byID[models.Leadership](ctx, s.db, id)
}

func (s *DB) ListLeadership(ctx context.Context, active *bool) ([]models.Leadership, error) {
	return find[models.Leadership](ctx, s.db, boolFilter("active", active), asc("order"), idAsc)
}

func (s *DB) CreateLeadershipMember(ctx context.Context, in models.LeadershipInput) (*models.Leadership, error) {
	member := in.ToModel()
	member.ID = uuid.NewString()
	member.CreatedAt = utils.Now()
	member.UpdatedAt = member.CreatedAt
	return create(ctx, s.db, &member)
}

func (s *DB) UpdateLeadershipMember(ctx context.Context, id string, patch models.LeadershipPatch) (*models.Leadership, error) {
	return update(ctx, s.db, id, func(member *models.Leadership) error {
		patch.Apply(member)
		member.UpdatedAt = utils.Now()
		return nil
	})
}

func (s *DB) DeleteLeadershipMember(ctx context.Context, id string) (bool, error) {
	return removeRow[models.Leadership](ctx, s.db, id)
}

// 相册

func (s *DB) GetGalleryImage(ctx context.Context, id string) (*models.Gallery, error) {
	return byID[models.Gallery](ctx, s.db, id)
}

func (s *DB) ListGalleryImages(ctx context.Context, published *bool) ([]models.Gallery, error) {
	return find[models.Gallery](ctx, s.db, boolFilter("published", published), desc("uploaded_at"), idAsc)
}

func (s *DB) GetGalleryByCategory(ctx context.Context, category string) ([]models.Gallery, error) {
	return find[models.Gallery](ctx, s.db, []clause.Expression{
		eq("category", category),
		eq("published", true),
	}, desc("uploaded_at"), idAsc)
}

func (s *DB) CreateGalleryImage(ctx context.Context, in models.GalleryInput) (*models.Gallery, error) {
	image := in.ToModel()
	image.ID = uuid.NewString()
	image.UploadedAt = utils.Now()
	return create(ctx, s.db, &image)
}

func (s *DB) UpdateGalleryImage(ctx context.Context, id string, patch models.GalleryPatch) (*models.Gallery, error) {
	return update(ctx, s.db, id, func(image *models.Gallery) error {
		patch.Apply(image)
		return nil
	})
}

func (s *DB) DeleteGalleryImage(ctx context.Context, id string) (bool, error) {
	return removeRow[models.Gallery](ctx, s.db, id)
}

// 学习资源

func (s *DB) GetResource(ctx context.Context, id string) (*models.Resource, error) {
	return byID[models.Resource](ctx, s.db, id)
}

func (s *DB) ListResources(ctx context.Context, published *bool) ([]models.Resource, error) {
	return find[models.Resource](ctx, s.db, boolFilter("published", published), asc("order"), idAsc)
}

func (s *DB) CreateResource(ctx context.Context, in models.ResourceInput) (*models.Resource, error) {
	res := in.ToModel()
	res.ID = uuid.NewString()
	res.CreatedAt = utils.Now()
	res.UpdatedAt = res.CreatedAt
	return create(ctx, s.db, &res)
}

func (s *DB) UpdateResource(ctx context.Context, id string, patch models.ResourcePatch) (*models.Resource, error) {
	return update(ctx, s.db, id, func(res *models.Resource) error {
		patch.Apply(res)
		res.UpdatedAt = utils.Now()
		return nil
	})
}

func (s *DB) DeleteResource(ctx context.Context, id string) (bool, error) {
	return removeRow[models.Resource](ctx, s.db, id)
}

// 课程

func (s *DB) GetCourse(ctx context.Context, id string) (*models.Course, error) {
	return byID[models.Course](ctx, s.db, id)
}

func (s *DB) ListCourses(ctx context.Context, published *bool) ([]models.Course, error) {
	return find[models.Course](ctx, s.db, boolFilter("published", published), asc("order"), idAsc)
}

func (s *DB) CreateCourse(ctx context.Context, in models.CourseInput) (*models.Course, error) {
	course := in.ToModel()
	course.ID = uuid.NewString()
	course.CreatedAt = utils.Now()
	course.UpdatedAt = course.CreatedAt
	return create(ctx, s.db, &course)
}

func (s *DB) UpdateCourse(ctx context.Context, id string, patch models.CoursePatch) (*models.Course, error) {
	return update(ctx, s.db, id, func(course *models.Course) error {
		patch.Apply(course)
		course.UpdatedAt = utils.Now()
		return nil
	})
}

func (s *DB) DeleteCourse(ctx context.Context, id string) (bool, error) {
	return removeRow[models.Course](ctx, s.db, id)
}

// 奖学金

func (s *DB) GetScholarship(ctx context.Context, id string) (*models.Scholarship, error) {
	return byID[models.Scholarship](ctx, s.db, id)
}

func (s *DB) ListScholarships(ctx context.Context, published *bool) ([]models.Scholarship, error) {
	return find[models.Scholarship](ctx, s.db, boolFilter("published", published), asc("order"), idAsc)
}

func (s *DB) CreateScholarship(ctx context.Context, in models.ScholarshipInput) (*models.Scholarship, error) {
	sc := in.ToModel()
	sc.ID = uuid.NewString()
	sc.CreatedAt = utils.Now()
	sc.UpdatedAt = sc.CreatedAt
	return create(ctx, s.db, &sc)
}

func (s *DB) UpdateScholarship(ctx context.Context, id string, patch models.ScholarshipPatch) (*models.Scholarship, error) {
	return update(ctx, s.db, id, func(sc *models.Scholarship) error {
		patch.Apply(sc)
		sc.UpdatedAt = utils.Now()
		return nil
	})
}

func (s *DB) DeleteScholarship(ctx context.Context, id string) (bool, error) {
	return removeRow[models.Scholarship](ctx, s.db, id)
}
