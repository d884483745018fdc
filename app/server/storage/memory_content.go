package storage

import (
	"context"
	"github.com/google/uuid"
	"society-cms/app/server/models"
)

// 新闻

func newsOrder(a, b *models.News) int {
	return byTimeDesc(a.CreatedAt, b.CreatedAt, a.ID, b.ID)
}

func (s *Memory) GetNews(_ context.Context, id string) (*models.News, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return get(s.news, id, cloneNews), nil
}

func (s *Memory) ListNews(_ context.Context, published *bool) ([]models.News, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return list(s.news, func(n *models.News) bool {
		return matchBool(published, n.Published)
	}, newsOrder, cloneNews), nil
}

func (s *Memory) GetFeaturedNews(_ context.Context) ([]models.News, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return list(s.news, func(n *models.News) bool {
		return n.Featured && n.Published
	}, newsOrder, cloneNews), nil
}

func (s *Memory) CreateNews(_ context.Context, in models.NewsInput, authorID *string) (*models.News, error) {
	news := cloneNews(in.ToModel())
	news.ID = uuid.NewString()
	news.AuthorID = clonePtr(authorID)
	news.CreatedAt = s.now()
	news.UpdatedAt = news.CreatedAt
	news.StampPublished(news.CreatedAt)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.news[news.ID] = news
	return get(s.news, news.ID, cloneNews), nil
}

func (s *Memory) UpdateNews(_ context.Context, id string, patch models.NewsPatch) (*models.News, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	news, ok := s.news[id]
	if !ok {
		return nil, nil
	}
	now := s.now()
	patch.Apply(&news, now)
	news.UpdatedAt = now
	s.news[id] = cloneNews(news)
	return get(s.news, id, cloneNews), nil
}

func (s *Memory) DeleteNews(_ context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return remove(s.news, id), nil
}

// 活动

func eventOrder(a, b *models.Event) int {
	return byTimeAsc(a.Date, b.Date, a.ID, b.ID)
}

func (s *Memory) GetEvent(_ context.Context, id string) (*models.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return get(s.events, id, cloneEvent), nil
}

func (s *Memory) ListEvents(_ context.Context, published *bool) ([]models.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return list(s.events, func(e *models.Event) bool {
		return matchBool(published, e.Published)
	}, eventOrder, cloneEvent), nil
}

func (s *Memory) GetUpcomingEvents(_ context.Context) ([]models.Event, error) {
	now := s.now()
	s.mu.RLock()
	defer s.mu.RUnlock()
	return list(s.events, func(e *models.Event) bool {
		return e.Published && e.Date.After(now)
	}, eventOrder, cloneEvent), nil
}

func (s *Memory) CreateEvent(_ context.Context, in models.EventInput) (*models.Event, error) {
	event, err := in.ToModel()
	if err != nil {
		return nil, err
	}
	event = cloneEvent(event)
	event.ID = uuid.NewString()
	event.CreatedAt = s.now()
	event.UpdatedAt = event.CreatedAt

	s.mu.Lock()
	defer s.mu.Unlock()
	s.events[event.ID] = event
	return get(s.events, event.ID, cloneEvent), nil
}

func (s *Memory) UpdateEvent(_ context.Context, id string, patch models.EventPatch) (*models.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	event, ok := s.events[id]
	if !ok {
		return nil, nil
	}
	if err := patch.Apply(&event); err != nil {
		return nil, err
	}
	event.UpdatedAt = s.now()
	s.events[id] = cloneEvent(event)
	return get(s.events, id, cloneEvent), nil
}

func (s *Memory) DeleteEvent(_ context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return remove(s.events, id), nil
}

// 出版物

func publicationOrder(a, b *models.Publication) int {
	return byTimeDesc(a.Date, b.Date, a.ID, b.ID)
}

func (s *Memory) GetPublication(_ context.Context, id string) (*models.Publication, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return get(s.publications, id, clonePublication), nil
}

func (s *Memory) ListPublications(_ context.Context, published *bool) ([]models.Publication, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return list(s.publications, func(p *models.Publication) bool {
		return matchBool(published, p.Published)
	}, publicationOrder, clonePublication), nil
}

func (s *Memory) GetPublicationsByType(_ context.Context, pubType string) ([]models.Publication, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return list(s.publications, func(p *models.Publication) bool {
		return p.Published && p.Type == pubType
	}, publicationOrder, clonePublication), nil
}

func (s *Memory) CreatePublication(_ context.Context, in models.PublicationInput) (*models.Publication, error) {
	pub, err := in.ToModel()
	if err != nil {
		return nil, err
	}
	pub = clonePublication(pub)
	pub.ID = uuid.NewString()
	pub.CreatedAt = s.now()
	pub.UpdatedAt = pub.CreatedAt

	s.mu.Lock()
	defer s.mu.Unlock()
	s.publications[pub.ID] = pub
	return get(s.publications, pub.ID, clonePublication), nil
}

func (s *Memory) UpdatePublication(_ context.Context, id string, patch models.PublicationPatch) (*models.Publication, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	pub, ok := s.publications[id]
	if !ok {
		return nil, nil
	}
	if err := patch.Apply(&pub); err != nil {
		return nil, err
	}
	pub.UpdatedAt = s.now()
	s.publications[id] = clonePublication(pub)
	return get(s.publications, id, clonePublication), nil
}

func (s *Memory) DeletePublication(_ context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return remove(s.publications, id), nil
}

// 领导团队

func (s *Memory) GetLeadershipMember(_ context.Context, id string) (*models.Leadership, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return get(s.leadership, id, cloneLeadership), nil
}

func (s *Memory) ListLeadership(_ context.Context, active *bool) ([]models.Leadership, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return list(s.leadership, func(m *models.Leadership) bool {
		return matchBool(active, m.Active)
	}, func(a, b *models.Leadership) int {
		return byOrderAsc(a.Order, b.Order, a.ID, b.ID)
	}, cloneLeadership), nil
}

func (s *Memory) CreateLeadershipMember(_ context.Context, in models.LeadershipInput) (*models.Leadership, error) {
	member := cloneLeadership(in.ToModel())
	member.ID = uuid.NewString()
	member.CreatedAt = s.now()
	member.UpdatedAt = member.CreatedAt

	s.mu.Lock()
	defer s.mu.Unlock()
	s.leadership[member.ID] = member
	return get(s.leadership, member.ID, cloneLeadership), nil
}

func (s *Memory) UpdateLeadershipMember(_ context.Context, id string, patch models.LeadershipPatch) (*models.Leadership, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	member, ok := s.leadership[id]
	if !ok {
		return nil, nil
	}
	patch.Apply(&member)
	member.UpdatedAt = s.now()
	s.leadership[id] = cloneLeadership(member)
	return get(s.leadership, id, cloneLeadership), nil
}

func (s *Memory) DeleteLeadershipMember(_ context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return remove(s.leadership, id), nil
}

// 相册

func galleryOrder(a, b *models.Gallery) int {
	return byTimeDesc(a.UploadedAt, b.UploadedAt, a.ID, b.ID)
}

func (s *Memory) GetGalleryImage(_ context.Context, id string) (*models.Gallery, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return get(s.gallery, id, cloneGallery), nil
}

func (s *Memory) ListGalleryImages(_ context.Context, published *bool) ([]models.Gallery, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return list(s.gallery, func(g *models.Gallery) bool {
		return matchBool(published, g.Published)
	}, galleryOrder, cloneGallery), nil
}

func (s *Memory) GetGalleryByCategory(_ context.Context, category string) ([]models.Gallery, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return list(s.gallery, func(g *models.Gallery) bool {
		return g.Published && g.Category == category
	}, galleryOrder, cloneGallery), nil
}

func (s *Memory) CreateGalleryImage(_ context.Context, in models.GalleryInput) (*models.Gallery, error) {
	image := cloneGallery(in.ToModel())
	image.ID = uuid.NewString()
	image.UploadedAt = s.now()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.gallery[image.ID] = image
	return get(s.gallery, image.ID, cloneGallery), nil
}

func (s *Memory) UpdateGalleryImage(_ context.Context, id string, patch models.GalleryPatch) (*models.Gallery, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	image, ok := s.gallery[id]
	if !ok {
		return nil, nil
	}
	patch.Apply(&image)
	s.gallery[id] = cloneGallery(image)
	return get(s.gallery, id, cloneGallery), nil
}

func (s *Memory) DeleteGalleryImage(_ context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return remove(s.gallery, id), nil
}

// 学习资源

func (s *Memory) GetResource(_ context.Context, id string) (*models.Resource, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return get(s.resources, id, cloneResource), nil
}

func (s *Memory) ListResources(_ context.Context, published *bool) ([]models.Resource, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return list(s.resources, func(r *models.Resource) bool {
		return matchBool(published, r.Published)
	}, func(a, b *models.Resource) int {
		return byOrderAsc(a.Order, b.Order, a.ID, b.ID)
	}, cloneResource), nil
}

func (s *Memory) CreateResource(_ context.Context, in models.ResourceInput) (*models.Resource, error) {
	res := in.ToModel()
	res.ID = uuid.NewString()
	res.CreatedAt = s.now()
	res.UpdatedAt = res.CreatedAt

	s.mu.Lock()
	defer s.mu.Unlock()
	s.resources[res.ID] = res
	return get(s.resources, res.ID, cloneResource), nil
}

func (s *Memory) UpdateResource(_ context.Context, id string, patch models.ResourcePatch) (*models.Resource, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	res, ok := s.resources[id]
	if !ok {
		return nil, nil
	}
	patch.Apply(&res)
	res.UpdatedAt = s.now()
	s.resources[id] = res
	return get(s.resources, id, cloneResource), nil
}

func (s *Memory) DeleteResource(_ context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return remove(s.resources, id), nil
}

// 课程

func (s *Memory) GetCourse(_ context.Context, id string) (*models.Course, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return get(s.courses, id, cloneCourse), nil
}

func (s *Memory) ListCourses(_ context.Context, published *bool) ([]models.Course, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return list(s.courses, func(c *models.Course) bool {
		return matchBool(published, c.Published)
	}, func(a, b *models.Course) int {
		return byOrderAsc(a.Order, b.Order, a.ID, b.ID)
	}, cloneCourse), nil
}

func (s *Memory) CreateCourse(_ context.Context, in models.CourseInput) (*models.Course, error) {
	course := cloneCourse(in.ToModel())
	course.ID = uuid.NewString()
	course.CreatedAt = s.now()
	course.UpdatedAt = course.CreatedAt

	s.mu.Lock()
	defer s.mu.Unlock()
	s.courses[course.ID] = course
	return get(s.courses, course.ID, cloneCourse), nil
}

func (s *Memory) UpdateCourse(_ context.Context, id string, patch models.CoursePatch) (*models.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	course, ok := s.courses[id]
	if !ok {
		return nil, nil
	}
	patch.Apply(&course)
	course.UpdatedAt = s.now()
	s.courses[id] = cloneCourse(course)
	return get(s.courses, id, cloneCourse), nil
}

func (s *Memory) DeleteCourse(_ context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return remove(s.courses, id), nil
}

// 奖学金

func (s *Memory) GetScholarship(_ context.Context, id string) (*models.Scholarship, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return get(s.scholarships, id, cloneScholarship), nil
}

func (s *Memory) ListScholarships(_ context.Context, published *bool) ([]models.Scholarship, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return list(s.scholarships, func(sc *models.Scholarship) bool {
		return matchBool(published, sc.Published)
	}, func(a, b *models.Scholarship) int {
		return byOrderAsc(a.Order, b.Order, a.ID, b.ID)
	}, cloneScholarship), nil
}

func (s *Memory) CreateScholarship(_ context.Context, in models.ScholarshipInput) (*models.Scholarship, error) {
	sc := cloneScholarship(in.ToModel())
	sc.ID = uuid.NewString()
	sc.CreatedAt = s.now()
	sc.UpdatedAt = sc.CreatedAt

	s.mu.Lock()
	defer s.mu.Unlock()
	s.scholarships[sc.ID] = sc
	return get(s.scholarships, sc.ID, cloneScholarship), nil
}

func (s *Memory) UpdateScholarship(_ context.Context, id string, patch models.ScholarshipPatch) (*models.Scholarship, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sc, ok := s.scholarships[id]
	if !ok {
		return nil, nil
	}
	patch.Apply(&sc)
	sc.UpdatedAt = s.now()
	s.scholarships[id] = cloneScholarship(sc)
	return get(s.scholarships, id, cloneScholarship), nil
}

func (s *Memory) DeleteScholarship(_ context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return remove(s.scholarships, id), nil
}
