package storage

import (
	"context"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"society-cms/app/server/models"
	"society-cms/app/server/utils"
	"time"
)

// roundTrip 描述一种实体的 创建 → 读取 → 空补丁 → 删除 流程
type roundTrip[T, P any] struct {
	want      T        // 由输入直接转换得到的记录
	generated []string // 存储层生成的字段，比较输入时忽略
	create    func(ctx context.Context) (*T, error)
	get       func(ctx context.Context, id string) (*T, error)
	update    func(ctx context.Context, id string, patch P) (*T, error)
	remove    func(ctx context.Context, id string) (bool, error)
	id        func(*T) string
	updatedAt func(*T) time.Time // 没有 updatedAt 的实体为 nil
}

func (r roundTrip[T, P]) run(s *StorageSuite) {
	created, err := r.create(s.ctx)
	s.Require().NoError(err)
	s.Require().NotNil(created)
	id := r.id(created)
	s.Require().NotEmpty(id)

	// 输入加默认值
	if diff := cmp.Diff(r.want, *created, equateTime, cmpopts.IgnoreFields(r.want, r.generated...)); diff != "" {
		s.Failf("created record differs from input", "(-want +got):\n%s", diff)
	}

	got, err := r.get(s.ctx, id)
	s.Require().NoError(err)
	s.equal(created, got)

	// 确保 updatedAt 可区分
	time.Sleep(2 * time.Millisecond)

	var empty P
	updated, err := r.update(s.ctx, id, empty)
	s.Require().NoError(err)
	s.Require().NotNil(updated)

	opts := []cmp.Option{equateTime}
	if r.updatedAt != nil {
		opts = append(opts, cmpopts.IgnoreFields(r.want, "UpdatedAt"))
		s.True(r.updatedAt(updated).After(r.updatedAt(created)), "updatedAt should move forward")
	}
	if diff := cmp.Diff(created, updated, opts...); diff != "" {
		s.Failf("empty patch changed the record", "(-before +after):\n%s", diff)
	}

	got, err = r.get(s.ctx, id)
	s.Require().NoError(err)
	s.equal(updated, got)

	deleted, err := r.remove(s.ctx, id)
	s.Require().NoError(err)
	s.True(deleted)

	got, err = r.get(s.ctx, id)
	s.Require().NoError(err)
	s.Nil(got)

	deleted, err = r.remove(s.ctx, id)
	s.Require().NoError(err)
	s.False(deleted)
}

var timestamps = []string{"ID", "CreatedAt", "UpdatedAt"}

func (s *StorageSuite) TestEveryKindRoundTrip() {
	newsIn := s.newsInput("draft", true, false)

	eventIn := models.EventInput{
		Title: "Workshop", Description: "d", Type: "workshop",
		Date: "2030-05-01T10:00:00Z", EndDate: utils.P("2030-05-01T12:00:00Z"),
		Time: "10:00 - 12:00", Location: "Lab", Capacity: utils.P(40), Published: true,
	}
	event, err := eventIn.ToModel()
	s.Require().NoError(err)

	pubIn := models.PublicationInput{
		Title: "Paper", Authors: []string{"B", "A"}, Journal: "J", Abstract: "a",
		Type: "journal", Date: "2024-02-01", Published: true,
	}
	pub, err := pubIn.ToModel()
	s.Require().NoError(err)

	memberIn := models.LeadershipInput{
		Name: "n", Title: "t", Role: "r", Department: "d", Bio: "b", Expertise: []string{"GIS", "RS"}, Order: 2,
	}
	galleryIn := models.GalleryInput{Title: "g", ImageURL: "https://img", Category: "Trip", Published: true}
	formIn := models.InductionFormInput{
		FullName: "Student", Email: "student@example.com", Phone: "0300", StudentID: "S-1",
		Department: "Space Science", Semester: "3", Interests: []string{"GIS"},
		Motivation: "I want to join the society.",
	}
	userIn := models.AdminUserInput{Username: "editor", Password: "hash", Email: "editor@society.local"}
	resourceIn := models.ResourceInput{
		Name: "QGIS", Description: "d", Type: "Software", Category: "Software & Tools", Link: "https://qgis.org",
	}
	courseIn := models.CourseInput{Title: "RS", Instructor: "i", Duration: "4 weeks", Level: "Beginner", Description: "d"}
	scholarshipIn := models.ScholarshipInput{Name: "Merit", Amount: "50%", Criteria: "CGPA", Deadline: "June", Order: 1}

	cases := []struct {
		name string
		run  func(s *StorageSuite)
	}{
		{"News", roundTrip[models.News, models.NewsPatch]{
			want:      newsIn.ToModel(),
			generated: timestamps,
			create: func(ctx context.Context) (*models.News, error) {
				return s.st.CreateNews(ctx, newsIn, nil)
			},
			get: s.st.GetNews, update: s.st.UpdateNews, remove: s.st.DeleteNews,
			id:        func(n *models.News) string { return n.ID },
			updatedAt: func(n *models.News) time.Time { return n.UpdatedAt },
		}.run},
		{"Event", roundTrip[models.Event, models.EventPatch]{
			want:      event,
			generated: timestamps,
			create: func(ctx context.Context) (*models.Event, error) {
				return s.st.CreateEvent(ctx, eventIn)
			},
			get: s.st.GetEvent, update: s.st.UpdateEvent, remove: s.st.DeleteEvent,
			id:        func(e *models.Event) string { return e.ID },
			updatedAt: func(e *models.Event) time.Time { return e.UpdatedAt },
		}.run},
		{"Publication", roundTrip[models.Publication, models.PublicationPatch]{
			want:      pub,
			generated: timestamps,
			create: func(ctx context.Context) (*models.Publication, error) {
				return s.st.CreatePublication(ctx, pubIn)
			},
			get: s.st.GetPublication, update: s.st.UpdatePublication, remove: s.st.DeletePublication,
			id:        func(p *models.Publication) string { return p.ID },
			updatedAt: func(p *models.Publication) time.Time { return p.UpdatedAt },
		}.run},
		{"Leadership", roundTrip[models.Leadership, models.LeadershipPatch]{
			want:      memberIn.ToModel(),
			generated: timestamps,
			create: func(ctx context.Context) (*models.Leadership, error) {
				return s.st.CreateLeadershipMember(ctx, memberIn)
			},
			get: s.st.GetLeadershipMember, update: s.st.UpdateLeadershipMember, remove: s.st.DeleteLeadershipMember,
			id:        func(m *models.Leadership) string { return m.ID },
			updatedAt: func(m *models.Leadership) time.Time { return m.UpdatedAt },
		}.run},
		{"Gallery", roundTrip[models.Gallery, models.GalleryPatch]{
			want:      galleryIn.ToModel(),
			generated: []string{"ID", "UploadedAt"},
			create: func(ctx context.Context) (*models.Gallery, error) {
				return s.st.CreateGalleryImage(ctx, galleryIn)
			},
			get: s.st.GetGalleryImage, update: s.st.UpdateGalleryImage, remove: s.st.DeleteGalleryImage,
			id: func(g *models.Gallery) string { return g.ID },
		}.run},
		{"InductionForm", roundTrip[models.InductionForm, models.InductionFormPatch]{
			want:      formIn.ToModel(),
			generated: []string{"ID", "SubmittedAt"},
			create: func(ctx context.Context) (*models.InductionForm, error) {
				return s.st.CreateInductionForm(ctx, formIn)
			},
			get: s.st.GetInductionForm, update: s.st.UpdateInductionForm, remove: s.st.DeleteInductionForm,
			id: func(f *models.InductionForm) string { return f.ID },
		}.run},
		{"AdminUser", roundTrip[models.AdminUser, models.AdminUserPatch]{
			want:      userIn.ToModel(),
			generated: timestamps,
			create: func(ctx context.Context) (*models.AdminUser, error) {
				return s.st.CreateAdminUser(ctx, userIn)
			},
			get: s.st.GetAdminUser, update: s.st.UpdateAdminUser, remove: s.st.DeleteAdminUser,
			id:        func(u *models.AdminUser) string { return u.ID },
			updatedAt: func(u *models.AdminUser) time.Time { return u.UpdatedAt },
		}.run},
		{"Resource", roundTrip[models.Resource, models.ResourcePatch]{
			want:      resourceIn.ToModel(),
			generated: timestamps,
			create: func(ctx context.Context) (*models.Resource, error) {
				return s.st.CreateResource(ctx, resourceIn)
			},
			get: s.st.GetResource, update: s.st.UpdateResource, remove: s.st.DeleteResource,
			id:        func(r *models.Resource) string { return r.ID },
			updatedAt: func(r *models.Resource) time.Time { return r.UpdatedAt },
		}.run},
		{"Course", roundTrip[models.Course, models.CoursePatch]{
			want:      courseIn.ToModel(),
			generated: timestamps,
			create: func(ctx context.Context) (*models.Course, error) {
				return s.st.CreateCourse(ctx, courseIn)
			},
			get: s.st.GetCourse, update: s.st.UpdateCourse, remove: s.st.DeleteCourse,
			id:        func(c *models.Course) string { return c.ID },
			updatedAt: func(c *models.Course) time.Time { return c.UpdatedAt },
		}.run},
		{"Scholarship", roundTrip[models.Scholarship, models.ScholarshipPatch]{
			want:      scholarshipIn.ToModel(),
			generated: timestamps,
			create: func(ctx context.Context) (*models.Scholarship, error) {
				return s.st.CreateScholarship(ctx, scholarshipIn)
			},
			get: s.st.GetScholarship, update: s.st.UpdateScholarship, remove: s.st.DeleteScholarship,
			id:        func(sc *models.Scholarship) string { return sc.ID },
			updatedAt: func(sc *models.Scholarship) time.Time { return sc.UpdatedAt },
		}.run},
	}

	for _, c := range cases {
		s.Run(c.name, func() {
			c.run(s)
		})
	}
}

// 设置项没有 id，重复写入同一个值只刷新 updatedAt
func (s *StorageSuite) TestSettingRewriteSameValue() {
	first, err := s.st.UpsertSetting(s.ctx, "site_title", "Society")
	s.Require().NoError(err)
	s.Require().NotNil(first)

	time.Sleep(2 * time.Millisecond)

	second, err := s.st.UpsertSetting(s.ctx, "site_title", "Society")
	s.Require().NoError(err)
	s.Require().NotNil(second)
	s.True(second.UpdatedAt.After(first.UpdatedAt))
	if diff := cmp.Diff(first, second, equateTime, cmpopts.IgnoreFields(models.Setting{}, "UpdatedAt")); diff != "" {
		s.Failf("rewrite changed the setting", "(-before +after):\n%s", diff)
	}
}
