package storage

import (
	"context"
	"github.com/google/go-cmp/cmp"
	"github.com/lib/pq"
	"github.com/stretchr/testify/suite"
	"society-cms/app/server/models"
	"society-cms/app/server/utils"
	"testing"
	"time"
)

// StorageSuite 两种存储实现共用的行为测试
type StorageSuite struct {
	suite.Suite
	open func(t *testing.T) Storage
	st   Storage
	ctx  context.Context
}

func (s *StorageSuite) SetupTest() {
	s.ctx = context.Background()
	s.st = s.open(s.T())
}

// 数据库读回的时间带本地时区，只比较时刻
var equateTime = cmp.Comparer(func(a, b time.Time) bool {
	return a.Equal(b)
})

func (s *StorageSuite) equal(want, got any) {
	if diff := cmp.Diff(want, got, equateTime); diff != "" {
		s.Failf("records differ", "(-want +got):\n%s", diff)
	}
}

func day(offset time.Duration) string {
	return time.Now().Add(offset).UTC().Format(time.RFC3339)
}

func (s *StorageSuite) newsInput(title string, featured, published bool) models.NewsInput {
	return models.NewsInput{
		Title:     title,
		Excerpt:   "excerpt",
		Content:   "content",
		Category:  "General",
		Featured:  featured,
		Published: published,
	}
}

func (s *StorageSuite) createNews(title string, featured, published bool) *models.News {
	news, err := s.st.CreateNews(s.ctx, s.newsInput(title, featured, published), nil)
	s.Require().NoError(err)
	s.Require().NotNil(news)
	// 确保 createdAt 可区分
	time.Sleep(2 * time.Millisecond)
	return news
}

func titles[T any](rows []T, title func(*T) string) []string {
	out := make([]string, 0, len(rows))
	for i := range rows {
		out = append(out, title(&rows[i]))
	}
	return out
}

func newsTitle(n *models.News) string { return n.Title }

func (s *StorageSuite) TestNewsLifecycle() {
	created := s.createNews("hello", false, false)
	s.NotEmpty(created.ID)
	s.Nil(created.PublishedAt)
	s.Equal(created.CreatedAt, created.UpdatedAt)

	got, err := s.st.GetNews(s.ctx, created.ID)
	s.Require().NoError(err)
	s.equal(created, got)

	updated, err := s.st.UpdateNews(s.ctx, created.ID, models.NewsPatch{Title: utils.P("renamed")})
	s.Require().NoError(err)
	s.Require().NotNil(updated)
	s.Equal("renamed", updated.Title)
	s.Equal("content", updated.Content)
	s.True(updated.UpdatedAt.After(created.UpdatedAt))
	s.True(updated.CreatedAt.Equal(created.CreatedAt))

	deleted, err := s.st.DeleteNews(s.ctx, created.ID)
	s.Require().NoError(err)
	s.True(deleted)

	got, err = s.st.GetNews(s.ctx, created.ID)
	s.Require().NoError(err)
	s.Nil(got)

	deleted, err = s.st.DeleteNews(s.ctx, created.ID)
	s.Require().NoError(err)
	s.False(deleted)
}

func (s *StorageSuite) TestMissingRecords() {
	const missing = "00000000-0000-0000-0000-000000000000"

	news, err := s.st.UpdateNews(s.ctx, missing, models.NewsPatch{Title: utils.P("x")})
	s.NoError(err)
	s.Nil(news)

	event, err := s.st.UpdateEvent(s.ctx, missing, models.EventPatch{})
	s.NoError(err)
	s.Nil(event)

	user, err := s.st.GetAdminUserByUsername(s.ctx, "nobody")
	s.NoError(err)
	s.Nil(user)

	setting, err := s.st.GetSettingByKey(s.ctx, "nothing")
	s.NoError(err)
	s.Nil(setting)

	ok, err := s.st.DeleteScholarship(s.ctx, missing)
	s.NoError(err)
	s.False(ok)
}

func (s *StorageSuite) TestNewsOrderingAndFilters() {
	s.createNews("first", true, true)
	s.createNews("second", false, true)
	s.createNews("third", true, false)
	s.createNews("fourth", true, true)

	all, err := s.st.ListNews(s.ctx, nil)
	s.Require().NoError(err)
	s.Equal([]string{"fourth", "third", "second", "first"}, titles(all, newsTitle))

	published, err := s.st.ListNews(s.ctx, utils.P(true))
	s.Require().NoError(err)
	s.Equal([]string{"fourth", "second", "first"}, titles(published, newsTitle))

	drafts, err := s.st.ListNews(s.ctx, utils.P(false))
	s.Require().NoError(err)
	s.Equal([]string{"third"}, titles(drafts, newsTitle))

	featured, err := s.st.GetFeaturedNews(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{"fourth", "first"}, titles(featured, newsTitle))
}

func (s *StorageSuite) TestNewsPublishedAtIsStampedOnce() {
	published := s.createNews("live", false, true)
	s.Require().NotNil(published.PublishedAt)
	s.True(published.PublishedAt.Equal(published.CreatedAt))

	draft := s.createNews("draft", false, false)
	s.Nil(draft.PublishedAt)

	// 首次发布
	first, err := s.st.UpdateNews(s.ctx, draft.ID, models.NewsPatch{Published: utils.P(true)})
	s.Require().NoError(err)
	s.Require().NotNil(first.PublishedAt)
	stamp := *first.PublishedAt

	time.Sleep(2 * time.Millisecond)

	// 取消发布后保留
	hidden, err := s.st.UpdateNews(s.ctx, draft.ID, models.NewsPatch{Published: utils.P(false)})
	s.Require().NoError(err)
	s.False(hidden.Published)
	s.Require().NotNil(hidden.PublishedAt)
	s.True(stamp.Equal(*hidden.PublishedAt))

	// 重新发布不改变
	again, err := s.st.UpdateNews(s.ctx, draft.ID, models.NewsPatch{Published: utils.P(true)})
	s.Require().NoError(err)
	s.True(stamp.Equal(*again.PublishedAt))
}

func (s *StorageSuite) TestNewsAuthor() {
	author := "2a0c7b86-6b8c-4b5c-9f7a-111111111111"
	news, err := s.st.CreateNews(s.ctx, s.newsInput("by admin", false, true), &author)
	s.Require().NoError(err)
	s.Require().NotNil(news.AuthorID)
	s.Equal(author, *news.AuthorID)
}

func (s *StorageSuite) eventInput(title, date string, published bool) models.EventInput {
	return models.EventInput{
		Title:       title,
		Description: "description",
		Type:        "workshop",
		Date:        date,
		Time:        "10:00 - 12:00",
		Location:    "Main Hall",
		Published:   published,
	}
}

func eventTitle(e *models.Event) string { return e.Title }

func (s *StorageSuite) TestUpcomingEvents() {
	for _, in := range []models.EventInput{
		s.eventInput("yesterday", day(-24*time.Hour), true),
		s.eventInput("next week", day(7*24*time.Hour), false),
		s.eventInput("tomorrow", day(24*time.Hour), true),
		s.eventInput("in two days", day(48*time.Hour), true),
	} {
		_, err := s.st.CreateEvent(s.ctx, in)
		s.Require().NoError(err)
	}

	upcoming, err := s.st.GetUpcomingEvents(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{"tomorrow", "in two days"}, titles(upcoming, eventTitle))

	all, err := s.st.ListEvents(s.ctx, nil)
	s.Require().NoError(err)
	s.Equal([]string{"yesterday", "tomorrow", "in two days", "next week"}, titles(all, eventTitle))

	published, err := s.st.ListEvents(s.ctx, utils.P(true))
	s.Require().NoError(err)
	s.Equal([]string{"yesterday", "tomorrow", "in two days"}, titles(published, eventTitle))
}

func (s *StorageSuite) TestEventDatesAndZeroValues() {
	in := s.eventInput("conference", "2030-05-01", true)
	in.EndDate = utils.P("2030-05-03T18:00")
	in.Capacity = utils.P(40)

	event, err := s.st.CreateEvent(s.ctx, in)
	s.Require().NoError(err)
	s.True(time.Date(2030, 5, 1, 0, 0, 0, 0, time.UTC).Equal(event.Date))
	s.Require().NotNil(event.EndDate)
	s.True(time.Date(2030, 5, 3, 18, 0, 0, 0, time.UTC).Equal(*event.EndDate))
	s.Zero(event.Registered)

	// 零值字段也要写入
	updated, err := s.st.UpdateEvent(s.ctx, event.ID, models.EventPatch{
		Published: utils.P(false),
		EndDate:   utils.P(""),
		Capacity:  utils.P(0),
	})
	s.Require().NoError(err)
	s.False(updated.Published)
	s.Nil(updated.EndDate)
	s.Require().NotNil(updated.Capacity)
	s.Zero(*updated.Capacity)

	got, err := s.st.GetEvent(s.ctx, event.ID)
	s.Require().NoError(err)
	s.equal(updated, got)
}

func (s *StorageSuite) TestPublicationsByType() {
	for _, in := range []models.PublicationInput{
		{Title: "old journal", Authors: []string{"A", "B"}, Journal: "J", Abstract: "a", Type: "journal", Date: "2023-01-01", Published: true},
		{Title: "new journal", Authors: []string{"C"}, Journal: "J", Abstract: "a", Type: "journal", Date: "2024-06-01", Published: true},
		{Title: "hidden journal", Authors: []string{"D"}, Journal: "J", Abstract: "a", Type: "journal", Date: "2025-01-01", Published: false},
		{Title: "report", Authors: []string{"E"}, Journal: "R", Abstract: "a", Type: "report", Date: "2024-01-01", Published: true},
	} {
		_, err := s.st.CreatePublication(s.ctx, in)
		s.Require().NoError(err)
	}

	pubTitle := func(p *models.Publication) string { return p.Title }

	journals, err := s.st.GetPublicationsByType(s.ctx, "journal")
	s.Require().NoError(err)
	s.Equal([]string{"new journal", "old journal"}, titles(journals, pubTitle))
	s.Equal(pq.StringArray{"A", "B"}, journals[1].Authors)

	all, err := s.st.ListPublications(s.ctx, nil)
	s.Require().NoError(err)
	s.Equal([]string{"hidden journal", "new journal", "report", "old journal"}, titles(all, pubTitle))

	none, err := s.st.GetPublicationsByType(s.ctx, "newsletter")
	s.Require().NoError(err)
	s.Empty(none)
	s.NotNil(none)
}

func (s *StorageSuite) TestPublicationAuthorsReplaced() {
	pub, err := s.st.CreatePublication(s.ctx, models.PublicationInput{
		Title: "paper", Authors: []string{"A", "B"}, Journal: "J", Abstract: "a", Type: "journal", Date: "2024-01-01",
	})
	s.Require().NoError(err)

	updated, err := s.st.UpdatePublication(s.ctx, pub.ID, models.PublicationPatch{Authors: &[]string{"Z"}})
	s.Require().NoError(err)
	s.Equal(pq.StringArray{"Z"}, updated.Authors)
}

func (s *StorageSuite) TestLeadershipActiveAndOrder() {
	for i, name := range []string{"third", "first", "retired", "second"} {
		order := map[string]int{"first": 1, "second": 2, "third": 3, "retired": 0}[name]
		in := models.LeadershipInput{
			Name: name, Title: "t", Role: "r", Department: "d", Bio: "b",
			Expertise: []string{"GIS"}, Order: order,
		}
		if name == "retired" {
			in.Active = utils.P(false)
		}
		member, err := s.st.CreateLeadershipMember(s.ctx, in)
		s.Require().NoError(err, i)
		s.Equal(name != "retired", member.Active)
	}

	memberName := func(m *models.Leadership) string { return m.Name }

	active, err := s.st.ListLeadership(s.ctx, utils.P(true))
	s.Require().NoError(err)
	s.Equal([]string{"first", "second", "third"}, titles(active, memberName))

	all, err := s.st.ListLeadership(s.ctx, nil)
	s.Require().NoError(err)
	s.Equal([]string{"retired", "first", "second", "third"}, titles(all, memberName))
}

func (s *StorageSuite) TestGalleryByCategory() {
	for _, in := range []models.GalleryInput{
		{Title: "a", ImageURL: "data:image/png;base64,AA==", Category: "Field Trip", Published: true},
		{Title: "b", ImageURL: "data:image/png;base64,AA==", Category: "Workshop", Published: true},
		{Title: "c", ImageURL: "data:image/png;base64,AA==", Category: "Field Trip", Published: false},
		{Title: "d", ImageURL: "data:image/png;base64,AA==", Category: "Field Trip", Published: true},
	} {
		_, err := s.st.CreateGalleryImage(s.ctx, in)
		s.Require().NoError(err)
		time.Sleep(2 * time.Millisecond)
	}

	imageTitle := func(g *models.Gallery) string { return g.Title }

	trips, err := s.st.GetGalleryByCategory(s.ctx, "Field Trip")
	s.Require().NoError(err)
	s.Equal([]string{"d", "a"}, titles(trips, imageTitle))

	drafts, err := s.st.ListGalleryImages(s.ctx, utils.P(false))
	s.Require().NoError(err)
	s.Equal([]string{"c"}, titles(drafts, imageTitle))
}

func (s *StorageSuite) TestOrderedCatalogs() {
	for _, order := range []int{3, 1, 2} {
		_, err := s.st.CreateResource(s.ctx, models.ResourceInput{
			Name: "r", Description: "d", Type: "Software", Category: "Software & Tools", Link: "https://example.com",
			Published: order != 2, Order: order,
		})
		s.Require().NoError(err)
		_, err = s.st.CreateCourse(s.ctx, models.CourseInput{
			Title: "c", Instructor: "i", Duration: "4 weeks", Level: "Beginner", Description: "d",
			Published: order != 2, Order: order,
		})
		s.Require().NoError(err)
		_, err = s.st.CreateScholarship(s.ctx, models.ScholarshipInput{
			Name: "s", Amount: "100", Criteria: "c", Deadline: "June",
			Published: order != 2, Order: order,
		})
		s.Require().NoError(err)
	}

	resources, err := s.st.ListResources(s.ctx, utils.P(true))
	s.Require().NoError(err)
	s.Equal([]int{1, 3}, []int{resources[0].Order, resources[1].Order})

	courses, err := s.st.ListCourses(s.ctx, nil)
	s.Require().NoError(err)
	s.Equal([]int{1, 2, 3}, []int{courses[0].Order, courses[1].Order, courses[2].Order})

	scholarships, err := s.st.ListScholarships(s.ctx, utils.P(false))
	s.Require().NoError(err)
	s.Require().Len(scholarships, 1)
	s.Equal(2, scholarships[0].Order)

	// order 更新为 0 也要生效
	updated, err := s.st.UpdateCourse(s.ctx, courses[2].ID, models.CoursePatch{Order: utils.P(0)})
	s.Require().NoError(err)
	s.Zero(updated.Order)

	courses, err = s.st.ListCourses(s.ctx, nil)
	s.Require().NoError(err)
	s.Equal(updated.ID, courses[0].ID)
}

func (s *StorageSuite) formInput(name string) models.InductionFormInput {
	return models.InductionFormInput{
		FullName:   name,
		Email:      "student@example.com",
		Phone:      "0300-0000000",
		StudentID:  "GIS-001",
		Department: "Space Science",
		Semester:   "3",
		Interests:  []string{"Remote Sensing"},
		Motivation: "I want to learn more about GIS.",
	}
}

func (s *StorageSuite) TestInductionForms() {
	first, err := s.st.CreateInductionForm(s.ctx, s.formInput("first"))
	s.Require().NoError(err)
	s.Equal(models.InductionStatusPending, first.Status)
	time.Sleep(2 * time.Millisecond)

	second, err := s.st.CreateInductionForm(s.ctx, s.formInput("second"))
	s.Require().NoError(err)

	forms, err := s.st.ListInductionForms(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{"second", "first"}, titles(forms, func(f *models.InductionForm) string { return f.FullName }))

	approved, err := s.st.UpdateInductionForm(s.ctx, second.ID, models.InductionFormPatch{Status: utils.P(models.InductionStatusApproved)})
	s.Require().NoError(err)
	s.Equal(models.InductionStatusApproved, approved.Status)
	s.True(approved.SubmittedAt.Equal(second.SubmittedAt))
}

func (s *StorageSuite) TestSettingsUpsert() {
	created, err := s.st.UpsertSetting(s.ctx, models.SettingInductionFormVisible, "true")
	s.Require().NoError(err)
	s.Equal("true", created.Value)

	time.Sleep(2 * time.Millisecond)

	updated, err := s.st.UpsertSetting(s.ctx, models.SettingInductionFormVisible, "false")
	s.Require().NoError(err)
	s.Equal(created.ID, updated.ID)
	s.Equal("false", updated.Value)
	s.True(updated.UpdatedAt.After(created.UpdatedAt))

	_, err = s.st.UpsertSetting(s.ctx, "a_first", "1")
	s.Require().NoError(err)

	settings, err := s.st.ListSettings(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{"a_first", models.SettingInductionFormVisible}, titles(settings, func(st *models.Setting) string { return st.Key }))

	got, err := s.st.GetSettingByKey(s.ctx, models.SettingInductionFormVisible)
	s.Require().NoError(err)
	s.equal(updated, got)
}

func (s *StorageSuite) adminInput(username, email string) models.AdminUserInput {
	return models.AdminUserInput{Username: username, Password: "hash", Email: email}
}

func (s *StorageSuite) TestAdminUsersUnique() {
	alice, err := s.st.CreateAdminUser(s.ctx, s.adminInput("alice", "alice@example.com"))
	s.Require().NoError(err)
	s.Equal(models.DefaultAdminRole, alice.Role)
	s.True(alice.IsActive)

	_, err = s.st.CreateAdminUser(s.ctx, s.adminInput("alice", "other@example.com"))
	s.ErrorIs(err, ErrDuplicate)

	bob, err := s.st.CreateAdminUser(s.ctx, s.adminInput("bob", "bob@example.com"))
	s.Require().NoError(err)

	_, err = s.st.UpdateAdminUser(s.ctx, bob.ID, models.AdminUserPatch{Email: utils.P("alice@example.com")})
	s.ErrorIs(err, ErrDuplicate)

	byEmail, err := s.st.GetAdminUserByEmail(s.ctx, "bob@example.com")
	s.Require().NoError(err)
	s.Require().NotNil(byEmail)
	s.Equal(bob.ID, byEmail.ID)

	disabled, err := s.st.UpdateAdminUser(s.ctx, bob.ID, models.AdminUserPatch{IsActive: utils.P(false)})
	s.Require().NoError(err)
	s.False(disabled.IsActive)

	users, err := s.st.ListAdminUsers(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{"alice", "bob"}, titles(users, func(u *models.AdminUser) string { return u.Username }))
}
