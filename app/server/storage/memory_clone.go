package storage

import (
	"slices"
	"society-cms/app/server/models"
)

// 复制指针和切片字段，避免内存存储与调用方共享底层数据

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneAdminUser(u models.AdminUser) models.AdminUser {
	return u
}

func cloneNews(n models.News) models.News {
	n.ImageURL = clonePtr(n.ImageURL)
	n.AuthorID = clonePtr(n.AuthorID)
	n.PublishedAt = clonePtr(n.PublishedAt)
	return n
}

func cloneEvent(e models.Event) models.Event {
	e.EndDate = clonePtr(e.EndDate)
	e.Capacity = clonePtr(e.Capacity)
	e.ImageURL = clonePtr(e.ImageURL)
	e.RegistrationURL = clonePtr(e.RegistrationURL)
	return e
}

func clonePublication(p models.Publication) models.Publication {
	p.Authors = slices.Clone(p.Authors)
	p.CoverURL = clonePtr(p.CoverURL)
	p.DownloadURL = clonePtr(p.DownloadURL)
	p.ExternalURL = clonePtr(p.ExternalURL)
	p.DOI = clonePtr(p.DOI)
	return p
}

func cloneLeadership(m models.Leadership) models.Leadership {
	m.Email = clonePtr(m.Email)
	m.LinkedIn = clonePtr(m.LinkedIn)
	m.Website = clonePtr(m.Website)
	m.PhotoURL = clonePtr(m.PhotoURL)
	m.Expertise = slices.Clone(m.Expertise)
	return m
}

func cloneGallery(g models.Gallery) models.Gallery {
	g.Description = clonePtr(g.Description)
	g.EventID = clonePtr(g.EventID)
	return g
}

func cloneInductionForm(f models.InductionForm) models.InductionForm {
	f.Interests = slices.Clone(f.Interests)
	f.Experience = clonePtr(f.Experience)
	return f
}

func cloneResource(r models.Resource) models.Resource {
	return r
}

func cloneCourse(c models.Course) models.Course {
	c.EnrollmentURL = clonePtr(c.EnrollmentURL)
	return c
}

func cloneScholarship(s models.Scholarship) models.Scholarship {
	s.ApplicationURL = clonePtr(s.ApplicationURL)
	return s
}
