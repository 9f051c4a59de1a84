package site

import (
	"context"
	"encoding/json"
	"fmt"
	"html/template"
	"time"

	"go.uber.org/zap"

	"github.com/designfolio/internal/cache"
	"github.com/designfolio/internal/db"
	"github.com/designfolio/internal/metrics"
	"github.com/designfolio/internal/service"
)

// Snapshot is everything the public home page shows. Sections that were
// never configured are nil or empty.
type Snapshot struct {
	Hero        *db.Hero           `json:"hero"`
	About       *About             `json:"about"`
	SocialLinks []db.SocialLink    `json:"socialLinks"`
	Projects    []Project          `json:"projects"`
	Services    []db.Service       `json:"services"`
	Skills      []db.Skill         `json:"skills"`
	Tools       []db.Tool          `json:"tools"`
	Social      []db.SocialItem    `json:"social"`
	Contact     *Contact           `json:"contact"`
	Footer      *db.Footer         `json:"footer"`
	FooterNav   []db.FooterNavItem `json:"footerNav"`
	GeneratedAt time.Time          `json:"generatedAt"`
}

// About carries the biography with each paragraph rendered.
type About struct {
	db.About
	ParagraphsHTML []template.HTML `json:"paragraphsHtml"`
}

// Project carries a project with its accomplishment rendered.
type Project struct {
	db.Project
	AccomplishmentHTML template.HTML `json:"accomplishmentHtml"`
}

// Links returns the project's non-empty external links in slot order.
func (p Project) Links() []string {
	links := make([]string, 0, 4)
	for _, link := range []*string{p.Link1, p.Link2, p.Link3, p.Link4} {
		if link != nil && *link != "" {
			links = append(links, *link)
		}
	}
	return links
}

// Contact is the public part of the contact settings. Addresses stay
// server side.
type Contact struct {
	Title string `json:"title"`
}

// Site assembles the public home page and caches it under cache.HomePath
// until a mutation invalidates it.
type Site struct {
	svc     *service.Set
	pages   *cache.Pages
	log     *zap.Logger
	metrics *metrics.Metrics
	now     func() time.Time
}

// New builds the public site. pages and m may be nil.
func New(svc *service.Set, pages *cache.Pages, log *zap.Logger, m *metrics.Metrics) *Site {
	if log == nil {
		log = zap.NewNop()
	}
	return &Site{svc: svc, pages: pages, log: log, metrics: m, now: time.Now}
}

// Home returns the cached snapshot or builds a fresh one. Cache failures
// fall through to the database.
func (s *Site) Home(ctx context.Context) (Snapshot, error) {
	if s.pages != nil {
		payload, ok, err := s.pages.Load(ctx, cache.HomePath)
		switch {
		case err != nil:
			s.log.Warn("page cache read failed", zap.Error(err))
		case ok:
			var snap Snapshot
			if err := json.Unmarshal(payload, &snap); err == nil {
				s.metrics.PageCache(true)
				return snap, nil
			}
			s.log.Warn("discarding unreadable cached page", zap.String("path", cache.HomePath))
		}
	}
	s.metrics.PageCache(false)

	var gen int64
	cacheable := s.pages != nil
	if cacheable {
		var err error
		if gen, err = s.pages.Generation(ctx); err != nil {
			s.log.Warn("page cache generation read failed", zap.Error(err))
			cacheable = false
		}
	}

	snap, err := s.build()
	if err != nil {
		return Snapshot{}, err
	}

	if cacheable {
		if payload, err := json.Marshal(snap); err == nil {
			if _, err := s.pages.SaveAt(ctx, cache.HomePath, payload, gen); err != nil {
				s.log.Warn("page cache write failed", zap.Error(err))
			}
		}
	}
	return snap, nil
}

func (s *Site) build() (Snapshot, error) {
	snap := Snapshot{GeneratedAt: s.now().UTC()}
	var err error

	if snap.Hero, err = s.svc.Hero.Get(); err != nil {
		return Snapshot{}, fmt.Errorf("load hero: %w", err)
	}

	about, err := s.svc.About.Get()
	if err != nil {
		return Snapshot{}, fmt.Errorf("load about: %w", err)
	}
	if about != nil {
		view := &About{About: *about, ParagraphsHTML: make([]template.HTML, 0, len(about.Paragraphs))}
		for _, paragraph := range about.Paragraphs {
			view.ParagraphsHTML = append(view.ParagraphsHTML, Markdown(paragraph))
		}
		snap.About = view
	}

	if snap.SocialLinks, err = s.svc.Social.ListLinks(); err != nil {
		return Snapshot{}, fmt.Errorf("load social links: %w", err)
	}

	projects, err := s.svc.Projects.List()
	if err != nil {
		return Snapshot{}, fmt.Errorf("load projects: %w", err)
	}
	snap.Projects = make([]Project, 0, len(projects))
	for _, project := range projects {
		snap.Projects = append(snap.Projects, Project{Project: project, AccomplishmentHTML: Markdown(project.Accomplishment)})
	}

	if snap.Services, err = s.svc.Catalog.ListServices(); err != nil {
		return Snapshot{}, fmt.Errorf("load services: %w", err)
	}
	if snap.Skills, err = s.svc.Catalog.ListSkills(); err != nil {
		return Snapshot{}, fmt.Errorf("load skills: %w", err)
	}
	if snap.Tools, err = s.svc.Catalog.ListTools(); err != nil {
		return Snapshot{}, fmt.Errorf("load tools: %w", err)
	}
	if snap.Social, err = s.svc.Social.ListItems(); err != nil {
		return Snapshot{}, fmt.Errorf("load social items: %w", err)
	}

	contact, err := s.svc.Contact.Settings()
	if err != nil {
		return Snapshot{}, fmt.Errorf("load contact settings: %w", err)
	}
	if contact != nil {
		snap.Contact = &Contact{Title: contact.Title}
	}

	if snap.Footer, err = s.svc.Footer.Get(); err != nil {
		return Snapshot{}, fmt.Errorf("load footer: %w", err)
	}
	if snap.FooterNav, err = s.svc.Footer.ListNav(); err != nil {
		return Snapshot{}, fmt.Errorf("load footer navigation: %w", err)
	}
	return snap, nil
}
