package service

import (
	"strings"

	"github.com/designfolio/internal/db"
	"gorm.io/gorm"
)

// HeroService keeps the single hero row.
type HeroService struct {
	db *gorm.DB
}

// NewHeroService constructs a HeroService.
func NewHeroService(gdb *gorm.DB) *HeroService {
	return &HeroService{db: gdb}
}

// HeroInput carries the editable hero fields. ImageURL may stay empty until
// an upload completes.
type HeroInput struct {
	TitleLine1 string
	TitleLine2 string
	ImageURL   string
	ImageAlt   string
	Name       string
	Quotes     []string
}

// Get returns the hero, or nil when it has not been configured.
func (s *HeroService) Get() (*db.Hero, error) {
	return firstOrNil[db.Hero](s.db, "hero")
}

// Save upserts the hero row.
func (s *HeroService) Save(input HeroInput) (*db.Hero, error) {
	if err := required("titleLine1", input.TitleLine1); err != nil {
		return nil, err
	}
	if err := required("name", input.Name); err != nil {
		return nil, err
	}

	return upsertSingleton(s.db, "hero", func(hero *db.Hero) {
		hero.TitleLine1 = strings.TrimSpace(input.TitleLine1)
		hero.TitleLine2 = strings.TrimSpace(input.TitleLine2)
		hero.ImageURL = strings.TrimSpace(input.ImageURL)
		hero.ImageAlt = strings.TrimSpace(input.ImageAlt)
		hero.Name = strings.TrimSpace(input.Name)
		hero.Quotes = cleanList(input.Quotes)
	})
}
