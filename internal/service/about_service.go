package service

import (
	"strings"

	"github.com/designfolio/internal/db"
	"gorm.io/gorm"
)

// AboutService provides access to the biography section.
type AboutService struct {
	db *gorm.DB
}

// NewAboutService returns a new AboutService instance.
func NewAboutService(gdb *gorm.DB) *AboutService {
	return &AboutService{db: gdb}
}

// AboutInput carries the editable biography fields.
type AboutInput struct {
	Name       string
	City       string
	Role       string
	Paragraphs []string
}

// Get returns the about row, or nil when none exists yet.
func (s *AboutService) Get() (*db.About, error) {
	return firstOrNil[db.About](s.db, "about")
}

// Save creates or updates the about content. Blank paragraphs are dropped and
// an empty list is allowed.
func (s *AboutService) Save(input AboutInput) (*db.About, error) {
	if err := required("name", input.Name); err != nil {
		return nil, err
	}

	return upsertSingleton(s.db, "about", func(about *db.About) {
		about.Name = strings.TrimSpace(input.Name)
		about.City = strings.TrimSpace(input.City)
		about.Role = strings.TrimSpace(input.Role)
		about.Paragraphs = cleanList(input.Paragraphs)
	})
}
