package service

import (
	"fmt"
	"strings"

	"github.com/designfolio/internal/db"
	"gorm.io/gorm"
)

// FooterService manages the copyright line and the footer navigation.
type FooterService struct {
	db *gorm.DB
}

// NewFooterService constructs a FooterService.
func NewFooterService(gdb *gorm.DB) *FooterService {
	return &FooterService{db: gdb}
}

// FooterInput carries the footer singleton fields.
type FooterInput struct {
	Copyright string
}

// FooterNavInput describes a navigation entry. Order is appended when nil.
type FooterNavInput struct {
	Name  string
	Href  string
	Order *int
}

// Get returns the footer, or nil when not configured.
func (s *FooterService) Get() (*db.Footer, error) {
	return firstOrNil[db.Footer](s.db, "footer")
}

// Save upserts the footer.
func (s *FooterService) Save(input FooterInput) (*db.Footer, error) {
	if err := required("copyright", input.Copyright); err != nil {
		return nil, err
	}
	return upsertSingleton(s.db, "footer", func(footer *db.Footer) {
		footer.Copyright = strings.TrimSpace(input.Copyright)
	})
}

// ListNav returns the navigation in display order.
func (s *FooterService) ListNav() ([]db.FooterNavItem, error) {
	return listAll[db.FooterNavItem](s.db, "sort_order ASC, id ASC", "footer navigation")
}

// GetNav loads one navigation entry.
func (s *FooterService) GetNav(id uint) (*db.FooterNavItem, error) {
	return findByID[db.FooterNavItem](s.db, id, "footer navigation")
}

// CreateNav appends a navigation entry.
func (s *FooterService) CreateNav(input FooterNavInput) (*db.FooterNavItem, error) {
	if err := validateFooterNavInput(input); err != nil {
		return nil, err
	}

	order := 0
	if input.Order != nil {
		order = *input.Order
	} else {
		next, err := nextOrder(s.db, &db.FooterNavItem{})
		if err != nil {
			return nil, err
		}
		order = next
	}

	item := db.FooterNavItem{
		Name:  strings.TrimSpace(input.Name),
		Href:  strings.TrimSpace(input.Href),
		Order: order,
	}
	if err := s.db.Create(&item).Error; err != nil {
		return nil, fmt.Errorf("create footer navigation: %w", err)
	}
	return &item, nil
}

// UpdateNav edits an entry in place. Order only changes when given.
func (s *FooterService) UpdateNav(id uint, input FooterNavInput) (*db.FooterNavItem, error) {
	if err := validateFooterNavInput(input); err != nil {
		return nil, err
	}

	item, err := s.GetNav(id)
	if err != nil {
		return nil, err
	}
	item.Name = strings.TrimSpace(input.Name)
	item.Href = strings.TrimSpace(input.Href)
	if input.Order != nil {
		item.Order = *input.Order
	}

	if err := s.db.Save(item).Error; err != nil {
		return nil, fmt.Errorf("update footer navigation: %w", err)
	}
	return item, nil
}

// DeleteNav removes an entry.
func (s *FooterService) DeleteNav(id uint) error {
	_, err := deleteByID[db.FooterNavItem](s.db, id, "footer navigation")
	return err
}

// MoveNav swaps an entry with its neighbour and renumbers all entries 1..n.
func (s *FooterService) MoveNav(id uint, dir Direction) error {
	return moveOrdered[db.FooterNavItem](s.db, id, dir, "footer navigation")
}

// ReorderNav renumbers entries following ids.
func (s *FooterService) ReorderNav(ids []uint) error {
	return reorderAll[db.FooterNavItem](s.db, ids, "footer navigation")
}

func validateFooterNavInput(input FooterNavInput) error {
	if err := required("name", input.Name); err != nil {
		return err
	}
	return required("href", input.Href)
}
