package service

import (
	"fmt"
	"strings"

	"github.com/designfolio/internal/db"
	"github.com/designfolio/internal/view"
	"gorm.io/gorm"
)

// SocialService maintains the hero social links and the social section
// cards. Icons are checked against the registry before anything is written.
type SocialService struct {
	db *gorm.DB
}

// NewSocialService constructs a SocialService.
func NewSocialService(gdb *gorm.DB) *SocialService {
	return &SocialService{db: gdb}
}

// SocialLinkInput describes a hero link. Order is appended when nil.
type SocialLinkInput struct {
	Href  string
	Icon  string
	Label string
	Order *int
}

// SocialItemInput describes a social section card.
type SocialItemInput struct {
	Name        string
	Description string
	Icon        string
	URL         string
}

// ListLinks returns hero links ordered by their order value.
func (s *SocialService) ListLinks() ([]db.SocialLink, error) {
	return listAll[db.SocialLink](s.db, "sort_order ASC, id ASC", "social links")
}

// GetLink loads one hero link.
func (s *SocialService) GetLink(id uint) (*db.SocialLink, error) {
	return findByID[db.SocialLink](s.db, id, "social link")
}

// CreateLink appends a hero link.
func (s *SocialService) CreateLink(input SocialLinkInput) (*db.SocialLink, error) {
	icon, err := validateSocialLinkInput(input)
	if err != nil {
		return nil, err
	}

	order := 0
	if input.Order != nil {
		order = *input.Order
	} else if order, err = nextOrder(s.db, &db.SocialLink{}); err != nil {
		return nil, err
	}

	link := db.SocialLink{
		Href:  strings.TrimSpace(input.Href),
		Icon:  string(icon),
		Label: strings.TrimSpace(input.Label),
		Order: order,
	}
	if err := s.db.Create(&link).Error; err != nil {
		return nil, fmt.Errorf("create social link: %w", err)
	}
	return &link, nil
}

// UpdateLink edits a hero link.
func (s *SocialService) UpdateLink(id uint, input SocialLinkInput) (*db.SocialLink, error) {
	icon, err := validateSocialLinkInput(input)
	if err != nil {
		return nil, err
	}

	link, err := s.GetLink(id)
	if err != nil {
		return nil, err
	}
	link.Href = strings.TrimSpace(input.Href)
	link.Icon = string(icon)
	link.Label = strings.TrimSpace(input.Label)
	if input.Order != nil {
		link.Order = *input.Order
	}

	if err := s.db.Save(link).Error; err != nil {
		return nil, fmt.Errorf("update social link: %w", err)
	}
	return link, nil
}

// DeleteLink removes a hero link.
func (s *SocialService) DeleteLink(id uint) error {
	_, err := deleteByID[db.SocialLink](s.db, id, "social link")
	return err
}

// MoveLink shifts a hero link one position.
func (s *SocialService) MoveLink(id uint, dir Direction) error {
	return moveOrdered[db.SocialLink](s.db, id, dir, "social link")
}

// ReorderLinks renumbers the hero links in the given sequence.
func (s *SocialService) ReorderLinks(ids []uint) error {
	return reorderAll[db.SocialLink](s.db, ids, "social link")
}

// ListItems returns the social section cards.
func (s *SocialService) ListItems() ([]db.SocialItem, error) {
	return listAll[db.SocialItem](s.db, "id ASC", "social items")
}

// GetItem loads one card.
func (s *SocialService) GetItem(id uint) (*db.SocialItem, error) {
	return findByID[db.SocialItem](s.db, id, "social item")
}

// CreateItem adds a card.
func (s *SocialService) CreateItem(input SocialItemInput) (*db.SocialItem, error) {
	icon, err := validateSocialItemInput(input)
	if err != nil {
		return nil, err
	}

	item := db.SocialItem{
		Name:        strings.TrimSpace(input.Name),
		Description: strings.TrimSpace(input.Description),
		Icon:        string(icon),
		URL:         strings.TrimSpace(input.URL),
	}
	if err := s.db.Create(&item).Error; err != nil {
		return nil, fmt.Errorf("create social item: %w", err)
	}
	return &item, nil
}

// UpdateItem edits a card.
func (s *SocialService) UpdateItem(id uint, input SocialItemInput) (*db.SocialItem, error) {
	icon, err := validateSocialItemInput(input)
	if err != nil {
		return nil, err
	}

	item, err := s.GetItem(id)
	if err != nil {
		return nil, err
	}
	item.Name = strings.TrimSpace(input.Name)
	item.Description = strings.TrimSpace(input.Description)
	item.Icon = string(icon)
	item.URL = strings.TrimSpace(input.URL)

	if err := s.db.Save(item).Error; err != nil {
		return nil, fmt.Errorf("update social item: %w", err)
	}
	return item, nil
}

// DeleteItem removes a card.
func (s *SocialService) DeleteItem(id uint) error {
	_, err := deleteByID[db.SocialItem](s.db, id, "social item")
	return err
}

func validateSocialLinkInput(input SocialLinkInput) (view.Icon, error) {
	if err := required("href", input.Href); err != nil {
		return "", err
	}
	if err := required("label", input.Label); err != nil {
		return "", err
	}
	return parseIcon(input.Icon)
}

func validateSocialItemInput(input SocialItemInput) (view.Icon, error) {
	for _, field := range []struct{ name, value string }{
		{"name", input.Name},
		{"description", input.Description},
		{"url", input.URL},
	} {
		if err := required(field.name, field.value); err != nil {
			return "", err
		}
	}
	return parseIcon(input.Icon)
}

func parseIcon(raw string) (view.Icon, error) {
	icon, err := view.ParseIcon(raw)
	if err != nil {
		return "", invalid("icon %q is not supported", strings.TrimSpace(raw))
	}
	return icon, nil
}
