package service

import (
	"fmt"
	"strings"

	"github.com/designfolio/internal/db"
	"gorm.io/gorm"
)

// CatalogService 管理服务、技能与工具三类简单条目
type CatalogService struct {
	db *gorm.DB
}

// NewCatalogService 构造 CatalogService
func NewCatalogService(gdb *gorm.DB) *CatalogService {
	return &CatalogService{db: gdb}
}

// ServiceInput describes an offered service card.
type ServiceInput struct {
	Title       string
	Description string
	Image       string
}

// SkillInput describes a skill label.
type SkillInput struct {
	Name string
}

// ToolInput describes a design tool.
type ToolInput struct {
	Name  string
	Image string
}

// ListServices returns service cards in creation order.
func (s *CatalogService) ListServices() ([]db.Service, error) {
	return listAll[db.Service](s.db, "id ASC", "services")
}

// GetService loads one service card.
func (s *CatalogService) GetService(id uint) (*db.Service, error) {
	return findByID[db.Service](s.db, id, "service")
}

// CreateService adds a service card.
func (s *CatalogService) CreateService(input ServiceInput) (*db.Service, error) {
	if err := validateServiceInput(input); err != nil {
		return nil, err
	}
	item := db.Service{
		Title:       strings.TrimSpace(input.Title),
		Description: strings.TrimSpace(input.Description),
		Image:       strings.TrimSpace(input.Image),
	}
	if err := s.db.Create(&item).Error; err != nil {
		return nil, fmt.Errorf("create service: %w", err)
	}
	return &item, nil
}

// UpdateService edits a service card.
func (s *CatalogService) UpdateService(id uint, input ServiceInput) (*db.Service, error) {
	if err := validateServiceInput(input); err != nil {
		return nil, err
	}
	item, err := s.GetService(id)
	if err != nil {
		return nil, err
	}
	item.Title = strings.TrimSpace(input.Title)
	item.Description = strings.TrimSpace(input.Description)
	item.Image = strings.TrimSpace(input.Image)
	if err := s.db.Save(item).Error; err != nil {
		return nil, fmt.Errorf("update service: %w", err)
	}
	return item, nil
}

// DeleteService removes a service card and returns it.
func (s *CatalogService) DeleteService(id uint) (*db.Service, error) {
	return deleteByID[db.Service](s.db, id, "service")
}

// ListSkills returns skills in creation order.
func (s *CatalogService) ListSkills() ([]db.Skill, error) {
	return listAll[db.Skill](s.db, "id ASC", "skills")
}

// GetSkill loads one skill.
func (s *CatalogService) GetSkill(id uint) (*db.Skill, error) {
	return findByID[db.Skill](s.db, id, "skill")
}

// CreateSkill adds a skill. Duplicate names are allowed.
func (s *CatalogService) CreateSkill(input SkillInput) (*db.Skill, error) {
	if err := required("name", input.Name); err != nil {
		return nil, err
	}
	item := db.Skill{Name: strings.TrimSpace(input.Name)}
	if err := s.db.Create(&item).Error; err != nil {
		return nil, fmt.Errorf("create skill: %w", err)
	}
	return &item, nil
}

// UpdateSkill renames a skill.
func (s *CatalogService) UpdateSkill(id uint, input SkillInput) (*db.Skill, error) {
	if err := required("name", input.Name); err != nil {
		return nil, err
	}
	item, err := s.GetSkill(id)
	if err != nil {
		return nil, err
	}
	item.Name = strings.TrimSpace(input.Name)
	if err := s.db.Save(item).Error; err != nil {
		return nil, fmt.Errorf("update skill: %w", err)
	}
	return item, nil
}

// DeleteSkill removes a skill.
func (s *CatalogService) DeleteSkill(id uint) error {
	_, err := deleteByID[db.Skill](s.db, id, "skill")
	return err
}

// ListTools returns tools in creation order.
func (s *CatalogService) ListTools() ([]db.Tool, error) {
	return listAll[db.Tool](s.db, "id ASC", "tools")
}

// GetTool loads one tool.
func (s *CatalogService) GetTool(id uint) (*db.Tool, error) {
	return findByID[db.Tool](s.db, id, "tool")
}

// CreateTool adds a tool.
func (s *CatalogService) CreateTool(input ToolInput) (*db.Tool, error) {
	if err := validateToolInput(input); err != nil {
		return nil, err
	}
	item := db.Tool{Name: strings.TrimSpace(input.Name), Image: strings.TrimSpace(input.Image)}
	if err := s.db.Create(&item).Error; err != nil {
		return nil, fmt.Errorf("create tool: %w", err)
	}
	return &item, nil
}

// UpdateTool edits a tool.
func (s *CatalogService) UpdateTool(id uint, input ToolInput) (*db.Tool, error) {
	if err := validateToolInput(input); err != nil {
		return nil, err
	}
	item, err := s.GetTool(id)
	if err != nil {
		return nil, err
	}
	item.Name = strings.TrimSpace(input.Name)
	item.Image = strings.TrimSpace(input.Image)
	if err := s.db.Save(item).Error; err != nil {
		return nil, fmt.Errorf("update tool: %w", err)
	}
	return item, nil
}

// DeleteTool removes a tool and returns it.
func (s *CatalogService) DeleteTool(id uint) (*db.Tool, error) {
	return deleteByID[db.Tool](s.db, id, "tool")
}

func validateServiceInput(input ServiceInput) error {
	if err := required("title", input.Title); err != nil {
		return err
	}
	if err := required("description", input.Description); err != nil {
		return err
	}
	return required("image", input.Image)
}

func validateToolInput(input ToolInput) error {
	if err := required("name", input.Name); err != nil {
		return err
	}
	return required("image", input.Image)
}
