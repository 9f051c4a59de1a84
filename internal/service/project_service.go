package service

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/designfolio/internal/db"
	"gorm.io/gorm"
)

// ProjectService 负责作品集项目的增删改查与排序
type ProjectService struct {
	db *gorm.DB
}

// NewProjectService 构造 ProjectService
func NewProjectService(gdb *gorm.DB) *ProjectService {
	return &ProjectService{db: gdb}
}

// ProjectInput describes a project. Empty links are stored as NULL.
type ProjectInput struct {
	Title          string
	Description    string
	Image          string
	Tags           []string
	Categories     []string
	Year           string
	Accomplishment string
	Links          [4]string
	Order          *int
}

// List returns projects in display order.
func (s *ProjectService) List() ([]db.Project, error) {
	return listAll[db.Project](s.db, "sort_order ASC, id ASC", "projects")
}

// Get loads one project.
func (s *ProjectService) Get(id uint) (*db.Project, error) {
	return findByID[db.Project](s.db, id, "project")
}

// Create 新建项目，未指定排序时追加到末尾 (max+1)
func (s *ProjectService) Create(input ProjectInput) (*db.Project, error) {
	if err := validateProjectInput(input); err != nil {
		return nil, err
	}

	var project db.Project
	applyProjectInput(&project, input)

	if input.Order != nil {
		project.Order = *input.Order
	} else {
		next, err := nextOrder(s.db, &db.Project{})
		if err != nil {
			return nil, err
		}
		project.Order = next
	}

	if err := s.db.Create(&project).Error; err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}
	return &project, nil
}

// Update 更新项目内容，排序仅在显式传入时修改
func (s *ProjectService) Update(id uint, input ProjectInput) (*db.Project, error) {
	if err := validateProjectInput(input); err != nil {
		return nil, err
	}

	project, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	applyProjectInput(project, input)
	if input.Order != nil {
		project.Order = *input.Order
	}

	if err := s.db.Save(project).Error; err != nil {
		return nil, fmt.Errorf("update project: %w", err)
	}
	return project, nil
}

// Delete 删除项目并返回被删除的记录，便于调用方清理图片
func (s *ProjectService) Delete(id uint) (*db.Project, error) {
	return deleteByID[db.Project](s.db, id, "project")
}

// Move shifts a project one position.
func (s *ProjectService) Move(id uint, dir Direction) error {
	return moveOrdered[db.Project](s.db, id, dir, "project")
}

// Reorder 按给定 ID 顺序重排
func (s *ProjectService) Reorder(ids []uint) error {
	return reorderAll[db.Project](s.db, ids, "project")
}

func applyProjectInput(project *db.Project, input ProjectInput) {
	project.Title = strings.TrimSpace(input.Title)
	project.Description = strings.TrimSpace(input.Description)
	project.Image = strings.TrimSpace(input.Image)
	project.Tags = cleanList(input.Tags)
	project.Categories = cleanList(input.Categories)
	project.Year = strings.TrimSpace(input.Year)
	project.Accomplishment = strings.TrimSpace(input.Accomplishment)
	project.Link1 = optional(input.Links[0])
	project.Link2 = optional(input.Links[1])
	project.Link3 = optional(input.Links[2])
	project.Link4 = optional(input.Links[3])
}

func validateProjectInput(input ProjectInput) error {
	for _, field := range []struct{ name, value string }{
		{"title", input.Title},
		{"description", input.Description},
		{"image", input.Image},
		{"year", input.Year},
	} {
		if err := required(field.name, field.value); err != nil {
			return err
		}
	}
	if utf8.RuneCountInString(strings.TrimSpace(input.Year)) != 4 {
		return invalid("year must have 4 characters")
	}
	return nil
}
