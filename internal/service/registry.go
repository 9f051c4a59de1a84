package service

import "gorm.io/gorm"

// Set bundles every content service over one database handle.
type Set struct {
	Hero     *HeroService
	About    *AboutService
	Social   *SocialService
	Projects *ProjectService
	Catalog  *CatalogService
	Contact  *ContactService
	Footer   *FooterService
}

// NewSet wires all services to gdb.
func NewSet(gdb *gorm.DB) *Set {
	return &Set{
		Hero:     NewHeroService(gdb),
		About:    NewAboutService(gdb),
		Social:   NewSocialService(gdb),
		Projects: NewProjectService(gdb),
		Catalog:  NewCatalogService(gdb),
		Contact:  NewContactService(gdb),
		Footer:   NewFooterService(gdb),
	}
}
