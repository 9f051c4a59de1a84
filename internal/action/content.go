package action

import (
	"context"

	"github.com/designfolio/internal/service"
)

// SaveHero upserts the hero. A replaced image is removed from storage.
func (a *Actions) SaveHero(ctx context.Context, input service.HeroInput) Result {
	previous, err := a.svc.Hero.Get()
	if err != nil {
		return a.finish(ctx, SectionHero, "save", 0, err)
	}
	hero, err := a.svc.Hero.Save(input)
	if err != nil {
		return a.finish(ctx, SectionHero, "save", 0, err)
	}
	if previous != nil && replaced(previous.ImageURL, hero.ImageURL) {
		a.cleanupImage(ctx, previous.ImageURL)
	}
	return a.finish(ctx, SectionHero, "save", hero.ID, nil)
}

// SaveAbout upserts the biography.
func (a *Actions) SaveAbout(ctx context.Context, input service.AboutInput) Result {
	about, err := a.svc.About.Save(input)
	if err != nil {
		return a.finish(ctx, SectionAbout, "save", 0, err)
	}
	return a.finish(ctx, SectionAbout, "save", about.ID, nil)
}

// SaveContactSettings upserts the contact settings.
func (a *Actions) SaveContactSettings(ctx context.Context, input service.ContactSettingsInput) Result {
	settings, err := a.svc.Contact.SaveSettings(input)
	if err != nil {
		return a.finish(ctx, SectionContact, "save", 0, err)
	}
	return a.finish(ctx, SectionContact, "save", settings.ID, nil)
}

// SaveFooter upserts the copyright line.
func (a *Actions) SaveFooter(ctx context.Context, input service.FooterInput) Result {
	footer, err := a.svc.Footer.Save(input)
	if err != nil {
		return a.finish(ctx, SectionFooter, "save", 0, err)
	}
	return a.finish(ctx, SectionFooter, "save", footer.ID, nil)
}

func (a *Actions) CreateSocialLink(ctx context.Context, input service.SocialLinkInput) Result {
	link, err := a.svc.Social.CreateLink(input)
	if err != nil {
		return a.finish(ctx, SectionSocialLinks, "create", 0, err)
	}
	return a.finish(ctx, SectionSocialLinks, "create", link.ID, nil)
}

func (a *Actions) UpdateSocialLink(ctx context.Context, id uint, input service.SocialLinkInput) Result {
	_, err := a.svc.Social.UpdateLink(id, input)
	return a.finish(ctx, SectionSocialLinks, "update", id, err)
}

func (a *Actions) DeleteSocialLink(ctx context.Context, id uint) Result {
	return a.finish(ctx, SectionSocialLinks, "delete", id, a.svc.Social.DeleteLink(id))
}

func (a *Actions) MoveSocialLink(ctx context.Context, id uint, dir service.Direction) Result {
	return a.finish(ctx, SectionSocialLinks, "move", id, a.svc.Social.MoveLink(id, dir))
}

func (a *Actions) ReorderSocialLinks(ctx context.Context, ids []uint) Result {
	return a.finish(ctx, SectionSocialLinks, "reorder", 0, a.svc.Social.ReorderLinks(ids))
}

func (a *Actions) CreateProject(ctx context.Context, input service.ProjectInput) Result {
	project, err := a.svc.Projects.Create(input)
	if err != nil {
		return a.finish(ctx, SectionProjects, "create", 0, err)
	}
	return a.finish(ctx, SectionProjects, "create", project.ID, nil)
}

// UpdateProject edits a project and drops its previous cover when it changed.
func (a *Actions) UpdateProject(ctx context.Context, id uint, input service.ProjectInput) Result {
	previous, err := a.svc.Projects.Get(id)
	if err != nil {
		return a.finish(ctx, SectionProjects, "update", id, err)
	}
	project, err := a.svc.Projects.Update(id, input)
	if err != nil {
		return a.finish(ctx, SectionProjects, "update", id, err)
	}
	if replaced(previous.Image, project.Image) {
		a.cleanupImage(ctx, previous.Image)
	}
	return a.finish(ctx, SectionProjects, "update", id, nil)
}

// DeleteProject removes the row first, then its image.
func (a *Actions) DeleteProject(ctx context.Context, id uint) Result {
	removed, err := a.svc.Projects.Delete(id)
	if err != nil {
		return a.finish(ctx, SectionProjects, "delete", id, err)
	}
	a.cleanupImage(ctx, removed.Image)
	return a.finish(ctx, SectionProjects, "delete", id, nil)
}

func (a *Actions) MoveProject(ctx context.Context, id uint, dir service.Direction) Result {
	return a.finish(ctx, SectionProjects, "move", id, a.svc.Projects.Move(id, dir))
}

// ReorderProjects puts the listed projects first, in that order.
func (a *Actions) ReorderProjects(ctx context.Context, ids []uint) Result {
	return a.finish(ctx, SectionProjects, "reorder", 0, a.svc.Projects.Reorder(ids))
}

func (a *Actions) CreateService(ctx context.Context, input service.ServiceInput) Result {
	item, err := a.svc.Catalog.CreateService(input)
	if err != nil {
		return a.finish(ctx, SectionServices, "create", 0, err)
	}
	return a.finish(ctx, SectionServices, "create", item.ID, nil)
}

func (a *Actions) UpdateService(ctx context.Context, id uint, input service.ServiceInput) Result {
	previous, err := a.svc.Catalog.GetService(id)
	if err != nil {
		return a.finish(ctx, SectionServices, "update", id, err)
	}
	item, err := a.svc.Catalog.UpdateService(id, input)
	if err != nil {
		return a.finish(ctx, SectionServices, "update", id, err)
	}
	if replaced(previous.Image, item.Image) {
		a.cleanupImage(ctx, previous.Image)
	}
	return a.finish(ctx, SectionServices, "update", id, nil)
}

func (a *Actions) DeleteService(ctx context.Context, id uint) Result {
	removed, err := a.svc.Catalog.DeleteService(id)
	if err != nil {
		return a.finish(ctx, SectionServices, "delete", id, err)
	}
	a.cleanupImage(ctx, removed.Image)
	return a.finish(ctx, SectionServices, "delete", id, nil)
}

func (a *Actions) CreateSkill(ctx context.Context, input service.SkillInput) Result {
	skill, err := a.svc.Catalog.CreateSkill(input)
	if err != nil {
		return a.finish(ctx, SectionSkills, "create", 0, err)
	}
	return a.finish(ctx, SectionSkills, "create", skill.ID, nil)
}

func (a *Actions) UpdateSkill(ctx context.Context, id uint, input service.SkillInput) Result {
	_, err := a.svc.Catalog.UpdateSkill(id, input)
	return a.finish(ctx, SectionSkills, "update", id, err)
}

func (a *Actions) DeleteSkill(ctx context.Context, id uint) Result {
	return a.finish(ctx, SectionSkills, "delete", id, a.svc.Catalog.DeleteSkill(id))
}

func (a *Actions) CreateTool(ctx context.Context, input service.ToolInput) Result {
	tool, err := a.svc.Catalog.CreateTool(input)
	if err != nil {
		return a.finish(ctx, SectionTools, "create", 0, err)
	}
	return a.finish(ctx, SectionTools, "create", tool.ID, nil)
}

func (a *Actions) UpdateTool(ctx context.Context, id uint, input service.ToolInput) Result {
	previous, err := a.svc.Catalog.GetTool(id)
	if err != nil {
		return a.finish(ctx, SectionTools, "update", id, err)
	}
	tool, err := a.svc.Catalog.UpdateTool(id, input)
	if err != nil {
		return a.finish(ctx, SectionTools, "update", id, err)
	}
	if replaced(previous.Image, tool.Image) {
		a.cleanupImage(ctx, previous.Image)
	}
	return a.finish(ctx, SectionTools, "update", id, nil)
}

func (a *Actions) DeleteTool(ctx context.Context, id uint) Result {
	removed, err := a.svc.Catalog.DeleteTool(id)
	if err != nil {
		return a.finish(ctx, SectionTools, "delete", id, err)
	}
	a.cleanupImage(ctx, removed.Image)
	return a.finish(ctx, SectionTools, "delete", id, nil)
}

func (a *Actions) CreateSocialItem(ctx context.Context, input service.SocialItemInput) Result {
	item, err := a.svc.Social.CreateItem(input)
	if err != nil {
		return a.finish(ctx, SectionSocial, "create", 0, err)
	}
	return a.finish(ctx, SectionSocial, "create", item.ID, nil)
}

func (a *Actions) UpdateSocialItem(ctx context.Context, id uint, input service.SocialItemInput) Result {
	_, err := a.svc.Social.UpdateItem(id, input)
	return a.finish(ctx, SectionSocial, "update", id, err)
}

func (a *Actions) DeleteSocialItem(ctx context.Context, id uint) Result {
	return a.finish(ctx, SectionSocial, "delete", id, a.svc.Social.DeleteItem(id))
}

func (a *Actions) CreateFooterNav(ctx context.Context, input service.FooterNavInput) Result {
	item, err := a.svc.Footer.CreateNav(input)
	if err != nil {
		return a.finish(ctx, SectionFooterNav, "create", 0, err)
	}
	return a.finish(ctx, SectionFooterNav, "create", item.ID, nil)
}

func (a *Actions) UpdateFooterNav(ctx context.Context, id uint, input service.FooterNavInput) Result {
	_, err := a.svc.Footer.UpdateNav(id, input)
	return a.finish(ctx, SectionFooterNav, "update", id, err)
}

func (a *Actions) DeleteFooterNav(ctx context.Context, id uint) Result {
	return a.finish(ctx, SectionFooterNav, "delete", id, a.svc.Footer.DeleteNav(id))
}

// MoveFooterNav swaps an entry with its neighbour. Moving past either end
// succeeds without changes.
func (a *Actions) MoveFooterNav(ctx context.Context, id uint, dir service.Direction) Result {
	return a.finish(ctx, SectionFooterNav, "move", id, a.svc.Footer.MoveNav(id, dir))
}

// ReorderFooterNav renumbers the navigation. Entries not listed keep their
// relative order after the listed ones.
func (a *Actions) ReorderFooterNav(ctx context.Context, ids []uint) Result {
	return a.finish(ctx, SectionFooterNav, "reorder", 0, a.svc.Footer.ReorderNav(ids))
}
