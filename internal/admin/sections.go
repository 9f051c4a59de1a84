package admin

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/designfolio/internal/action"
	"github.com/designfolio/internal/admin/controller"
	"github.com/designfolio/internal/db"
	"github.com/designfolio/internal/service"
)

func messages(created, updated, deleted string) controller.Messages {
	return controller.Messages{
		Created:   created,
		Updated:   updated,
		Deleted:   deleted,
		LoadError: "Erro ao carregar dados",
	}
}

func single[T any](get func() (*T, error)) ([]T, error) {
	row, err := get()
	if err != nil || row == nil {
		return nil, err
	}
	return []T{*row}, nil
}

func itoa(value int) string {
	return strconv.Itoa(value)
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, part := range parts {
		if strings.TrimSpace(part) != "" {
			kept = append(kept, part)
		}
	}
	return strings.Join(kept, sep)
}

var heroSection = &Descriptor[db.Hero, service.HeroInput]{
	meta: Meta{
		Key:       action.SectionHero,
		Title:     "Perfil",
		Singleton: true,
		Fields: []Field{
			{Name: "titleLine1", Label: "Título (linha 1)", Kind: FieldText, Required: true},
			{Name: "titleLine2", Label: "Título (linha 2)", Kind: FieldText},
			{Name: "name", Label: "Nome", Kind: FieldText, Required: true},
			{Name: "imageUrl", Label: "Imagem", Kind: FieldImage},
			{Name: "imageAlt", Label: "Texto alternativo", Kind: FieldText},
			{Name: "quotes", Label: "Frases", Kind: FieldLineList, Hint: "Uma frase por linha"},
		},
	},
	messages: messages("Perfil salvo com sucesso", "Perfil salvo com sucesso", ""),
	list:     func(s *service.Set) ([]db.Hero, error) { return single(s.Hero.Get) },
	id:       func(h *db.Hero) uint { return h.ID },
	row:      func(h *db.Hero) Row { return Row{Title: h.Name, Subtitle: h.TitleLine1, Image: h.ImageURL} },
	values: func(h *db.Hero) Form {
		return Form{
			"titleLine1": h.TitleLine1,
			"titleLine2": h.TitleLine2,
			"name":       h.Name,
			"imageUrl":   h.ImageURL,
			"imageAlt":   h.ImageAlt,
			"quotes":     JoinLines(h.Quotes),
		}
	},
	parse: func(f Form) (service.HeroInput, error) {
		return service.HeroInput{
			TitleLine1: f.Get("titleLine1"),
			TitleLine2: f.Get("titleLine2"),
			Name:       f.Get("name"),
			ImageURL:   f.Get("imageUrl"),
			ImageAlt:   f.Get("imageAlt"),
			Quotes:     SplitLines(f["quotes"]),
		}, nil
	},
	create: func(ctx context.Context, a *action.Actions, in service.HeroInput) action.Result {
		return a.SaveHero(ctx, in)
	},
	update: func(ctx context.Context, a *action.Actions, _ uint, in service.HeroInput) action.Result {
		return a.SaveHero(ctx, in)
	},
}

var aboutSection = &Descriptor[db.About, service.AboutInput]{
	meta: Meta{
		Key:       action.SectionAbout,
		Title:     "Sobre",
		Singleton: true,
		Fields: []Field{
			{Name: "name", Label: "Nome", Kind: FieldText, Required: true},
			{Name: "role", Label: "Cargo", Kind: FieldText},
			{Name: "city", Label: "Cidade", Kind: FieldText},
			{Name: "paragraphs", Label: "Biografia", Kind: FieldLineList, Hint: "Um parágrafo por linha"},
		},
	},
	messages: messages("Sobre salvo com sucesso", "Sobre salvo com sucesso", ""),
	list:     func(s *service.Set) ([]db.About, error) { return single(s.About.Get) },
	id:       func(a *db.About) uint { return a.ID },
	row: func(a *db.About) Row {
		return Row{Title: a.Name, Subtitle: joinNonEmpty(" · ", a.Role, a.City)}
	},
	values: func(a *db.About) Form {
		return Form{"name": a.Name, "role": a.Role, "city": a.City, "paragraphs": JoinLines(a.Paragraphs)}
	},
	parse: func(f Form) (service.AboutInput, error) {
		return service.AboutInput{
			Name:       f.Get("name"),
			City:       f.Get("city"),
			Role:       f.Get("role"),
			Paragraphs: SplitLines(f["paragraphs"]),
		}, nil
	},
	create: func(ctx context.Context, a *action.Actions, in service.AboutInput) action.Result {
		return a.SaveAbout(ctx, in)
	},
	update: func(ctx context.Context, a *action.Actions, _ uint, in service.AboutInput) action.Result {
		return a.SaveAbout(ctx, in)
	},
}

var socialLinkSection = &Descriptor[db.SocialLink, service.SocialLinkInput]{
	meta: Meta{
		Key:   action.SectionSocialLinks,
		Title: "Links sociais",
		Fields: []Field{
			{Name: "label", Label: "Rótulo", Kind: FieldText, Required: true},
			{Name: "href", Label: "URL", Kind: FieldURL, Required: true},
			{Name: "icon", Label: "Ícone", Kind: FieldIcon, Required: true},
			{Name: "order", Label: "Ordem", Kind: FieldNumber, Hint: "Vazio adiciona ao final"},
		},
	},
	messages: messages("Link criado com sucesso", "Link atualizado com sucesso", "Link excluído com sucesso"),
	list:     func(s *service.Set) ([]db.SocialLink, error) { return s.Social.ListLinks() },
	id:       func(l *db.SocialLink) uint { return l.ID },
	row:      func(l *db.SocialLink) Row { return Row{Title: l.Label, Subtitle: l.Href, Icon: l.Icon} },
	values: func(l *db.SocialLink) Form {
		return Form{"label": l.Label, "href": l.Href, "icon": l.Icon, "order": itoa(l.Order)}
	},
	parse: func(f Form) (service.SocialLinkInput, error) {
		order, err := optionalInt(f, "order")
		if err != nil {
			return service.SocialLinkInput{}, err
		}
		return service.SocialLinkInput{Href: f.Get("href"), Icon: f.Get("icon"), Label: f.Get("label"), Order: order}, nil
	},
	create: func(ctx context.Context, a *action.Actions, in service.SocialLinkInput) action.Result {
		return a.CreateSocialLink(ctx, in)
	},
	update: func(ctx context.Context, a *action.Actions, id uint, in service.SocialLinkInput) action.Result {
		return a.UpdateSocialLink(ctx, id, in)
	},
	remove: func(ctx context.Context, a *action.Actions, id uint) action.Result {
		return a.DeleteSocialLink(ctx, id)
	},
	move: func(ctx context.Context, a *action.Actions, id uint, dir service.Direction) action.Result {
		return a.MoveSocialLink(ctx, id, dir)
	},
	reorder: func(ctx context.Context, a *action.Actions, ids []uint) action.Result {
		return a.ReorderSocialLinks(ctx, ids)
	},
}

var projectSection = &Descriptor[db.Project, service.ProjectInput]{
	meta: Meta{
		Key:   action.SectionProjects,
		Title: "Projetos",
		Fields: []Field{
			{Name: "title", Label: "Título", Kind: FieldText, Required: true},
			{Name: "description", Label: "Descrição", Kind: FieldTextarea, Required: true},
			{Name: "image", Label: "Imagem", Kind: FieldImage, Required: true},
			{Name: "year", Label: "Ano", Kind: FieldText, Required: true, Hint: "4 dígitos"},
			{Name: "tags", Label: "Tags", Kind: FieldCommaList, Hint: "Separadas por vírgula"},
			{Name: "categories", Label: "Categorias", Kind: FieldCommaList, Hint: "Separadas por vírgula"},
			{Name: "accomplishment", Label: "Resultados", Kind: FieldTextarea, Hint: "Aceita Markdown"},
			{Name: "link1", Label: "Link 1", Kind: FieldURL},
			{Name: "link2", Label: "Link 2", Kind: FieldURL},
			{Name: "link3", Label: "Link 3", Kind: FieldURL},
			{Name: "link4", Label: "Link 4", Kind: FieldURL},
			{Name: "order", Label: "Ordem", Kind: FieldNumber, Hint: "Vazio adiciona ao final"},
		},
	},
	messages: messages("Projeto criado com sucesso", "Projeto atualizado com sucesso", "Projeto excluído com sucesso"),
	list:     func(s *service.Set) ([]db.Project, error) { return s.Projects.List() },
	id:       func(p *db.Project) uint { return p.ID },
	row: func(p *db.Project) Row {
		return Row{Title: p.Title, Subtitle: joinNonEmpty(" · ", p.Year, JoinComma(p.Categories)), Image: p.Image}
	},
	values: func(p *db.Project) Form {
		return Form{
			"title":          p.Title,
			"description":    p.Description,
			"image":          p.Image,
			"year":           p.Year,
			"tags":           JoinComma(p.Tags),
			"categories":     JoinComma(p.Categories),
			"accomplishment": p.Accomplishment,
			"link1":          deref(p.Link1),
			"link2":          deref(p.Link2),
			"link3":          deref(p.Link3),
			"link4":          deref(p.Link4),
			"order":          itoa(p.Order),
		}
	},
	parse: func(f Form) (service.ProjectInput, error) {
		order, err := optionalInt(f, "order")
		if err != nil {
			return service.ProjectInput{}, err
		}
		input := service.ProjectInput{
			Title:          f.Get("title"),
			Description:    f.Get("description"),
			Image:          f.Get("image"),
			Tags:           SplitComma(f["tags"]),
			Categories:     SplitComma(f["categories"]),
			Year:           f.Get("year"),
			Accomplishment: f.Get("accomplishment"),
			Order:          order,
		}
		for i := range input.Links {
			input.Links[i] = f.Get(fmt.Sprintf("link%d", i+1))
		}
		return input, nil
	},
	create: func(ctx context.Context, a *action.Actions, in service.ProjectInput) action.Result {
		return a.CreateProject(ctx, in)
	},
	update: func(ctx context.Context, a *action.Actions, id uint, in service.ProjectInput) action.Result {
		return a.UpdateProject(ctx, id, in)
	},
	remove: func(ctx context.Context, a *action.Actions, id uint) action.Result { return a.DeleteProject(ctx, id) },
	move: func(ctx context.Context, a *action.Actions, id uint, dir service.Direction) action.Result {
		return a.MoveProject(ctx, id, dir)
	},
	reorder: func(ctx context.Context, a *action.Actions, ids []uint) action.Result {
		return a.ReorderProjects(ctx, ids)
	},
}

var serviceSection = &Descriptor[db.Service, service.ServiceInput]{
	meta: Meta{
		Key:   action.SectionServices,
		Title: "Serviços",
		Fields: []Field{
			{Name: "title", Label: "Título", Kind: FieldText, Required: true},
			{Name: "description", Label: "Descrição", Kind: FieldTextarea, Required: true},
			{Name: "image", Label: "Imagem", Kind: FieldImage, Required: true},
		},
	},
	messages: messages("Serviço criado com sucesso", "Serviço atualizado com sucesso", "Serviço excluído com sucesso"),
	list:     func(s *service.Set) ([]db.Service, error) { return s.Catalog.ListServices() },
	id:       func(s *db.Service) uint { return s.ID },
	row:      func(s *db.Service) Row { return Row{Title: s.Title, Subtitle: s.Description, Image: s.Image} },
	values: func(s *db.Service) Form {
		return Form{"title": s.Title, "description": s.Description, "image": s.Image}
	},
	parse: func(f Form) (service.ServiceInput, error) {
		return service.ServiceInput{Title: f.Get("title"), Description: f.Get("description"), Image: f.Get("image")}, nil
	},
	create: func(ctx context.Context, a *action.Actions, in service.ServiceInput) action.Result {
		return a.CreateService(ctx, in)
	},
	update: func(ctx context.Context, a *action.Actions, id uint, in service.ServiceInput) action.Result {
		return a.UpdateService(ctx, id, in)
	},
	remove: func(ctx context.Context, a *action.Actions, id uint) action.Result { return a.DeleteService(ctx, id) },
}

var skillSection = &Descriptor[db.Skill, service.SkillInput]{
	meta: Meta{
		Key:    action.SectionSkills,
		Title:  "Habilidades",
		Fields: []Field{{Name: "name", Label: "Nome", Kind: FieldText, Required: true}},
	},
	messages: messages("Habilidade criada com sucesso", "Habilidade atualizada com sucesso", "Habilidade excluída com sucesso"),
	list:     func(s *service.Set) ([]db.Skill, error) { return s.Catalog.ListSkills() },
	id:       func(s *db.Skill) uint { return s.ID },
	row:      func(s *db.Skill) Row { return Row{Title: s.Name} },
	values:   func(s *db.Skill) Form { return Form{"name": s.Name} },
	parse: func(f Form) (service.SkillInput, error) {
		return service.SkillInput{Name: f.Get("name")}, nil
	},
	create: func(ctx context.Context, a *action.Actions, in service.SkillInput) action.Result {
		return a.CreateSkill(ctx, in)
	},
	update: func(ctx context.Context, a *action.Actions, id uint, in service.SkillInput) action.Result {
		return a.UpdateSkill(ctx, id, in)
	},
	remove: func(ctx context.Context, a *action.Actions, id uint) action.Result { return a.DeleteSkill(ctx, id) },
}

var toolSection = &Descriptor[db.Tool, service.ToolInput]{
	meta: Meta{
		Key:   action.SectionTools,
		Title: "Ferramentas",
		Fields: []Field{
			{Name: "name", Label: "Nome", Kind: FieldText, Required: true},
			{Name: "image", Label: "Logo", Kind: FieldImage, Required: true},
		},
	},
	messages: messages("Ferramenta criada com sucesso", "Ferramenta atualizada com sucesso", "Ferramenta excluída com sucesso"),
	list:     func(s *service.Set) ([]db.Tool, error) { return s.Catalog.ListTools() },
	id:       func(t *db.Tool) uint { return t.ID },
	row:      func(t *db.Tool) Row { return Row{Title: t.Name, Image: t.Image} },
	values:   func(t *db.Tool) Form { return Form{"name": t.Name, "image": t.Image} },
	parse: func(f Form) (service.ToolInput, error) {
		return service.ToolInput{Name: f.Get("name"), Image: f.Get("image")}, nil
	},
	create: func(ctx context.Context, a *action.Actions, in service.ToolInput) action.Result {
		return a.CreateTool(ctx, in)
	},
	update: func(ctx context.Context, a *action.Actions, id uint, in service.ToolInput) action.Result {
		return a.UpdateTool(ctx, id, in)
	},
	remove: func(ctx context.Context, a *action.Actions, id uint) action.Result { return a.DeleteTool(ctx, id) },
}

var socialSection = &Descriptor[db.SocialItem, service.SocialItemInput]{
	meta: Meta{
		Key:   action.SectionSocial,
		Title: "Redes sociais",
		Fields: []Field{
			{Name: "name", Label: "Nome", Kind: FieldText, Required: true},
			{Name: "description", Label: "Descrição", Kind: FieldTextarea, Required: true},
			{Name: "icon", Label: "Ícone", Kind: FieldIcon, Required: true},
			{Name: "url", Label: "URL", Kind: FieldURL, Required: true},
		},
	},
	messages: messages("Rede social criada com sucesso", "Rede social atualizada com sucesso", "Rede social excluída com sucesso"),
	list:     func(s *service.Set) ([]db.SocialItem, error) { return s.Social.ListItems() },
	id:       func(i *db.SocialItem) uint { return i.ID },
	row:      func(i *db.SocialItem) Row { return Row{Title: i.Name, Subtitle: i.URL, Icon: i.Icon} },
	values: func(i *db.SocialItem) Form {
		return Form{"name": i.Name, "description": i.Description, "icon": i.Icon, "url": i.URL}
	},
	parse: func(f Form) (service.SocialItemInput, error) {
		return service.SocialItemInput{Name: f.Get("name"), Description: f.Get("description"), Icon: f.Get("icon"), URL: f.Get("url")}, nil
	},
	create: func(ctx context.Context, a *action.Actions, in service.SocialItemInput) action.Result {
		return a.CreateSocialItem(ctx, in)
	},
	update: func(ctx context.Context, a *action.Actions, id uint, in service.SocialItemInput) action.Result {
		return a.UpdateSocialItem(ctx, id, in)
	},
	remove: func(ctx context.Context, a *action.Actions, id uint) action.Result {
		return a.DeleteSocialItem(ctx, id)
	},
}

var contactSection = &Descriptor[db.ContactSettings, service.ContactSettingsInput]{
	meta: Meta{
		Key:       action.SectionContact,
		Title:     "Contato",
		Singleton: true,
		Fields: []Field{
			{Name: "title", Label: "Título", Kind: FieldText, Required: true},
			{Name: "recipientEmail", Label: "E-mail de destino", Kind: FieldEmail, Required: true},
			{Name: "senderName", Label: "Nome do remetente", Kind: FieldText},
			{Name: "senderEmail", Label: "E-mail do remetente", Kind: FieldEmail},
			{Name: "subjectPrefix", Label: "Prefixo do assunto", Kind: FieldText},
		},
	},
	messages: messages("Contato salvo com sucesso", "Contato salvo com sucesso", ""),
	list:     func(s *service.Set) ([]db.ContactSettings, error) { return single(s.Contact.Settings) },
	id:       func(c *db.ContactSettings) uint { return c.ID },
	row:      func(c *db.ContactSettings) Row { return Row{Title: c.Title, Subtitle: c.RecipientEmail} },
	values: func(c *db.ContactSettings) Form {
		return Form{
			"title":          c.Title,
			"recipientEmail": c.RecipientEmail,
			"senderName":     c.SenderName,
			"senderEmail":    c.SenderEmail,
			"subjectPrefix":  c.SubjectPrefix,
		}
	},
	parse: func(f Form) (service.ContactSettingsInput, error) {
		return service.ContactSettingsInput{
			Title:          f.Get("title"),
			RecipientEmail: f.Get("recipientEmail"),
			SenderName:     f.Get("senderName"),
			SenderEmail:    f.Get("senderEmail"),
			SubjectPrefix:  f.Get("subjectPrefix"),
		}, nil
	},
	create: func(ctx context.Context, a *action.Actions, in service.ContactSettingsInput) action.Result {
		return a.SaveContactSettings(ctx, in)
	},
	update: func(ctx context.Context, a *action.Actions, _ uint, in service.ContactSettingsInput) action.Result {
		return a.SaveContactSettings(ctx, in)
	},
}

var footerSection = &Descriptor[db.Footer, service.FooterInput]{
	meta: Meta{
		Key:       action.SectionFooter,
		Title:     "Rodapé",
		Singleton: true,
		Fields:    []Field{{Name: "copyright", Label: "Copyright", Kind: FieldText, Required: true}},
	},
	messages: messages("Rodapé salvo com sucesso", "Rodapé salvo com sucesso", ""),
	list:     func(s *service.Set) ([]db.Footer, error) { return single(s.Footer.Get) },
	id:       func(f *db.Footer) uint { return f.ID },
	row:      func(f *db.Footer) Row { return Row{Title: f.Copyright} },
	values:   func(f *db.Footer) Form { return Form{"copyright": f.Copyright} },
	parse: func(f Form) (service.FooterInput, error) {
		return service.FooterInput{Copyright: f.Get("copyright")}, nil
	},
	create: func(ctx context.Context, a *action.Actions, in service.FooterInput) action.Result {
		return a.SaveFooter(ctx, in)
	},
	update: func(ctx context.Context, a *action.Actions, _ uint, in service.FooterInput) action.Result {
		return a.SaveFooter(ctx, in)
	},
}

var footerNavSection = &Descriptor[db.FooterNavItem, service.FooterNavInput]{
	meta: Meta{
		Key:   action.SectionFooterNav,
		Title: "Navegação do rodapé",
		Fields: []Field{
			{Name: "name", Label: "Nome", Kind: FieldText, Required: true},
			{Name: "href", Label: "Link", Kind: FieldText, Required: true, Hint: "URL ou âncora, ex.: #projetos"},
			{Name: "order", Label: "Ordem", Kind: FieldNumber, Hint: "Vazio adiciona ao final"},
		},
	},
	messages: messages("Link criado com sucesso", "Link atualizado com sucesso", "Link excluído com sucesso"),
	list:     func(s *service.Set) ([]db.FooterNavItem, error) { return s.Footer.ListNav() },
	id:       func(n *db.FooterNavItem) uint { return n.ID },
	row:      func(n *db.FooterNavItem) Row { return Row{Title: n.Name, Subtitle: n.Href} },
	values: func(n *db.FooterNavItem) Form {
		return Form{"name": n.Name, "href": n.Href, "order": itoa(n.Order)}
	},
	parse: func(f Form) (service.FooterNavInput, error) {
		order, err := optionalInt(f, "order")
		if err != nil {
			return service.FooterNavInput{}, err
		}
		return service.FooterNavInput{Name: f.Get("name"), Href: f.Get("href"), Order: order}, nil
	},
	create: func(ctx context.Context, a *action.Actions, in service.FooterNavInput) action.Result {
		return a.CreateFooterNav(ctx, in)
	},
	update: func(ctx context.Context, a *action.Actions, id uint, in service.FooterNavInput) action.Result {
		return a.UpdateFooterNav(ctx, id, in)
	},
	remove: func(ctx context.Context, a *action.Actions, id uint) action.Result { return a.DeleteFooterNav(ctx, id) },
	move: func(ctx context.Context, a *action.Actions, id uint, dir service.Direction) action.Result {
		return a.MoveFooterNav(ctx, id, dir)
	},
	reorder: func(ctx context.Context, a *action.Actions, ids []uint) action.Result {
		return a.ReorderFooterNav(ctx, ids)
	},
}

var registry = []Section{
	heroSection,
	aboutSection,
	socialLinkSection,
	projectSection,
	serviceSection,
	skillSection,
	toolSection,
	socialSection,
	contactSection,
	footerSection,
	footerNavSection,
}

// Sections lists every editable section in dashboard order.
func Sections() []Section {
	return append([]Section(nil), registry...)
}

// Lookup finds a section by its URL key.
func Lookup(key string) (Section, bool) {
	for _, section := range registry {
		if section.Meta().Key == key {
			return section, true
		}
	}
	return nil, false
}
