package service

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/designfolio/internal/db"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupServiceTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.Migrate(gdb); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return gdb
}

func countRows(t *testing.T, gdb *gorm.DB, model any) int64 {
	t.Helper()
	var count int64
	if err := gdb.Model(model).Count(&count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	return count
}

func TestSingletonsInsertThenUpdateSameRow(t *testing.T) {
	gdb := setupServiceTestDB(t)
	set := NewSet(gdb)

	if hero, err := set.Hero.Get(); err != nil || hero != nil {
		t.Fatalf("expected no hero yet, got %v, %v", hero, err)
	}

	first, err := set.Hero.Save(HeroInput{TitleLine1: "Designing", Name: "Ana", Quotes: []string{"a", " ", "b"}})
	if err != nil {
		t.Fatalf("save hero failed: %v", err)
	}
	second, err := set.Hero.Save(HeroInput{TitleLine1: "Crafting", Name: "Ana Lima"})
	if err != nil {
		t.Fatalf("second save failed: %v", err)
	}
	if first.ID != second.ID {
		t.Fatalf("expected update of row %d, got row %d", first.ID, second.ID)
	}
	if len(first.Quotes) != 2 {
		t.Fatalf("expected blank quote to be dropped, got %#v", first.Quotes)
	}

	if _, err := set.About.Save(AboutInput{Name: "Ana"}); err != nil {
		t.Fatalf("save about failed: %v", err)
	}
	if _, err := set.About.Save(AboutInput{Name: "Ana", City: "Recife"}); err != nil {
		t.Fatalf("save about failed: %v", err)
	}
	if _, err := set.Contact.SaveSettings(ContactSettingsInput{Title: "Fale comigo", RecipientEmail: "ana@example.com"}); err != nil {
		t.Fatalf("save contact failed: %v", err)
	}
	if _, err := set.Contact.SaveSettings(ContactSettingsInput{Title: "Contato", RecipientEmail: "hi@example.com"}); err != nil {
		t.Fatalf("save contact failed: %v", err)
	}
	if _, err := set.Footer.Save(FooterInput{Copyright: "2024"}); err != nil {
		t.Fatalf("save footer failed: %v", err)
	}
	if _, err := set.Footer.Save(FooterInput{Copyright: "2025"}); err != nil {
		t.Fatalf("save footer failed: %v", err)
	}

	for _, model := range []any{&db.Hero{}, &db.About{}, &db.ContactSettings{}, &db.Footer{}} {
		if got := countRows(t, gdb, model); got != 1 {
			t.Fatalf("expected exactly one %T row, got %d", model, got)
		}
	}

	footer, err := set.Footer.Get()
	if err != nil || footer == nil || footer.Copyright != "2025" {
		t.Fatalf("expected updated footer, got %#v, %v", footer, err)
	}
}

func TestAboutDropsBlankParagraphs(t *testing.T) {
	gdb := setupServiceTestDB(t)
	svc := NewAboutService(gdb)

	if _, err := svc.Save(AboutInput{Name: "Ana", Paragraphs: []string{"Primeiro", "   ", "Segundo"}}); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	about, err := svc.Get()
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if len(about.Paragraphs) != 2 {
		t.Fatalf("expected 2 paragraphs, got %#v", about.Paragraphs)
	}

	if _, err := svc.Save(AboutInput{Name: "Ana"}); err != nil {
		t.Fatalf("save without paragraphs failed: %v", err)
	}
	about, _ = svc.Get()
	if about.Paragraphs == nil || len(about.Paragraphs) != 0 {
		t.Fatalf("expected empty paragraph list, got %#v", about.Paragraphs)
	}
}

func validProject(title string) ProjectInput {
	return ProjectInput{
		Title:       title,
		Description: "Case study",
		Image:       "http://localhost:9000/portfolio/a.png",
		Year:        "2024",
	}
}

func TestProjectOrderAppendsAfterMax(t *testing.T) {
	gdb := setupServiceTestDB(t)
	svc := NewProjectService(gdb)

	first, err := svc.Create(validProject("One"))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if first.Order != 1 {
		t.Fatalf("expected first order 1, got %d", first.Order)
	}

	explicit := validProject("Pinned")
	seven := 7
	explicit.Order = &seven
	if _, err := svc.Create(explicit); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	next, err := svc.Create(validProject("Three"))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if next.Order != 8 {
		t.Fatalf("expected max+1 = 8, got %d", next.Order)
	}
}

func TestProjectListsAndLinksRoundTrip(t *testing.T) {
	gdb := setupServiceTestDB(t)
	svc := NewProjectService(gdb)

	input := validProject("Banking app")
	input.Tags = []string{"React", " Design ", ""}
	input.Categories = []string{"Web", "Mobile"}
	input.Links = [4]string{"https://behance.net/x", "", " ", ""}

	created, err := svc.Create(input)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	loaded, err := svc.Get(created.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if strings.Join(loaded.Tags, "|") != "React|Design" {
		t.Fatalf("unexpected tags %#v", loaded.Tags)
	}
	if strings.Join(loaded.Categories, "|") != "Web|Mobile" {
		t.Fatalf("unexpected categories %#v", loaded.Categories)
	}
	if loaded.Link1 == nil || *loaded.Link1 != "https://behance.net/x" {
		t.Fatalf("expected link1 to persist, got %v", loaded.Link1)
	}
	if loaded.Link2 != nil || loaded.Link3 != nil || loaded.Link4 != nil {
		t.Fatal("expected empty links to be stored as null")
	}
}

func TestProjectValidation(t *testing.T) {
	gdb := setupServiceTestDB(t)
	svc := NewProjectService(gdb)

	missing := validProject("")
	if _, err := svc.Create(missing); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected invalid input for missing title, got %v", err)
	}

	badYear := validProject("Year")
	badYear.Year = "24"
	if _, err := svc.Create(badYear); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected invalid input for short year, got %v", err)
	}
}

func TestDeleteMissingReturnsNotFound(t *testing.T) {
	gdb := setupServiceTestDB(t)
	set := NewSet(gdb)

	if _, err := set.Projects.Delete(99); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found for project, got %v", err)
	}
	if err := set.Catalog.DeleteSkill(99); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found for skill, got %v", err)
	}
	if err := set.Footer.DeleteNav(99); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found for footer nav, got %v", err)
	}
	if _, err := set.Catalog.UpdateTool(99, ToolInput{Name: "Figma", Image: "x"}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found for tool update, got %v", err)
	}
}

func TestDeleteReturnsRemovedRow(t *testing.T) {
	gdb := setupServiceTestDB(t)
	svc := NewCatalogService(gdb)

	created, err := svc.CreateTool(ToolInput{Name: "Figma", Image: "http://localhost:9000/portfolio/figma.svg"})
	if err != nil {
		t.Fatalf("create tool failed: %v", err)
	}
	removed, err := svc.DeleteTool(created.ID)
	if err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if removed.Image != created.Image {
		t.Fatalf("expected removed row image, got %q", removed.Image)
	}
	if got := countRows(t, gdb, &db.Tool{}); got != 0 {
		t.Fatalf("expected no tools, got %d", got)
	}
}

func navNames(t *testing.T, svc *FooterService) (string, []int) {
	t.Helper()
	items, err := svc.ListNav()
	if err != nil {
		t.Fatalf("list nav failed: %v", err)
	}
	names := make([]string, 0, len(items))
	orders := make([]int, 0, len(items))
	for _, item := range items {
		names = append(names, item.Name)
		orders = append(orders, item.Order)
	}
	return strings.Join(names, ","), orders
}

func TestFooterNavMoveRenumbers(t *testing.T) {
	gdb := setupServiceTestDB(t)
	svc := NewFooterService(gdb)

	ids := make([]uint, 0, 3)
	for _, name := range []string{"Home", "Projetos", "Contato"} {
		item, err := svc.CreateNav(FooterNavInput{Name: name, Href: "#" + strings.ToLower(name)})
		if err != nil {
			t.Fatalf("create nav failed: %v", err)
		}
		ids = append(ids, item.ID)
	}
	// leave a gap so renumbering is observable
	if err := gdb.Model(&db.FooterNavItem{}).Where("id = ?", ids[2]).Update("sort_order", 10).Error; err != nil {
		t.Fatalf("seed gap failed: %v", err)
	}

	if err := svc.MoveNav(ids[2], Up); err != nil {
		t.Fatalf("move failed: %v", err)
	}
	names, orders := navNames(t, svc)
	if names != "Home,Contato,Projetos" {
		t.Fatalf("unexpected order after move: %s", names)
	}
	for i, order := range orders {
		if order != i+1 {
			t.Fatalf("expected renumbered orders 1..n, got %v", orders)
		}
	}

	if err := svc.MoveNav(ids[0], Up); err != nil {
		t.Fatalf("move past top should be a no-op, got %v", err)
	}
	if err := svc.MoveNav(ids[1], Down); err != nil {
		t.Fatalf("move past bottom should be a no-op, got %v", err)
	}
	if names, _ := navNames(t, svc); names != "Home,Contato,Projetos" {
		t.Fatalf("edge moves changed order: %s", names)
	}

	if err := svc.MoveNav(999, Down); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestFooterNavReorder(t *testing.T) {
	gdb := setupServiceTestDB(t)
	svc := NewFooterService(gdb)

	var ids []uint
	for _, name := range []string{"A", "B", "C"} {
		item, err := svc.CreateNav(FooterNavInput{Name: name, Href: "/" + name})
		if err != nil {
			t.Fatalf("create nav failed: %v", err)
		}
		ids = append(ids, item.ID)
	}

	if err := svc.ReorderNav([]uint{ids[2], ids[0]}); err != nil {
		t.Fatalf("reorder failed: %v", err)
	}
	if names, orders := navNames(t, svc); names != "C,A,B" || orders[2] != 3 {
		t.Fatalf("unexpected reorder result %s %v", names, orders)
	}

	if err := svc.ReorderNav([]uint{ids[0], ids[0]}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected duplicate ids to be rejected, got %v", err)
	}
}

func TestSocialIconMustBeRegistered(t *testing.T) {
	gdb := setupServiceTestDB(t)
	svc := NewSocialService(gdb)

	if _, err := svc.CreateLink(SocialLinkInput{Href: "https://x.dev", Icon: "myspace", Label: "Old"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected unknown icon to be rejected, got %v", err)
	}
	if got := countRows(t, gdb, &db.SocialLink{}); got != 0 {
		t.Fatalf("expected nothing written, got %d rows", got)
	}

	link, err := svc.CreateLink(SocialLinkInput{Href: "https://linkedin.com/in/ana", Icon: " LinkedIn", Label: "LinkedIn"})
	if err != nil {
		t.Fatalf("create link failed: %v", err)
	}
	if link.Icon != "linkedin" || link.Order != 1 {
		t.Fatalf("unexpected link %#v", link)
	}

	if _, err := svc.CreateItem(SocialItemInput{Name: "Dribbble", Description: "Shots", Icon: "dribbble", URL: "https://dribbble.com/ana"}); err != nil {
		t.Fatalf("create item failed: %v", err)
	}
	if _, err := svc.CreateItem(SocialItemInput{Name: "Dribbble", Description: "Shots", Icon: "unknown", URL: "https://dribbble.com/ana"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected unknown icon to be rejected, got %v", err)
	}
}

func TestSkillNamesAreNotUnique(t *testing.T) {
	gdb := setupServiceTestDB(t)
	svc := NewCatalogService(gdb)

	for i := 0; i < 2; i++ {
		if _, err := svc.CreateSkill(SkillInput{Name: "Figma"}); err != nil {
			t.Fatalf("create skill failed: %v", err)
		}
	}
	skills, err := svc.ListSkills()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(skills) != 2 {
		t.Fatalf("expected duplicate skills to be stored, got %d", len(skills))
	}
}

func TestParseDirection(t *testing.T) {
	if dir, err := ParseDirection(" UP "); err != nil || dir != Up {
		t.Fatalf("expected up, got %q %v", dir, err)
	}
	if _, err := ParseDirection("left"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected invalid direction, got %v", err)
	}
}
