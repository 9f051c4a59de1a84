package action

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/designfolio/internal/db"
	"github.com/designfolio/internal/service"
	"github.com/designfolio/internal/storage"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const bucketPrefix = "http://localhost:9000/portfolio/"

type fakeImages struct {
	deleteErr string
	deleted   []string
	uploads   int
}

func (f *fakeImages) Upload(_ context.Context, file storage.File, _ int64) storage.UploadResult {
	f.uploads++
	if file.ContentType == "text/plain" {
		return storage.UploadResult{Error: "Tipo de arquivo não suportado"}
	}
	return storage.UploadResult{Success: true, URL: bucketPrefix + "new.png", Width: 10, Height: 20}
}

func (f *fakeImages) Delete(_ context.Context, rawURL string) storage.Result {
	f.deleted = append(f.deleted, rawURL)
	if f.deleteErr != "" {
		return storage.Result{Error: f.deleteErr}
	}
	return storage.Result{Success: true}
}

func (f *fakeImages) Owns(rawURL string) bool {
	return strings.HasPrefix(rawURL, bucketPrefix)
}

type recordingPages struct {
	paths []string
	err   error
}

func (r *recordingPages) Invalidate(_ context.Context, paths ...string) error {
	r.paths = append(r.paths, paths...)
	return r.err
}

type fixture struct {
	gdb     *gorm.DB
	actions *Actions
	images  *fakeImages
	pages   *recordingPages
}

func setup(t *testing.T) fixture {
	t.Helper()
	name := strings.NewReplacer("/", "_").Replace(t.Name())
	gdb, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name)), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gdb))
	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			sqlDB.Close()
		}
	})

	images := &fakeImages{}
	pages := &recordingPages{}
	return fixture{
		gdb:     gdb,
		actions: New(service.NewSet(gdb), images, pages, nil, nil),
		images:  images,
		pages:   pages,
	}
}

func project(image string) service.ProjectInput {
	return service.ProjectInput{Title: "App", Description: "Case", Image: image, Year: "2024"}
}

func TestSuccessfulMutationInvalidatesHome(t *testing.T) {
	f := setup(t)

	res := f.actions.CreateSkill(context.Background(), service.SkillInput{Name: "Figma"})

	require.True(t, res.Success)
	require.NotZero(t, res.ID)
	require.Equal(t, []string{"/"}, f.pages.paths)
}

func TestValidationFailureDoesNotInvalidate(t *testing.T) {
	f := setup(t)

	res := f.actions.CreateProject(context.Background(), service.ProjectInput{Title: "No image"})

	require.False(t, res.Success)
	require.Equal(t, KindValidation, res.Kind)
	require.Contains(t, res.Error, "Dados inválidos")
	require.Empty(t, f.pages.paths)
}

func TestDeleteMissingReturnsResult(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	for _, res := range []Result{
		f.actions.DeleteProject(ctx, 42),
		f.actions.DeleteSkill(ctx, 42),
		f.actions.DeleteFooterNav(ctx, 42),
		f.actions.DeleteSocialItem(ctx, 42),
		f.actions.UpdateTool(ctx, 42, service.ToolInput{Name: "x", Image: "y"}),
	} {
		require.False(t, res.Success)
		require.Equal(t, KindNotFound, res.Kind)
		require.NotEmpty(t, res.Error)
	}
	require.Empty(t, f.images.deleted)
}

func TestPersistenceFailureUsesGenericMessage(t *testing.T) {
	f := setup(t)
	require.NoError(t, f.gdb.Migrator().DropTable(&db.Project{}))

	res := f.actions.CreateProject(context.Background(), project(bucketPrefix+"a.png"))

	require.False(t, res.Success)
	require.Equal(t, KindPersistence, res.Kind)
	require.Equal(t, "Erro ao criar projeto", res.Error)
}

func TestDeleteProjectRemovesRowThenImage(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	f.images.deleteErr = "Erro ao remover arquivo"

	created := f.actions.CreateProject(ctx, project(bucketPrefix+"cover.png"))
	require.True(t, created.Success)

	res := f.actions.DeleteProject(ctx, created.ID)

	require.True(t, res.Success, "storage failure must not fail the delete")
	require.Equal(t, []string{bucketPrefix + "cover.png"}, f.images.deleted)
	var count int64
	require.NoError(t, f.gdb.Model(&db.Project{}).Count(&count).Error)
	require.Zero(t, count)
}

func TestDeleteSkipsForeignImages(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	created := f.actions.CreateTool(ctx, service.ToolInput{Name: "Figma", Image: "https://cdn.example.com/figma.svg"})
	require.True(t, created.Success)

	require.True(t, f.actions.DeleteTool(ctx, created.ID).Success)
	require.Empty(t, f.images.deleted)
}

func TestUpdateRemovesReplacedImage(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	created := f.actions.CreateService(ctx, service.ServiceInput{Title: "UX", Description: "Research", Image: bucketPrefix + "old.png"})
	require.True(t, created.Success)

	same := f.actions.UpdateService(ctx, created.ID, service.ServiceInput{Title: "UX Research", Description: "Research", Image: bucketPrefix + "old.png"})
	require.True(t, same.Success)
	require.Empty(t, f.images.deleted)

	changed := f.actions.UpdateService(ctx, created.ID, service.ServiceInput{Title: "UX", Description: "Research", Image: bucketPrefix + "new.png"})
	require.True(t, changed.Success)
	require.Equal(t, []string{bucketPrefix + "old.png"}, f.images.deleted)
}

func TestSaveHeroReplacesImage(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	first := f.actions.SaveHero(ctx, service.HeroInput{TitleLine1: "Olá", Name: "Ana", ImageURL: bucketPrefix + "a.png"})
	require.True(t, first.Success)
	second := f.actions.SaveHero(ctx, service.HeroInput{TitleLine1: "Olá", Name: "Ana", ImageURL: bucketPrefix + "b.png"})
	require.True(t, second.Success)

	require.Equal(t, first.ID, second.ID)
	require.Equal(t, []string{bucketPrefix + "a.png"}, f.images.deleted)
}

func TestInvalidationFailureStillSucceeds(t *testing.T) {
	f := setup(t)
	f.pages.err = errors.New("redis down")

	res := f.actions.SaveFooter(context.Background(), service.FooterInput{Copyright: "© 2025"})

	require.True(t, res.Success)
}

func TestMoveFooterNavPastEdgeIsNoop(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	first := f.actions.CreateFooterNav(ctx, service.FooterNavInput{Name: "Início", Href: "#home"})
	require.True(t, first.Success)

	res := f.actions.MoveFooterNav(ctx, first.ID, service.Up)
	require.True(t, res.Success)

	missing := f.actions.MoveFooterNav(ctx, 999, service.Down)
	require.Equal(t, KindNotFound, missing.Kind)
}

func TestUploadImageMapsStorageErrors(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	bad := f.actions.UploadImage(ctx, storage.File{Name: "a.txt", ContentType: "text/plain"}, 0)
	require.False(t, bad.Success)
	require.Equal(t, KindStorage, bad.Kind)

	good := f.actions.UploadImage(ctx, storage.File{Name: "a.png", ContentType: "image/png"}, 0)
	require.True(t, good.Success)
	require.Equal(t, bucketPrefix+"new.png", good.URL)
	require.Empty(t, f.pages.paths)
}

func TestNilImagesReportsStorageKind(t *testing.T) {
	f := setup(t)
	actions := New(f.actions.Services(), nil, nil, nil, nil)

	res := actions.DeleteImage(context.Background(), bucketPrefix+"a.png")
	require.Equal(t, KindStorage, res.Kind)
}

func TestReorderProjectsInvalidatesHome(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	var ids []uint
	for i := 0; i < 3; i++ {
		res := f.actions.CreateProject(ctx, project(bucketPrefix+"p.png"))
		require.True(t, res.Success)
		ids = append(ids, res.ID)
	}
	f.pages.paths = nil

	res := f.actions.ReorderProjects(ctx, []uint{ids[1], ids[2]})
	require.True(t, res.Success)
	require.Equal(t, []string{"/"}, f.pages.paths)

	projects, err := f.actions.Services().Projects.List()
	require.NoError(t, err)
	require.Equal(t, []uint{ids[1], ids[2], ids[0]}, []uint{projects[0].ID, projects[1].ID, projects[2].ID})

	f.pages.paths = nil
	res = f.actions.ReorderProjects(ctx, []uint{ids[0], ids[0]})
	require.False(t, res.Success)
	require.Equal(t, KindValidation, res.Kind)
	require.Empty(t, f.pages.paths)
}
