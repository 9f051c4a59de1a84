package action

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/designfolio/internal/cache"
	"github.com/designfolio/internal/metrics"
	"github.com/designfolio/internal/service"
	"github.com/designfolio/internal/storage"
	"go.uber.org/zap"
)

// ErrorKind classifies an expected failure.
type ErrorKind string

const (
	KindValidation  ErrorKind = "validation"
	KindNotFound    ErrorKind = "not_found"
	KindPersistence ErrorKind = "persistence"
	KindStorage     ErrorKind = "storage"
)

// Result is what every mutation returns. Expected failures never surface as
// Go errors past this point.
type Result struct {
	Success bool      `json:"success"`
	ID      uint      `json:"id,omitempty"`
	Error   string    `json:"error,omitempty"`
	Kind    ErrorKind `json:"kind,omitempty"`
}

// OK builds a successful result.
func OK(id uint) Result {
	return Result{Success: true, ID: id}
}

// Fail builds a failed result.
func Fail(kind ErrorKind, message string) Result {
	return Result{Error: message, Kind: kind}
}

// FromValidation converts an input error into a validation result.
func FromValidation(err error) Result {
	return Fail(KindValidation, validationMessage(err))
}

// Images is the storage surface mutations depend on.
type Images interface {
	Upload(ctx context.Context, file storage.File, maxBytes int64) storage.UploadResult
	Delete(ctx context.Context, rawURL string) storage.Result
	Owns(rawURL string) bool
}

// Actions exposes the content mutations. Each one writes through the
// services, invalidates the public home page on success and converts
// failures into a Result.
type Actions struct {
	svc     *service.Set
	images  Images
	pages   cache.Invalidator
	log     *zap.Logger
	metrics *metrics.Metrics
}

// New wires the mutation layer. images, pages and m may be nil.
func New(svc *service.Set, images Images, pages cache.Invalidator, log *zap.Logger, m *metrics.Metrics) *Actions {
	if log == nil {
		log = zap.NewNop()
	}
	return &Actions{svc: svc, images: images, pages: pages, log: log, metrics: m}
}

// Services exposes the read side.
func (a *Actions) Services() *service.Set {
	return a.svc
}

// Section names used in logs, metrics and messages.
const (
	SectionHero        = "hero"
	SectionAbout       = "about"
	SectionSocialLinks = "social-links"
	SectionProjects    = "projects"
	SectionServices    = "services"
	SectionSkills      = "skills"
	SectionTools       = "tools"
	SectionSocial      = "social"
	SectionContact     = "contact"
	SectionFooter      = "footer"
	SectionFooterNav   = "footer-nav"
)

var sectionLabels = map[string]string{
	SectionHero:        "perfil",
	SectionAbout:       "sobre",
	SectionSocialLinks: "link social",
	SectionProjects:    "projeto",
	SectionServices:    "serviço",
	SectionSkills:      "habilidade",
	SectionTools:       "ferramenta",
	SectionSocial:      "item social",
	SectionContact:     "configurações de contato",
	SectionFooter:      "rodapé",
	SectionFooterNav:   "link do rodapé",
}

var operationVerbs = map[string]string{
	"create":  "criar",
	"update":  "atualizar",
	"save":    "salvar",
	"delete":  "excluir",
	"move":    "reordenar",
	"reorder": "reordenar",
}

func (a *Actions) finish(ctx context.Context, section, op string, id uint, err error) Result {
	a.metrics.Mutation(section, op, err == nil)
	if err != nil {
		return a.fail(section, op, err)
	}
	a.invalidate(ctx)
	return OK(id)
}

func (a *Actions) fail(section, op string, err error) Result {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		return Fail(KindValidation, validationMessage(err))
	case errors.Is(err, service.ErrNotFound):
		return Fail(KindNotFound, "Registro não encontrado")
	default:
		a.log.Error("mutation failed",
			zap.String("section", section),
			zap.String("operation", op),
			zap.Error(err),
		)
		return Fail(KindPersistence, fmt.Sprintf("Erro ao %s %s", operationVerbs[op], sectionLabels[section]))
	}
}

func (a *Actions) invalidate(ctx context.Context) {
	if a.pages == nil {
		return
	}
	if err := a.pages.Invalidate(ctx, cache.HomePath); err != nil {
		a.log.Warn("page cache invalidation failed", zap.Error(err))
	}
}

// cleanupImage deletes an object the database no longer references. It is
// best effort: failures are logged and never change the mutation outcome.
// URLs that do not belong to our bucket are left alone.
func (a *Actions) cleanupImage(ctx context.Context, rawURL string) {
	if a.images == nil || strings.TrimSpace(rawURL) == "" || !a.images.Owns(rawURL) {
		return
	}
	res := a.images.Delete(ctx, rawURL)
	a.metrics.Storage("delete", res.Success)
	if !res.Success {
		a.log.Warn("image cleanup failed", zap.String("url", rawURL), zap.String("error", res.Error))
	}
}

func replaced(previous, current string) bool {
	previous = strings.TrimSpace(previous)
	return previous != "" && previous != strings.TrimSpace(current)
}

func validationMessage(err error) string {
	detail := strings.TrimPrefix(err.Error(), service.ErrInvalidInput.Error()+": ")
	if detail == "" || detail == err.Error() {
		return "Dados inválidos"
	}
	return "Dados inválidos: " + detail
}
