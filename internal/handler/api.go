package handler

import (
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/designfolio/internal/action"
	"github.com/designfolio/internal/auth"
	"github.com/designfolio/internal/mail"
	"github.com/designfolio/internal/metrics"
	"github.com/designfolio/internal/site"
)

// Deps are the collaborators the HTTP layer is built from.
type Deps struct {
	Actions *action.Actions
	Site    *site.Site
	Gate    *auth.Gate
	Mailer  mail.Sender
	Log     *zap.Logger
	Metrics *metrics.Metrics

	// ContactTo receives contact mail when the contact settings have no
	// recipient.
	ContactTo   string
	UploadLimit int64
	// ContactLimiter throttles /api/send for the whole process. Nil uses
	// five messages per minute.
	ContactLimiter *rate.Limiter
}

// API bundles shared dependencies for HTTP handlers.
type API struct {
	actions     *action.Actions
	site        *site.Site
	gate        *auth.Gate
	mailer      mail.Sender
	log         *zap.Logger
	metrics     *metrics.Metrics
	contactTo   string
	uploadLimit int64
	limiter     *rate.Limiter
	validate    *validator.Validate
}

// NewAPI constructs a handler set with shared services.
func NewAPI(deps Deps) *API {
	log := deps.Log
	if log == nil {
		log = zap.NewNop()
	}
	limiter := deps.ContactLimiter
	if limiter == nil {
		limiter = rate.NewLimiter(rate.Every(12*time.Second), 5)
	}
	return &API{
		actions:     deps.Actions,
		site:        deps.Site,
		gate:        deps.Gate,
		mailer:      deps.Mailer,
		log:         log,
		metrics:     deps.Metrics,
		contactTo:   deps.ContactTo,
		uploadLimit: deps.UploadLimit,
		limiter:     limiter,
		validate:    newValidator(),
	}
}
