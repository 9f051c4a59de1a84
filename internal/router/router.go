package router

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/designfolio/internal/auth"
	"github.com/designfolio/internal/handler"
	"github.com/designfolio/internal/logging"
	"github.com/designfolio/internal/metrics"
	"github.com/designfolio/internal/web"
)

const sessionName = "designfolio_session"

// Options configures the engine around the handlers.
type Options struct {
	SessionSecret  string
	Secure         bool
	AllowedOrigins []string
	Metrics        *metrics.Metrics
	Log            *zap.Logger
}

// SetupRouter 配置 Gin 引擎和路由
func SetupRouter(api *handler.API, opts Options) (*gin.Engine, error) {
	if opts.SessionSecret == "" {
		return nil, errors.New("session secret is required")
	}
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}

	r := gin.New()
	r.Use(logging.Middleware(log), logging.Recovery(log), corsMiddleware(opts.AllowedOrigins))

	store := cookie.NewStore([]byte(opts.SessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   int((24 * time.Hour).Seconds()),
		HttpOnly: true,
		Secure:   opts.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	r.Use(sessions.Sessions(sessionName, store))

	tmpl, err := web.Templates()
	if err != nil {
		return nil, err
	}
	r.SetHTMLTemplate(tmpl)

	r.GET("/", api.ShowHome)
	r.GET("/healthz", api.Health)
	r.GET("/metrics", gin.WrapH(opts.Metrics.Handler()))

	public := r.Group("/api")
	{
		public.GET("/home", api.HomeJSON)
		public.POST("/send", api.SendContact)
	}

	r.GET(auth.LoginPath, api.ShowLoginPage)
	r.POST(auth.LoginPath, api.Login)
	r.POST("/logout", api.Logout)

	admin := r.Group(auth.AdminPath)
	admin.Use(auth.Required())
	{
		admin.GET("", api.ShowDashboard)

		// API路由
		jsonAPI := admin.Group("/api")
		{
			jsonAPI.POST("/upload", api.UploadImage)
			jsonAPI.DELETE("/upload", api.DeleteImage)

			jsonAPI.GET("/:section", api.ListSectionJSON)
			jsonAPI.POST("/:section", api.CreateSectionJSON)
			jsonAPI.POST("/:section/reorder", api.ReorderSectionJSON)
			jsonAPI.PUT("/:section/:id", api.UpdateSectionJSON)
			jsonAPI.DELETE("/:section/:id", api.DeleteSectionJSON)
			jsonAPI.POST("/:section/:id/move", api.MoveSectionJSON)
		}

		admin.GET("/:section", api.ShowSection)
		admin.POST("/:section", api.SubmitSection)
		admin.POST("/:section/:id/delete", api.DeleteSection)
		admin.POST("/:section/:id/move", api.MoveSection)
	}

	return r, nil
}

func corsMiddleware(origins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cors.New(cfg)
}
