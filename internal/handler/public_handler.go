package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ShowHome renders the public portfolio page.
func (a *API) ShowHome(c *gin.Context) {
	snap, err := a.site.Home(c.Request.Context())
	if err != nil {
		a.log.Error("load home failed", zap.Error(err))
		a.renderError(c, http.StatusInternalServerError, "Não foi possível carregar a página")
		return
	}

	title := "Portfolio"
	if snap.Hero != nil && snap.Hero.Name != "" {
		title = snap.Hero.Name
	}
	c.HTML(http.StatusOK, "home.html", gin.H{
		"title": title,
		"site":  snap,
		"year":  time.Now().Year(),
	})
}

// HomeJSON returns the same snapshot the home page renders.
func (a *API) HomeJSON(c *gin.Context) {
	snap, err := a.site.Home(c.Request.Context())
	if err != nil {
		a.log.Error("load home failed", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Erro ao carregar dados")
		return
	}
	c.JSON(http.StatusOK, snap)
}

// Health reports liveness.
func (a *API) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
