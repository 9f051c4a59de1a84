package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/designfolio/internal/action"
	"github.com/designfolio/internal/admin"
	"github.com/designfolio/internal/service"
)

func (a *API) lookupSectionJSON(c *gin.Context) (admin.Section, bool) {
	section, ok := admin.Lookup(c.Param("section"))
	if !ok {
		respondResult(c, action.Fail(action.KindNotFound, "Seção não encontrada"))
		return nil, false
	}
	return section, true
}

func bindForm(c *gin.Context) (admin.Form, bool) {
	var body map[string]any
	if !bindJSON(c, &body, "JSON inválido") {
		return nil, false
	}
	return admin.FormFromJSON(body), true
}

// ListSectionJSON returns the rows of a section, or the singleton row.
func (a *API) ListSectionJSON(c *gin.Context) {
	section, ok := a.lookupSectionJSON(c)
	if !ok {
		return
	}
	items, err := section.Items(c.Request.Context(), a.actions)
	if err != nil {
		a.log.Error("load admin section failed", zap.String("section", section.Meta().Key), zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Erro ao carregar dados")
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": items})
}

// CreateSectionJSON creates a row, or saves a singleton.
func (a *API) CreateSectionJSON(c *gin.Context) {
	section, ok := a.lookupSectionJSON(c)
	if !ok {
		return
	}
	form, ok := bindForm(c)
	if !ok {
		return
	}
	respondResult(c, section.Create(c.Request.Context(), a.actions, form))
}

// UpdateSectionJSON updates the row with :id.
func (a *API) UpdateSectionJSON(c *gin.Context) {
	section, ok := a.lookupSectionJSON(c)
	if !ok {
		return
	}
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondResult(c, action.Fail(action.KindValidation, "ID inválido"))
		return
	}
	form, ok := bindForm(c)
	if !ok {
		return
	}
	respondResult(c, section.Update(c.Request.Context(), a.actions, id, form))
}

// DeleteSectionJSON deletes the row with :id.
func (a *API) DeleteSectionJSON(c *gin.Context) {
	section, ok := a.lookupSectionJSON(c)
	if !ok {
		return
	}
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondResult(c, action.Fail(action.KindValidation, "ID inválido"))
		return
	}
	res := section.Delete(c.Request.Context(), a.actions, discardNotifier{}, id)
	respondResult(c, res)
}

type moveRequest struct {
	Direction string `json:"direction"`
}

// MoveSectionJSON moves the row with :id up or down. The direction comes
// from ?dir= or a {"direction"} body.
func (a *API) MoveSectionJSON(c *gin.Context) {
	section, ok := a.lookupSectionJSON(c)
	if !ok {
		return
	}
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondResult(c, action.Fail(action.KindValidation, "ID inválido"))
		return
	}

	raw := c.Query("dir")
	if raw == "" {
		var req moveRequest
		if c.Request.ContentLength != 0 && !bindJSON(c, &req, "JSON inválido") {
			return
		}
		raw = req.Direction
	}
	dir, err := service.ParseDirection(raw)
	if err != nil {
		respondResult(c, action.FromValidation(err))
		return
	}
	respondResult(c, section.Move(c.Request.Context(), a.actions, id, dir))
}

type reorderRequest struct {
	IDs []uint `json:"ids"`
}

// ReorderSectionJSON applies a full ordering from a {"ids": [...]} body.
func (a *API) ReorderSectionJSON(c *gin.Context) {
	section, ok := a.lookupSectionJSON(c)
	if !ok {
		return
	}
	var req reorderRequest
	if !bindJSON(c, &req, "JSON inválido") {
		return
	}
	respondResult(c, section.Reorder(c.Request.Context(), a.actions, req.IDs))
}

type discardNotifier struct{}

func (discardNotifier) Success(string) {}
func (discardNotifier) Error(string)   {}
