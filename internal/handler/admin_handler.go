package handler

import (
	"net/http"
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/designfolio/internal/admin"
	"github.com/designfolio/internal/auth"
	"github.com/designfolio/internal/service"
)

const (
	flashSuccess = "success"
	flashError   = "errors"
)

// ShowLoginPage renders the login form.
func (a *API) ShowLoginPage(c *gin.Context) {
	if auth.Authenticated(c) {
		c.Redirect(http.StatusFound, auth.AdminPath)
		return
	}
	c.HTML(http.StatusOK, "login.html", gin.H{})
}

// Login checks the admin credentials and sets the auth cookie.
func (a *API) Login(c *gin.Context) {
	email := strings.TrimSpace(c.PostForm("email"))
	password := c.PostForm("password")

	if err := a.gate.Verify(email, password); err != nil {
		a.log.Info("admin login rejected", zap.String("ip", c.ClientIP()))
		c.HTML(http.StatusUnauthorized, "login.html", gin.H{
			"error": "Credenciais inválidas",
			"email": email,
		})
		return
	}

	a.gate.Grant(c)
	c.Redirect(http.StatusFound, auth.AdminPath)
}

// Logout clears the auth cookie.
func (a *API) Logout(c *gin.Context) {
	a.gate.Revoke(c)
	c.Redirect(http.StatusFound, auth.LoginPath)
}

// flashNotifier turns controller toasts into session flashes shown on the
// next rendered admin page.
type flashNotifier struct {
	session sessions.Session
}

func (f flashNotifier) Success(message string) { f.session.AddFlash(message, flashSuccess) }
func (f flashNotifier) Error(message string)   { f.session.AddFlash(message, flashError) }

func notifier(c *gin.Context) flashNotifier {
	return flashNotifier{session: sessions.Default(c)}
}

// adminView adds navigation and pending toasts to data.
func (a *API) adminView(c *gin.Context, data gin.H) gin.H {
	session := sessions.Default(c)
	payload := gin.H{
		"sections":   sectionMetas(),
		flashSuccess: flashStrings(session.Flashes(flashSuccess)),
		flashError:   flashStrings(session.Flashes(flashError)),
	}
	if err := session.Save(); err != nil {
		a.log.Warn("session save failed", zap.Error(err))
	}
	for key, value := range data {
		payload[key] = value
	}
	return payload
}

func flashStrings(values []interface{}) []string {
	out := make([]string, 0, len(values))
	for _, value := range values {
		if text, ok := value.(string); ok {
			out = append(out, text)
		}
	}
	return out
}

func sectionMetas() []admin.Meta {
	sections := admin.Sections()
	metas := make([]admin.Meta, 0, len(sections))
	for _, section := range sections {
		metas = append(metas, section.Meta())
	}
	return metas
}

func saveFlashes(c *gin.Context, log *zap.Logger) {
	if err := sessions.Default(c).Save(); err != nil {
		log.Warn("session save failed", zap.Error(err))
	}
}

// ShowDashboard renders the admin landing page.
func (a *API) ShowDashboard(c *gin.Context) {
	c.HTML(http.StatusOK, "dashboard.html", a.adminView(c, nil))
}

func (a *API) lookupSection(c *gin.Context) (admin.Section, bool) {
	section, ok := admin.Lookup(c.Param("section"))
	if !ok {
		a.renderError(c, http.StatusNotFound, "Seção não encontrada")
		return nil, false
	}
	return section, true
}

func sectionPath(section admin.Section) string {
	return auth.AdminPath + "/" + section.Meta().Key
}

// ShowSection renders a section list with the modal the query asks for.
func (a *API) ShowSection(c *gin.Context) {
	section, ok := a.lookupSection(c)
	if !ok {
		return
	}

	req := admin.PageRequest{
		New:    c.Query("new") != "",
		EditID: parseOptionalUint(c.Query("edit")),
	}
	page, err := section.Page(c.Request.Context(), a.actions, notifier(c), req)
	if err != nil {
		a.log.Error("load admin section failed", zap.String("section", section.Meta().Key), zap.Error(err))
		a.renderError(c, http.StatusInternalServerError, "Erro ao carregar dados")
		return
	}
	c.HTML(http.StatusOK, "section.html", a.adminView(c, gin.H{"page": page}))
}

// SubmitSection creates or updates a row from the modal form. Failures
// re-render the modal with what was typed.
func (a *API) SubmitSection(c *gin.Context) {
	section, ok := a.lookupSection(c)
	if !ok {
		return
	}
	if err := c.Request.ParseForm(); err != nil {
		a.renderError(c, http.StatusBadRequest, "Formulário inválido")
		return
	}

	form := admin.FormFromValues(c.Request.PostForm)
	id := parseOptionalUint(form.Get("id"))
	delete(form, "id")

	page, res := section.Submit(c.Request.Context(), a.actions, notifier(c), id, form)
	if !res.Success {
		c.HTML(statusFor(res), "section.html", a.adminView(c, gin.H{"page": page}))
		return
	}

	saveFlashes(c, a.log)
	c.Redirect(http.StatusSeeOther, sectionPath(section))
}

// DeleteSection removes a row. The confirmation happens in the browser
// before the form is posted.
func (a *API) DeleteSection(c *gin.Context) {
	section, ok := a.lookupSection(c)
	if !ok {
		return
	}
	id, err := parseUintParam(c, "id")
	if err != nil {
		a.renderError(c, http.StatusBadRequest, "ID inválido")
		return
	}

	section.Delete(c.Request.Context(), a.actions, notifier(c), id)
	saveFlashes(c, a.log)
	c.Redirect(http.StatusSeeOther, sectionPath(section))
}

// MoveSection swaps a row with its neighbour.
func (a *API) MoveSection(c *gin.Context) {
	section, ok := a.lookupSection(c)
	if !ok {
		return
	}
	id, err := parseUintParam(c, "id")
	if err != nil {
		a.renderError(c, http.StatusBadRequest, "ID inválido")
		return
	}
	dir, err := service.ParseDirection(c.Query("dir"))
	if err != nil {
		a.renderError(c, http.StatusBadRequest, "Direção inválida")
		return
	}

	n := notifier(c)
	if res := section.Move(c.Request.Context(), a.actions, id, dir); !res.Success {
		n.Error(res.Error)
	}
	saveFlashes(c, a.log)
	c.Redirect(http.StatusSeeOther, sectionPath(section))
}
