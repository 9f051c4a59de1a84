package handler

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/designfolio/internal/mail"
)

type contactRequest struct {
	FullName string `json:"fullName" validate:"required,min=2"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"omitempty,max=40"`
	Subject  string `json:"subject" validate:"required,min=2"`
	Message  string `json:"message" validate:"required,min=10"`
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// fieldDetails turns validator errors into {field: message}.
func fieldDetails(err error) map[string]string {
	details := map[string]string{}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return details
	}
	for _, fe := range verrs {
		details[fe.Field()] = fieldMessage(fe)
	}
	return details
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Campo obrigatório"
	case "email":
		return "E-mail inválido"
	case "min":
		return fmt.Sprintf("Mínimo de %s caracteres", fe.Param())
	case "max":
		return fmt.Sprintf("Máximo de %s caracteres", fe.Param())
	}
	return "Valor inválido"
}

func (r *contactRequest) trim() {
	r.FullName = strings.TrimSpace(r.FullName)
	r.Email = strings.TrimSpace(r.Email)
	r.Phone = strings.TrimSpace(r.Phone)
	r.Subject = strings.TrimSpace(r.Subject)
	r.Message = strings.TrimSpace(r.Message)
}

// SendContact validates a contact submission and mails it to the site owner.
func (a *API) SendContact(c *gin.Context) {
	if !a.limiter.Allow() {
		a.metrics.Contact("limited")
		respondError(c, http.StatusTooManyRequests, "Muitas mensagens. Tente novamente em instantes.")
		return
	}

	var req contactRequest
	if !bindJSON(c, &req, "JSON inválido") {
		a.metrics.Contact("invalid")
		return
	}
	req.trim()
	if err := a.validate.Struct(req); err != nil {
		a.metrics.Contact("invalid")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dados inválidos", "details": fieldDetails(err)})
		return
	}

	route, err := a.contactRoute()
	if err != nil {
		a.metrics.Contact("failed")
		a.log.Error("contact settings unavailable", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Erro ao enviar mensagem")
		return
	}

	msg, err := mail.BuildContact(mail.ContactForm{
		FullName: req.FullName,
		Email:    req.Email,
		Phone:    req.Phone,
		Subject:  req.Subject,
		Message:  req.Message,
	}, route)
	if err != nil {
		a.metrics.Contact("failed")
		a.log.Error("build contact mail failed", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Erro ao enviar mensagem")
		return
	}

	id, err := a.mailer.Send(c.Request.Context(), msg)
	if err != nil {
		a.metrics.Contact("failed")
		a.log.Error("send contact mail failed", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Erro ao enviar mensagem")
		return
	}

	a.metrics.Contact("sent")
	c.JSON(http.StatusOK, gin.H{"message": "Mensagem enviada com sucesso!", "id": id})
}

// contactRoute reads the recipient from the contact settings and falls back
// to the configured address.
func (a *API) contactRoute() (mail.Route, error) {
	route := mail.Route{To: a.contactTo}
	settings, err := a.actions.Services().Contact.Settings()
	if err != nil {
		return route, err
	}
	if settings == nil {
		return route, nil
	}
	if strings.TrimSpace(settings.RecipientEmail) != "" {
		route.To = settings.RecipientEmail
	}
	route.SenderName = settings.SenderName
	route.SenderEmail = settings.SenderEmail
	route.SubjectPrefix = settings.SubjectPrefix
	return route, nil
}
