package mail

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
)

// ContactForm is a validated submission from the public contact form.
type ContactForm struct {
	FullName string
	Email    string
	Phone    string
	Subject  string
	Message  string
}

// Route says where contact mail goes and how it is labelled.
type Route struct {
	To            string
	SenderName    string
	SenderEmail   string
	SubjectPrefix string
}

// BuildContact renders the notification the site owner receives.
func BuildContact(form ContactForm, route Route) (Message, error) {
	to := strings.TrimSpace(route.To)
	if to == "" {
		return Message{}, fmt.Errorf("contact recipient is not configured")
	}

	subject := strings.TrimSpace(form.Subject)
	if prefix := strings.TrimSpace(route.SubjectPrefix); prefix != "" {
		subject = prefix + " " + subject
	}

	var html bytes.Buffer
	if err := contactTemplate.Execute(&html, form); err != nil {
		return Message{}, fmt.Errorf("render contact mail: %w", err)
	}

	msg := Message{
		To:      []string{to},
		ReplyTo: strings.TrimSpace(form.Email),
		Subject: subject,
		HTML:    html.String(),
		Text:    contactText(form),
	}
	if sender := strings.TrimSpace(route.SenderEmail); sender != "" {
		msg.From = sender
		if name := strings.TrimSpace(route.SenderName); name != "" {
			msg.From = fmt.Sprintf("%s <%s>", name, sender)
		}
	}
	return msg, nil
}

func contactText(form ContactForm) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Nome: %s\n", form.FullName)
	fmt.Fprintf(&b, "E-mail: %s\n", form.Email)
	if form.Phone != "" {
		fmt.Fprintf(&b, "Telefone: %s\n", form.Phone)
	}
	fmt.Fprintf(&b, "Assunto: %s\n\n%s\n", form.Subject, form.Message)
	return b.String()
}

var contactTemplate = template.Must(template.New("contact").Parse(`<!DOCTYPE html>
<html lang="pt-BR">
<body style="font-family:sans-serif;background:#f5f5f5;padding:20px">
<div style="max-width:600px;margin:0 auto;background:#fff;border-radius:8px;padding:24px">
  <h2 style="color:#111">Nova mensagem do portfólio</h2>
  <p><strong>Nome:</strong> {{.FullName}}</p>
  <p><strong>E-mail:</strong> {{.Email}}</p>
  {{if .Phone}}<p><strong>Telefone:</strong> {{.Phone}}</p>{{end}}
  <p><strong>Assunto:</strong> {{.Subject}}</p>
  <div style="background:#f3f4f6;border-radius:8px;padding:12px 16px;white-space:pre-wrap">{{.Message}}</div>
</div>
</body>
</html>`))
