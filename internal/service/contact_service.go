package service

import (
	"net/mail"
	"strings"

	"github.com/designfolio/internal/db"
	"gorm.io/gorm"
)

// ContactService stores the contact section settings.
type ContactService struct {
	db *gorm.DB
}

// NewContactService constructs a ContactService.
func NewContactService(gdb *gorm.DB) *ContactService {
	return &ContactService{db: gdb}
}

// ContactSettingsInput carries the editable contact settings.
type ContactSettingsInput struct {
	Title          string
	RecipientEmail string
	SenderName     string
	SenderEmail    string
	SubjectPrefix  string
}

// Settings returns the settings row, or nil when not configured.
func (s *ContactService) Settings() (*db.ContactSettings, error) {
	return firstOrNil[db.ContactSettings](s.db, "contact settings")
}

// SaveSettings upserts the settings row.
func (s *ContactService) SaveSettings(input ContactSettingsInput) (*db.ContactSettings, error) {
	if err := required("title", input.Title); err != nil {
		return nil, err
	}
	if err := required("recipientEmail", input.RecipientEmail); err != nil {
		return nil, err
	}
	if _, err := mail.ParseAddress(strings.TrimSpace(input.RecipientEmail)); err != nil {
		return nil, invalid("recipientEmail is not a valid email")
	}
	if sender := strings.TrimSpace(input.SenderEmail); sender != "" {
		if _, err := mail.ParseAddress(sender); err != nil {
			return nil, invalid("senderEmail is not a valid email")
		}
	}

	return upsertSingleton(s.db, "contact settings", func(settings *db.ContactSettings) {
		settings.Title = strings.TrimSpace(input.Title)
		settings.RecipientEmail = strings.TrimSpace(input.RecipientEmail)
		settings.SenderName = strings.TrimSpace(input.SenderName)
		settings.SenderEmail = strings.TrimSpace(input.SenderEmail)
		settings.SubjectPrefix = strings.TrimSpace(input.SubjectPrefix)
	})
}
