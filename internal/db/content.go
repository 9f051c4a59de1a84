package db

import (
	"time"

	"gorm.io/datatypes"
)

// Hero is the landing block at the top of the home page. At most one row exists.
type Hero struct {
	ID         uint                        `gorm:"primaryKey" json:"id"`
	TitleLine1 string                      `gorm:"size:200;not null" json:"titleLine1"`
	TitleLine2 string                      `gorm:"size:200" json:"titleLine2"`
	ImageURL   string                      `gorm:"size:512" json:"imageUrl"`
	ImageAlt   string                      `gorm:"size:200" json:"imageAlt"`
	Name       string                      `gorm:"size:120;not null" json:"name"`
	Quotes     datatypes.JSONSlice[string] `json:"quotes"`
	CreatedAt  time.Time                   `json:"createdAt"`
	UpdatedAt  time.Time                   `json:"updatedAt"`
}

// About holds the biography section. At most one row exists.
type About struct {
	ID         uint                        `gorm:"primaryKey" json:"id"`
	Name       string                      `gorm:"size:120;not null" json:"name"`
	City       string                      `gorm:"size:120" json:"city"`
	Role       string                      `gorm:"size:120" json:"role"`
	Paragraphs datatypes.JSONSlice[string] `json:"paragraphs"`
	CreatedAt  time.Time                   `json:"createdAt"`
	UpdatedAt  time.Time                   `json:"updatedAt"`
}

// SocialLink is an icon link rendered under the hero.
type SocialLink struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Href      string    `gorm:"size:512;not null" json:"href"`
	Icon      string    `gorm:"size:50;not null" json:"icon"`
	Label     string    `gorm:"size:120;not null" json:"label"`
	Order     int       `gorm:"column:sort_order;default:0;index" json:"order"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Project is a portfolio case study.
type Project struct {
	ID             uint                        `gorm:"primaryKey" json:"id"`
	Title          string                      `gorm:"size:200;not null" json:"title"`
	Description    string                      `gorm:"type:text;not null" json:"description"`
	Image          string                      `gorm:"size:512;not null" json:"image"`
	Tags           datatypes.JSONSlice[string] `json:"tag"`
	Categories     datatypes.JSONSlice[string] `json:"category"`
	Year           string                      `gorm:"size:4;not null" json:"year"`
	Accomplishment string                      `gorm:"type:text" json:"accomplishment"`
	Link1          *string                     `gorm:"size:512" json:"link1"`
	Link2          *string                     `gorm:"size:512" json:"link2"`
	Link3          *string                     `gorm:"size:512" json:"link3"`
	Link4          *string                     `gorm:"size:512" json:"link4"`
	Order          int                         `gorm:"column:sort_order;default:0;index" json:"order"`
	CreatedAt      time.Time                   `json:"createdAt"`
	UpdatedAt      time.Time                   `json:"updatedAt"`
}

// Service is an offered design service card.
type Service struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"size:200;not null" json:"title"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Image       string    `gorm:"size:512;not null" json:"image"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Skill is a plain skill label. Names are not unique.
type Skill struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:120;not null" json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Tool is a design tool with its logo.
type Tool struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:120;not null" json:"name"`
	Image     string    `gorm:"size:512;not null" json:"image"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SocialItem is a card in the social section.
type SocialItem struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:120;not null" json:"name"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Icon        string    `gorm:"size:50;not null" json:"icon"`
	URL         string    `gorm:"size:512;not null" json:"url"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// TableName keeps the table name readable.
func (SocialItem) TableName() string {
	return "social_items"
}

// ContactSettings configures the contact section and outgoing contact mail.
// At most one row exists.
type ContactSettings struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Title          string    `gorm:"size:200;not null" json:"title"`
	RecipientEmail string    `gorm:"size:255;not null" json:"recipientEmail"`
	SenderName     string    `gorm:"size:120" json:"senderName"`
	SenderEmail    string    `gorm:"size:255" json:"senderEmail"`
	SubjectPrefix  string    `gorm:"size:120" json:"subjectPrefix"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// TableName avoids gorm pluralising "settings" twice.
func (ContactSettings) TableName() string {
	return "contact_settings"
}

// Footer holds the copyright line. At most one row exists.
type Footer struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Copyright string    `gorm:"size:255;not null" json:"copyright"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// FooterNavItem is a footer navigation link, displayed by Order.
type FooterNavItem struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:120;not null" json:"name"`
	Href      string    `gorm:"size:512;not null" json:"href"`
	Order     int       `gorm:"column:sort_order;default:0;index" json:"order"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the footer navigation table name.
func (FooterNavItem) TableName() string {
	return "footer_nav_items"
}
