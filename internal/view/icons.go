package view

import (
	"errors"
	"html/template"
	"strings"
)

// Icon identifies one of the fixed icons social links and social cards may use.
type Icon string

const (
	IconLinkedIn  Icon = "linkedin"
	IconGitHub    Icon = "github"
	IconDribbble  Icon = "dribbble"
	IconBehance   Icon = "behance"
	IconInstagram Icon = "instagram"
	IconX         Icon = "x"
	IconFigma     Icon = "figma"
	IconMedium    Icon = "medium"
	IconYouTube   Icon = "youtube"
	IconEmail     Icon = "email"
	IconWebsite   Icon = "website"
)

// ErrUnknownIcon is returned when an identifier is outside the registry.
var ErrUnknownIcon = errors.New("unknown icon")

// IconOption describes a selectable icon for admin forms.
type IconOption struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

type iconAsset struct {
	Key   Icon
	Label string
	SVG   string
}

const svgOpen = `<svg viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="1.5" stroke-linecap="round" stroke-linejoin="round" aria-hidden="true">`

var (
	iconDefinitions = []iconAsset{
		{Key: IconLinkedIn, Label: "LinkedIn", SVG: svgOpen + `<rect x="3" y="3" width="18" height="18" rx="2"/><path d="M8 10v7M8 7v.01M12 17v-4a2 2 0 0 1 4 0v4M12 10v7"/></svg>`},
		{Key: IconGitHub, Label: "GitHub", SVG: svgOpen + `<path d="M9 19c-4 1.5-4-2-6-2.5M15 21v-3.5c0-1 .1-1.4-.5-2 2.8-.3 5.5-1.4 5.5-6a4.6 4.6 0 0 0-1.3-3.2 4.2 4.2 0 0 0-.1-3.2s-1.1-.3-3.5 1.3a12.3 12.3 0 0 0-6.2 0C6.5 2.8 5.4 3.1 5.4 3.1a4.2 4.2 0 0 0-.1 3.2A4.6 4.6 0 0 0 4 9.5c0 4.6 2.7 5.7 5.5 6-.6.6-.6 1.2-.5 2V21"/></svg>`},
		{Key: IconDribbble, Label: "Dribbble", SVG: svgOpen + `<circle cx="12" cy="12" r="9"/><path d="M9 3.6c5 6 7 10.5 7.5 16.2M6 5.7c3.6 3.8 9.6 4.7 14.5 2.8M3.1 13.3c4.4-2 10.8-1.5 17.9 1.2"/></svg>`},
		{Key: IconBehance, Label: "Behance", SVG: svgOpen + `<path d="M3 18V6h4.5a3 3 0 0 1 0 6H3h5a3 3 0 0 1 0 6H3zM14 13h7a3.5 3.5 0 0 0-7 0 3.5 3.5 0 0 0 6.5 2M15 7h5"/></svg>`},
		{Key: IconInstagram, Label: "Instagram", SVG: svgOpen + `<rect x="3" y="3" width="18" height="18" rx="5"/><circle cx="12" cy="12" r="4"/><path d="M17.5 6.5v.01"/></svg>`},
		{Key: IconX, Label: "X / Twitter", SVG: svgOpen + `<path d="M4 4l16 16M20 4L4 20"/></svg>`},
		{Key: IconFigma, Label: "Figma", SVG: svgOpen + `<path d="M15 12a3 3 0 1 0 6 0 3 3 0 0 0-6 0M9 3h6a3 3 0 0 1 0 6H9a3 3 0 0 1 0-6zM9 9h6v6H9a3 3 0 0 1 0-6zM9 15h6v3a3 3 0 1 1-6 0v-3z" transform="translate(-3 0)"/></svg>`},
		{Key: IconMedium, Label: "Medium", SVG: svgOpen + `<circle cx="7" cy="12" r="5"/><ellipse cx="16" cy="12" rx="2.5" ry="5"/><path d="M21 7v10"/></svg>`},
		{Key: IconYouTube, Label: "YouTube", SVG: svgOpen + `<rect x="2" y="5" width="20" height="14" rx="4"/><path d="M10 9l5 3-5 3z"/></svg>`},
		{Key: IconEmail, Label: "E-mail", SVG: svgOpen + `<path d="M21.75 6.75v10.5a2.25 2.25 0 0 1-2.25 2.25h-15A2.25 2.25 0 0 1 2.25 17.25V6.75M21.75 6.75A2.25 2.25 0 0 0 19.5 4.5h-15A2.25 2.25 0 0 0 2.25 6.75l9.75 6 9.75-6"/></svg>`},
		{Key: IconWebsite, Label: "Site", SVG: svgOpen + `<circle cx="12" cy="12" r="9"/><path d="M3.6 9h16.8M3.6 15h16.8M12 3a14 14 0 0 1 0 18M12 3a14 14 0 0 0 0 18"/></svg>`},
	}
	iconLookup = func() map[Icon]iconAsset {
		lookup := make(map[Icon]iconAsset, len(iconDefinitions))
		for _, icon := range iconDefinitions {
			lookup[icon.Key] = icon
		}
		return lookup
	}()
)

// ParseIcon normalises key and checks it against the registry.
func ParseIcon(key string) (Icon, error) {
	icon := Icon(strings.ToLower(strings.TrimSpace(key)))
	if _, ok := iconLookup[icon]; !ok {
		return "", ErrUnknownIcon
	}
	return icon, nil
}

// ValidIcon reports whether key names a registered icon.
func ValidIcon(key string) bool {
	_, err := ParseIcon(key)
	return err == nil
}

// IconOptions exposes the selectable icons in display order.
func IconOptions() []IconOption {
	options := make([]IconOption, 0, len(iconDefinitions))
	for _, icon := range iconDefinitions {
		options = append(options, IconOption{Key: string(icon.Key), Label: icon.Label})
	}
	return options
}

// IconSVG returns the inline markup for key. Unknown keys render nothing.
func IconSVG(key string) template.HTML {
	icon, err := ParseIcon(key)
	if err != nil {
		return ""
	}
	return template.HTML(iconLookup[icon].SVG)
}
