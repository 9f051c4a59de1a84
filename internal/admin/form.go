package admin

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/designfolio/internal/service"
)

// Form is the flat field set an editor submits.
type Form map[string]string

// FormFromValues takes the first value of each posted field.
func FormFromValues(values url.Values) Form {
	form := make(Form, len(values))
	for key, vals := range values {
		if len(vals) > 0 {
			form[key] = vals[0]
		}
	}
	return form
}

// FormFromJSON flattens a decoded JSON object. Arrays become one entry per
// line, so both list splitters accept them.
func FormFromJSON(body map[string]any) Form {
	form := make(Form, len(body))
	for key, raw := range body {
		switch value := raw.(type) {
		case nil:
		case string:
			form[key] = value
		case []any:
			parts := make([]string, 0, len(value))
			for _, item := range value {
				parts = append(parts, fmt.Sprint(item))
			}
			form[key] = strings.Join(parts, "\n")
		case float64:
			form[key] = strconv.FormatFloat(value, 'f', -1, 64)
		default:
			form[key] = fmt.Sprint(value)
		}
	}
	return form
}

// Get returns the trimmed value of key.
func (f Form) Get(key string) string {
	return strings.TrimSpace(f[key])
}

// SplitComma splits tag-like input on commas, trimming entries and dropping
// blanks. Line breaks also separate entries.
func SplitComma(raw string) []string {
	return splitOn(raw, func(r rune) bool { return r == ',' || r == '\n' || r == '\r' })
}

// SplitLines splits paragraph-like input on line breaks, trimming entries and
// dropping blanks.
func SplitLines(raw string) []string {
	return splitOn(raw, func(r rune) bool { return r == '\n' || r == '\r' })
}

func splitOn(raw string, sep func(rune) bool) []string {
	out := []string{}
	for _, part := range strings.FieldsFunc(raw, sep) {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// JoinComma is the inverse of SplitComma for prefilling inputs.
func JoinComma(values []string) string {
	return strings.Join(values, ", ")
}

// JoinLines is the inverse of SplitLines for prefilling textareas.
func JoinLines(values []string) string {
	return strings.Join(values, "\n")
}

func optionalInt(form Form, key string) (*int, error) {
	raw := form.Get(key)
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be a number", service.ErrInvalidInput, key)
	}
	return &value, nil
}

func deref(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
