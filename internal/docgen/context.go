// Package docgen renders the platform's legal documents. Each document type
// is a Renderer registered under its catalog key; a renderer receives a
// RenderContext already merged from the submitted form and the company
// profile, and produces the finished .docx bytes with a download filename.
package docgen

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/martinboshkoski/nexa.v1-sub001/internal/domain"
)

// Placeholder declares one named value a document template substitutes.
// ProfileField names the company-profile attribute used as fallback when the
// form omits the value; Label is the human-readable text shown in brackets
// when neither source has it.
type Placeholder struct {
	Key          string
	Label        string
	ProfileField string
}

// Company-profile attribute names usable as placeholder fallbacks
const (
	ProfileCompanyName        = "companyName"
	ProfileAddress            = "address"
	ProfilePhone              = "phone"
	ProfileEmail              = "email"
	ProfileTaxNumber          = "taxNumber"
	ProfileRegistrationNumber = "registrationNumber"
	ProfileManager            = "manager"
	ProfileActivity           = "activityDescription"
)

// RenderContext carries the merged values for one generation request
type RenderContext struct {
	values map[string]string
	now    time.Time
}

// BuildContext merges form data over company-profile fallbacks for every
// declared placeholder. Each resolved value is guaranteed non-empty: when
// both sources are missing or blank, the bracketed label stands in so the
// rendered document never carries an empty token.
func BuildContext(placeholders []Placeholder, formData map[string]string, profile domain.CompanyProfile, now time.Time) RenderContext {
	values := make(map[string]string, len(placeholders))

	for _, p := range placeholders {
		value := strings.TrimSpace(formData[p.Key])

		if value == "" && p.ProfileField != "" {
			value = strings.TrimSpace(profileValue(profile, p.ProfileField))
		}
		if value == "" {
			value = "[" + p.Label + "]"
		}

		values[p.Key] = value
	}

	return RenderContext{values: values, now: now}
}

func profileValue(profile domain.CompanyProfile, field string) string {
	switch field {
	case ProfileCompanyName:
		return profile.CompanyName
	case ProfileAddress:
		return profile.Address
	case ProfilePhone:
		return profile.Phone
	case ProfileEmail:
		return profile.Email
	case ProfileTaxNumber:
		return profile.TaxNumber
	case ProfileRegistrationNumber:
		return profile.RegistrationNumber
	case ProfileManager:
		return profile.Manager
	case ProfileActivity:
		return profile.ActivityDescription
	}
	return ""
}

// Get returns the merged value for a placeholder key. Unknown keys come back
// as a bracketed key so a renderer typo is visible in the output instead of
// silently blank.
func (c RenderContext) Get(key string) string {
	if v, ok := c.values[key]; ok {
		return v
	}
	return "[" + key + "]"
}

// Date returns the placeholder value formatted as a Macedonian long-form
// date when it parses as an ISO date, otherwise the raw value.
func (c RenderContext) Date(key string) string {
	return FormatLongDate(c.Get(key))
}

// Today returns the request date as a Macedonian long-form date, for
// documents that stamp an issue date.
func (c RenderContext) Today() string {
	return longDate(c.now)
}

var macedonianMonths = [...]string{
	"јануари", "февруари", "март", "април", "мај", "јуни",
	"јули", "август", "септември", "октомври", "ноември", "декември",
}

// FormatLongDate turns an ISO date (2026-01-15) into the localized
// long form (15 јануари 2026 година). Values that do not parse are
// returned unchanged.
func FormatLongDate(value string) string {
	t, err := time.Parse("2006-01-02", strings.TrimSpace(value))
	if err != nil {
		return value
	}
	return longDate(t)
}

func longDate(t time.Time) string {
	return fmt.Sprintf("%d %s %d година", t.Day(), macedonianMonths[t.Month()-1], t.Year())
}

// Filename builds the download filename from the document title and a human
// identifier (employee or company name), collapsing every run of
// non-alphanumeric characters to a single underscore.
func Filename(title, human string) string {
	return sanitize(title) + "_" + sanitize(human) + ".docx"
}

func sanitize(s string) string {
	var sb strings.Builder
	lastUnderscore := false

	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			sb.WriteRune(r)
			lastUnderscore = false
			continue
		}
		if !lastUnderscore && sb.Len() > 0 {
			sb.WriteRune('_')
			lastUnderscore = true
		}
	}

	return strings.TrimSuffix(sb.String(), "_")
}
