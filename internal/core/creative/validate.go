// Package creative validates merchant-authored banner content before it can
// be published. Every rule runs; all violations are reported together.
package creative

import (
	"fmt"
	"net/url"
	"slices"
	"strings"
	"unicode/utf8"

	"bairro-ads/internal/core/domain"
)

// Field length limits, in characters.
const (
	MaxTemplateHeadline    = 25
	MaxTemplateSubHeadline = 50
	MaxTemplateCTALabel    = 20
	MaxFreeformTitle       = 40
	MaxFreeformSubtitle    = 120
)

// Denylist holds disallowed words and phrases, matched case-insensitively
// as substrings.
var Denylist = []string{
	"golpe",
	"pirataria",
	"falsificado",
	"réplica",
	"dinheiro fácil",
	"milagroso",
	"scam",
}

var (
	Layouts   = []string{"centered", "left", "split"}
	FontSizes = []string{"small", "medium", "large"}
)

const msgDisallowedWords = "creative contains disallowed words"

type field struct {
	name  string
	value string
	limit int
}

// Validate checks payload against the catalog. An empty result is the only
// publishable outcome.
func Validate(payload domain.CreativePayload, catalog domain.Catalog) domain.ValidationResult {
	var (
		errs   []string
		fields []field
	)

	switch c := payload.(type) {
	case domain.TemplateCreative:
		if strings.TrimSpace(c.Headline) == "" {
			errs = append(errs, "headline is required")
		}
		if _, ok := catalog.Template(c.TemplateID); !ok {
			errs = append(errs, fmt.Sprintf("unknown template %q", c.TemplateID))
		}
		for _, u := range []struct{ name, value string }{{"image_url", c.ImageURL}, {"logo_url", c.LogoURL}} {
			if u.value != "" && !isHTTPURL(u.value) {
				errs = append(errs, fmt.Sprintf("%s must be an absolute http(s) URL", u.name))
			}
		}
		fields = []field{
			{"headline", c.Headline, MaxTemplateHeadline},
			{"sub_headline", c.SubHeadline, MaxTemplateSubHeadline},
			{"cta_label", c.CTALabel, MaxTemplateCTALabel},
		}
	case domain.FreeformCreative:
		if strings.TrimSpace(c.Title) == "" {
			errs = append(errs, "title is required")
		}
		if !slices.Contains(Layouts, c.Layout) {
			errs = append(errs, fmt.Sprintf("unknown layout %q", c.Layout))
		}
		if !slices.Contains(FontSizes, c.FontSize) {
			errs = append(errs, fmt.Sprintf("unknown font size %q", c.FontSize))
		}
		errs = append(errs, contrastErrors(c.Background, c.Foreground)...)
		fields = []field{
			{"title", c.Title, MaxFreeformTitle},
			{"subtitle", c.Subtitle, MaxFreeformSubtitle},
		}
	default:
		return domain.ValidationResult{"creative is required"}
	}

	for _, f := range fields {
		if n := utf8.RuneCountInString(f.value); n > f.limit {
			errs = append(errs, fmt.Sprintf("%s exceeds %d characters", f.name, f.limit))
		}
	}
	if containsDenied(fields) {
		errs = append(errs, msgDisallowedWords)
	}
	return domain.ValidationResult(errs)
}

func contrastErrors(background, foreground string) []string {
	var errs []string
	bg, err := ParseHex(background)
	if err != nil {
		errs = append(errs, fmt.Sprintf("invalid background color %q", background))
	}
	fg, err := ParseHex(foreground)
	if err != nil {
		errs = append(errs, fmt.Sprintf("invalid text color %q", foreground))
	}
	if len(errs) > 0 {
		return errs
	}
	if ratio := ContrastRatio(bg, fg); !SufficientContrast(ratio) {
		return []string{fmt.Sprintf("text color %s on background %s has contrast %.2f:1, minimum is %.1f:1",
			foreground, background, ratio, MinContrastRatio)}
	}
	return nil
}

// containsDenied scans every field; a hit anywhere yields one error.
func containsDenied(fields []field) bool {
	hit := false
	for _, f := range fields {
		v := strings.ToLower(f.value)
		for _, w := range Denylist {
			if strings.Contains(v, w) {
				hit = true
			}
		}
	}
	return hit
}

func isHTTPURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
