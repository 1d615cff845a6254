package creative

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bairro-ads/internal/core/domain"
)

var catalog = domain.NewCatalog(time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC))

func validFreeform() domain.FreeformCreative {
	return domain.FreeformCreative{
		Layout:     "centered",
		Background: "#FFFFFF",
		Foreground: "#000000",
		FontSize:   "medium",
		Title:      "Padaria do Bairro",
		Subtitle:   "Pão quentinho toda manhã",
	}
}

func validTemplate() domain.TemplateCreative {
	return domain.TemplateCreative{
		TemplateID:  "promo-flash",
		Headline:    "20% off today",
		SubHeadline: "All breads and pastries",
		ImageURL:    "https://cdn.example.com/banner.png",
		CTALabel:    "Visit us",
	}
}

func TestValidCreativesPass(t *testing.T) {
	assert.Empty(t, Validate(validFreeform(), catalog))
	assert.Empty(t, Validate(validTemplate(), catalog))
}

func TestNilCreativeIsRejected(t *testing.T) {
	assert.Equal(t, domain.ValidationResult{"creative is required"}, Validate(nil, catalog))
}

func TestRequiredHeadlineIsTrimmed(t *testing.T) {
	tc := validTemplate()
	tc.Headline = "   "
	assert.Contains(t, Validate(tc, catalog), "headline is required")

	fc := validFreeform()
	fc.Title = "\t"
	assert.Contains(t, Validate(fc, catalog), "title is required")
}

func TestLengthLimitsPerField(t *testing.T) {
	tests := []struct {
		name    string
		payload domain.CreativePayload
		want    string
	}{
		{
			name:    "template headline",
			payload: func() domain.TemplateCreative { c := validTemplate(); c.Headline = strings.Repeat("a", 26); return c }(),
			want:    "headline exceeds 25 characters",
		},
		{
			name: "template sub-headline",
			payload: func() domain.TemplateCreative {
				c := validTemplate()
				c.SubHeadline = strings.Repeat("b", 51)
				return c
			}(),
			want: "sub_headline exceeds 50 characters",
		},
		{
			name:    "freeform title",
			payload: func() domain.FreeformCreative { c := validFreeform(); c.Title = strings.Repeat("c", 41); return c }(),
			want:    "title exceeds 40 characters",
		},
		{
			name:    "freeform subtitle",
			payload: func() domain.FreeformCreative { c := validFreeform(); c.Subtitle = strings.Repeat("d", 121); return c }(),
			want:    "subtitle exceeds 120 characters",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, domain.ValidationResult{tt.want}, Validate(tt.payload, catalog))
		})
	}
}

func TestLengthCountsCharactersNotBytes(t *testing.T) {
	c := validTemplate()
	c.Headline = strings.Repeat("ã", 25)
	assert.Empty(t, Validate(c, catalog))
}

func TestDenylistScansEveryFieldOnce(t *testing.T) {
	c := validTemplate()
	c.CTALabel = "Sem GOLPE"
	c.SubHeadline = "produto falsificado"
	res := Validate(c, catalog)
	assert.Equal(t, domain.ValidationResult{msgDisallowedWords}, res)
}

func TestViolationsAccumulate(t *testing.T) {
	c := validFreeform()
	c.Title = "Oferta milagroso " + strings.Repeat("x", 40)
	c.Foreground = "#FAFAFA"
	res := Validate(c, catalog)
	require.GreaterOrEqual(t, len(res), 3)
	assert.Contains(t, res, "title exceeds 40 characters")
	assert.Contains(t, res, msgDisallowedWords)
}

func TestLowContrastFreeformFails(t *testing.T) {
	c := validFreeform()
	c.Background = "#FFFFFF"
	c.Foreground = "#F0F0F0"
	res := Validate(c, catalog)
	require.Len(t, res, 1)
	assert.Contains(t, res[0], "#F0F0F0")
	assert.Contains(t, res[0], "#FFFFFF")

	white, _ := ParseHex("#FFFFFF")
	light, _ := ParseHex("#F0F0F0")
	assert.InDelta(t, 1.14, ContrastRatio(white, light), 0.01)
}

func TestContrastThreshold(t *testing.T) {
	assert.True(t, SufficientContrast(4.5))
	assert.False(t, SufficientContrast(4.49999))

	white, _ := ParseHex("#fff")
	black, _ := ParseHex("#000000")
	assert.InDelta(t, 21.0, ContrastRatio(white, black), 1e-9)
	assert.Equal(t, ContrastRatio(white, black), ContrastRatio(black, white))

	passGray, _ := ParseHex("#767676")
	failGray, _ := ParseHex("#777777")
	assert.True(t, SufficientContrast(ContrastRatio(white, passGray)))
	assert.False(t, SufficientContrast(ContrastRatio(white, failGray)))

	c := validFreeform()
	c.Foreground = "#767676"
	assert.Empty(t, Validate(c, catalog))
	c.Foreground = "#777777"
	assert.Len(t, Validate(c, catalog), 1)
}

func TestStructuralRules(t *testing.T) {
	tc := validTemplate()
	tc.TemplateID = "nope"
	tc.LogoURL = "ftp://files/logo.png"
	res := Validate(tc, catalog)
	assert.Contains(t, res, `unknown template "nope"`)
	assert.Contains(t, res, "logo_url must be an absolute http(s) URL")

	fc := validFreeform()
	fc.Layout = "diagonal"
	fc.FontSize = "huge"
	fc.Background = "white"
	res = Validate(fc, catalog)
	assert.Contains(t, res, `unknown layout "diagonal"`)
	assert.Contains(t, res, `unknown font size "huge"`)
	assert.Contains(t, res, `invalid background color "white"`)
}

func TestParseHex(t *testing.T) {
	c, err := ParseHex("#1a2B3c")
	require.NoError(t, err)
	assert.Equal(t, RGB{R: 0x1a, G: 0x2b, B: 0x3c}, c)

	c, err = ParseHex("#abc")
	require.NoError(t, err)
	assert.Equal(t, RGB{R: 0xaa, G: 0xbb, B: 0xcc}, c)

	for _, bad := range []string{"", "123456", "#12345", "#GGGGGG"} {
		_, err = ParseHex(bad)
		assert.Error(t, err, bad)
	}
}
