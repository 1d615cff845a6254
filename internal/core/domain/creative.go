package domain

import (
	"encoding/json"
	"errors"
	"fmt"
)

// CreativeKind tags the active shape of a CreativePayload.
type CreativeKind string

const (
	CreativeTemplate CreativeKind = "template"
	CreativeFreeform CreativeKind = "freeform"
)

// CreativePayload is the merchant-authored content of a banner. It is a
// closed union: only TemplateCreative and FreeformCreative implement it.
type CreativePayload interface {
	Kind() CreativeKind
	sealed()
}

// TemplateCreative fills the named fields of a catalog template.
type TemplateCreative struct {
	TemplateID  string `json:"template_id"`
	Headline    string `json:"headline"`
	SubHeadline string `json:"sub_headline,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
	LogoURL     string `json:"logo_url,omitempty"`
	CTALabel    string `json:"cta_label,omitempty"`
}

func (TemplateCreative) Kind() CreativeKind { return CreativeTemplate }
func (TemplateCreative) sealed()            {}

// FreeformCreative is a merchant-designed banner. Background and Foreground
// are hex colors (#RGB or #RRGGBB).
type FreeformCreative struct {
	Layout     string `json:"layout"`
	Background string `json:"background"`
	Foreground string `json:"foreground"`
	FontSize   string `json:"font_size"`
	Title      string `json:"title"`
	Subtitle   string `json:"subtitle,omitempty"`
}

func (FreeformCreative) Kind() CreativeKind { return CreativeFreeform }
func (FreeformCreative) sealed()            {}

var ErrUnknownCreativeKind = errors.New("unknown creative kind")

// CreativeEnvelope is the JSON shape of a CreativePayload used on the wire
// and in storage. Only the field matching Kind is populated.
type CreativeEnvelope struct {
	Kind     CreativeKind      `json:"kind"`
	Template *TemplateCreative `json:"template,omitempty"`
	Freeform *FreeformCreative `json:"freeform,omitempty"`
}

// Envelope wraps p for encoding. A nil payload yields a zero envelope.
func Envelope(p CreativePayload) CreativeEnvelope {
	switch c := p.(type) {
	case TemplateCreative:
		return CreativeEnvelope{Kind: CreativeTemplate, Template: &c}
	case FreeformCreative:
		return CreativeEnvelope{Kind: CreativeFreeform, Freeform: &c}
	default:
		return CreativeEnvelope{}
	}
}

// Payload unwraps the envelope, ignoring the field of the inactive shape.
func (e CreativeEnvelope) Payload() (CreativePayload, error) {
	switch e.Kind {
	case CreativeTemplate:
		if e.Template == nil {
			return nil, fmt.Errorf("%s creative: missing body", e.Kind)
		}
		return *e.Template, nil
	case CreativeFreeform:
		if e.Freeform == nil {
			return nil, fmt.Errorf("%s creative: missing body", e.Kind)
		}
		return *e.Freeform, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCreativeKind, e.Kind)
	}
}

// MarshalCreative encodes p as a CreativeEnvelope.
func MarshalCreative(p CreativePayload) ([]byte, error) {
	return json.Marshal(Envelope(p))
}

// UnmarshalCreative decodes a CreativeEnvelope into its payload.
func UnmarshalCreative(data []byte) (CreativePayload, error) {
	var env CreativeEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, err
	}
	return env.Payload()
}

// ValidationResult lists human-readable problems with a creative. It is
// recomputed on demand and never persisted.
type ValidationResult []string

// OK reports whether the creative is publishable.
func (r ValidationResult) OK() bool { return len(r) == 0 }
