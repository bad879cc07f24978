package clothing

import (
	"encoding/json"
	"fmt"
)

// Slug is the stored shape of a slug value.
type Slug struct {
	Type    string `json:"_type,omitempty" yaml:"_type,omitempty"`
	Current string `json:"current" yaml:"current"`
}

// Reference points at an uploaded asset.
type Reference struct {
	Type string `json:"_type,omitempty" yaml:"_type,omitempty"`
	Ref  string `json:"_ref" yaml:"_ref"`
}

// Hotspot is the focal point selected in the editor, in relative units.
type Hotspot struct {
	X      float64 `json:"x" yaml:"x"`
	Y      float64 `json:"y" yaml:"y"`
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

// Image is the stored shape of an image field.
type Image struct {
	Type    string    `json:"_type,omitempty" yaml:"_type,omitempty"`
	Asset   Reference `json:"asset" yaml:"asset"`
	Hotspot *Hotspot  `json:"hotspot,omitempty" yaml:"hotspot,omitempty"`
}

// Item is the typed form of a clothing item document.
type Item struct {
	ID             string   `json:"_id,omitempty" yaml:"_id,omitempty"`
	Type           string   `json:"_type,omitempty" yaml:"_type,omitempty"`
	Name           string   `json:"name,omitempty" yaml:"name,omitempty"`
	Slug           *Slug    `json:"slug,omitempty" yaml:"slug,omitempty"`
	Description    string   `json:"description,omitempty" yaml:"description,omitempty"`
	Price          *float64 `json:"price,omitempty" yaml:"price,omitempty"`
	Sizes          []string `json:"sizes,omitempty" yaml:"sizes,omitempty"`
	Colors         []string `json:"colors,omitempty" yaml:"colors,omitempty"`
	Image          *Image   `json:"image,omitempty" yaml:"image,omitempty"`
	Category       Category `json:"category,omitempty" yaml:"category,omitempty"`
	Tags           []string `json:"tags,omitempty" yaml:"tags,omitempty"`
	SEOTitle       string   `json:"seoTitle,omitempty" yaml:"seoTitle,omitempty"`
	SEODescription string   `json:"seoDescription,omitempty" yaml:"seoDescription,omitempty"`
}

// NewSlug wraps a slug string in its stored shape.
func NewSlug(current string) *Slug {
	return &Slug{Type: "slug", Current: current}
}

// NewImage wraps an asset reference in its stored shape.
func NewImage(ref string) *Image {
	return &Image{Type: "image", Asset: Reference{Type: "reference", Ref: ref}}
}

// Document converts the item into the generic map form consumed by the
// validator. Zero-valued fields are omitted so they read as absent.
func (it Item) Document() (map[string]any, error) {
	raw, err := json.Marshal(it)
	if err != nil {
		return nil, fmt.Errorf("clothing: encode item: %w", err)
	}
	out := map[string]any{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("clothing: decode item: %w", err)
	}
	return out, nil
}

// ItemFromDocument decodes a generic document into an Item.
func ItemFromDocument(doc map[string]any) (Item, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return Item{}, fmt.Errorf("clothing: encode document: %w", err)
	}
	var it Item
	if err := json.Unmarshal(raw, &it); err != nil {
		return Item{}, fmt.Errorf("clothing: decode document: %w", err)
	}
	return it, nil
}
