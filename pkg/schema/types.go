package schema

// FieldKind enumerates the attribute kinds a document type can declare.
type FieldKind string

const (
	KindShortText      FieldKind = "short-text"
	KindSlug           FieldKind = "slug"
	KindLongText       FieldKind = "long-text"
	KindNumber         FieldKind = "number"
	KindStringArray    FieldKind = "string-array"
	KindColorArray     FieldKind = "color-array"
	KindImageReference FieldKind = "image-reference"
	KindCategoryEnum   FieldKind = "category-enum"
	KindTagArray       FieldKind = "tag-array"
	KindSEOTitle       FieldKind = "seo-title"
	KindSEODescription FieldKind = "seo-description"
)

// Kinds returns every supported field kind in declaration order.
func Kinds() []FieldKind {
	return []FieldKind{
		KindShortText,
		KindSlug,
		KindLongText,
		KindNumber,
		KindStringArray,
		KindColorArray,
		KindImageReference,
		KindCategoryEnum,
		KindTagArray,
		KindSEOTitle,
		KindSEODescription,
	}
}

// Valid reports whether k is one of the supported kinds.
func (k FieldKind) Valid() bool {
	for _, known := range Kinds() {
		if k == known {
			return true
		}
	}
	return false
}

// IsText reports whether values of this kind are stored as plain strings.
func (k FieldKind) IsText() bool {
	switch k {
	case KindShortText, KindLongText, KindSEOTitle, KindSEODescription, KindCategoryEnum:
		return true
	default:
		return false
	}
}

// IsArray reports whether values of this kind are stored as string arrays.
func (k FieldKind) IsArray() bool {
	switch k {
	case KindStringArray, KindColorArray, KindTagArray:
		return true
	default:
		return false
	}
}

// Multiline reports whether editors should offer a multi-line control.
func (k FieldKind) Multiline() bool {
	return k == KindLongText || k == KindSEODescription
}

// ConstraintKind identifies the predicate a Constraint evaluates.
type ConstraintKind string

const (
	ConstraintRequired  ConstraintKind = "required"
	ConstraintMaxLength ConstraintKind = "max-length"
	ConstraintMinLength ConstraintKind = "min-length"
	ConstraintMinValue  ConstraintKind = "min-value"
	ConstraintOneOf     ConstraintKind = "one-of"
)

// Constraint is a declarative validation record. Value carries the numeric
// parameter for length and value bounds and is ignored by required/one-of.
type Constraint struct {
	Kind    ConstraintKind `json:"kind" yaml:"kind"`
	Value   float64        `json:"value,omitempty" yaml:"value,omitempty"`
	Message string         `json:"message" yaml:"message"`
}

// Required builds a required constraint.
func Required(message string) Constraint {
	return Constraint{Kind: ConstraintRequired, Message: message}
}

// MaxLength builds a max-length constraint (characters for text, elements for
// arrays).
func MaxLength(n int, message string) Constraint {
	return Constraint{Kind: ConstraintMaxLength, Value: float64(n), Message: message}
}

// MinLength builds a min-length constraint (characters for text, elements for
// arrays).
func MinLength(n int, message string) Constraint {
	return Constraint{Kind: ConstraintMinLength, Value: float64(n), Message: message}
}

// MinValue builds an inclusive numeric lower bound.
func MinValue(n float64, message string) Constraint {
	return Constraint{Kind: ConstraintMinValue, Value: n, Message: message}
}

// OneOf restricts the value to the field's option list.
func OneOf(message string) Constraint {
	return Constraint{Kind: ConstraintOneOf, Message: message}
}

// Layout values understood by editors for array fields.
const (
	LayoutTags = "tags"
)

// ListOption is one entry of an enumerated option list.
type ListOption struct {
	Title string `json:"title" yaml:"title"`
	Value string `json:"value" yaml:"value"`
}

// FieldOptions carries kind specific editor configuration.
type FieldOptions struct {
	// Source names the field a slug is generated from.
	Source string `json:"source,omitempty" yaml:"source,omitempty"`
	// MaxLength truncates generated slugs.
	MaxLength int `json:"maxLength,omitempty" yaml:"maxLength,omitempty"`
	// Layout is the array render hint ("tags").
	Layout string `json:"layout,omitempty" yaml:"layout,omitempty"`
	// List enumerates allowed values with display titles.
	List []ListOption `json:"list,omitempty" yaml:"list,omitempty"`
	// Hotspot enables focal point selection for images.
	Hotspot bool `json:"hotspot,omitempty" yaml:"hotspot,omitempty"`
}

// Values returns the raw values of the option list in order.
func (o FieldOptions) Values() []string {
	if len(o.List) == 0 {
		return nil
	}
	out := make([]string, len(o.List))
	for i, opt := range o.List {
		out[i] = opt.Value
	}
	return out
}

// Field describes one attribute of a document type.
type Field struct {
	Name        string       `json:"name" yaml:"name"`
	Kind        FieldKind    `json:"kind" yaml:"kind"`
	Label       string       `json:"label" yaml:"label"`
	Description string       `json:"description,omitempty" yaml:"description,omitempty"`
	Options     FieldOptions `json:"options,omitempty" yaml:"options,omitempty"`
	Constraints []Constraint `json:"validation,omitempty" yaml:"validation,omitempty"`
}

// Required reports whether the field carries a required constraint.
func (f Field) Required() bool {
	return f.Constraint(ConstraintRequired) != nil
}

// Constraint returns the first constraint of the given kind, or nil.
func (f Field) Constraint(kind ConstraintKind) *Constraint {
	for i := range f.Constraints {
		if f.Constraints[i].Kind == kind {
			c := f.Constraints[i]
			return &c
		}
	}
	return nil
}

// DocumentType is the aggregate schema for one kind of content entry.
type DocumentType struct {
	Name   string  `json:"name" yaml:"name"`
	Title  string  `json:"title" yaml:"title"`
	Fields []Field `json:"fields" yaml:"fields"`
}

// Field looks up a field by name.
func (d DocumentType) Field(name string) (Field, bool) {
	for _, field := range d.Fields {
		if field.Name == name {
			return field, true
		}
	}
	return Field{}, false
}

// SlugField returns the first slug field.
func (d DocumentType) SlugField() (Field, bool) {
	for _, field := range d.Fields {
		if field.Kind == KindSlug {
			return field, true
		}
	}
	return Field{}, false
}

// FieldNames returns the declared field names in order.
func (d DocumentType) FieldNames() []string {
	out := make([]string, len(d.Fields))
	for i, field := range d.Fields {
		out[i] = field.Name
	}
	return out
}

// Clone returns a deep copy so callers can mutate the result without touching
// shared descriptors.
func (d DocumentType) Clone() DocumentType {
	out := DocumentType{Name: d.Name, Title: d.Title}
	if d.Fields == nil {
		return out
	}
	out.Fields = make([]Field, len(d.Fields))
	for i, field := range d.Fields {
		out.Fields[i] = field.Clone()
	}
	return out
}

// Clone returns a deep copy of the field.
func (f Field) Clone() Field {
	out := f
	if f.Options.List != nil {
		out.Options.List = append([]ListOption(nil), f.Options.List...)
	}
	if f.Constraints != nil {
		out.Constraints = append([]Constraint(nil), f.Constraints...)
	}
	return out
}
