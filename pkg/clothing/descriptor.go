package clothing

import (
	"sync"

	"github.com/biologist01/HACKATHON-THREE-2025/pkg/schema"
)

// TypeName is the document type identifier stored in `_type`.
const TypeName = "clothingItem"

// Field names.
const (
	FieldName           = "name"
	FieldSlug           = "slug"
	FieldDescription    = "description"
	FieldPrice          = "price"
	FieldSizes          = "sizes"
	FieldColors         = "colors"
	FieldImage          = "image"
	FieldCategory       = "category"
	FieldTags           = "tags"
	FieldSEOTitle       = "seoTitle"
	FieldSEODescription = "seoDescription"
)

// Editor-facing validation messages.
const (
	MsgName           = "Product name is required and cannot exceed 100 characters."
	MsgSlug           = "Slug is required for clothing identification."
	MsgDescription    = "Description must be between 20 and 500 characters."
	MsgPrice          = "Price must be a positive value."
	MsgSizes          = "At least one size must be specified."
	MsgColors         = "At least one color must be specified."
	MsgImage          = "Clothing image is required."
	MsgCategory       = "Category is required."
	MsgSEOTitle       = "SEO title cannot exceed 60 characters."
	MsgSEODescription = "SEO description cannot exceed 160 characters."
)

// MsgCategoryUnknown is reported when the category is not in the option list.
var MsgCategoryUnknown = "Category must be one of: " + categoryList() + "."

// Limits.
const (
	NameMaxLength           = 100
	SlugMaxLength           = 200
	DescriptionMinLength    = 20
	DescriptionMaxLength    = 500
	SEOTitleMaxLength       = 60
	SEODescriptionMaxLength = 160
)

var descriptor = sync.OnceValue(func() schema.DocumentType {
	return schema.MustCheck(build())
})

// Describe returns the clothing item descriptor. Each call returns an
// independent copy of the same immutable definition.
func Describe() schema.DocumentType {
	return descriptor().Clone()
}

func build() schema.DocumentType {
	return schema.DocumentType{
		Name:  TypeName,
		Title: "Clothing Item",
		Fields: []schema.Field{
			{
				Name:  FieldName,
				Kind:  schema.KindShortText,
				Label: "Product Name",
				Constraints: []schema.Constraint{
					schema.Required(MsgName),
					schema.MaxLength(NameMaxLength, MsgName),
				},
			},
			{
				Name:        FieldSlug,
				Kind:        schema.KindSlug,
				Label:       "Slug",
				Description: "URL-friendly identifier for the clothing item.",
				Options: schema.FieldOptions{
					Source:    FieldName,
					MaxLength: SlugMaxLength,
				},
				Constraints: []schema.Constraint{
					schema.Required(MsgSlug),
					schema.MaxLength(SlugMaxLength, MsgSlug),
				},
			},
			{
				Name:        FieldDescription,
				Kind:        schema.KindLongText,
				Label:       "Description",
				Description: "Detailed description of the clothing item.",
				Constraints: []schema.Constraint{
					schema.Required(MsgDescription),
					schema.MinLength(DescriptionMinLength, MsgDescription),
					schema.MaxLength(DescriptionMaxLength, MsgDescription),
				},
			},
			{
				Name:  FieldPrice,
				Kind:  schema.KindNumber,
				Label: "Price",
				Constraints: []schema.Constraint{
					schema.Required(MsgPrice),
					schema.MinValue(0, MsgPrice),
				},
			},
			{
				Name:        FieldSizes,
				Kind:        schema.KindStringArray,
				Label:       "Available Sizes",
				Description: "Available sizes for the clothing item (e.g., S, M, L, XL, XXL).",
				Options:     schema.FieldOptions{Layout: schema.LayoutTags},
				Constraints: []schema.Constraint{
					schema.Required(MsgSizes),
					schema.MinLength(1, MsgSizes),
				},
			},
			{
				Name:        FieldColors,
				Kind:        schema.KindColorArray,
				Label:       "Available Colors",
				Description: "Available colors for the clothing item.",
				Options:     schema.FieldOptions{Layout: schema.LayoutTags},
				Constraints: []schema.Constraint{
					schema.Required(MsgColors),
					schema.MinLength(1, MsgColors),
				},
			},
			{
				Name:        FieldImage,
				Kind:        schema.KindImageReference,
				Label:       "Clothing Image",
				Description: "High-quality image of the clothing item.",
				Options:     schema.FieldOptions{Hotspot: true},
				Constraints: []schema.Constraint{
					schema.Required(MsgImage),
				},
			},
			{
				Name:        FieldCategory,
				Kind:        schema.KindCategoryEnum,
				Label:       "Category",
				Description: "Category of the clothing item (e.g., Shirts, Pants, Dresses).",
				Options:     schema.FieldOptions{List: categoryOptions()},
				Constraints: []schema.Constraint{
					schema.Required(MsgCategory),
					schema.OneOf(MsgCategoryUnknown),
				},
			},
			{
				Name:        FieldTags,
				Kind:        schema.KindTagArray,
				Label:       "Tags",
				Description: `Add tags such as "new arrival", "sale", or "limited edition".`,
				Options:     schema.FieldOptions{Layout: schema.LayoutTags},
			},
			{
				Name:        FieldSEOTitle,
				Kind:        schema.KindSEOTitle,
				Label:       "SEO Title",
				Description: "Title for SEO optimization (max 60 characters).",
				Constraints: []schema.Constraint{
					schema.MaxLength(SEOTitleMaxLength, MsgSEOTitle),
				},
			},
			{
				Name:        FieldSEODescription,
				Kind:        schema.KindSEODescription,
				Label:       "SEO Description",
				Description: "Meta description for SEO optimization (max 160 characters).",
				Constraints: []schema.Constraint{
					schema.MaxLength(SEODescriptionMaxLength, MsgSEODescription),
				},
			},
		},
	}
}
