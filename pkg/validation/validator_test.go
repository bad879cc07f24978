package validation_test

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/biologist01/HACKATHON-THREE-2025/pkg/clothing"
	"github.com/biologist01/HACKATHON-THREE-2025/pkg/schema"
	"github.com/biologist01/HACKATHON-THREE-2025/pkg/testsupport"
	"github.com/biologist01/HACKATHON-THREE-2025/pkg/validation"
)

func TestValidate_ValidItem(t *testing.T) {
	result := validation.Validate(clothing.Describe(), testsupport.ValidItem())
	if !result.Valid {
		t.Fatalf("expected valid document, got %#v", result.Errors)
	}
	if len(result.Errors) != 0 {
		t.Fatalf("expected zero errors, got %d", len(result.Errors))
	}
	if err := result.Err(); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
}

func TestValidate_ClassicTeeWithoutSlug(t *testing.T) {
	doc := map[string]any{
		"name":        "Classic Tee",
		"description": "A soft cotton t-shirt for everyday wear.",
		"price":       19.99,
		"sizes":       []any{"S", "M", "L"},
		"colors":      []any{"black", "white"},
		"image": map[string]any{
			"_type": "image",
			"asset": map[string]any{"_type": "reference", "_ref": "image-2f6b1c0e-1200x1200-jpg"},
		},
		"category": "shirts",
	}

	result := validation.Validate(clothing.Describe(), doc)
	if !result.Valid || len(result.Errors) != 0 {
		t.Fatalf("expected valid document with zero errors, got %#v", result.Errors)
	}
	if _, ok := doc["slug"]; ok {
		t.Fatalf("validate must not write the derived slug")
	}
}

func TestValidate_SlugWithoutUsableSource(t *testing.T) {
	cases := []struct {
		name string
		doc  map[string]any
		want []validation.FieldError
	}{
		{
			name: "no name",
			doc:  map[string]any{},
			want: []validation.FieldError{
				{Field: clothing.FieldName, Message: clothing.MsgName, Constraint: schema.ConstraintRequired},
				{Field: clothing.FieldSlug, Message: clothing.MsgSlug, Constraint: schema.ConstraintRequired},
			},
		},
		{
			name: "name without sluggable characters",
			doc:  map[string]any{clothing.FieldName: "!!!"},
			want: []validation.FieldError{
				{Field: clothing.FieldSlug, Message: clothing.MsgSlug, Constraint: schema.ConstraintRequired},
			},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result := validation.Validate(clothing.Describe(), tc.doc)
			var got []validation.FieldError
			for _, fe := range result.Errors {
				if fe.Field == clothing.FieldName || fe.Field == clothing.FieldSlug {
					got = append(got, fe)
				}
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("errors mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestValidate_EmptyDocumentReportsEveryRequiredField(t *testing.T) {
	result := validation.Validate(clothing.Describe(), map[string]any{})

	want := []validation.FieldError{
		{Field: clothing.FieldName, Message: clothing.MsgName, Constraint: schema.ConstraintRequired},
		{Field: clothing.FieldSlug, Message: clothing.MsgSlug, Constraint: schema.ConstraintRequired},
		{Field: clothing.FieldDescription, Message: clothing.MsgDescription, Constraint: schema.ConstraintRequired},
		{Field: clothing.FieldPrice, Message: clothing.MsgPrice, Constraint: schema.ConstraintRequired},
		{Field: clothing.FieldSizes, Message: clothing.MsgSizes, Constraint: schema.ConstraintRequired},
		{Field: clothing.FieldColors, Message: clothing.MsgColors, Constraint: schema.ConstraintRequired},
		{Field: clothing.FieldImage, Message: clothing.MsgImage, Constraint: schema.ConstraintRequired},
		{Field: clothing.FieldCategory, Message: clothing.MsgCategory, Constraint: schema.ConstraintRequired},
	}
	if result.Valid {
		t.Fatalf("expected invalid result")
	}
	if diff := cmp.Diff(want, result.Errors); diff != "" {
		t.Fatalf("errors mismatch (-want +got):\n%s", diff)
	}
}

func TestValidate_NilDocumentBehavesLikeEmpty(t *testing.T) {
	got := validation.Validate(clothing.Describe(), nil)
	want := validation.Validate(clothing.Describe(), map[string]any{})
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("nil document mismatch (-want +got):\n%s", diff)
	}
}

func TestValidate_MissingNameMessage(t *testing.T) {
	doc := testsupport.ValidItem()
	delete(doc, clothing.FieldName)

	result := validation.Validate(clothing.Describe(), doc)
	errs := result.ForField(clothing.FieldName)
	if len(errs) == 0 {
		t.Fatalf("expected error for name")
	}
	if errs[0].Message != "Product name is required and cannot exceed 100 characters." {
		t.Fatalf("unexpected message %q", errs[0].Message)
	}
}

func TestValidate_FieldBoundaries(t *testing.T) {
	cases := []struct {
		name  string
		field string
		value any
		want  []schema.ConstraintKind
	}{
		{"name single char", clothing.FieldName, "T", nil},
		{"name at max", clothing.FieldName, strings.Repeat("a", 100), nil},
		{"name over max", clothing.FieldName, strings.Repeat("a", 101), []schema.ConstraintKind{schema.ConstraintMaxLength}},
		{"name empty", clothing.FieldName, "", []schema.ConstraintKind{schema.ConstraintRequired}},
		{"name wrong type", clothing.FieldName, 42, []schema.ConstraintKind{schema.ConstraintMaxLength}},
		{"description 19", clothing.FieldDescription, strings.Repeat("d", 19), []schema.ConstraintKind{schema.ConstraintMinLength}},
		{"description 20", clothing.FieldDescription, strings.Repeat("d", 20), nil},
		{"description 500", clothing.FieldDescription, strings.Repeat("d", 500), nil},
		{"description 501", clothing.FieldDescription, strings.Repeat("d", 501), []schema.ConstraintKind{schema.ConstraintMaxLength}},
		{"price zero", clothing.FieldPrice, 0.0, nil},
		{"price integer", clothing.FieldPrice, 25, nil},
		{"price negative", clothing.FieldPrice, -0.01, []schema.ConstraintKind{schema.ConstraintMinValue}},
		{"price text", clothing.FieldPrice, "12", []schema.ConstraintKind{schema.ConstraintMinValue}},
		{"sizes empty", clothing.FieldSizes, []any{}, []schema.ConstraintKind{schema.ConstraintRequired}},
		{"sizes one", clothing.FieldSizes, []any{"M"}, nil},
		{"sizes typed", clothing.FieldSizes, []string{"S", "M"}, nil},
		{"colors empty", clothing.FieldColors, []string{}, []schema.ConstraintKind{schema.ConstraintRequired}},
		{"colors one", clothing.FieldColors, []any{"black"}, nil},
		{"category unknown", clothing.FieldCategory, "jackets", []schema.ConstraintKind{schema.ConstraintOneOf}},
		{"category known", clothing.FieldCategory, "shirts", nil},
		{"category case sensitive", clothing.FieldCategory, "Shirts", []schema.ConstraintKind{schema.ConstraintOneOf}},
		{"tags empty", clothing.FieldTags, []any{}, nil},
		{"seo title 60", clothing.FieldSEOTitle, strings.Repeat("s", 60), nil},
		{"seo title 61", clothing.FieldSEOTitle, strings.Repeat("s", 61), []schema.ConstraintKind{schema.ConstraintMaxLength}},
		{"seo description 160", clothing.FieldSEODescription, strings.Repeat("s", 160), nil},
		{"seo description 161", clothing.FieldSEODescription, strings.Repeat("s", 161), []schema.ConstraintKind{schema.ConstraintMaxLength}},
		{"slug empty current derived from name", clothing.FieldSlug, map[string]any{"_type": "slug", "current": ""}, nil},
		{"slug without current derived from name", clothing.FieldSlug, map[string]any{"_type": "slug"}, nil},
		{"slug plain string", clothing.FieldSlug, "classic-tee", nil},
		{"slug at max", clothing.FieldSlug, map[string]any{"_type": "slug", "current": strings.Repeat("s", 200)}, nil},
		{"slug over max", clothing.FieldSlug, map[string]any{"_type": "slug", "current": strings.Repeat("s", 201)}, []schema.ConstraintKind{schema.ConstraintMaxLength}},
		{"image without asset", clothing.FieldImage, map[string]any{"_type": "image"}, []schema.ConstraintKind{schema.ConstraintRequired}},
		{"image plain reference", clothing.FieldImage, "image-abc-600x600-png", nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			doc := testsupport.ValidItem()
			doc[tc.field] = tc.value

			result := validation.Validate(clothing.Describe(), doc)
			var got []schema.ConstraintKind
			for _, fe := range result.Errors {
				if fe.Field != tc.field {
					t.Fatalf("unexpected error on other field: %v", fe)
				}
				got = append(got, fe.Constraint)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("constraints mismatch (-want +got):\n%s", diff)
			}
			if result.Valid != (len(tc.want) == 0) {
				t.Fatalf("valid flag %v does not match %d errors", result.Valid, len(tc.want))
			}
		})
	}
}

func TestValidate_NegativePriceMessage(t *testing.T) {
	doc := testsupport.ValidItem()
	doc[clothing.FieldPrice] = -5

	errs := validation.Validate(clothing.Describe(), doc).ForField(clothing.FieldPrice)
	if len(errs) != 1 || errs[0].Message != "Price must be a positive value." {
		t.Fatalf("unexpected price errors: %#v", errs)
	}
}

func TestValidate_OptionalSEOFields(t *testing.T) {
	doc := testsupport.ValidItem()
	delete(doc, clothing.FieldSEOTitle)
	delete(doc, clothing.FieldSEODescription)
	if result := validation.Validate(clothing.Describe(), doc); !result.Valid {
		t.Fatalf("expected absent seo fields to pass, got %#v", result.Errors)
	}

	doc[clothing.FieldSEOTitle] = strings.Repeat("x", 61)
	result := validation.Validate(clothing.Describe(), doc)
	want := []validation.FieldError{{
		Field:      clothing.FieldSEOTitle,
		Message:    "SEO title cannot exceed 60 characters.",
		Constraint: schema.ConstraintMaxLength,
	}}
	if diff := cmp.Diff(want, result.Errors); diff != "" {
		t.Fatalf("seo title errors mismatch (-want +got):\n%s", diff)
	}
}

func TestValidate_TextLengthCountsUTF16Units(t *testing.T) {
	cases := []struct {
		value string
		want  int
	}{
		{"", 0},
		{"tee", 3},
		{"café", 4},
		{"👕", 2},
		{"👕 tee", 6},
	}
	for _, tc := range cases {
		if got := validation.TextLength(tc.value); got != tc.want {
			t.Fatalf("TextLength(%q) = %d, want %d", tc.value, got, tc.want)
		}
	}

	doc := testsupport.ValidItem()
	doc[clothing.FieldSEOTitle] = strings.Repeat("👕", 30)
	if result := validation.Validate(clothing.Describe(), doc); !result.Valid {
		t.Fatalf("30 emoji (60 units) should pass, got %#v", result.Errors)
	}
	doc[clothing.FieldSEOTitle] = strings.Repeat("👕", 31)
	if result := validation.Validate(clothing.Describe(), doc); len(result.Errors) != 1 {
		t.Fatalf("31 emoji (62 units) should fail once, got %#v", result.Errors)
	}
	doc[clothing.FieldSEOTitle] = strings.Repeat("é", 60)
	if result := validation.Validate(clothing.Describe(), doc); !result.Valid {
		t.Fatalf("60 accented runes should pass, got %#v", result.Errors)
	}
}

func TestValidate_CollectsAcrossFields(t *testing.T) {
	doc := testsupport.ValidItem()
	doc[clothing.FieldName] = strings.Repeat("n", 101)
	doc[clothing.FieldDescription] = "too short"
	doc[clothing.FieldCategory] = "jackets"

	result := validation.Validate(clothing.Describe(), doc)
	want := []validation.FieldError{
		{Field: clothing.FieldName, Message: clothing.MsgName, Constraint: schema.ConstraintMaxLength},
		{Field: clothing.FieldDescription, Message: clothing.MsgDescription, Constraint: schema.ConstraintMinLength},
		{Field: clothing.FieldCategory, Message: clothing.MsgCategoryUnknown, Constraint: schema.ConstraintOneOf},
	}
	if diff := cmp.Diff(want, result.Errors); diff != "" {
		t.Fatalf("errors mismatch (-want +got):\n%s", diff)
	}

	wantMessages := map[string][]string{
		clothing.FieldName:        {clothing.MsgName},
		clothing.FieldDescription: {clothing.MsgDescription},
		clothing.FieldCategory:    {clothing.MsgCategoryUnknown},
	}
	if diff := cmp.Diff(wantMessages, result.Messages()); diff != "" {
		t.Fatalf("messages mismatch (-want +got):\n%s", diff)
	}
}

func TestValidate_DoesNotMutateDocument(t *testing.T) {
	doc := testsupport.ValidItem()
	doc[clothing.FieldPrice] = -1
	before := testsupport.ValidItem()
	before[clothing.FieldPrice] = -1

	_ = validation.Validate(clothing.Describe(), doc)
	if diff := cmp.Diff(before, doc); diff != "" {
		t.Fatalf("document mutated (-want +got):\n%s", diff)
	}
}

func TestResult_ErrUnwrapsFieldErrors(t *testing.T) {
	doc := testsupport.ValidItem()
	delete(doc, clothing.FieldImage)

	err := validation.Validate(clothing.Describe(), doc).Err()
	if err == nil {
		t.Fatalf("expected error")
	}

	var verr *validation.Error
	if !errors.As(err, &verr) {
		t.Fatalf("expected *validation.Error, got %T", err)
	}
	var fe validation.FieldError
	if !errors.As(err, &fe) {
		t.Fatalf("expected FieldError in chain")
	}
	if fe.Field != clothing.FieldImage || fe.Message != clothing.MsgImage {
		t.Fatalf("unexpected field error %#v", fe)
	}
	if !strings.Contains(err.Error(), "image: Clothing image is required.") {
		t.Fatalf("unexpected error text %q", err.Error())
	}
}

func TestValidate_ConcurrentCallers(t *testing.T) {
	desc := clothing.Describe()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if result := validation.Validate(desc, testsupport.ValidItem()); !result.Valid {
				t.Errorf("expected valid result, got %#v", result.Errors)
			}
		}()
	}
	wg.Wait()
}
