package validation

import (
	"github.com/biologist01/HACKATHON-THREE-2025/pkg/schema"
	"github.com/biologist01/HACKATHON-THREE-2025/pkg/slug"
)

// Validate evaluates every constraint of every field in desc against doc.
// Missing keys read as absent values. Fields and constraints are evaluated in
// declaration order and every failing constraint is reported; the result is
// valid only when nothing failed. An empty slug is checked as the value its
// source field derives, so it only fails when the source cannot produce one.
// Validate does not modify doc and is safe for concurrent use.
func Validate(desc schema.DocumentType, doc map[string]any) Result {
	var errs []FieldError
	for _, field := range desc.Fields {
		value := doc[field.Name]
		if field.Kind == schema.KindSlug {
			value = derivedSlug(field, doc, value)
		}
		errs = append(errs, ValidateField(field, value)...)
	}
	return Result{Valid: len(errs) == 0, Errors: errs}
}

func derivedSlug(field schema.Field, doc map[string]any, value any) any {
	if _, present := resolve(field.Kind, value); present {
		return value
	}
	current, err := slug.Generate(field, doc)
	if err != nil {
		return value
	}
	return slug.Value(current)
}

// ValidateField evaluates the constraints of a single field against value.
func ValidateField(field schema.Field, value any) []FieldError {
	if len(field.Constraints) == 0 {
		return nil
	}
	resolved, present := resolve(field.Kind, value)

	var errs []FieldError
	for _, c := range field.Constraints {
		if c.Kind != schema.ConstraintRequired && !present {
			// Bounds only apply to values that were supplied.
			continue
		}
		if !holds(field, c, resolved, present) {
			errs = append(errs, FieldError{
				Field:      field.Name,
				Message:    c.Message,
				Constraint: c.Kind,
			})
		}
	}
	return errs
}

func holds(field schema.Field, c schema.Constraint, value any, present bool) bool {
	switch c.Kind {
	case schema.ConstraintRequired:
		return present
	case schema.ConstraintMaxLength:
		n, ok := measure(value)
		return ok && float64(n) <= c.Value
	case schema.ConstraintMinLength:
		n, ok := measure(value)
		return ok && float64(n) >= c.Value
	case schema.ConstraintMinValue:
		f, ok := number(value)
		return ok && f >= c.Value
	case schema.ConstraintOneOf:
		s, ok := value.(string)
		if !ok {
			return false
		}
		for _, allowed := range field.Options.Values() {
			if s == allowed {
				return true
			}
		}
		return false
	default:
		// unknown kinds are rejected by schema.Check
		return true
	}
}
