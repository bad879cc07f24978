package schema

import (
	"errors"
	"fmt"
	"strings"
)

var (
	errTypeNameMissing = errors.New("schema: document type name is required")
	errNoSlugField     = errors.New("schema: document type requires exactly one slug field, found none")
)

// Check verifies the descriptor invariants: unique non-empty field names,
// exactly one slug field whose source references another declared field, and
// well formed constraints. Every violation is reported.
func (d DocumentType) Check() error {
	var errs []error
	if strings.TrimSpace(d.Name) == "" {
		errs = append(errs, errTypeNameMissing)
	}

	seen := make(map[string]struct{}, len(d.Fields))
	for idx, field := range d.Fields {
		name := strings.TrimSpace(field.Name)
		if name == "" {
			errs = append(errs, fmt.Errorf("schema: field at index %d has no name", idx))
			continue
		}
		if _, dup := seen[name]; dup {
			errs = append(errs, fmt.Errorf("schema: duplicate field name %q", name))
		}
		seen[name] = struct{}{}
		if err := checkField(field); err != nil {
			errs = append(errs, err)
		}
	}

	var slugs []Field
	for _, field := range d.Fields {
		if field.Kind == KindSlug {
			slugs = append(slugs, field)
		}
	}
	switch len(slugs) {
	case 0:
		errs = append(errs, errNoSlugField)
	case 1:
		source := slugs[0].Options.Source
		switch {
		case source == "":
			errs = append(errs, fmt.Errorf("schema: slug field %q has no source", slugs[0].Name))
		case source == slugs[0].Name:
			errs = append(errs, fmt.Errorf("schema: slug field %q cannot use itself as source", source))
		default:
			if _, ok := seen[source]; !ok {
				errs = append(errs, fmt.Errorf("schema: slug field %q references unknown source %q", slugs[0].Name, source))
			}
		}
	default:
		errs = append(errs, fmt.Errorf("schema: document type requires exactly one slug field, found %d", len(slugs)))
	}

	return errors.Join(errs...)
}

func checkField(field Field) error {
	if !field.Kind.Valid() {
		return fmt.Errorf("schema: field %q has unknown kind %q", field.Name, field.Kind)
	}
	for idx, c := range field.Constraints {
		if strings.TrimSpace(c.Message) == "" {
			return fmt.Errorf("schema: field %q constraint %d (%s) has no message", field.Name, idx, c.Kind)
		}
		switch c.Kind {
		case ConstraintRequired, ConstraintMinValue:
		case ConstraintMaxLength, ConstraintMinLength:
			if c.Value < 0 || c.Value != float64(int(c.Value)) {
				return fmt.Errorf("schema: field %q constraint %s needs a non-negative integer, got %v", field.Name, c.Kind, c.Value)
			}
		case ConstraintOneOf:
			if len(field.Options.List) == 0 {
				return fmt.Errorf("schema: field %q uses %s without an option list", field.Name, c.Kind)
			}
		default:
			return fmt.Errorf("schema: field %q has unknown constraint kind %q", field.Name, c.Kind)
		}
	}
	return nil
}

// MustCheck panics when the descriptor is invalid. Intended for package level
// descriptors that are built once at load time.
func MustCheck(d DocumentType) DocumentType {
	if err := d.Check(); err != nil {
		panic(err)
	}
	return d
}
