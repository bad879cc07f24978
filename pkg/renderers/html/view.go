package html

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/biologist01/HACKATHON-THREE-2025/pkg/render"
	"github.com/biologist01/HACKATHON-THREE-2025/pkg/schema"
)

type formView struct {
	Name        string
	Title       string
	Action      string
	Method      string
	SubmitLabel string
	Theme       rendererTheme
	FormErrors  []string
	Hidden      []render.HiddenField
	Fields      []fieldView
}

type fieldView struct {
	Name        string
	ID          string
	Kind        string
	Label       string
	Control     string
	InputType   string
	Value       string
	Placeholder string
	Help        string
	DescribedBy string
	Required    bool
	MinLength   int
	MaxLength   int
	HasMin      bool
	Min         string
	Rows        int
	SlugSource  string
	Layout      string
	Hotspot     bool
	Options     []optionView
	Errors      []string
}

type optionView struct {
	Title    string
	Value    string
	Selected bool
}

func buildFieldView(typeName string, field schema.Field, value any, errors []string) fieldView {
	view := fieldView{
		Name:      field.Name,
		ID:        typeName + "-" + field.Name,
		Kind:      string(field.Kind),
		Label:     field.Label,
		Control:   "input",
		InputType: "text",
		Required:  field.Required(),
		Help:      sanitizeHelp(field.Description),
		Errors:    render.MergeFormErrors(errors),
	}

	if c := field.Constraint(schema.ConstraintMaxLength); c != nil && field.Kind.IsText() {
		view.MaxLength = int(c.Value)
	}
	if c := field.Constraint(schema.ConstraintMinLength); c != nil && field.Kind.IsText() {
		view.MinLength = int(c.Value)
	}

	switch field.Kind {
	case schema.KindSlug:
		view.Value = slugText(value)
		view.SlugSource = field.Options.Source
		view.MaxLength = field.Options.MaxLength
	case schema.KindLongText, schema.KindSEODescription:
		view.Control = "textarea"
		view.Value = text(value)
		view.Rows = 3
		if field.Kind == schema.KindLongText {
			view.Rows = 6
		}
	case schema.KindNumber:
		view.InputType = "number"
		view.Value = numberText(value)
		if c := field.Constraint(schema.ConstraintMinValue); c != nil {
			view.HasMin = true
			view.Min = strconv.FormatFloat(c.Value, 'f', -1, 64)
		}
	case schema.KindStringArray, schema.KindColorArray, schema.KindTagArray:
		view.Value = strings.Join(listItems(value), ", ")
		view.Layout = field.Options.Layout
		view.Placeholder = "Comma separated"
	case schema.KindImageReference:
		view.Value = imageRef(value)
		view.Hotspot = field.Options.Hotspot
		view.Placeholder = "image-…"
	case schema.KindCategoryEnum:
		view.Control = "select"
		selected := text(value)
		for _, option := range field.Options.List {
			view.Options = append(view.Options, optionView{
				Title:    option.Title,
				Value:    option.Value,
				Selected: option.Value == selected,
			})
		}
	default:
		view.Value = text(value)
	}

	var describedBy []string
	if view.Help != "" {
		describedBy = append(describedBy, view.ID+"-help")
	}
	if len(view.Errors) > 0 {
		describedBy = append(describedBy, view.ID+"-errors")
	}
	view.DescribedBy = strings.Join(describedBy, " ")
	return view
}

func text(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

func slugText(value any) string {
	switch v := value.(type) {
	case map[string]any:
		return text(v["current"])
	case map[string]string:
		return v["current"]
	default:
		return text(value)
	}
}

func imageRef(value any) string {
	switch v := value.(type) {
	case map[string]any:
		if asset, ok := v["asset"].(map[string]any); ok {
			return text(asset["_ref"])
		}
		return ""
	default:
		return text(value)
	}
}

func numberText(value any) string {
	switch v := value.(type) {
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	default:
		return text(value)
	}
}

func listItems(value any) []string {
	switch v := value.(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			out = append(out, text(item))
		}
		return out
	case string:
		if v == "" {
			return nil
		}
		return []string{v}
	default:
		return nil
	}
}
