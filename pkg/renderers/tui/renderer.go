// Package tui implements an interactive terminal session that collects one
// document for a descriptor, prompting once per field and validating each
// answer before moving on.
package tui

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/biologist01/HACKATHON-THREE-2025/pkg/render"
	"github.com/biologist01/HACKATHON-THREE-2025/pkg/schema"
	"github.com/biologist01/HACKATHON-THREE-2025/pkg/slug"
	"github.com/biologist01/HACKATHON-THREE-2025/pkg/validation"
)

// Name is the registry key of the TUI renderer.
const Name = "tui"

const skipOption = "(none)"

// Renderer implements render.Renderer for terminal-driven authoring.
type Renderer struct {
	driver            PromptDriver
	outputFormat      OutputFormat
	messages          io.Writer
	newID             func() string
	submitTransformer SubmitTransformer
	theme             Theme
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs a TUI renderer with defaults (survey driver, JSON output,
// random UUID ids).
func New(options ...Option) (*Renderer, error) {
	r := &Renderer{
		outputFormat: OutputFormatJSON,
		newID:        uuid.NewString,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	if _, ok := ParseOutputFormat(string(r.outputFormat)); !ok {
		return nil, fmt.Errorf("tui: unsupported output format %q", r.outputFormat)
	}
	if r.driver == nil {
		r.driver = newSurveyDriver(r.messages)
	}
	return r, nil
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string {
	return Name
}

// ContentType reports the serialisation format used by Render.
func (r *Renderer) ContentType() string {
	switch r.outputFormat {
	case OutputFormatYAML:
		return "application/yaml"
	case OutputFormatPrettyText:
		return "text/plain; charset=utf-8"
	default:
		return "application/json"
	}
}

// Render prompts for every field of desc (or the subset in opts.Only),
// re-validates the collected document and serialises it. Prefilled values
// become prompt defaults; prefilled errors are shown before their prompt.
func (r *Renderer) Render(ctx context.Context, desc schema.DocumentType, opts render.RenderOptions) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("tui: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.driver == nil {
		return nil, errors.New("tui: prompt driver is nil")
	}

	localized := render.Localize(desc, opts)
	fields := render.ApplySubset(localized, opts.Only)
	state := NewState(opts.Values, opts.Errors)

	for _, field := range fields {
		for _, message := range state.ErrorsFor(field.Name) {
			r.reportError(ctx, field.Label, message)
		}
		if err := r.promptField(ctx, field, state); err != nil {
			return nil, err
		}
	}

	values := state.Values()
	values["_type"] = desc.Name
	if id, _ := values["_id"].(string); strings.TrimSpace(id) == "" {
		values["_id"] = r.newID()
	}

	var failures []validation.FieldError
	for _, field := range fields {
		failures = append(failures, validation.ValidateField(field, values[field.Name])...)
	}
	if len(failures) > 0 {
		return nil, fmt.Errorf("tui: collected document is invalid: %w", &validation.Error{Errors: failures})
	}

	if r.submitTransformer != nil {
		var err error
		values, err = r.submitTransformer(values)
		if err != nil {
			return nil, fmt.Errorf("tui: submit transformer: %w", err)
		}
	}

	return r.serialize(fields, values)
}

func (r *Renderer) promptField(ctx context.Context, field schema.Field, state *State) error {
	switch field.Kind {
	case schema.KindSlug:
		return r.promptSlug(ctx, field, state)
	case schema.KindLongText, schema.KindSEODescription:
		return r.promptText(ctx, field, state, true)
	case schema.KindNumber:
		return r.promptNumber(ctx, field, state)
	case schema.KindStringArray, schema.KindColorArray, schema.KindTagArray:
		return r.promptList(ctx, field, state)
	case schema.KindImageReference:
		return r.promptImage(ctx, field, state)
	case schema.KindCategoryEnum:
		return r.promptEnum(ctx, field, state)
	default:
		return r.promptText(ctx, field, state, false)
	}
}

func (r *Renderer) promptText(ctx context.Context, field schema.Field, state *State, multiline bool) error {
	current, _ := state.Get(field.Name)
	defaultVal, _ := current.(string)
	convert := func(raw string) any {
		if strings.TrimSpace(raw) == "" {
			return nil
		}
		return raw
	}

	return r.ask(ctx, field, state, defaultVal, multiline, convert)
}

func (r *Renderer) promptSlug(ctx context.Context, field schema.Field, state *State) error {
	current, _ := state.Get(field.Name)
	defaultVal := slugCurrent(current)
	if defaultVal == "" {
		if generated, err := slug.Generate(field, state.Values()); err == nil {
			defaultVal = generated
		}
	}
	convert := func(raw string) any {
		normalized := slug.Make(raw, field.Options.MaxLength)
		if normalized == "" {
			return nil
		}
		return slug.Value(normalized)
	}

	return r.ask(ctx, field, state, defaultVal, false, convert)
}

func (r *Renderer) promptNumber(ctx context.Context, field schema.Field, state *State) error {
	current, _ := state.Get(field.Name)
	defaultVal := ""
	switch v := current.(type) {
	case float64:
		defaultVal = strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		defaultVal = strconv.Itoa(v)
	case string:
		defaultVal = v
	}

	for {
		response, err := r.driver.Input(ctx, InputConfig{
			Message:   promptLabel(field),
			Default:   defaultVal,
			Help:      field.Description,
			Validator: func(raw string) error { _, err := r.parseNumber(field, raw); return err },
		})
		if err != nil {
			return err
		}
		value, err := r.parseNumber(field, response)
		if err != nil {
			r.reportError(ctx, field.Label, err.Error())
			continue
		}
		state.Set(field.Name, value)
		return nil
	}
}

func (r *Renderer) parseNumber(field schema.Field, raw string) (any, error) {
	trimmed := strings.TrimSpace(raw)
	var value any
	if trimmed != "" {
		parsed, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return nil, fmt.Errorf("%q is not a number", trimmed)
		}
		value = parsed
	}
	if err := firstError(validation.ValidateField(field, value)); err != nil {
		return nil, err
	}
	return value, nil
}

func (r *Renderer) promptList(ctx context.Context, field schema.Field, state *State) error {
	current, _ := state.Get(field.Name)
	defaultVal := strings.Join(listStrings(current), ", ")
	convert := func(raw string) any {
		items := splitList(raw)
		if len(items) == 0 {
			return nil
		}
		return items
	}

	return r.ask(ctx, field, state, defaultVal, false, convert)
}

func (r *Renderer) promptImage(ctx context.Context, field schema.Field, state *State) error {
	current, _ := state.Get(field.Name)
	defaultVal := imageRef(current)
	convert := func(raw string) any {
		ref := strings.TrimSpace(raw)
		if ref == "" {
			return nil
		}
		return map[string]any{
			"_type": "image",
			"asset": map[string]any{"_type": "reference", "_ref": ref},
		}
	}

	return r.ask(ctx, field, state, defaultVal, false, convert)
}

func (r *Renderer) promptEnum(ctx context.Context, field schema.Field, state *State) error {
	var titles, values []string
	if !field.Required() {
		titles = append(titles, skipOption)
		values = append(values, "")
	}
	for _, option := range field.Options.List {
		titles = append(titles, option.Title)
		values = append(values, option.Value)
	}

	defaultIdx := -1
	if current, ok := state.Get(field.Name); ok {
		if s, ok := current.(string); ok {
			defaultIdx = indexOf(values, s)
		}
	}

	for {
		idx, err := r.driver.Select(ctx, SelectConfig{
			Message:      promptLabel(field),
			Options:      titles,
			DefaultIndex: defaultIdx,
			Help:         field.Description,
		})
		if err != nil {
			return err
		}
		if idx < 0 || idx >= len(values) {
			r.reportError(ctx, field.Label, "invalid selection")
			continue
		}

		var value any
		if values[idx] != "" {
			value = values[idx]
		}
		if err := firstError(validation.ValidateField(field, value)); err != nil {
			r.reportError(ctx, field.Label, err.Error())
			continue
		}
		state.Set(field.Name, value)
		return nil
	}
}

// ask runs a text prompt until convert(response) passes field validation.
func (r *Renderer) ask(ctx context.Context, field schema.Field, state *State, defaultVal string, multiline bool, convert func(string) any) error {
	validate := func(raw string) error {
		return firstError(validation.ValidateField(field, convert(raw)))
	}

	for {
		var (
			response string
			err      error
		)
		if multiline {
			response, err = r.driver.TextArea(ctx, TextAreaConfig{
				Message:   promptLabel(field),
				Default:   defaultVal,
				Help:      field.Description,
				Validator: validate,
			})
		} else {
			response, err = r.driver.Input(ctx, InputConfig{
				Message:   promptLabel(field),
				Default:   defaultVal,
				Help:      field.Description,
				Validator: validate,
			})
		}
		if err != nil {
			return err
		}

		if err := validate(response); err != nil {
			r.reportError(ctx, field.Label, err.Error())
			continue
		}
		state.Set(field.Name, convert(response))
		return nil
	}
}

func (r *Renderer) reportError(ctx context.Context, label, message string) {
	_ = r.driver.Info(ctx, fmt.Sprintf("%s%s: %s", r.theme.ErrorPrefix, label, message))
}

func (r *Renderer) serialize(fields []schema.Field, values map[string]any) ([]byte, error) {
	switch r.outputFormat {
	case OutputFormatYAML:
		out, err := yaml.Marshal(values)
		if err != nil {
			return nil, fmt.Errorf("tui: encode yaml: %w", err)
		}
		return out, nil
	case OutputFormatPrettyText:
		return prettyPrint(fields, values), nil
	default:
		out, err := json.MarshalIndent(values, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("tui: encode json: %w", err)
		}
		return append(out, '\n'), nil
	}
}

func promptLabel(field schema.Field) string {
	if field.Label != "" {
		return field.Label
	}
	return field.Name
}

func firstError(errs []validation.FieldError) error {
	if len(errs) == 0 {
		return nil
	}
	return errors.New(errs[0].Message)
}

func splitList(raw string) []any {
	var out []any
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func listStrings(value any) []string {
	switch v := value.(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			out = append(out, fmt.Sprint(item))
		}
		return out
	default:
		return nil
	}
}

func slugCurrent(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case map[string]any:
		s, _ := v["current"].(string)
		return s
	default:
		return ""
	}
}

func imageRef(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case map[string]any:
		asset, _ := v["asset"].(map[string]any)
		ref, _ := asset["_ref"].(string)
		return ref
	default:
		return ""
	}
}

func prettyPrint(fields []schema.Field, values map[string]any) []byte {
	var b bytes.Buffer
	if id, ok := values["_id"]; ok {
		fmt.Fprintf(&b, "ID: %v\n", id)
	}
	for _, field := range fields {
		value, ok := values[field.Name]
		if !ok {
			continue
		}
		var text string
		switch field.Kind {
		case schema.KindSlug:
			text = slugCurrent(value)
		case schema.KindImageReference:
			text = imageRef(value)
		case schema.KindStringArray, schema.KindColorArray, schema.KindTagArray:
			text = strings.Join(listStrings(value), ", ")
		default:
			text = fmt.Sprint(value)
		}
		fmt.Fprintf(&b, "%s: %s\n", promptLabel(field), text)
	}
	return b.Bytes()
}
