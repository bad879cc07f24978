package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"

	"github.com/biologist01/HACKATHON-THREE-2025/pkg/clothing"
	"github.com/biologist01/HACKATHON-THREE-2025/pkg/renderers/tui"
	"github.com/biologist01/HACKATHON-THREE-2025/pkg/testsupport"
)

// defaultsDriver accepts every prompt default.
type defaultsDriver struct {
	prompts []string
}

func (d *defaultsDriver) Input(_ context.Context, cfg tui.InputConfig) (string, error) {
	d.prompts = append(d.prompts, cfg.Message)
	return cfg.Default, nil
}

func (d *defaultsDriver) Confirm(_ context.Context, cfg tui.ConfirmConfig) (bool, error) {
	return cfg.Default, nil
}

func (d *defaultsDriver) Select(_ context.Context, cfg tui.SelectConfig) (int, error) {
	d.prompts = append(d.prompts, cfg.Message)
	return cfg.DefaultIndex, nil
}

func (d *defaultsDriver) TextArea(_ context.Context, cfg tui.TextAreaConfig) (string, error) {
	d.prompts = append(d.prompts, cfg.Message)
	return cfg.Default, nil
}

func (d *defaultsDriver) Info(context.Context, string) error { return nil }

type cliResult struct {
	stdout string
	stderr string
	err    error
}

func runCLI(t *testing.T, driver tui.PromptDriver, args ...string) cliResult {
	t.Helper()
	var stdout, stderr bytes.Buffer
	params := &cliParams{
		streams:      streams{in: strings.NewReader(""), out: &stdout, err: &stderr},
		promptDriver: driver,
	}
	cmd := newRootCmd(params)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(testsupport.Context())
	return cliResult{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

func writeJSON(t *testing.T, dir, name string, doc map[string]any) string {
	t.Helper()
	data, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal %s: %v", name, err)
	}
	return testsupport.WriteFile(t, dir, name, data)
}

func TestDescribe_JSON(t *testing.T) {
	res := runCLI(t, nil, "describe")
	if res.err != nil {
		t.Fatalf("describe: %v", res.err)
	}

	var desc struct {
		Name   string `json:"name"`
		Fields []struct {
			Name string `json:"name"`
		} `json:"fields"`
	}
	if err := json.Unmarshal([]byte(res.stdout), &desc); err != nil {
		t.Fatalf("decode: %v\n%s", err, res.stdout)
	}
	if desc.Name != clothing.TypeName || len(desc.Fields) != 11 {
		t.Fatalf("unexpected descriptor %#v", desc)
	}
}

func TestDescribe_YAML(t *testing.T) {
	res := runCLI(t, nil, "describe", "--format", "yaml")
	if res.err != nil {
		t.Fatalf("describe: %v", res.err)
	}
	var desc map[string]any
	if err := yaml.Unmarshal([]byte(res.stdout), &desc); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if desc["title"] != "Clothing Item" {
		t.Fatalf("unexpected title %#v", desc["title"])
	}
}

func TestDescribe_OpenAPIWithConfigVersion(t *testing.T) {
	dir := t.TempDir()
	cfgPath := testsupport.WriteFile(t, dir, "config.yaml", []byte("openapi:\n  version: 3.2.1\n"))
	out := filepath.Join(dir, "clothing.openapi.json")

	res := runCLI(t, nil, "--config", cfgPath, "describe", "-f", "openapi", "-o", out)
	if res.err != nil {
		t.Fatalf("describe: %v", res.err)
	}
	if res.stdout != "" {
		t.Fatalf("expected nothing on stdout, got %q", res.stdout)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	var doc struct {
		OpenAPI string `json:"openapi"`
		Info    struct {
			Version string `json:"version"`
		} `json:"info"`
		Components struct {
			Schemas map[string]struct {
				Required []string `json:"required"`
			} `json:"schemas"`
		} `json:"components"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if doc.Info.Version != "3.2.1" {
		t.Fatalf("expected configured version, got %q", doc.Info.Version)
	}
	want := []string{"name", "slug", "description", "price", "sizes", "colors", "image", "category"}
	if diff := cmp.Diff(want, doc.Components.Schemas[clothing.TypeName].Required); diff != "" {
		t.Fatalf("required mismatch (-want +got):\n%s", diff)
	}
}

func TestDescribe_UnknownFormat(t *testing.T) {
	res := runCLI(t, nil, "describe", "--format", "xml")
	if res.err == nil || !strings.Contains(res.err.Error(), `unknown format "xml"`) {
		t.Fatalf("expected format error, got %v", res.err)
	}
}

func TestValidate_ReportsEveryFailure(t *testing.T) {
	dir := t.TempDir()
	good := writeJSON(t, dir, "good.json", testsupport.ValidItem())

	bad := testsupport.ValidItem()
	bad[clothing.FieldPrice] = -5.0
	delete(bad, clothing.FieldImage)
	badPath := writeJSON(t, dir, "bad.json", bad)

	res := runCLI(t, nil, "validate", good, badPath)
	if !errors.Is(res.err, errInvalidDocuments) {
		t.Fatalf("expected errInvalidDocuments, got %v", res.err)
	}

	want := strings.Join([]string{
		good + ": ok",
		badPath + ": price: " + clothing.MsgPrice,
		badPath + ": image: " + clothing.MsgImage,
		"",
	}, "\n")
	if diff := cmp.Diff(want, res.stdout); diff != "" {
		t.Fatalf("report mismatch (-want +got):\n%s", diff)
	}
}

func TestValidate_DirectoryDerivesSlugFromName(t *testing.T) {
	dir := t.TempDir()
	writeJSON(t, dir, "classic-tee.json", testsupport.ClassicTee())
	testsupport.WriteFile(t, dir, "notes.txt", []byte("ignored"))
	writeJSON(t, dir, "unnamed.json", map[string]any{clothing.FieldPrice: 10.0})

	want := strings.Join([]string{
		filepath.Join(dir, "classic-tee.json") + ": ok",
		filepath.Join(dir, "unnamed.json") + ": name: " + clothing.MsgName,
		filepath.Join(dir, "unnamed.json") + ": slug: " + clothing.MsgSlug,
	}, "\n")
	for _, args := range [][]string{{"validate", dir}, {"validate", "--fill-slug", dir}} {
		res := runCLI(t, nil, args...)
		if !errors.Is(res.err, errInvalidDocuments) {
			t.Fatalf("%v: expected errInvalidDocuments, got %v", args, res.err)
		}
		if !strings.HasPrefix(res.stdout, want) {
			t.Fatalf("%v: unexpected output %q", args, res.stdout)
		}
	}
}

func TestValidate_FillSlugFromConfig(t *testing.T) {
	dir := t.TempDir()
	doc := writeJSON(t, dir, "classic-tee.json", testsupport.ClassicTee())
	cfgPath := testsupport.WriteFile(t, dir, "config.yaml", []byte("validate:\n  fill_slug: true\n"))

	filled := func(args ...string) bool {
		t.Helper()
		res := runCLI(t, nil, append([]string{"-c", cfgPath, "validate", "--format", "json"}, args...)...)
		if res.err != nil {
			t.Fatalf("validate %v: %v\n%s", args, res.err, res.stdout)
		}
		var reports []validateReport
		if err := json.Unmarshal([]byte(res.stdout), &reports); err != nil || len(reports) != 1 {
			t.Fatalf("decode %v: %v\n%s", args, err, res.stdout)
		}
		return reports[0].SlugFilled
	}
	if !filled(doc) {
		t.Fatalf("expected config to enable slug filling")
	}
	if filled("--fill-slug=false", doc) {
		t.Fatalf("flag should override config")
	}
}

func TestValidate_JSONReport(t *testing.T) {
	dir := t.TempDir()
	doc := writeJSON(t, dir, "classic-tee.json", testsupport.ClassicTee())

	res := runCLI(t, nil, "validate", "--fill-slug", "--format", "json", doc)
	if res.err != nil {
		t.Fatalf("validate: %v", res.err)
	}
	var reports []map[string]any
	if err := json.Unmarshal([]byte(res.stdout), &reports); err != nil {
		t.Fatalf("decode: %v\n%s", err, res.stdout)
	}
	want := []map[string]any{{"source": doc, "valid": true, "slugFilled": true}}
	if diff := cmp.Diff(want, reports); diff != "" {
		t.Fatalf("report mismatch (-want +got):\n%s", diff)
	}
}

func TestValidate_Errors(t *testing.T) {
	if res := runCLI(t, nil, "validate"); res.err == nil {
		t.Fatalf("expected argument error")
	}
	if res := runCLI(t, nil, "validate", filepath.Join(t.TempDir(), "absent.json")); res.err == nil || errors.Is(res.err, errInvalidDocuments) {
		t.Fatalf("expected load error, got %v", res.err)
	}
}

func TestRender_PrefilledWithInlineErrors(t *testing.T) {
	dir := t.TempDir()
	values := testsupport.ClassicTee()
	values[clothing.FieldPrice] = -2.0
	valuesPath := writeJSON(t, dir, "tee.json", values)

	res := runCLI(t, nil, "render", "--values", valuesPath, "--action", "/studio/items")
	if res.err != nil {
		t.Fatalf("render: %v", res.err)
	}
	for _, fragment := range []string{
		`action="/studio/items"`,
		`name="name" value="Classic Tee"`,
		`aria-describedby="clothingItem-price-errors" aria-invalid="true"`,
		clothing.MsgPrice,
	} {
		if !strings.Contains(res.stdout, fragment) {
			t.Fatalf("expected %q in output\n%s", fragment, res.stdout)
		}
	}
}

func TestRender_SubsetToFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "form.html")
	res := runCLI(t, nil, "render", "--only", "name,price", "-o", out)
	if res.err != nil {
		t.Fatalf("render: %v", res.err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	html := string(data)
	if !strings.Contains(html, `name="price"`) || strings.Contains(html, `name="sizes"`) {
		t.Fatalf("expected only name and price controls\n%s", html)
	}
}

func TestRender_ServerErrorPayload(t *testing.T) {
	dir := t.TempDir()
	errorsPath := testsupport.WriteFile(t, dir, "errors.yaml", []byte(`
/body/slug/current: Slug already taken.
sizes[0]:
  - Size XS is discontinued.
request: Catalogue is read-only.
`))

	res := runCLI(t, nil, "render", "--errors", errorsPath)
	if res.err != nil {
		t.Fatalf("render: %v", res.err)
	}
	for _, fragment := range []string{
		`<ul class="cms-field__errors" id="clothingItem-slug-errors" role="alert">`,
		`<li>Slug already taken.</li>`,
		`<ul class="cms-field__errors" id="clothingItem-sizes-errors" role="alert">`,
		`<li>Size XS is discontinued.</li>`,
		`<li>Catalogue is read-only.</li>`,
	} {
		if !strings.Contains(res.stdout, fragment) {
			t.Fatalf("expected %q in output\n%s", fragment, res.stdout)
		}
	}

	bad := testsupport.WriteFile(t, dir, "bad.yaml", []byte("name: {nested: true}\n"))
	if res := runCLI(t, nil, "render", "--errors", bad); res.err == nil || !strings.Contains(res.err.Error(), "expected a message") {
		t.Fatalf("expected payload error, got %v", res.err)
	}
}

func TestAuthor_AcceptsPrefilledDefaults(t *testing.T) {
	dir := t.TempDir()
	valuesPath := writeJSON(t, dir, "tee.json", testsupport.ValidItem())
	driver := &defaultsDriver{}

	res := runCLI(t, driver, "author", "--values", valuesPath, "--format", "yaml")
	if res.err != nil {
		t.Fatalf("author: %v", res.err)
	}
	if len(driver.prompts) != 11 {
		t.Fatalf("expected one prompt per field, got %d: %v", len(driver.prompts), driver.prompts)
	}

	var doc map[string]any
	if err := yaml.Unmarshal([]byte(res.stdout), &doc); err != nil {
		t.Fatalf("decode: %v\n%s", err, res.stdout)
	}
	if doc["_type"] != clothing.TypeName || doc["name"] != "Classic Tee" {
		t.Fatalf("unexpected document %#v", doc)
	}
	if id, _ := doc["_id"].(string); id == "" {
		t.Fatalf("expected generated _id")
	}
}

func TestAuthor_InvalidFormat(t *testing.T) {
	res := runCLI(t, &defaultsDriver{}, "author", "--format", "toml")
	if res.err == nil || !strings.Contains(res.err.Error(), `unknown format "toml"`) {
		t.Fatalf("expected format error, got %v", res.err)
	}
}

func TestLogging_FlagsOverrideConfig(t *testing.T) {
	dir := t.TempDir()
	cfgPath := testsupport.WriteFile(t, dir, "config.yaml", []byte("logging:\n  level: error\n  format: json\n"))

	res := runCLI(t, nil, "--config", cfgPath, "--log-level", "debug", "describe")
	if res.err != nil {
		t.Fatalf("describe: %v", res.err)
	}
	var entry map[string]any
	line := strings.SplitN(strings.TrimSpace(res.stderr), "\n", 2)[0]
	if err := json.Unmarshal([]byte(line), &entry); err != nil {
		t.Fatalf("expected JSON log line, got %q: %v", res.stderr, err)
	}
	if entry["level"] != "debug" {
		t.Fatalf("expected debug entry, got %#v", entry)
	}

	res = runCLI(t, nil, "--config", cfgPath, "describe")
	if res.stderr != "" {
		t.Fatalf("error level should silence debug logs, got %q", res.stderr)
	}
}

func TestRoot_RejectsBadLogFormat(t *testing.T) {
	res := runCLI(t, nil, "--log-format", "xml", "describe")
	if res.err == nil || !strings.Contains(res.err.Error(), "logging.format") {
		t.Fatalf("expected log format error, got %v", res.err)
	}
}
