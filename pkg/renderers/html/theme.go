package html

import (
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"
)

// Asset key resolved through the theme for an optional stylesheet link.
const themeAssetStylesheet = "clothing.stylesheet"

type rendererTheme struct {
	Name         string
	Variant      string
	Partials     map[string]string
	Tokens       map[string]string
	CSSVars      map[string]string
	CSSVarsStyle string
	Stylesheet   string
}

func buildThemeContext(cfg *theme.RendererConfig) rendererTheme {
	if cfg == nil {
		return rendererTheme{}
	}
	ctx := rendererTheme{
		Name:     cfg.Theme,
		Variant:  cfg.Variant,
		Partials: copyStringMap(cfg.Partials),
		Tokens:   copyStringMap(cfg.Tokens),
		CSSVars:  copyStringMap(cfg.CSSVars),
	}
	ctx.CSSVarsStyle = cssVarsStyle(ctx.CSSVars)
	if resolver := cfg.AssetURL; resolver != nil {
		ctx.Stylesheet = strings.TrimSpace(resolver(themeAssetStylesheet))
	}
	return ctx
}

func copyStringMap(in map[string]string) map[string]string {
	if len(in) == 0 {
		return nil
	}
	out := make(map[string]string, len(in))
	for key, value := range in {
		out[key] = value
	}
	return out
}

// cssVarsStyle renders CSS variables as a :root block. Entries whose name or
// value could close the style element are dropped.
func cssVarsStyle(vars map[string]string) string {
	if len(vars) == 0 {
		return ""
	}
	keys := make([]string, 0, len(vars))
	for key := range vars {
		if strings.ContainsAny(key+vars[key], "<>{}") {
			continue
		}
		keys = append(keys, key)
	}
	if len(keys) == 0 {
		return ""
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(":root {\n")
	for _, key := range keys {
		name := key
		if !strings.HasPrefix(name, "--") {
			name = "--" + name
		}
		b.WriteString(name)
		b.WriteString(": ")
		b.WriteString(vars[key])
		b.WriteString(";\n")
	}
	b.WriteString("}")
	return b.String()
}
