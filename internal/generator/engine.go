package generator

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"text/template"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// fileData is the struct passed to the per-runner scaffolding templates.
// The body lines are produced by each generator's emission tables; the
// template only arranges them inside the runner's describe/test skeleton.
type fileData struct {
	Provenance string
	Context    string
	Scenario   string
	Lines      []string
}

// engine renders the embedded scaffolding templates. Templates are embedded
// rather than loaded from disk so generation stays a pure function of IR
// content.
type engine struct {
	templates map[string]*template.Template
}

func newEngine() (*engine, error) {
	e := &engine{templates: make(map[string]*template.Template)}

	entries, err := templateFS.ReadDir("templates")
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded templates: %w", err)
	}
	for _, entry := range entries {
		content, err := templateFS.ReadFile("templates/" + entry.Name())
		if err != nil {
			return nil, fmt.Errorf("failed to read template %s: %w", entry.Name(), err)
		}
		name := strings.TrimSuffix(entry.Name(), ".tmpl")
		tmpl, err := template.New(name).Funcs(funcMap()).Parse(string(content))
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", entry.Name(), err)
		}
		e.templates[name] = tmpl
	}
	return e, nil
}

func (e *engine) render(name string, data fileData) (string, error) {
	tmpl, ok := e.templates[name]
	if !ok {
		return "", fmt.Errorf("template %q not found", name)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template %q: %w", name, err)
	}
	return buf.String(), nil
}

// funcMap returns the custom functions available in scaffolding templates.
func funcMap() template.FuncMap {
	return template.FuncMap{
		"js":        jsString,
		"toLower":   strings.ToLower,
		"trimSpace": strings.TrimSpace,
		"indent": func(spaces int, s string) string {
			pad := strings.Repeat(" ", spaces)
			lines := strings.Split(s, "\n")
			for i, line := range lines {
				if line != "" {
					lines[i] = pad + line
				}
			}
			return strings.Join(lines, "\n")
		},
	}
}

// sharedEngine is built once; templates are embedded and immutable.
var sharedEngine = mustEngine()

func mustEngine() *engine {
	e, err := newEngine()
	if err != nil {
		panic(err)
	}
	return e
}
