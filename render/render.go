package render

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"text/template"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/randalmurphal/scanplan/repoconfig"
)

//go:embed templates/*.tmpl
var embeddedTemplates embed.FS

const templateExt = ".tmpl"

// DefaultTemplate is the name of the built-in scan configuration template.
const DefaultTemplate = "codeql-config.yml"

// ErrTemplateNotFound indicates no search directory or embedded file
// provides the requested template.
var ErrTemplateNotFound = errors.New("template not found")

// Data is the input to a scan configuration template.
type Data struct {
	Repo          string
	Language      string
	PathsIgnored  []string
	RulesExcluded []string
	Queries       []repoconfig.Query
}

// Renderer loads and renders templates.
type Renderer struct {
	dirs []string

	mu      sync.Mutex
	cache   map[string]*template.Template
	funcMap template.FuncMap
}

// New creates a renderer that searches dirs in order before falling back
// to the embedded templates. Empty entries are ignored.
func New(dirs ...string) *Renderer {
	r := &Renderer{
		cache:   make(map[string]*template.Template),
		funcMap: defaultFuncMap(),
	}
	for _, d := range dirs {
		if d != "" {
			r.dirs = append(r.dirs, d)
		}
	}
	return r
}

// Render executes the named template with data.
func (r *Renderer) Render(name string, data Data) (string, error) {
	tmpl, err := r.template(name)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render template %s: %w", name, err)
	}
	out := buf.String()
	if !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	return out, nil
}

// Exists reports whether a template can be found.
func (r *Renderer) Exists(name string) bool {
	_, err := r.loadRaw(name)
	return err == nil
}

// List returns the names of all available templates, sorted.
func (r *Renderer) List() []string {
	names := make(map[string]bool)

	for _, dir := range r.dirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, e := range entries {
			if !e.IsDir() && strings.HasSuffix(e.Name(), templateExt) {
				names[strings.TrimSuffix(e.Name(), templateExt)] = true
			}
		}
	}

	entries, _ := embeddedTemplates.ReadDir("templates")
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), templateExt) {
			names[strings.TrimSuffix(e.Name(), templateExt)] = true
		}
	}

	result := make([]string, 0, len(names))
	for n := range names {
		result = append(result, n)
	}
	sort.Strings(result)
	return result
}

func (r *Renderer) template(name string) (*template.Template, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if tmpl, ok := r.cache[name]; ok {
		return tmpl, nil
	}

	content, err := r.loadRaw(name)
	if err != nil {
		return nil, err
	}

	tmpl, err := template.New(name).Option("missingkey=error").Funcs(r.funcMap).Parse(content)
	if err != nil {
		return nil, fmt.Errorf("parse template %s: %w", name, err)
	}
	r.cache[name] = tmpl
	return tmpl, nil
}

func (r *Renderer) loadRaw(name string) (string, error) {
	filename := name + templateExt

	for _, dir := range r.dirs {
		data, err := os.ReadFile(filepath.Join(dir, filename))
		if err == nil {
			return string(data), nil
		}
	}

	data, err := embeddedTemplates.ReadFile("templates/" + filename)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrTemplateNotFound, name)
	}
	return string(data), nil
}

func defaultFuncMap() template.FuncMap {
	return template.FuncMap{
		"title": title,
		"quote": quote,
		"join":  strings.Join,
		"lower": strings.ToLower,
	}
}

// A Caser is stateful, so title builds one per call.
func title(s string) string {
	return cases.Title(language.English).String(s)
}

// quote renders s as a double-quoted YAML scalar.
func quote(s string) (string, error) {
	out, err := yaml.Marshal(&yaml.Node{
		Kind:  yaml.ScalarNode,
		Style: yaml.DoubleQuotedStyle,
		Value: s,
	})
	if err != nil {
		return "", fmt.Errorf("quote %q: %w", s, err)
	}
	return strings.TrimSuffix(string(out), "\n"), nil
}
