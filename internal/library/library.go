// Package library provides the read-only catalog of exercises and workout
// templates used to build sessions
package library

import (
	"bytes"
	"fmt"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ayoisaiah/sculpt/internal/apperr"
	"github.com/ayoisaiah/sculpt/internal/static"
)

var (
	errReadCatalog = &apperr.Error{
		Message: "reading exercise catalog %s failed",
	}

	errParseCatalog = &apperr.Error{
		Message: "exercise catalog is not valid YAML",
	}

	errEmptyCatalog = &apperr.Error{
		Message: "exercise catalog must list at least one exercise",
	}

	errTemplateName = &apperr.Error{
		Message: "template #%d has no name",
	}

	errDuplicateTemplate = &apperr.Error{
		Message: "template %q is defined more than once",
	}
)

// Template is a named list of catalog entries used to seed a session.
type Template struct {
	Name      string   `yaml:"name"      json:"name"`
	Exercises []string `yaml:"exercises" json:"exercises"`
}

// Summary returns a one-line preview of the template: the first one or two
// exercise names, followed by an ellipsis if there are more.
func (t Template) Summary() string {
	if len(t.Exercises) == 0 {
		return "No exercises defined"
	}

	first, _ := ParseEntry(t.Exercises[0])
	if len(t.Exercises) == 1 {
		return first
	}

	second, _ := ParseEntry(t.Exercises[1])

	summary := first + ", " + second
	if len(t.Exercises) > 2 {
		summary += ", ..."
	}

	return summary
}

type catalog struct {
	Exercises []string   `yaml:"exercises"`
	Templates []Template `yaml:"templates"`
	Version   int        `yaml:"version"`
}

// Library is the exercise catalog. It is not modified after construction.
type Library struct {
	exercises []string
	templates []Template
}

// Parse builds a library from a YAML catalog.
func Parse(b []byte) (*Library, error) {
	var c catalog

	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)

	if err := dec.Decode(&c); err != nil {
		return nil, errParseCatalog.Wrap(err)
	}

	exercises := make([]string, 0, len(c.Exercises))

	for _, e := range c.Exercises {
		e = strings.TrimSpace(e)
		if e != "" {
			exercises = append(exercises, e)
		}
	}

	if len(exercises) == 0 {
		return nil, errEmptyCatalog
	}

	seen := make(map[string]bool, len(c.Templates))

	for i, tmpl := range c.Templates {
		name := strings.TrimSpace(tmpl.Name)
		if name == "" {
			return nil, errTemplateName.Fmt(i + 1)
		}

		key := strings.ToLower(name)
		if seen[key] {
			return nil, errDuplicateTemplate.Fmt(name)
		}

		seen[key] = true
		c.Templates[i].Name = name
	}

	return &Library{
		exercises: exercises,
		templates: c.Templates,
	}, nil
}

// Default returns the canonical catalog compiled into the binary.
func Default() *Library {
	l, err := Parse(static.Library())
	if err != nil {
		panic(fmt.Sprintf("embedded catalog is invalid: %v", err))
	}

	return l
}

// Load reads a catalog from path. The canonical catalog is returned if path
// is empty.
func Load(path string) (*Library, error) {
	if path == "" {
		return Default(), nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errReadCatalog.Fmt(path).Wrap(err)
	}

	return Parse(b)
}

// Exercises returns the catalog entries in order.
func (l *Library) Exercises() []string {
	return slices.Clone(l.exercises)
}

// Names returns the exercise names of the catalog entries in order.
func (l *Library) Names() []string {
	names := make([]string, len(l.exercises))

	for i, e := range l.exercises {
		names[i], _ = ParseEntry(e)
	}

	return names
}

// Templates returns the workout templates in order.
func (l *Library) Templates() []Template {
	templates := make([]Template, len(l.templates))

	for i, t := range l.templates {
		templates[i] = Template{
			Name:      t.Name,
			Exercises: slices.Clone(t.Exercises),
		}
	}

	return templates
}

// Template finds a template by name, ignoring case.
func (l *Library) Template(name string) (Template, bool) {
	for _, t := range l.Templates() {
		if strings.EqualFold(t.Name, strings.TrimSpace(name)) {
			return t, true
		}
	}

	return Template{}, false
}

// Lookup finds the catalog entry for an exercise name, ignoring case.
func (l *Library) Lookup(name string) (string, bool) {
	name = strings.TrimSpace(name)

	for _, e := range l.exercises {
		n, _ := ParseEntry(e)
		if strings.EqualFold(n, name) {
			return e, true
		}
	}

	return "", false
}
