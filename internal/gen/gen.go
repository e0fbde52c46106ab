// Package gen renders one bounded string type per configured capacity from a
// single template. The output is committed to the microstring package and
// checked for freshness by its tests.
package gen

import (
	"bytes"
	_ "embed"
	"fmt"
	"path/filepath"
	"text/template"

	"github.com/google/renameio/v2"
	"golang.org/x/tools/imports"
)

//go:embed string.go.tmpl
var stringTemplate string

var tmpl = template.Must(template.New("string").Parse(stringTemplate))

type templateData struct {
	Name     string
	Lower    string
	Capacity int
	MarkType string
}

// Render returns the formatted Go source for t.
func Render(t Type) ([]byte, error) {
	if err := (&Config{Types: []Type{t}}).Validate(); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	err := tmpl.Execute(&buf, templateData{
		Name:     t.Name,
		Lower:    t.lower(),
		Capacity: t.Capacity,
		MarkType: t.markType(),
	})
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", t.Name, err)
	}
	out, err := imports.Process(t.FileName(), buf.Bytes(), &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		return nil, fmt.Errorf("format %s: %w", t.Name, err)
	}
	return out, nil
}

// Generate renders every type in cfg into dir, replacing existing files
// atomically. It returns the paths written.
func Generate(cfg *Config, dir string) ([]string, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	paths := make([]string, 0, len(cfg.Types))
	for _, t := range cfg.Types {
		src, err := Render(t)
		if err != nil {
			return paths, err
		}
		path := filepath.Join(dir, t.FileName())
		if err := renameio.WriteFile(path, src, 0o644); err != nil {
			return paths, fmt.Errorf("write %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}
