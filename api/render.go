package api

import (
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"
	"strings"
	"time"
)

const (
	mediumDateFormat = "Mon 01, 02, 2006 3:04PM"
	fullDateFormat   = "Monday January, 2, 2006 at 3:04PM"
)

var templateFuncs = template.FuncMap{
	"datetime": formatDatetime,
	"join":     strings.Join,
	"contains": contains,
}

func formatDatetime(t time.Time, format string) string {
	switch format {
	case "full":
		return t.Format(fullDateFormat)
	case "medium":
		return t.Format(mediumDateFormat)
	default:
		return t.Format(format)
	}
}

func contains(list []string, value string) bool {
	for _, item := range list {
		if strings.EqualFold(item, value) {
			return true
		}
	}
	return false
}

// Renderer executes a page inside the shared layout. Pages are named by
// their path without extension, e.g. "pages/venues" or "forms/new_show".
type Renderer struct {
	pages map[string]*template.Template
}

// NewRenderer parses the layout and the form partials (files starting with
// an underscore) once, then clones them for every page.
func NewRenderer(fsys fs.FS) (*Renderer, error) {
	base, err := template.New("main").Funcs(templateFuncs).ParseFS(fsys, "layouts/*.html", "forms/_*.html")
	if err != nil {
		return nil, err
	}

	r := &Renderer{pages: map[string]*template.Template{}}
	for _, dir := range []string{"pages", "forms", "errors"} {
		files, err := fs.Glob(fsys, dir+"/*.html")
		if err != nil {
			return nil, err
		}
		for _, file := range files {
			if strings.HasPrefix(path.Base(file), "_") {
				continue
			}
			page, err := base.Clone()
			if err != nil {
				return nil, err
			}
			if _, err := page.ParseFS(fsys, file); err != nil {
				return nil, fmt.Errorf("parse %s: %w", file, err)
			}
			r.pages[strings.TrimSuffix(file, ".html")] = page
		}
	}
	return r, nil
}

// Has reports whether a page with that name was parsed.
func (r *Renderer) Has(name string) bool {
	_, ok := r.pages[name]
	return ok
}

// Execute writes the named page to w.
func (r *Renderer) Execute(w io.Writer, name string, data any) error {
	page, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("unknown page %q", name)
	}
	if err := page.ExecuteTemplate(w, "main", data); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}
	return nil
}
