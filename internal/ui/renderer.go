// Package ui renderiza las vistas HTML a partir de templates embebidos.
package ui

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"strings"
	"time"

	"petclinic/internal/platform/validation"
	"petclinic/internal/platform/web"
)

//go:embed templates
var templatesFS embed.FS

const layoutFile = "templates/layout.html"

// Renderer implementa web.Renderer. Cada vista se parsea junto con el layout
// en su propio set, así todas pueden definir "content".
type Renderer struct {
	views map[string]*template.Template
}

// page es el dato que reciben los templates.
type page struct {
	Name   string
	Model  web.Model
	Errors validation.Errors
}

func New() (*Renderer, error) {
	base, err := template.New("layout").Funcs(funcs()).ParseFS(templatesFS, layoutFile)
	if err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}

	views := make(map[string]*template.Template)
	err = fs.WalkDir(templatesFS, "templates", func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() || path == layoutFile || !strings.HasSuffix(path, ".html") {
			return err
		}

		t, err := base.Clone()
		if err != nil {
			return err
		}
		if _, err := t.ParseFS(templatesFS, path); err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}

		name := strings.TrimSuffix(strings.TrimPrefix(path, "templates/"), ".html")
		views[name] = t
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &Renderer{views: views}, nil
}

// MustNew es para main y tests: los templates son embebidos, un error es de build.
func MustNew() *Renderer {
	rd, err := New()
	if err != nil {
		panic(err)
	}
	return rd
}

// Has indica si existe la vista.
func (rd *Renderer) Has(name string) bool {
	_, ok := rd.views[name]
	return ok
}

func (rd *Renderer) Render(w http.ResponseWriter, _ *http.Request, v web.View) error {
	t, ok := rd.views[v.Name]
	if !ok {
		return fmt.Errorf("unknown view %q", v.Name)
	}

	// se ejecuta a un buffer para no dejar una respuesta a medias
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", page{Name: v.Name, Model: v.Model, Errors: v.Errors}); err != nil {
		return fmt.Errorf("render %s: %w", v.Name, err)
	}

	status := v.Status
	if status == 0 {
		status = http.StatusOK
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}

func funcs() template.FuncMap {
	return template.FuncMap{
		"fieldError": func(errs validation.Errors, field string) string {
			return errs.Message(field)
		},
		"hasError": func(errs validation.Errors, field string) bool {
			return errs.Has(field)
		},
		"formatDate": formatDate,
		"pages": func(total int) []int {
			out := make([]int, 0, total)
			for i := 1; i <= total; i++ {
				out = append(out, i)
			}
			return out
		},
		"pagerData": func(m web.Model, lastName string) map[string]any {
			return map[string]any{
				"currentPage": m["currentPage"],
				"totalPages":  m["totalPages"],
				"lastName":    lastName,
			}
		},
		"add": func(a, b int) int { return a + b },
		"sub": func(a, b int) int { return a - b },
	}
}

// formatDate acepta time.Time o *time.Time; nil o cero => "".
func formatDate(v any) string {
	switch t := v.(type) {
	case time.Time:
		if t.IsZero() {
			return ""
		}
		return t.Format("2006-01-02")
	case *time.Time:
		if t == nil || t.IsZero() {
			return ""
		}
		return t.Format("2006-01-02")
	default:
		return ""
	}
}
