package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"blogly/internal/utils"
)

//go:embed templates/*.html
var templateFS embed.FS

const baseTemplateFile = "templates/base.html"

// page files rendered inside the base layout
var pageFiles = []string{
	"user_listing.html",
	"new_user.html",
	"user_detail.html",
	"edit_user.html",
	"new_post.html",
	"post_detail.html",
	"edit_post.html",
}

var funcs = template.FuncMap{
	"since": utils.HumanTimeFormat,
	"date": func(t time.Time) string {
		return t.Format("Mon Jan 2 2006, 3:04 PM")
	},
}

type templates struct {
	pages map[string]*template.Template
}

func loadTemplates() (*templates, error) {
	t := &templates{pages: make(map[string]*template.Template, len(pageFiles))}
	for _, name := range pageFiles {
		tmpl, err := template.New(name).Funcs(funcs).ParseFS(templateFS, baseTemplateFile, "templates/"+name)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		t.pages[name] = tmpl
	}
	return t, nil
}

// render executes the named page into a buffer before any header is written.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, name string, data map[string]any) {
	tmpl, ok := h.templates.pages[name]
	if !ok {
		h.fail(w, r, fmt.Errorf("unknown template %s", name))
		return
	}
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "base", data); err != nil {
		h.fail(w, r, fmt.Errorf("render %s: %w", name, err))
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	buf.WriteTo(w)
}
