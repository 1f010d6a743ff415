// Package web holds the site's HTML templates and static assets.
package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Page names accepted by Render.
const (
	PageHome         = "index"
	PageMenu         = "menu"
	PageAbout        = "about"
	PageContact      = "contact"
	PageReservations = "reservations"
	PageNotFound     = "404"
)

var pageNames = []string{PageHome, PageMenu, PageAbout, PageContact, PageReservations, PageNotFound}

// PageData is passed to every template.
type PageData struct {
	Title  string
	Active string
	Data   any
	Year   int
}

// Pages renders the site's pages. Each page is parsed together with the
// shared layout once, at construction.
type Pages struct {
	templates map[string]*template.Template
}

func NewPages() (*Pages, error) {
	funcs := template.FuncMap{
		"price": func(p float64) string { return fmt.Sprintf("€%.2f", p) },
		"title": func(s any) string {
			return cases.Title(language.English).String(fmt.Sprint(s))
		},
		"join": strings.Join,
	}

	p := &Pages{templates: make(map[string]*template.Template, len(pageNames))}
	for _, name := range pageNames {
		t, err := template.New("layout.html").Funcs(funcs).ParseFS(templateFS,
			"templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parse %s template: %w", name, err)
		}
		p.templates[name] = t
	}
	return p, nil
}

// Render writes page with the given status. The page is rendered into a
// buffer first so a template error never leaves a half-written response.
func (p *Pages) Render(w http.ResponseWriter, status int, page string, data PageData) error {
	t, ok := p.templates[page]
	if !ok {
		return fmt.Errorf("unknown page %q", page)
	}
	if data.Year == 0 {
		data.Year = time.Now().Year()
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout.html", data); err != nil {
		return fmt.Errorf("render %s: %w", page, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}

// Static serves the embedded assets. Mount it under /static/ with the
// prefix stripped.
func Static() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.FileServer(http.FS(sub))
}
