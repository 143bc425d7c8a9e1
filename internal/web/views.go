// Package web renderiza las páginas HTML del frontend con html/template.
// Los templates y los assets estáticos van embebidos en el binario.
package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"strings"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static/*
var staticFS embed.FS

const layoutName = "layout"

// View es una página: template + título.
type View struct {
	Template string
	Title    string
}

var (
	ViewSheepList     = View{Template: "sheep_list.html", Title: "Sheep List"}
	ViewSheepDetail   = View{Template: "sheep_detail.html", Title: "Sheep"}
	ViewSheepCreate   = View{Template: "sheep_create.html", Title: "New Sheep"}
	ViewSheepFamily   = View{Template: "sheep_family.html", Title: "Family"}
	ViewBreed         = View{Template: "breed.html", Title: "Breeding"}
	ViewRelationships = View{Template: "relationships.html", Title: "Relationships"}
	ViewNotFound      = View{Template: "not_found.html", Title: "Not Found"}
	ViewError         = View{Template: "error.html", Title: "Error"}
)

var allViews = []View{
	ViewSheepList,
	ViewSheepDetail,
	ViewSheepCreate,
	ViewSheepFamily,
	ViewBreed,
	ViewRelationships,
	ViewNotFound,
	ViewError,
}

// NavLink es una entrada del menú lateral.
type NavLink struct {
	Name string
	Href string
}

var navLinks = []NavLink{
	{Name: "Sheep List", Href: "/sheep"},
	{Name: "New Sheep", Href: "/sheep/create"},
	{Name: "Breeding", Href: "/sheep/breed"},
	{Name: "Relationships", Href: "/relationships"},
}

// ViewData es lo que recibe el layout. Data es específico de cada página.
type ViewData struct {
	Title   string
	Path    string
	Nav     []NavLink
	Data    any
	Flash   string
	IsError bool
}

// TemplateSet tiene los templates parseados una vez al arrancar (falla rápido si hay errores).
type TemplateSet struct {
	views map[string]*template.Template
}

func NewTemplateSet() (*TemplateSet, error) {
	layout, err := template.New("").Funcs(funcMap()).ParseFS(templateFS, "templates/layout.html")
	if err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}

	views := make(map[string]*template.Template, len(allViews))
	for _, v := range allViews {
		t, err := layout.Clone()
		if err != nil {
			return nil, fmt.Errorf("clone layout for %s: %w", v.Template, err)
		}
		if _, err := t.ParseFS(templateFS, "templates/"+v.Template); err != nil {
			return nil, fmt.Errorf("parse template %s: %w", v.Template, err)
		}
		views[v.Template] = t
	}

	return &TemplateSet{views: views}, nil
}

// Render escribe la vista con el status dado. Renderiza primero a un buffer
// para no mandar un 200 a medias si el template falla.
func (ts *TemplateSet) Render(w http.ResponseWriter, r *http.Request, status int, v View, data ViewData) error {
	t, ok := ts.views[v.Template]
	if !ok {
		return fmt.Errorf("template not found: %s", v.Template)
	}

	if data.Title == "" {
		data.Title = v.Title
	}
	data.Nav = navLinks
	if r != nil {
		data.Path = r.URL.Path
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, layoutName, data); err != nil {
		return fmt.Errorf("execute %s: %w", v.Template, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}

// RenderError muestra la página de error genérica. Si el template mismo falla, cae a texto plano.
func (ts *TemplateSet) RenderError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	err := ts.Render(w, r, status, ViewError, ViewData{
		Data:    msg,
		IsError: true,
	})
	if err != nil {
		http.Error(w, msg, status)
	}
}

// RenderNotFound muestra la página 404.
func (ts *TemplateSet) RenderNotFound(w http.ResponseWriter, r *http.Request, msg string) {
	if err := ts.Render(w, r, http.StatusNotFound, ViewNotFound, ViewData{Data: msg}); err != nil {
		http.Error(w, msg, http.StatusNotFound)
	}
}

// StaticHandler sirve /static/* desde el FS embebido.
func StaticHandler(prefix string) http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic("web: static sub-filesystem: " + err.Error())
	}
	return http.StripPrefix(prefix, http.FileServer(http.FS(sub)))
}

func funcMap() template.FuncMap {
	return template.FuncMap{
		"active": func(current, href string) bool {
			if href == "/sheep" {
				return current == href
			}
			return current == href || strings.HasPrefix(current, href+"/")
		},
		"lower": strings.ToLower,
	}
}
