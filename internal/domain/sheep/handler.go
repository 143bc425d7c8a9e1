package sheep

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"sheep-breeding-web/internal/middleware"
	"sheep-breeding-web/internal/platform/logger"
	"sheep-breeding-web/internal/web"

	"github.com/go-chi/chi/v5"
)

// SectionState expone qué secciones de distribución tiene abiertas una sesión.
// Lo implementa uistate.Service; se define acá para evitar el ciclo sheep <-> uistate.
type SectionState interface {
	ExpandedSections(ctx context.Context, sessionID string) (map[Category]bool, error)
}

func RegisterRoutes(r chi.Router, svc *Service, sections SectionState, views *web.TemplateSet, log logger.Logger) {
	h := &pageHandler{svc: svc, sections: sections, views: views, log: log}

	r.Get("/sheep", h.list)
	r.Get("/sheep/create", h.createForm)
	r.Post("/sheep/create", h.create)
	r.Get("/sheep/{sheepID}", h.detail)
	r.Get("/sheep/{sheepID}/family", h.family)
}

type pageHandler struct {
	svc      *Service
	sections SectionState
	views    *web.TemplateSet
	log      logger.Logger
}

type listItem struct {
	ID    int
	Name  string
	Named bool
}

type listPage struct {
	BackendDown bool
	Items       []listItem
}

type createCell struct {
	Grade Grade
	Field string
	Value string
}

type createCategory struct {
	Category          Category
	PhenotypeField    string
	HiddenAlleleField string
	Phenotype         string
	HiddenAllele      string
	Expanded          bool
	Cells             []createCell
}

type createPage struct {
	Name                 string
	ParentRelationshipID string
	Grades               []Grade
	Categories           []createCategory
	Message              string
}

type familyPage struct {
	Sheep      SheepView
	HasParents bool
	Parent1    SheepView
	Parent2    SheepView
	Children   []SheepView
	Partners   []SheepView
}

// list: si el backend no responde se muestra el indicador en vez de fallar.
func (h *pageHandler) list(w http.ResponseWriter, r *http.Request) {
	page := listPage{}

	items, err := h.svc.List(r.Context())
	if err != nil {
		h.log.Warn("list sheep failed", map[string]any{"error": err})
		page.BackendDown = true
	} else {
		page.Items = make([]listItem, 0, len(items))
		for _, s := range items {
			page.Items = append(page.Items, listItem{
				ID:    s.ID,
				Name:  DisplayName(s.Name),
				Named: s.Name != nil && *s.Name != "",
			})
		}
	}

	h.render(w, r, http.StatusOK, web.ViewSheepList, web.ViewData{Data: page})
}

func (h *pageHandler) detail(w http.ResponseWriter, r *http.Request) {
	id, err := ParseID(chi.URLParam(r, "sheepID"))
	if err != nil {
		h.views.RenderNotFound(w, r, "sheep not found")
		return
	}

	s, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			h.views.RenderNotFound(w, r, "sheep not found")
			return
		}
		h.log.Warn("get sheep failed", map[string]any{"sheep_id": id, "error": err})
		h.views.RenderError(w, r, http.StatusBadGateway, "Failed to fetch sheep")
		return
	}

	view := FormatSheep(s)
	h.render(w, r, http.StatusOK, web.ViewSheepDetail, web.ViewData{Title: view.Name, Data: view})
}

func (h *pageHandler) family(w http.ResponseWriter, r *http.Request) {
	id, err := ParseID(chi.URLParam(r, "sheepID"))
	if err != nil {
		h.views.RenderNotFound(w, r, "sheep not found")
		return
	}

	f, err := h.svc.Family(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			h.views.RenderNotFound(w, r, "sheep not found")
			return
		}
		h.log.Warn("get family failed", map[string]any{"sheep_id": id, "error": err})
		h.views.RenderError(w, r, http.StatusBadGateway, "Failed to fetch family")
		return
	}

	page := familyPage{
		Sheep:    FormatSheep(f.Sheep),
		Children: formatAll(f.Children),
		Partners: formatAll(f.Partners),
	}
	if f.Parents != nil {
		page.HasParents = true
		page.Parent1 = FormatSheep(f.Parents.Parent1)
		page.Parent2 = FormatSheep(f.Parents.Parent2)
	}

	h.render(w, r, http.StatusOK, web.ViewSheepFamily, web.ViewData{Data: page})
}

func (h *pageHandler) createForm(w http.ResponseWriter, r *http.Request) {
	page := newCreatePage(nil, h.expanded(r), "")
	h.render(w, r, http.StatusOK, web.ViewSheepCreate, web.ViewData{Data: page})
}

// create: input inválido => 400 sin tocar la red; backend caído => 502; ok => redirect a la lista.
func (h *pageHandler) create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		page := newCreatePage(nil, h.expanded(r), "invalid form")
		h.render(w, r, http.StatusBadRequest, web.ViewSheepCreate, web.ViewData{Data: page})
		return
	}

	created, err := h.svc.Create(r.Context(), r.PostForm)
	if err != nil {
		status := http.StatusBadGateway
		msg := "Failed to create sheep"
		if errors.Is(err, ErrInvalidInput) {
			status = http.StatusBadRequest
			msg = err.Error()
		} else {
			h.log.Warn("create sheep failed", map[string]any{"error": err})
		}
		page := newCreatePage(r.PostForm, h.expanded(r), msg)
		h.render(w, r, status, web.ViewSheepCreate, web.ViewData{Data: page})
		return
	}

	h.log.Info("sheep created", map[string]any{"sheep_id": created.ID})
	http.Redirect(w, r, "/sheep", http.StatusSeeOther)
}

// expanded no es crítico: si falla el store, se muestra todo colapsado.
func (h *pageHandler) expanded(r *http.Request) map[Category]bool {
	sid, ok := middleware.GetSession(r.Context())
	if !ok || h.sections == nil {
		return nil
	}
	m, err := h.sections.ExpandedSections(r.Context(), sid)
	if err != nil {
		h.log.Warn("load ui state failed", map[string]any{"error": err})
		return nil
	}
	return m
}

func (h *pageHandler) render(w http.ResponseWriter, r *http.Request, status int, v web.View, data web.ViewData) {
	if err := h.views.Render(w, r, status, v, data); err != nil {
		h.log.Error("render failed", map[string]any{"template": v.Template, "error": err})
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

// newCreatePage arma el formulario; si form != nil se rellenan los valores enviados.
// Una sección con valores cargados se muestra abierta aunque el estado diga lo contrario.
func newCreatePage(form url.Values, expanded map[Category]bool, message string) createPage {
	page := createPage{
		Name:                 form.Get(FieldName),
		ParentRelationshipID: form.Get(FieldParentRelationshipID),
		Grades:               Grades,
		Categories:           make([]createCategory, 0, len(Categories)),
		Message:              message,
	}

	for _, c := range Categories {
		cc := createCategory{
			Category:          c,
			PhenotypeField:    PhenotypeField(c),
			HiddenAlleleField: HiddenAlleleField(c),
			Phenotype:         form.Get(PhenotypeField(c)),
			HiddenAllele:      form.Get(HiddenAlleleField(c)),
			Expanded:          expanded[c],
			Cells:             make([]createCell, 0, len(Grades)),
		}
		for _, g := range Grades {
			field := DistributionField(c, g)
			v := form.Get(field)
			if v != "" {
				cc.Expanded = true
			}
			cc.Cells = append(cc.Cells, createCell{Grade: g, Field: field, Value: v})
		}
		page.Categories = append(page.Categories, cc)
	}

	return page
}

func formatAll(items []Sheep) []SheepView {
	out := make([]SheepView, 0, len(items))
	for _, s := range items {
		out = append(out, FormatSheep(s))
	}
	return out
}
