package sheep

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// RegisterAPIRoutes monta la API JSON de lectura. r ya viene con prefijo /api.
func RegisterAPIRoutes(r chi.Router, svc *Service) {
	r.Route("/sheep", func(sr chi.Router) {
		sr.Get("/", listSheepHandler(svc))
		sr.Post("/preview", previewSheepHandler())
		sr.Get("/{sheepID}", getSheepHandler(svc))
		sr.Get("/{sheepID}/family", getFamilyHandler(svc))
	})
}

type sheepSummaryResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type familyResponse struct {
	Sheep    SheepView   `json:"sheep"`
	Parents  []SheepView `json:"parents"`
	Children []SheepView `json:"children"`
	Partners []SheepView `json:"partners"`
}

// listSheepHandler godoc
// @Summary Listar ovejas
// @Description Devuelve id y nombre de cada oveja registrada en el backend. Sin nombre => "(unnamed)".
// @Tags sheep
// @Produce json
// @Success 200 {array} sheepSummaryResponse
// @Failure 502 {string} string "backend unavailable"
// @Router /api/sheep [get]
func listSheepHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			http.Error(w, "backend unavailable", http.StatusBadGateway)
			return
		}

		out := make([]sheepSummaryResponse, 0, len(items))
		for _, s := range items {
			out = append(out, sheepSummaryResponse{ID: s.ID, Name: DisplayName(s.Name)})
		}

		writeJSON(w, http.StatusOK, out)
	}
}

// getSheepHandler godoc
// @Summary Ver oveja
// @Description Devuelve la oveja ya formateada: genotipos y distribuciones PRIOR/INFERRED como porcentajes en orden fijo.
// @Tags sheep
// @Produce json
// @Param sheepID path int true "ID de la oveja"
// @Success 200 {object} SheepView
// @Failure 404 {string} string "sheep not found"
// @Failure 502 {string} string "backend unavailable"
// @Router /api/sheep/{sheepID} [get]
func getSheepHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := ParseID(chi.URLParam(r, "sheepID"))
		if err != nil {
			http.Error(w, "sheep not found", http.StatusNotFound)
			return
		}

		s, err := svc.Get(r.Context(), id)
		if err != nil {
			writeLookupError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, FormatSheep(s))
	}
}

// getFamilyHandler godoc
// @Summary Ver familia de una oveja
// @Description Padres (vacío si no tiene registrados), hijos y parejas de la oveja.
// @Tags sheep
// @Produce json
// @Param sheepID path int true "ID de la oveja"
// @Success 200 {object} familyResponse
// @Failure 404 {string} string "sheep not found"
// @Failure 502 {string} string "backend unavailable"
// @Router /api/sheep/{sheepID}/family [get]
func getFamilyHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := ParseID(chi.URLParam(r, "sheepID"))
		if err != nil {
			http.Error(w, "sheep not found", http.StatusNotFound)
			return
		}

		f, err := svc.Family(r.Context(), id)
		if err != nil {
			writeLookupError(w, err)
			return
		}

		out := familyResponse{
			Sheep:    FormatSheep(f.Sheep),
			Parents:  []SheepView{},
			Children: formatAll(f.Children),
			Partners: formatAll(f.Partners),
		}
		if f.Parents != nil {
			out.Parents = append(out.Parents, FormatSheep(f.Parents.Parent1), FormatSheep(f.Parents.Parent2))
		}

		writeJSON(w, http.StatusOK, out)
	}
}

// previewSheepHandler godoc
// @Summary Previsualizar alta de oveja
// @Description Convierte los campos del formulario de alta en el JSON que se enviaría al backend, sin enviarlo.
// @Tags sheep
// @Accept x-www-form-urlencoded
// @Produce json
// @Param name formData string false "Nombre; vacío => null"
// @Param parentRelationshipId formData string false "ID de relación padre; entero"
// @Success 200 {object} CreateRequest
// @Failure 400 {string} string "invalid input"
// @Router /api/sheep/preview [post]
func previewSheepHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "invalid form", http.StatusBadRequest)
			return
		}

		req, err := BuildCreateRequest(r.PostForm)
		if err == nil {
			err = Validate(req)
		}
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		writeJSON(w, http.StatusOK, req)
	}
}

func writeLookupError(w http.ResponseWriter, err error) {
	if errors.Is(err, ErrNotFound) {
		http.Error(w, "sheep not found", http.StatusNotFound)
		return
	}
	http.Error(w, "backend unavailable", http.StatusBadGateway)
}

// duplicado por módulo a propósito; cada paquete de dominio es autocontenido
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
