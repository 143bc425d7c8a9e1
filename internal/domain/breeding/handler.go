package breeding

import (
	"encoding/json"
	"errors"
	"net/http"

	"sheep-breeding-web/internal/domain/sheep"
	"sheep-breeding-web/internal/platform/logger"
	"sheep-breeding-web/internal/web"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes monta las páginas HTML de cruza y relaciones.
// /sheep/breed es estático y chi lo prioriza sobre /sheep/{sheepID}.
func RegisterRoutes(r chi.Router, svc *Service, views *web.TemplateSet, log logger.Logger) {
	r.Get("/sheep/breed", breedPageHandler(svc, views, log))
	r.Get("/relationships", relationshipsPageHandler(svc, views, log))
}

// RegisterAPIRoutes monta la API JSON. r ya viene con prefijo /api.
func RegisterAPIRoutes(r chi.Router, svc *Service) {
	r.Get("/breed/{sheep1ID}/{sheep2ID}", predictHandler(svc))
	r.Get("/relationships", listRelationshipsHandler(svc))
}

type breedPage struct {
	Sheep1     string
	Sheep2     string
	Message    string
	Prediction *sheep.PredictionView
}

type relationshipItem struct {
	ID        int
	Parent1ID int
	Parent2ID int
	Offspring int
}

type relationshipsPage struct {
	BackendDown bool
	Items       []relationshipItem
}

type relationshipResponse struct {
	ID        int `json:"id"`
	Parent1ID int `json:"parent1Id"`
	Parent2ID int `json:"parent2Id"`
	Offspring int `json:"offspring"`
}

// breedPageHandler: sin parámetros muestra sólo el formulario.
func breedPageHandler(svc *Service, views *web.TemplateSet, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		page := breedPage{Sheep1: q.Get("sheep1"), Sheep2: q.Get("sheep2")}
		status := http.StatusOK

		if q.Has("sheep1") || q.Has("sheep2") {
			pv, err := svc.Predict(r.Context(), page.Sheep1, page.Sheep2)
			switch {
			case err == nil:
				page.Prediction = &pv
			case errors.Is(err, ErrInvalidInput):
				status = http.StatusBadRequest
				page.Message = err.Error()
			case errors.Is(err, sheep.ErrNotFound):
				status = http.StatusNotFound
				page.Message = "sheep not found"
			default:
				log.Warn("predict failed", map[string]any{"sheep1": page.Sheep1, "sheep2": page.Sheep2, "error": err})
				status = http.StatusBadGateway
				page.Message = "Failed to fetch prediction"
			}
		}

		if err := views.Render(w, r, status, web.ViewBreed, web.ViewData{Data: page}); err != nil {
			log.Error("render failed", map[string]any{"template": web.ViewBreed.Template, "error": err})
			http.Error(w, "internal error", http.StatusInternalServerError)
		}
	}
}

func relationshipsPageHandler(svc *Service, views *web.TemplateSet, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page := relationshipsPage{}

		items, err := svc.Relationships(r.Context())
		if err != nil {
			log.Warn("list relationships failed", map[string]any{"error": err})
			page.BackendDown = true
		} else {
			page.Items = make([]relationshipItem, 0, len(items))
			for _, rel := range items {
				page.Items = append(page.Items, relationshipItem{
					ID:        rel.ID,
					Parent1ID: rel.Parent1ID,
					Parent2ID: rel.Parent2ID,
					Offspring: rel.Offspring(),
				})
			}
		}

		if err := views.Render(w, r, http.StatusOK, web.ViewRelationships, web.ViewData{Data: page}); err != nil {
			log.Error("render failed", map[string]any{"template": web.ViewRelationships.Template, "error": err})
			http.Error(w, "internal error", http.StatusInternalServerError)
		}
	}
}

// predictHandler godoc
// @Summary Predecir fenotipo de la cría
// @Description Distribución de fenotipo por categoría para una cría de (sheep1, sheep2). El orden del par se respeta.
// @Tags breeding
// @Produce json
// @Param sheep1ID path int true "ID de la primera oveja"
// @Param sheep2ID path int true "ID de la segunda oveja"
// @Success 200 {object} sheep.PredictionView
// @Failure 400 {string} string "ids inválidos"
// @Failure 404 {string} string "sheep not found"
// @Failure 502 {string} string "backend unavailable"
// @Router /api/breed/{sheep1ID}/{sheep2ID} [get]
func predictHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pv, err := svc.Predict(r.Context(), chi.URLParam(r, "sheep1ID"), chi.URLParam(r, "sheep2ID"))
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, err.Error(), http.StatusBadRequest)
			case errors.Is(err, sheep.ErrNotFound):
				http.Error(w, "sheep not found", http.StatusNotFound)
			default:
				http.Error(w, "backend unavailable", http.StatusBadGateway)
			}
			return
		}

		writeJSON(w, http.StatusOK, pv)
	}
}

// listRelationshipsHandler godoc
// @Summary Listar relaciones
// @Description Parejas registradas, ordenadas por id, con la cantidad de crías.
// @Tags breeding
// @Produce json
// @Success 200 {array} relationshipResponse
// @Failure 502 {string} string "backend unavailable"
// @Router /api/relationships [get]
func listRelationshipsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.Relationships(r.Context())
		if err != nil {
			http.Error(w, "backend unavailable", http.StatusBadGateway)
			return
		}

		out := make([]relationshipResponse, 0, len(items))
		for _, rel := range items {
			out = append(out, relationshipResponse{
				ID:        rel.ID,
				Parent1ID: rel.Parent1ID,
				Parent2ID: rel.Parent2ID,
				Offspring: rel.Offspring(),
			})
		}

		writeJSON(w, http.StatusOK, out)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
