package uistate

import (
	"encoding/json"
	"errors"
	"net/http"

	"sheep-breeding-web/internal/domain/sheep"
	"sheep-breeding-web/internal/middleware"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes monta /ui/sections. r ya viene con prefijo /api.
// La sesión la resuelve middleware.Session (cookie flock_sid).
func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/ui/sections", func(ur chi.Router) {
		ur.Get("/", getSectionsHandler(svc))
		ur.Put("/{category}", setSectionHandler(svc))
		ur.Post("/{category}/toggle", toggleSectionHandler(svc))
	})
}

type setSectionRequest struct {
	Expanded bool `json:"expanded"`
}

type sectionResponse struct {
	Category sheep.Category `json:"category"`
	Expanded bool           `json:"expanded"`
}

type sectionsResponse struct {
	Version  int               `json:"version"`
	Sections []sectionResponse `json:"sections"`
}

// getSectionsHandler godoc
// @Summary Estado de secciones del formulario
// @Description Qué secciones de distribución (SWIM..STAMINA) del alta están abiertas para la sesión actual.
// @Tags ui
// @Produce json
// @Success 200 {object} sectionsResponse
// @Failure 401 {string} string "no session"
// @Router /api/ui/sections [get]
func getSectionsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sid, ok := middleware.GetSession(r.Context())
		if !ok {
			http.Error(w, "no session", http.StatusUnauthorized)
			return
		}

		st, err := svc.Get(r.Context(), sid)
		if err != nil {
			writeStateError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toSectionsResponse(st))
	}
}

// setSectionHandler godoc
// @Summary Abrir/cerrar una sección
// @Tags ui
// @Accept json
// @Produce json
// @Param category path string true "Categoría (SWIM, FLY, RUN, POWER, STAMINA)"
// @Param payload body setSectionRequest true "Nuevo estado"
// @Success 200 {object} sectionsResponse
// @Failure 400 {string} string "invalid json / categoría desconocida"
// @Failure 401 {string} string "no session"
// @Failure 409 {string} string "estado cambiado por otro request"
// @Router /api/ui/sections/{category} [put]
func setSectionHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sid, ok := middleware.GetSession(r.Context())
		if !ok {
			http.Error(w, "no session", http.StatusUnauthorized)
			return
		}

		var req setSectionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		st, err := svc.Set(r.Context(), sid, chi.URLParam(r, "category"), req.Expanded)
		if err != nil {
			writeStateError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toSectionsResponse(st))
	}
}

// toggleSectionHandler godoc
// @Summary Invertir una sección
// @Tags ui
// @Produce json
// @Param category path string true "Categoría (SWIM, FLY, RUN, POWER, STAMINA)"
// @Success 200 {object} sectionsResponse
// @Failure 400 {string} string "categoría desconocida"
// @Failure 401 {string} string "no session"
// @Failure 409 {string} string "estado cambiado por otro request"
// @Router /api/ui/sections/{category}/toggle [post]
func toggleSectionHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sid, ok := middleware.GetSession(r.Context())
		if !ok {
			http.Error(w, "no session", http.StatusUnauthorized)
			return
		}

		st, err := svc.Toggle(r.Context(), sid, chi.URLParam(r, "category"))
		if err != nil {
			writeStateError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toSectionsResponse(st))
	}
}

func toSectionsResponse(st State) sectionsResponse {
	out := sectionsResponse{
		Version:  st.Version,
		Sections: make([]sectionResponse, 0, len(sheep.Categories)),
	}
	for _, c := range sheep.Categories {
		out.Sections = append(out.Sections, sectionResponse{Category: c, Expanded: st.IsExpanded(c)})
	}
	return out
}

func writeStateError(w http.ResponseWriter, err error) {
	if errors.Is(err, ErrInvalidInput) {
		http.Error(w, "unknown category", http.StatusBadRequest)
		return
	}
	if errors.Is(err, ErrConflict) {
		http.Error(w, "ui state changed concurrently, retry", http.StatusConflict)
		return
	}
	http.Error(w, "internal error", http.StatusInternalServerError)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
