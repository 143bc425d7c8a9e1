package router_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"

	"sheep-breeding-web/internal/domain/sheep"
)

// fakeBackend imita la API REST del backend de inferencia con estado en memoria.
type fakeBackend struct {
	mu sync.Mutex

	nextID        int
	sheep         map[int]sheep.Sheep
	parents       map[int]sheep.Parents
	children      map[int][]int
	partners      map[int][]int
	relationships []map[string]any
	prediction    sheep.Prediction

	failCreate  bool
	createCalls int
	lastCreate  map[string]any
	predictions [][2]int

	srv *httptest.Server
}

func newFakeBackend(t *testing.T) *fakeBackend {
	t.Helper()

	fb := &fakeBackend{
		nextID:   1,
		sheep:    map[int]sheep.Sheep{},
		parents:  map[int]sheep.Parents{},
		children: map[int][]int{},
		partners: map[int][]int{},
	}

	r := chi.NewRouter()
	r.Get("/sheep", fb.list)
	r.Post("/sheep", fb.create)
	r.Get("/sheep/{id}", fb.get)
	r.Get("/sheep/{id}/parents", fb.getParents)
	r.Get("/sheep/{id}/children", fb.related(func() map[int][]int { return fb.children }))
	r.Get("/sheep/{id}/partners", fb.related(func() map[int][]int { return fb.partners }))
	r.Get("/breed/{id1}/{id2}/predict", fb.predict)
	r.Get("/relationship", fb.listRelationships)

	fb.srv = httptest.NewServer(r)
	t.Cleanup(fb.srv.Close)
	return fb
}

func (fb *fakeBackend) URL() string { return fb.srv.URL }

// add registra una oveja directamente y devuelve su id.
func (fb *fakeBackend) add(s sheep.Sheep) int {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	s.ID = fb.nextID
	fb.nextID++
	fb.sheep[s.ID] = s
	return s.ID
}

func (fb *fakeBackend) list(w http.ResponseWriter, _ *http.Request) {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	out := make([]sheep.Sheep, 0, len(fb.sheep))
	for id := 1; id < fb.nextID; id++ {
		if s, ok := fb.sheep[id]; ok {
			out = append(out, s)
		}
	}
	writeBackendJSON(w, http.StatusOK, out)
}

func (fb *fakeBackend) create(w http.ResponseWriter, r *http.Request) {
	var raw map[string]any
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	b, _ := json.Marshal(raw)
	var req sheep.CreateRequest
	_ = json.Unmarshal(b, &req)

	fb.mu.Lock()
	fb.createCalls++
	fb.lastCreate = raw
	fail := fb.failCreate
	fb.mu.Unlock()

	if fail {
		http.Error(w, "boom", http.StatusInternalServerError)
		return
	}

	dists := map[sheep.Category]sheep.Distribution{}
	for c, probs := range req.Distributions {
		dists[c] = sheep.Distribution{sheep.DistributionPrior: probs}
	}
	s := sheep.Sheep{
		Name:                 req.Name,
		Genotypes:            req.Genotypes,
		Distributions:        dists,
		ParentRelationshipID: req.ParentRelationshipID,
	}
	s.ID = fb.add(s)
	writeBackendJSON(w, http.StatusCreated, s)
}

func (fb *fakeBackend) get(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(chi.URLParam(r, "id"))
	fb.mu.Lock()
	s, ok := fb.sheep[id]
	fb.mu.Unlock()
	if !ok {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	writeBackendJSON(w, http.StatusOK, s)
}

func (fb *fakeBackend) getParents(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(chi.URLParam(r, "id"))
	fb.mu.Lock()
	_, exists := fb.sheep[id]
	p, ok := fb.parents[id]
	fb.mu.Unlock()
	if !exists {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeBackendJSON(w, http.StatusOK, p)
}

func (fb *fakeBackend) related(src func() map[int][]int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, _ := strconv.Atoi(chi.URLParam(r, "id"))
		fb.mu.Lock()
		defer fb.mu.Unlock()
		out := []sheep.Sheep{}
		for _, rid := range src()[id] {
			out = append(out, fb.sheep[rid])
		}
		writeBackendJSON(w, http.StatusOK, out)
	}
}

func (fb *fakeBackend) predict(w http.ResponseWriter, r *http.Request) {
	id1, _ := strconv.Atoi(chi.URLParam(r, "id1"))
	id2, _ := strconv.Atoi(chi.URLParam(r, "id2"))
	fb.mu.Lock()
	fb.predictions = append(fb.predictions, [2]int{id1, id2})
	_, ok1 := fb.sheep[id1]
	_, ok2 := fb.sheep[id2]
	p := fb.prediction
	fb.mu.Unlock()
	if !ok1 || !ok2 {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	writeBackendJSON(w, http.StatusOK, map[string]any{"phenotypeDistributions": p})
}

func (fb *fakeBackend) listRelationships(w http.ResponseWriter, _ *http.Request) {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	out := fb.relationships
	if out == nil {
		out = []map[string]any{}
	}
	writeBackendJSON(w, http.StatusOK, out)
}

func (fb *fakeBackend) creates() (int, map[string]any) {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	return fb.createCalls, fb.lastCreate
}

func writeBackendJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
