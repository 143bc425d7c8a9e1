package uistate

import (
	"context"
	"errors"
	"strings"
	"time"

	"sheep-breeding-web/internal/domain/sheep"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

const maxSaveAttempts = 10

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

// Get devuelve el estado de la sesión; si no existe, todo colapsado.
func (s *Service) Get(ctx context.Context, sessionID string) (State, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return State{}, ErrInvalidInput
	}

	st, err := s.repo.Get(ctx, sessionID)
	if errors.Is(err, ErrNotFound) {
		return newState(sessionID), nil
	}
	if err != nil {
		return State{}, err
	}
	if st.Expanded == nil {
		st.Expanded = map[sheep.Category]bool{}
	}
	return st, nil
}

// ExpandedSections es lo que necesita el formulario de alta (sheep.SectionState).
func (s *Service) ExpandedSections(ctx context.Context, sessionID string) (map[sheep.Category]bool, error) {
	st, err := s.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return st.Expanded, nil
}

// Toggle invierte una sección y devuelve el estado resultante.
func (s *Service) Toggle(ctx context.Context, sessionID, category string) (State, error) {
	c, ok := sheep.ParseCategory(strings.ToUpper(strings.TrimSpace(category)))
	if !ok {
		return State{}, ErrInvalidInput
	}
	return s.update(ctx, sessionID, func(st State) bool { return !st.Expanded[c] }, c)
}

// Set fija una sección abierta o cerrada.
func (s *Service) Set(ctx context.Context, sessionID, category string, expanded bool) (State, error) {
	c, ok := sheep.ParseCategory(strings.ToUpper(strings.TrimSpace(category)))
	if !ok {
		return State{}, ErrInvalidInput
	}
	return s.update(ctx, sessionID, func(State) bool { return expanded }, c)
}

// update relee y reintenta si otro request guardó en el medio (ErrConflict).
func (s *Service) update(ctx context.Context, sessionID string, value func(State) bool, c sheep.Category) (State, error) {
	for attempt := 0; attempt < maxSaveAttempts; attempt++ {
		st, err := s.Get(ctx, sessionID)
		if err != nil {
			return State{}, err
		}

		next := State{
			SessionID: st.SessionID,
			Expanded:  make(map[sheep.Category]bool, len(st.Expanded)+1),
			Version:   st.Version + 1,
			UpdatedAt: s.now(),
		}
		for k, v := range st.Expanded {
			next.Expanded[k] = v
		}
		next.Expanded[c] = value(st)

		err = s.repo.Save(ctx, next)
		if err == nil {
			return next, nil
		}
		if !errors.Is(err, ErrConflict) {
			return State{}, err
		}
	}
	return State{}, ErrConflict
}
