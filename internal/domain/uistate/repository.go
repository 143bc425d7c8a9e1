package uistate

import (
	"context"
	"errors"
)

var (
	// ErrNotFound lo devuelven los repos cuando la sesión no tiene estado guardado.
	ErrNotFound = errors.New("ui state not found")

	// ErrConflict: el estado guardado ya no está en s.Version-1 (otro request lo cambió).
	ErrConflict = errors.New("ui state version conflict")
)

type Repository interface {
	Get(ctx context.Context, sessionID string) (State, error)

	// Save guarda s sólo si la versión guardada es s.Version-1 (0 = no existía).
	Save(ctx context.Context, s State) error
}
