package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"sheep-breeding-web/internal/domain/sheep"
	"sheep-breeding-web/internal/domain/uistate"
)

type uiStateRepo struct {
	mu        sync.RWMutex
	bySession map[string]uistate.State
}

func NewUIStateRepo() uistate.Repository {
	return &uiStateRepo{
		bySession: make(map[string]uistate.State),
	}
}

func (r *uiStateRepo) Get(ctx context.Context, sessionID string) (uistate.State, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	st, ok := r.bySession[sessionID]
	if !ok {
		return uistate.State{}, uistate.ErrNotFound
	}
	return copyState(st), nil
}

func (r *uiStateRepo) Save(ctx context.Context, st uistate.State) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(st.SessionID) == "" {
		return errors.New("session id required")
	}
	if cur := r.bySession[st.SessionID]; cur.Version != st.Version-1 {
		return uistate.ErrConflict
	}
	r.bySession[st.SessionID] = copyState(st)
	return nil
}

// copia el map para que el caller no comparta estado con el repo
func copyState(st uistate.State) uistate.State {
	out := st
	out.Expanded = make(map[sheep.Category]bool, len(st.Expanded))
	for k, v := range st.Expanded {
		out.Expanded[k] = v
	}
	return out
}
