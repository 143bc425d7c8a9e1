package uistate

import (
	"time"

	"sheep-breeding-web/internal/domain/sheep"
)

// State guarda qué secciones de distribución del formulario de alta están abiertas
// para una sesión de navegador.
type State struct {
	SessionID string
	Expanded  map[sheep.Category]bool
	Version   int
	UpdatedAt time.Time
}

// IsExpanded es nil-safe para usarlo desde templates.
func (s State) IsExpanded(c sheep.Category) bool {
	return s.Expanded[c]
}

func newState(sessionID string) State {
	return State{
		SessionID: sessionID,
		Expanded:  map[sheep.Category]bool{},
	}
}
