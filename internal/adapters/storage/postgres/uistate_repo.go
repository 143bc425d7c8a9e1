package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"sheep-breeding-web/internal/domain/sheep"
	"sheep-breeding-web/internal/domain/uistate"
)

type UIStateRepo struct {
	db *sqlx.DB
}

func NewUIStateRepo(db *sql.DB) *UIStateRepo {
	return &UIStateRepo{db: sqlx.NewDb(db, "pgx")}
}

type uiStateRow struct {
	SessionID string    `db:"session_id"`
	Expanded  []byte    `db:"expanded"`
	Version   int       `db:"version"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (r *UIStateRepo) Get(ctx context.Context, sessionID string) (uistate.State, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return uistate.State{}, uistate.ErrNotFound
	}

	var row uiStateRow
	err := r.db.GetContext(ctx, &row, `
		SELECT session_id, expanded, version, updated_at
		FROM ui_state
		WHERE session_id = $1
	`, sessionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return uistate.State{}, uistate.ErrNotFound
		}
		return uistate.State{}, err
	}

	expanded := map[sheep.Category]bool{}
	if len(row.Expanded) > 0 {
		if err := json.Unmarshal(row.Expanded, &expanded); err != nil {
			return uistate.State{}, fmt.Errorf("decode ui state: %w", err)
		}
	}

	return uistate.State{
		SessionID: row.SessionID,
		Expanded:  expanded,
		Version:   row.Version,
		UpdatedAt: row.UpdatedAt,
	}, nil
}

func (r *UIStateRepo) Save(ctx context.Context, st uistate.State) error {
	expanded, err := json.Marshal(st.Expanded)
	if err != nil {
		return fmt.Errorf("encode ui state: %w", err)
	}

	// La primera versión inserta; las siguientes sólo pisan la versión anterior.
	res, err := r.db.NamedExecContext(ctx, `
		INSERT INTO ui_state (session_id, expanded, version, updated_at)
		VALUES (:session_id, :expanded, :version, :updated_at)
		ON CONFLICT (session_id) DO UPDATE SET
			expanded = EXCLUDED.expanded,
			version = EXCLUDED.version,
			updated_at = EXCLUDED.updated_at
		WHERE ui_state.version = EXCLUDED.version - 1
	`, uiStateRow{
		SessionID: st.SessionID,
		Expanded:  expanded,
		Version:   st.Version,
		UpdatedAt: st.UpdatedAt,
	})
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return uistate.ErrConflict
	}
	return nil
}
