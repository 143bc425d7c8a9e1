package breeding

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"sheep-breeding-web/internal/domain/sheep"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

type Service struct {
	backend Backend
}

func NewService(backend Backend) *Service {
	return &Service{backend: backend}
}

// Predict pide al backend la distribución de la cría de (sheep1, sheep2).
// El orden del par se respeta tal cual.
func (s *Service) Predict(ctx context.Context, rawSheep1, rawSheep2 string) (sheep.PredictionView, error) {
	id1, err := sheep.ParseID(rawSheep1)
	if err != nil {
		return sheep.PredictionView{}, fmt.Errorf("%w: sheep 1 id must be a positive integer", ErrInvalidInput)
	}
	id2, err := sheep.ParseID(rawSheep2)
	if err != nil {
		return sheep.PredictionView{}, fmt.Errorf("%w: sheep 2 id must be a positive integer", ErrInvalidInput)
	}

	p, err := s.backend.Predict(ctx, id1, id2)
	if err != nil {
		return sheep.PredictionView{}, err
	}
	return sheep.FormatPrediction(id1, id2, p), nil
}

// Relationships devuelve las parejas ordenadas por id.
func (s *Service) Relationships(ctx context.Context) ([]Relationship, error) {
	items, err := s.backend.ListRelationships(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].ID < items[j].ID
	})
	return items, nil
}
