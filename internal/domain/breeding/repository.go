package breeding

import (
	"context"

	"sheep-breeding-web/internal/domain/sheep"
)

type Backend interface {
	Predict(ctx context.Context, sheep1ID, sheep2ID int) (sheep.Prediction, error)
	ListRelationships(ctx context.Context) ([]Relationship, error)
}
