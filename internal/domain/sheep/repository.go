package sheep

import "context"

// Backend es el puerto hacia el servicio de inferencia genética.
// La implementación real vive en adapters/geneapi.
type Backend interface {
	ListSheep(ctx context.Context) ([]Sheep, error)
	GetSheep(ctx context.Context, id int) (Sheep, error)
	CreateSheep(ctx context.Context, req CreateRequest) (Sheep, error)

	GetParents(ctx context.Context, id int) (*Parents, error)
	ListChildren(ctx context.Context, id int) ([]Sheep, error)
	ListPartners(ctx context.Context, id int) ([]Sheep, error)
}
