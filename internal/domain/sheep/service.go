package sheep

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("sheep not found")
)

type Service struct {
	backend Backend
}

func NewService(backend Backend) *Service {
	return &Service{backend: backend}
}

func (s *Service) List(ctx context.Context) ([]Sheep, error) {
	return s.backend.ListSheep(ctx)
}

func (s *Service) Get(ctx context.Context, id int) (Sheep, error) {
	if id <= 0 {
		return Sheep{}, ErrNotFound
	}
	return s.backend.GetSheep(ctx, id)
}

// Family trae la oveja y sus relaciones. Falla entera si falla cualquier llamada.
func (s *Service) Family(ctx context.Context, id int) (Family, error) {
	sh, err := s.Get(ctx, id)
	if err != nil {
		return Family{}, err
	}

	parents, err := s.backend.GetParents(ctx, id)
	if err != nil {
		return Family{}, err
	}
	children, err := s.backend.ListChildren(ctx, id)
	if err != nil {
		return Family{}, err
	}
	partners, err := s.backend.ListPartners(ctx, id)
	if err != nil {
		return Family{}, err
	}

	return Family{
		Sheep:    sh,
		Parents:  parents,
		Children: children,
		Partners: partners,
	}, nil
}

// Create arma el request desde el formulario, lo valida y recién ahí llama al backend.
// Los errores de input envuelven ErrInvalidInput y nunca llegan a la red.
func (s *Service) Create(ctx context.Context, form url.Values) (Sheep, error) {
	req, err := BuildCreateRequest(form)
	if err != nil {
		return Sheep{}, err
	}
	if err := Validate(req); err != nil {
		return Sheep{}, err
	}
	return s.backend.CreateSheep(ctx, req)
}

// ParseID acepta ids enteros positivos en texto (path params, args de CLI).
func ParseID(raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%w: id must be a positive integer", ErrInvalidInput)
	}
	return n, nil
}
