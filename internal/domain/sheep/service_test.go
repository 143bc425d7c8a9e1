package sheep

import (
	"context"
	"errors"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// -------------------------
// Test backend (in-memory)
// -------------------------

var errBackendDown = errors.New("backend: connection refused")

type testBackend struct {
	byID     map[int]Sheep
	parents  map[int]*Parents
	children map[int][]Sheep
	partners map[int][]Sheep

	created   []CreateRequest
	failOn    string
	callCount map[string]int
}

func newTestBackend() *testBackend {
	return &testBackend{
		byID:      map[int]Sheep{},
		parents:   map[int]*Parents{},
		children:  map[int][]Sheep{},
		partners:  map[int][]Sheep{},
		callCount: map[string]int{},
	}
}

func (b *testBackend) hit(op string) error {
	b.callCount[op]++
	if b.failOn == op {
		return errBackendDown
	}
	return nil
}

func (b *testBackend) ListSheep(ctx context.Context) ([]Sheep, error) {
	if err := b.hit("list"); err != nil {
		return nil, err
	}
	out := make([]Sheep, 0, len(b.byID))
	for _, s := range b.byID {
		out = append(out, s)
	}
	return out, nil
}

func (b *testBackend) GetSheep(ctx context.Context, id int) (Sheep, error) {
	if err := b.hit("get"); err != nil {
		return Sheep{}, err
	}
	s, ok := b.byID[id]
	if !ok {
		return Sheep{}, ErrNotFound
	}
	return s, nil
}

func (b *testBackend) CreateSheep(ctx context.Context, req CreateRequest) (Sheep, error) {
	if err := b.hit("create"); err != nil {
		return Sheep{}, err
	}
	b.created = append(b.created, req)
	s := Sheep{ID: len(b.byID) + 1, Name: req.Name, Genotypes: req.Genotypes}
	b.byID[s.ID] = s
	return s, nil
}

func (b *testBackend) GetParents(ctx context.Context, id int) (*Parents, error) {
	if err := b.hit("parents"); err != nil {
		return nil, err
	}
	return b.parents[id], nil
}

func (b *testBackend) ListChildren(ctx context.Context, id int) ([]Sheep, error) {
	if err := b.hit("children"); err != nil {
		return nil, err
	}
	return b.children[id], nil
}

func (b *testBackend) ListPartners(ctx context.Context, id int) ([]Sheep, error) {
	if err := b.hit("partners"); err != nil {
		return nil, err
	}
	return b.partners[id], nil
}

// -------------------------
// Tests
// -------------------------

func TestService_Create_SendsBuiltRequest(t *testing.T) {
	backend := newTestBackend()
	svc := NewService(backend)

	form := url.Values{}
	form.Set(FieldName, "Dolly")
	form.Set(PhenotypeField(CategorySwim), "A")

	s, err := svc.Create(context.Background(), form)
	require.NoError(t, err)
	assert.Equal(t, 1, s.ID)

	require.Len(t, backend.created, 1)
	assert.Equal(t, "Dolly", *backend.created[0].Name)
	assert.Equal(t, GradeA, backend.created[0].Genotypes[CategorySwim].Phenotype)
}

func TestService_Create_InvalidInputNeverCallsBackend(t *testing.T) {
	cases := map[string]url.Values{
		"bad parent id":        {FieldParentRelationshipID: {"x1"}},
		"non numeric cell":     {DistributionField(CategoryFly, GradeS): {"lots"}},
		"probability > 1":      {DistributionField(CategoryFly, GradeS): {"1.01"}},
		"negative probability": {DistributionField(CategoryRun, GradeE): {"-0.1"}},
	}

	for name, form := range cases {
		t.Run(name, func(t *testing.T) {
			backend := newTestBackend()
			svc := NewService(backend)

			_, err := svc.Create(context.Background(), form)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Zero(t, backend.callCount["create"])
		})
	}
}

func TestService_Create_BackendError(t *testing.T) {
	backend := newTestBackend()
	backend.failOn = "create"
	svc := NewService(backend)

	_, err := svc.Create(context.Background(), url.Values{})
	require.Error(t, err)
	assert.ErrorIs(t, err, errBackendDown)
	assert.NotErrorIs(t, err, ErrInvalidInput)
	assert.Equal(t, 1, backend.callCount["create"])
}

func TestService_Get_NonPositiveIDIsNotFound(t *testing.T) {
	backend := newTestBackend()
	svc := NewService(backend)

	_, err := svc.Get(context.Background(), 0)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Zero(t, backend.callCount["get"])
}

func TestService_Family(t *testing.T) {
	backend := newTestBackend()
	ram, ewe, lamb := Sheep{ID: 1}, Sheep{ID: 2}, Sheep{ID: 3}
	backend.byID[1], backend.byID[2], backend.byID[3] = ram, ewe, lamb
	backend.parents[3] = &Parents{Parent1: ram, Parent2: ewe}
	backend.children[1] = []Sheep{lamb}
	backend.partners[1] = []Sheep{ewe}
	svc := NewService(backend)

	f, err := svc.Family(context.Background(), 1)
	require.NoError(t, err)
	assert.Nil(t, f.Parents)
	assert.Equal(t, []Sheep{lamb}, f.Children)
	assert.Equal(t, []Sheep{ewe}, f.Partners)

	f, err = svc.Family(context.Background(), 3)
	require.NoError(t, err)
	require.NotNil(t, f.Parents)
	assert.Equal(t, 1, f.Parents.Parent1.ID)
	assert.Equal(t, 2, f.Parents.Parent2.ID)
}

func TestService_Family_FailsWhole(t *testing.T) {
	backend := newTestBackend()
	backend.byID[1] = Sheep{ID: 1}
	backend.failOn = "children"
	svc := NewService(backend)

	_, err := svc.Family(context.Background(), 1)
	assert.ErrorIs(t, err, errBackendDown)
	assert.Zero(t, backend.callCount["partners"])
}

func TestParseID(t *testing.T) {
	for _, raw := range []string{"1", " 12 ", "999"} {
		_, err := ParseID(raw)
		assert.NoError(t, err, raw)
	}
	for _, raw := range []string{"", "0", "-3", "abc", "1.0"} {
		_, err := ParseID(raw)
		assert.ErrorIs(t, err, ErrInvalidInput, raw)
	}
}
