package breeding

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sheep-breeding-web/internal/domain/sheep"
)

type testBackend struct {
	prediction    sheep.Prediction
	relationships []Relationship
	err           error
	calls         [][2]int
}

func (b *testBackend) Predict(ctx context.Context, sheep1ID, sheep2ID int) (sheep.Prediction, error) {
	b.calls = append(b.calls, [2]int{sheep1ID, sheep2ID})
	if b.err != nil {
		return nil, b.err
	}
	return b.prediction, nil
}

func (b *testBackend) ListRelationships(ctx context.Context) ([]Relationship, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.relationships, nil
}

func TestService_Predict_KeepsOrder(t *testing.T) {
	backend := &testBackend{prediction: sheep.Prediction{
		sheep.CategoryRun: {sheep.GradeS: 1},
	}}
	svc := NewService(backend)

	pv, err := svc.Predict(context.Background(), "5", " 2")
	require.NoError(t, err)

	assert.Equal(t, [][2]int{{5, 2}}, backend.calls)
	assert.Equal(t, 5, pv.Sheep1ID)
	assert.Equal(t, 2, pv.Sheep2ID)
	require.Len(t, pv.Categories, 1)
	assert.Equal(t, sheep.CategoryRun, pv.Categories[0].Category)
	assert.Equal(t, "100.00%", pv.Categories[0].Distribution.Cells[0].Percent)
}

func TestService_Predict_InvalidIDs(t *testing.T) {
	cases := []struct{ a, b, msg string }{
		{"", "1", "sheep 1"},
		{"x", "1", "sheep 1"},
		{"1", "0", "sheep 2"},
		{"1", "-4", "sheep 2"},
	}
	for _, tc := range cases {
		backend := &testBackend{}
		svc := NewService(backend)

		_, err := svc.Predict(context.Background(), tc.a, tc.b)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidInput)
		assert.Contains(t, err.Error(), tc.msg)
		assert.Empty(t, backend.calls, "no backend call for %q/%q", tc.a, tc.b)
	}
}

func TestService_Predict_BackendError(t *testing.T) {
	boom := errors.New("boom")
	svc := NewService(&testBackend{err: boom})

	_, err := svc.Predict(context.Background(), "1", "2")
	assert.ErrorIs(t, err, boom)
}

func TestService_Relationships_SortedByID(t *testing.T) {
	svc := NewService(&testBackend{relationships: []Relationship{{ID: 3}, {ID: 1}, {ID: 2}}})

	items, err := svc.Relationships(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, []int{1, 2, 3}, []int{items[0].ID, items[1].ID, items[2].ID})
}

func TestRelationship_Offspring(t *testing.T) {
	r := Relationship{PhenotypeFrequencies: map[sheep.Category]map[sheep.Grade]int{
		sheep.CategoryFly:   {sheep.GradeA: 2, sheep.GradeC: 3},
		sheep.CategoryPower: {sheep.GradeA: 5},
	}}
	assert.Equal(t, 5, r.Offspring())
	assert.Equal(t, 0, Relationship{}.Offspring())
}
