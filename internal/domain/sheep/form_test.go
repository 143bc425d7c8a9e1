package sheep

import (
	"errors"
	"net/url"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gradePtr(g Grade) *Grade { return &g }
func intPtr(n int) *int       { return &n }

func emptyGenotypes() map[Category]Genotype {
	out := make(map[Category]Genotype, len(Categories))
	for _, c := range Categories {
		out[c] = Genotype{}
	}
	return out
}

func TestBuildCreateRequest_EmptyForm(t *testing.T) {
	req, err := BuildCreateRequest(url.Values{})
	require.NoError(t, err)

	want := CreateRequest{
		Genotypes:     emptyGenotypes(),
		Distributions: map[Category]GradeProbabilities{},
	}
	if diff := cmp.Diff(want, req); diff != "" {
		t.Fatalf("request mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildCreateRequest_FullForm(t *testing.T) {
	form := url.Values{}
	form.Set(FieldName, " Dolly ")
	form.Set(PhenotypeField(CategorySwim), "A")
	form.Set(HiddenAlleleField(CategorySwim), "B")
	form.Set(PhenotypeField(CategoryRun), "S")
	form.Set(DistributionField(CategoryPower, GradeS), "0.25")
	form.Set(DistributionField(CategoryPower, GradeE), " 0.75 ")
	form.Set(FieldParentRelationshipID, "7")

	req, err := BuildCreateRequest(form)
	require.NoError(t, err)

	genotypes := emptyGenotypes()
	genotypes[CategorySwim] = Genotype{Phenotype: GradeA, HiddenAllele: gradePtr(GradeB)}
	genotypes[CategoryRun] = Genotype{Phenotype: GradeS}

	name := "Dolly"
	want := CreateRequest{
		Name:      &name,
		Genotypes: genotypes,
		Distributions: map[Category]GradeProbabilities{
			CategoryPower: {GradeS: 0.25, GradeA: 0, GradeB: 0, GradeC: 0, GradeD: 0, GradeE: 0.75},
		},
		ParentRelationshipID: intPtr(7),
	}
	if diff := cmp.Diff(want, req); diff != "" {
		t.Fatalf("request mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildCreateRequest_EveryCategoryHasGenotype(t *testing.T) {
	form := url.Values{}
	form.Set(PhenotypeField(CategoryStamina), "C")

	req, err := BuildCreateRequest(form)
	require.NoError(t, err)

	require.Len(t, req.Genotypes, len(Categories))
	for _, c := range Categories {
		g, ok := req.Genotypes[c]
		require.True(t, ok, "missing genotype for %s", c)
		assert.Nil(t, g.HiddenAllele, "hiddenAllele for %s", c)
	}
	assert.Equal(t, GradeC, req.Genotypes[CategoryStamina].Phenotype)
}

func TestBuildCreateRequest_PhenotypeVerbatim(t *testing.T) {
	form := url.Values{}
	form.Set(PhenotypeField(CategoryFly), "z")
	form.Set(HiddenAlleleField(CategoryFly), " ")

	req, err := BuildCreateRequest(form)
	require.NoError(t, err)

	assert.Equal(t, Grade("z"), req.Genotypes[CategoryFly].Phenotype)
	require.NotNil(t, req.Genotypes[CategoryFly].HiddenAllele)
	assert.Equal(t, Grade(" "), *req.Genotypes[CategoryFly].HiddenAllele)
}

func TestBuildCreateRequest_OnlyFilledDistributions(t *testing.T) {
	form := url.Values{}
	form.Set(DistributionField(CategorySwim, GradeA), "1")
	form.Set(DistributionField(CategoryFly, GradeA), "   ")

	req, err := BuildCreateRequest(form)
	require.NoError(t, err)

	assert.Contains(t, req.Distributions, CategorySwim)
	assert.NotContains(t, req.Distributions, CategoryRun)
	assert.Len(t, req.Distributions[CategorySwim], len(Grades))

	// sólo espacios no es vacío: la categoría va, con todo en 0
	require.Contains(t, req.Distributions, CategoryFly)
	for _, g := range Grades {
		assert.Zero(t, req.Distributions[CategoryFly][g], g)
	}
}

func TestBuildCreateRequest_WhitespaceNameIsNull(t *testing.T) {
	form := url.Values{}
	form.Set(FieldName, "   ")

	req, err := BuildCreateRequest(form)
	require.NoError(t, err)
	assert.Nil(t, req.Name)
}

func TestBuildCreateRequest_ParentRelationshipID(t *testing.T) {
	cases := []struct {
		raw     string
		want    *int
		wantErr bool
	}{
		{raw: "", want: nil},
		{raw: "   ", wantErr: true},
		{raw: "42", want: intPtr(42)},
		{raw: " 3 ", want: intPtr(3)},
		{raw: "-1", want: intPtr(-1)},
		{raw: "abc", wantErr: true},
		{raw: "1.5", wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.raw, func(t *testing.T) {
			form := url.Values{}
			form.Set(FieldParentRelationshipID, tc.raw)

			req, err := BuildCreateRequest(form)
			if tc.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidInput))
				assert.Contains(t, err.Error(), "parentRelationshipId must be an integer")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, req.ParentRelationshipID)
		})
	}
}

func TestBuildCreateRequest_NonNumericCell(t *testing.T) {
	for _, raw := range []string{"abc", "NaN", "Inf", "0,5"} {
		form := url.Values{}
		form.Set(DistributionField(CategoryRun, GradeB), raw)

		_, err := BuildCreateRequest(form)
		require.Error(t, err, raw)
		assert.ErrorIs(t, err, ErrInvalidInput)
		assert.Contains(t, err.Error(), "distributions.RUN.B")
	}
}
