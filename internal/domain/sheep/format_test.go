package sheep

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatPercent(t *testing.T) {
	cases := map[float64]string{
		0:     "0.00%",
		0.5:   "50.00%",
		1:     "100.00%",
		0.125: "12.50%",
		0.001: "0.10%",
	}
	for in, want := range cases {
		assert.Equal(t, want, FormatPercent(in), "FormatPercent(%v)", in)
	}
}

func TestDisplayName(t *testing.T) {
	empty := ""
	dolly := "Dolly"

	assert.Equal(t, UnnamedPlaceholder, DisplayName(nil))
	assert.Equal(t, UnnamedPlaceholder, DisplayName(&empty))
	assert.Equal(t, "Dolly", DisplayName(&dolly))
}

func TestFormatSheep_Placeholders(t *testing.T) {
	v := FormatSheep(Sheep{ID: 4})

	assert.Equal(t, 4, v.ID)
	assert.Equal(t, UnnamedPlaceholder, v.Name)
	assert.False(t, v.Named)
	assert.Equal(t, NoParentsPlaceholder, v.ParentRelationship)

	require.Len(t, v.Categories, len(Categories))
	for i, c := range Categories {
		cv := v.Categories[i]
		assert.Equal(t, c, cv.Category)
		assert.Equal(t, "-", cv.Phenotype)
		assert.Equal(t, UnknownAllele, cv.HiddenAllele)
		assert.False(t, cv.HasPrior)
		assert.False(t, cv.HasInferred)
	}
}

func TestFormatSheep_Values(t *testing.T) {
	name := "Dolly"
	s := Sheep{
		ID:   1,
		Name: &name,
		Genotypes: map[Category]Genotype{
			CategorySwim: {Phenotype: GradeA, HiddenAllele: gradePtr(GradeB)},
			CategoryFly:  {Phenotype: GradeS},
		},
		Distributions: map[Category]Distribution{
			CategorySwim: {
				DistributionPrior:    {GradeS: 0.5, GradeA: 0.5},
				DistributionInferred: {GradeA: 1},
			},
		},
		ParentRelationshipID: intPtr(9),
	}

	v := FormatSheep(s)
	assert.Equal(t, "Dolly", v.Name)
	assert.True(t, v.Named)
	assert.Equal(t, "9", v.ParentRelationship)

	swim := v.Categories[0]
	assert.Equal(t, "A", swim.Phenotype)
	assert.Equal(t, "B", swim.HiddenAllele)
	require.True(t, swim.HasPrior)
	require.True(t, swim.HasInferred)
	assert.Equal(t, "50.00%", swim.Prior.Cells[0].Percent)
	assert.Equal(t, "50.00%", swim.Prior.Cells[1].Percent)
	assert.Equal(t, "100.00%", swim.Inferred.Cells[1].Percent)

	fly := v.Categories[1]
	assert.Equal(t, "S", fly.Phenotype)
	assert.Equal(t, UnknownAllele, fly.HiddenAllele)
}

func TestFormatDistribution_FixedOrderAndTotal(t *testing.T) {
	row := FormatDistribution(GradeProbabilities{GradeE: 0.1, GradeS: 0.2})

	require.Len(t, row.Cells, len(Grades))
	for i, g := range Grades {
		assert.Equal(t, g, row.Cells[i].Grade)
	}
	assert.Equal(t, "20.00%", row.Cells[0].Percent)
	assert.Equal(t, "0.00%", row.Cells[2].Percent)
	assert.Equal(t, "10.00%", row.Cells[5].Percent)
	assert.Equal(t, "30.00%", row.Total)
	assert.False(t, row.Normalized)

	full := FormatDistribution(GradeProbabilities{GradeS: 0.1, GradeA: 0.2, GradeB: 0.3, GradeC: 0.4})
	assert.Equal(t, "100.00%", full.Total)
	assert.True(t, full.Normalized)
}

func TestFormatPrediction_SkipsAbsentCategories(t *testing.T) {
	p := Prediction{
		CategoryStamina: {GradeD: 1},
		CategorySwim:    {GradeS: 0.5, GradeA: 0.5},
	}

	v := FormatPrediction(3, 1, p)
	assert.Equal(t, 3, v.Sheep1ID)
	assert.Equal(t, 1, v.Sheep2ID)
	require.Len(t, v.Categories, 2)
	assert.Equal(t, CategorySwim, v.Categories[0].Category)
	assert.Equal(t, CategoryStamina, v.Categories[1].Category)
	assert.Equal(t, "100.00%", v.Categories[1].Distribution.Cells[4].Percent)
}
