package sheep

import (
	"fmt"
	"math"

	"github.com/montanaflynn/stats"
)

const (
	UnnamedPlaceholder     = "(unnamed)"
	UnknownAllele          = "unknown"
	NoParentsPlaceholder   = "no registered parents"
	missingPhenotype       = "-"
	normalizationTolerance = 1e-6
)

// Prediction es la distribución de fenotipo de una cría hipotética, por categoría.
type Prediction map[Category]GradeProbabilities

// GradeCell es una celda Grade -> porcentaje ya formateado.
type GradeCell struct {
	Grade       Grade   `json:"grade"`
	Probability float64 `json:"probability"`
	Percent     string  `json:"percent"`
}

// DistributionRow es una fila de 6 celdas (S..E) con su total.
type DistributionRow struct {
	Cells      []GradeCell `json:"cells"`
	Total      string      `json:"total"`
	Normalized bool        `json:"normalized"`
}

type CategoryView struct {
	Category     Category        `json:"category"`
	Phenotype    string          `json:"phenotype"`
	HiddenAllele string          `json:"hiddenAllele"`
	HasPrior     bool            `json:"hasPrior"`
	Prior        DistributionRow `json:"prior"`
	HasInferred  bool            `json:"hasInferred"`
	Inferred     DistributionRow `json:"inferred"`
}

type SheepView struct {
	ID                 int            `json:"id"`
	Name               string         `json:"name"`
	Named              bool           `json:"named"`
	ParentRelationship string         `json:"parentRelationship"`
	Categories         []CategoryView `json:"categories"`
}

type PredictionCategoryView struct {
	Category     Category        `json:"category"`
	Distribution DistributionRow `json:"distribution"`
}

type PredictionView struct {
	Sheep1ID   int                      `json:"sheep1Id"`
	Sheep2ID   int                      `json:"sheep2Id"`
	Categories []PredictionCategoryView `json:"categories"`
}

// FormatPercent: 0.5 -> "50.00%".
func FormatPercent(p float64) string {
	return fmt.Sprintf("%.2f%%", p*100)
}

// DisplayName devuelve el nombre o el placeholder si falta.
func DisplayName(name *string) string {
	if name == nil || *name == "" {
		return UnnamedPlaceholder
	}
	return *name
}

// FormatSheep arma la tabla de una oveja en orden fijo de categorías y grados.
func FormatSheep(s Sheep) SheepView {
	v := SheepView{
		ID:                 s.ID,
		Name:               DisplayName(s.Name),
		Named:              s.Name != nil && *s.Name != "",
		ParentRelationship: NoParentsPlaceholder,
		Categories:         make([]CategoryView, 0, len(Categories)),
	}
	if s.ParentRelationshipID != nil {
		v.ParentRelationship = fmt.Sprintf("%d", *s.ParentRelationshipID)
	}

	for _, c := range Categories {
		cv := CategoryView{
			Category:     c,
			Phenotype:    missingPhenotype,
			HiddenAllele: UnknownAllele,
		}
		if g, ok := s.Genotypes[c]; ok {
			if g.Phenotype != "" {
				cv.Phenotype = string(g.Phenotype)
			}
			if g.HiddenAllele != nil && *g.HiddenAllele != "" {
				cv.HiddenAllele = string(*g.HiddenAllele)
			}
		}
		if d, ok := s.Distributions[c]; ok {
			if probs, ok := d[DistributionPrior]; ok {
				cv.HasPrior = true
				cv.Prior = FormatDistribution(probs)
			}
			if probs, ok := d[DistributionInferred]; ok {
				cv.HasInferred = true
				cv.Inferred = FormatDistribution(probs)
			}
		}
		v.Categories = append(v.Categories, cv)
	}

	return v
}

// FormatPrediction es lo mismo pero con una sola distribución por categoría.
// Las categorías ausentes en la predicción se omiten.
func FormatPrediction(sheep1ID, sheep2ID int, p Prediction) PredictionView {
	v := PredictionView{
		Sheep1ID:   sheep1ID,
		Sheep2ID:   sheep2ID,
		Categories: make([]PredictionCategoryView, 0, len(Categories)),
	}
	for _, c := range Categories {
		probs, ok := p[c]
		if !ok {
			continue
		}
		v.Categories = append(v.Categories, PredictionCategoryView{
			Category:     c,
			Distribution: FormatDistribution(probs),
		})
	}
	return v
}

// FormatDistribution formatea S..E; un grado ausente cuenta como 0.
func FormatDistribution(probs GradeProbabilities) DistributionRow {
	row := DistributionRow{Cells: make([]GradeCell, 0, len(Grades))}
	data := make(stats.Float64Data, 0, len(Grades))

	for _, g := range Grades {
		p := probs[g]
		row.Cells = append(row.Cells, GradeCell{
			Grade:       g,
			Probability: p,
			Percent:     FormatPercent(p),
		})
		data = append(data, p)
	}

	total, err := stats.Sum(data)
	if err != nil {
		total = 0
	}
	row.Total = FormatPercent(total)
	row.Normalized = math.Abs(total-1) <= normalizationTolerance
	return row
}
