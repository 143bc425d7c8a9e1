package sheep

import (
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"
)

// Nombres de campos del formulario de alta.
const (
	FieldName                 = "name"
	FieldParentRelationshipID = "parentRelationshipId"
)

func PhenotypeField(c Category) string    { return "genotypes." + string(c) + ".phenotype" }
func HiddenAlleleField(c Category) string { return "genotypes." + string(c) + ".hiddenAllele" }
func DistributionField(c Category, g Grade) string {
	return "distributions." + string(c) + "." + string(g)
}

// BuildCreateRequest transforma los campos planos del formulario en un CreateRequest.
// No hace I/O. Sólo falla si parentRelationshipId o una celda de distribución no son numéricos;
// en ese caso devuelve un error que envuelve ErrInvalidInput.
func BuildCreateRequest(form url.Values) (CreateRequest, error) {
	req := CreateRequest{
		Genotypes:     make(map[Category]Genotype, len(Categories)),
		Distributions: make(map[Category]GradeProbabilities),
	}

	if name := strings.TrimSpace(form.Get(FieldName)); name != "" {
		req.Name = &name
	}

	for _, c := range Categories {
		g := Genotype{Phenotype: Grade(form.Get(PhenotypeField(c)))}
		if hidden := form.Get(HiddenAlleleField(c)); hidden != "" {
			h := Grade(hidden)
			g.HiddenAllele = &h
		}
		req.Genotypes[c] = g
	}

	for _, c := range Categories {
		probs, filled, err := buildGradeProbabilities(form, c)
		if err != nil {
			return CreateRequest{}, err
		}
		if filled {
			req.Distributions[c] = probs
		}
	}

	id, err := parseOptionalInt(form.Get(FieldParentRelationshipID))
	if err != nil {
		return CreateRequest{}, fmt.Errorf("%w: parentRelationshipId must be an integer", ErrInvalidInput)
	}
	req.ParentRelationshipID = id

	return req, nil
}

// buildGradeProbabilities lee las 6 celdas de una categoría; las vacías valen 0.
// filled indica si al menos una celda vino no vacía: una celda sólo con espacios
// cuenta como completada y vale 0.
func buildGradeProbabilities(form url.Values, c Category) (GradeProbabilities, bool, error) {
	probs := make(GradeProbabilities, len(Grades))
	filled := false

	for _, g := range Grades {
		raw := form.Get(DistributionField(c, g))
		if raw == "" {
			probs[g] = 0
			continue
		}
		filled = true

		trimmed := strings.TrimSpace(raw)
		if trimmed == "" {
			probs[g] = 0
			continue
		}
		v, err := strconv.ParseFloat(trimmed, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, false, fmt.Errorf("%w: %s must be a number", ErrInvalidInput, DistributionField(c, g))
		}
		probs[g] = v
	}

	return probs, filled, nil
}

// parseOptionalInt: sólo "" es ausente; cualquier otro valor (incluso espacios) se parsea.
func parseOptionalInt(raw string) (*int, error) {
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return nil, err
	}
	return &n, nil
}
