package breeding

import "sheep-breeding-web/internal/domain/sheep"

// Relationship es una pareja reproductora registrada en el backend,
// con la frecuencia observada de fenotipos de sus crías.
type Relationship struct {
	ID                   int                                    `json:"id"`
	Parent1ID            int                                    `json:"parent1Id"`
	Parent2ID            int                                    `json:"parent2Id"`
	PhenotypeFrequencies map[sheep.Category]map[sheep.Grade]int `json:"phenotypeFrequencies"`
}

// Offspring cuenta cuántas crías tiene registradas la pareja (usa la primera categoría).
func (r Relationship) Offspring() int {
	for _, c := range sheep.Categories {
		freq, ok := r.PhenotypeFrequencies[c]
		if !ok {
			continue
		}
		total := 0
		for _, n := range freq {
			total += n
		}
		return total
	}
	return 0
}
