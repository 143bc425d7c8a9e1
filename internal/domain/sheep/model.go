package sheep

// Category es un eje de rasgo sobre el que se puntúa a una oveja.
// @Enum SWIM, FLY, RUN, POWER, STAMINA
type Category string

const (
	CategorySwim    Category = "SWIM"
	CategoryFly     Category = "FLY"
	CategoryRun     Category = "RUN"
	CategoryPower   Category = "POWER"
	CategoryStamina Category = "STAMINA"
)

// Categories en el orden fijo en que se muestran y se recorren los formularios.
var Categories = []Category{
	CategorySwim,
	CategoryFly,
	CategoryRun,
	CategoryPower,
	CategoryStamina,
}

func ParseCategory(s string) (Category, bool) {
	for _, c := range Categories {
		if string(c) == s {
			return c, true
		}
	}
	return "", false
}

// Grade es un nivel dentro de una categoría, S el mejor y E el peor.
// @Enum S, A, B, C, D, E
type Grade string

const (
	GradeS Grade = "S"
	GradeA Grade = "A"
	GradeB Grade = "B"
	GradeC Grade = "C"
	GradeD Grade = "D"
	GradeE Grade = "E"
)

var Grades = []Grade{GradeS, GradeA, GradeB, GradeC, GradeD, GradeE}

func ParseGrade(s string) (Grade, bool) {
	for _, g := range Grades {
		if string(g) == s {
			return g, true
		}
	}
	return "", false
}

// DistributionType distingue la creencia del usuario (PRIOR) de la calculada por el backend (INFERRED).
type DistributionType string

const (
	DistributionPrior    DistributionType = "PRIOR"
	DistributionInferred DistributionType = "INFERRED"
)

// Genotype: fenotipo observado y alelo oculto (nil = desconocido).
type Genotype struct {
	Phenotype    Grade  `json:"phenotype"`
	HiddenAllele *Grade `json:"hiddenAllele"`
}

// GradeProbabilities mapea Grade -> probabilidad en [0,1].
type GradeProbabilities map[Grade]float64

// Distribution agrupa PRIOR e INFERRED de una categoría.
type Distribution map[DistributionType]GradeProbabilities

// Sheep es la oveja tal como la devuelve el backend. El frontend nunca la modifica.
type Sheep struct {
	ID                   int                       `json:"id"`
	Name                 *string                   `json:"name"`
	Genotypes            map[Category]Genotype     `json:"genotypes"`
	Distributions        map[Category]Distribution `json:"distributions"`
	ParentRelationshipID *int                      `json:"parentRelationshipId"`
}

// CreateRequest es el cuerpo de POST /sheep.
// Distributions sólo lleva las categorías que el usuario completó.
type CreateRequest struct {
	Name                 *string                         `json:"name"`
	Genotypes            map[Category]Genotype           `json:"genotypes"`
	Distributions        map[Category]GradeProbabilities `json:"distributions"`
	ParentRelationshipID *int                            `json:"parentRelationshipId"`
}

// Parents es la respuesta de GET /sheep/{id}/parents.
type Parents struct {
	Parent1 Sheep `json:"parent1"`
	Parent2 Sheep `json:"parent2"`
}

// Family junta padres, hijos y parejas de una oveja. Parents nil = sin padres registrados.
type Family struct {
	Sheep    Sheep
	Parents  *Parents
	Children []Sheep
	Partners []Sheep
}
