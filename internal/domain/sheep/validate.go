package sheep

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// createRules replica CreateRequest con tags de validación.
// Sólo se chequean rangos de probabilidad y claves conocidas; el fenotipo
// viaja tal cual y lo valida el backend.
type createRules struct {
	Distributions map[string]map[string]float64 `validate:"dive,keys,oneof=SWIM FLY RUN POWER STAMINA,endkeys,dive,keys,oneof=S A B C D E,endkeys,gte=0,lte=1"`
}

// Validate revisa un CreateRequest antes de mandarlo al backend.
// Probabilidades fuera de [0,1] devuelven un error que envuelve ErrInvalidInput.
// No exige que la suma sea 1.
func Validate(req CreateRequest) error {
	rules := createRules{Distributions: make(map[string]map[string]float64, len(req.Distributions))}
	for c, probs := range req.Distributions {
		m := make(map[string]float64, len(probs))
		for g, p := range probs {
			m[string(g)] = p
		}
		rules.Distributions[string(c)] = m
	}

	if err := validate.Struct(rules); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidInput, formatValidationError(err))
	}
	return nil
}

func formatValidationError(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}

	msgs := make([]string, 0, len(verrs))
	for _, e := range verrs {
		field := strings.TrimPrefix(e.Namespace(), "createRules.Distributions")
		switch e.Tag() {
		case "gte", "lte":
			msgs = append(msgs, fmt.Sprintf("probability %s must be between 0 and 1", field))
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("unknown key %v in distributions", e.Value()))
		default:
			msgs = append(msgs, fmt.Sprintf("distributions%s is invalid", field))
		}
	}
	return strings.Join(msgs, "; ")
}
