package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate es el singleton de validator/v10; es seguro para uso concurrente y cachea metadata.
var validate = validator.New(validator.WithRequiredStructEnabled())

// Struct valida un DTO según sus tags `validate`. Devuelve un error legible
// con los campos inválidos, o nil si todo es correcto.
func Struct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag()))
		}
		return fmt.Errorf("campos inválidos: %s", strings.Join(fields, ", "))
	}
	return err
}
