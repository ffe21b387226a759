package dto

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/mangodesk/summary-service/internal/domain"
)

var validate = validator.New()

// validateStruct maps the first validator failure onto a domain error.
// One failure at a time keeps the error shape identical to hand-rolled
// checks.
func validateStruct(req any) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			return domain.ErrMissingField(field)
		default:
			return domain.ErrInvalidField(field, fe.Tag())
		}
	}
	return domain.ErrInvalidField("body", "invalid")
}
