package validator

import (
	stderrors "errors"

	"github.com/go-playground/validator/v10"
	"github.com/leeeeeeeed/real-estate-list-app/internal/pkg/errors"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Validate - валидация структуры. Ошибки полей превращаются в VALIDATION_FAILED
// с деталями вида {"field": "tag"}
func Validate(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !stderrors.As(err, &fieldErrs) {
		return errors.ErrInvalidRequest.WithMessage(err.Error())
	}

	details := make(map[string]interface{}, len(fieldErrs))
	for _, fe := range fieldErrs {
		details[fe.Field()] = fe.Tag()
	}
	return errors.ErrValidationFailed.WithDetails(details)
}

