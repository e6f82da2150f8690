package validator

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"tod/pkg/logger"
	"tod/pkg/model"
)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return ""
	}
	return fmt.Sprintf("validation failed: %d error(s)", len(v))
}

// AlertValidator checks that a sanitized alert holds every canonical field.
// It never inspects raw payloads.
type AlertValidator struct {
	validate *validator.Validate
	log      *logger.Logger
}

func NewAlertValidator(log *logger.Logger) *AlertValidator {
	v := validator.New(validator.WithRequiredStructEnabled())

	return &AlertValidator{
		validate: v,
		log:      log,
	}
}

func (v *AlertValidator) Validate(a *model.Alert) error {
	if a == nil {
		return ValidationErrors{{Field: "alert", Message: "alert is nil"}}
	}

	if err := v.validate.Struct(a); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			translated := v.translateValidationErrors(validationErrs)
			v.log.Debug("Alert failed canonical checks",
				"id", a.ID,
				"errors", len(translated),
			)
			return translated
		}
		return err
	}

	return v.validateCategoryLabel(a)
}

func (v *AlertValidator) translateValidationErrors(errs validator.ValidationErrors) ValidationErrors {
	var validationErrors ValidationErrors

	for _, err := range errs {
		validationErrors = append(validationErrors, ValidationError{
			Field:   err.Field(),
			Message: translateTag(err),
		})
	}

	return validationErrors
}

func translateTag(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return fmt.Sprintf("must be one of [%s], got %q", err.Param(), err.Value())
	case "eqfield":
		return fmt.Sprintf("must equal %s", err.Param())
	case "uppercase":
		return "must be uppercase"
	default:
		return err.Error()
	}
}

// An alarm is always labelled ALARM, and ALARM is never used for warnings.
func (v *AlertValidator) validateCategoryLabel(a *model.Alert) error {
	if (a.Type == model.CategoryAlarm) != (a.TypeLabel == model.LabelAlarm) {
		return ValidationErrors{{
			Field:   "TypeLabel",
			Message: fmt.Sprintf("label %q does not match category %q", a.TypeLabel, a.Type),
		}}
	}
	return nil
}
