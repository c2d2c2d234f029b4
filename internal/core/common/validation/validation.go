package validation

import (
	"fmt"
	"net/mail"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	errors "github.com/frahmantamala/attendance-system/internal"
	"github.com/frahmantamala/attendance-system/internal/core/common/dates"
	"github.com/google/uuid"
)

var (
	phonePattern = regexp.MustCompile(`^[0-9+\-.() ]*[0-9][0-9+\-.() ]*$`)
	timePattern  = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)
)

type ValidatorFunc func(interface{}) *errors.AppError

type FieldValidator struct {
	FieldName  string
	Value      interface{}
	Validators []ValidatorFunc
}

type ValidationBuilder struct {
	fields []FieldValidator
	nested []errors.ValidationError
}

func NewValidator() *ValidationBuilder {
	return &ValidationBuilder{
		fields: make([]FieldValidator, 0),
	}
}

func (v *ValidationBuilder) Field(name string, value interface{}) *FieldValidator {
	fv := FieldValidator{
		FieldName:  name,
		Value:      value,
		Validators: make([]ValidatorFunc, 0),
	}
	v.fields = append(v.fields, fv)
	return &v.fields[len(v.fields)-1]
}

// Nested folds the field errors of a child validation into this one, prefixing
// every field name (e.g. "employeeAttendances[0]").
func (v *ValidationBuilder) Nested(prefix string, err *errors.AppError) *ValidationBuilder {
	if err == nil {
		return v
	}
	details, ok := err.Details.(errors.ValidationErrors)
	if !ok {
		v.nested = append(v.nested, errors.ValidationError{Field: prefix, Message: err.Message, Code: string(err.Code)})
		return v
	}
	for _, fe := range details.Errors {
		fe.Field = prefix + "." + fe.Field
		v.nested = append(v.nested, fe)
	}
	return v
}

func (fv *FieldValidator) required() *errors.AppError {
	return errors.NewValidationFieldError(fv.FieldName, fmt.Sprintf("%s is required", fv.FieldName), errors.ErrCodeRequired)
}

func (fv *FieldValidator) Required() *FieldValidator {
	fv.Validators = append(fv.Validators, func(value interface{}) *errors.AppError {
		switch v := value.(type) {
		case string:
			if strings.TrimSpace(v) == "" {
				return fv.required()
			}
		case *string:
			if v == nil || strings.TrimSpace(*v) == "" {
				return fv.required()
			}
		case *bool:
			if v == nil {
				return fv.required()
			}
		case uuid.UUID:
			if v == uuid.Nil {
				return fv.required()
			}
		case time.Time:
			if v.IsZero() {
				return fv.required()
			}
		case dates.Date:
			if v.IsZero() {
				return fv.required()
			}
		}
		return nil
	})
	return fv
}

// Email accepts a bare address; empty values pass so it can be combined with
// Required or used for optional fields.
func (fv *FieldValidator) Email() *FieldValidator {
	fv.Validators = append(fv.Validators, func(value interface{}) *errors.AppError {
		v, ok := value.(string)
		if !ok || v == "" {
			return nil
		}
		addr, err := mail.ParseAddress(v)
		if err != nil || addr.Address != v {
			return errors.NewValidationFieldError(fv.FieldName, fmt.Sprintf("%s must be a valid email address", fv.FieldName), errors.ErrCodeInvalidEmail)
		}
		return nil
	})
	return fv
}

func (fv *FieldValidator) Phone() *FieldValidator {
	fv.Validators = append(fv.Validators, func(value interface{}) *errors.AppError {
		v, ok := value.(string)
		if !ok || v == "" {
			return nil
		}
		if !phonePattern.MatchString(v) {
			return errors.NewValidationFieldError(fv.FieldName, fmt.Sprintf("%s must be a valid phone number", fv.FieldName), errors.ErrCodeInvalidPhone)
		}
		return nil
	})
	return fv
}

// TimeOfDay checks the HH:mm format. The value stays a string.
func (fv *FieldValidator) TimeOfDay() *FieldValidator {
	fv.Validators = append(fv.Validators, func(value interface{}) *errors.AppError {
		var v string
		switch t := value.(type) {
		case string:
			v = t
		case *string:
			if t != nil {
				v = *t
			}
		}
		if v == "" {
			return nil
		}
		if !timePattern.MatchString(v) {
			return errors.NewValidationFieldError(fv.FieldName, fmt.Sprintf("%s must use the HH:mm format", fv.FieldName), errors.ErrCodeInvalidTime)
		}
		return nil
	})
	return fv
}

func (fv *FieldValidator) MinInt(min int64) *FieldValidator {
	fv.Validators = append(fv.Validators, func(value interface{}) *errors.AppError {
		var v int64
		switch n := value.(type) {
		case int:
			v = int64(n)
		case int32:
			v = int64(n)
		case int64:
			v = n
		default:
			return nil
		}
		if v < min {
			message := fmt.Sprintf("%s must be at least %d", fv.FieldName, min)
			return errors.NewValidationFieldError(fv.FieldName, message, errors.ErrCodeOutOfRange)
		}
		return nil
	})
	return fv
}

func (fv *FieldValidator) MaxInt(max int64) *FieldValidator {
	fv.Validators = append(fv.Validators, func(value interface{}) *errors.AppError {
		var v int64
		switch n := value.(type) {
		case int:
			v = int64(n)
		case int32:
			v = int64(n)
		case int64:
			v = n
		default:
			return nil
		}
		if v > max {
			message := fmt.Sprintf("%s must be at most %d", fv.FieldName, max)
			return errors.NewValidationFieldError(fv.FieldName, message, errors.ErrCodeOutOfRange)
		}
		return nil
	})
	return fv
}

// MaxLength counts characters, not bytes, matching VARCHAR(n).
func (fv *FieldValidator) MaxLength(max int) *FieldValidator {
	fv.Validators = append(fv.Validators, func(value interface{}) *errors.AppError {
		var v string
		switch s := value.(type) {
		case string:
			v = s
		case *string:
			if s != nil {
				v = *s
			}
		}
		if utf8.RuneCountInString(v) > max {
			message := fmt.Sprintf("%s must not exceed %d characters", fv.FieldName, max)
			return errors.NewValidationFieldError(fv.FieldName, message, errors.ErrCodeValidationFailed)
		}
		return nil
	})
	return fv
}

func (v *ValidationBuilder) Validate() *errors.AppError {
	var validationErrors []errors.ValidationError

	for _, field := range v.fields {
		for _, validator := range field.Validators {
			err := validator(field.Value)
			if err == nil {
				continue
			}
			if details, ok := err.Details.(errors.ValidationErrors); ok {
				validationErrors = append(validationErrors, details.Errors...)
			} else {
				validationErrors = append(validationErrors, errors.ValidationError{
					Field:   field.FieldName,
					Message: err.Message,
					Code:    string(err.Code),
				})
			}
			// one message per field is enough
			break
		}
	}

	validationErrors = append(validationErrors, v.nested...)

	if len(validationErrors) > 0 {
		return errors.NewValidationError("Validation failed", errors.ErrCodeValidationFailed).
			WithDetails(errors.ValidationErrors{Errors: validationErrors})
	}

	return nil
}
