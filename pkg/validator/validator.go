package validator

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// В ошибках используем имена полей из json-тегов
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	registerCustomValidations()
}

func registerCustomValidations() {
	_ = validate.RegisterValidation("reservation_status", func(fl validator.FieldLevel) bool {
		switch fl.Field().String() {
		case "PENDING", "CONFIRMED", "COMPLETED", "CANCELLED":
			return true
		}
		return false
	})
}

// Validate проверяет структуру и возвращает ошибки по полям (nil, если ошибок нет)
func Validate(s interface{}) map[string]string {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return map[string]string{"_": err.Error()}
	}

	fields := make(map[string]string, len(validationErrors))
	for _, fe := range validationErrors {
		field := fe.Field()
		switch fe.Tag() {
		case "required":
			fields[field] = "field is required"
		case "email":
			fields[field] = "invalid email format"
		case "min":
			fields[field] = "value is too short (min: " + fe.Param() + ")"
		case "max":
			fields[field] = "value is too long (max: " + fe.Param() + ")"
		case "url":
			fields[field] = "invalid URL format"
		case "datetime":
			fields[field] = "invalid date, expected YYYY-MM-DD"
		case "reservation_status":
			fields[field] = "invalid status, expected PENDING, CONFIRMED, COMPLETED or CANCELLED"
		default:
			fields[field] = "invalid value"
		}
	}

	return fields
}
