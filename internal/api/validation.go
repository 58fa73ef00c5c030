package api

import (
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// SetupValidator makes validator report fields by their JSON names so the
// 400 payload talks about "firstName", not "FirstName", and registers the
// phone constraint. Call once at startup.
func SetupValidator() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	// Exactly ten digits. The numeric tag is too loose here: it admits a
	// leading sign, so "+123456789" would slip through a pure length check.
	_ = v.RegisterValidation("phone10", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		if len(s) != 10 {
			return false
		}
		for _, r := range s {
			if r < '0' || r > '9' {
				return false
			}
		}
		return true
	})
}

// validationMessages builds the field-name to message map for a 400 response
func validationMessages(verrs validator.ValidationErrors) map[string]string {
	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		out[fe.Field()] = fieldMessage(fe)
	}
	return out
}

// fieldMessage renders one constraint violation as a human message
func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is a mandatory field"
	case "max":
		return fe.Field() + " must not exceed " + fe.Param() + " characters in length"
	case "email":
		return "a valid email address is required"
	case "phone10":
		return fe.Field() + " format is invalid"
	default:
		return fe.Field() + " is invalid"
	}
}
