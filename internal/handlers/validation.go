package handlers

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// newValidator reports fields by their JSON names.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// bindJSON parses the body into dst and validates it. The returned message is
// empty when dst is valid.
func bindJSON(c *fiber.Ctx, v *validator.Validate, dst any) string {
	if err := c.BodyParser(dst); err != nil {
		return "Invalid request payload"
	}
	if err := v.Struct(dst); err != nil {
		return validationMessage(err)
	}
	return ""
}

func validationMessage(err error) string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return "validation error: invalid request"
	}

	parts := make([]string, 0, len(validationErrors))
	for _, ve := range validationErrors {
		switch ve.Tag() {
		case "required", "required_without":
			parts = append(parts, fmt.Sprintf("%s is required", ve.Field()))
		default:
			parts = append(parts, fmt.Sprintf("%s failed %s", ve.Field(), ve.Tag()+paramSuffix(ve.Param())))
		}
	}
	return "validation error: " + strings.Join(parts, "; ")
}

func paramSuffix(param string) string {
	if param == "" {
		return ""
	}
	return "=" + param
}
