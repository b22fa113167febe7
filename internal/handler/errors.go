package handler

import (
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// ValidationError is the uniform error shape of the API: the failing
// field's location path, a human-readable message and a machine-readable
// kind tag.
type ValidationError struct {
	Ctx  map[string]any `json:"ctx"`
	Loc  []string       `json:"loc"`
	Msg  string         `json:"msg"`
	Type string         `json:"type_"`
}

func init() {
	// Report fields in error locations by their json name, not the Go
	// struct field name.
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	}
}

// translateBindingError maps a ShouldBind failure to the API error shape:
// constraint violations become a 422 with one entry per failing field,
// anything else (malformed body, wrong types) a generic 400.
func translateBindingError(c *gin.Context, err error) {
	if fieldErrors, ok := err.(validator.ValidationErrors); ok {
		report := make([]ValidationError, 0, len(fieldErrors))
		for _, fe := range fieldErrors {
			report = append(report, ValidationError{
				Loc:  []string{fe.Field()},
				Msg:  fieldErrorMessage(fe),
				Type: "validation_error",
			})
		}
		c.JSON(http.StatusUnprocessableEntity, report)
		return
	}

	c.JSON(http.StatusBadRequest, ValidationError{
		Loc:  []string{"field_name"},
		Msg:  "Bad Request. Please check the input data.",
		Type: "validation_error",
	})
}

func fieldErrorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "max":
		return fmt.Sprintf("Value must have at most %s characters.", fe.Param())
	case "gte":
		return fmt.Sprintf("Value must be greater than or equal to %s.", fe.Param())
	case "lte":
		return fmt.Sprintf("Value must be less than or equal to %s.", fe.Param())
	case "gt":
		return fmt.Sprintf("Value must be greater than %s.", fe.Param())
	default:
		return "Invalid value."
	}
}

// RegisterErrorHandlers installs the generic handlers for requests that
// match no route or method, mirroring the documented error schema.
func RegisterErrorHandlers(router *gin.Engine) {
	notFound := func(c *gin.Context) {
		c.JSON(http.StatusNotFound, ValidationError{
			Loc:  []string{"resource"},
			Msg:  "Resource not found.",
			Type: "not_found",
		})
	}
	router.NoRoute(notFound)
	router.NoMethod(notFound)
}
