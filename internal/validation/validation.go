// Package validation binds and validates request bodies. Every mutating
// route funnels its JSON through one of the schemas defined here before any
// business logic runs. Structural rules (required, length bounds, positive
// numbers) live in binding tags; normalization (trim, lowercase everything
// except passwords) and cross-field rules run afterwards.
package validation

import (
	"errors"
	"net/http"
	"reflect"
	"strings"
	"unicode"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// FieldError describes a single failed field in a structured 400 response.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type Error struct {
	Message string
	Fields  []FieldError
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+" "+f.Message)
	}
	return strings.Join(parts, "; ")
}

// Detail is the value rendered under the "error" key: the structured field
// list when present, the plain message otherwise.
func (e *Error) Detail() any {
	if len(e.Fields) > 0 {
		return e.Fields
	}
	return e.Message
}

type normalizer interface {
	Normalize()
}

type checker interface {
	Validate() error
}

func init() {
	// Report field errors under their json names.
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	}
}

// Bind parses the request body into req, normalizes it, and runs any
// schema-level checks. On failure it writes the 400 response and returns
// false; handlers just return.
func Bind(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			c.JSON(http.StatusBadRequest, gin.H{"error": fieldErrors(verrs)})
		} else {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Not a json"})
		}
		return false
	}
	if n, ok := req.(normalizer); ok {
		n.Normalize()
	}
	if v, ok := req.(checker); ok {
		if err := v.Validate(); err != nil {
			var verr *Error
			if errors.As(err, &verr) {
				c.JSON(http.StatusBadRequest, gin.H{"error": verr.Detail()})
			} else {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			}
			return false
		}
	}
	return true
}

func fieldErrors(verrs validator.ValidationErrors) []FieldError {
	fields := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, FieldError{Field: fe.Field(), Message: message(fe)})
	}
	return fields
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		if fe.Kind() == reflect.String {
			return "must be at least " + fe.Param() + " characters"
		}
		return "must be at least " + fe.Param()
	case "max":
		if fe.Kind() == reflect.String {
			return "must be at most " + fe.Param() + " characters"
		}
		return "must be at most " + fe.Param()
	case "len":
		return "must be exactly " + fe.Param() + " characters"
	case "gt":
		return "must be greater than " + fe.Param()
	case "gte":
		return "must be at least " + fe.Param()
	default:
		return "is invalid"
	}
}

// checkPasswordComplexity requires at least one uppercase letter and one
// digit. Length bounds are enforced by the binding tags.
func checkPasswordComplexity(password string) error {
	var hasUpper, hasDigit bool
	for _, r := range password {
		if unicode.IsUpper(r) {
			hasUpper = true
		}
		if unicode.IsDigit(r) {
			hasDigit = true
		}
	}
	if !hasUpper {
		return &Error{Message: "Password must contain an uppercase letter"}
	}
	if !hasDigit {
		return &Error{Message: "Password must contain a digit"}
	}
	return nil
}

var errEmptyPayload = &Error{Message: "Request data cannot be empty"}

func lower(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func lowerPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := lower(*s)
	return &v
}
