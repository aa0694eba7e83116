package lib

import (
	"encoding/json"
	"errors"
	"favour_crochet_server/structs"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var (
	validate    = newValidator()
	slugPattern = regexp.MustCompile(`^[-a-zA-Z0-9_]+$`)
)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// report json names instead of Go field names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		return slugPattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("african_style", func(fl validator.FieldLevel) bool {
		s := structs.AfricanStyle(fl.Field().String())
		return s == "" || s.Valid()
	})
	_ = v.RegisterValidation("order_status", func(fl validator.FieldLevel) bool {
		return structs.OrderStatus(fl.Field().String()).Valid()
	})

	return v
}

// FieldError represents a clean validation error for APIs
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError is a structured validation error
type ValidationError struct {
	Errors []FieldError `json:"errors"`
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		if e.Errors[0].Field == "" {
			return "validation failed: " + e.Errors[0].Message
		}
		return fmt.Sprintf("validation failed: %s %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return "validation failed"
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Errors: []FieldError{{Field: field, Message: message}}}
}

// ExtractAndValidateBody extracts and validates the request body into the provided struct type T.
// Keys that T does not declare are rejected.
func ExtractAndValidateBody[T any](r *http.Request) (*T, error) {
	return decodeBody[T](r, true)
}

// ExtractAndValidateUpdateBody is ExtractAndValidateBody for PUT and PATCH bodies: keys T does
// not declare are ignored, so a representation read from the API can be sent back as is.
func ExtractAndValidateUpdateBody[T any](r *http.Request) (*T, error) {
	return decodeBody[T](r, false)
}

func decodeBody[T any](r *http.Request, strict bool) (*T, error) {
	defer r.Body.Close()

	var body T

	dec := json.NewDecoder(r.Body)
	if strict {
		dec.DisallowUnknownFields()
	}

	if err := dec.Decode(&body); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, NewValidationError("", "request body is empty")
		}
		return nil, NewValidationError("", "malformed request body: "+err.Error())
	}

	if err := Validate(body); err != nil {
		return nil, err
	}

	return &body, nil
}

// Validate runs the struct tags of v and returns a *ValidationError on failure.
func Validate(v any) error {
	if err := validate.Struct(v); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			return mapValidationErrors(ve)
		}
		return err
	}
	return nil
}

// ParseUUIDParam reads a chi URL parameter as a UUID.
func ParseUUIDParam(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil || id == uuid.Nil {
		return uuid.Nil, NewValidationError(name, "must be a valid UUID")
	}
	return id, nil
}

func mapValidationErrors(errs validator.ValidationErrors) *ValidationError {
	out := &ValidationError{}

	for _, e := range errs {
		var message string
		switch e.Tag() {
		case "required":
			message = "is required"
		case "min":
			message = "must be at least " + e.Param() + lengthUnit(e.Kind())
		case "max":
			message = "must be at most " + e.Param() + lengthUnit(e.Kind())
		case "gte":
			message = "must be greater than or equal to " + e.Param()
		case "lte":
			message = "must be less than or equal to " + e.Param()
		case "oneof":
			message = "must be one of: " + e.Param()
		case "slug":
			message = "must contain only letters, numbers, underscores or hyphens"
		case "african_style", "order_status":
			message = fmt.Sprintf("%q is not a valid choice", fmt.Sprint(e.Value()))
		default:
			message = "is invalid"
		}

		out.Errors = append(out.Errors, FieldError{
			Field:   fieldPath(e.Namespace()),
			Message: message,
		})
	}

	return out
}

// fieldPath drops the root struct name: "CreateOrderRequest.items[0].quantity" -> "items[0].quantity".
func fieldPath(namespace string) string {
	if i := strings.IndexByte(namespace, '.'); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}

func lengthUnit(kind reflect.Kind) string {
	switch kind {
	case reflect.String:
		return " characters"
	case reflect.Slice, reflect.Array, reflect.Map:
		return " items"
	}
	return ""
}
