package forms

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"backoffice/internal/models"

	"github.com/go-playground/validator/v10"
)

var (
	// ErrValidation matches every *ValidationError.
	ErrValidation = errors.New("validation failed")
	// ErrReference matches every *ReferenceError.
	ErrReference = errors.New("reference not found")
)

// ValidationError reports draft fields that failed their checks. Fields maps the JSON
// field name to a message.
type ValidationError struct {
	Entity string
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return fmt.Sprintf("%s: invalid fields: %s", e.Entity, strings.Join(names, ", "))
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// ReferenceError reports a selected entity that is missing from the cached collection
// it was resolved against.
type ReferenceError struct {
	Resource models.Resource
	ID       int64
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("%s %d: %v", e.Resource, e.ID, ErrReference)
}

func (e *ReferenceError) Is(target error) bool {
	return target == ErrReference
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	return v
}

// check runs struct validation on a draft and converts failures to a *ValidationError.
func check(entity string, draft interface{}) error {
	err := validate.Struct(draft)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}
	fields := make(map[string]string, len(validationErrors))
	for _, e := range validationErrors {
		fields[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
	}
	return &ValidationError{Entity: entity, Fields: fields}
}
