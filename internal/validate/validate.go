// Package validate checks request payloads against their struct tags before anything is sent
package validate

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Currencies lists the currency codes the API accepts
var Currencies = []string{"NGN", "GHS", "USD", "ZAR", "KES", "XOF"}

var v = newValidator()

func newValidator() *validator.Validate {
	val := validator.New(validator.WithRequiredStructEnabled())
	val.RegisterTagNameFunc(fieldName)
	_ = val.RegisterValidation("currency", func(fl validator.FieldLevel) bool {
		code := fl.Field().String()
		for _, c := range Currencies {
			if code == c {
				return true
			}
		}
		return false
	})
	return val
}

// fieldName reports fields by their wire name so diagnostics match what the caller reads in API docs
func fieldName(f reflect.StructField) string {
	for _, tag := range []string{"path", "json", "url"} {
		name, _, _ := strings.Cut(f.Tag.Get(tag), ",")
		if name != "" && name != "-" {
			return name
		}
	}
	return f.Name
}

// FieldError describes one failed constraint
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
	Param string `json:"param,omitempty"`
}

func (fe FieldError) String() string {
	if fe.Param == "" {
		return fmt.Sprintf("%s failed on %s", fe.Field, fe.Rule)
	}
	return fmt.Sprintf("%s failed on %s=%s", fe.Field, fe.Rule, fe.Param)
}

// Error is returned when a payload does not satisfy its constraints
type Error struct {
	Fields []FieldError `json:"fields"`
}

func (e *Error) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, fe := range e.Fields {
		parts = append(parts, fe.String())
	}
	return "paystack: invalid payload: " + strings.Join(parts, "; ")
}

// Has reports whether the named field failed validation
func (e *Error) Has(field string) bool {
	for _, fe := range e.Fields {
		if fe.Field == field {
			return true
		}
	}
	return false
}

// Struct validates s and converts validator failures into *Error
func Struct(s any) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("error validating payload, %w", err)
	}

	out := &Error{Fields: make([]FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		out.Fields = append(out.Fields, FieldError{
			Field: trimRoot(fe.Namespace()),
			Rule:  fe.Tag(),
			Param: fe.Param(),
		})
	}
	return out
}

// RegisterStructRule installs a struct-level rule, used for payloads whose shape depends on a discriminant field.
// It must be called before any validation runs, typically from init.
func RegisterStructRule(fn validator.StructLevelFunc, types ...any) {
	v.RegisterStructValidation(fn, types...)
}

// trimRoot drops the leading struct type name from a validator namespace
func trimRoot(ns string) string {
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}
