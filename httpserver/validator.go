package httpserver

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/vilus/yandex-praktikum-searcher/errs"
)

// FieldError is one per-field validation failure, shaped for the 422 body.
type FieldError struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}

// ValidationError accumulates every failing field of a request so clients
// see all problems at once instead of the first one.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = strings.Join(f.Loc, ".") + ": " + f.Msg
	}
	return "validation error: " + strings.Join(parts, "; ")
}

func newFieldError(field, msg, typ string) FieldError {
	return FieldError{
		Loc:  []string{"query", field},
		Msg:  msg,
		Type: typ,
	}
}

type CustomValidator struct {
	validate *validator.Validate
}

func NewValidator() *CustomValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("query"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})
	return &CustomValidator{validate: v}
}

// Validate returns a *ValidationError carrying every failing field.
// validator.Struct already reports all failures, not just the first.
func (cv *CustomValidator) Validate(i interface{}) error {
	err := cv.validate.Struct(i)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return errs.Errorf(errs.EINTERNAL, "validate request: %v", err)
	}

	fields := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fieldErrorFor(fe))
	}
	return &ValidationError{Fields: fields}
}

func fieldErrorFor(fe validator.FieldError) FieldError {
	field := fe.Field()
	if field == "" {
		field = fe.StructField()
	}

	switch fe.Tag() {
	case "gt":
		return newFieldError(field,
			fmt.Sprintf("must be more than %s", fe.Param()),
			"value_error.number.not_gt")
	case "oneof":
		return newFieldError(field,
			fmt.Sprintf("value is not a valid enumeration member; permitted: %s", fe.Param()),
			"type_error.enum")
	default:
		return newFieldError(field, field+" failed on "+fe.Tag(), "value_error")
	}
}
