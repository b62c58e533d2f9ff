package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

const nonFieldKey = "non_field_errors"

var registerOnce sync.Once

var decimalType = reflect.TypeOf(decimal.Decimal{})

// Decimal is a request field holding a decimal, sent as a JSON number or string.
// A malformed value fails as a type error, so the decoder names the field.
type Decimal struct {
	decimal.Decimal
}

func (d *Decimal) UnmarshalJSON(b []byte) error {
	if err := d.Decimal.UnmarshalJSON(b); err != nil {
		return &json.UnmarshalTypeError{Value: string(b), Type: decimalType}
	}
	return nil
}

// UseJSONFieldNames makes validator report fields by their json tag, so the
// keys in FieldErrors match the request body.
func UseJSONFieldNames() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(jsonFieldName)
	})
}

func jsonFieldName(f reflect.StructField) string {
	name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return f.Name
	}
	return name
}

// FieldErrors turns a bind error into field -> messages.
func FieldErrors(err error) map[string][]string {
	out := map[string][]string{}
	if err == nil {
		return out
	}

	var verrs validator.ValidationErrors
	var typeErr *json.UnmarshalTypeError
	var syntaxErr *json.SyntaxError
	switch {
	case errors.As(err, &verrs):
		for _, fe := range verrs {
			out[fe.Field()] = append(out[fe.Field()], ruleMessage(fe))
		}
	case errors.As(err, &typeErr) && typeErr.Field != "":
		msg := fmt.Sprintf("Expected a %s.", typeErr.Type.String())
		if typeErr.Type == decimalType {
			msg = "A valid number is required."
		}
		out[typeErr.Field] = append(out[typeErr.Field], msg)
	case errors.As(err, &syntaxErr), errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		out[nonFieldKey] = []string{"Request body must be a valid JSON object."}
	default:
		out[nonFieldKey] = []string{err.Error()}
	}
	return out
}

func ruleMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "max":
		return fmt.Sprintf("Ensure this field has no more than %s characters.", fe.Param())
	case "min":
		return fmt.Sprintf("Ensure this field has at least %s characters.", fe.Param())
	case "email":
		return "Enter a valid email address."
	case "eqfield":
		return "The two password fields didn't match."
	case "datetime":
		return "Enter a valid date (YYYY-MM-DD)."
	case "gt":
		return fmt.Sprintf("Ensure this value is greater than %s.", fe.Param())
	case "gte":
		return fmt.Sprintf("Ensure this value is greater than or equal to %s.", fe.Param())
	case "alphanum":
		return "Enter a value made of letters and digits only."
	case "e164", "numeric":
		return "Enter a valid phone number."
	default:
		return fmt.Sprintf("Failed on the %q rule.", fe.Tag())
	}
}
