// Package validation configures request binding and turns binding failures
// into the structured violations returned with a 422.
package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"
	"sync"

	"client-service/internal/domain/client"
	"client-service/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var once sync.Once

// ErrNotObject is returned by BindJSON when the body is not a JSON object.
var ErrNotObject = errors.New("request body is not a JSON object")

// Register makes JSON binding reject unknown fields and teaches the validator
// about optional request fields. Safe to call more than once.
func Register() {
	once.Do(func() {
		binding.EnableDecoderDisallowUnknownFields = true

		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(jsonName)
		v.RegisterCustomTypeFunc(optionalValue, client.Field[string]{}, client.Field[int]{})
		v.RegisterStructValidation(patchNotNull, client.PatchClientRequest{})
	})
}

func jsonName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	switch name {
	case "-":
		return ""
	case "":
		return fld.Name
	}
	return name
}

// optionalValue exposes the carried value of a Field, or nil when it is
// absent or null so that omitempty skips it.
func optionalValue(field reflect.Value) interface{} {
	if o, ok := field.Interface().(interface{ OrNil() any }); ok {
		return o.OrNil()
	}
	return nil
}

func patchNotNull(sl validator.StructLevel) {
	req, ok := sl.Current().Interface().(client.PatchClientRequest)
	if !ok {
		return
	}
	if req.LastName.Null {
		sl.ReportError(req.LastName, client.ColumnLastName, "LastName", "notnull", "")
	}
	if req.FirstName.Null {
		sl.ReportError(req.FirstName, client.ColumnFirstName, "FirstName", "notnull", "")
	}
	if req.Address.Null {
		sl.ReportError(req.Address, client.ColumnAddress, "Address", "notnull", "")
	}
}

// BindJSON decodes and validates the request body into obj. Anything but a
// JSON object, including a bare null, is refused before decoding.
func BindJSON(c *gin.Context, obj any) error {
	data, err := c.GetRawData()
	if err != nil {
		return err
	}
	if body := bytes.TrimSpace(data); len(body) > 0 && body[0] != '{' {
		return ErrNotObject
	}
	return binding.JSON.BindBody(data, obj)
}

// Translate converts an error returned by gin binding into violations.
func Translate(err error) []response.FieldError {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := make([]response.FieldError, 0, len(verrs))
		for _, fe := range verrs {
			out = append(out, fromFieldError(fe))
		}
		return out
	}

	if errors.Is(err, ErrNotObject) {
		return []response.FieldError{{
			Loc:  []string{"body"},
			Msg:  "Input should be a valid dictionary or object to extract fields from",
			Type: "model_attributes_type",
		}}
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		loc := []string{"body"}
		if typeErr.Field != "" {
			loc = append(loc, strings.Split(typeErr.Field, ".")...)
		}
		return []response.FieldError{{
			Loc:  loc,
			Msg:  fmt.Sprintf("Input should be a valid %s, got %s", kindName(typeErr.Type), typeErr.Value),
			Type: "type_error",
		}}
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) || errors.Is(err, io.ErrUnexpectedEOF) {
		return []response.FieldError{{
			Loc:  []string{"body"},
			Msg:  "JSON decode error",
			Type: "json_invalid",
		}}
	}

	if errors.Is(err, io.EOF) {
		return []response.FieldError{{
			Loc:  []string{"body"},
			Msg:  "Field required",
			Type: "missing",
		}}
	}

	if name, ok := strings.CutPrefix(err.Error(), "json: unknown field "); ok {
		return []response.FieldError{{
			Loc:  []string{"body", strings.Trim(name, `"`)},
			Msg:  "Extra inputs are not permitted",
			Type: "extra_forbidden",
		}}
	}

	return []response.FieldError{{
		Loc:  []string{"body"},
		Msg:  err.Error(),
		Type: "value_error",
	}}
}

// InvalidInteger reports a path parameter that is not an integer.
func InvalidInteger(param string) []response.FieldError {
	return []response.FieldError{{
		Loc:  []string{"path", param},
		Msg:  "Input should be a valid integer, unable to parse string as an integer",
		Type: "int_parsing",
	}}
}

func fromFieldError(fe validator.FieldError) response.FieldError {
	v := response.FieldError{Loc: []string{"body", fe.Field()}}
	switch fe.Tag() {
	case "required":
		v.Msg, v.Type = "Field required", "missing"
	case "notnull":
		v.Msg, v.Type = "Field may not be null", "null_forbidden"
	case "max":
		if fe.Kind() == reflect.String {
			v.Msg, v.Type = fmt.Sprintf("String should have at most %s characters", fe.Param()), "string_too_long"
		} else {
			v.Msg, v.Type = fmt.Sprintf("Input should be less than or equal to %s", fe.Param()), "less_than_equal"
		}
	case "min":
		v.Msg, v.Type = fmt.Sprintf("Input should be greater than or equal to %s", fe.Param()), "greater_than_equal"
	default:
		v.Msg, v.Type = fmt.Sprintf("Failed on the '%s' rule", fe.Tag()), fe.Tag()
	}
	return v
}

func kindName(t reflect.Type) string {
	if t == nil {
		return "value"
	}
	switch t.Kind() {
	case reflect.String:
		return "string"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return "integer"
	case reflect.Struct, reflect.Map:
		return "object"
	}
	return t.String()
}
