package utils

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// SchemaField is the key used for errors that are not tied to a single field.
const SchemaField = "_schema"

// ValidationError lists per-field messages, keyed by the JSON path of the field
// (nested items use dotted indexes, e.g. "activities.0.type").
type ValidationError struct {
	Fields map[string][]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, strings.Join(e.Fields[k], " ")))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) add(field, message string) {
	if e.Fields == nil {
		e.Fields = make(map[string][]string)
	}
	e.Fields[field] = append(e.Fields[field], message)
}

func NewValidationError(field, message string) *ValidationError {
	verr := &ValidationError{}
	verr.add(field, message)
	return verr
}

var tagNameOnce sync.Once

// registerJSONTagNames makes validator report json names instead of Go field names.
func registerJSONTagNames() {
	tagNameOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
}

// BindJSON loads the request body into obj. Unknown fields are rejected and
// the binding rules are applied; failures are returned as *ValidationError.
func BindJSON(c *gin.Context, obj any) error {
	if c.Request == nil || c.Request.Body == nil {
		return NewValidationError(SchemaField, "Invalid input type.")
	}
	return DecodeAndValidate(c.Request.Body, obj)
}

// DecodeAndValidate expects exactly one JSON value in r.
func DecodeAndValidate(r io.Reader, obj any) error {
	registerJSONTagNames()

	body, err := io.ReadAll(r)
	if err != nil {
		return NewValidationError(SchemaField, "Invalid input type.")
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.DisallowUnknownFields()
	if err := dec.Decode(obj); err != nil {
		return decodeError(err, body)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return NewValidationError(SchemaField, "Invalid input type.")
	}

	if err := binding.Validator.ValidateStruct(obj); err != nil {
		return translateValidation(err)
	}
	return nil
}

// decodeError keys errors by field only for top-level fields. The decoder does
// not report list indexes, so nested failures go under SchemaField with the
// path in the message.
func decodeError(err error, body []byte) *ValidationError {
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.As(err, &typeErr) && typeErr.Field != "":
		msg := fmt.Sprintf("Not a valid %s.", jsonKindName(typeErr.Type))
		if strings.Contains(typeErr.Field, ".") {
			return NewValidationError(SchemaField, typeErr.Field+": "+msg)
		}
		return NewValidationError(typeErr.Field, msg)
	case strings.HasPrefix(err.Error(), "json: unknown field "):
		field := strings.Trim(strings.TrimPrefix(err.Error(), "json: unknown field "), `"`)
		if !hasTopLevelKey(body, field) {
			return NewValidationError(SchemaField, fmt.Sprintf("Unknown nested field %q.", field))
		}
		return NewValidationError(field, "Unknown field.")
	default:
		return NewValidationError(SchemaField, "Invalid input type.")
	}
}

func hasTopLevelKey(body []byte, key string) bool {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(body, &top); err != nil {
		return false
	}
	_, ok := top[key]
	return ok
}

func translateValidation(err error) *ValidationError {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return NewValidationError(SchemaField, err.Error())
	}

	verr := &ValidationError{}
	for _, fe := range fieldErrs {
		verr.add(fieldPath(fe.Namespace()), fieldMessage(fe))
	}
	return verr
}

// fieldPath turns "EcoPlanRequest.activities[0].type" into "activities.0.type".
func fieldPath(namespace string) string {
	if i := strings.Index(namespace, "."); i >= 0 {
		namespace = namespace[i+1:]
	}
	namespace = strings.ReplaceAll(namespace, "[", ".")
	return strings.ReplaceAll(namespace, "]", "")
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Missing data for required field."
	case "email":
		return "Not a valid email address."
	case "oneof":
		return fmt.Sprintf("Must be one of: %s.", strings.ReplaceAll(fe.Param(), " ", ", "))
	case "min":
		return fmt.Sprintf("Shorter than minimum length %s.", fe.Param())
	case "max":
		return fmt.Sprintf("Longer than maximum length %s.", fe.Param())
	default:
		return fmt.Sprintf("Failed validation on the '%s' rule.", fe.Tag())
	}
}

func jsonKindName(t reflect.Type) string {
	if t == nil {
		return "value"
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.String:
		return "string"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "integer"
	case reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Bool:
		return "boolean"
	case reflect.Slice, reflect.Array:
		return "list"
	default:
		return "object"
	}
}
