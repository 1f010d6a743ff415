package helper

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/IrumShehryar/Restaurant-Website/apperrors"
)

const maxBodyBytes = 1 << 20

// DecodeJSON reads a JSON request body into v. A missing body, bad JSON or
// a value of the wrong type is a VALIDATION_ERROR. A JSON null leaves the
// target field untouched.
func DecodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	dec := json.NewDecoder(r.Body)
	err := dec.Decode(v)
	if err == nil {
		// Only whitespace may follow the value.
		if _, err := dec.Token(); !errors.Is(err, io.EOF) {
			return apperrors.New(apperrors.ErrCodeValidation, "request body must contain a single JSON value")
		}
		return nil
	}

	var typeErr *json.UnmarshalTypeError
	var maxErr *http.MaxBytesError
	switch {
	case errors.Is(err, io.EOF):
		return apperrors.New(apperrors.ErrCodeValidation, "request body is required")
	case errors.As(err, &typeErr):
		field := typeErr.Field
		if field == "" {
			field = "body"
		}
		return apperrors.NewWithContext(apperrors.ErrCodeValidation, "invalid field type",
			map[string]any{"fields": map[string]any{field: "must be " + jsonType(typeErr.Type.Kind().String())}})
	case errors.As(err, &maxErr):
		return apperrors.NewWithContext(apperrors.ErrCodeValidation, "request body too large",
			map[string]any{"limit": maxErr.Limit})
	default:
		return apperrors.Wrap(apperrors.ErrCodeValidation, "malformed JSON body", err)
	}
}

func jsonType(kind string) string {
	switch kind {
	case "float32", "float64", "int", "int8", "int16", "int32", "int64",
		"uint", "uint8", "uint16", "uint32", "uint64":
		return "number"
	case "slice", "array":
		return "array"
	case "struct", "map":
		return "object"
	case "bool":
		return "boolean"
	default:
		return kind
	}
}
