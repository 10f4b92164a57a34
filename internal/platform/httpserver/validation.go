package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

var (
	errInvalidJSON      = errors.New("request body must be valid JSON")
	errValidationFailed = errors.New("request body failed validation")
)

// decodeAndValidate parses the body and runs struct tag validation.
// Handlers map the two sentinel errors to their module's error shape.
func decodeAndValidate(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return errInvalidJSON
	}
	if err := validate.Struct(dst); err != nil {
		return errValidationFailed
	}
	return nil
}
