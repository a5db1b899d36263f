package utils

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
)

func WriteJSON(w http.ResponseWriter, payload any, code int) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	return json.NewEncoder(w).Encode(payload)
}

const maxBodySize = 1 << 20

// DecodeBody decodes a JSON body of at most 1MB and rejects unknown fields.
func DecodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodySize))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

// ValidationErrorResponse contains field-specific validation messages
// swagger:model ValidationErrorResponse
type ValidationErrorResponse struct {
	Message string            `json:"message"`
	Code    string            `json:"code"`
	Fields  map[string]string `json:"fields,omitempty"`
}

func WriteValidationError(w http.ResponseWriter, err error) error {
	res := ValidationErrorResponse{
		Message: "invalid request",
		Code:    CodeValidation,
		Fields:  make(map[string]string),
	}

	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		for _, err := range ve {
			field := err.Field()
			res.Fields[field] = err.Tag()
		}
	} else if err != nil {
		res.Message = err.Error()
	}

	return WriteJSON(w, res, http.StatusBadRequest)
}

const (
	CodeValidation          = "validation_error"
	CodeInvalidTransition   = "invalid_transition"
	CodeAlreadyClaimed      = "already_claimed"
	CodeForbidden           = "forbidden"
	CodeNotFound            = "not_found"
	CodeUnauthorized        = "unauthorized"
	CodeUpstreamUnavailable = "upstream_unavailable"
	CodeInternal            = "internal"
)

// ErrorResponse describes a standard error response.
// Code lets consoles tell transient conflicts from hard failures.
// swagger:model ErrorResponse
type ErrorResponse struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

func WriteError(w http.ResponseWriter, message string, code int) error {
	return WriteJSON(w, ErrorResponse{Message: message}, code)
}

func WriteErrorCode(w http.ResponseWriter, message, errCode string, code int) error {
	return WriteJSON(w, ErrorResponse{Message: message, Code: errCode}, code)
}
