package apierror

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrorResponse abstracts all API error responses to the user.
//
// This interface does not implement `error`, since its only purpose
// is to be used for API responses and not for logging circumstances.
//
// In general, the whole ErrorResponse can be sent for serialization.
type ErrorResponse interface {
	// Code is the HTTP status code to be returned.
	Code() int
}

type APIError struct {
	Message string `json:"message"`
	Status  int    `json:"-"`
}

func (a *APIError) Code() int {
	return a.Status
}

type StructuredError struct {
	Errors map[string][]string `json:"errors"`
	Status int                 `json:"-"`
}

func (s *StructuredError) Code() int {
	return s.Status
}

func (s *StructuredError) Add(field, problem string) {
	s.Errors[field] = append(s.Errors[field], problem)
}

var (
	MalformedJSONError  = NewSimple(400, "Malformed JSON body")
	MalformedBodyError  = NewSimple(400, "Malformed request body")
	MalformedQueryError = NewSimple(400, "Malformed query parameters")
	InternalServerError = NewSimple(500, "Internal server error")

	NotFoundError  = NewSimple(404, "Resource not found")
	InvalidIDError = NewSimple(400, "The provided ID is invalid, IDs are UUIDs")

	AccountNotFoundError = NewSimple(404, "Account not found")
	OrderNotFoundError   = NewSimple(404, "Order not found")
	DuplicateCodeError   = NewSimple(409, "An account with this code already exists")
	EmptyPatchError      = NewSimple(400, "At least one field must be provided")
)

func FromValidationError(err error) *StructuredError {
	var ve validator.ValidationErrors
	ok := errors.As(err, &ve)
	if !ok {
		return nil
	}

	problems := map[string][]string{}
	for _, fe := range ve {
		field := strings.ToLower(fe.Field())

		switch fe.Tag() {
		case "required":
			problems[field] = append(problems[field], "This field is required")
		case "min":
			problems[field] = append(problems[field], "Value is too short, min: "+fe.Param())
		case "max":
			problems[field] = append(problems[field], "Value is too long, max: "+fe.Param())
		case "len":
			problems[field] = append(problems[field], "Value must have exactly "+fe.Param()+" characters")
		case "email":
			problems[field] = append(problems[field], "Value must be a valid email address")
		case "usstate":
			problems[field] = append(problems[field], "Value must be a two letter state code")
		case "phone":
			problems[field] = append(problems[field], "Value must be a valid phone number")
		case "addresstype":
			problems[field] = append(problems[field], "Value must be one of: billing, shipping, warehouse, pickup")
		case "oneof":
			problems[field] = append(problems[field], "Value must be one of: "+fe.Param())
		case "nospaces":
			problems[field] = append(problems[field], "Value must not contain spaces")

		default:
			problems[field] = append(problems[field], "Invalid value provided")
		}
	}

	return &StructuredError{
		Errors: problems,
		Status: http.StatusBadRequest,
	}
}

func NewSimple(status int, msg string, args ...any) *APIError {
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	return &APIError{Status: status, Message: msg}
}

func NewStructured(code int) *StructuredError {
	return &StructuredError{
		Errors: make(map[string][]string),
		Status: code,
	}
}

func NewInvalidParamTypeError(name, dataType string) *APIError {
	return NewSimple(http.StatusBadRequest, "Parameter '%s' has invalid type, expected: %s", name, dataType)
}
