package http

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"unicode"
	"unicode/utf8"

	"swiftdrop/internal/generated/servers"
	"swiftdrop/internal/pkg/errs"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Error codes of the servers.Error envelope.
const (
	CodeValidation   = "VALIDATION_ERROR"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeNotFound     = "NOT_FOUND"
	CodeConflict     = "CONFLICT"
	CodeInternal     = "INTERNAL_ERROR"
)

const internalErrorMessage = "Something went wrong, please try again later"

type apiError struct {
	status  int
	code    string
	message string
}

// NewErrorHandler renders every error returned by a handler or middleware as
// servers.Error:
//
//	ValueIsRequired/Invalid/OutOfRange, request validation -> 400 VALIDATION_ERROR
//	UnauthorizedError                                     -> 401 UNAUTHORIZED
//	ObjectNotFoundError                                   -> 404 NOT_FOUND
//	ObjectAlreadyExistsError                              -> 409 CONFLICT
//	anything else                                         -> 500 INTERNAL_ERROR
//
// Causes of 500 responses are logged and never sent to the client.
func NewErrorHandler(logger *zap.Logger) echo.HTTPErrorHandler {
	logger = logger.With(zap.String("component", "http-errors"))

	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		apiErr := classify(err)
		if apiErr.status >= http.StatusInternalServerError {
			logger.Error("request failed",
				zap.String("method", c.Request().Method),
				zap.String("path", c.Request().URL.Path),
				zap.Error(err))
		}

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(apiErr.status)
		} else {
			writeErr = c.JSON(apiErr.status, servers.Error{
				Success: false,
				Code:    apiErr.code,
				Message: apiErr.message,
			})
		}
		if writeErr != nil {
			logger.Warn("failed to write error response", zap.Error(writeErr))
		}
	}
}

func classify(err error) apiError {
	var (
		unauthorized  *errs.UnauthorizedError
		notFound      *errs.ObjectNotFoundError
		alreadyExists *errs.ObjectAlreadyExistsError
		securityErr   *openapi3filter.SecurityRequirementsError
		requestErr    *openapi3filter.RequestError
		fieldErrs     validator.ValidationErrors
		httpErr       *echo.HTTPError
	)

	switch {
	case errors.Is(err, errs.ErrInternal):
		return internalError()
	case errors.As(err, &unauthorized):
		return apiError{http.StatusUnauthorized, CodeUnauthorized, capitalize(unauthorized.Reason)}
	case errors.As(err, &securityErr):
		return apiError{http.StatusUnauthorized, CodeUnauthorized, "Not authorized"}
	case errors.As(err, &requestErr):
		return apiError{http.StatusBadRequest, CodeValidation, requestErrorMessage(requestErr)}
	case errors.As(err, &fieldErrs):
		return apiError{http.StatusBadRequest, CodeValidation, fieldErrorMessage(fieldErrs[0])}
	case isValidation(err):
		return apiError{http.StatusBadRequest, CodeValidation, validationMessage(err)}
	case errors.As(err, &notFound):
		return apiError{http.StatusNotFound, CodeNotFound, capitalize(notFound.ParamName + " not found")}
	case errors.As(err, &alreadyExists):
		return apiError{http.StatusConflict, CodeConflict, capitalize(alreadyExists.ParamName + " already exists")}
	case errors.As(err, &httpErr):
		return fromHTTPError(httpErr)
	default:
		return internalError()
	}
}

func internalError() apiError {
	return apiError{http.StatusInternalServerError, CodeInternal, internalErrorMessage}
}

func isValidation(err error) bool {
	return errors.Is(err, errs.ErrValueIsRequired) ||
		errors.Is(err, errs.ErrValueIsInvalid) ||
		errors.Is(err, errs.ErrValueIsOutOfRange)
}

// validationMessage flattens joined field errors into one sentence list.
func validationMessage(err error) string {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		parts := make([]string, 0, len(joined.Unwrap()))
		for _, e := range joined.Unwrap() {
			if isValidation(e) {
				parts = append(parts, validationMessage(e))
			}
		}
		return strings.Join(parts, "; ")
	}

	var (
		required   *errs.ValueIsRequiredError
		invalid    *errs.ValueIsInvalidError
		outOfRange *errs.ValueIsOutOfRangeError
	)
	switch {
	case errors.As(err, &required):
		return capitalize(required.ParamName + " is required")
	case errors.As(err, &invalid):
		return capitalize(invalidMessage(invalid.ParamName))
	case errors.As(err, &outOfRange):
		if _, unbounded := outOfRange.Max.(string); unbounded {
			return capitalize(fmt.Sprintf("%s must be at least %v", outOfRange.ParamName, outOfRange.Min))
		}
		return capitalize(fmt.Sprintf("%s must be between %v and %v",
			outOfRange.ParamName, outOfRange.Min, outOfRange.Max))
	default:
		return "Invalid request"
	}
}

// invalidMessage keeps rules ("item description is too long") as they are and
// turns bare field names ("pickup address id") into a sentence.
func invalidMessage(param string) string {
	for _, marker := range []string{" is ", " are ", " must ", "invalid"} {
		if strings.Contains(param, marker) {
			return param
		}
	}
	return param + " is invalid"
}

func requestErrorMessage(err *openapi3filter.RequestError) string {
	if err.Parameter != nil {
		return fmt.Sprintf("Invalid value for parameter %q", err.Parameter.Name)
	}

	if errors.Is(err, openapi3filter.ErrInvalidRequired) {
		return "Request body is required"
	}

	var schemaErr *openapi3.SchemaError
	if errors.As(err, &schemaErr) {
		if field := strings.Join(schemaErr.JSONPointer(), "."); field != "" {
			return fmt.Sprintf("Invalid request body: %s %s", field, schemaErr.Reason)
		}
		return "Invalid request body: " + schemaErr.Reason
	}

	if err.Reason != "" {
		return capitalize(err.Reason)
	}
	return "Invalid request"
}

func fieldErrorMessage(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return capitalize(field + " is required")
	case "email":
		return capitalize(field + " must be a valid email address")
	case "min":
		return capitalize(fmt.Sprintf("%s must be at least %s characters", field, fe.Param()))
	case "max":
		return capitalize(fmt.Sprintf("%s must be at most %s characters", field, fe.Param()))
	default:
		return capitalize(field + " is invalid")
	}
}

func fromHTTPError(he *echo.HTTPError) apiError {
	message := http.StatusText(he.Code)
	if m, ok := he.Message.(string); ok && m != "" {
		message = m
	}

	switch {
	case he.Code >= http.StatusInternalServerError:
		return internalError()
	case he.Code == http.StatusBadRequest:
		return apiError{he.Code, CodeValidation, message}
	case he.Code == http.StatusUnauthorized:
		return apiError{he.Code, CodeUnauthorized, message}
	default:
		return apiError{he.Code, strings.ToUpper(strings.ReplaceAll(http.StatusText(he.Code), " ", "_")), message}
	}
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
