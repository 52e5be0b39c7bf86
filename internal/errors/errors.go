// Package errors provides structured error envelopes for promptloom using
// gofulmen error codes. Assembler-level failures are converted to placeholder
// prompt strings at the assembly boundary and never surface as errors to the
// host; the helpers here cover everything outside that contract (CLI
// validation, server transport, pipeline failures).
package errors

import (
	"encoding/json"
	"net/http"

	"github.com/fulmenhq/gofulmen/errors"
	"go.uber.org/zap"

	"github.com/promptloom/promptloom/internal/observability"
	"github.com/promptloom/promptloom/internal/server/middleware"
)

// Domain error codes. These are the failure kinds of the prompt and image
// paths plus the generic transport codes the server needs.
const (
	CodeFileNotFound       = "FILE_NOT_FOUND"
	CodeIOFailure          = "IO_FAILURE"
	CodeEmptyInput         = "EMPTY_INPUT"
	CodeLimitExceeded      = "VALIDATION_LIMIT_EXCEEDED"
	CodeDependencyMissing  = "DEPENDENCY_UNAVAILABLE"
	CodeInvalidInput       = "INVALID_INPUT"
	CodeNotFound           = "NOT_FOUND"
	CodeMethodNotAllowed   = "METHOD_NOT_ALLOWED"
	CodeInternal           = "INTERNAL_ERROR"
	CodeExternalService    = "EXTERNAL_SERVICE_ERROR"
	CodeConfigInvalid      = "CONFIG_INVALID"
	CodeServiceUnavailable = "SERVICE_UNAVAILABLE"
)

// NewFileNotFoundError reports a missing prompt file.
func NewFileNotFoundError(message string) *errors.ErrorEnvelope {
	return errors.NewErrorEnvelope(CodeFileNotFound, message)
}

// NewIOFailureError reports an unreadable prompt file.
func NewIOFailureError(message string) *errors.ErrorEnvelope {
	return errors.NewErrorEnvelope(CodeIOFailure, message)
}

// NewEmptyInputError reports a prompt file with zero parsed records.
func NewEmptyInputError(message string) *errors.ErrorEnvelope {
	return errors.NewErrorEnvelope(CodeEmptyInput, message)
}

// NewLimitExceededError reports a combiner cross-product over the cap.
func NewLimitExceededError(message string) *errors.ErrorEnvelope {
	return errors.NewErrorEnvelope(CodeLimitExceeded, message)
}

// NewDependencyUnavailableError reports a missing generative pipeline.
func NewDependencyUnavailableError(message string) *errors.ErrorEnvelope {
	return errors.NewErrorEnvelope(CodeDependencyMissing, message)
}

func NewInvalidInputError(message string) *errors.ErrorEnvelope {
	return errors.NewErrorEnvelope(CodeInvalidInput, message)
}

func NewNotFoundError(message string) *errors.ErrorEnvelope {
	return errors.NewErrorEnvelope(CodeNotFound, message)
}

func NewMethodNotAllowedError(message string) *errors.ErrorEnvelope {
	return errors.NewErrorEnvelope(CodeMethodNotAllowed, message)
}

func NewInternalError(message string) *errors.ErrorEnvelope {
	return errors.NewErrorEnvelope(CodeInternal, message)
}

func NewExternalServiceError(message string) *errors.ErrorEnvelope {
	return errors.NewErrorEnvelope(CodeExternalService, message)
}

func NewConfigInvalidError(message string) *errors.ErrorEnvelope {
	return errors.NewErrorEnvelope(CodeConfigInvalid, message)
}

// EnsureEnvelope wraps arbitrary errors into an internal-error envelope so
// the HTTP responder always has structured data to work with.
func EnsureEnvelope(err error) *errors.ErrorEnvelope {
	if err == nil {
		return nil
	}
	if envelope, ok := err.(*errors.ErrorEnvelope); ok {
		return envelope
	}
	return errors.NewErrorEnvelope(CodeInternal, err.Error())
}

// CodeOf returns the domain code of err, or CodeInternal for plain errors.
func CodeOf(err error) string {
	envelope := EnsureEnvelope(err)
	if envelope == nil {
		return ""
	}
	return envelope.Code
}

// HTTPStatusFromEnvelope maps domain codes onto HTTP status codes.
func HTTPStatusFromEnvelope(envelope *errors.ErrorEnvelope) int {
	if envelope == nil {
		return http.StatusInternalServerError
	}
	switch envelope.Code {
	case CodeInvalidInput, CodeEmptyInput, CodeLimitExceeded:
		return http.StatusBadRequest
	case CodeFileNotFound, CodeNotFound:
		return http.StatusNotFound
	case CodeMethodNotAllowed:
		return http.StatusMethodNotAllowed
	case CodeDependencyMissing, CodeServiceUnavailable:
		return http.StatusServiceUnavailable
	case CodeExternalService:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// HTTPErrorResponse is the JSON error body per API standards.
type HTTPErrorResponse struct {
	Error HTTPErrorDetail `json:"error"`
}

type HTTPErrorDetail struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

// RespondWithError writes a structured error response, attaching the request
// correlation ID and logging through the server logger.
func RespondWithError(w http.ResponseWriter, r *http.Request, err error) {
	envelope := EnsureEnvelope(err)
	if envelope == nil {
		return
	}

	requestID := ""
	if r != nil {
		requestID = middleware.GetRequestID(r.Context())
	}
	if requestID != "" && envelope.CorrelationID == "" {
		envelope = envelope.WithCorrelationID(requestID)
	}

	statusCode := HTTPStatusFromEnvelope(envelope)

	response := HTTPErrorResponse{
		Error: HTTPErrorDetail{
			Code:      envelope.Code,
			Message:   envelope.Message,
			RequestID: envelope.CorrelationID,
		},
	}

	logHTTPError(envelope, statusCode)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(response)
}

func logHTTPError(envelope *errors.ErrorEnvelope, statusCode int) {
	if observability.ServerLogger == nil || envelope == nil {
		return
	}

	fields := []zap.Field{
		zap.String("error_code", envelope.Code),
		zap.Int("http_status", statusCode),
	}
	if envelope.CorrelationID != "" {
		fields = append(fields, zap.String("request_id", envelope.CorrelationID))
	}

	if statusCode >= http.StatusInternalServerError {
		observability.ServerLogger.Error(envelope.Message, fields...)
		return
	}
	observability.ServerLogger.Warn(envelope.Message, fields...)
}
