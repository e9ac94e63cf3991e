package response

import (
	"encoding/json"
	"net/http"
)

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   interface{} `json:"error,omitempty"`
}

// APIError is the error body of a failed request. TraceID matches the
// X-Request-ID header and the server log line of the same request.
type APIError struct {
	TraceID string `json:"trace_id,omitempty"`
	Code    string `json:"code"`
	Status  int    `json:"status"`
}

// Error codes shared by handlers and middleware
const (
	CodeBadRequest     = "BAD_REQUEST"
	CodeUnauthorized   = "UNAUTHORIZED"
	CodeForbidden      = "FORBIDDEN"
	CodeNotFound       = "NOT_FOUND"
	CodeInternalServer = "INTERNAL_SERVER_ERROR"
)

func JSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

func Success(w http.ResponseWriter, statusCode int, message string, data interface{}) {
	JSON(w, statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func Error(w http.ResponseWriter, statusCode int, message string, err interface{}) {
	JSON(w, statusCode, Response{
		Success: false,
		Message: message,
		Error:   err,
	})
}

// Fail writes an error envelope carrying the trace id and error code.
func Fail(w http.ResponseWriter, statusCode int, message, code, traceID string) {
	Error(w, statusCode, message, APIError{
		TraceID: traceID,
		Code:    code,
		Status:  statusCode,
	})
}

func ValidationError(w http.ResponseWriter, errors interface{}) {
	JSON(w, http.StatusBadRequest, Response{
		Success: false,
		Message: "Validation failed",
		Error:   errors,
	})
}

func Unauthorized(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Unauthorized"
	}
	Error(w, http.StatusUnauthorized, message, APIError{Code: CodeUnauthorized, Status: http.StatusUnauthorized})
}

func NotFound(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Resource not found"
	}
	Error(w, http.StatusNotFound, message, APIError{Code: CodeNotFound, Status: http.StatusNotFound})
}

func InternalServerError(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Internal server error"
	}
	Error(w, http.StatusInternalServerError, message, APIError{Code: CodeInternalServer, Status: http.StatusInternalServerError})
}

func Forbidden(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Forbidden"
	}
	Error(w, http.StatusForbidden, message, APIError{Code: CodeForbidden, Status: http.StatusForbidden})
}
