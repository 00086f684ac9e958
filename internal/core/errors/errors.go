package errors

import "github.com/gin-gonic/gin"

const (
	HttpInternalError        = "internal_error"
	HttpInvalidJsonError     = "invalid_json"
	HttpInvalidRecordError   = "invalid_record"
	HttpValidationError      = "validation_failed"
	HttpNotFoundError        = "not_found"
	HttpForbiddenError       = "forbidden"
	HttpUnauthorizedError    = "unauthorized"
	HttpDuplicateError       = "duplicate"
	HttpPayloadTooLargeError = "payload_too_large"
)

// ErrorResponse is the error response body shared by every API handler.
// Error repeats Message for clients that only read the "error" key.
type ErrorResponse struct {
	Error     string      `json:"error"`
	ErrorType string      `json:"error_type"`
	Message   string      `json:"message"`
	Details   interface{} `json:"details,omitempty"`
}

// NewErrorResponse builds a response whose Error and Message agree.
func NewErrorResponse(errorType, message string, details interface{}) ErrorResponse {
	return ErrorResponse{
		Error:     message,
		ErrorType: errorType,
		Message:   message,
		Details:   details,
	}
}

// APIError carries the structured HTTP error shape from a helper back to the handler.
// Helpers return it instead of writing to gin.Context directly.
type APIError struct {
	StatusCode int
	ErrorType  string
	Message    string
	Details    interface{}
}

func (e *APIError) Error() string {
	return e.Message
}

// WriteError serializes err as the JSON HTTP response.
func WriteError(c *gin.Context, err *APIError) {
	c.JSON(err.StatusCode, NewErrorResponse(err.ErrorType, err.Message, err.Details))
}

// AbortWithError writes err and stops the middleware chain.
func AbortWithError(c *gin.Context, err *APIError) {
	c.AbortWithStatusJSON(err.StatusCode, NewErrorResponse(err.ErrorType, err.Message, err.Details))
}
