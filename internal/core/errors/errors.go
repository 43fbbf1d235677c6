package errors

const (
	HttpInternalError         = "internal_error"
	HttpInvalidJsonError      = "invalid_json"
	HttpInvalidIDError        = "invalid_id"
	HttpInvalidOptionError    = "invalid_option"
	HttpUnknownDimensionError = "unknown_dimension"
	HttpEventNotFoundError    = "event_not_found"
	HttpDuplicateEventError   = "duplicate_event"
)

// ErrorResponse is the error response body for every API error.
type ErrorResponse struct {
	ErrorType string      `json:"error_type"`
	Message   string      `json:"message"`
	Details   interface{} `json:"details,omitempty"`
}
