package dto

import "net/http"

// Error code constants organized by category
// Format: ERR_<CATEGORY>_<DESCRIPTION>

// General error codes
const (
	// ErrCodeUnknown is used when the error type is unknown
	ErrCodeUnknown = "ERR_UNKNOWN"
	// ErrCodeInternal is used for internal server errors
	ErrCodeInternal = "ERR_INTERNAL"
)

// Input error codes
const (
	// ErrCodeBadRequest is used for malformed requests
	ErrCodeBadRequest = "ERR_BAD_REQUEST"
	// ErrCodeInvalidInput is used for invalid input data
	ErrCodeInvalidInput = "ERR_INVALID_INPUT"
	// ErrCodeInvalidSKU is used when a SKU path or query parameter is unusable
	ErrCodeInvalidSKU = "ERR_INVALID_SKU"
	// ErrCodeInvalidPage is used when pagination parameters are out of range
	ErrCodeInvalidPage = "ERR_INVALID_PAGE"
)

// Resource error codes
const (
	// ErrCodeNotFound is used when a resource is not found
	ErrCodeNotFound = "ERR_NOT_FOUND"
)

// Upstream error codes
const (
	// ErrCodeFeedUnavailable is used when the product feed cannot be read
	ErrCodeFeedUnavailable = "ERR_FEED_UNAVAILABLE"
	// ErrCodeCacheUnavailable is used when the stock cache backend is down
	ErrCodeCacheUnavailable = "ERR_CACHE_UNAVAILABLE"
	// ErrCodeRequestCancelled is used when the client gave up mid-request
	ErrCodeRequestCancelled = "ERR_REQUEST_CANCELLED"
)

// StatusClientClosedRequest mirrors the nginx convention for requests the
// client abandoned before a response was written.
const StatusClientClosedRequest = 499

// ErrorCodeHTTPStatus maps error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeUnknown:  http.StatusInternalServerError,
	ErrCodeInternal: http.StatusInternalServerError,

	ErrCodeBadRequest:   http.StatusBadRequest,
	ErrCodeInvalidInput: http.StatusBadRequest,
	ErrCodeInvalidSKU:   http.StatusBadRequest,
	ErrCodeInvalidPage:  http.StatusBadRequest,

	ErrCodeNotFound: http.StatusNotFound,

	ErrCodeFeedUnavailable:  http.StatusServiceUnavailable,
	ErrCodeCacheUnavailable: http.StatusServiceUnavailable,
	ErrCodeRequestCancelled: StatusClientClosedRequest,
}

// GetHTTPStatus returns the HTTP status code for an error code
// Returns 500 Internal Server Error if the error code is not found
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// DomainErrorCodeMapping maps domain error codes to their API counterparts
var DomainErrorCodeMapping = map[string]string{
	"NOT_FOUND":            ErrCodeNotFound,
	"INVALID_INPUT":        ErrCodeInvalidInput,
	"INVALID_SKU":          ErrCodeInvalidSKU,
	"INVALID_PAGE_REQUEST": ErrCodeInvalidPage,
	"FEED_UNAVAILABLE":     ErrCodeFeedUnavailable,
	"CACHE_UNAVAILABLE":    ErrCodeCacheUnavailable,
	"REQUEST_CANCELLED":    ErrCodeRequestCancelled,
}

// NormalizeErrorCode converts a domain error code to the API format
// If the code is already in the API format or unknown, returns it as-is
func NormalizeErrorCode(code string) string {
	if apiCode, ok := DomainErrorCodeMapping[code]; ok {
		return apiCode
	}
	return code
}
