package shared

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrNotFound           = NewDomainError("NOT_FOUND", "Resource not found")
	ErrInvalidInput       = NewDomainError("INVALID_INPUT", "Invalid input provided")
	ErrFeedUnavailable    = NewDomainError("FEED_UNAVAILABLE", "Upstream product feed is unavailable")
	ErrRequestCancelled   = NewDomainError("REQUEST_CANCELLED", "Request was cancelled before aggregation completed")
	ErrCacheUnavailable   = NewDomainError("CACHE_UNAVAILABLE", "Stock cache backend is unavailable")
	ErrInvalidSKU         = NewDomainError("INVALID_SKU", "SKU must be a non-empty string")
	ErrInvalidPageRequest = NewDomainError("INVALID_PAGE_REQUEST", "Page and limit must be positive")
)
