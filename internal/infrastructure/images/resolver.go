package images

import (
	"strings"

	appcatalog "github.com/dobby152/italskebrasnarstvi-eshop-sub002/internal/application/catalog"
)

// Resolver turns stored image paths into absolute display URLs. Paths that
// are already absolute pass through untouched; empty paths resolve to the
// configured placeholder.
type Resolver struct {
	baseURL     string
	placeholder string
}

// NewResolver creates a resolver with the given base URL and placeholder path
func NewResolver(baseURL, placeholder string) *Resolver {
	return &Resolver{
		baseURL:     strings.TrimRight(baseURL, "/"),
		placeholder: placeholder,
	}
}

// Resolve returns the display URL for a stored image path
func (r *Resolver) Resolve(storedPath string) string {
	path := strings.TrimSpace(storedPath)
	if path == "" {
		path = r.placeholder
	}
	if path == "" {
		return ""
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	if r.baseURL == "" {
		return path
	}
	return r.baseURL + "/" + strings.TrimLeft(path, "/")
}

// Ensure Resolver implements ImageResolver
var _ appcatalog.ImageResolver = (*Resolver)(nil)
