package catalog

import "context"

// FeedFilter narrows the variant feed server-side before aggregation.
// MaxRows caps the fetch at a bounded page larger than the display page, to
// leave headroom for deduplication shrinkage.
type FeedFilter struct {
	Brand    string
	Search   string
	PriceMin *int
	PriceMax *int
	MaxRows  int
}

// VariantRepository is the read-only variant feed
type VariantRepository interface {
	FindForListing(ctx context.Context, filter FeedFilter) ([]VariantRecord, error)
	FindByBaseSKU(ctx context.Context, baseSKU string) ([]VariantRecord, error)
	DistinctBrands(ctx context.Context) ([]string, error)
}

// Classifier infers a category tag from a product display name. Category is
// not a stored field; it is derived per query, so the implementation can be
// swapped for a rules engine or a static table without touching the
// aggregation pipeline.
type Classifier interface {
	Classify(displayName string) string
}
