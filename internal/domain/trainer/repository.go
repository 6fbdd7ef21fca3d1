package trainer

import (
	"context"
)

type Repository interface {
	// FetchFeatured returns up to limit random active trainers with details.
	FetchFeatured(ctx context.Context, limit int) (FeaturedList, error)
}
