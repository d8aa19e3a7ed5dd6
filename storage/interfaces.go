package storage

import (
	"context"

	"airbnb-dashboard/models"
)

// ListingSource loads the full listing set.
type ListingSource interface {
	Load(ctx context.Context) ([]*models.Listing, error)
}

// ListingWriter persists a listing set, replacing what was stored before.
type ListingWriter interface {
	Write(ctx context.Context, listings []*models.Listing) error
	Close() error
}
