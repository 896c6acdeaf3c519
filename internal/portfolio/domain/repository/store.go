package repository

import (
	"context"

	"portfolio-backend/internal/portfolio/domain/model"
)

// SortField describes one key of a sort specification.
type SortField struct {
	Key  string
	Desc bool
}

// DocumentStore abstracts create/read/update/delete/list against named
// collections. Implementations must normalize store-assigned identifiers to
// strings before documents cross this boundary, and must reject malformed
// caller-supplied identifiers before any store round-trip.
type DocumentStore interface {
	// FindOne returns the first document matching filter, or a NotFound
	// error. A nil filter matches any document.
	FindOne(ctx context.Context, collection string, filter model.Document) (model.Document, error)

	// FindMany returns documents matching filter in the given sort order.
	// A limit <= 0 applies the default result cap.
	FindMany(ctx context.Context, collection string, filter model.Document, sort []SortField, limit int64) ([]model.Document, error)

	// Insert stores a new document and returns its assigned identifier.
	Insert(ctx context.Context, collection string, doc model.Document) (string, error)

	// UpdateByID patches the given fields onto one document and returns the
	// modified count. Returns an InvalidID error for malformed identifiers.
	UpdateByID(ctx context.Context, collection, id string, fields model.Document) (int64, error)

	// DeleteByID removes one document and returns the deleted count.
	// Returns an InvalidID error for malformed identifiers.
	DeleteByID(ctx context.Context, collection, id string) (int64, error)
}
