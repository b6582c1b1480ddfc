package savedfilter

import (
	"context"

	"github.com/guestradar/guestradar/internal/platform/apperr"
)

// ErrNotFound is returned by every store when the addressed filter does not exist.
var ErrNotFound = apperr.NotFound("Saved filter")

// Repository is the saved-filter store contract.
type Repository interface {
	// ListFilters returns every saved filter in natural (id) order.
	ListFilters(context context.Context) ([]*SavedFilter, error)

	GetFilter(context context.Context, id int) (*SavedFilter, error)

	// CreateFilter assigns id and timestamps, writing them back into f.
	CreateFilter(context context.Context, f *SavedFilter) error

	// UpdateFilter replaces name and criteria wholesale and refreshes
	// updatedAt, returning the updated record.
	UpdateFilter(context context.Context, id int, input Input) (*SavedFilter, error)

	DeleteFilter(context context.Context, id int) error
}
