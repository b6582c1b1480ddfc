package candidate

import (
	"context"

	"github.com/guestradar/guestradar/internal/platform/apperr"
	"github.com/guestradar/guestradar/pkg/pagination"
)

// ErrNotFound is returned by every store when the addressed candidate does
// not exist, so both backends surface an identical 404.
var ErrNotFound = apperr.NotFound("Candidate")

// Repository is the record-store contract. The in-memory and Postgres
// implementations must return identical result sets and ordering for the
// same stored data and filter input.
type Repository interface {
	// ListCandidates returns one page of matching candidates plus the total
	// match count before pagination.
	ListCandidates(context context.Context, f Filter, params pagination.Params) ([]*Candidate, int, error)

	// AllCandidates returns every candidate in natural (id) order.
	AllCandidates(context context.Context) ([]*Candidate, error)

	GetCandidate(context context.Context, id int) (*Candidate, error)

	// CreateCandidate assigns the next id and creation timestamp, then
	// persists the record, writing the assigned fields back into c.
	CreateCandidate(context context.Context, c *Candidate) error

	// UpdateCandidate merges the set fields of the patch into the existing
	// record and returns the updated record.
	UpdateCandidate(context context.Context, id int, patch Patch) (*Candidate, error)

	DeleteCandidate(context context.Context, id int) error

	// ToggleFavorite atomically flips isFavorite and returns the updated record.
	ToggleFavorite(context context.Context, id int) (*Candidate, error)
}
