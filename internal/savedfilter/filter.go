package savedfilter

import (
	"time"

	"github.com/guestradar/guestradar/internal/candidate"
)

// SavedFilter is a named, reusable candidate search. The criteria are stored
// verbatim; MatchCount is computed at read time and never persisted, so it is
// always current against the live candidate set.
type SavedFilter struct {
	ID         int                `json:"id"`
	Name       string             `json:"name"`
	Criteria   candidate.Criteria `json:"criteria"`
	MatchCount int                `json:"matchCount"`
	CreatedAt  time.Time          `json:"createdAt"`
	UpdatedAt  time.Time          `json:"updatedAt"`
}

// Clone returns a deep copy, detached from any store-internal record.
func (f *SavedFilter) Clone() *SavedFilter {
	clone := *f
	clone.Criteria.Platforms = append([]string(nil), f.Criteria.Platforms...)
	clone.Criteria.Regions = append([]string(nil), f.Criteria.Regions...)
	clone.Criteria.Topics = append([]string(nil), f.Criteria.Topics...)
	clone.Criteria.FollowerRanges = append([]string(nil), f.Criteria.FollowerRanges...)
	return &clone
}

// Input is the create/update payload. Updates replace the whole filter; the
// criteria object is small enough that field-level patching buys nothing.
type Input struct {
	Name     string             `json:"name"`
	Criteria candidate.Criteria `json:"criteria"`
}
