package candidate

import (
	"github.com/guestradar/guestradar/internal/platform/validate"
	"github.com/guestradar/guestradar/pkg/slice"
)

// # Sort Keys

const (
	SortFollowersDesc = "followers-desc"
	SortFollowersAsc  = "followers-asc"
	SortNameAsc       = "name-asc"
	SortNameDesc      = "name-desc"
	SortDateAdded     = "date-added"
)

// SortKeys is the closed set of list orderings.
var SortKeys = []string{SortFollowersDesc, SortFollowersAsc, SortNameAsc, SortNameDesc, SortDateAdded}

// # Follower Buckets

const (
	Range0to5K    = "0-5k"
	Range5to10K   = "5k-10k"
	Range10to50K  = "10k-50k"
	Range50to100K = "50k-100k"
	Range100KPlus = "100k+"
)

// FollowerRanges is the closed set of follower-count bucket labels.
var FollowerRanges = []string{Range0to5K, Range5to10K, Range10to50K, Range50to100K, Range100KPlus}

// Filter holds the parameters for a filtered candidate listing.
//
// Every field is optional; the empty string means "no constraint". That
// overload is deliberate: the literal concept "no platform" is not
// representable as a filter value.
type Filter struct {
	Platform      string `schema:"platform"`
	FollowerRange string `schema:"followerRange"`
	Region        string `schema:"region"`
	Topic         string `schema:"topic"`
	Search        string `schema:"search"`
	Sort          string `schema:"sort"`
}

// Validate rejects out-of-enum filter values. Empty strings pass: they are
// the "unset" sentinel, not enum members.
func (f Filter) Validate() error {
	v := &validate.Validator{}

	v.Custom(FieldPlatform, f.Platform != "" && !slice.Contains(Platforms, f.Platform), "Unknown platform")
	v.Custom(FieldRegion, f.Region != "" && !slice.Contains(Regions, f.Region), "Unknown region")
	v.Custom("topic", f.Topic != "" && !slice.Contains(Topics, f.Topic), "Unknown topic")
	v.Custom(FieldFollowerRange, f.FollowerRange != "" && !slice.Contains(FollowerRanges, f.FollowerRange), "Unknown follower range")
	v.Custom(FieldSort, f.Sort != "" && !slice.Contains(SortKeys, f.Sort), "Unknown sort key")

	return v.Err()
}

// Criteria is the multi-value predicate behind saved filters and the
// match-count preview. Each non-empty list is an OR within itself; lists and
// boolean flags are AND-combined.
type Criteria struct {
	Platforms      []string `json:"platforms"`
	Regions        []string `json:"regions"`
	Topics         []string `json:"topics"`
	FollowerRanges []string `json:"followerRanges"`
	Favorite       bool     `json:"favorite"`
	Recommended    bool     `json:"recommended"`
}

// Validate rejects criteria containing out-of-enum entries.
func (cr Criteria) Validate() error {
	v := &validate.Validator{}

	for _, p := range cr.Platforms {
		v.Custom("platforms", !slice.Contains(Platforms, p), "Unknown platform: "+p)
	}
	for _, r := range cr.Regions {
		v.Custom("regions", !slice.Contains(Regions, r), "Unknown region: "+r)
	}
	for _, t := range cr.Topics {
		v.Custom("topics", !slice.Contains(Topics, t), "Unknown topic: "+t)
	}
	for _, fr := range cr.FollowerRanges {
		v.Custom("followerRanges", !slice.Contains(FollowerRanges, fr), "Unknown follower range: "+fr)
	}

	return v.Err()
}
