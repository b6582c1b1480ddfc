package candidate

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/guestradar/guestradar/pkg/pagination"
	"github.com/guestradar/guestradar/pkg/slice"
)

// The query engine is implemented once and shared by every consumer: the
// in-memory store runs it directly, the Postgres store compiles the same
// predicate to SQL, and the saved-filter match counter reuses the bucket
// table. Keeping a single definition is what guarantees both store backends
// return identical result sets for the same filter.

// followerBucket is a half-open [Min, Max) follower-count interval.
// Max == 0 means unbounded above.
type followerBucket struct {
	Min int
	Max int
}

// followerBuckets maps every bucket label to its numeric interval.
// Half-open [low, high) uniformly: 5000 is in "5k-10k", not "0-5k".
var followerBuckets = map[string]followerBucket{
	Range0to5K:    {Min: 0, Max: 5_000},
	Range5to10K:   {Min: 5_000, Max: 10_000},
	Range10to50K:  {Min: 10_000, Max: 50_000},
	Range50to100K: {Min: 50_000, Max: 100_000},
	Range100KPlus: {Min: 100_000, Max: 0},
}

// inBucket reports whether count falls inside the named bucket.
// Unknown labels match nothing.
func inBucket(label string, count int) bool {
	bucket, ok := followerBuckets[label]
	if !ok {
		return false
	}
	if count < bucket.Min {
		return false
	}
	return bucket.Max == 0 || count < bucket.Max
}

// Matches evaluates the conjunctive filter predicate against one candidate.
// An unset sub-filter contributes no constraint.
func Matches(c *Candidate, f Filter) bool {
	if f.Platform != "" && c.Platform != f.Platform {
		return false
	}

	if f.Region != "" && c.Region != f.Region {
		return false
	}

	if f.Topic != "" && !slice.Contains(c.Topics, f.Topic) {
		return false
	}

	if f.FollowerRange != "" && !inBucket(f.FollowerRange, c.FollowerCount) {
		return false
	}

	// Whitespace-only search is "unset".
	if term := strings.TrimSpace(f.Search); term != "" {
		term = strings.ToLower(term)
		if !strings.Contains(strings.ToLower(c.Name), term) &&
			!strings.Contains(strings.ToLower(c.SocialHandle), term) &&
			!strings.Contains(strings.ToLower(c.Description), term) {
			return false
		}
	}

	return true
}

// SortCandidates orders the list in place by the given sort key.
//
// The sort is stable: ties keep the input order, so callers passing records
// in natural id order get deterministic, insertion-ordered ties — matching
// the SQL store's secondary "id ASC" ordering.
func SortCandidates(list []*Candidate, key string) {
	var less func(a, b *Candidate) bool

	switch key {
	case SortFollowersAsc:
		less = func(a, b *Candidate) bool { return a.FollowerCount < b.FollowerCount }
	case SortNameAsc:
		collator := collate.New(language.English)
		less = func(a, b *Candidate) bool { return collator.CompareString(a.Name, b.Name) < 0 }
	case SortNameDesc:
		collator := collate.New(language.English)
		less = func(a, b *Candidate) bool { return collator.CompareString(a.Name, b.Name) > 0 }
	case SortDateAdded:
		less = func(a, b *Candidate) bool { return a.CreatedAt.After(b.CreatedAt) }
	default:
		// followers-desc is the default ordering.
		less = func(a, b *Candidate) bool { return a.FollowerCount > b.FollowerCount }
	}

	sort.SliceStable(list, func(i, j int) bool { return less(list[i], list[j]) })
}

// Apply runs the full pipeline — predicate, sort, pagination slice — over a
// snapshot of the record set. It returns the requested page and the total
// match count BEFORE slicing.
//
// Apply is a pure function of its inputs: no hidden state, repeatable.
func Apply(all []*Candidate, f Filter, params pagination.Params) ([]*Candidate, int) {
	matched := slice.Filter(all, func(c *Candidate) bool { return Matches(c, f) })
	SortCandidates(matched, f.Sort)

	total := len(matched)

	// Out-of-range pages yield an empty page, not an error.
	start := params.Offset()
	if start >= total {
		return []*Candidate{}, total
	}

	end := start + params.Limit
	if end > total {
		end = total
	}

	return matched[start:end], total
}

// Matches evaluates the saved-filter predicate against one candidate.
// Bucket membership uses the same half-open table as the list filter.
func (cr Criteria) Matches(c *Candidate) bool {
	if len(cr.Platforms) > 0 && !slice.Contains(cr.Platforms, c.Platform) {
		return false
	}

	if len(cr.Regions) > 0 && !slice.Contains(cr.Regions, c.Region) {
		return false
	}

	if len(cr.Topics) > 0 {
		found := false
		for _, topic := range c.Topics {
			if slice.Contains(cr.Topics, topic) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	if len(cr.FollowerRanges) > 0 {
		inRange := false
		for _, label := range cr.FollowerRanges {
			if inBucket(label, c.FollowerCount) {
				inRange = true
				break
			}
		}
		if !inRange {
			return false
		}
	}

	if cr.Favorite && !c.IsFavorite {
		return false
	}

	if cr.Recommended && !c.IsRecommended {
		return false
	}

	return true
}

// CountMatches returns how many candidates the criteria would match. It is
// the server-side home of the "N matches" preview on the saved-filters page.
func CountMatches(all []*Candidate, cr Criteria) int {
	return len(slice.Filter(all, cr.Matches))
}
