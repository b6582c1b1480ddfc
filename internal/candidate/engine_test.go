package candidate_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guestradar/guestradar/internal/candidate"
	"github.com/guestradar/guestradar/pkg/pagination"
)

// sample returns three candidates covering the common filter axes:
// a small TikTok account, a mid-size Instagram account and a large
// TikTok account.
func sample() []*candidate.Candidate {
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	return []*candidate.Candidate{
		{
			ID:            1,
			Name:          "Ava Torres",
			SocialHandle:  "@avatorres",
			Platform:      "tiktok",
			FollowerCount: 3_000,
			Region:        "us",
			Topics:        []string{"dating", "confidence"},
			Description:   "Short-form dating advice with a confidence focus",
			CreatedAt:     base,
		},
		{
			ID:            2,
			Name:          "Ben Okafor",
			SocialHandle:  "@benokafor",
			Platform:      "instagram",
			FollowerCount: 7_000,
			Region:        "uk",
			Topics:        []string{"wellness"},
			Description:   "Daily wellness prompts and breathing exercises",
			CreatedAt:     base.Add(24 * time.Hour),
		},
		{
			ID:            3,
			Name:          "Cleo Ardent",
			SocialHandle:  "@cleoardent",
			Platform:      "tiktok",
			FollowerCount: 120_000,
			Region:        "us",
			Topics:        []string{"mindfulness", "personal-growth"},
			Description:   "Mindfulness routines for busy mornings",
			IsFavorite:    true,
			CreatedAt:     base.Add(48 * time.Hour),
		},
	}
}

/*
TestMatches_Predicate exercises each filter axis in isolation plus a
conjunctive combination.
*/
func TestMatches_Predicate(t *testing.T) {
	all := sample()

	tests := []struct {
		name   string
		filter candidate.Filter
		want   []int
	}{
		{"no_constraints", candidate.Filter{}, []int{1, 2, 3}},
		{"platform", candidate.Filter{Platform: "tiktok"}, []int{1, 3}},
		{"region", candidate.Filter{Region: "uk"}, []int{2}},
		{"topic_membership", candidate.Filter{Topic: "confidence"}, []int{1}},
		{"follower_range", candidate.Filter{FollowerRange: "5k-10k"}, []int{2}},
		{"search_name", candidate.Filter{Search: "ava"}, []int{1}},
		{"search_handle", candidate.Filter{Search: "@benokafor"}, []int{2}},
		{"search_description", candidate.Filter{Search: "MINDFULNESS ROUTINES"}, []int{3}},
		{"search_whitespace_is_unset", candidate.Filter{Search: "   "}, []int{1, 2, 3}},
		{"conjunction", candidate.Filter{Platform: "tiktok", Region: "us", FollowerRange: "100k+"}, []int{3}},
		{"conjunction_no_match", candidate.Filter{Platform: "instagram", Region: "us"}, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := []int{}
			for _, c := range all {
				if candidate.Matches(c, tt.filter) {
					got = append(got, c.ID)
				}
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

/*
TestMatches_BucketBoundaries pins the half-open [low, high) bucket
semantics: an exact boundary count belongs to the upper bucket.
*/
func TestMatches_BucketBoundaries(t *testing.T) {
	tests := []struct {
		name    string
		count   int
		bucket  string
		matches bool
	}{
		{"zero_in_lowest", 0, "0-5k", true},
		{"just_below_5k", 4_999, "0-5k", true},
		{"5k_not_in_lowest", 5_000, "0-5k", false},
		{"5k_in_next", 5_000, "5k-10k", true},
		{"10k_boundary_up", 10_000, "10k-50k", true},
		{"50k_boundary_up", 50_000, "50k-100k", true},
		{"100k_boundary_up", 100_000, "100k+", true},
		{"unbounded_top", 2_000_000, "100k+", true},
		{"unknown_label", 1_000, "1m+", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &candidate.Candidate{FollowerCount: tt.count}
			got := candidate.Matches(c, candidate.Filter{FollowerRange: tt.bucket})
			assert.Equal(t, tt.matches, got)
		})
	}
}

/*
TestSortCandidates covers every sort key, including the followers-desc
default for an empty key.
*/
func TestSortCandidates(t *testing.T) {
	tests := []struct {
		name string
		key  string
		want []int
	}{
		{"default_followers_desc", "", []int{3, 2, 1}},
		{"followers_desc", "followers-desc", []int{3, 2, 1}},
		{"followers_asc", "followers-asc", []int{1, 2, 3}},
		{"name_asc", "name-asc", []int{1, 2, 3}},
		{"name_desc", "name-desc", []int{3, 2, 1}},
		{"date_added_newest_first", "date-added", []int{3, 2, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list := sample()
			candidate.SortCandidates(list, tt.key)

			got := make([]int, len(list))
			for i, c := range list {
				got[i] = c.ID
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

/*
TestSortCandidates_StableTies verifies that equal sort keys keep input
order, so id-ordered input yields id-ordered ties.
*/
func TestSortCandidates_StableTies(t *testing.T) {
	list := []*candidate.Candidate{
		{ID: 1, Name: "Tied", FollowerCount: 500},
		{ID: 2, Name: "Tied", FollowerCount: 500},
		{ID: 3, Name: "Tied", FollowerCount: 500},
	}

	for _, key := range []string{"followers-desc", "followers-asc", "name-asc", "name-desc", "date-added"} {
		t.Run(key, func(t *testing.T) {
			candidate.SortCandidates(list, key)
			assert.Equal(t, 1, list[0].ID)
			assert.Equal(t, 2, list[1].ID)
			assert.Equal(t, 3, list[2].ID)
		})
	}
}

/*
TestApply_Pagination checks total counting and page slicing, including
the out-of-range-empty-page contract.
*/
func TestApply_Pagination(t *testing.T) {
	all := sample()

	t.Run("second_page", func(t *testing.T) {
		page, total := candidate.Apply(all, candidate.Filter{Sort: "followers-asc"}, pagination.Params{Page: 2, Limit: 2})

		assert.Equal(t, 3, total)
		require.Len(t, page, 1)
		assert.Equal(t, 3, page[0].ID)
	})

	t.Run("out_of_range_page", func(t *testing.T) {
		page, total := candidate.Apply(all, candidate.Filter{}, pagination.Params{Page: 9, Limit: 20})

		assert.Equal(t, 3, total)
		assert.Empty(t, page)
	})

	t.Run("total_counts_before_slicing", func(t *testing.T) {
		page, total := candidate.Apply(all, candidate.Filter{Platform: "tiktok"}, pagination.Params{Page: 1, Limit: 1})

		assert.Equal(t, 2, total)
		assert.Len(t, page, 1)
	})
}

/*
TestCriteria_Matches covers the saved-filter predicate: OR within each
list, AND across lists and flags.
*/
func TestCriteria_Matches(t *testing.T) {
	all := sample()

	tests := []struct {
		name     string
		criteria candidate.Criteria
		want     int
	}{
		{"empty_matches_all", candidate.Criteria{}, 3},
		{"platform_or", candidate.Criteria{Platforms: []string{"tiktok", "instagram"}}, 3},
		{"region_single", candidate.Criteria{Regions: []string{"uk"}}, 1},
		{"topic_overlap", candidate.Criteria{Topics: []string{"confidence", "wellness"}}, 2},
		{"range_or", candidate.Criteria{FollowerRanges: []string{"0-5k", "100k+"}}, 2},
		{"favorite_flag", candidate.Criteria{Favorite: true}, 1},
		{"recommended_flag", candidate.Criteria{Recommended: true}, 0},
		{"and_across_axes", candidate.Criteria{Platforms: []string{"tiktok"}, Favorite: true}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, candidate.CountMatches(all, tt.criteria))
		})
	}
}
