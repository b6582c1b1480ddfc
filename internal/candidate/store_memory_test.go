package candidate_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guestradar/guestradar/internal/candidate"
	"github.com/guestradar/guestradar/pkg/pagination"
	"github.com/guestradar/guestradar/pkg/pointer"
)

// seedRepository inserts the shared sample set and returns the store.
func seedRepository(t *testing.T) *candidate.MemoryRepository {
	t.Helper()

	repository := candidate.NewMemoryRepository()
	for _, c := range sample() {
		c.ID = 0
		require.NoError(t, repository.CreateCandidate(context.Background(), c))
	}
	return repository
}

/*
TestMemoryRepository_CreateGet verifies the insert round trip: id and
creation timestamp are store-assigned and written back.
*/
func TestMemoryRepository_CreateGet(t *testing.T) {
	ctx := context.Background()
	repository := candidate.NewMemoryRepository()

	input := &candidate.Candidate{
		Name:          "Dana Reyes",
		SocialHandle:  "@danareyes",
		Platform:      "youtube",
		FollowerCount: 42_000,
		Region:        "ca",
		Topics:        []string{"life-coaching"},
		Description:   "Long-form coaching conversations",
	}

	require.NoError(t, repository.CreateCandidate(ctx, input))
	assert.Equal(t, 1, input.ID)
	assert.False(t, input.CreatedAt.IsZero())

	got, err := repository.GetCandidate(ctx, input.ID)
	require.NoError(t, err)
	assert.Equal(t, "Dana Reyes", got.Name)
	assert.Equal(t, 42_000, got.FollowerCount)
	assert.Equal(t, []string{"life-coaching"}, got.Topics)

	// Stores hand out clones, never the backing record.
	got.Name = "mutated"
	again, err := repository.GetCandidate(ctx, input.ID)
	require.NoError(t, err)
	assert.Equal(t, "Dana Reyes", again.Name)
}

/*
TestMemoryRepository_IDsNeverReused checks that deleting a record does
not recycle its id.
*/
func TestMemoryRepository_IDsNeverReused(t *testing.T) {
	ctx := context.Background()
	repository := seedRepository(t)

	require.NoError(t, repository.DeleteCandidate(ctx, 3))

	next := &candidate.Candidate{
		Name:         "Eli Marsh",
		SocialHandle: "@elimarsh",
		Platform:     "podcast",
		Region:       "us",
		Topics:       []string{"podcasting"},
		Description:  "Interview craft and audio storytelling",
	}
	require.NoError(t, repository.CreateCandidate(ctx, next))
	assert.Equal(t, 4, next.ID)
}

/*
TestMemoryRepository_Update verifies that only set patch fields are
merged and the rest of the record is untouched.
*/
func TestMemoryRepository_Update(t *testing.T) {
	ctx := context.Background()
	repository := seedRepository(t)

	updated, err := repository.UpdateCandidate(ctx, 1, candidate.Patch{
		Name:          pointer.To("Ava T."),
		FollowerCount: pointer.To(3_500),
	})
	require.NoError(t, err)

	assert.Equal(t, "Ava T.", updated.Name)
	assert.Equal(t, 3_500, updated.FollowerCount)
	// Untouched fields survive the merge.
	assert.Equal(t, "@avatorres", updated.SocialHandle)
	assert.Equal(t, "tiktok", updated.Platform)
	assert.Equal(t, []string{"dating", "confidence"}, updated.Topics)
}

/*
TestMemoryRepository_NotFound checks the missing-id contract on each
addressing operation.
*/
func TestMemoryRepository_NotFound(t *testing.T) {
	ctx := context.Background()
	repository := candidate.NewMemoryRepository()

	_, err := repository.GetCandidate(ctx, 99)
	assert.True(t, errors.Is(err, candidate.ErrNotFound))

	_, err = repository.UpdateCandidate(ctx, 99, candidate.Patch{Name: pointer.To("x")})
	assert.True(t, errors.Is(err, candidate.ErrNotFound))

	err = repository.DeleteCandidate(ctx, 99)
	assert.True(t, errors.Is(err, candidate.ErrNotFound))

	_, err = repository.ToggleFavorite(ctx, 99)
	assert.True(t, errors.Is(err, candidate.ErrNotFound))
}

/*
TestMemoryRepository_ToggleFavorite verifies the flip and that two
toggles restore the original value.
*/
func TestMemoryRepository_ToggleFavorite(t *testing.T) {
	ctx := context.Background()
	repository := seedRepository(t)

	first, err := repository.ToggleFavorite(ctx, 1)
	require.NoError(t, err)
	assert.True(t, first.IsFavorite)

	second, err := repository.ToggleFavorite(ctx, 1)
	require.NoError(t, err)
	assert.False(t, second.IsFavorite)
}

/*
TestMemoryRepository_List runs the filter pipeline end to end against
the store: filtering, total counting and page slicing.
*/
func TestMemoryRepository_List(t *testing.T) {
	ctx := context.Background()
	repository := seedRepository(t)

	t.Run("filtered", func(t *testing.T) {
		page, total, err := repository.ListCandidates(ctx, candidate.Filter{Platform: "tiktok"}, pagination.Params{Page: 1, Limit: 20})
		require.NoError(t, err)

		assert.Equal(t, 2, total)
		require.Len(t, page, 2)
		// Default ordering is followers-desc.
		assert.Equal(t, "Cleo Ardent", page[0].Name)
		assert.Equal(t, "Ava Torres", page[1].Name)
	})

	t.Run("paged_ascending", func(t *testing.T) {
		page, total, err := repository.ListCandidates(ctx, candidate.Filter{Sort: "followers-asc"}, pagination.Params{Page: 2, Limit: 2})
		require.NoError(t, err)

		assert.Equal(t, 3, total)
		require.Len(t, page, 1)
		assert.Equal(t, "Cleo Ardent", page[0].Name)
	})

	t.Run("out_of_range_page_is_empty", func(t *testing.T) {
		page, total, err := repository.ListCandidates(ctx, candidate.Filter{}, pagination.Params{Page: 5, Limit: 20})
		require.NoError(t, err)

		assert.Equal(t, 3, total)
		assert.Empty(t, page)
	})
}
