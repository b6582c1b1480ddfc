package candidate_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guestradar/guestradar/internal/candidate"
)

// newTestServer mounts the candidate routes over a seeded in-memory store,
// the same wiring shape as production minus the middleware stack.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	repository := seedRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := candidate.NewService(repository, nil, logger)

	router := chi.NewRouter()
	router.Mount("/api/candidates", candidate.NewHandler(service).Routes())

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return server
}

// doJSON issues a request and decodes the enveloped JSON body into target.
func doJSON(t *testing.T, method, url string, body, target interface{}) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	request, err := http.NewRequestWithContext(context.Background(), method, url, reader)
	require.NoError(t, err)

	response, err := http.DefaultClient.Do(request)
	require.NoError(t, err)
	t.Cleanup(func() { _ = response.Body.Close() })

	if target != nil {
		require.NoError(t, json.NewDecoder(response.Body).Decode(target))
	}
	return response
}

/*
TestCandidateAPI_List covers the list endpoint: envelope shape, filter
parameters and pagination metadata.
*/
func TestCandidateAPI_List(t *testing.T) {
	server := newTestServer(t)

	t.Run("all", func(t *testing.T) {
		var envelope struct {
			Data []candidate.Candidate `json:"data"`
			Meta struct {
				Page       int `json:"page"`
				Limit      int `json:"limit"`
				Total      int `json:"total"`
				TotalPages int `json:"totalPages"`
			} `json:"meta"`
		}

		response := doJSON(t, http.MethodGet, server.URL+"/api/candidates", nil, &envelope)
		assert.Equal(t, http.StatusOK, response.StatusCode)

		assert.Len(t, envelope.Data, 3)
		assert.Equal(t, 3, envelope.Meta.Total)
		assert.Equal(t, 1, envelope.Meta.Page)
		assert.Equal(t, 20, envelope.Meta.Limit)
		assert.Equal(t, 1, envelope.Meta.TotalPages)
	})

	t.Run("filtered_and_sorted", func(t *testing.T) {
		var envelope struct {
			Data []candidate.Candidate `json:"data"`
		}

		response := doJSON(t, http.MethodGet, server.URL+"/api/candidates?platform=tiktok&sort=followers-asc", nil, &envelope)
		assert.Equal(t, http.StatusOK, response.StatusCode)

		require.Len(t, envelope.Data, 2)
		assert.Equal(t, "Ava Torres", envelope.Data[0].Name)
		assert.Equal(t, "Cleo Ardent", envelope.Data[1].Name)
	})

	t.Run("invalid_enum_value", func(t *testing.T) {
		var envelope struct {
			Error string `json:"error"`
			Code  string `json:"code"`
		}

		response := doJSON(t, http.MethodGet, server.URL+"/api/candidates?platform=myspace", nil, &envelope)
		assert.Equal(t, http.StatusBadRequest, response.StatusCode)
		assert.Equal(t, "VALIDATION_ERROR", envelope.Code)
	})

	t.Run("unknown_params_ignored", func(t *testing.T) {
		response := doJSON(t, http.MethodGet, server.URL+"/api/candidates?utm_source=newsletter", nil, nil)
		assert.Equal(t, http.StatusOK, response.StatusCode)
	})
}

/*
TestCandidateAPI_Get covers single-resource fetch and the 404 contract
for missing and malformed ids.
*/
func TestCandidateAPI_Get(t *testing.T) {
	server := newTestServer(t)

	t.Run("found", func(t *testing.T) {
		var envelope struct {
			Data candidate.Candidate `json:"data"`
		}

		response := doJSON(t, http.MethodGet, server.URL+"/api/candidates/2", nil, &envelope)
		assert.Equal(t, http.StatusOK, response.StatusCode)
		assert.Equal(t, "Ben Okafor", envelope.Data.Name)
	})

	t.Run("missing_id", func(t *testing.T) {
		response := doJSON(t, http.MethodGet, server.URL+"/api/candidates/99", nil, nil)
		assert.Equal(t, http.StatusNotFound, response.StatusCode)
	})

	t.Run("malformed_id", func(t *testing.T) {
		response := doJSON(t, http.MethodGet, server.URL+"/api/candidates/abc", nil, nil)
		assert.Equal(t, http.StatusNotFound, response.StatusCode)
	})
}

/*
TestCandidateAPI_Create covers creation, input validation and malformed
JSON handling.
*/
func TestCandidateAPI_Create(t *testing.T) {
	server := newTestServer(t)

	t.Run("created", func(t *testing.T) {
		var envelope struct {
			Data candidate.Candidate `json:"data"`
		}

		input := map[string]interface{}{
			"name":          "Dana Reyes",
			"socialHandle":  "@danareyes",
			"platform":      "youtube",
			"followerCount": 42000,
			"region":        "ca",
			"topics":        []string{"life-coaching"},
			"description":   "Long-form coaching conversations",
		}

		response := doJSON(t, http.MethodPost, server.URL+"/api/candidates", input, &envelope)
		assert.Equal(t, http.StatusCreated, response.StatusCode)
		assert.Equal(t, 4, envelope.Data.ID)
		assert.False(t, envelope.Data.CreatedAt.IsZero())
	})

	t.Run("validation_failure", func(t *testing.T) {
		var envelope struct {
			Code    string `json:"code"`
			Details []struct {
				Field   string `json:"field"`
				Message string `json:"message"`
			} `json:"details"`
		}

		input := map[string]interface{}{
			"name":          "",
			"socialHandle":  "@nobody",
			"platform":      "broadcast-fax",
			"followerCount": -5,
			"region":        "us",
			"topics":        []string{},
			"description":   "short",
		}

		response := doJSON(t, http.MethodPost, server.URL+"/api/candidates", input, &envelope)
		assert.Equal(t, http.StatusBadRequest, response.StatusCode)
		assert.Equal(t, "VALIDATION_ERROR", envelope.Code)
		assert.NotEmpty(t, envelope.Details)
	})

	t.Run("malformed_json", func(t *testing.T) {
		request, err := http.NewRequestWithContext(context.Background(), http.MethodPost, server.URL+"/api/candidates", strings.NewReader("{not json"))
		require.NoError(t, err)

		response, err := http.DefaultClient.Do(request)
		require.NoError(t, err)
		defer response.Body.Close()

		assert.Equal(t, http.StatusBadRequest, response.StatusCode)
	})
}

/*
TestCandidateAPI_Update covers partial updates and patch validation.
*/
func TestCandidateAPI_Update(t *testing.T) {
	server := newTestServer(t)

	t.Run("partial_merge", func(t *testing.T) {
		var envelope struct {
			Data candidate.Candidate `json:"data"`
		}

		input := map[string]interface{}{"followerCount": 8500}

		response := doJSON(t, http.MethodPatch, server.URL+"/api/candidates/2", input, &envelope)
		assert.Equal(t, http.StatusOK, response.StatusCode)
		assert.Equal(t, 8_500, envelope.Data.FollowerCount)
		assert.Equal(t, "Ben Okafor", envelope.Data.Name)
	})

	t.Run("invalid_patch_value", func(t *testing.T) {
		input := map[string]interface{}{"platform": "myspace"}

		response := doJSON(t, http.MethodPatch, server.URL+"/api/candidates/2", input, nil)
		assert.Equal(t, http.StatusBadRequest, response.StatusCode)
	})

	t.Run("missing_record", func(t *testing.T) {
		input := map[string]interface{}{"name": "Ghost"}

		response := doJSON(t, http.MethodPatch, server.URL+"/api/candidates/77", input, nil)
		assert.Equal(t, http.StatusNotFound, response.StatusCode)
	})
}

/*
TestCandidateAPI_Delete covers removal and the confirmation envelope.
*/
func TestCandidateAPI_Delete(t *testing.T) {
	server := newTestServer(t)

	var envelope struct {
		Message string `json:"message"`
	}

	response := doJSON(t, http.MethodDelete, server.URL+"/api/candidates/1", nil, &envelope)
	assert.Equal(t, http.StatusOK, response.StatusCode)
	assert.Equal(t, "Candidate deleted successfully", envelope.Message)

	response = doJSON(t, http.MethodGet, server.URL+"/api/candidates/1", nil, nil)
	assert.Equal(t, http.StatusNotFound, response.StatusCode)
}

/*
TestCandidateAPI_ToggleFavorite verifies the flip endpoint returns the
updated record and that two calls restore the original state.
*/
func TestCandidateAPI_ToggleFavorite(t *testing.T) {
	server := newTestServer(t)

	var envelope struct {
		Data candidate.Candidate `json:"data"`
	}

	response := doJSON(t, http.MethodPost, server.URL+"/api/candidates/1/toggle-favorite", nil, &envelope)
	assert.Equal(t, http.StatusOK, response.StatusCode)
	assert.True(t, envelope.Data.IsFavorite)

	response = doJSON(t, http.MethodPost, server.URL+"/api/candidates/1/toggle-favorite", nil, &envelope)
	assert.Equal(t, http.StatusOK, response.StatusCode)
	assert.False(t, envelope.Data.IsFavorite)
}

/*
TestCandidateAPI_Stats checks the aggregate endpoint over the seeded set.
*/
func TestCandidateAPI_Stats(t *testing.T) {
	server := newTestServer(t)

	var envelope struct {
		Data candidate.Stats `json:"data"`
	}

	response := doJSON(t, http.MethodGet, server.URL+"/api/candidates/stats", nil, &envelope)
	assert.Equal(t, http.StatusOK, response.StatusCode)

	assert.Equal(t, 3, envelope.Data.Total)
	assert.Equal(t, 1, envelope.Data.Favorites)
	assert.Equal(t, 2, envelope.Data.ByPlatform["tiktok"])
	assert.Equal(t, 1, envelope.Data.ByPlatform["instagram"])
}

/*
TestCandidateAPI_Export checks the CSV endpoint headers and row count.
*/
func TestCandidateAPI_Export(t *testing.T) {
	server := newTestServer(t)

	request, err := http.NewRequestWithContext(context.Background(), http.MethodGet, server.URL+"/api/candidates/export?platform=tiktok", nil)
	require.NoError(t, err)

	response, err := http.DefaultClient.Do(request)
	require.NoError(t, err)
	defer response.Body.Close()

	assert.Equal(t, http.StatusOK, response.StatusCode)
	assert.Contains(t, response.Header.Get("Content-Type"), "text/csv")
	assert.Contains(t, response.Header.Get("Content-Disposition"), "podcast-candidates.csv")

	body, err := io.ReadAll(response.Body)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(body)), "\n")
	// Header row plus the two TikTok candidates.
	assert.Len(t, lines, 3)
	assert.Contains(t, lines[0], "Social Handle")
}
