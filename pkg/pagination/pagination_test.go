// Copyright (c) 2026 GuestRadar. All rights reserved.

package pagination_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/guestradar/guestradar/pkg/pagination"
)

func TestNewMeta(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		limit      int
		total      int
		totalPages int
	}{
		{"exact_fit", 1, 20, 40, 2},
		{"remainder_rounds_up", 1, 20, 41, 3},
		{"single_partial_page", 1, 20, 3, 1},
		{"empty", 1, 20, 0, 0},
		{"spec_example", 2, 2, 3, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := pagination.NewMeta(tt.page, tt.limit, tt.total)
			assert.Equal(t, tt.totalPages, meta.TotalPages)
			assert.Equal(t, tt.total, meta.Total)
			assert.Equal(t, tt.page, meta.Page)
			assert.Equal(t, tt.limit, meta.Limit)
		})
	}
}

func TestFromRequest_Clamping(t *testing.T) {
	tests := []struct {
		name  string
		query string
		page  int
		limit int
	}{
		{"defaults", "", 1, 20},
		{"explicit", "page=3&limit=50", 3, 50},
		{"negative_page", "page=-2", 1, 20},
		{"zero_limit", "limit=0", 1, 20},
		{"excessive_limit", "limit=5000", 1, 20},
		{"garbage", "page=abc&limit=xyz", 1, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest("GET", "/api/candidates?"+tt.query, nil)
			params := pagination.FromRequest(request)
			assert.Equal(t, tt.page, params.Page)
			assert.Equal(t, tt.limit, params.Limit)
		})
	}
}

func TestParams_Offset(t *testing.T) {
	assert.Equal(t, 0, pagination.Params{Page: 1, Limit: 20}.Offset())
	assert.Equal(t, 20, pagination.Params{Page: 2, Limit: 20}.Offset())
	assert.Equal(t, 2, pagination.Params{Page: 2, Limit: 2}.Offset())
}
