package candidate

import (
	"context"
)

// Stats is the aggregate snapshot behind the dashboard cards.
type Stats struct {
	Total       int            `json:"total"`
	Favorites   int            `json:"favorites"`
	Recommended int            `json:"recommended"`
	ByPlatform  map[string]int `json:"byPlatform"`
	ByRegion    map[string]int `json:"byRegion"`
}

// StatsCache is a read-through cache for [Stats]. Implementations must treat
// failures as misses — a broken cache degrades to recomputation, never to an
// API error.
type StatsCache interface {
	GetStats(context context.Context) (*Stats, bool)
	SetStats(context context.Context, stats *Stats)
	InvalidateStats(context context.Context)
}

// CandidateStats returns the aggregate snapshot, serving from cache when
// fresh. Any candidate mutation invalidates the cached entry.
func (service *Service) CandidateStats(context context.Context) (*Stats, error) {
	if service.cache != nil {
		if stats, ok := service.cache.GetStats(context); ok {
			return stats, nil
		}
	}

	all, err := service.repo.AllCandidates(context)
	if err != nil {
		return nil, err
	}

	stats := aggregateStats(all)

	if service.cache != nil {
		service.cache.SetStats(context, stats)
	}

	return stats, nil
}

func (service *Service) invalidateStats(context context.Context) {
	if service.cache != nil {
		service.cache.InvalidateStats(context)
	}
}

func aggregateStats(all []*Candidate) *Stats {
	stats := &Stats{
		Total:      len(all),
		ByPlatform: make(map[string]int),
		ByRegion:   make(map[string]int),
	}

	for _, c := range all {
		if c.IsFavorite {
			stats.Favorites++
		}
		if c.IsRecommended {
			stats.Recommended++
		}
		stats.ByPlatform[c.Platform]++
		stats.ByRegion[c.Region]++
	}

	return stats
}
