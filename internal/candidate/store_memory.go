package candidate

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/guestradar/guestradar/pkg/pagination"
	"github.com/guestradar/guestradar/pkg/slice"
)

// MemoryRepository is a mutex-guarded in-memory store keyed by a
// monotonically increasing id. Ids are never reused, even after deletes.
//
// It is constructed explicitly and injected — there is no package-level
// singleton and no reset hook; tests simply create a fresh instance.
type MemoryRepository struct {
	mu     sync.RWMutex
	items  map[int]*Candidate
	nextID int
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		items:  make(map[int]*Candidate),
		nextID: 1,
	}
}

// snapshot clones all records in id order. Callers must hold at least a
// read lock. Id order doubles as insertion order because ids are monotonic.
func (repository *MemoryRepository) snapshot() []*Candidate {
	ids := make([]int, 0, len(repository.items))
	for id := range repository.items {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	return slice.Map(ids, func(id int) *Candidate { return repository.items[id].Clone() })
}

func (repository *MemoryRepository) ListCandidates(context context.Context, f Filter, params pagination.Params) ([]*Candidate, int, error) {
	repository.mu.RLock()
	all := repository.snapshot()
	repository.mu.RUnlock()

	page, total := Apply(all, f, params)
	return page, total, nil
}

func (repository *MemoryRepository) AllCandidates(context context.Context) ([]*Candidate, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	return repository.snapshot(), nil
}

func (repository *MemoryRepository) GetCandidate(context context.Context, id int) (*Candidate, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	c, ok := repository.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	return c.Clone(), nil
}

func (repository *MemoryRepository) CreateCandidate(context context.Context, c *Candidate) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	c.ID = repository.nextID
	repository.nextID++
	c.CreatedAt = time.Now().UTC()

	if c.AdditionalPlatforms == nil {
		c.AdditionalPlatforms = []string{}
	}
	if c.Topics == nil {
		c.Topics = []string{}
	}

	repository.items[c.ID] = c.Clone()
	return nil
}

func (repository *MemoryRepository) UpdateCandidate(context context.Context, id int, patch Patch) (*Candidate, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	existing, ok := repository.items[id]
	if !ok {
		return nil, ErrNotFound
	}

	patch.apply(existing)
	return existing.Clone(), nil
}

func (repository *MemoryRepository) DeleteCandidate(context context.Context, id int) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if _, ok := repository.items[id]; !ok {
		return ErrNotFound
	}

	delete(repository.items, id)
	return nil
}

func (repository *MemoryRepository) ToggleFavorite(context context.Context, id int) (*Candidate, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	existing, ok := repository.items[id]
	if !ok {
		return nil, ErrNotFound
	}

	// Read-then-write under the same lock: the toggle never interleaves
	// with itself incoherently.
	existing.IsFavorite = !existing.IsFavorite
	return existing.Clone(), nil
}
