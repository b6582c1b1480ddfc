package savedfilter

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/guestradar/guestradar/pkg/slice"
)

// MemoryRepository is a mutex-guarded in-memory store keyed by a
// monotonically increasing id.
type MemoryRepository struct {
	mu     sync.RWMutex
	items  map[int]*SavedFilter
	nextID int
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		items:  make(map[int]*SavedFilter),
		nextID: 1,
	}
}

func (repository *MemoryRepository) ListFilters(context context.Context) ([]*SavedFilter, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	ids := make([]int, 0, len(repository.items))
	for id := range repository.items {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	return slice.Map(ids, func(id int) *SavedFilter { return repository.items[id].Clone() }), nil
}

func (repository *MemoryRepository) GetFilter(context context.Context, id int) (*SavedFilter, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	f, ok := repository.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	return f.Clone(), nil
}

func (repository *MemoryRepository) CreateFilter(context context.Context, f *SavedFilter) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	now := time.Now().UTC()
	f.ID = repository.nextID
	repository.nextID++
	f.CreatedAt = now
	f.UpdatedAt = now

	repository.items[f.ID] = f.Clone()
	return nil
}

func (repository *MemoryRepository) UpdateFilter(context context.Context, id int, input Input) (*SavedFilter, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	existing, ok := repository.items[id]
	if !ok {
		return nil, ErrNotFound
	}

	existing.Name = input.Name
	existing.Criteria = input.Criteria
	existing.UpdatedAt = time.Now().UTC()

	return existing.Clone(), nil
}

func (repository *MemoryRepository) DeleteFilter(context context.Context, id int) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if _, ok := repository.items[id]; !ok {
		return ErrNotFound
	}

	delete(repository.items, id)
	return nil
}
