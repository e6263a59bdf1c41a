package item

import (
	"cmp"
	"errors"
	"slices"
	"sync"

	"github.com/GriffinCanCode/devops-demo/backend/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/devops-demo/backend/internal/shared/types"
)

// ErrNameRequired is returned when an item is created without a name
var ErrNameRequired = errors.New("name is required")

// Store holds the canonical item list for the process lifetime
type Store struct {
	mu      sync.RWMutex
	items   []types.Item // Protected by mu
	nextID  int          // Protected by mu
	metrics *monitoring.Metrics
}

// NewStore creates an empty store; the first item gets id 1
func NewStore() *Store {
	return &Store{
		items:  []types.Item{},
		nextID: 1,
	}
}

// WithMetrics adds metrics tracking to the store
func (s *Store) WithMetrics(metrics *monitoring.Metrics) *Store {
	s.metrics = metrics
	return s
}

// GetAll returns every item in insertion order
func (s *Store) GetAll() []types.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]types.Item, len(s.items))
	copy(items, s.items)
	return items
}

// GetByID looks up an item; ok is false when no item has that id
func (s *Store) GetByID(id int) (types.Item, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	// ids are assigned in increasing order, so the slice is sorted by id
	i, found := slices.BinarySearchFunc(s.items, id, func(it types.Item, target int) int {
		return cmp.Compare(it.ID, target)
	})
	if found {
		return s.items[i], true
	}
	return types.Item{}, false
}

// Create assigns the next id and appends the item
func (s *Store) Create(fields types.ItemFields) (types.Item, error) {
	if fields.Name == "" {
		return types.Item{}, ErrNameRequired
	}

	s.mu.Lock()
	item := types.Item{
		ID:          s.nextID,
		Name:        fields.Name,
		Description: fields.Description,
	}
	s.nextID++
	s.items = append(s.items, item)
	s.mu.Unlock()

	if s.metrics != nil {
		s.metrics.IncItemsCreated()
	}

	return item, nil
}

// Count returns the number of stored items
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}
