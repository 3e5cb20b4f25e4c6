package domain

import (
	"errors"
	"sync"
)

var (
	ErrItemNotFound  = errors.New("item not found")
	ErrDuplicateItem = errors.New("item id already registered")
)

// Registry is the single owner of all inventory items: an
// insertion-ordered map from id to item plus the monotonic id counter.
// Consumers only ever see copies; mutation happens through the
// registry's own methods.
type Registry struct {
	mu     sync.RWMutex
	items  map[string]*Item
	order  []string
	nextID int
}

// NewRegistry constructs an empty registry with the counter at its floor.
func NewRegistry() *Registry {
	return &Registry{
		items:  map[string]*Item{},
		nextID: MinItemID,
	}
}

// Restore replaces the registry contents with the given items, keeping
// their order, and reseeds the counter one past the highest numeric
// suffix seen (never below the floor).
func (r *Registry) Restore(items []Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	restored := make(map[string]*Item, len(items))
	order := make([]string, 0, len(items))
	next := MinItemID
	for _, item := range items {
		if _, ok := restored[item.ID]; ok {
			return ErrDuplicateItem
		}
		clone := item
		restored[item.ID] = &clone
		order = append(order, item.ID)
		if n, err := ParseItemID(item.ID); err == nil && n+1 > next {
			next = n + 1
		}
	}
	r.items = restored
	r.order = order
	r.nextID = next
	return nil
}

// AllocateID hands out the next sequential identifier.
func (r *Registry) AllocateID() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := FormatItemID(r.nextID)
	r.nextID++
	return id
}

// Put inserts a new item. The id must not be registered yet.
func (r *Registry) Put(item Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[item.ID]; ok {
		return ErrDuplicateItem
	}
	clone := item
	r.items[item.ID] = &clone
	r.order = append(r.order, item.ID)
	return nil
}

// Get returns a copy of the item, or ErrItemNotFound.
func (r *Registry) Get(id string) (Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	item, ok := r.items[id]
	if !ok {
		return Item{}, ErrItemNotFound
	}
	return *item, nil
}

// Mutate applies fn to the stored item under the write lock. When fn
// returns an error the item is left exactly as it was.
func (r *Registry) Mutate(id string, fn func(*Item) error) (Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	item, ok := r.items[id]
	if !ok {
		return Item{}, ErrItemNotFound
	}
	scratch := *item
	if err := fn(&scratch); err != nil {
		return *item, err
	}
	*item = scratch
	return scratch, nil
}

// Delete removes the item. Removing a missing id is a silent no-op;
// the returned bool reports whether anything was removed.
func (r *Registry) Delete(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return false
	}
	delete(r.items, id)
	for idx, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:idx], r.order[idx+1:]...)
			break
		}
	}
	return true
}

// Snapshot returns copies of all items in insertion order.
func (r *Registry) Snapshot() []Item {
	r.mu.RLock()
	defer r.mu.RUnlock()
	items := make([]Item, 0, len(r.order))
	for _, id := range r.order {
		items = append(items, *r.items[id])
	}
	return items
}

// Len reports the number of registered items.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}
