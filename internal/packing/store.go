// Package packing holds the packing list state and the views derived from it.
//
// Store is the single owner of the item sequence. Projector and Summarize only
// read copies of it, so a front end can re-derive after every mutation without
// worrying about aliasing.
package packing

import (
	"log/slog"
	"slices"

	"github.com/idilsaglam/packlist/internal/model"
)

// Store owns the canonical item list and the sort configuration.
// It is not safe for concurrent use; a session drives it from one goroutine.
type Store struct {
	items  []model.Item
	nextID int

	sortBy   SortKey
	sortMode SortMode

	log *slog.Logger
}

// NewStore returns an empty store sorted by input order, ascending.
// A nil logger discards.
func NewStore(logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Store{
		items:  []model.Item{},
		nextID: 1,
		log:    logger,
	}
}

// Add appends a new unpacked item. An empty description is ignored and
// reported with ok=false. Quantity is stored as given.
func (s *Store) Add(description string, quantity int) (model.Item, bool) {
	if description == "" {
		s.log.Debug("add ignored: empty description")
		return model.Item{}, false
	}
	it := model.Item{
		ID:          s.nextID,
		Description: description,
		Quantity:    quantity,
	}
	s.nextID++
	s.items = append(s.items, it)
	s.log.Debug("item added", "id", it.ID, "description", it.Description, "quantity", it.Quantity)
	return it, true
}

// Toggle flips the packed flag of the item with id. Unknown ids are ignored.
func (s *Store) Toggle(id int) bool {
	i := s.index(id)
	if i < 0 {
		s.log.Debug("toggle ignored: unknown id", "id", id)
		return false
	}
	s.items[i].Packed = !s.items[i].Packed
	s.log.Debug("item toggled", "id", id, "packed", s.items[i].Packed)
	return true
}

// Delete removes the item with id, keeping the others in order.
// Unknown ids are ignored. Use Clear to empty the list.
func (s *Store) Delete(id int) bool {
	i := s.index(id)
	if i < 0 {
		s.log.Debug("delete ignored: unknown id", "id", id)
		return false
	}
	s.items = slices.Delete(s.items, i, i+1)
	s.log.Debug("item deleted", "id", id)
	return true
}

// Clear empties the list. Ids handed out later still never repeat.
func (s *Store) Clear() {
	n := len(s.items)
	s.items = s.items[:0]
	s.log.Debug("list cleared", "removed", n)
}

// Items returns a copy of the list in insertion order.
func (s *Store) Items() []model.Item {
	return slices.Clone(s.items)
}

// Get looks up a single item by id.
func (s *Store) Get(id int) (model.Item, bool) {
	i := s.index(id)
	if i < 0 {
		return model.Item{}, false
	}
	return s.items[i], true
}

func (s *Store) Len() int { return len(s.items) }

func (s *Store) SortBy() SortKey    { return s.sortBy }
func (s *Store) SortMode() SortMode { return s.sortMode }

func (s *Store) SetSortBy(k SortKey) {
	s.sortBy = k
	s.log.Debug("sort key set", "by", k.String())
}

func (s *Store) SetSortMode(m SortMode) {
	s.sortMode = m
	s.log.Debug("sort mode set", "mode", m.String())
}

func (s *Store) index(id int) int {
	return slices.IndexFunc(s.items, func(it model.Item) bool { return it.ID == id })
}
