package packing

import (
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/idilsaglam/packlist/internal/model"
)

// Projector derives the display order of a list.
// It keeps a collator for the configured locale; like Store it is single-goroutine.
type Projector struct {
	col *collate.Collator
}

// NewProjector builds a projector ordering names by the rules of tag.
// language.Und falls back to the root collation order.
func NewProjector(tag language.Tag) *Projector {
	return &Projector{col: collate.New(tag)}
}

// View is Sorted applied to the store's current items and sort configuration.
func (p *Projector) View(s *Store) []model.Item {
	return p.Sorted(s.Items(), s.SortBy(), s.SortMode())
}

// Sorted returns items in display order. The input slice is never modified.
//
// Descending reverses the ascending result as a whole, so items that compare
// equal also come out in reverse input order.
func (p *Projector) Sorted(items []model.Item, by SortKey, mode SortMode) []model.Item {
	out := slices.Clone(items)
	switch by {
	case SortByDescription:
		slices.SortStableFunc(out, func(a, b model.Item) int {
			return p.col.CompareString(a.Description, b.Description)
		})
	case SortByPacked:
		slices.SortStableFunc(out, func(a, b model.Item) int {
			return packedRank(a) - packedRank(b)
		})
	}
	if mode == Descending {
		slices.Reverse(out)
	}
	return out
}

func packedRank(it model.Item) int {
	if it.Packed {
		return 1
	}
	return 0
}
