package packing

import (
	"fmt"
	"math"

	"github.com/idilsaglam/packlist/internal/model"
)

// State is which of the three footer messages applies.
type State int

const (
	StateEmpty State = iota
	StateInProgress
	StateComplete
)

func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateInProgress:
		return "in-progress"
	case StateComplete:
		return "complete"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// MarshalText makes State render by name in JSON.
func (s State) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// Summary is the progress footer of a list.
type Summary struct {
	NumItems   int   `json:"num_items"`
	NumPacked  int   `json:"num_packed"`
	Percentage int   `json:"percentage"`
	State      State `json:"state"`
}

// Summarize counts items and packed items. Percentage is rounded to the
// nearest integer, halves away from zero, and is 0 for an empty list.
// A list can read as complete while one item is still unpacked once the
// ratio rounds to 100.
func Summarize(items []model.Item) Summary {
	sum := Summary{NumItems: len(items)}
	if sum.NumItems == 0 {
		sum.State = StateEmpty
		return sum
	}
	for _, it := range items {
		if it.Packed {
			sum.NumPacked++
		}
	}
	sum.Percentage = int(math.Round(float64(sum.NumPacked) / float64(sum.NumItems) * 100))
	if sum.Percentage == 100 {
		sum.State = StateComplete
	} else {
		sum.State = StateInProgress
	}
	return sum
}

// Message is the footer sentence for the summary.
func (s Summary) Message() string {
	switch s.State {
	case StateEmpty:
		return "Start adding some items to your packing list 🚀"
	case StateComplete:
		return "You got everything! Ready to go ✈️"
	}
	noun := "items"
	if s.NumItems == 1 {
		noun = "item"
	}
	return fmt.Sprintf("💼 You have %d %s on your list, and you already packed %d (%d%%)",
		s.NumItems, noun, s.NumPacked, s.Percentage)
}
