package model

// Item is one entry on the packing list.
// The store assigns ID; callers never pick their own.
type Item struct {
	ID          int    `json:"id"`
	Description string `json:"description"`
	Quantity    int    `json:"quantity"`
	Packed      bool   `json:"packed"`
}

// Quantity bounds offered by the input collaborators.
const (
	MinQuantity = 1
	MaxQuantity = 20
)

// ClampQuantity pins n into [MinQuantity, MaxQuantity].
func ClampQuantity(n int) int {
	if n < MinQuantity {
		return MinQuantity
	}
	if n > MaxQuantity {
		return MaxQuantity
	}
	return n
}
