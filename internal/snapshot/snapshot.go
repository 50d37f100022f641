package snapshot

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/idilsaglam/packlist/internal/model"
	"github.com/idilsaglam/packlist/internal/packing"
)

// JSON dump of what the user currently sees. Write-only: a session never
// reads one back.

// Snapshot is the displayed list plus the settings that produced it.
type Snapshot struct {
	SortBy   packing.SortKey  `json:"sort_by"`
	SortMode packing.SortMode `json:"sort_mode"`
	Items    []model.Item     `json:"items"`
	Summary  packing.Summary  `json:"summary"`
}

// Take captures the store as projected by p.
func Take(s *packing.Store, p *packing.Projector) Snapshot {
	view := p.View(s)
	if view == nil {
		view = []model.Item{}
	}
	return Snapshot{
		SortBy:   s.SortBy(),
		SortMode: s.SortMode(),
		Items:    view,
		Summary:  packing.Summarize(view),
	}
}

// Write encodes snap as indented JSON followed by a newline.
func Write(w io.Writer, snap Snapshot) error {
	b, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	b = append(b, '\n')
	if _, err := w.Write(b); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}
