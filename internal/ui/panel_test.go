package ui

import (
	"strings"
	"testing"

	"github.com/idilsaglam/packlist/internal/model"
	"github.com/idilsaglam/packlist/internal/packing"
)

func plain(t *testing.T) {
	t.Helper()
	SetTheme("classic")
	SetColor(false)
}

func TestProgressBar(t *testing.T) {
	tests := []struct {
		pct, width int
		want       string
	}{
		{0, 10, "░░░░░░░░░░   0%"},
		{50, 10, "█████░░░░░  50%"},
		{100, 10, "██████████ 100%"},
		{140, 5, "█████ 100%"},
		{50, 1, "██░░░  50%"},
	}
	for _, tt := range tests {
		if got := ProgressBar(tt.pct, tt.width); got != tt.want {
			t.Fatalf("ProgressBar(%d, %d) = %q, want %q", tt.pct, tt.width, got, tt.want)
		}
	}
}

func TestItemLine(t *testing.T) {
	plain(t)

	if got := ItemLine(model.Item{Description: "Boots", Quantity: 2}); got != "☐ 2 Boots" {
		t.Fatalf("unpacked line = %q", got)
	}
	if got := ItemLine(model.Item{Description: "Tent", Quantity: 1, Packed: true}); got != "☑ 1 Tent" {
		t.Fatalf("packed line = %q", got)
	}

	long := strings.Repeat("x", MaxDescriptionWidth+10)
	got := ItemLine(model.Item{Description: long, Quantity: 1})
	if !strings.HasSuffix(got, "…") {
		t.Fatalf("expected long description to be truncated, got %q", got)
	}
	if VisibleWidth(got) > MaxDescriptionWidth+len("☐ 1 ") {
		t.Fatalf("truncated line too wide: %d", VisibleWidth(got))
	}
}

func TestSetTheme_MonoUsesASCIIBoxes(t *testing.T) {
	SetTheme("mono")
	t.Cleanup(func() { SetTheme("classic") })

	if got := ItemLine(model.Item{Description: "Map", Quantity: 1, Packed: true}); got != "[x] 1 Map" {
		t.Fatalf("mono packed line = %q", got)
	}
}

func TestPanelAndFooter(t *testing.T) {
	plain(t)

	out := Panel([]string{"hello", SortLine(packing.SortByDescription, packing.Descending)})
	if !strings.Contains(out, "hello") || !strings.Contains(out, "Sorted by name, descending") {
		t.Fatalf("panel missing content:\n%s", out)
	}
	if strings.Count(out, "\n") < 3 {
		t.Fatalf("expected a framed box, got:\n%s", out)
	}

	empty := Footer(packing.Summarize(nil))
	if len(empty) != 1 {
		t.Fatalf("empty footer should have no progress bar: %v", empty)
	}
	half := Footer(packing.Summarize([]model.Item{{Packed: true}, {}}))
	if len(half) != 2 || !strings.Contains(half[1], "50%") {
		t.Fatalf("unexpected footer: %v", half)
	}
}
