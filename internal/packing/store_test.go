package packing

import (
	"testing"
)

func TestStore_AddAppendsUnpackedItem(t *testing.T) {
	s := NewStore(nil)

	it, ok := s.Add("Tent", 1)
	if !ok {
		t.Fatalf("expected add to succeed")
	}
	if it.Packed {
		t.Fatalf("expected new item to be unpacked")
	}
	if it.Description != "Tent" || it.Quantity != 1 {
		t.Fatalf("unexpected item: %+v", it)
	}
	if s.Len() != 1 {
		t.Fatalf("expected len 1, got %d", s.Len())
	}

	s.Add("Boots", 2)
	items := s.Items()
	if len(items) != 2 || items[1].Description != "Boots" {
		t.Fatalf("expected Boots appended at the end; got %+v", items)
	}
}

func TestStore_AddEmptyDescriptionIsNoop(t *testing.T) {
	s := NewStore(nil)
	s.Add("Tent", 1)

	if _, ok := s.Add("", 3); ok {
		t.Fatalf("expected add with empty description to be rejected")
	}
	if s.Len() != 1 {
		t.Fatalf("expected len unchanged at 1, got %d", s.Len())
	}
}

func TestStore_IDsAreUniqueAcrossDeletesAndClear(t *testing.T) {
	s := NewStore(nil)
	seen := map[int]bool{}
	record := func(desc string) {
		it, ok := s.Add(desc, 1)
		if !ok {
			t.Fatalf("add %q failed", desc)
		}
		if seen[it.ID] {
			t.Fatalf("id %d handed out twice", it.ID)
		}
		seen[it.ID] = true
	}

	for _, d := range []string{"a", "b", "c", "d"} {
		record(d)
	}
	s.Delete(s.Items()[1].ID)
	record("e")
	s.Clear()
	record("f")
	record("g")

	items := s.Items()
	if items[0].ID == items[1].ID {
		t.Fatalf("duplicate ids in list: %+v", items)
	}
}

func TestStore_DoubleToggleRestoresState(t *testing.T) {
	s := NewStore(nil)
	it, _ := s.Add("Sunscreen", 1)

	if !s.Toggle(it.ID) {
		t.Fatalf("expected toggle of existing id to report true")
	}
	got, _ := s.Get(it.ID)
	if !got.Packed {
		t.Fatalf("expected packed after one toggle")
	}
	s.Toggle(it.ID)
	got, _ = s.Get(it.ID)
	if got.Packed {
		t.Fatalf("expected unpacked after two toggles")
	}
}

func TestStore_UnknownIDsAreIgnored(t *testing.T) {
	s := NewStore(nil)
	s.Add("Map", 1)
	before := s.Items()

	if s.Toggle(999) {
		t.Fatalf("toggle of unknown id should report false")
	}
	if s.Delete(999) {
		t.Fatalf("delete of unknown id should report false")
	}
	if s.Delete(-1) {
		t.Fatalf("delete(-1) is not a clear request")
	}

	after := s.Items()
	if len(after) != len(before) || after[0] != before[0] {
		t.Fatalf("list changed: before %+v after %+v", before, after)
	}
}

func TestStore_DeleteKeepsOrder(t *testing.T) {
	s := NewStore(nil)
	a, _ := s.Add("a", 1)
	b, _ := s.Add("b", 1)
	c, _ := s.Add("c", 1)

	s.Delete(b.ID)

	items := s.Items()
	if len(items) != 2 || items[0].ID != a.ID || items[1].ID != c.ID {
		t.Fatalf("expected [a c], got %+v", items)
	}
}

func TestStore_ItemsReturnsCopy(t *testing.T) {
	s := NewStore(nil)
	s.Add("Hat", 1)

	items := s.Items()
	items[0].Packed = true
	items[0].Description = "changed"

	got := s.Items()[0]
	if got.Packed || got.Description != "Hat" {
		t.Fatalf("store was mutated through Items(): %+v", got)
	}
}

func TestStore_SortConfigDefaults(t *testing.T) {
	s := NewStore(nil)
	if s.SortBy() != SortByInput || s.SortMode() != Ascending {
		t.Fatalf("expected input/ascending, got %s/%s", s.SortBy(), s.SortMode())
	}
	s.SetSortBy(SortByPacked)
	s.SetSortMode(Descending)
	if s.SortBy() != SortByPacked || s.SortMode() != Descending {
		t.Fatalf("expected packed/descending, got %s/%s", s.SortBy(), s.SortMode())
	}
}

func TestStore_TentBootsScenario(t *testing.T) {
	s := NewStore(nil)
	tent, _ := s.Add("Tent", 1)
	s.Add("Boots", 2)
	s.Toggle(tent.ID)

	sum := Summarize(s.Items())
	if sum.NumItems != 2 || sum.NumPacked != 1 || sum.Percentage != 50 {
		t.Fatalf("unexpected summary: %+v", sum)
	}
	if sum.State != StateInProgress {
		t.Fatalf("expected in-progress, got %s", sum.State)
	}

	s.Clear()
	if s.Len() != 0 {
		t.Fatalf("expected empty list after clear, got %d", s.Len())
	}
	if got := Summarize(s.Items()).State; got != StateEmpty {
		t.Fatalf("expected empty state, got %s", got)
	}
}
