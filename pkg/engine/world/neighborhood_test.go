package world

import "testing"

func TestNeighborhoodCache_HitsAndInvalidation(t *testing.T) {
	g := newGenerated(t, 6, 31)
	nc := NewNeighborhoodCache(g, 8)

	first := nc.Get(g.Root(), 2)
	second := nc.Get(g.Root(), 2)
	if first != second {
		t.Error("a repeated query should return the cached table")
	}
	if nc.Hits != 1 || nc.Misses != 1 {
		t.Errorf("Hits = %d, Misses = %d, want 1, 1", nc.Hits, nc.Misses)
	}
	nc.Get(g.Root(), 3)
	if nc.Len() != 2 {
		t.Errorf("Len() = %d, want 2", nc.Len())
	}

	var a, b *Cell
	for _, c := range g.Cells() {
		if un := g.UnlinkedNeighbors(c); len(un) > 0 {
			a, b = c, un[0]
			break
		}
	}
	if _, err := g.Link(a, b); err != nil {
		t.Fatal(err)
	}

	nc.Get(g.Root(), 2)
	if nc.Misses != 3 {
		t.Errorf("Misses = %d after a link change, want 3", nc.Misses)
	}
	if nc.Len() != 1 {
		t.Errorf("Len() = %d after invalidation, want 1", nc.Len())
	}
}

func TestNeighborhood_NegativeRadius(t *testing.T) {
	g := newGenerated(t, 4, 1)
	if d := g.Neighborhood(g.Root(), -1); d.Len() != 0 {
		t.Errorf("Neighborhood(root, -1).Len() = %d, want 0", d.Len())
	}
	if d := g.Neighborhood(g.Root(), 0); d.Len() != 1 {
		t.Errorf("Neighborhood(root, 0).Len() = %d, want 1", d.Len())
	}
}

func TestInventory_Consume(t *testing.T) {
	inv := NewInventory()
	brass := NewKey("brass")
	inv.Put(brass)
	inv.Put(NewItem("map", ItemKind("map")))

	if inv.Count(KeyItem) != 1 || inv.Size() != 2 {
		t.Fatalf("Count = %d, Size = %d", inv.Count(KeyItem), inv.Size())
	}
	if got := inv.Consume(KeyItem); got != brass {
		t.Errorf("Consume() = %v, want the brass key", got)
	}
	if inv.Has(brass) || inv.Consume(KeyItem) != nil {
		t.Error("the key should be used up")
	}
	if inv.Size() != 1 {
		t.Errorf("Size() = %d, want 1", inv.Size())
	}
}

func TestInventory_ConsumeInPickupOrder(t *testing.T) {
	inv := NewInventory()
	keys := []*Item{NewKey("key-1"), NewKey("key-2"), NewKey("key-3")}
	for _, k := range keys {
		inv.Put(k)
	}
	inv.Put(keys[0])
	if inv.Size() != 3 {
		t.Fatalf("Size() = %d after a duplicate Put, want 3", inv.Size())
	}
	for i, want := range keys {
		if got := inv.Consume(KeyItem); got != want {
			t.Fatalf("Consume() #%d = %v, want %v", i+1, got, want)
		}
	}
}

func TestNeighbor_Headings(t *testing.T) {
	g := newGenerated(t, 3, 1)
	root := g.Root()
	if !root.IsRoot() || g.Cell(1, 0).IsRoot() {
		t.Error("only ring 0 is the root")
	}
	if root.OutwardCount() != 6 {
		t.Fatalf("root.OutwardCount() = %d, want 6", root.OutwardCount())
	}
	if got := g.Neighbor(root, OutwardSlot(5)); got != g.Cell(1, 5) {
		t.Errorf("Neighbor(root, Outward[5]) = %v, want (1,5)", got)
	}
	if got := g.Neighbor(root, OutwardSlot(6)); got != nil {
		t.Errorf("Neighbor(root, Outward[6]) = %v, want nil", got)
	}
	if got := g.Neighbor(g.Cell(1, 0), Toward(Direction(9))); got != nil {
		t.Errorf("Neighbor with an invalid direction = %v, want nil", got)
	}
	if Direction(9).IsValid() {
		t.Error("Direction(9) should be invalid")
	}
	if s := OutwardSlot(1).String(); s != "Outward[1]" {
		t.Errorf("OutwardSlot(1).String() = %q", s)
	}
}
