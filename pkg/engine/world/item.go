package world

import (
	"github.com/zyedidia/generic/mapset"
)

// ItemKind groups items that can stand in for each other.
type ItemKind string

// KeyItem opens one door and is used up doing so.
const KeyItem ItemKind = "key"

// Item represents a collectible item carried by a mover
type Item struct {
	Name string
	Kind ItemKind
}

// NewItem creates a new item with the given name and kind
func NewItem(name string, kind ItemKind) *Item {
	return &Item{Name: name, Kind: kind}
}

// NewKey creates a door key.
func NewKey(name string) *Item {
	return NewItem(name, KeyItem)
}

// Inventory holds the items a mover carries, in the order they were picked
// up.
type Inventory struct {
	items []*Item
	held  mapset.Set[*Item]
}

// NewInventory returns an empty inventory.
func NewInventory() *Inventory {
	return &Inventory{held: mapset.New[*Item]()}
}

// Put adds an item. Putting an item that is already held is a no-op.
func (inv *Inventory) Put(it *Item) {
	if it == nil || inv.Has(it) {
		return
	}
	inv.items = append(inv.items, it)
	inv.held.Put(it)
}

// Has reports whether the inventory holds that exact item.
func (inv *Inventory) Has(it *Item) bool {
	return inv.held.Has(it)
}

// Count returns how many items of the given kind are held.
func (inv *Inventory) Count(kind ItemKind) int {
	n := 0
	for _, it := range inv.items {
		if it.Kind == kind {
			n++
		}
	}
	return n
}

// Size returns the number of items held.
func (inv *Inventory) Size() int {
	return len(inv.items)
}

// Consume removes the earliest picked-up item of the given kind. It returns
// the item, or nil if none was held.
func (inv *Inventory) Consume(kind ItemKind) *Item {
	for i, it := range inv.items {
		if it.Kind != kind {
			continue
		}
		inv.items = append(inv.items[:i], inv.items[i+1:]...)
		inv.held.Remove(it)
		return it
	}
	return nil
}
