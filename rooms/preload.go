package rooms

import (
	"github.com/zyedidia/generic/mapset"
)

// KeepSet returns the ids that must be resident while current is occupied:
// current itself and each defined cardinal neighbor.
func KeepSet(current *Descriptor) mapset.Set[string] {
	keep := mapset.New[string]()
	if current == nil {
		return keep
	}
	keep.Put(current.ID)
	for _, n := range current.Neighbors() {
		keep.Put(n.ID)
	}
	return keep
}

// Reconcile makes the cache hold exactly KeepSet(current). Missing rooms are
// spawned at their grid anchor; anything else is destroyed. Calling it again
// with the same room does nothing.
func Reconcile(cache *Cache, grid Grid, current *Descriptor) (spawned, destroyed int) {
	if cache == nil || current == nil {
		return 0, 0
	}

	keep := KeepSet(current)

	for _, room := range append([]*Descriptor{current}, current.Neighbors()...) {
		if cache.IsLoaded(room.ID) {
			continue
		}
		if _, ok := cache.Spawn(room, grid.Anchor(room.Coord)); ok {
			spawned++
		}
	}

	for _, id := range cache.Loaded() {
		if keep.Has(id) {
			continue
		}
		cache.Destroy(id)
		destroyed++
	}

	return spawned, destroyed
}
