package ecs

import "github.com/milk9111/roomstream/ecs/component"

// World owns entities and their component storages. It is driven from the
// game loop and is not safe for concurrent use.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]storage
}

func NewWorld() *World {
	return &World{stores: make(map[component.ComponentID]storage)}
}

func storeFor[T any](w *World, kind component.ComponentKind[T], create bool) *sparseSet[T] {
	if st, ok := w.stores[kind.ID()]; ok {
		return st.(*sparseSet[T])
	}
	if !create {
		return nil
	}
	st := newSparseSet[T]()
	w.stores[kind.ID()] = st
	return st
}
