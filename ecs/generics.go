package ecs

import (
	"fmt"

	"github.com/milk9111/roomstream/ecs/component"
)

func CreateEntity(w *World) Entity {
	return w.entities.create()
}

// DestroyEntity removes e and all of its components. It reports false for
// entities that are already dead.
func DestroyEntity(w *World, e Entity) bool {
	if !w.entities.isAlive(e) {
		return false
	}
	for _, st := range w.stores {
		st.remove(e)
	}
	return w.entities.destroy(e)
}

func IsAlive(w *World, e Entity) bool {
	return w.entities.isAlive(e)
}

// Entities returns a snapshot of the live entities, safe to destroy from
// while iterating.
func Entities(w *World) []Entity {
	return w.entities.entities()
}

// Add sets the component of kind on e, replacing any previous value.
func Add[T any](w *World, e Entity, kind component.ComponentKind[T], value *T) error {
	if !kind.Valid() {
		return component.ErrInvalidComponentKind
	}
	if value == nil {
		return component.ErrNilComponent
	}
	if !w.entities.isAlive(e) {
		return fmt.Errorf("add component to %s: %w", e, component.ErrEntityNotAlive)
	}
	storeFor(w, kind, true).set(e, value)
	return nil
}

func Get[T any](w *World, e Entity, kind component.ComponentKind[T]) (*T, bool) {
	st := storeFor(w, kind, false)
	if st == nil {
		return nil, false
	}
	return st.get(e)
}

func Has[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	st := storeFor(w, kind, false)
	return st != nil && st.has(e)
}

func Remove[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	st := storeFor(w, kind, false)
	return st != nil && st.remove(e)
}

// Count returns how many entities carry kind.
func Count[T any](w *World, kind component.ComponentKind[T]) int {
	st := storeFor(w, kind, false)
	if st == nil {
		return 0
	}
	return st.len()
}

// First returns some entity carrying kind. Used for singletons.
func First[T any](w *World, kind component.ComponentKind[T]) (Entity, bool) {
	st := storeFor(w, kind, false)
	if st == nil || st.len() == 0 {
		return 0, false
	}
	return st.dense[0], true
}

// ForEach visits every entity carrying kind. The callback may add, remove or
// destroy; iteration runs over a snapshot.
func ForEach[T any](w *World, kind component.ComponentKind[T], fn func(Entity, *T)) {
	st := storeFor(w, kind, false)
	if st == nil {
		return
	}
	ents := append([]Entity(nil), st.dense...)
	for _, e := range ents {
		if v, ok := st.get(e); ok {
			fn(e, v)
		}
	}
}

func ForEach2[A, B any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], fn func(Entity, *A, *B)) {
	sa, sb := storeFor(w, ka, false), storeFor(w, kb, false)
	if sa == nil || sb == nil {
		return
	}
	ents := append([]Entity(nil), sa.dense...)
	for _, e := range ents {
		a, ok := sa.get(e)
		if !ok {
			continue
		}
		b, ok := sb.get(e)
		if !ok {
			continue
		}
		fn(e, a, b)
	}
}

func ForEach3[A, B, C any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], kc component.ComponentKind[C], fn func(Entity, *A, *B, *C)) {
	sa, sb, sc := storeFor(w, ka, false), storeFor(w, kb, false), storeFor(w, kc, false)
	if sa == nil || sb == nil || sc == nil {
		return
	}
	ents := append([]Entity(nil), sa.dense...)
	for _, e := range ents {
		a, ok := sa.get(e)
		if !ok {
			continue
		}
		b, ok := sb.get(e)
		if !ok {
			continue
		}
		c, ok := sc.get(e)
		if !ok {
			continue
		}
		fn(e, a, b, c)
	}
}
