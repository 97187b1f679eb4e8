package system

import (
	"time"

	"github.com/milk9111/roomstream/ecs"
	"github.com/milk9111/roomstream/ecs/component"
)

const toastDuration = 2 * time.Second

// ShowToast puts a message on screen, replacing any toast already showing.
func ShowToast(w *ecs.World, text string) {
	ecs.ForEach(w, component.ToastComponent.Kind(), func(e ecs.Entity, _ *component.Toast) {
		ecs.DestroyEntity(w, e)
	})
	e := ecs.CreateEntity(w)
	_ = ecs.Add(w, e, component.ToastComponent.Kind(), &component.Toast{Text: text, Remaining: toastDuration})
}

type ToastSystem struct{}

func NewToastSystem() *ToastSystem { return &ToastSystem{} }

func (s *ToastSystem) Update(w *ecs.World) {
	ecs.ForEach(w, component.ToastComponent.Kind(), func(e ecs.Entity, t *component.Toast) {
		t.Remaining -= Tick
		if t.Remaining <= 0 {
			ecs.DestroyEntity(w, e)
		}
	})
}
