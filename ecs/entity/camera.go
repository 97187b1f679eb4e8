package entity

import (
	"fmt"

	"github.com/milk9111/roomstream/ecs"
)

func NewCamera(w *ecs.World) (ecs.Entity, error) {
	e, err := BuildEntity(w, "camera.yaml")
	if err != nil {
		return 0, fmt.Errorf("camera: %w", err)
	}
	return e, nil
}
