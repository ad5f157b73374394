package entity

import (
	"fmt"

	"github.com/milk9111/thicket/ecs"
	"github.com/milk9111/thicket/ecs/component"
	"github.com/milk9111/thicket/prefabs"
)

func NewCamera(w *ecs.World, spec prefabs.WorldSpec, x, y float64) (ecs.Entity, error) {
	camera := ecs.CreateEntity(w)
	if err := ecs.Add(w, camera, component.CameraTagComponent.Kind(), &component.CameraTag{}); err != nil {
		return 0, fmt.Errorf("camera: add camera tag: %w", err)
	}

	if err := ecs.Add(w, camera, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y, ScaleX: 1, ScaleY: 1}); err != nil {
		return 0, fmt.Errorf("camera: add transform: %w", err)
	}

	zoom := spec.CameraZoom
	if zoom <= 0 {
		zoom = 1
	}
	if err := ecs.Add(w, camera, component.CameraComponent.Kind(), &component.Camera{Zoom: zoom}); err != nil {
		return 0, fmt.Errorf("camera: add camera component: %w", err)
	}

	return camera, nil
}
