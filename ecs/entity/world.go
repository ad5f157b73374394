package entity

import (
	"fmt"
	"math/rand/v2"

	"github.com/milk9111/thicket/common"
	"github.com/milk9111/thicket/ecs"
	"github.com/milk9111/thicket/prefabs"
)

// Populate builds the start of a run: the player and camera at the origin and
// trees scattered over the tree grid.
func Populate(w *ecs.World, t *prefabs.Tuning, rng *rand.Rand) (ecs.Entity, error) {
	player, err := NewPlayer(w, t.Player, 0, 0)
	if err != nil {
		return 0, err
	}
	if _, err := NewCamera(w, t.World, 0, 0); err != nil {
		return 0, err
	}
	if _, err := ScatterTrees(w, t.Tree, rng); err != nil {
		return 0, err
	}
	return player, nil
}

// ScatterTrees plants a tree on each grid cell in [Min, Max) with a
// 1-in-OneIn chance and returns how many were planted.
func ScatterTrees(w *ecs.World, spec prefabs.TreeSpec, rng *rand.Rand) (int, error) {
	planted := 0
	for gx := spec.Grid.Min; gx < spec.Grid.Max; gx++ {
		for gy := spec.Grid.Min; gy < spec.Grid.Max; gy++ {
			if !common.ChanceOneIn(rng, spec.Grid.OneIn) {
				continue
			}
			x, y := float64(gx)*spec.Grid.Step, float64(gy)*spec.Grid.Step
			if _, err := NewTree(w, spec, x, y); err != nil {
				return planted, fmt.Errorf("world: plant tree at %.0f,%.0f: %w", x, y, err)
			}
			planted++
		}
	}
	return planted, nil
}
