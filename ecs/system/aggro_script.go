package system

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/thicket/prefabs"
)

// AggroScript decides when an enemy commits to KillMode. The script sees
// distance, view_range, health_fraction and elapsed (seconds) and sets the
// global kill_mode.
type AggroScript struct {
	compiled *tengo.Compiled
}

// AggroInput is what the script knows about one enemy.
type AggroInput struct {
	Distance       float64
	ViewRange      float64
	HealthFraction float64
	Elapsed        float64
}

func NewAggroScript(src []byte) (*AggroScript, error) {
	script := tengo.NewScript(src)
	_ = script.Add("distance", 0.0)
	_ = script.Add("view_range", 0.0)
	_ = script.Add("health_fraction", 1.0)
	_ = script.Add("elapsed", 0.0)
	script.SetImports(stdlib.GetModuleMap("math"))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("aggro script: compile: %w", err)
	}
	return &AggroScript{compiled: compiled}, nil
}

// LoadAggroScript compiles a script from the prefab scripts directory. An
// empty name means the enemies have no aggro script.
func LoadAggroScript(name string) (*AggroScript, error) {
	if name == "" {
		return nil, nil
	}
	src, err := prefabs.LoadScript(name)
	if err != nil {
		return nil, fmt.Errorf("aggro script: load %s: %w", name, err)
	}
	return NewAggroScript(src)
}

// KillMode runs the script for one enemy.
func (s *AggroScript) KillMode(in AggroInput) (bool, error) {
	if s == nil || s.compiled == nil {
		return false, nil
	}
	for name, v := range map[string]float64{
		"distance":        in.Distance,
		"view_range":      in.ViewRange,
		"health_fraction": in.HealthFraction,
		"elapsed":         in.Elapsed,
	} {
		if err := s.compiled.Set(name, v); err != nil {
			return false, fmt.Errorf("aggro script: set %s: %w", name, err)
		}
	}
	if err := s.compiled.Run(); err != nil {
		return false, fmt.Errorf("aggro script: run: %w", err)
	}
	if !s.compiled.IsDefined("kill_mode") {
		return false, nil
	}
	return s.compiled.Get("kill_mode").Bool(), nil
}
