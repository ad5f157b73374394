package system

import (
	"github.com/milk9111/thicket/ecs"
	"github.com/milk9111/thicket/ecs/component"
	"github.com/milk9111/thicket/ecs/event"
)

// SoundSystem forwards the tick's sound requests to the audio player.
type SoundSystem struct {
	player SoundPlayer
}

func NewSoundSystem(player SoundPlayer) *SoundSystem {
	return &SoundSystem{player: player}
}

func (s *SoundSystem) Update(w *ecs.World) {
	sounds := ecs.Drain(w, event.SoundEvent)
	if s.player == nil {
		return
	}
	for _, snd := range sounds {
		s.player.Play(snd.Kind, snd.Volume)
	}
}

// ProgressSystem reports the player's level and xp bar to the HUD.
type ProgressSystem struct {
	sink ProgressSink
}

func NewProgressSystem(sink ProgressSink) *ProgressSystem {
	return &ProgressSystem{sink: sink}
}

func (s *ProgressSystem) Update(w *ecs.World) {
	if s.sink == nil {
		return
	}
	e, _, ok := player(w)
	if !ok {
		return
	}
	var p Progress
	if lvl, ok := ecs.Get(w, e, component.XPLevelComponent.Kind()); ok {
		p.Level = lvl.Level
		p.XPFraction = lvl.Fraction()
	}
	if inv, ok := ecs.Get(w, e, component.InventoryComponent.Kind()); ok {
		p.Wood = inv.Wood
	}
	if h, ok := ecs.Get(w, e, component.HealthComponent.Kind()); ok {
		p.HealthFraction = h.Fraction()
	}
	s.sink.ShowProgress(p)
}
