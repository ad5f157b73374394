package system

import "github.com/milk9111/thicket/ecs/event"

// RawInput is one poll of the keyboard and mouse. Cursor coordinates are in
// screen pixels.
type RawInput struct {
	MoveX        float64
	MoveY        float64
	Shoot        bool
	Gather       bool
	PlaceTurret  bool
	CursorX      float64
	CursorY      float64
	CursorInside bool
	ScreenWidth  float64
	ScreenHeight float64
}

// InputSource is polled once per tick.
type InputSource interface {
	Poll() RawInput
}

// SoundPlayer plays a sound and returns immediately.
type SoundPlayer interface {
	Play(kind event.SoundKind, volume float64)
}

// Progress is what the HUD shows about the player.
type Progress struct {
	Level          uint32
	XPFraction     float64
	Wood           int
	HealthFraction float64
}

// ProgressSink receives the player's progress every tick.
type ProgressSink interface {
	ShowProgress(p Progress)
}
