package audio

import (
	eaudio "github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/milk9111/thicket/ecs/event"
	"github.com/milk9111/thicket/prefabs"
	"go.uber.org/zap"
)

// Player plays bank sounds through an ebiten audio context.
type Player struct {
	ctx  *eaudio.Context
	bank *Bank
	log  *zap.Logger
}

// NewPlayer creates the audio context and synthesizes spec. Only one audio
// context may exist per process.
func NewPlayer(spec prefabs.AudioSpec, log *zap.Logger) (*Player, error) {
	if log == nil {
		log = zap.NewNop()
	}
	p := &Player{ctx: eaudio.NewContext(SampleRate), log: log}
	if err := p.Reload(spec); err != nil {
		return nil, err
	}
	return p, nil
}

// Reload rebuilds the sound bank from spec. On error the old bank is kept.
func (p *Player) Reload(spec prefabs.AudioSpec) error {
	bank, err := NewBank(spec, SampleRate)
	if err != nil {
		return err
	}
	p.bank = bank
	p.log.Debug("audio: bank ready", zap.Int("sounds", bank.Len()))
	return nil
}

// Play starts kind at volume and returns immediately. The per-sound volume
// from audio.yaml is already baked into the buffer. Overlapping plays of the
// same kind each get their own player.
func (p *Player) Play(kind event.SoundKind, volume float64) {
	if p == nil {
		return
	}
	pcm := p.bank.PCM(kind)
	if pcm == nil {
		return
	}
	if volume <= 0 {
		volume = 1
	}
	player := p.ctx.NewPlayerFromBytes(pcm)
	player.SetVolume(volume)
	player.Play()
}
