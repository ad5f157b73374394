package audio

import (
	"fmt"
	"sync"

	"github.com/milk9111/thicket/ecs/event"
	"github.com/milk9111/thicket/prefabs"
	"golang.org/x/sync/errgroup"
)

// Bank holds one PCM buffer per sound kind.
type Bank struct {
	buffers map[event.SoundKind][]byte
}

// NewBank synthesizes every sound in spec concurrently. Sounds with a name
// that matches no kind are an error; kinds without a sound stay silent.
func NewBank(spec prefabs.AudioSpec, rate int) (*Bank, error) {
	byName := make(map[string]event.SoundKind, len(event.SoundKinds))
	for _, k := range event.SoundKinds {
		byName[k.String()] = k
	}

	var (
		mu      sync.Mutex
		g       errgroup.Group
		buffers = make(map[event.SoundKind][]byte, len(spec.Sounds))
	)
	for _, s := range spec.Sounds {
		kind, ok := byName[s.Name]
		if !ok {
			return nil, fmt.Errorf("audio: unknown sound %q", s.Name)
		}
		g.Go(func() error {
			pcm, err := Synthesize(s, rate)
			if err != nil {
				return err
			}
			mu.Lock()
			buffers[kind] = pcm
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &Bank{buffers: buffers}, nil
}

// PCM returns the buffer for kind, or nil when the kind is silent.
func (b *Bank) PCM(kind event.SoundKind) []byte {
	if b == nil {
		return nil
	}
	return b.buffers[kind]
}

// Len returns how many kinds have a buffer.
func (b *Bank) Len() int {
	if b == nil {
		return 0
	}
	return len(b.buffers)
}
