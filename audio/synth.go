// Package audio plays the game's sounds. Every sound is a short synthesized
// tone or noise burst described in audio.yaml; there are no audio assets.
package audio

import (
	"encoding/binary"
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/cespare/xxhash/v2"
	"github.com/milk9111/thicket/prefabs"
)

// SampleRate is the rate of every synthesized buffer.
const SampleRate = 44100

// bytesPerFrame is one 16-bit little-endian stereo frame.
const bytesPerFrame = 4

// attack is the fade-in length that avoids a click at the start of a tone.
const attack = 0.005

// Synthesize renders s as 16-bit stereo PCM at rate. The tone sweeps
// linearly from Frequency to Frequency+Slide and decays to silence. Noise
// sounds are seeded from the sound name so every run sounds the same.
func Synthesize(s prefabs.SoundSpec, rate int) ([]byte, error) {
	if rate <= 0 {
		return nil, fmt.Errorf("audio: synthesize %s: bad sample rate %d", s.Name, rate)
	}
	if s.Duration <= 0 {
		return nil, fmt.Errorf("audio: synthesize %s: duration must be positive", s.Name)
	}
	if !s.Noise && s.Frequency <= 0 {
		return nil, fmt.Errorf("audio: synthesize %s: frequency must be positive", s.Name)
	}

	frames := int(s.Duration.Seconds() * float64(rate))
	if frames == 0 {
		frames = 1
	}
	volume := s.Volume
	if volume <= 0 || volume > 1 {
		volume = 1
	}

	rng := rand.New(rand.NewPCG(xxhash.Sum64String(s.Name), 0))
	out := make([]byte, frames*bytesPerFrame)
	phase := 0.0
	held := 0.0
	for i := 0; i < frames; i++ {
		progress := float64(i) / float64(frames)
		freq := math.Max(1, s.Frequency+s.Slide*progress)
		phase += freq / float64(rate)

		var v float64
		if s.Noise {
			// Sample-and-hold noise: a new random level every period of the
			// swept frequency gives the noise a pitch.
			if phase >= 1 || i == 0 {
				held = rng.Float64()*2 - 1
			}
			v = held
		} else {
			v = math.Sin(2 * math.Pi * phase)
		}
		phase -= math.Floor(phase)

		env := 1 - progress
		if t := float64(i) / float64(rate); t < attack {
			env *= t / attack
		}

		sample := int16(v * env * volume * math.MaxInt16)
		binary.LittleEndian.PutUint16(out[i*bytesPerFrame:], uint16(sample))
		binary.LittleEndian.PutUint16(out[i*bytesPerFrame+2:], uint16(sample))
	}
	return out, nil
}
