package audio

import (
	"encoding/binary"
	"testing"
	"time"

	"github.com/milk9111/thicket/ecs/event"
	"github.com/milk9111/thicket/prefabs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSynthesize(t *testing.T) {
	tone := prefabs.SoundSpec{Name: "beep", Frequency: 440, Duration: 100 * time.Millisecond, Volume: 0.5}

	pcm, err := Synthesize(tone, 1000)
	require.NoError(t, err)
	require.Len(t, pcm, 100*bytesPerFrame)

	peak := 0
	for i := 0; i < len(pcm); i += bytesPerFrame {
		l := int16(binary.LittleEndian.Uint16(pcm[i:]))
		r := int16(binary.LittleEndian.Uint16(pcm[i+2:]))
		assert.Equal(t, l, r, "mono signal on both channels")
		if v := int(l); v > peak {
			peak = v
		} else if -v > peak {
			peak = -v
		}
	}
	assert.Positive(t, peak)
	assert.LessOrEqual(t, peak, 32767/2+1, "volume scales the peak")
}

func TestSynthesizeNoiseIsRepeatable(t *testing.T) {
	noise := prefabs.SoundSpec{Name: "crash", Frequency: 100, Duration: 50 * time.Millisecond, Noise: true}
	a, err := Synthesize(noise, SampleRate)
	require.NoError(t, err)
	b, err := Synthesize(noise, SampleRate)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestSynthesizeErrors(t *testing.T) {
	tests := []struct {
		name string
		spec prefabs.SoundSpec
		rate int
	}{
		{name: "no_duration", spec: prefabs.SoundSpec{Name: "a", Frequency: 100}, rate: SampleRate},
		{name: "no_frequency", spec: prefabs.SoundSpec{Name: "a", Duration: time.Second}, rate: SampleRate},
		{name: "bad_rate", spec: prefabs.SoundSpec{Name: "a", Frequency: 100, Duration: time.Second}, rate: 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Synthesize(tc.spec, tc.rate)
			assert.Error(t, err)
		})
	}
}

func TestBankFromPrefabs(t *testing.T) {
	tuning, err := prefabs.LoadTuning()
	require.NoError(t, err)
	bank, err := NewBank(tuning.Audio, SampleRate)
	require.NoError(t, err)
	assert.Equal(t, len(event.SoundKinds), bank.Len())
	for _, k := range event.SoundKinds {
		assert.NotEmpty(t, bank.PCM(k), k.String())
	}
}

func TestBankErrors(t *testing.T) {
	_, err := NewBank(prefabs.AudioSpec{Sounds: []prefabs.SoundSpec{{Name: "kazoo", Frequency: 1, Duration: time.Second}}}, SampleRate)
	assert.ErrorContains(t, err, "kazoo")

	_, err = NewBank(prefabs.AudioSpec{Sounds: []prefabs.SoundSpec{{Name: "damage"}}}, SampleRate)
	assert.Error(t, err)

	var nilBank *Bank
	assert.Nil(t, nilBank.PCM(event.SoundDeath))
}
