package ecs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type ping struct {
	N int
}

func TestEventsReadAndDrain(t *testing.T) {
	kind := NewEventKind[ping]()
	other := NewEventKind[ping]()
	w := NewWorld()

	assert.Nil(t, Read(w, kind))
	Emit(w, kind, ping{1})
	Emit(w, kind, ping{2})
	Emit(w, other, ping{3})
	assert.Equal(t, 3, w.Pending())

	assert.Equal(t, []ping{{1}, {2}}, Read(w, kind))
	assert.Len(t, Read(w, kind), 2, "reading does not consume")

	drained := Drain(w, kind)
	assert.Equal(t, []ping{{1}, {2}}, drained)
	assert.Nil(t, Read(w, kind))
	assert.Equal(t, []ping{{3}}, Read(w, other))

	Emit(w, kind, ping{4})
	assert.Equal(t, []ping{{1}, {2}}, drained, "drained copy is detached from the channel")
}

func TestBarrierClearsEvents(t *testing.T) {
	kind := NewEventKind[ping]()
	w := NewWorld()

	Emit(w, kind, ping{1})
	w.Barrier()
	assert.Zero(t, w.Pending())
	assert.Nil(t, Read(w, kind))
}
