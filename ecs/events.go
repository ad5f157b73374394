package ecs

import "sync/atomic"

type eventID uint32

var nextEventID atomic.Uint32

// EventKind is a typed handle for one per-tick event channel.
type EventKind[T any] struct {
	id eventID
}

// NewEventKind allocates a new channel kind.
func NewEventKind[T any]() EventKind[T] {
	return EventKind[T]{id: eventID(nextEventID.Add(1))}
}

type channel interface {
	clear()
	len() int
}

type eventChannel[T any] struct {
	items []T
}

func (c *eventChannel[T]) clear() {
	clear(c.items)
	c.items = c.items[:0]
}

func (c *eventChannel[T]) len() int {
	return len(c.items)
}

func channelFor[T any](w *World, kind EventKind[T]) *eventChannel[T] {
	if ch, ok := w.events[kind.id].(*eventChannel[T]); ok {
		return ch
	}
	ch := &eventChannel[T]{}
	w.events[kind.id] = ch
	return ch
}

// Emit appends ev to the channel. It is visible to every system that runs
// later in the same tick and dropped at the barrier.
func Emit[T any](w *World, kind EventKind[T], ev T) {
	if w == nil {
		return
	}
	ch := channelFor(w, kind)
	ch.items = append(ch.items, ev)
}

// Read returns the events emitted so far this tick without consuming them.
// The slice is only valid until the barrier.
func Read[T any](w *World, kind EventKind[T]) []T {
	if w == nil {
		return nil
	}
	ch, ok := w.events[kind.id].(*eventChannel[T])
	if !ok || len(ch.items) == 0 {
		return nil
	}
	return ch.items
}

// Drain returns a copy of the pending events and clears the channel.
func Drain[T any](w *World, kind EventKind[T]) []T {
	if w == nil {
		return nil
	}
	ch, ok := w.events[kind.id].(*eventChannel[T])
	if !ok || len(ch.items) == 0 {
		return nil
	}
	out := append([]T(nil), ch.items...)
	ch.clear()
	return out
}

// Pending returns the number of undelivered events across all channels.
func (w *World) Pending() int {
	if w == nil {
		return 0
	}
	n := 0
	for _, ch := range w.events {
		n += ch.len()
	}
	return n
}
