// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package stage

import "github.com/gogpu/pen"

// Dispatcher routes move events to the listeners of each actor.
// Listeners run synchronously, in subscription order.
type Dispatcher struct {
	listeners map[pen.ActorID][]pen.MoveListener
}

// NewDispatcher creates an empty dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[pen.ActorID][]pen.MoveListener),
	}
}

// Subscribe registers l for moves of actor. Subscribing the same listener
// twice keeps a single registration.
func (d *Dispatcher) Subscribe(actor pen.ActorID, l pen.MoveListener) {
	for _, existing := range d.listeners[actor] {
		if existing == l {
			return
		}
	}
	d.listeners[actor] = append(d.listeners[actor], l)
}

// Unsubscribe removes l from actor. Unknown listeners are ignored.
func (d *Dispatcher) Unsubscribe(actor pen.ActorID, l pen.MoveListener) {
	listeners := d.listeners[actor]
	for i, existing := range listeners {
		if existing == l {
			d.listeners[actor] = append(listeners[:i:i], listeners[i+1:]...)
			break
		}
	}
	if len(d.listeners[actor]) == 0 {
		delete(d.listeners, actor)
	}
}

// Dispatch delivers e to the listeners of e.Actor. A listener may
// unsubscribe while being notified.
func (d *Dispatcher) Dispatch(e pen.MoveEvent) {
	listeners := d.listeners[e.Actor]
	if len(listeners) == 0 {
		return
	}
	snapshot := make([]pen.MoveListener, len(listeners))
	copy(snapshot, listeners)
	for _, l := range snapshot {
		l.OnMove(e)
	}
}

// Drop removes every listener of actor.
func (d *Dispatcher) Drop(actor pen.ActorID) {
	delete(d.listeners, actor)
}

// Count returns the number of listeners subscribed to actor.
func (d *Dispatcher) Count(actor pen.ActorID) int {
	return len(d.listeners[actor])
}
