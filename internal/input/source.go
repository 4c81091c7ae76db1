// Package input turns key transitions into events and latches them into a per-controller
// pressed-key state.
package input

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Key is a raylib key code (rl.KeyW, rl.KeySpace, ...).
type Key = int32

// Kind distinguishes press from release.
type Kind int

const (
	Press Kind = iota
	Release
)

// Event is one key transition.
type Event struct {
	Key  Key
	Kind Kind
}

// Listener receives events synchronously, in dispatch order.
type Listener func(Event)

// Source delivers key events to subscribers until the returned cancel func is called.
type Source interface {
	Subscribe(l Listener) (cancel func())
}

// KeyboardSource polls raylib once per frame for a fixed set of keys and dispatches
// press/release events for every transition since the previous poll.
type KeyboardSource struct {
	keys      []Key
	listeners []subscription
	nextID    int
}

type subscription struct {
	id int
	fn Listener
}

// NewKeyboardSource watches the given keys.
func NewKeyboardSource(keys ...Key) *KeyboardSource {
	s := &KeyboardSource{}
	s.Watch(keys...)
	return s
}

// Watch adds keys to the polled set.
func (s *KeyboardSource) Watch(keys ...Key) {
	for _, k := range keys {
		if !s.watching(k) {
			s.keys = append(s.keys, k)
		}
	}
}

func (s *KeyboardSource) watching(k Key) bool {
	for _, w := range s.keys {
		if w == k {
			return true
		}
	}
	return false
}

// Subscribe implements Source.
func (s *KeyboardSource) Subscribe(l Listener) func() {
	s.nextID++
	id := s.nextID
	s.listeners = append(s.listeners, subscription{id: id, fn: l})
	return func() {
		for i, sub := range s.listeners {
			if sub.id == id {
				s.listeners = append(s.listeners[:i], s.listeners[i+1:]...)
				return
			}
		}
	}
}

// subscribers returns the number of live subscriptions.
func (s *KeyboardSource) subscribers() int {
	return len(s.listeners)
}

// Poll reads raylib's key state and dispatches transitions. Call once per frame on the
// main thread, before the frame's update.
func (s *KeyboardSource) Poll() {
	for _, k := range s.keys {
		if rl.IsKeyPressed(k) {
			s.Dispatch(Event{Key: k, Kind: Press})
		}
		if rl.IsKeyReleased(k) {
			s.Dispatch(Event{Key: k, Kind: Release})
		}
	}
}

// Dispatch delivers e to every subscriber.
func (s *KeyboardSource) Dispatch(e Event) {
	// Copy: a listener may cancel itself while handling the event.
	subs := append([]subscription(nil), s.listeners...)
	for _, sub := range subs {
		sub.fn(e)
	}
}
