package input

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type fakeOverlay struct {
	shown   bool
	text    string
	removed bool
	sets    int
}

func (o *fakeOverlay) Show()            { o.shown = true }
func (o *fakeOverlay) Hide()            { o.shown = false }
func (o *fakeOverlay) SetText(s string) { o.text = s; o.sets++ }
func (o *fakeOverlay) Remove()          { o.removed = true; o.shown = false }

func TestLatch_TracksPressAndRelease(t *testing.T) {
	src := NewKeyboardSource()
	l := NewLatch(src, NewState(), nil, rl.KeyZ)
	defer l.Close()

	src.Dispatch(Event{Key: rl.KeyW, Kind: Press})
	src.Dispatch(Event{Key: rl.KeyD, Kind: Press})
	if !l.State().Down(rl.KeyW) || !l.State().Down(rl.KeyD) {
		t.Fatalf("W and D should be held")
	}

	src.Dispatch(Event{Key: rl.KeyW, Kind: Release})
	if l.State().Down(rl.KeyW) {
		t.Fatalf("W should be released")
	}
	if !l.State().Down(rl.KeyD) {
		t.Fatalf("D should still be held")
	}
}

func TestLatch_OverlayFollowsToggleKey(t *testing.T) {
	src := NewKeyboardSource()
	o := &fakeOverlay{shown: true}
	l := NewLatch(src, NewState(), o, rl.KeyZ)
	defer l.Close()

	if o.shown {
		t.Fatalf("overlay should start hidden")
	}
	l.Refresh(rl.NewVector3(1, 2, 3))
	if o.sets != 0 {
		t.Fatalf("hidden overlay should not be updated")
	}

	src.Dispatch(Event{Key: rl.KeyZ, Kind: Press})
	if !o.shown || !l.visible {
		t.Fatalf("overlay should be shown while Z is held")
	}
	l.Refresh(rl.NewVector3(147, -40, 73.456))
	if o.text != "X: 147.00 Y: -40.00 Z: 73.46" {
		t.Fatalf("overlay text = %q", o.text)
	}

	src.Dispatch(Event{Key: rl.KeyZ, Kind: Release})
	if o.shown {
		t.Fatalf("overlay should hide on release")
	}
}

func TestLatch_MuteSuppressesToggleButKeepsState(t *testing.T) {
	src := NewKeyboardSource()
	o := &fakeOverlay{}
	l := NewLatch(src, NewState(), o, rl.KeyZ)
	defer l.Close()

	src.Dispatch(Event{Key: rl.KeyZ, Kind: Press})
	l.Mute(true)
	if o.shown || l.visible {
		t.Fatal("muting should hide a shown overlay")
	}

	src.Dispatch(Event{Key: rl.KeyZ, Kind: Release})
	src.Dispatch(Event{Key: rl.KeyZ, Kind: Press})
	if o.shown {
		t.Fatal("muted toggle key showed the overlay")
	}
	if !l.State().Down(rl.KeyZ) {
		t.Fatal("muted latch dropped the key state")
	}

	src.Dispatch(Event{Key: rl.KeyZ, Kind: Release})
	l.Mute(false)
	src.Dispatch(Event{Key: rl.KeyZ, Kind: Press})
	if !o.shown {
		t.Fatal("unmuted toggle key did not show the overlay")
	}
}

func TestLatch_CloseDetachesEverything(t *testing.T) {
	src := NewKeyboardSource()
	o := &fakeOverlay{}
	l := NewLatch(src, NewState(), o, rl.KeyZ)

	if src.subscribers() != 1 {
		t.Fatalf("listeners = %d, want 1", src.subscribers())
	}
	l.Close()
	l.Close()

	if src.subscribers() != 0 {
		t.Fatalf("listeners = %d after Close, want 0", src.subscribers())
	}
	if !o.removed {
		t.Fatalf("overlay not removed")
	}
	src.Dispatch(Event{Key: rl.KeyW, Kind: Press})
	if l.State().Down(rl.KeyW) {
		t.Fatalf("closed latch still receives events")
	}
}

func TestLatch_RemountDoesNotLeakListeners(t *testing.T) {
	src := NewKeyboardSource()
	for i := 0; i < 3; i++ {
		l := NewLatch(src, NewState(), &fakeOverlay{}, rl.KeyZ)
		l.Close()
	}
	if src.subscribers() != 0 {
		t.Fatalf("listeners = %d after remounts, want 0", src.subscribers())
	}
}

func TestKeyboardSource_CancelDuringDispatch(t *testing.T) {
	src := NewKeyboardSource()
	var calls int
	var cancel func()
	cancel = src.Subscribe(func(Event) {
		calls++
		cancel()
	})
	other := 0
	src.Subscribe(func(Event) { other++ })

	src.Dispatch(Event{Key: rl.KeyW, Kind: Press})
	src.Dispatch(Event{Key: rl.KeyW, Kind: Release})

	if calls != 1 || other != 2 {
		t.Fatalf("calls=%d other=%d, want 1 and 2", calls, other)
	}
}

func TestKeyboardSource_WatchDeduplicates(t *testing.T) {
	src := NewKeyboardSource(rl.KeyW)
	src.Watch(DefaultBindings().Keys()...)
	if len(src.keys) != 7 {
		t.Fatalf("watched keys = %d, want 7", len(src.keys))
	}
}

func TestNewKeyboardSource_DeduplicatesKeys(t *testing.T) {
	src := NewKeyboardSource(rl.KeyW, rl.KeyW, rl.KeyA)
	if len(src.keys) != 2 {
		t.Fatalf("watched keys = %d, want 2", len(src.keys))
	}
}

func TestBindings_Intent(t *testing.T) {
	b := DefaultBindings()
	s := NewState()
	s.set(rl.KeyW, true)
	s.set(rl.KeyLeftShift, true)

	got := b.Intent(s)
	want := Intent{Forward: true, Sprint: true}
	if got != want {
		t.Fatalf("Intent = %+v, want %+v", got, want)
	}
}
