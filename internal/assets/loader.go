// Package assets loads scene assets by name. Loads are requested at any time and
// finished on the render thread by Poll, since model decoding needs the GL context.
package assets

import (
	"fmt"
	"path/filepath"

	"walkthrough/internal/logger"
	"walkthrough/internal/scenegraph"
)

// Decoder turns a file into a scene subtree and releases it again.
type Decoder interface {
	Decode(path string) (*scenegraph.Node, error)
	Release(root *scenegraph.Node)
}

type entry struct {
	root    *scenegraph.Node
	err     error
	decoded bool
	waiters []func(*scenegraph.Node)
}

// Loader caches decoded assets by name.
type Loader struct {
	dir     string
	dec     Decoder
	log     *logger.Logger
	entries map[string]*entry
	queue   []string
}

// NewLoader returns a loader reading names relative to dir.
func NewLoader(dir string, dec Decoder, log *logger.Logger) *Loader {
	if log == nil {
		log = logger.InMemory()
	}
	return &Loader{dir: dir, dec: dec, log: log, entries: make(map[string]*entry)}
}

func (l *Loader) entry(name string) *entry {
	e, ok := l.entries[name]
	if !ok {
		e = &entry{}
		l.entries[name] = e
		l.queue = append(l.queue, name)
	}
	return e
}

// Preload queues name for decoding without registering a callback.
func (l *Loader) Preload(name string) {
	l.entry(name)
}

// Load queues name and calls onLoad with its root from a later Poll. If the asset
// fails to decode onLoad is never called.
func (l *Loader) Load(name string, onLoad func(*scenegraph.Node)) {
	e := l.entry(name)
	if onLoad != nil && e.err == nil {
		e.waiters = append(e.waiters, onLoad)
	}
}

// Pending reports how many queued assets have not been decoded yet.
func (l *Loader) Pending() int {
	return len(l.queue)
}

// Poll decodes up to budget queued assets (all of them when budget <= 0), then fires
// the callbacks of every decoded asset. Call from the render thread.
func (l *Loader) Poll(budget int) {
	n := len(l.queue)
	if budget > 0 && budget < n {
		n = budget
	}
	batch := l.queue[:n]
	l.queue = append([]string(nil), l.queue[n:]...)
	for _, name := range batch {
		l.decode(name)
	}

	for _, e := range l.entries {
		if !e.decoded || len(e.waiters) == 0 {
			continue
		}
		waiters := e.waiters
		e.waiters = nil
		for _, fn := range waiters {
			fn(e.root)
		}
	}
}

func (l *Loader) decode(name string) {
	e := l.entries[name]
	if e == nil || e.decoded || e.err != nil {
		return
	}
	path := filepath.Join(l.dir, name)
	root, err := l.dec.Decode(path)
	if err != nil {
		e.err = fmt.Errorf("load asset %s: %w", name, err)
		e.waiters = nil
		l.log.Warn("asset not loaded", "name", name, "err", err)
		return
	}
	e.root = root
	e.decoded = true
	l.log.Info("asset loaded", "name", name, "nodes", countNodes(root))
}

// get returns a decoded asset root.
func (l *Loader) get(name string) (*scenegraph.Node, bool) {
	e, ok := l.entries[name]
	if !ok || !e.decoded {
		return nil, false
	}
	return e.root, true
}

// Err returns the decode error for name, if any.
func (l *Loader) Err(name string) error {
	if e, ok := l.entries[name]; ok {
		return e.err
	}
	return nil
}

// Unload releases one asset. A later Load decodes it again.
func (l *Loader) Unload(name string) {
	e, ok := l.entries[name]
	if !ok {
		return
	}
	if e.decoded {
		l.dec.Release(e.root)
	}
	delete(l.entries, name)
	for i, q := range l.queue {
		if q == name {
			l.queue = append(l.queue[:i], l.queue[i+1:]...)
			break
		}
	}
}

// Close releases every decoded asset.
func (l *Loader) Close() {
	for name := range l.entries {
		l.Unload(name)
	}
}

func countNodes(root *scenegraph.Node) int {
	n := 0
	for range root.All() {
		n++
	}
	return n
}
