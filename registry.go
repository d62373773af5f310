// SPDX-License-Identifier: EPL-2.0

package mp3stream

import (
	"sync"

	"github.com/ik5/mp3stream/frame"
)

// EngineFactory constructs a fresh engine instance. Engines carry
// per-session decoding state, so every session needs its own.
type EngineFactory func() frame.Engine

// Registry for engine factories by name (e.g., "probe", "minimp3").
type Registry struct {
	engines map[string]EngineFactory

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		engines: make(map[string]EngineFactory),
		mtx:     &sync.Mutex{},
	}
}

func (r *Registry) Register(name string, factory EngineFactory) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.engines[name] = factory
}

func (r *Registry) Get(name string) (EngineFactory, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	f, ok := r.engines[name]
	return f, ok
}
