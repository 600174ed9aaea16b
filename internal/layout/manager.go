package layout

import (
	"context"
	"sync"
)

// Manager hands out one Engine per widget instance and serializes access to
// it: at most one operation runs against an instance at a time, which is
// the concurrency contract the engine itself does not provide.
type Manager struct {
	store Gateway

	mu      sync.Mutex
	engines map[string]*instanceEngine
}

type instanceEngine struct {
	mu     sync.Mutex
	engine *Engine
	loaded bool
}

func NewManager(store Gateway) *Manager {
	return &Manager{
		store:   store,
		engines: make(map[string]*instanceEngine),
	}
}

// Do runs fn against the instance's engine while holding that instance's
// lock. The engine is loaded lazily on first touch; a load failure is
// returned without invoking fn and the next call retries the load.
func (m *Manager) Do(ctx context.Context, instanceID string, fn func(*Engine) error) error {
	ie := m.instance(instanceID)

	ie.mu.Lock()
	defer ie.mu.Unlock()

	if !ie.loaded {
		if err := ie.engine.Load(ctx); err != nil {
			return err
		}
		ie.loaded = true
	}
	return fn(ie.engine)
}

func (m *Manager) instance(instanceID string) *instanceEngine {
	m.mu.Lock()
	defer m.mu.Unlock()

	ie, ok := m.engines[instanceID]
	if !ok {
		ie = &instanceEngine{engine: NewEngine(m.store, instanceID)}
		m.engines[instanceID] = ie
	}
	return ie
}
