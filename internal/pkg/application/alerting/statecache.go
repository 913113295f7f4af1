package alerting

import (
	"sync"
	"time"

	"github.com/MRUBIO121/PDUsDEFINITIVO2-sub002/pkg/types"
)

// StateCache holds the latest evaluation outcome per PDU. Readings are
// per-PDU records, so a rack fed by several PDUs keeps one entry each;
// grouping collapses them back into logical racks. Warning reasons only
// exist here; they are never persisted. The cache feeds grouping and view
// filtering.
type StateCache struct {
	mu sync.RWMutex
	m  map[string]types.RackState
}

func NewStateCache() *StateCache {
	return &StateCache{m: map[string]types.RackState{}}
}

func (c *StateCache) Set(pduID string, state types.RackState) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.m[pduID] = state
}

func (c *StateCache) Get(pduID string) (types.RackState, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	state, ok := c.m[pduID]
	return state, ok
}

// GetByRack returns the most recently updated reading for a rack,
// regardless of which of its PDUs delivered it.
func (c *StateCache) GetByRack(rackID string) (types.RackState, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var newest types.RackState
	found := false

	for _, state := range c.m {
		if state.Reading.RackID != rackID {
			continue
		}
		if !found || state.UpdatedAt.After(newest.UpdatedAt) {
			newest = state
			found = true
		}
	}

	return newest, found
}

func (c *StateCache) List() []types.RackState {
	c.mu.RLock()
	defer c.mu.RUnlock()

	states := make([]types.RackState, 0, len(c.m))
	for _, state := range c.m {
		states = append(states, state)
	}
	return states
}

// Evict drops racks not updated since the cutoff, so racks that left the
// reading stream eventually disappear from views.
func (c *StateCache) Evict(cutoff time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for pduID, state := range c.m {
		if state.UpdatedAt.Before(cutoff) {
			delete(c.m, pduID)
		}
	}
}
