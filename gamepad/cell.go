package gamepad

import "sync"

// Cell holds the latest State. It has a single writer (the Sampler) and any number of readers.
type Cell struct {
	mu          sync.RWMutex
	state       State
	subscribers []func(State)
}

func NewCell() *Cell {
	return new(Cell)
}

func (c *Cell) Load() State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// Subscribe registers a callback that receives every published State, on the publishing goroutine.
func (c *Cell) Subscribe(callback func(State)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.subscribers = append(c.subscribers, callback)
}

func (c *Cell) Publish(state State) {
	c.mu.Lock()
	c.state = state
	subs := c.subscribers
	c.mu.Unlock()
	for _, sub := range subs {
		sub(state)
	}
}
