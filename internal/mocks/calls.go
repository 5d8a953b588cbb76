package mocks

import "sync"

// callCounter records how often each mocked method ran. Safe for concurrent use.
type callCounter struct {
	mu    sync.Mutex
	calls map[string]int
}

func (c *callCounter) record(method string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.calls == nil {
		c.calls = make(map[string]int)
	}
	c.calls[method]++
}

// Calls returns how many times method was invoked.
func (c *callCounter) Calls(method string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls[method]
}

// ResetCalls clears all counters.
func (c *callCounter) ResetCalls() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls = nil
}
