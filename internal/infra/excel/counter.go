package excel

import "sync"

// operationCounter counts full syncs and signals every threshold-th one.
type operationCounter struct {
	mu        sync.Mutex
	count     int
	threshold int
}

func newOperationCounter(threshold int) *operationCounter {
	return &operationCounter{threshold: max(threshold, 1)}
}

// increment bumps the counter and reports whether the threshold was reached,
// in which case the counter starts over.
func (c *operationCounter) increment() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.count++
	if c.count >= c.threshold {
		c.count = 0

		return true
	}

	return false
}

func (c *operationCounter) value() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.count
}
