package layout

import (
	"fmt"
	"sync"
	"time"
)

// IDGenerator issues section ids of the form sec_<unix millis>_<n>. n grows on
// every call, so two ids taken in the same millisecond still differ.
type IDGenerator struct {
	mu      sync.Mutex
	now     func() time.Time
	counter uint64
}

// NewIDGenerator uses now as the clock; nil means time.Now.
func NewIDGenerator(now func() time.Time) *IDGenerator {
	if now == nil {
		now = time.Now
	}
	return &IDGenerator{now: now}
}

func (g *IDGenerator) Next() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.counter++
	return fmt.Sprintf("sec_%d_%d", g.now().UnixMilli(), g.counter)
}
