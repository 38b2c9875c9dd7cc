package metrics

import (
	"sync"
)

// Metrics tracks request counters for a serving session
type Metrics struct {
	mu sync.RWMutex

	totalRequests    int64
	notFoundRequests int64
	bytesSent        int64
}

// NewMetrics creates a new metrics instance
func NewMetrics() *Metrics {
	return &Metrics{}
}

// IncrementTotalRequests increments the total requests counter
func (m *Metrics) IncrementTotalRequests() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.totalRequests++
}

// IncrementNotFoundRequests increments the not-found responses counter
func (m *Metrics) IncrementNotFoundRequests() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.notFoundRequests++
}

// AddBytesSent adds n to the bytes sent counter
func (m *Metrics) AddBytesSent(n int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.bytesSent += n
}

// GetSnapshot returns a snapshot of all metrics
func (m *Metrics) GetSnapshot() map[string]int64 {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return map[string]int64{
		"total_requests":     m.totalRequests,
		"not_found_requests": m.notFoundRequests,
		"bytes_sent":         m.bytesSent,
	}
}
