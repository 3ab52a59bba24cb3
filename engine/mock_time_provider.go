package engine

import (
	"sync"
	"time"
)

// MockTimeProvider is a manually driven clock for frame-by-frame tests
type MockTimeProvider struct {
	mu  sync.Mutex
	now time.Time
}

// NewMockTimeProvider starts the clock at start
func NewMockTimeProvider(start time.Time) *MockTimeProvider {
	return &MockTimeProvider{now: start}
}

func (m *MockTimeProvider) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// Advance moves the clock forward by d
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.mu.Lock()
	m.now = m.now.Add(d)
	m.mu.Unlock()
}

// Step moves the clock forward by a frame delta in seconds, matching Model.Advance
func (m *MockTimeProvider) Step(dt float64) {
	m.Advance(time.Duration(dt * float64(time.Second)))
}
