package metrics

import "sync"

// Mock is a mock implementation of the Metrics interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu sync.Mutex

	StatsRunsCount          int
	StatsWriteFailuresCount int
	StatsRunDurations       []float64
	SlackNotifSentCount     int
	SlackNotifFailedCount   int
	StartupTime             float64
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) IncStatsRuns() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.StatsRunsCount++
}

func (m *Mock) IncStatsWriteFailures() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.StatsWriteFailuresCount++
}

func (m *Mock) ObserveStatsRunDuration(seconds float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.StatsRunDurations = append(m.StatsRunDurations, seconds)
}

func (m *Mock) IncSlackNotifSent() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SlackNotifSentCount++
}

func (m *Mock) IncSlackNotifFailed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SlackNotifFailedCount++
}

func (m *Mock) SetStartupTime(seconds float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.StartupTime = seconds
}
