package metrics

// Metrics defines the interface for collecting application metrics.
// This decouples the application from the specific metrics implementation (e.g., Prometheus).
type Metrics interface {
	IncStatsRuns()
	IncStatsWriteFailures()
	ObserveStatsRunDuration(seconds float64)
	IncSlackNotifSent()
	IncSlackNotifFailed()
	SetStartupTime(seconds float64)
}
