package notifier

import (
	"sync"

	"github.com/fenwickcc/pavilion/internal/club"
	"github.com/fenwickcc/pavilion/internal/stats"
)

// Mock is a mock implementation of the Notifier interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu sync.Mutex

	// Spies for method calls
	SendStatsRunSummaryFunc       func(report stats.RunReport, dryRun bool) error
	SendSelectionAnnouncementFunc func(fixture club.Fixture, record club.AvailabilityRecord, players []club.Player, dryRun bool) error

	// Call records
	SendStatsRunSummaryCalls []struct {
		Report stats.RunReport
		DryRun bool
	}
	SendSelectionAnnouncementCalls []struct {
		Fixture club.Fixture
		Record  club.AvailabilityRecord
	}
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{}
}

// Reset clears all call records.
func (m *Mock) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendStatsRunSummaryCalls = nil
	m.SendSelectionAnnouncementCalls = nil
}

func (m *Mock) SendStatsRunSummary(report stats.RunReport, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendStatsRunSummaryCalls = append(m.SendStatsRunSummaryCalls, struct {
		Report stats.RunReport
		DryRun bool
	}{report, dryRun})
	if m.SendStatsRunSummaryFunc != nil {
		return m.SendStatsRunSummaryFunc(report, dryRun)
	}
	return nil
}

func (m *Mock) SendSelectionAnnouncement(fixture club.Fixture, record club.AvailabilityRecord, players []club.Player, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendSelectionAnnouncementCalls = append(m.SendSelectionAnnouncementCalls, struct {
		Fixture club.Fixture
		Record  club.AvailabilityRecord
	}{fixture, record})
	if m.SendSelectionAnnouncementFunc != nil {
		return m.SendSelectionAnnouncementFunc(fixture, record, players, dryRun)
	}
	return nil
}
