package notifier

import (
	"github.com/fenwickcc/pavilion/internal/club"
	"github.com/fenwickcc/pavilion/internal/stats"
)

// Notifier defines a high-level interface for sending notifications about business events.
// This decouples the rest of the application from the specific notification provider (e.g., Slack).
type Notifier interface {
	// After a statistics recalculation.
	SendStatsRunSummary(report stats.RunReport, dryRun bool) error
	// When a fixture's selected XI is announced to the club channel.
	SendSelectionAnnouncement(fixture club.Fixture, record club.AvailabilityRecord, players []club.Player, dryRun bool) error
}
