package slack

import (
	"fmt"
	"strings"
	"time"

	"github.com/fenwickcc/pavilion/internal/club"
	"github.com/fenwickcc/pavilion/internal/stats"
	"github.com/slack-go/slack"
)

// formatStatsRunSummary creates the Slack message for a finished
// statistics run using Block Kit.
func (s *Notifier) formatStatsRunSummary(report stats.RunReport) slack.Message {
	blocks := make([]slack.Block, 0)

	headerText := slack.NewTextBlockObject("plain_text", "📊 Club statistics updated", true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	detailsText := fmt.Sprintf("Players updated: %d\nSeasons updated: %d", report.PlayersUpdated, report.SeasonsUpdated)
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", detailsText, true, false), nil, nil))

	if report.Warning != "" {
		warningText := slack.NewTextBlockObject("plain_text", fmt.Sprintf("⚠️ %s", report.Warning), true, false)
		blocks = append(blocks, slack.NewContextBlock("", warningText))
	}

	return slack.NewBlockMessage(blocks...)
}

// formatSelectionAnnouncement creates the selected-XI message for a
// fixture.
func (s *Notifier) formatSelectionAnnouncement(fixture club.Fixture, record club.AvailabilityRecord, players []club.Player) slack.Message {
	blocks := make([]slack.Block, 0)

	headerText := slack.NewTextBlockObject("plain_text", fmt.Sprintf("🏏 %s squad announced", fixture.TeamName), true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	detailsText := fmt.Sprintf("vs %s\n%s", fixture.Opponent, time.Unix(fixture.Date, 0).Format("Monday 02 Jan, 15:04"))
	if fixture.Venue != "" {
		detailsText += "\n" + fixture.Venue
	}
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", detailsText, true, false), nil, nil))

	nameByID := make(map[string]string, len(players))
	for _, p := range players {
		nameByID[p.ID] = p.Name
	}

	var selected []string
	for _, entry := range record.Entries {
		if !entry.WasSelected {
			continue
		}
		name := nameByID[entry.PlayerID]
		if name == "" {
			name = entry.PlayerID
		}
		selected = append(selected, fmt.Sprintf("• %s", name))
	}
	if len(selected) > 0 {
		squadText := "Selected:\n" + strings.Join(selected, "\n")
		blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", squadText, true, false), nil, nil))
	}

	return slack.NewBlockMessage(blocks...)
}
