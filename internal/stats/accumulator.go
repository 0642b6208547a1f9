package stats

import (
	"math"
	"sort"
	"time"

	"github.com/fenwickcc/pavilion/internal/club"
)

// rate returns a round-half-up integer percentage, 0 when the
// denominator is 0.
func rate(numerator, denominator int) int {
	if denominator == 0 {
		return 0
	}
	return int(math.Round(float64(numerator) * 100 / float64(denominator)))
}

// Compute is the pure aggregation function: given the loaded input and a
// "now" reference, it produces every derived statistics document of the
// run. It touches no storage, which keeps the accumulation rules
// unit-testable on their own.
func Compute(input Input, now time.Time) Result {
	var result Result

	for _, player := range input.Players {
		result.PlayerStats = append(result.PlayerStats, computePlayer(player, input.Seasons, now))
	}
	sort.Slice(result.PlayerStats, func(i, j int) bool {
		return result.PlayerStats[i].PlayerID < result.PlayerStats[j].PlayerID
	})

	result.TeamSummaries, result.SeasonSummaries = buildSummaries(result.PlayerStats)
	return result
}

// computePlayer walks every season and accumulates the player's team,
// club-wide and career totals.
func computePlayer(player club.Player, seasons []SeasonData, now time.Time) PlayerStats {
	ps := PlayerStats{
		PlayerID:   player.ID,
		PlayerName: player.Name,
	}

	for _, season := range seasons {
		seasonStats, ok := computePlayerSeason(player.ID, season, now)
		if !ok {
			// No availability record anywhere this season: the season is
			// skipped outright, no zero-filled entry.
			continue
		}
		ps.Seasons = append(ps.Seasons, seasonStats)
	}
	sort.Slice(ps.Seasons, func(i, j int) bool {
		return ps.Seasons[i].SeasonID < ps.Seasons[j].SeasonID
	})

	for _, season := range ps.Seasons {
		ps.Career.FixturesConsidered += season.Club.FixturesConsidered
		ps.Career.TimesAvailable += season.Club.TimesAvailable
		ps.Career.GamesPlayed += season.Club.GamesPlayed
	}
	ps.Career.TotalSeasons = len(ps.Seasons)
	// Career rates come from the summed totals, never from averaging the
	// per-season rates.
	ps.Career.AvailabilityRate = rate(ps.Career.TimesAvailable, ps.Career.FixturesConsidered)
	ps.Career.SelectionRate = rate(ps.Career.GamesPlayed, ps.Career.TimesAvailable)

	return ps
}

// computePlayerSeason builds one player's SeasonStats. The second return
// is false when the player has no availability entry on any past fixture
// of the season.
func computePlayerSeason(playerID string, season SeasonData, now time.Time) (SeasonStats, bool) {
	nowUnix := now.Unix()

	// Core lookup for this player: team name -> isCore.
	coreTeams := make(map[string]bool)
	for _, assignment := range season.Roster {
		if assignment.PlayerID == playerID && assignment.IsCore {
			coreTeams[assignment.TeamName] = true
		}
	}

	// Past fixtures per team. Future fixtures are excluded from every
	// numerator and denominator regardless of availability state.
	pastByTeam := make(map[string][]club.Fixture)
	for _, fixture := range season.Fixtures {
		if fixture.Date < nowUnix {
			pastByTeam[fixture.TeamName] = append(pastByTeam[fixture.TeamName], fixture)
		}
	}

	// Teams the player touched: any entry of theirs on a past fixture's
	// availability record.
	touched := make(map[string]bool)
	for team, fixtures := range pastByTeam {
		for _, fixture := range fixtures {
			if _, ok := entryFor(season.Availability, fixture.ID, playerID); ok {
				touched[team] = true
				break
			}
		}
	}

	teamNames := make([]string, 0, len(touched))
	for team := range touched {
		teamNames = append(teamNames, team)
	}
	sort.Strings(teamNames)

	stats := SeasonStats{SeasonID: season.Season.ID}
	for _, team := range teamNames {
		teamStats, ok := accumulateTeam(playerID, team, coreTeams[team], pastByTeam[team], season.Availability)
		if !ok {
			continue
		}
		stats.Teams = append(stats.Teams, teamStats)
		// Club-wide stats sum the per-team values. A fixture belongs to
		// exactly one team, so the sums never double-count.
		stats.Club.FixturesConsidered += teamStats.FixturesConsidered
		stats.Club.TimesAvailable += teamStats.TimesAvailable
		stats.Club.GamesPlayed += teamStats.GamesPlayed
	}
	if len(stats.Teams) == 0 {
		return SeasonStats{}, false
	}
	stats.Club.AvailabilityRate = rate(stats.Club.TimesAvailable, stats.Club.FixturesConsidered)
	stats.Club.SelectionRate = rate(stats.Club.GamesPlayed, stats.Club.TimesAvailable)
	return stats, true
}

// accumulateTeam applies the core/non-core denominator rules for one
// player on one team.
func accumulateTeam(playerID, team string, isCore bool, pastFixtures []club.Fixture, availability map[string]club.AvailabilityRecord) (TeamStats, bool) {
	teamStats := TeamStats{TeamName: team, IsCore: isCore}

	available := 0
	selected := 0
	for _, fixture := range pastFixtures {
		entry, ok := entryFor(availability, fixture.ID, playerID)
		if !ok {
			// No record (or no entry) for this fixture: for a core player
			// it still counts in the denominator, as unavailable.
			continue
		}
		if entry.WasAvailable {
			available++
		}
		if entry.WasSelected {
			selected++
		}
	}

	if isCore {
		// Every past fixture of the team counts, answered or not.
		teamStats.FixturesConsidered = len(pastFixtures)
		teamStats.TimesAvailable = available
		teamStats.GamesPlayed = selected
	} else {
		// Only fixtures the player was actually picked for count; being
		// selected is proof of availability.
		if selected == 0 {
			return TeamStats{}, false
		}
		teamStats.FixturesConsidered = selected
		teamStats.TimesAvailable = selected
		teamStats.GamesPlayed = selected
	}

	teamStats.AvailabilityRate = rate(teamStats.TimesAvailable, teamStats.FixturesConsidered)
	teamStats.SelectionRate = rate(teamStats.GamesPlayed, teamStats.TimesAvailable)
	return teamStats, true
}

// entryFor finds a player's entry on a fixture's availability record.
// Absence of the record or of the entry are both normal.
func entryFor(availability map[string]club.AvailabilityRecord, fixtureID, playerID string) (club.AvailabilityEntry, bool) {
	record, ok := availability[fixtureID]
	if !ok {
		return club.AvailabilityEntry{}, false
	}
	for _, entry := range record.Entries {
		if entry.PlayerID == playerID {
			return entry, true
		}
	}
	return club.AvailabilityEntry{}, false
}
