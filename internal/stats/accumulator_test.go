package stats

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/fenwickcc/pavilion/internal/club"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A fixed reference clock. Fixtures before it are past, after it future.
var testNow = time.Unix(1_700_000_000, 0)

func pastDate(n int) int64   { return testNow.Add(-time.Duration(n) * 24 * time.Hour).Unix() }
func futureDate(n int) int64 { return testNow.Add(time.Duration(n) * 24 * time.Hour).Unix() }

func entry(playerID string, available, selected bool) club.AvailabilityEntry {
	return club.AvailabilityEntry{PlayerID: playerID, WasAvailable: available, WasSelected: selected}
}

func record(fixtureID, seasonID, teamName string, entries ...club.AvailabilityEntry) club.AvailabilityRecord {
	return club.AvailabilityRecord{FixtureID: fixtureID, SeasonID: seasonID, TeamName: teamName, Entries: entries}
}

func TestRate(t *testing.T) {
	assert.Equal(t, 0, rate(0, 0))
	assert.Equal(t, 0, rate(5, 0), "zero denominator always yields 0")
	assert.Equal(t, 33, rate(1, 3))
	assert.Equal(t, 67, rate(2, 3), "rounds half up")
	assert.Equal(t, 50, rate(1, 2))
	assert.Equal(t, 100, rate(3, 3))
}

func TestCorePlayerCountsUnansweredFixtures(t *testing.T) {
	season := SeasonData{
		Season: club.Season{ID: "s1"},
		Roster: []club.RosterAssignment{
			{PlayerID: "p1", TeamName: "1st XI", SeasonID: "s1", IsCore: true},
		},
		Fixtures: []club.Fixture{
			{ID: "f1", SeasonID: "s1", TeamName: "1st XI", Date: pastDate(3)},
			{ID: "f2", SeasonID: "s1", TeamName: "1st XI", Date: pastDate(2)},
			{ID: "f3", SeasonID: "s1", TeamName: "1st XI", Date: pastDate(1)},
		},
		// p1 answered only one of three fixtures.
		Availability: map[string]club.AvailabilityRecord{
			"f1": record("f1", "s1", "1st XI", entry("p1", true, true)),
		},
	}

	result := Compute(Input{
		Players: []club.Player{{ID: "p1", Name: "Alice", IsActive: true}},
		Seasons: []SeasonData{season},
	}, testNow)

	require.Len(t, result.PlayerStats, 1)
	require.Len(t, result.PlayerStats[0].Seasons, 1)
	require.Len(t, result.PlayerStats[0].Seasons[0].Teams, 1)

	team := result.PlayerStats[0].Seasons[0].Teams[0]
	assert.True(t, team.IsCore)
	assert.Equal(t, 3, team.FixturesConsidered, "unanswered fixtures still count for core players")
	assert.Equal(t, 1, team.TimesAvailable)
	assert.Equal(t, 1, team.GamesPlayed)
	assert.Equal(t, 33, team.AvailabilityRate)
	assert.Equal(t, 100, team.SelectionRate)
}

func TestNonCorePlayerOnlyCountsSelections(t *testing.T) {
	season := SeasonData{
		Season: club.Season{ID: "s1"},
		Fixtures: []club.Fixture{
			{ID: "f1", SeasonID: "s1", TeamName: "2nd XI", Date: pastDate(3)},
			{ID: "f2", SeasonID: "s1", TeamName: "2nd XI", Date: pastDate(2)},
			{ID: "f3", SeasonID: "s1", TeamName: "2nd XI", Date: pastDate(1)},
		},
		// Available for all three, picked for two.
		Availability: map[string]club.AvailabilityRecord{
			"f1": record("f1", "s1", "2nd XI", entry("p1", true, true)),
			"f2": record("f2", "s1", "2nd XI", entry("p1", true, false)),
			"f3": record("f3", "s1", "2nd XI", entry("p1", true, true)),
		},
	}

	result := Compute(Input{
		Players: []club.Player{{ID: "p1", Name: "Bob", IsActive: true}},
		Seasons: []SeasonData{season},
	}, testNow)

	require.Len(t, result.PlayerStats[0].Seasons, 1)
	team := result.PlayerStats[0].Seasons[0].Teams[0]
	assert.False(t, team.IsCore)
	// For a reserve, all three counters collapse to the selection count.
	assert.Equal(t, 2, team.FixturesConsidered)
	assert.Equal(t, 2, team.TimesAvailable)
	assert.Equal(t, 2, team.GamesPlayed)
	assert.Equal(t, 100, team.AvailabilityRate)
	assert.Equal(t, 100, team.SelectionRate)
}

func TestNonCorePlayerWithoutSelectionsIsDropped(t *testing.T) {
	season := SeasonData{
		Season: club.Season{ID: "s1"},
		Fixtures: []club.Fixture{
			{ID: "f1", SeasonID: "s1", TeamName: "2nd XI", Date: pastDate(1)},
		},
		// Declared available but never picked.
		Availability: map[string]club.AvailabilityRecord{
			"f1": record("f1", "s1", "2nd XI", entry("p1", true, false)),
		},
	}

	result := Compute(Input{
		Players: []club.Player{{ID: "p1", Name: "Bob", IsActive: true}},
		Seasons: []SeasonData{season},
	}, testNow)

	require.Len(t, result.PlayerStats, 1)
	assert.Empty(t, result.PlayerStats[0].Seasons, "a reserve with zero selections has no entry for the team or season")
	assert.Equal(t, 0, result.PlayerStats[0].Career.TotalSeasons)
	assert.Empty(t, result.TeamSummaries)
	assert.Empty(t, result.SeasonSummaries)
}

func TestFutureFixturesAreExcluded(t *testing.T) {
	season := SeasonData{
		Season: club.Season{ID: "s1"},
		Roster: []club.RosterAssignment{
			{PlayerID: "p1", TeamName: "1st XI", SeasonID: "s1", IsCore: true},
		},
		Fixtures: []club.Fixture{
			{ID: "f1", SeasonID: "s1", TeamName: "1st XI", Date: pastDate(1)},
			{ID: "f2", SeasonID: "s1", TeamName: "1st XI", Date: futureDate(1)},
		},
		// An answered future fixture must not leak into any counter.
		Availability: map[string]club.AvailabilityRecord{
			"f1": record("f1", "s1", "1st XI", entry("p1", true, true)),
			"f2": record("f2", "s1", "1st XI", entry("p1", true, true)),
		},
	}

	result := Compute(Input{
		Players: []club.Player{{ID: "p1", Name: "Alice", IsActive: true}},
		Seasons: []SeasonData{season},
	}, testNow)

	team := result.PlayerStats[0].Seasons[0].Teams[0]
	assert.Equal(t, 1, team.FixturesConsidered)
	assert.Equal(t, 1, team.TimesAvailable)
	assert.Equal(t, 1, team.GamesPlayed)
}

// A player who is core for one team and turns out as a reserve for a
// second team in the same season.
func TestCoreAndReserveTeamsInOneSeason(t *testing.T) {
	season := SeasonData{
		Season: club.Season{ID: "s1"},
		Roster: []club.RosterAssignment{
			{PlayerID: "p1", TeamName: "1st XI", SeasonID: "s1", IsCore: true},
		},
		Fixtures: []club.Fixture{
			{ID: "a1", SeasonID: "s1", TeamName: "1st XI", Date: pastDate(5)},
			{ID: "a2", SeasonID: "s1", TeamName: "1st XI", Date: pastDate(4)},
			{ID: "a3", SeasonID: "s1", TeamName: "1st XI", Date: pastDate(3)},
			{ID: "b1", SeasonID: "s1", TeamName: "2nd XI", Date: pastDate(2)},
			{ID: "b2", SeasonID: "s1", TeamName: "2nd XI", Date: pastDate(1)},
			{ID: "b3", SeasonID: "s1", TeamName: "2nd XI", Date: pastDate(6)},
		},
		Availability: map[string]club.AvailabilityRecord{
			"a1": record("a1", "s1", "1st XI", entry("p1", true, true)),
			"a2": record("a2", "s1", "1st XI", entry("p1", true, true)),
			"a3": record("a3", "s1", "1st XI", entry("p1", true, false)),
			"b1": record("b1", "s1", "2nd XI", entry("p1", true, true)),
			"b2": record("b2", "s1", "2nd XI", entry("p1", true, false)),
			// b3 has no record at all; for a reserve it must not count.
		},
	}

	result := Compute(Input{
		Players: []club.Player{{ID: "p1", Name: "Alice", IsActive: true}},
		Seasons: []SeasonData{season},
	}, testNow)

	require.Len(t, result.PlayerStats[0].Seasons, 1)
	seasonStats := result.PlayerStats[0].Seasons[0]
	require.Len(t, seasonStats.Teams, 2)

	first := seasonStats.Teams[0]
	assert.Equal(t, "1st XI", first.TeamName)
	assert.Equal(t, Totals{FixturesConsidered: 3, TimesAvailable: 3, GamesPlayed: 2, AvailabilityRate: 100, SelectionRate: 67}, first.Totals)

	second := seasonStats.Teams[1]
	assert.Equal(t, "2nd XI", second.TeamName)
	assert.False(t, second.IsCore)
	assert.Equal(t, Totals{FixturesConsidered: 1, TimesAvailable: 1, GamesPlayed: 1, AvailabilityRate: 100, SelectionRate: 100}, second.Totals)

	// Club-wide totals sum the two teams, with rates recomputed.
	assert.Equal(t, Totals{FixturesConsidered: 4, TimesAvailable: 4, GamesPlayed: 3, AvailabilityRate: 100, SelectionRate: 75}, seasonStats.Club)
}

func TestCareerSumsTotalsAcrossSeasons(t *testing.T) {
	s1 := SeasonData{
		Season: club.Season{ID: "s1"},
		Roster: []club.RosterAssignment{
			{PlayerID: "p1", TeamName: "1st XI", SeasonID: "s1", IsCore: true},
		},
		Fixtures: []club.Fixture{
			{ID: "f1", SeasonID: "s1", TeamName: "1st XI", Date: pastDate(10)},
			{ID: "f2", SeasonID: "s1", TeamName: "1st XI", Date: pastDate(9)},
		},
		Availability: map[string]club.AvailabilityRecord{
			"f1": record("f1", "s1", "1st XI", entry("p1", true, true)),
		},
	}
	s2 := SeasonData{
		Season: club.Season{ID: "s2"},
		Roster: []club.RosterAssignment{
			{PlayerID: "p1", TeamName: "1st XI", SeasonID: "s2", IsCore: true},
		},
		Fixtures: []club.Fixture{
			{ID: "g1", SeasonID: "s2", TeamName: "1st XI", Date: pastDate(5)},
			{ID: "g2", SeasonID: "s2", TeamName: "1st XI", Date: pastDate(4)},
			{ID: "g3", SeasonID: "s2", TeamName: "1st XI", Date: pastDate(3)},
		},
		Availability: map[string]club.AvailabilityRecord{
			"g1": record("g1", "s2", "1st XI", entry("p1", true, true)),
			"g2": record("g2", "s2", "1st XI", entry("p1", true, true)),
			"g3": record("g3", "s2", "1st XI", entry("p1", true, false)),
		},
	}

	result := Compute(Input{
		Players: []club.Player{{ID: "p1", Name: "Alice", IsActive: true}},
		Seasons: []SeasonData{s1, s2},
	}, testNow)

	career := result.PlayerStats[0].Career
	assert.Equal(t, 2, career.TotalSeasons)
	assert.Equal(t, 5, career.FixturesConsidered)
	assert.Equal(t, 4, career.TimesAvailable)
	assert.Equal(t, 3, career.GamesPlayed)
	// Season rates are 50 and 100; the career rate comes from the summed
	// totals (4/5 = 80), not from averaging the two.
	assert.Equal(t, 80, career.AvailabilityRate)
	assert.Equal(t, 75, career.SelectionRate)
}

func TestSeasonWithoutParticipationIsAbsent(t *testing.T) {
	active := SeasonData{
		Season: club.Season{ID: "s1"},
		Fixtures: []club.Fixture{
			{ID: "f1", SeasonID: "s1", TeamName: "1st XI", Date: pastDate(2)},
		},
		Availability: map[string]club.AvailabilityRecord{
			"f1": record("f1", "s1", "1st XI", entry("q1", true, true)),
		},
	}
	// q1 never recorded anything in s2.
	idle := SeasonData{
		Season: club.Season{ID: "s2"},
		Fixtures: []club.Fixture{
			{ID: "g1", SeasonID: "s2", TeamName: "1st XI", Date: pastDate(1)},
		},
		Availability: map[string]club.AvailabilityRecord{
			"g1": record("g1", "s2", "1st XI", entry("other", true, true)),
		},
	}

	result := Compute(Input{
		Players: []club.Player{{ID: "q1", Name: "Quinn", IsActive: true}},
		Seasons: []SeasonData{active, idle},
	}, testNow)

	ps := result.PlayerStats[0]
	require.Len(t, ps.Seasons, 1)
	assert.Equal(t, "s1", ps.Seasons[0].SeasonID)
	assert.Equal(t, 1, ps.Career.TotalSeasons)
	assert.Equal(t, ps.Seasons[0].Club.FixturesConsidered, ps.Career.FixturesConsidered)
	assert.Equal(t, ps.Seasons[0].Club.GamesPlayed, ps.Career.GamesPlayed)
}

func TestComputeIsDeterministic(t *testing.T) {
	input := Input{
		Players: []club.Player{
			{ID: "p1", Name: "Alice", IsActive: true},
			{ID: "p2", Name: "Bob", IsActive: true},
		},
		Seasons: []SeasonData{{
			Season: club.Season{ID: "s1"},
			Roster: []club.RosterAssignment{
				{PlayerID: "p1", TeamName: "1st XI", SeasonID: "s1", IsCore: true},
			},
			Fixtures: []club.Fixture{
				{ID: "f1", SeasonID: "s1", TeamName: "1st XI", Date: pastDate(2)},
				{ID: "f2", SeasonID: "s1", TeamName: "1st XI", Date: pastDate(1)},
			},
			Availability: map[string]club.AvailabilityRecord{
				"f1": record("f1", "s1", "1st XI", entry("p1", true, true), entry("p2", true, true)),
				"f2": record("f2", "s1", "1st XI", entry("p1", true, false)),
			},
		}},
	}

	first := Compute(input, testNow)
	second := Compute(input, testNow)

	// Reruns over unchanged inputs must serialize byte-identically; the
	// derived documents carry no timestamps and all slices are sorted.
	firstJSON, err := json.Marshal(first)
	require.NoError(t, err)
	secondJSON, err := json.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, firstJSON, secondJSON)
}
