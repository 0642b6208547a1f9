package stats

import "github.com/fenwickcc/pavilion/internal/club"

// Totals is the numerator/denominator bundle every statistics level
// shares. AvailabilityRate is timesAvailable over fixturesConsidered,
// SelectionRate is gamesPlayed over timesAvailable, both as round-half-up
// integer percentages and 0 when their denominator is 0.
type Totals struct {
	FixturesConsidered int `json:"fixturesConsidered"`
	TimesAvailable     int `json:"timesAvailable"`
	GamesPlayed        int `json:"gamesPlayed"`
	AvailabilityRate   int `json:"availabilityRate"`
	SelectionRate      int `json:"selectionRate"`
}

// TeamStats is one player's statistics for one team in one season.
type TeamStats struct {
	TeamName string `json:"teamName"`
	IsCore   bool   `json:"isCore"`
	Totals
}

// SeasonStats is one player's statistics for one season: per-team
// entries plus the club-wide sums across those teams. A season the
// player never recorded availability in has no SeasonStats at all.
type SeasonStats struct {
	SeasonID string      `json:"seasonId"`
	Teams    []TeamStats `json:"teams"`
	Club     Totals      `json:"club"`
}

// CareerStats sums the club-wide totals of every season the player
// participated in, with rates recomputed from the summed totals.
type CareerStats struct {
	Totals
	TotalSeasons int `json:"totalSeasons"`
}

// PlayerStats is the derived per-player document
// (key player-stats-{playerID}). Rebuilt from scratch on every run.
type PlayerStats struct {
	PlayerID   string        `json:"playerId"`
	PlayerName string        `json:"playerName"`
	Seasons    []SeasonStats `json:"seasons"`
	Career     CareerStats   `json:"career"`
}

// PlayerTeamStats is one contributing player's entry inside a team
// summary.
type PlayerTeamStats struct {
	PlayerID   string `json:"playerId"`
	PlayerName string `json:"playerName"`
	Totals
}

// TeamSummary is the derived per-team, per-season document
// (key team-stats-{teamName}-{seasonID}). Average rates are the
// unweighted mean of the contributing players' individual rates.
type TeamSummary struct {
	TeamName                string            `json:"teamName"`
	SeasonID                string            `json:"seasonId"`
	TotalPlayers            int               `json:"totalPlayers"`
	TotalGamesPlayed        int               `json:"totalGamesPlayed"`
	AverageAvailabilityRate int               `json:"averageAvailabilityRate"`
	AverageSelectionRate    int               `json:"averageSelectionRate"`
	Players                 []PlayerTeamStats `json:"players"`
}

// SeasonSummary is the derived per-season document
// (key season-stats-{seasonID}). TotalPlayers deduplicates players who
// turned out for more than one team; the averages run over player-team
// entries, not over teams.
type SeasonSummary struct {
	SeasonID                string   `json:"seasonId"`
	TotalPlayers            int      `json:"totalPlayers"`
	TotalGamesPlayed        int      `json:"totalGamesPlayed"`
	AverageAvailabilityRate int      `json:"averageAvailabilityRate"`
	AverageSelectionRate    int      `json:"averageSelectionRate"`
	TeamNames               []string `json:"teamNames"`
}

// SeasonData is everything the accumulator needs for one season.
type SeasonData struct {
	Season       club.Season
	Roster       []club.RosterAssignment
	Fixtures     []club.Fixture
	Availability map[string]club.AvailabilityRecord // keyed by fixture id
}

// Input is the full data set for one aggregation run.
type Input struct {
	Players []club.Player
	Seasons []SeasonData
}

// Result is the output of one aggregation run, before persistence.
type Result struct {
	PlayerStats     []PlayerStats
	TeamSummaries   []TeamSummary
	SeasonSummaries []SeasonSummary
}

// RunOptions narrows a run to one season and/or one player. Empty values
// mean all seasons / all active players.
type RunOptions struct {
	SeasonID string
	PlayerID string
}

// RunReport is what callers get back from a recalculation. A run never
// fails because some writes failed; Warning carries the count instead.
type RunReport struct {
	PlayersUpdated int    `json:"playersUpdated"`
	SeasonsUpdated int    `json:"seasonsUpdated"`
	Warning        string `json:"warning,omitempty"`
}
