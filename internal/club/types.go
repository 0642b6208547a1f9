package club

// Player is a club member. Players are never hard-deleted; deactivation
// flips IsActive so historical statistics keep resolving their name.
type Player struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	IsActive bool   `json:"isActive"`
}

// Season is a playing season. At most one season is flagged active at a
// time; SetActiveSeason enforces that.
type Season struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	StartDate string `json:"startDate"` // YYYY-MM-DD
	EndDate   string `json:"endDate"`   // YYYY-MM-DD
	IsActive  bool   `json:"isActive"`
}

// RosterAssignment marks a player's core membership of a team for a
// season. A player with availability records but no assignment is an
// implicit non-core (reserve) member.
type RosterAssignment struct {
	PlayerID    string `json:"playerId"`
	TeamName    string `json:"teamName"`
	SeasonID    string `json:"seasonId"`
	IsCore      bool   `json:"isCore"`
	CoreSetAt   int64  `json:"coreSetAt,omitempty"`   // unix seconds, when isCore was last set
	CoreUnsetAt int64  `json:"coreUnsetAt,omitempty"` // unix seconds, when isCore was last unset
}

// Fixture is a single scheduled match. It belongs to exactly one
// (team, season) pair and is immutable once created apart from the
// result field.
type Fixture struct {
	ID       string `json:"id"`
	SeasonID string `json:"seasonId"`
	TeamName string `json:"teamName"`
	Opponent string `json:"opponent"`
	Date     int64  `json:"date"` // unix seconds
	Venue    string `json:"venue,omitempty"`
	Result   string `json:"result,omitempty"`
}

// AvailabilityEntry is one player's declaration for one fixture.
// WasSelected implies WasAvailable; SetPlayerAvailability enforces it.
type AvailabilityEntry struct {
	PlayerID     string `json:"playerId"`
	WasAvailable bool   `json:"wasAvailable"`
	WasSelected  bool   `json:"wasSelected"`
}

// AvailabilityRecord is the per-fixture availability document.
type AvailabilityRecord struct {
	FixtureID string              `json:"fixtureId"`
	SeasonID  string              `json:"seasonId"`
	TeamName  string              `json:"teamName"`
	Entries   []AvailabilityEntry `json:"entries"`
}

// PracticeSession is a scheduled net or training session for a season.
type PracticeSession struct {
	ID       string `json:"id"`
	SeasonID string `json:"seasonId"`
	Title    string `json:"title"`
	Date     int64  `json:"date"` // unix seconds
	Venue    string `json:"venue,omitempty"`
}
