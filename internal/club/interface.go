package club

// ClubStore defines the interface for interacting with the club's
// documents.
type ClubStore interface {
	// Players
	UpsertPlayer(p Player) error
	GetPlayer(id string) (Player, error)
	ListPlayers() ([]Player, error)
	DeactivatePlayer(id string) error

	// Seasons
	UpsertSeason(s Season) error
	GetSeason(id string) (Season, error)
	ListSeasons() ([]Season, error)
	SetActiveSeason(id string) error

	// Core roster
	GetRoster(seasonID string) ([]RosterAssignment, error)
	SetCoreStatus(seasonID, teamName, playerID string, isCore bool, now int64) error

	// Fixtures
	AddFixture(f Fixture) error
	GetFixtures(seasonID string) ([]Fixture, error)

	// Availability
	GetAvailability(fixtureID string) (AvailabilityRecord, error)
	GetAvailabilityIndex(seasonID string) ([]string, error)
	SetPlayerAvailability(seasonID, fixtureID string, entry AvailabilityEntry) error

	// Practice sessions
	AddPracticeSession(ps PracticeSession) error
	GetPracticeSessions(seasonID string) ([]PracticeSession, error)

	// Derived statistics documents. These are caches owned by the stats
	// run; they are fully overwritten on each recalculation and safe to
	// delete at any time.
	SaveStatsDoc(key string, doc any) error
	GetStatsDoc(key string, out any) error

	// Admin
	Clear() error
}
