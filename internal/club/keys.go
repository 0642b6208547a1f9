package club

import "fmt"

// Collections in the document store.
const (
	CollectionPlayers      = "players"
	CollectionSeasons      = "seasons"
	CollectionRosters      = "rosters"
	CollectionFixtures     = "fixtures"
	CollectionAvailability = "availability"
	CollectionPractice     = "practice"
	CollectionStats        = "stats"
)

// List documents holding all players / all seasons.
const (
	PlayersKey = "players"
	SeasonsKey = "seasons"
)

func RosterKey(seasonID string) string {
	return fmt.Sprintf("core-roster-%s", seasonID)
}

func FixturesKey(seasonID string) string {
	return fmt.Sprintf("fixtures-%s", seasonID)
}

func AvailabilityIndexKey(seasonID string) string {
	return fmt.Sprintf("availability-index-%s", seasonID)
}

func AvailabilityKey(fixtureID string) string {
	return fmt.Sprintf("availability-%s", fixtureID)
}

func PracticeKey(seasonID string) string {
	return fmt.Sprintf("practice-%s", seasonID)
}

func PlayerStatsKey(playerID string) string {
	return fmt.Sprintf("player-stats-%s", playerID)
}

func TeamStatsKey(teamName, seasonID string) string {
	return fmt.Sprintf("team-stats-%s-%s", teamName, seasonID)
}

func SeasonStatsKey(seasonID string) string {
	return fmt.Sprintf("season-stats-%s", seasonID)
}
