package stats

import (
	"math"
	"sort"
)

type teamKey struct {
	teamName string
	seasonID string
}

// buildSummaries rolls the per-player results of a run up into team and
// season summaries.
func buildSummaries(players []PlayerStats) ([]TeamSummary, []SeasonSummary) {
	byTeam := make(map[teamKey][]PlayerTeamStats)
	for _, player := range players {
		for _, season := range player.Seasons {
			for _, team := range season.Teams {
				key := teamKey{teamName: team.TeamName, seasonID: season.SeasonID}
				byTeam[key] = append(byTeam[key], PlayerTeamStats{
					PlayerID:   player.PlayerID,
					PlayerName: player.PlayerName,
					Totals:     team.Totals,
				})
			}
		}
	}

	teamSummaries := make([]TeamSummary, 0, len(byTeam))
	for key, entries := range byTeam {
		sort.Slice(entries, func(i, j int) bool { return entries[i].PlayerID < entries[j].PlayerID })
		summary := TeamSummary{
			TeamName:     key.teamName,
			SeasonID:     key.seasonID,
			TotalPlayers: len(entries),
			Players:      entries,
		}
		availSum, selSum := 0, 0
		for _, entry := range entries {
			summary.TotalGamesPlayed += entry.GamesPlayed
			availSum += entry.AvailabilityRate
			selSum += entry.SelectionRate
		}
		// Average of averages, not a pooled fixture-weighted rate.
		summary.AverageAvailabilityRate = mean(availSum, len(entries))
		summary.AverageSelectionRate = mean(selSum, len(entries))
		teamSummaries = append(teamSummaries, summary)
	}
	sort.Slice(teamSummaries, func(i, j int) bool {
		if teamSummaries[i].SeasonID != teamSummaries[j].SeasonID {
			return teamSummaries[i].SeasonID < teamSummaries[j].SeasonID
		}
		return teamSummaries[i].TeamName < teamSummaries[j].TeamName
	})

	seasonSummaries := buildSeasonSummaries(teamSummaries)
	return teamSummaries, seasonSummaries
}

// buildSeasonSummaries aggregates the team summaries of each season.
// Player counts deduplicate across teams; averages run over all
// player-team entries in the season, not over teams.
func buildSeasonSummaries(teamSummaries []TeamSummary) []SeasonSummary {
	bySeason := make(map[string]*SeasonSummary)
	playersBySeason := make(map[string]map[string]bool)
	availSums := make(map[string]int)
	selSums := make(map[string]int)
	entryCounts := make(map[string]int)

	for _, team := range teamSummaries {
		summary, ok := bySeason[team.SeasonID]
		if !ok {
			summary = &SeasonSummary{SeasonID: team.SeasonID}
			bySeason[team.SeasonID] = summary
			playersBySeason[team.SeasonID] = make(map[string]bool)
		}
		summary.TeamNames = append(summary.TeamNames, team.TeamName)
		summary.TotalGamesPlayed += team.TotalGamesPlayed
		for _, entry := range team.Players {
			playersBySeason[team.SeasonID][entry.PlayerID] = true
			availSums[team.SeasonID] += entry.AvailabilityRate
			selSums[team.SeasonID] += entry.SelectionRate
			entryCounts[team.SeasonID]++
		}
	}

	seasonSummaries := make([]SeasonSummary, 0, len(bySeason))
	for seasonID, summary := range bySeason {
		summary.TotalPlayers = len(playersBySeason[seasonID])
		summary.AverageAvailabilityRate = mean(availSums[seasonID], entryCounts[seasonID])
		summary.AverageSelectionRate = mean(selSums[seasonID], entryCounts[seasonID])
		sort.Strings(summary.TeamNames)
		seasonSummaries = append(seasonSummaries, *summary)
	}
	sort.Slice(seasonSummaries, func(i, j int) bool {
		return seasonSummaries[i].SeasonID < seasonSummaries[j].SeasonID
	})
	return seasonSummaries
}

// mean is a round-half-up integer mean, 0 for an empty set.
func mean(sum, count int) int {
	if count == 0 {
		return 0
	}
	return int(math.Round(float64(sum) / float64(count)))
}
