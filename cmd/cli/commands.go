package main

import (
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/spf13/cobra"
)

var (
	seasonID string
	playerID string
	teamName string
	dryRun   bool
)

func init() {
	recalculateCmd.Flags().StringVar(&seasonID, "season", "", "Limit the run to one season")
	recalculateCmd.Flags().StringVar(&playerID, "player", "", "Limit the run to one player")
	recalculateCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Compute without persisting or notifying")
	playerStatsCmd.Flags().StringVar(&playerID, "player", "", "The player id")
	playerStatsCmd.MarkFlagRequired("player")
	teamStatsCmd.Flags().StringVar(&teamName, "team", "", "The team name")
	teamStatsCmd.Flags().StringVar(&seasonID, "season", "", "The season id")
	teamStatsCmd.MarkFlagRequired("team")
	teamStatsCmd.MarkFlagRequired("season")

	fixturesCmd.Flags().StringVar(&seasonID, "season", "", "The season id")
	fixturesCmd.MarkFlagRequired("season")

	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(playersCmd)
	rootCmd.AddCommand(seasonsCmd)
	rootCmd.AddCommand(fixturesCmd)
	rootCmd.AddCommand(recalculateCmd)
	rootCmd.AddCommand(playerStatsCmd)
	rootCmd.AddCommand(teamStatsCmd)
	rootCmd.AddCommand(metricsCmd)
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the health of the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/health")
	},
}

var playersCmd = &cobra.Command{
	Use:   "players",
	Short: "List the players in the club store",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/players")
	},
}

var seasonsCmd = &cobra.Command{
	Use:   "seasons",
	Short: "List the seasons in the club store",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/seasons")
	},
}

var fixturesCmd = &cobra.Command{
	Use:   "fixtures",
	Short: "List the fixtures of a season",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/fixtures?seasonID=" + url.QueryEscape(seasonID))
	},
}

var recalculateCmd = &cobra.Command{
	Use:   "recalculate",
	Short: "Trigger a statistics recalculation run",
	RunE: func(cmd *cobra.Command, args []string) error {
		params := url.Values{}
		if seasonID != "" {
			params.Set("seasonID", seasonID)
		}
		if playerID != "" {
			params.Set("playerID", playerID)
		}
		if dryRun {
			params.Set("dry_run", "true")
		}
		endpoint := "/recalculate-stats"
		if encoded := params.Encode(); encoded != "" {
			endpoint += "?" + encoded
		}
		return performGetRequest(endpoint)
	},
}

var playerStatsCmd = &cobra.Command{
	Use:   "player-stats",
	Short: "Get the derived statistics for a player",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/player-stats?playerID=" + url.QueryEscape(playerID))
	},
}

var teamStatsCmd = &cobra.Command{
	Use:   "team-stats",
	Short: "Get the derived summary for a team in a season",
	RunE: func(cmd *cobra.Command, args []string) error {
		params := url.Values{}
		params.Set("team", teamName)
		params.Set("seasonID", seasonID)
		return performGetRequest("/team-stats?" + params.Encode())
	},
}

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Get application metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/metrics")
	},
}

func performGetRequest(endpoint string) error {
	url := host + endpoint
	fmt.Printf("Making request to %s\n", url)

	resp, err := http.Get(url)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	fmt.Printf("Status Code: %d\n", resp.StatusCode)
	fmt.Println("Response Body:")
	fmt.Println(string(body))

	return nil
}
