package stats

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fenwickcc/pavilion/internal/blobstore"
	"github.com/fenwickcc/pavilion/internal/club"
	"github.com/fenwickcc/pavilion/internal/metrics"
)

// Notifier is the slice of the notification surface the stats service
// needs.
type Notifier interface {
	SendStatsRunSummary(report RunReport, dryRun bool) error
}

// Service runs statistics aggregations: load, compute, persist.
type Service struct {
	store    club.ClubStore
	notifier Notifier
	metrics  metrics.Metrics
	now      func() time.Time
}

// New creates a new stats Service.
func New(store club.ClubStore, notifier Notifier, metricsSvc metrics.Metrics) *Service {
	return NewWithClock(store, notifier, metricsSvc, time.Now)
}

// NewWithClock creates a Service with a specific clock. Useful for tests
// that need a fixed "now" when classifying fixtures as past or future.
func NewWithClock(store club.ClubStore, notifier Notifier, metricsSvc metrics.Metrics, now func() time.Time) *Service {
	return &Service{
		store:    store,
		notifier: notifier,
		metrics:  metricsSvc,
		now:      now,
	}
}

// Recalculate rebuilds the derived statistics documents for the
// requested scope. The run only fails outright when there is nothing to
// compute at all; individual write failures are logged, counted and
// reported through RunReport.Warning.
func (s *Service) Recalculate(opts RunOptions, dryRun bool) (RunReport, error) {
	start := time.Now()
	s.metrics.IncStatsRuns()
	log.Info("Starting statistics recalculation", "seasonID", opts.SeasonID, "playerID", opts.PlayerID, "dryRun", dryRun)

	players, err := s.resolvePlayers(opts)
	if err != nil {
		return RunReport{}, err
	}
	seasons, err := s.resolveSeasons(opts)
	if err != nil {
		return RunReport{}, err
	}

	input := Input{Players: players}
	for _, season := range seasons {
		input.Seasons = append(input.Seasons, s.loadSeasonData(season))
	}

	result := Compute(input, s.now())
	report := s.persist(result, dryRun)

	s.metrics.ObserveStatsRunDuration(time.Since(start).Seconds())
	log.Info("Statistics recalculation finished",
		"playersUpdated", report.PlayersUpdated, "seasonsUpdated", report.SeasonsUpdated, "warning", report.Warning)

	if s.notifier != nil {
		if err := s.notifier.SendStatsRunSummary(report, dryRun); err != nil {
			log.Error("Failed to send stats run summary", "error", err)
		}
	}
	return report, nil
}

func (s *Service) resolvePlayers(opts RunOptions) ([]club.Player, error) {
	if opts.PlayerID != "" {
		player, err := s.store.GetPlayer(opts.PlayerID)
		if err != nil {
			return nil, fmt.Errorf("player %s not found", opts.PlayerID)
		}
		return []club.Player{player}, nil
	}
	all, err := s.store.ListPlayers()
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}
	var active []club.Player
	for _, p := range all {
		if p.IsActive {
			active = append(active, p)
		}
	}
	if len(active) == 0 {
		return nil, errors.New("no active players found, nothing to compute")
	}
	return active, nil
}

func (s *Service) resolveSeasons(opts RunOptions) ([]club.Season, error) {
	if opts.SeasonID != "" {
		season, err := s.store.GetSeason(opts.SeasonID)
		if err != nil {
			return nil, fmt.Errorf("season %s not found", opts.SeasonID)
		}
		return []club.Season{season}, nil
	}
	seasons, err := s.store.ListSeasons()
	if err != nil {
		return nil, fmt.Errorf("failed to list seasons: %w", err)
	}
	if len(seasons) == 0 {
		return nil, errors.New("no seasons found, nothing to compute")
	}
	return seasons, nil
}

// persist writes every derived document of the run. Failures never abort
// the run; the report carries a warning with the failure count instead.
func (s *Service) persist(result Result, dryRun bool) RunReport {
	var report RunReport
	failed := 0

	for _, playerStats := range result.PlayerStats {
		if dryRun {
			log.Info("[Dry Run] Would save player stats", "playerID", playerStats.PlayerID)
			report.PlayersUpdated++
			continue
		}
		if err := s.store.SaveStatsDoc(club.PlayerStatsKey(playerStats.PlayerID), playerStats); err != nil {
			log.Error("Failed to save player stats", "error", err, "playerID", playerStats.PlayerID)
			s.metrics.IncStatsWriteFailures()
			failed++
			continue
		}
		report.PlayersUpdated++
	}

	for _, teamSummary := range result.TeamSummaries {
		if dryRun {
			log.Info("[Dry Run] Would save team summary", "team", teamSummary.TeamName, "seasonID", teamSummary.SeasonID)
			continue
		}
		if err := s.store.SaveStatsDoc(club.TeamStatsKey(teamSummary.TeamName, teamSummary.SeasonID), teamSummary); err != nil {
			log.Error("Failed to save team summary", "error", err, "team", teamSummary.TeamName, "seasonID", teamSummary.SeasonID)
			s.metrics.IncStatsWriteFailures()
			failed++
		}
	}

	for _, seasonSummary := range result.SeasonSummaries {
		if dryRun {
			log.Info("[Dry Run] Would save season summary", "seasonID", seasonSummary.SeasonID)
			report.SeasonsUpdated++
			continue
		}
		if err := s.store.SaveStatsDoc(club.SeasonStatsKey(seasonSummary.SeasonID), seasonSummary); err != nil {
			log.Error("Failed to save season summary", "error", err, "seasonID", seasonSummary.SeasonID)
			s.metrics.IncStatsWriteFailures()
			failed++
			continue
		}
		report.SeasonsUpdated++
	}

	if failed > 0 {
		report.Warning = fmt.Sprintf("%d statistics document(s) could not be persisted", failed)
	}
	return report
}

// PlayerStatsDoc reads a player's derived statistics document.
func (s *Service) PlayerStatsDoc(playerID string) (PlayerStats, error) {
	var doc PlayerStats
	if err := s.store.GetStatsDoc(club.PlayerStatsKey(playerID), &doc); err != nil {
		if errors.Is(err, blobstore.ErrNotFound) {
			return PlayerStats{}, fmt.Errorf("no statistics for player %s: %w", playerID, err)
		}
		return PlayerStats{}, err
	}
	return doc, nil
}

// TeamSummaryDoc reads a team's derived summary document.
func (s *Service) TeamSummaryDoc(teamName, seasonID string) (TeamSummary, error) {
	var doc TeamSummary
	if err := s.store.GetStatsDoc(club.TeamStatsKey(teamName, seasonID), &doc); err != nil {
		return TeamSummary{}, err
	}
	return doc, nil
}

// SeasonSummaryDoc reads a season's derived summary document.
func (s *Service) SeasonSummaryDoc(seasonID string) (SeasonSummary, error) {
	var doc SeasonSummary
	if err := s.store.GetStatsDoc(club.SeasonStatsKey(seasonID), &doc); err != nil {
		return SeasonSummary{}, err
	}
	return doc, nil
}
