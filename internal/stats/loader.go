package stats

import (
	"sync"

	"github.com/charmbracelet/log"
	"github.com/fenwickcc/pavilion/internal/club"
)

// loadSeasonData gathers everything one season contributes to a run: the
// core roster, the fixtures, and every availability record the season's
// index points at. A season with none of these is not an error; it just
// contributes nothing for any player.
func (s *Service) loadSeasonData(season club.Season) SeasonData {
	data := SeasonData{
		Season:       season,
		Availability: make(map[string]club.AvailabilityRecord),
	}

	roster, err := s.store.GetRoster(season.ID)
	if err != nil {
		log.Error("Failed to load core roster, continuing without", "error", err, "seasonID", season.ID)
	}
	data.Roster = roster

	fixtures, err := s.store.GetFixtures(season.ID)
	if err != nil {
		log.Error("Failed to load fixtures, continuing without", "error", err, "seasonID", season.ID)
	}
	data.Fixtures = fixtures

	index, err := s.store.GetAvailabilityIndex(season.ID)
	if err != nil {
		log.Error("Failed to load availability index, continuing without", "error", err, "seasonID", season.ID)
		return data
	}

	// Availability records are independent read-only documents, so they
	// are fetched concurrently. A single failed fetch only skips that
	// fixture, never the season.
	var mu sync.Mutex
	var wg sync.WaitGroup
	for _, fixtureID := range index {
		wg.Add(1)
		go func(fixtureID string) {
			defer wg.Done()
			record, err := s.store.GetAvailability(fixtureID)
			if err != nil {
				log.Error("Failed to load availability record, skipping fixture", "error", err, "fixtureID", fixtureID, "seasonID", season.ID)
				return
			}
			mu.Lock()
			data.Availability[fixtureID] = record
			mu.Unlock()
		}(fixtureID)
	}
	wg.Wait()

	log.Debug("Loaded season data", "seasonID", season.ID,
		"roster", len(data.Roster), "fixtures", len(data.Fixtures), "availabilityRecords", len(data.Availability))
	return data
}
