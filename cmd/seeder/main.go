package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fenwickcc/pavilion/internal/blobstore"
	"github.com/fenwickcc/pavilion/internal/club"
	"github.com/fenwickcc/pavilion/internal/database"
	"github.com/joho/godotenv"
)

// Simplified config loading for the script
func loadConfig() map[string]string {
	err := godotenv.Load()
	if err != nil {
		log.Warn("No .env file found, reading from environment variables")
	}

	config := map[string]string{
		"DB_NAME":        "pavilion.db",
		"MIGRATIONS_DIR": "./migrations",
	}
	// Both optional: without them the seeder writes to the local file.
	for _, key := range []string{"DB_NAME", "MIGRATIONS_DIR", "TURSO_PRIMARY_URL", "TURSO_AUTH_TOKEN"} {
		if value, ok := os.LookupEnv(key); ok {
			config[key] = value
		}
	}
	return config
}

func main() {
	log.Info("Starting database seeder...")
	cfg := loadConfig()

	db, teardown, err := database.InitDB(cfg["DB_NAME"], cfg["TURSO_PRIMARY_URL"], cfg["TURSO_AUTH_TOKEN"], cfg["MIGRATIONS_DIR"])
	if err != nil {
		log.Fatalf("Failed to initialize database: %s", err)
	}
	defer teardown()

	store := club.New(blobstore.New(db))
	startTime := time.Now()

	season := club.Season{
		ID:        "season-2026",
		Name:      "Summer 2026",
		StartDate: "2026-04-18",
		EndDate:   "2026-09-12",
		IsActive:  true,
	}
	if err := store.UpsertSeason(season); err != nil {
		log.Fatalf("Failed to seed season: %s", err)
	}

	players := []club.Player{
		{ID: "player-1", Name: "Seeder Player A", IsActive: true},
		{ID: "player-2", Name: "Seeder Player B", IsActive: true},
		{ID: "player-3", Name: "Seeder Player C", IsActive: true},
		{ID: "player-4", Name: "Seeder Player D", IsActive: true},
		{ID: "player-5", Name: "Seeder Player E", IsActive: true},
		{ID: "player-6", Name: "Seeder Player F", IsActive: false},
	}
	for _, p := range players {
		if err := store.UpsertPlayer(p); err != nil {
			log.Fatalf("Failed to seed player %s: %s", p.Name, err)
		}
	}
	log.Info("Ensured dummy players exist.")

	// First four are core for the 1st XI, the rest turn out as reserves.
	now := time.Now().Unix()
	for _, p := range players[:4] {
		if err := store.SetCoreStatus(season.ID, "1st XI", p.ID, true, now); err != nil {
			log.Fatalf("Failed to seed roster entry for %s: %s", p.ID, err)
		}
	}

	const numFixtures = 12
	log.Info("Preparing to insert dummy fixtures...", "total", numFixtures)

	for i := 0; i < numFixtures; i++ {
		team := "1st XI"
		if i%3 == 2 {
			team = "2nd XI"
		}
		// Two thirds in the past so recalculation has something to chew on.
		date := time.Now().Add(-time.Duration(numFixtures-i-4) * 7 * 24 * time.Hour)
		fixture := club.Fixture{
			ID:       fmt.Sprintf("fixture-%02d", i+1),
			SeasonID: season.ID,
			TeamName: team,
			Opponent: fmt.Sprintf("Seeded Opposition %d", i+1),
			Date:     date.Unix(),
			Venue:    "Seeded Ground",
		}
		if err := store.AddFixture(fixture); err != nil {
			log.Warn("Skipping fixture", "fixtureID", fixture.ID, "error", err)
			continue
		}

		for _, p := range players[:5] {
			available := rand.Intn(4) > 0
			entry := club.AvailabilityEntry{
				PlayerID:     p.ID,
				WasAvailable: available,
				WasSelected:  available && rand.Intn(3) > 0,
			}
			if err := store.SetPlayerAvailability(season.ID, fixture.ID, entry); err != nil {
				log.Fatalf("Failed to seed availability for %s: %s", p.ID, err)
			}
		}
	}

	if err := store.AddPracticeSession(club.PracticeSession{
		ID:       "practice-01",
		SeasonID: season.ID,
		Title:    "Thursday nets",
		Date:     time.Now().Add(3 * 24 * time.Hour).Unix(),
		Venue:    "Seeded Ground",
	}); err != nil {
		log.Warn("Skipping practice session", "error", err)
	}

	duration := time.Since(startTime)
	log.Info("Successfully seeded demo club data.", "duration", duration)
}
