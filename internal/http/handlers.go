package http

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fenwickcc/pavilion/internal/blobstore"
	"github.com/fenwickcc/pavilion/internal/club"
	"github.com/fenwickcc/pavilion/internal/pubsub"
	"github.com/fenwickcc/pavilion/internal/stats"
	"github.com/google/uuid"
)

func (s *Server) HealthCheckHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Debug("Received health check request")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK!")
	}
}

func (s *Server) ClearStoreHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Info("Received request to clear entire store")
		if err := s.Store.Clear(); err != nil {
			http.Error(w, "Failed to clear store", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "Store cleared!")
	}
}

// respondJSON is a helper to write a JSON response body.
func respondJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("Failed to write response", "error", err)
	}
}

func (s *Server) PlayersHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			var player club.Player
			if err := json.NewDecoder(r.Body).Decode(&player); err != nil {
				http.Error(w, "Invalid JSON", http.StatusBadRequest)
				return
			}
			if player.ID == "" {
				player.ID = uuid.NewString()
			}
			player.IsActive = true
			if err := s.Store.UpsertPlayer(player); err != nil {
				log.Error("Failed to upsert player", "error", err, "playerID", player.ID)
				http.Error(w, "Failed to save player", http.StatusInternalServerError)
				return
			}
			respondJSON(w, player)
		default:
			players, err := s.Store.ListPlayers()
			if err != nil {
				log.Error("Failed to get players from store", "error", err)
				http.Error(w, "Failed to get players", http.StatusInternalServerError)
				return
			}
			respondJSON(w, players)
		}
	}
}

func (s *Server) DeactivatePlayerHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID := r.URL.Query().Get("playerID")
		if playerID == "" {
			http.Error(w, "playerID is required", http.StatusBadRequest)
			return
		}
		if err := s.Store.DeactivatePlayer(playerID); err != nil {
			if errors.Is(err, blobstore.ErrNotFound) {
				http.Error(w, "Player not found", http.StatusNotFound)
				return
			}
			log.Error("Failed to deactivate player", "error", err, "playerID", playerID)
			http.Error(w, "Failed to deactivate player", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "Player %s deactivated", playerID)
	}
}

func (s *Server) SeasonsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			var season club.Season
			if err := json.NewDecoder(r.Body).Decode(&season); err != nil {
				http.Error(w, "Invalid JSON", http.StatusBadRequest)
				return
			}
			if season.ID == "" {
				http.Error(w, "Season id is required", http.StatusBadRequest)
				return
			}
			if err := s.Store.UpsertSeason(season); err != nil {
				log.Error("Failed to upsert season", "error", err, "seasonID", season.ID)
				http.Error(w, "Failed to save season", http.StatusInternalServerError)
				return
			}
			respondJSON(w, season)
		default:
			seasons, err := s.Store.ListSeasons()
			if err != nil {
				log.Error("Failed to get seasons from store", "error", err)
				http.Error(w, "Failed to get seasons", http.StatusInternalServerError)
				return
			}
			respondJSON(w, seasons)
		}
	}
}

func (s *Server) ActivateSeasonHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		seasonID := r.URL.Query().Get("seasonID")
		if seasonID == "" {
			http.Error(w, "seasonID is required", http.StatusBadRequest)
			return
		}
		if err := s.Store.SetActiveSeason(seasonID); err != nil {
			if errors.Is(err, blobstore.ErrNotFound) {
				http.Error(w, "Season not found", http.StatusNotFound)
				return
			}
			log.Error("Failed to set active season", "error", err, "seasonID", seasonID)
			http.Error(w, "Failed to set active season", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "Season %s is now active", seasonID)
	}
}

func (s *Server) RosterHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			var req struct {
				SeasonID string `json:"seasonId"`
				TeamName string `json:"teamName"`
				PlayerID string `json:"playerId"`
				IsCore   bool   `json:"isCore"`
			}
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				http.Error(w, "Invalid JSON", http.StatusBadRequest)
				return
			}
			if err := s.Store.SetCoreStatus(req.SeasonID, req.TeamName, req.PlayerID, req.IsCore, time.Now().Unix()); err != nil {
				log.Error("Failed to set core status", "error", err, "seasonID", req.SeasonID, "playerID", req.PlayerID)
				http.Error(w, "Failed to update roster", http.StatusBadRequest)
				return
			}
			w.WriteHeader(http.StatusOK)
			fmt.Fprint(w, "Roster updated")
		default:
			seasonID := r.URL.Query().Get("seasonID")
			if seasonID == "" {
				http.Error(w, "seasonID is required", http.StatusBadRequest)
				return
			}
			roster, err := s.Store.GetRoster(seasonID)
			if err != nil {
				log.Error("Failed to get roster from store", "error", err, "seasonID", seasonID)
				http.Error(w, "Failed to get roster", http.StatusInternalServerError)
				return
			}
			respondJSON(w, roster)
		}
	}
}

func (s *Server) FixturesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			var fixture club.Fixture
			if err := json.NewDecoder(r.Body).Decode(&fixture); err != nil {
				http.Error(w, "Invalid JSON", http.StatusBadRequest)
				return
			}
			if fixture.ID == "" {
				fixture.ID = uuid.NewString()
			}
			if err := s.Store.AddFixture(fixture); err != nil {
				log.Error("Failed to add fixture", "error", err, "fixtureID", fixture.ID)
				http.Error(w, "Failed to save fixture", http.StatusBadRequest)
				return
			}
			respondJSON(w, fixture)
		default:
			seasonID := r.URL.Query().Get("seasonID")
			if seasonID == "" {
				http.Error(w, "seasonID is required", http.StatusBadRequest)
				return
			}
			fixtures, err := s.Store.GetFixtures(seasonID)
			if err != nil {
				log.Error("Failed to get fixtures from store", "error", err, "seasonID", seasonID)
				http.Error(w, "Failed to get fixtures", http.StatusInternalServerError)
				return
			}
			respondJSON(w, fixtures)
		}
	}
}

func (s *Server) AvailabilityHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			var req struct {
				SeasonID  string `json:"seasonId"`
				FixtureID string `json:"fixtureId"`
				club.AvailabilityEntry
			}
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				http.Error(w, "Invalid JSON", http.StatusBadRequest)
				return
			}
			if err := s.Store.SetPlayerAvailability(req.SeasonID, req.FixtureID, req.AvailabilityEntry); err != nil {
				if errors.Is(err, blobstore.ErrNotFound) {
					http.Error(w, "Fixture not found", http.StatusNotFound)
					return
				}
				log.Error("Failed to set availability", "error", err, "fixtureID", req.FixtureID)
				http.Error(w, "Failed to save availability", http.StatusBadRequest)
				return
			}
			w.WriteHeader(http.StatusOK)
			fmt.Fprint(w, "Availability recorded")
		default:
			fixtureID := r.URL.Query().Get("fixtureID")
			if fixtureID == "" {
				http.Error(w, "fixtureID is required", http.StatusBadRequest)
				return
			}
			record, err := s.Store.GetAvailability(fixtureID)
			if err != nil {
				if errors.Is(err, blobstore.ErrNotFound) {
					// No one has recorded availability yet; that is a valid state.
					respondJSON(w, club.AvailabilityRecord{FixtureID: fixtureID})
					return
				}
				log.Error("Failed to get availability", "error", err, "fixtureID", fixtureID)
				http.Error(w, "Failed to get availability", http.StatusInternalServerError)
				return
			}
			respondJSON(w, record)
		}
	}
}

func (s *Server) PracticeSessionsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			var session club.PracticeSession
			if err := json.NewDecoder(r.Body).Decode(&session); err != nil {
				http.Error(w, "Invalid JSON", http.StatusBadRequest)
				return
			}
			if session.ID == "" {
				session.ID = uuid.NewString()
			}
			if err := s.Store.AddPracticeSession(session); err != nil {
				log.Error("Failed to add practice session", "error", err, "sessionID", session.ID)
				http.Error(w, "Failed to save practice session", http.StatusBadRequest)
				return
			}
			respondJSON(w, session)
		default:
			seasonID := r.URL.Query().Get("seasonID")
			if seasonID == "" {
				http.Error(w, "seasonID is required", http.StatusBadRequest)
				return
			}
			sessions, err := s.Store.GetPracticeSessions(seasonID)
			if err != nil {
				log.Error("Failed to get practice sessions", "error", err, "seasonID", seasonID)
				http.Error(w, "Failed to get practice sessions", http.StatusInternalServerError)
				return
			}
			respondJSON(w, sessions)
		}
	}
}

func (s *Server) AnnounceSelectionHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		seasonID := r.URL.Query().Get("seasonID")
		fixtureID := r.URL.Query().Get("fixtureID")
		if seasonID == "" || fixtureID == "" {
			http.Error(w, "seasonID and fixtureID are required", http.StatusBadRequest)
			return
		}
		isDryRun := isDryRunFromContext(r)

		fixtures, err := s.Store.GetFixtures(seasonID)
		if err != nil {
			http.Error(w, "Failed to get fixtures", http.StatusInternalServerError)
			return
		}
		var fixture *club.Fixture
		for i := range fixtures {
			if fixtures[i].ID == fixtureID {
				fixture = &fixtures[i]
				break
			}
		}
		if fixture == nil {
			http.Error(w, "Fixture not found", http.StatusNotFound)
			return
		}

		record, err := s.Store.GetAvailability(fixtureID)
		if err != nil {
			if errors.Is(err, blobstore.ErrNotFound) {
				http.Error(w, "No availability recorded for fixture", http.StatusNotFound)
				return
			}
			http.Error(w, "Failed to get availability", http.StatusInternalServerError)
			return
		}

		players, err := s.Store.ListPlayers()
		if err != nil {
			http.Error(w, "Failed to get players", http.StatusInternalServerError)
			return
		}

		if err := s.Notifier.SendSelectionAnnouncement(*fixture, record, players, isDryRun); err != nil {
			log.Error("Failed to send selection announcement", "error", err, "fixtureID", fixtureID)
			http.Error(w, "Failed to send announcement", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "Selection announced")
	}
}

func (s *Server) RecalculateStatsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		opts := stats.RunOptions{
			SeasonID: r.URL.Query().Get("seasonID"),
			PlayerID: r.URL.Query().Get("playerID"),
		}
		isDryRun := isDryRunFromContext(r)

		report, err := s.Stats.Recalculate(opts, isDryRun)
		if err != nil {
			log.Error("Statistics recalculation failed", "error", err)
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		respondJSON(w, report)
	}
}

// RecalculateStatsAsyncHandler queues a recalculation instead of
// running it in the request. Useful when a full-club run would outlive
// the caller's timeout.
func (s *Server) RecalculateStatsAsyncHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req := pubsub.RecalculateRequest{
			SeasonID: r.URL.Query().Get("seasonID"),
			PlayerID: r.URL.Query().Get("playerID"),
		}
		if err := s.pubsub.SendMessage(pubsub.EventRecalculateStats, req); err != nil {
			log.Error("Failed to queue recalculation", "error", err)
			http.Error(w, "Failed to queue recalculation", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusAccepted)
		fmt.Fprint(w, "Recalculation queued")
	}
}

// PubSubRecalculateHandler handles push deliveries from the
// recalculate-stats topic, e.g. triggered by Cloud Scheduler.
func (s *Server) PubSubRecalculateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bodyBytes, err := io.ReadAll(r.Body)
		if err != nil {
			log.Error("Failed to read request body", "error", err)
			http.Error(w, "Failed to read request body", http.StatusInternalServerError)
			return
		}
		log.Debug("Received recalculate stats message", "body", string(bodyBytes))
		// Define a small struct to decode the incoming JSON's `data` field
		var pubsubMsg struct {
			Subscription string `json:"subscription"`
			Message      struct {
				Data string `json:"data"` // base64-encoded message payload
			} `json:"message"`
		}

		if err := json.Unmarshal(bodyBytes, &pubsubMsg); err != nil {
			log.Error("Failed to unmarshal wrapper JSON", "error", err)
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}
		// Decode base64 to raw MessagePack bytes
		rawData, err := base64.StdEncoding.DecodeString(pubsubMsg.Message.Data)
		if err != nil {
			log.Error("Failed to decode base64 data", "error", err)
			http.Error(w, "Invalid base64 data", http.StatusBadRequest)
			return
		}
		isDryRun := isDryRunFromContext(r)
		var req pubsub.RecalculateRequest
		if err := s.pubsub.ProcessMessage(rawData, &req); err != nil {
			http.Error(w, "Invalid message payload", http.StatusBadRequest)
			return
		}
		if _, err := s.Stats.Recalculate(stats.RunOptions{SeasonID: req.SeasonID, PlayerID: req.PlayerID}, isDryRun); err != nil {
			log.Error("Statistics recalculation failed", "error", err)
			// Acknowledge anyway; retrying a run with no input data will
			// never succeed.
		}
		w.Write([]byte("OK"))
	}
}

func (s *Server) PlayerStatsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID := r.URL.Query().Get("playerID")
		if playerID == "" {
			http.Error(w, "playerID is required", http.StatusBadRequest)
			return
		}
		doc, err := s.Stats.PlayerStatsDoc(playerID)
		if err != nil {
			if errors.Is(err, blobstore.ErrNotFound) {
				http.Error(w, "No statistics for player", http.StatusNotFound)
				return
			}
			log.Error("Failed to get player stats", "error", err, "playerID", playerID)
			http.Error(w, "Failed to get player stats", http.StatusInternalServerError)
			return
		}
		respondJSON(w, doc)
	}
}

func (s *Server) TeamStatsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		teamName := r.URL.Query().Get("team")
		seasonID := r.URL.Query().Get("seasonID")
		if teamName == "" || seasonID == "" {
			http.Error(w, "team and seasonID are required", http.StatusBadRequest)
			return
		}
		doc, err := s.Stats.TeamSummaryDoc(teamName, seasonID)
		if err != nil {
			if errors.Is(err, blobstore.ErrNotFound) {
				http.Error(w, "No statistics for team", http.StatusNotFound)
				return
			}
			log.Error("Failed to get team stats", "error", err, "team", teamName, "seasonID", seasonID)
			http.Error(w, "Failed to get team stats", http.StatusInternalServerError)
			return
		}
		respondJSON(w, doc)
	}
}

func (s *Server) SeasonStatsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		seasonID := r.URL.Query().Get("seasonID")
		if seasonID == "" {
			http.Error(w, "seasonID is required", http.StatusBadRequest)
			return
		}
		doc, err := s.Stats.SeasonSummaryDoc(seasonID)
		if err != nil {
			if errors.Is(err, blobstore.ErrNotFound) {
				http.Error(w, "No statistics for season", http.StatusNotFound)
				return
			}
			log.Error("Failed to get season stats", "error", err, "seasonID", seasonID)
			http.Error(w, "Failed to get season stats", http.StatusInternalServerError)
			return
		}
		respondJSON(w, doc)
	}
}
