package club

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/charmbracelet/log"
	"github.com/fenwickcc/pavilion/internal/blobstore"
)

// store handles all document operations for the club.
type store struct {
	blobs blobstore.BlobStore
}

// New creates a new ClubStore on top of the given blob store.
func New(blobs blobstore.BlobStore) ClubStore {
	return &store{
		blobs: blobs,
	}
}

// getDoc unmarshals a document into out. Absence is reported as
// blobstore.ErrNotFound; out is left untouched in that case.
func (s *store) getDoc(collection, key string, out any) error {
	value, err := s.blobs.Get(collection, key)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(value, out); err != nil {
		log.Error("Failed to unmarshal document", "error", err, "collection", collection, "key", key)
		return fmt.Errorf("corrupt document %s/%s: %w", collection, key, err)
	}
	return nil
}

func (s *store) putDoc(collection, key string, doc any) error {
	value, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal document %s/%s: %w", collection, key, err)
	}
	return s.blobs.Put(collection, key, value)
}

// --- Players ---

func (s *store) ListPlayers() ([]Player, error) {
	var players []Player
	err := s.getDoc(CollectionPlayers, PlayersKey, &players)
	if errors.Is(err, blobstore.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return players, nil
}

func (s *store) GetPlayer(id string) (Player, error) {
	players, err := s.ListPlayers()
	if err != nil {
		return Player{}, err
	}
	for _, p := range players {
		if p.ID == id {
			return p, nil
		}
	}
	return Player{}, fmt.Errorf("player %s: %w", id, blobstore.ErrNotFound)
}

func (s *store) UpsertPlayer(p Player) error {
	if p.ID == "" {
		return errors.New("player id is required")
	}
	players, err := s.ListPlayers()
	if err != nil {
		return err
	}
	replaced := false
	for i := range players {
		if players[i].ID == p.ID {
			players[i] = p
			replaced = true
			break
		}
	}
	if !replaced {
		players = append(players, p)
		log.Info("Added new player", "playerID", p.ID, "name", p.Name)
	}
	sort.Slice(players, func(i, j int) bool { return players[i].ID < players[j].ID })
	return s.putDoc(CollectionPlayers, PlayersKey, players)
}

// DeactivatePlayer soft-deletes a player. The record stays so statistics
// and historical rosters keep resolving the name.
func (s *store) DeactivatePlayer(id string) error {
	players, err := s.ListPlayers()
	if err != nil {
		return err
	}
	for i := range players {
		if players[i].ID == id {
			players[i].IsActive = false
			log.Info("Deactivated player", "playerID", id)
			return s.putDoc(CollectionPlayers, PlayersKey, players)
		}
	}
	return fmt.Errorf("player %s: %w", id, blobstore.ErrNotFound)
}

// --- Seasons ---

func (s *store) ListSeasons() ([]Season, error) {
	var seasons []Season
	err := s.getDoc(CollectionSeasons, SeasonsKey, &seasons)
	if errors.Is(err, blobstore.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return seasons, nil
}

func (s *store) GetSeason(id string) (Season, error) {
	seasons, err := s.ListSeasons()
	if err != nil {
		return Season{}, err
	}
	for _, season := range seasons {
		if season.ID == id {
			return season, nil
		}
	}
	return Season{}, fmt.Errorf("season %s: %w", id, blobstore.ErrNotFound)
}

func (s *store) UpsertSeason(season Season) error {
	if season.ID == "" {
		return errors.New("season id is required")
	}
	seasons, err := s.ListSeasons()
	if err != nil {
		return err
	}
	replaced := false
	for i := range seasons {
		if seasons[i].ID == season.ID {
			seasons[i] = season
			replaced = true
			break
		}
	}
	if !replaced {
		seasons = append(seasons, season)
	}
	// A new season flagged active demotes any other active season.
	if season.IsActive {
		for i := range seasons {
			if seasons[i].ID != season.ID {
				seasons[i].IsActive = false
			}
		}
	}
	sort.Slice(seasons, func(i, j int) bool { return seasons[i].ID < seasons[j].ID })
	return s.putDoc(CollectionSeasons, SeasonsKey, seasons)
}

// SetActiveSeason flags one season active and clears the flag everywhere
// else, keeping the single-active-season invariant.
func (s *store) SetActiveSeason(id string) error {
	seasons, err := s.ListSeasons()
	if err != nil {
		return err
	}
	found := false
	for i := range seasons {
		seasons[i].IsActive = seasons[i].ID == id
		if seasons[i].ID == id {
			found = true
		}
	}
	if !found {
		return fmt.Errorf("season %s: %w", id, blobstore.ErrNotFound)
	}
	log.Info("Set active season", "seasonID", id)
	return s.putDoc(CollectionSeasons, SeasonsKey, seasons)
}

// --- Core roster ---

func (s *store) GetRoster(seasonID string) ([]RosterAssignment, error) {
	var roster []RosterAssignment
	err := s.getDoc(CollectionRosters, RosterKey(seasonID), &roster)
	if errors.Is(err, blobstore.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return roster, nil
}

// SetCoreStatus records or updates a player's core membership of a team
// for a season, stamping when the flag was set or unset.
func (s *store) SetCoreStatus(seasonID, teamName, playerID string, isCore bool, now int64) error {
	if seasonID == "" || teamName == "" || playerID == "" {
		return errors.New("seasonID, teamName and playerID are required")
	}
	roster, err := s.GetRoster(seasonID)
	if err != nil {
		return err
	}
	found := false
	for i := range roster {
		if roster[i].PlayerID == playerID && roster[i].TeamName == teamName {
			if roster[i].IsCore != isCore {
				if isCore {
					roster[i].CoreSetAt = now
				} else {
					roster[i].CoreUnsetAt = now
				}
			}
			roster[i].IsCore = isCore
			found = true
			break
		}
	}
	if !found {
		entry := RosterAssignment{
			PlayerID: playerID,
			TeamName: teamName,
			SeasonID: seasonID,
			IsCore:   isCore,
		}
		if isCore {
			entry.CoreSetAt = now
		}
		roster = append(roster, entry)
	}
	log.Info("Updated core roster", "seasonID", seasonID, "team", teamName, "playerID", playerID, "isCore", isCore)
	return s.putDoc(CollectionRosters, RosterKey(seasonID), roster)
}

// --- Fixtures ---

func (s *store) GetFixtures(seasonID string) ([]Fixture, error) {
	var fixtures []Fixture
	err := s.getDoc(CollectionFixtures, FixturesKey(seasonID), &fixtures)
	if errors.Is(err, blobstore.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return fixtures, nil
}

// AddFixture appends a fixture to its season's list. Fixtures are
// immutable once created; a duplicate id is rejected.
func (s *store) AddFixture(f Fixture) error {
	if f.ID == "" || f.SeasonID == "" || f.TeamName == "" {
		return errors.New("fixture id, seasonID and teamName are required")
	}
	fixtures, err := s.GetFixtures(f.SeasonID)
	if err != nil {
		return err
	}
	for _, existing := range fixtures {
		if existing.ID == f.ID {
			return fmt.Errorf("fixture %s already exists", f.ID)
		}
	}
	fixtures = append(fixtures, f)
	sort.Slice(fixtures, func(i, j int) bool {
		if fixtures[i].Date != fixtures[j].Date {
			return fixtures[i].Date < fixtures[j].Date
		}
		return fixtures[i].ID < fixtures[j].ID
	})
	return s.putDoc(CollectionFixtures, FixturesKey(f.SeasonID), fixtures)
}

// --- Availability ---

func (s *store) GetAvailability(fixtureID string) (AvailabilityRecord, error) {
	var record AvailabilityRecord
	if err := s.getDoc(CollectionAvailability, AvailabilityKey(fixtureID), &record); err != nil {
		return AvailabilityRecord{}, err
	}
	return record, nil
}

func (s *store) GetAvailabilityIndex(seasonID string) ([]string, error) {
	var index []string
	err := s.getDoc(CollectionAvailability, AvailabilityIndexKey(seasonID), &index)
	if errors.Is(err, blobstore.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return index, nil
}

// SetPlayerAvailability upserts one player's entry on a fixture's
// availability record, creating the record and indexing it on first
// write. Selection implies availability, so a selected entry is stored
// as available regardless of what the caller passed.
func (s *store) SetPlayerAvailability(seasonID, fixtureID string, entry AvailabilityEntry) error {
	if entry.PlayerID == "" {
		return errors.New("playerID is required")
	}
	fixtures, err := s.GetFixtures(seasonID)
	if err != nil {
		return err
	}
	var fixture *Fixture
	for i := range fixtures {
		if fixtures[i].ID == fixtureID {
			fixture = &fixtures[i]
			break
		}
	}
	if fixture == nil {
		return fmt.Errorf("fixture %s in season %s: %w", fixtureID, seasonID, blobstore.ErrNotFound)
	}

	if entry.WasSelected && !entry.WasAvailable {
		log.Debug("Selected entry coerced to available", "fixtureID", fixtureID, "playerID", entry.PlayerID)
		entry.WasAvailable = true
	}

	record, err := s.GetAvailability(fixtureID)
	if errors.Is(err, blobstore.ErrNotFound) {
		record = AvailabilityRecord{
			FixtureID: fixtureID,
			SeasonID:  seasonID,
			TeamName:  fixture.TeamName,
		}
	} else if err != nil {
		return err
	}

	replaced := false
	for i := range record.Entries {
		if record.Entries[i].PlayerID == entry.PlayerID {
			record.Entries[i] = entry
			replaced = true
			break
		}
	}
	if !replaced {
		record.Entries = append(record.Entries, entry)
	}
	sort.Slice(record.Entries, func(i, j int) bool {
		return record.Entries[i].PlayerID < record.Entries[j].PlayerID
	})

	if err := s.putDoc(CollectionAvailability, AvailabilityKey(fixtureID), record); err != nil {
		return err
	}
	return s.indexAvailability(seasonID, fixtureID)
}

func (s *store) indexAvailability(seasonID, fixtureID string) error {
	index, err := s.GetAvailabilityIndex(seasonID)
	if err != nil {
		return err
	}
	for _, id := range index {
		if id == fixtureID {
			return nil
		}
	}
	index = append(index, fixtureID)
	sort.Strings(index)
	return s.putDoc(CollectionAvailability, AvailabilityIndexKey(seasonID), index)
}

// --- Practice sessions ---

func (s *store) GetPracticeSessions(seasonID string) ([]PracticeSession, error) {
	var sessions []PracticeSession
	err := s.getDoc(CollectionPractice, PracticeKey(seasonID), &sessions)
	if errors.Is(err, blobstore.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return sessions, nil
}

func (s *store) AddPracticeSession(ps PracticeSession) error {
	if ps.ID == "" || ps.SeasonID == "" {
		return errors.New("practice session id and seasonID are required")
	}
	sessions, err := s.GetPracticeSessions(ps.SeasonID)
	if err != nil {
		return err
	}
	for _, existing := range sessions {
		if existing.ID == ps.ID {
			return fmt.Errorf("practice session %s already exists", ps.ID)
		}
	}
	sessions = append(sessions, ps)
	sort.Slice(sessions, func(i, j int) bool {
		if sessions[i].Date != sessions[j].Date {
			return sessions[i].Date < sessions[j].Date
		}
		return sessions[i].ID < sessions[j].ID
	})
	return s.putDoc(CollectionPractice, PracticeKey(ps.SeasonID), sessions)
}

// --- Derived statistics documents ---

func (s *store) SaveStatsDoc(key string, doc any) error {
	return s.putDoc(CollectionStats, key, doc)
}

func (s *store) GetStatsDoc(key string, out any) error {
	return s.getDoc(CollectionStats, key, out)
}

// --- Admin ---

func (s *store) Clear() error {
	log.Warn("Clearing entire document store")
	return s.blobs.Clear()
}
