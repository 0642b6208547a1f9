package club

import "sync"

// MockStore is a mock implementation of the ClubStore interface for
// testing. It is safe for concurrent use.
type MockStore struct {
	mu sync.Mutex

	// Spies for method calls
	UpsertPlayerFunc          func(p Player) error
	GetPlayerFunc             func(id string) (Player, error)
	ListPlayersFunc           func() ([]Player, error)
	DeactivatePlayerFunc      func(id string) error
	UpsertSeasonFunc          func(s Season) error
	GetSeasonFunc             func(id string) (Season, error)
	ListSeasonsFunc           func() ([]Season, error)
	SetActiveSeasonFunc       func(id string) error
	GetRosterFunc             func(seasonID string) ([]RosterAssignment, error)
	SetCoreStatusFunc         func(seasonID, teamName, playerID string, isCore bool, now int64) error
	AddFixtureFunc            func(f Fixture) error
	GetFixturesFunc           func(seasonID string) ([]Fixture, error)
	GetAvailabilityFunc       func(fixtureID string) (AvailabilityRecord, error)
	GetAvailabilityIndexFunc  func(seasonID string) ([]string, error)
	SetPlayerAvailabilityFunc func(seasonID, fixtureID string, entry AvailabilityEntry) error
	AddPracticeSessionFunc    func(ps PracticeSession) error
	GetPracticeSessionsFunc   func(seasonID string) ([]PracticeSession, error)
	SaveStatsDocFunc          func(key string, doc any) error
	GetStatsDocFunc           func(key string, out any) error
	ClearFunc                 func() error

	// Call records
	SaveStatsDocCalls []struct {
		Key string
		Doc any
	}
	UpsertPlayerCalls []Player
	ClearCalls        int
}

// NewMock creates a new mock instance.
func NewMock() *MockStore {
	return &MockStore{}
}

// Reset clears all call records.
func (m *MockStore) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SaveStatsDocCalls = nil
	m.UpsertPlayerCalls = nil
	m.ClearCalls = 0
}

func (m *MockStore) UpsertPlayer(p Player) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.UpsertPlayerCalls = append(m.UpsertPlayerCalls, p)
	if m.UpsertPlayerFunc != nil {
		return m.UpsertPlayerFunc(p)
	}
	return nil
}

func (m *MockStore) GetPlayer(id string) (Player, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetPlayerFunc != nil {
		return m.GetPlayerFunc(id)
	}
	return Player{}, nil
}

func (m *MockStore) ListPlayers() ([]Player, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ListPlayersFunc != nil {
		return m.ListPlayersFunc()
	}
	return nil, nil
}

func (m *MockStore) DeactivatePlayer(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.DeactivatePlayerFunc != nil {
		return m.DeactivatePlayerFunc(id)
	}
	return nil
}

func (m *MockStore) UpsertSeason(s Season) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.UpsertSeasonFunc != nil {
		return m.UpsertSeasonFunc(s)
	}
	return nil
}

func (m *MockStore) GetSeason(id string) (Season, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetSeasonFunc != nil {
		return m.GetSeasonFunc(id)
	}
	return Season{}, nil
}

func (m *MockStore) ListSeasons() ([]Season, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ListSeasonsFunc != nil {
		return m.ListSeasonsFunc()
	}
	return nil, nil
}

func (m *MockStore) SetActiveSeason(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SetActiveSeasonFunc != nil {
		return m.SetActiveSeasonFunc(id)
	}
	return nil
}

func (m *MockStore) GetRoster(seasonID string) ([]RosterAssignment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetRosterFunc != nil {
		return m.GetRosterFunc(seasonID)
	}
	return nil, nil
}

func (m *MockStore) SetCoreStatus(seasonID, teamName, playerID string, isCore bool, now int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SetCoreStatusFunc != nil {
		return m.SetCoreStatusFunc(seasonID, teamName, playerID, isCore, now)
	}
	return nil
}

func (m *MockStore) AddFixture(f Fixture) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.AddFixtureFunc != nil {
		return m.AddFixtureFunc(f)
	}
	return nil
}

func (m *MockStore) GetFixtures(seasonID string) ([]Fixture, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetFixturesFunc != nil {
		return m.GetFixturesFunc(seasonID)
	}
	return nil, nil
}

func (m *MockStore) GetAvailability(fixtureID string) (AvailabilityRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetAvailabilityFunc != nil {
		return m.GetAvailabilityFunc(fixtureID)
	}
	return AvailabilityRecord{}, nil
}

func (m *MockStore) GetAvailabilityIndex(seasonID string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetAvailabilityIndexFunc != nil {
		return m.GetAvailabilityIndexFunc(seasonID)
	}
	return nil, nil
}

func (m *MockStore) SetPlayerAvailability(seasonID, fixtureID string, entry AvailabilityEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SetPlayerAvailabilityFunc != nil {
		return m.SetPlayerAvailabilityFunc(seasonID, fixtureID, entry)
	}
	return nil
}

func (m *MockStore) AddPracticeSession(ps PracticeSession) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.AddPracticeSessionFunc != nil {
		return m.AddPracticeSessionFunc(ps)
	}
	return nil
}

func (m *MockStore) GetPracticeSessions(seasonID string) ([]PracticeSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetPracticeSessionsFunc != nil {
		return m.GetPracticeSessionsFunc(seasonID)
	}
	return nil, nil
}

func (m *MockStore) SaveStatsDoc(key string, doc any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SaveStatsDocCalls = append(m.SaveStatsDocCalls, struct {
		Key string
		Doc any
	}{key, doc})
	if m.SaveStatsDocFunc != nil {
		return m.SaveStatsDocFunc(key, doc)
	}
	return nil
}

func (m *MockStore) GetStatsDoc(key string, out any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetStatsDocFunc != nil {
		return m.GetStatsDocFunc(key, out)
	}
	return nil
}

func (m *MockStore) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ClearCalls++
	if m.ClearFunc != nil {
		return m.ClearFunc()
	}
	return nil
}
