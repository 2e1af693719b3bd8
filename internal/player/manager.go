package player

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/astrogirlnim/salvage/internal/game"
	"github.com/astrogirlnim/salvage/internal/storage"
)

// Manager owns the durable profile for one player. Reads are served from the
// in-memory copy; every mutating call writes the whole document through
// synchronously. It implements game.Saver so the engine can persist after
// each transaction.
type Manager struct {
	store   storage.Storer[*Profile]
	id      storage.Identifier
	profile *Profile
}

// NewManager loads the player's profile from the store. A missing record
// means first run: the default profile is populated and written before use.
// A record that fails to load was already rejected by the store layer at
// construction time; here absence is the only degraded case.
func NewManager(store storage.Storer[*Profile], id string, upgrades game.UpgradeCatalog) (*Manager, error) {
	m := &Manager{
		store: store,
		id:    storage.Identifier(id),
	}

	m.profile = store.Get(m.id)
	if m.profile == nil {
		slog.Info("no saved profile, populating defaults", "player", id)
		m.profile = defaultProfile(id, upgrades)
		if err := store.Save(m.id, m.profile); err != nil {
			return nil, fmt.Errorf("writing first-run profile: %w", err)
		}
	}

	return m, nil
}

// Profile returns the current in-memory profile.
func (m *Manager) Profile() *Profile {
	return m.profile
}

// Save merges an engine snapshot into the profile and writes it through.
// Implements game.Saver.
func (m *Manager) Save(snap game.Snapshot) error {
	m.profile.Credits = snap.Credits
	m.profile.Inventory = snap.Inventory
	m.profile.Upgrades = snap.Upgrades
	m.profile.Stats = snap.Stats
	return m.write()
}

// SavePosition records the ship position without touching the economy state.
func (m *Manager) SavePosition(pos game.Vec3) error {
	m.profile.Position = pos
	return m.write()
}

// Setting returns a settings value, or the given default when the key is
// absent.
func (m *Manager) Setting(key string, def any) any {
	if v, ok := m.profile.Settings[key]; ok {
		return v
	}
	return def
}

// SetSetting stores a settings value and writes through.
func (m *Manager) SetSetting(key string, value any) error {
	if m.profile.Settings == nil {
		m.profile.Settings = map[string]any{}
	}
	m.profile.Settings[key] = value
	return m.write()
}

// DeleteSetting removes a settings key and writes through. Removing an
// absent key is a no-op.
func (m *Manager) DeleteSetting(key string) error {
	if _, ok := m.profile.Settings[key]; !ok {
		return nil
	}
	delete(m.profile.Settings, key)
	return m.write()
}

// RecordZoneVisit marks a zone as visited at the given access level,
// keeping the highest level seen.
func (m *Manager) RecordZoneVisit(zoneId string, accessLevel int) error {
	if m.profile.ZoneAccess == nil {
		m.profile.ZoneAccess = map[string]ZoneAccess{}
	}
	za := m.profile.ZoneAccess[zoneId]
	if accessLevel > za.AccessLevel {
		za.AccessLevel = accessLevel
	}
	za.LastVisited = time.Now()
	m.profile.ZoneAccess[zoneId] = za
	return m.write()
}

func (m *Manager) write() error {
	m.profile.LastSavedAt = time.Now()
	if err := m.store.Save(m.id, m.profile); err != nil {
		return fmt.Errorf("saving profile %q: %w", m.id, err)
	}
	return nil
}
