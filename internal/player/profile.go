package player

import (
	"fmt"
	"time"

	"github.com/astrogirlnim/salvage/internal/game"
	"github.com/pixil98/go-errors"
)

// StartingCredits is the balance a fresh profile begins with.
const StartingCredits = 100

// ZoneAccess records a player's standing in one zone.
type ZoneAccess struct {
	AccessLevel int       `json:"access_level"`
	LastVisited time.Time `json:"last_visited"`
}

// Profile is the durable record for one player: the key/value metadata plus
// the structured inventory, upgrade and settings collections. One JSON
// document per player; every mutation writes the whole document through.
type Profile struct {
	Name        string                `json:"name"`
	Credits     int                   `json:"credits"`
	Position    game.Vec3             `json:"position"`
	Inventory   []game.Stack          `json:"inventory,omitempty"`
	Upgrades    map[string]int        `json:"upgrades,omitempty"`
	Settings    map[string]any        `json:"settings,omitempty"`
	ZoneAccess  map[string]ZoneAccess `json:"zone_access,omitempty"`
	Stats       game.Stats            `json:"stats"`
	CreatedAt   time.Time             `json:"created_at"`
	LastSavedAt time.Time             `json:"last_saved_at"`
}

// Validate satisfies storage.ValidatingSpec
func (p *Profile) Validate() error {
	el := errors.NewErrorList()

	if p.Credits < 0 {
		el.Add(fmt.Errorf("credits must not be negative"))
	}
	for _, s := range p.Inventory {
		if s.Quantity < 0 {
			el.Add(fmt.Errorf("inventory stack %q has negative quantity", s.Type))
		}
	}
	for id, lvl := range p.Upgrades {
		if lvl < 0 {
			el.Add(fmt.Errorf("upgrade %q has negative level", id))
		}
	}

	return el.Err()
}

// defaultProfile builds the first-run record: starting credits, empty
// inventory, every upgrade at level 0, default settings.
func defaultProfile(name string, upgrades game.UpgradeCatalog) *Profile {
	levels := make(map[string]int, len(upgrades))
	for id := range upgrades {
		levels[id] = 0
	}

	now := time.Now()
	return &Profile{
		Name:     name,
		Credits:  StartingCredits,
		Upgrades: levels,
		Settings: map[string]any{
			"music_volume": 0.8,
			"sfx_volume":   1.0,
		},
		ZoneAccess:  map[string]ZoneAccess{},
		CreatedAt:   now,
		LastSavedAt: now,
	}
}
