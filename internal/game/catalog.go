package game

import (
	"fmt"
	"strings"

	"github.com/pixil98/go-errors"
)

// Rarity defines the scarcity tier of a debris type.
type Rarity int

const (
	RarityUnknown Rarity = iota
	RarityCommon
	RarityUncommon
	RarityRare
	RarityLegendary
)

// Multiplier returns the value multiplier applied when pricing items of this rarity.
func (r Rarity) Multiplier() float64 {
	switch r {
	case RarityUncommon:
		return 1.5
	case RarityRare:
		return 2.5
	case RarityLegendary:
		return 5.0
	default:
		return 1.0
	}
}

func (r Rarity) String() string {
	switch r {
	case RarityCommon:
		return "common"
	case RarityUncommon:
		return "uncommon"
	case RarityRare:
		return "rare"
	case RarityLegendary:
		return "legendary"
	default:
		return "unknown"
	}
}

// DebrisType defines a kind of collectible debris loaded from asset files.
// Multiple entities can be spawned from one definition.
type DebrisType struct {
	// Name is the display name (e.g., "Scrap Metal")
	Name string `json:"name"`

	// BaseValue is the credit value of one unit before rarity and market factors
	BaseValue int `json:"base_value"`

	// SpawnWeight is the relative likelihood this type is chosen by the spawner
	SpawnWeight int `json:"spawn_weight"`

	// RarityStr is the rarity tier from JSON
	RarityStr string `json:"rarity"`
}

// Rarity returns the parsed Rarity from RarityStr.
func (d *DebrisType) Rarity() Rarity {
	switch strings.ToLower(d.RarityStr) {
	case "common":
		return RarityCommon
	case "uncommon":
		return RarityUncommon
	case "rare":
		return RarityRare
	case "legendary":
		return RarityLegendary
	default:
		return RarityUnknown
	}
}

// Validate satisfies storage.ValidatingSpec
func (d *DebrisType) Validate() error {
	el := errors.NewErrorList()
	if d.Name == "" {
		el.Add(fmt.Errorf("debris name is required"))
	}
	if d.BaseValue <= 0 {
		el.Add(fmt.Errorf("base_value must be positive"))
	}
	if d.SpawnWeight < 0 {
		el.Add(fmt.Errorf("spawn_weight must not be negative"))
	}
	if d.RarityStr == "" {
		el.Add(fmt.Errorf("rarity is required"))
	} else if d.Rarity() == RarityUnknown {
		el.Add(fmt.Errorf("rarity %q is invalid", d.RarityStr))
	}
	return el.Err()
}

// Catalog is an immutable table of debris type definitions keyed by id.
type Catalog map[string]*DebrisType

// Get returns the definition for a type id, or nil if unknown.
func (c Catalog) Get(id string) *DebrisType {
	return c[id]
}
