package game

import (
	"fmt"
	"math"
	"strings"

	"github.com/pixil98/go-errors"
)

// UpgradeCategory defines which ship parameter an upgrade modifies.
type UpgradeCategory int

const (
	UpgradeCategoryUnknown UpgradeCategory = iota
	UpgradeCategorySpeed
	UpgradeCategoryCapacity
	UpgradeCategoryCollection
	UpgradeCategoryMagnet
	UpgradeCategoryScanner
	UpgradeCategoryZoneAccess
)

// UpgradeDefinition defines one purchasable upgrade track loaded from asset
// files. The cost of level L+1 is floor(base_cost × cost_multiplier^L), so
// the curve is strictly increasing for any multiplier > 1.
type UpgradeDefinition struct {
	// Name is the display name (e.g., "Speed Boost")
	Name string `json:"name"`

	MaxLevel       int     `json:"max_level"`
	BaseCost       int     `json:"base_cost"`
	CostMultiplier float64 `json:"cost_multiplier"`

	// EffectPerLevel is the amount the category's parameter shifts per level
	EffectPerLevel float64 `json:"effect_per_level"`

	// CategoryStr is the upgrade category from JSON
	CategoryStr string `json:"category"`
}

// Category returns the parsed UpgradeCategory from CategoryStr.
func (u *UpgradeDefinition) Category() UpgradeCategory {
	switch strings.ToLower(u.CategoryStr) {
	case "speed":
		return UpgradeCategorySpeed
	case "capacity":
		return UpgradeCategoryCapacity
	case "collection":
		return UpgradeCategoryCollection
	case "magnet":
		return UpgradeCategoryMagnet
	case "scanner":
		return UpgradeCategoryScanner
	case "zone_access":
		return UpgradeCategoryZoneAccess
	default:
		return UpgradeCategoryUnknown
	}
}

// Cost returns the credit price of buying the next level when currently at
// level. Levels at or past max cost nothing meaningful; callers gate on
// CanPurchase first.
func (u *UpgradeDefinition) Cost(level int) int {
	return int(math.Floor(float64(u.BaseCost) * math.Pow(u.CostMultiplier, float64(level))))
}

// Validate satisfies storage.ValidatingSpec
func (u *UpgradeDefinition) Validate() error {
	el := errors.NewErrorList()
	if u.Name == "" {
		el.Add(fmt.Errorf("upgrade name is required"))
	}
	if u.MaxLevel <= 0 {
		el.Add(fmt.Errorf("max_level must be positive"))
	}
	if u.BaseCost <= 0 {
		el.Add(fmt.Errorf("base_cost must be positive"))
	}
	if u.CostMultiplier <= 1.0 {
		el.Add(fmt.Errorf("cost_multiplier must be greater than 1.0"))
	}
	if u.CategoryStr == "" {
		el.Add(fmt.Errorf("category is required"))
	} else if u.Category() == UpgradeCategoryUnknown {
		el.Add(fmt.Errorf("category %q is invalid", u.CategoryStr))
	}
	return el.Err()
}

// UpgradeCatalog is an immutable table of upgrade definitions keyed by id.
type UpgradeCatalog map[string]*UpgradeDefinition

// Receipt records the outcome of a successful purchase.
type Receipt struct {
	Type       string
	NewLevel   int
	Cost       int
	NewCredits int
}

// Ledger tracks the player's current level on each upgrade track. Purchase is
// the only mutator and is atomic: on any failure the returned error carries
// the reason and nothing changes.
type Ledger struct {
	catalog UpgradeCatalog
	levels  map[string]int
}

// NewLedger builds a ledger over the catalog. Levels in the initial map are
// clamped into [0, max_level]; unknown ids are dropped.
func NewLedger(catalog UpgradeCatalog, levels map[string]int) *Ledger {
	l := &Ledger{
		catalog: catalog,
		levels:  make(map[string]int, len(catalog)),
	}
	for id, lvl := range levels {
		def, ok := catalog[id]
		if !ok {
			continue
		}
		if lvl < 0 {
			lvl = 0
		}
		if lvl > def.MaxLevel {
			lvl = def.MaxLevel
		}
		l.levels[id] = lvl
	}
	return l
}

// Level returns the current level of an upgrade, 0 if never purchased.
func (l *Ledger) Level(id string) int {
	return l.levels[id]
}

// Levels returns a copy of the full level map, including untouched tracks
// at level 0.
func (l *Ledger) Levels() map[string]int {
	out := make(map[string]int, len(l.catalog))
	for id := range l.catalog {
		out[id] = l.levels[id]
	}
	return out
}

// Effect returns the accumulated effect value of an upgrade
// (level × effect_per_level).
func (l *Ledger) Effect(id string) float64 {
	def, ok := l.catalog[id]
	if !ok {
		return 0
	}
	return float64(l.levels[id]) * def.EffectPerLevel
}

// Active reports whether a boolean-gated upgrade (scanner, magnet) is on.
func (l *Ledger) Active(id string) bool {
	return l.levels[id] > 0
}

// CanPurchase reports whether the next level of the upgrade can be bought
// with the given credits, returning the quoted cost when it can.
func (l *Ledger) CanPurchase(id string, credits int) (int, error) {
	def, ok := l.catalog[id]
	if !ok {
		return 0, fmt.Errorf("%w: unknown upgrade %q", ErrValidation, id)
	}

	level := l.levels[id]
	if level >= def.MaxLevel {
		return 0, fmt.Errorf("%w: %q at level %d", ErrMaxLevel, id, level)
	}

	cost := def.Cost(level)
	if cost > credits {
		return 0, fmt.Errorf("%w: %q costs %d, have %d", ErrAffordability, id, cost, credits)
	}

	return cost, nil
}

// Purchase buys the next level of the upgrade, debiting the quoted cost from
// credits. On failure credits and level are unchanged.
func (l *Ledger) Purchase(id string, credits int) (Receipt, error) {
	cost, err := l.CanPurchase(id, credits)
	if err != nil {
		return Receipt{}, err
	}

	l.levels[id]++

	return Receipt{
		Type:       id,
		NewLevel:   l.levels[id],
		Cost:       cost,
		NewCredits: credits - cost,
	}, nil
}
