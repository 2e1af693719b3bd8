package game

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/pixil98/go-errors"
)

// EngineConfig holds the base ship parameters that upgrade effects shift.
type EngineConfig struct {
	BaseSpeed           float64 `json:"base_speed"`
	BaseCapacity        int     `json:"base_capacity"`
	BaseCollectionRange float64 `json:"base_collection_range"`
	BaseCooldown        string  `json:"base_cooldown"` // duration string
	MinCooldown         string  `json:"min_cooldown"`
	CooldownStep        string  `json:"cooldown_step"` // reduction per collection upgrade level
	MagnetBaseRange     float64 `json:"magnet_base_range"`
	ScannerBaseRange    float64 `json:"scanner_base_range"`
}

func (c *EngineConfig) Validate() error {
	el := errors.NewErrorList()

	if c.BaseSpeed <= 0 {
		el.Add(fmt.Errorf("base_speed must be positive"))
	}
	if c.BaseCapacity <= 0 {
		el.Add(fmt.Errorf("base_capacity must be positive"))
	}
	if c.BaseCollectionRange <= 0 {
		el.Add(fmt.Errorf("base_collection_range must be positive"))
	}
	for name, v := range map[string]string{
		"base_cooldown": c.BaseCooldown,
		"min_cooldown":  c.MinCooldown,
		"cooldown_step": c.CooldownStep,
	} {
		if v == "" {
			el.Add(fmt.Errorf("%s is required", name))
			continue
		}
		if d, err := time.ParseDuration(v); err != nil {
			el.Add(fmt.Errorf("invalid %s %q: %w", name, v, err))
		} else if d < 0 {
			el.Add(fmt.Errorf("%s must not be negative", name))
		}
	}
	if c.MagnetBaseRange <= 0 {
		el.Add(fmt.Errorf("magnet_base_range must be positive"))
	}
	if c.ScannerBaseRange <= 0 {
		el.Add(fmt.Errorf("scanner_base_range must be positive"))
	}

	return el.Err()
}

// Stats counts lifetime player activity. Persisted with the profile.
type Stats struct {
	TotalCollected int `json:"total_collected"`
	DebrisSold     int `json:"debris_sold"`
	CreditsEarned  int `json:"credits_earned"`
}

// Snapshot is the durable view of engine state handed to the saver after
// every mutation.
type Snapshot struct {
	Credits   int
	Inventory []Stack
	Upgrades  map[string]int
	Stats     Stats
}

// Saver durably records a snapshot. Implementations must be synchronous; the
// engine treats a returned error as a failed save and keeps the in-memory
// state authoritative.
type Saver interface {
	Save(Snapshot) error
}

// Engine drives the debris lifecycle and the player economy. All state
// mutation happens on the tick goroutine; there is no locking.
type Engine struct {
	zone    *ZoneManager
	catalog Catalog
	ledger  *Ledger
	inv     *Inventory
	pub     Publisher
	saver   Saver
	rng     *rand.Rand
	now     func() time.Time

	baseSpeed    float64
	baseCapacity int
	baseRange    float64
	baseCooldown time.Duration
	minCooldown  time.Duration
	cooldownStep time.Duration
	magnetBase   float64
	scannerBase  float64

	credits     int
	stats       Stats
	reference   Vec3
	lastCollect time.Time
}

type EngineOpt func(*Engine)

// WithRNG overrides the randomness source, e.g. for deterministic tests.
func WithRNG(rng *rand.Rand) EngineOpt {
	return func(e *Engine) {
		e.rng = rng
	}
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) EngineOpt {
	return func(e *Engine) {
		e.now = now
	}
}

// NewEngine assembles an engine over a zone, catalog and ledger, restoring
// credits, inventory and stats from a prior session.
func NewEngine(cfg EngineConfig, zone *ZoneManager, catalog Catalog, ledger *Ledger, credits int, stacks []Stack, stats Stats, pub Publisher, saver Saver, opts ...EngineOpt) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfiguration, err)
	}

	baseCooldown, _ := time.ParseDuration(cfg.BaseCooldown)
	minCooldown, _ := time.ParseDuration(cfg.MinCooldown)
	cooldownStep, _ := time.ParseDuration(cfg.CooldownStep)

	e := &Engine{
		zone:         zone,
		catalog:      catalog,
		ledger:       ledger,
		pub:          pub,
		saver:        saver,
		rng:          rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		now:          time.Now,
		baseSpeed:    cfg.BaseSpeed,
		baseCapacity: cfg.BaseCapacity,
		baseRange:    cfg.BaseCollectionRange,
		baseCooldown: baseCooldown,
		minCooldown:  minCooldown,
		cooldownStep: cooldownStep,
		magnetBase:   cfg.MagnetBaseRange,
		scannerBase:  cfg.ScannerBaseRange,
		credits:      credits,
		stats:        stats,
	}

	for _, opt := range opts {
		opt(e)
	}

	e.inv = Restore(e.Capacity(), stacks)

	return e, nil
}

// Tick advances the zone simulation and runs the cargo magnet sweep.
func (e *Engine) Tick(ctx context.Context, dt time.Duration) error {
	e.zone.Advance(dt, e.reference)
	e.magnetSweep(ctx)
	return nil
}

// MoveTo updates the collector's position, used as the zone reference point.
func (e *Engine) MoveTo(pos Vec3) {
	e.reference = pos
}

func (e *Engine) Position() Vec3 {
	return e.reference
}

func (e *Engine) Credits() int {
	return e.credits
}

func (e *Engine) Stats() Stats {
	return e.stats
}

func (e *Engine) Inventory() []Stack {
	return e.inv.Snapshot()
}

func (e *Engine) Zone() *ZoneManager {
	return e.zone
}

// effectByCategory sums the effect values of every upgrade track in a category.
func (e *Engine) effectByCategory(cat UpgradeCategory) float64 {
	total := 0.0
	for id, def := range e.ledger.catalog {
		if def.Category() == cat {
			total += e.ledger.Effect(id)
		}
	}
	return total
}

func (e *Engine) levelByCategory(cat UpgradeCategory) int {
	total := 0
	for id, def := range e.ledger.catalog {
		if def.Category() == cat {
			total += e.ledger.Level(id)
		}
	}
	return total
}

// Speed returns current movement speed: base plus speed upgrade effects.
func (e *Engine) Speed() float64 {
	return e.baseSpeed + e.effectByCategory(UpgradeCategorySpeed)
}

// Capacity returns current inventory capacity: base plus capacity upgrades.
func (e *Engine) Capacity() int {
	return e.baseCapacity + int(e.effectByCategory(UpgradeCategoryCapacity))
}

// CollectionRange returns how far the collector reaches.
func (e *Engine) CollectionRange() float64 {
	return e.baseRange + e.effectByCategory(UpgradeCategoryCollection)
}

// Cooldown returns the delay between collections, floored at the configured
// minimum.
func (e *Engine) Cooldown() time.Duration {
	cd := e.baseCooldown - time.Duration(e.levelByCategory(UpgradeCategoryCollection))*e.cooldownStep
	if cd < e.minCooldown {
		cd = e.minCooldown
	}
	return cd
}

// MagnetRange returns the auto-collect radius, 0 when the magnet is not owned.
func (e *Engine) MagnetRange() float64 {
	if e.levelByCategory(UpgradeCategoryMagnet) == 0 {
		return 0
	}
	return e.magnetBase + e.effectByCategory(UpgradeCategoryMagnet)
}

// ScannerRange returns the scanner radius, 0 when the scanner is not owned.
func (e *Engine) ScannerRange() float64 {
	if e.levelByCategory(UpgradeCategoryScanner) == 0 {
		return 0
	}
	return e.scannerBase + e.effectByCategory(UpgradeCategoryScanner)
}

// ZoneAccessLevel returns the highest zone tier the player has unlocked.
func (e *Engine) ZoneAccessLevel() int {
	return e.levelByCategory(UpgradeCategoryZoneAccess)
}

// UpgradeLevel returns the current level of an upgrade track.
func (e *Engine) UpgradeLevel(id string) int {
	return e.ledger.Level(id)
}

// QuoteUpgrade returns the cost of the next level of an upgrade without
// purchasing it.
func (e *Engine) QuoteUpgrade(id string) (int, error) {
	return e.ledger.CanPurchase(id, e.credits)
}

// PurchaseUpgrade buys the next level of an upgrade, debiting credits and
// reapplying effects. On failure nothing changes and the failure is published.
func (e *Engine) PurchaseUpgrade(id string) (Receipt, error) {
	receipt, err := e.ledger.Purchase(id, e.credits)
	if err != nil {
		e.pub.Publish(UpgradePurchaseFailed{Type: id, Reason: err.Error()})
		return Receipt{}, err
	}

	old := e.credits
	e.credits = receipt.NewCredits

	// Capacity effects apply immediately; everything else is re-read through
	// the accessors on demand.
	e.inv.SetCapacity(e.Capacity())

	e.pub.Publish(UpgradePurchased{Type: id, NewLevel: receipt.NewLevel, Cost: receipt.Cost})
	e.pub.Publish(CreditsChanged{OldCredits: old, NewCredits: e.credits, Change: -receipt.Cost})
	e.persist()

	return receipt, nil
}

// AddCredits applies a credit delta, clamping the balance at zero.
func (e *Engine) AddCredits(delta int) int {
	old := e.credits
	e.credits += delta
	if e.credits < 0 {
		e.credits = 0
	}
	if delta > 0 {
		e.stats.CreditsEarned += delta
	}
	e.pub.Publish(CreditsChanged{OldCredits: old, NewCredits: e.credits, Change: delta})
	e.persist()
	return e.credits
}

func (e *Engine) publishInventory() {
	e.pub.Publish(InventoryChanged{
		Stacks:   e.inv.Snapshot(),
		Total:    e.inv.Total(),
		Capacity: e.inv.Capacity(),
	})
}

// persist writes the current state through the saver. A failed save is
// logged and published but does not roll anything back; the in-memory state
// stays authoritative for the session.
func (e *Engine) persist() {
	snap := Snapshot{
		Credits:   e.credits,
		Inventory: e.inv.Snapshot(),
		Upgrades:  e.ledger.Levels(),
		Stats:     e.stats,
	}
	if err := e.saver.Save(snap); err != nil {
		slog.Error("saving state", "error", err)
		e.pub.Publish(SaveFailed{Error: err.Error()})
	}
}
