package game

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/pixil98/go-errors"
)

// placementAttempts bounds the rejection sampling loop when a minimum spawn
// distance is configured. Exhausting the budget skips the cycle silently.
const placementAttempts = 10

// ZoneConfig describes the static spawn behavior of a zone.
type ZoneConfig struct {
	Bounds           Bounds  `json:"bounds"`
	MaxEntities      int     `json:"max_entities"`
	SpawnInterval    string  `json:"spawn_interval"` // duration string (e.g., "2s")
	DespawnDistance  float64 `json:"despawn_distance"`
	MinSpawnDistance float64 `json:"min_spawn_distance"`
}

func (c *ZoneConfig) Validate() error {
	el := errors.NewErrorList()

	if c.Bounds.Min.X >= c.Bounds.Max.X ||
		c.Bounds.Min.Y >= c.Bounds.Max.Y ||
		c.Bounds.Min.Z >= c.Bounds.Max.Z {
		el.Add(fmt.Errorf("bounds min must be less than max on every axis"))
	}
	if c.MaxEntities <= 0 {
		el.Add(fmt.Errorf("max_entities must be positive"))
	}
	if c.SpawnInterval == "" {
		el.Add(fmt.Errorf("spawn_interval is required"))
	} else if d, err := time.ParseDuration(c.SpawnInterval); err != nil {
		el.Add(fmt.Errorf("invalid spawn_interval %q: %w", c.SpawnInterval, err))
	} else if d <= 0 {
		el.Add(fmt.Errorf("spawn_interval must be positive"))
	}
	if c.DespawnDistance <= 0 {
		el.Add(fmt.Errorf("despawn_distance must be positive"))
	}
	if c.MinSpawnDistance < 0 {
		el.Add(fmt.Errorf("min_spawn_distance must not be negative"))
	}

	return el.Err()
}

// Entity is a single piece of spawned debris.
type Entity struct {
	Id        string
	Type      string
	Position  Vec3
	SpawnedAt time.Time
}

// Handle addresses a live entity by slot index and generation. A handle held
// past the entity's removal no longer resolves; the generation check catches
// it instead of a dangling pointer.
type Handle struct {
	Index      int
	Generation uint64
}

type slot struct {
	generation uint64
	live       bool
	entity     Entity
}

// ZoneManager owns the set of live entities in a zone. It spawns new debris
// on an interval, evicts debris the reference point has wandered away from,
// and answers spatial range queries. Not safe for concurrent use; all calls
// happen on the tick goroutine.
type ZoneManager struct {
	cfg           ZoneConfig
	catalog       Catalog
	table         *SpawnTable
	pub           Publisher
	rng           *rand.Rand
	spawnInterval time.Duration

	slots []slot
	free  []int
	count int

	spawnTimer time.Duration
}

func NewZoneManager(cfg ZoneConfig, catalog Catalog, pub Publisher, rng *rand.Rand) (*ZoneManager, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfiguration, err)
	}

	table, err := NewSpawnTable(catalog)
	if err != nil {
		return nil, err
	}

	interval, err := time.ParseDuration(cfg.SpawnInterval)
	if err != nil {
		return nil, fmt.Errorf("%w: parsing spawn_interval: %w", ErrConfiguration, err)
	}

	return &ZoneManager{
		cfg:           cfg,
		catalog:       catalog,
		table:         table,
		pub:           pub,
		rng:           rng,
		spawnInterval: interval,
	}, nil
}

// Count returns the number of live entities.
func (z *ZoneManager) Count() int {
	return z.count
}

// Advance runs one simulation step: a despawn pass against the reference
// point, then the spawn timer.
func (z *ZoneManager) Advance(dt time.Duration, reference Vec3) {
	z.despawnPass(reference)

	z.spawnTimer += dt
	for z.spawnTimer >= z.spawnInterval {
		z.spawnTimer -= z.spawnInterval
		z.trySpawn(reference)
	}
}

func (z *ZoneManager) despawnPass(reference Vec3) {
	for i := range z.slots {
		s := &z.slots[i]
		if !s.live {
			continue
		}
		if s.entity.Position.DistanceTo(reference) > z.cfg.DespawnDistance {
			id := s.entity.Id
			z.release(i)
			z.pub.Publish(EntityDespawned{Id: id})
		}
	}
}

func (z *ZoneManager) trySpawn(reference Vec3) {
	if z.count >= z.cfg.MaxEntities {
		return
	}

	pos, ok := z.placement(reference)
	if !ok {
		// No valid position this cycle; skip, don't error.
		slog.Debug("spawn placement rejected", "attempts", placementAttempts)
		return
	}

	ent := Entity{
		Id:        uuid.New().String(),
		Type:      z.table.Sample(z.rng),
		Position:  pos,
		SpawnedAt: time.Now(),
	}
	z.insert(ent)

	z.pub.Publish(EntitySpawned{Id: ent.Id, Type: ent.Type, Position: ent.Position})
}

// placement draws candidate positions uniformly inside the zone bounds,
// rejecting any closer to the reference point than the configured minimum.
func (z *ZoneManager) placement(reference Vec3) (Vec3, bool) {
	b := z.cfg.Bounds
	for range placementAttempts {
		pos := Vec3{
			X: b.Min.X + z.rng.Float64()*(b.Max.X-b.Min.X),
			Y: b.Min.Y + z.rng.Float64()*(b.Max.Y-b.Min.Y),
			Z: b.Min.Z + z.rng.Float64()*(b.Max.Z-b.Min.Z),
		}
		if z.cfg.MinSpawnDistance > 0 && pos.DistanceTo(reference) < z.cfg.MinSpawnDistance {
			continue
		}
		return pos, true
	}
	return Vec3{}, false
}

func (z *ZoneManager) insert(ent Entity) Handle {
	var idx int
	if n := len(z.free); n > 0 {
		idx = z.free[n-1]
		z.free = z.free[:n-1]
	} else {
		z.slots = append(z.slots, slot{})
		idx = len(z.slots) - 1
	}

	s := &z.slots[idx]
	s.generation++
	s.live = true
	s.entity = ent
	z.count++

	return Handle{Index: idx, Generation: s.generation}
}

func (z *ZoneManager) release(idx int) {
	s := &z.slots[idx]
	s.live = false
	s.entity = Entity{}
	z.free = append(z.free, idx)
	z.count--
}

// Get resolves a handle to its entity. A stale handle (entity collected or
// despawned since the handle was taken) resolves to false.
func (z *ZoneManager) Get(h Handle) (Entity, bool) {
	if h.Index < 0 || h.Index >= len(z.slots) {
		return Entity{}, false
	}
	s := &z.slots[h.Index]
	if !s.live || s.generation != h.Generation {
		return Entity{}, false
	}
	return s.entity, true
}

// Remove takes a live entity out of the zone, returning it. A stale handle
// returns false and removes nothing.
func (z *ZoneManager) Remove(h Handle) (Entity, bool) {
	ent, ok := z.Get(h)
	if !ok {
		return Entity{}, false
	}
	z.release(h.Index)
	return ent, true
}

// Within returns handles for all live entities inside radius of point.
// Linear scan; live counts are expected to stay in the tens.
func (z *ZoneManager) Within(point Vec3, radius float64) []Handle {
	var out []Handle
	for i := range z.slots {
		s := &z.slots[i]
		if s.live && s.entity.Position.DistanceTo(point) <= radius {
			out = append(out, Handle{Index: i, Generation: s.generation})
		}
	}
	return out
}
