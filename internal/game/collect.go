package game

import (
	"context"
	"fmt"
	"log/slog"
)

// Contact is a scanner reading for one live entity.
type Contact struct {
	Handle   Handle
	Type     string
	Position Vec3
	Distance float64
}

// Collect attempts to consume one entity. The transaction is all-or-nothing:
// liveness, cooldown and capacity are checked before anything mutates, so a
// failed collect leaves the zone, inventory and credits untouched. An entity
// id is consumed by at most one successful call; a second collect on the same
// handle fails with ErrAlreadyCollected.
func (e *Engine) Collect(h Handle) (ItemCollected, error) {
	ent, ok := e.zone.Get(h)
	if !ok {
		return e.reject(fmt.Errorf("%w", ErrAlreadyCollected))
	}

	now := e.now()
	if now.Sub(e.lastCollect) < e.Cooldown() {
		return e.reject(fmt.Errorf("%w", ErrCooldown))
	}

	def := e.catalog.Get(ent.Type)
	if def == nil {
		return e.reject(fmt.Errorf("%w: unknown debris type %q", ErrValidation, ent.Type))
	}

	if e.inv.Total()+1 > e.inv.Capacity() {
		return e.reject(fmt.Errorf("%w: %d held", ErrCapacity, e.inv.Total()))
	}

	// All checks passed; mutate.
	if _, ok := e.zone.Remove(h); !ok {
		return e.reject(fmt.Errorf("%w", ErrAlreadyCollected))
	}

	value := ItemValue(def, 1, e.rng)
	if _, err := e.inv.Add(ent.Type, 1, value); err != nil {
		// Unreachable given the capacity check above; surface it if the
		// invariant ever breaks.
		slog.Error("inventory add after capacity check", "error", err)
		return e.reject(err)
	}

	e.lastCollect = now
	e.stats.TotalCollected++

	collected := ItemCollected{Type: ent.Type, Value: value}
	e.pub.Publish(collected)
	e.publishInventory()
	e.persist()

	return collected, nil
}

func (e *Engine) reject(err error) (ItemCollected, error) {
	e.pub.Publish(CollectionRejected{Reason: err.Error()})
	return ItemCollected{}, err
}

// SaleResult describes a completed sell-everything transaction.
type SaleResult struct {
	Cleared []Stack
	Payout  int
}

// SellAll empties the inventory at the hub, crediting the aggregate value of
// every stack. The cleared stacks are returned so callers can itemize the
// payout. Selling an empty inventory is a no-op with zero payout.
func (e *Engine) SellAll() SaleResult {
	cleared := e.inv.Clear()
	if len(cleared) == 0 {
		return SaleResult{}
	}

	payout := 0
	sold := 0
	for _, s := range cleared {
		payout += s.Quantity * s.UnitValue
		sold += s.Quantity
	}

	old := e.credits
	e.credits += payout
	e.stats.DebrisSold += sold
	e.stats.CreditsEarned += payout

	e.publishInventory()
	e.pub.Publish(CreditsChanged{OldCredits: old, NewCredits: e.credits, Change: payout})
	e.persist()

	return SaleResult{Cleared: cleared, Payout: payout}
}

// Nearby returns handles for all live entities within the collection range.
func (e *Engine) Nearby() []Handle {
	return e.zone.Within(e.reference, e.CollectionRange())
}

// Scan returns contacts for all entities within scanner range, or nil when
// the scanner upgrade is not owned.
func (e *Engine) Scan() []Contact {
	r := e.ScannerRange()
	if r == 0 {
		return nil
	}

	var out []Contact
	for _, h := range e.zone.Within(e.reference, r) {
		ent, ok := e.zone.Get(h)
		if !ok {
			continue
		}
		out = append(out, Contact{
			Handle:   h,
			Type:     ent.Type,
			Position: ent.Position,
			Distance: ent.Position.DistanceTo(e.reference),
		})
	}
	return out
}

// magnetSweep auto-collects the nearest entity in magnet range once per
// cooldown period. Higher magnet levels widen the range; collection frequency
// follows the cooldown curve.
func (e *Engine) magnetSweep(ctx context.Context) {
	r := e.MagnetRange()
	if r == 0 {
		return
	}
	if e.now().Sub(e.lastCollect) < e.Cooldown() {
		return
	}
	if e.inv.Total() >= e.inv.Capacity() {
		return
	}

	handles := e.zone.Within(e.reference, r)
	if len(handles) == 0 {
		return
	}

	best := handles[0]
	bestDist := -1.0
	for _, h := range handles {
		ent, ok := e.zone.Get(h)
		if !ok {
			continue
		}
		d := ent.Position.DistanceTo(e.reference)
		if bestDist < 0 || d < bestDist {
			best = h
			bestDist = d
		}
	}

	if _, err := e.Collect(best); err != nil {
		slog.DebugContext(ctx, "magnet collect", "error", err)
	}
}
