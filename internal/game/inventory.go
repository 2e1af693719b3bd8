package game

import (
	"fmt"
	"math"
	"math/rand/v2"
	"sort"
)

const (
	// bulkDiscountStep is the discount applied per full ten units of a type.
	bulkDiscountStep = 0.05
	// bulkDiscountMaxSteps caps the discount at 25% off.
	bulkDiscountMaxSteps = 5

	marketJitterMin = 0.9
	marketJitterMax = 1.1
)

// Stack holds the collected quantity of one debris type.
type Stack struct {
	Type     string `json:"type"`
	Quantity int    `json:"quantity"`
	// UnitValue is the credit value sampled when the stack was collected,
	// paid out per unit when the stack is sold.
	UnitValue int `json:"unit_value"`
}

// Inventory is a capacity-bounded, type-stacked collection of collected
// debris. The sum of stack quantities never exceeds the capacity.
type Inventory struct {
	capacity int
	stacks   map[string]*Stack
}

func NewInventory(capacity int) *Inventory {
	return &Inventory{
		capacity: capacity,
		stacks:   make(map[string]*Stack),
	}
}

// Restore rebuilds an inventory from persisted stacks, e.g. at load time.
func Restore(capacity int, stacks []Stack) *Inventory {
	inv := NewInventory(capacity)
	for _, s := range stacks {
		if s.Quantity <= 0 {
			continue
		}
		cp := s
		inv.stacks[s.Type] = &cp
	}
	return inv
}

// Total returns the sum of all stack quantities.
func (inv *Inventory) Total() int {
	total := 0
	for _, s := range inv.stacks {
		total += s.Quantity
	}
	return total
}

func (inv *Inventory) Capacity() int {
	return inv.capacity
}

// SetCapacity raises or lowers the capacity. Held items are never evicted;
// a lowered capacity only blocks further adds.
func (inv *Inventory) SetCapacity(capacity int) {
	inv.capacity = capacity
}

// Quantity returns the held amount of a type.
func (inv *Inventory) Quantity(typeId string) int {
	if s, ok := inv.stacks[typeId]; ok {
		return s.Quantity
	}
	return 0
}

// Add merges qty units into the stack for typeId and returns the new total
// held across all stacks. Fails without mutating if the add would exceed
// capacity.
func (inv *Inventory) Add(typeId string, qty, unitValue int) (int, error) {
	if qty <= 0 {
		return 0, fmt.Errorf("%w: quantity must be positive", ErrValidation)
	}
	if inv.Total()+qty > inv.capacity {
		return 0, fmt.Errorf("%w: %d held, capacity %d", ErrCapacity, inv.Total(), inv.capacity)
	}

	if s, ok := inv.stacks[typeId]; ok {
		s.Quantity += qty
		s.UnitValue = unitValue
	} else {
		inv.stacks[typeId] = &Stack{Type: typeId, Quantity: qty, UnitValue: unitValue}
	}

	return inv.Total(), nil
}

// Remove takes qty units out of the stack for typeId, dropping the stack when
// it empties.
func (inv *Inventory) Remove(typeId string, qty int) error {
	if qty <= 0 {
		return fmt.Errorf("%w: quantity must be positive", ErrValidation)
	}
	s, ok := inv.stacks[typeId]
	if !ok {
		return fmt.Errorf("%w: no %q held", ErrValidation, typeId)
	}
	if qty > s.Quantity {
		return fmt.Errorf("%w: %d held, %d requested", ErrValidation, s.Quantity, qty)
	}

	s.Quantity -= qty
	if s.Quantity == 0 {
		delete(inv.stacks, typeId)
	}
	return nil
}

// Clear empties the inventory and returns exactly what was held, so the
// caller can compute a sale payout.
func (inv *Inventory) Clear() []Stack {
	cleared := inv.Snapshot()
	inv.stacks = make(map[string]*Stack)
	return cleared
}

// Snapshot returns the current stacks sorted by type id.
func (inv *Inventory) Snapshot() []Stack {
	out := make([]Stack, 0, len(inv.stacks))
	for _, s := range inv.stacks {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Type < out[j].Type })
	return out
}

// BulkDiscount returns the price factor for selling qty units at once:
// 5% off per full ten units, capped at 25% off.
func BulkDiscount(qty int) float64 {
	steps := qty / 10
	if steps > bulkDiscountMaxSteps {
		steps = bulkDiscountMaxSteps
	}
	return 1.0 - float64(steps)*bulkDiscountStep
}

// ItemValue prices qty units of a debris type:
//
//	floor(base_value × rarity multiplier × market jitter × bulk discount)
//
// The market jitter is drawn uniformly from [0.9, 1.1] on every evaluation.
func ItemValue(def *DebrisType, qty int, rng *rand.Rand) int {
	jitter := marketJitterMin + rng.Float64()*(marketJitterMax-marketJitterMin)
	v := float64(def.BaseValue) * def.Rarity().Multiplier() * jitter * BulkDiscount(qty)
	return int(math.Floor(v))
}
