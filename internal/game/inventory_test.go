package game

import (
	"errors"
	"testing"

	"github.com/pixil98/go-testutil"
)

func TestInventory_Add(t *testing.T) {
	inv := NewInventory(10)

	total, err := inv.Add("scrap_metal", 3, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "total", total, 3)

	// Merging into an existing stack
	total, err = inv.Add("scrap_metal", 2, 6)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "total", total, 5)
	testutil.AssertEqual(t, "quantity", inv.Quantity("scrap_metal"), 5)
}

func TestInventory_AddRejectsOverCapacity(t *testing.T) {
	inv := NewInventory(10)

	if _, err := inv.Add("scrap_metal", 10, 5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Store is full; one more unit must be rejected without mutation
	_, err := inv.Add("scrap_metal", 1, 5)
	if !errors.Is(err, ErrCapacity) {
		t.Fatalf("expected ErrCapacity, got %v", err)
	}
	testutil.AssertEqual(t, "total after rejection", inv.Total(), 10)
}

func TestInventory_CapacityInvariant(t *testing.T) {
	inv := NewInventory(7)

	ops := []struct {
		add bool
		typ string
		qty int
	}{
		{true, "a", 3},
		{true, "b", 3},
		{true, "a", 5}, // rejected
		{false, "a", 2},
		{true, "c", 3},
		{true, "b", 2}, // rejected
		{false, "b", 3},
	}

	for i, op := range ops {
		if op.add {
			_, _ = inv.Add(op.typ, op.qty, 1)
		} else {
			_ = inv.Remove(op.typ, op.qty)
		}
		if inv.Total() > inv.Capacity() {
			t.Fatalf("op %d: total %d exceeds capacity %d", i, inv.Total(), inv.Capacity())
		}
	}
}

func TestInventory_Remove(t *testing.T) {
	inv := NewInventory(10)
	if _, err := inv.Add("scrap_metal", 5, 5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := map[string]struct {
		typ    string
		qty    int
		expErr bool
	}{
		"remove held amount":    {typ: "scrap_metal", qty: 2, expErr: false},
		"remove unknown type":   {typ: "ai_component", qty: 1, expErr: true},
		"remove more than held": {typ: "scrap_metal", qty: 10, expErr: true},
		"remove zero":           {typ: "scrap_metal", qty: 0, expErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			err := inv.Remove(tt.typ, tt.qty)
			if tt.expErr {
				if !errors.Is(err, ErrValidation) {
					t.Errorf("expected ErrValidation, got %v", err)
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestInventory_RemoveDropsEmptyStack(t *testing.T) {
	inv := NewInventory(10)
	if _, err := inv.Add("scrap_metal", 2, 5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := inv.Remove("scrap_metal", 2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	testutil.AssertEqual(t, "stack count", len(inv.Snapshot()), 0)
}

func TestInventory_Clear(t *testing.T) {
	inv := NewInventory(20)
	_, _ = inv.Add("scrap_metal", 5, 5)
	_, _ = inv.Add("ai_component", 2, 1200)

	cleared := inv.Clear()

	testutil.AssertEqual(t, "cleared stacks", len(cleared), 2)
	testutil.AssertEqual(t, "total after clear", inv.Total(), 0)

	// Sorted by type id
	testutil.AssertEqual(t, "first type", cleared[0].Type, "ai_component")
	testutil.AssertEqual(t, "first quantity", cleared[0].Quantity, 2)
	testutil.AssertEqual(t, "second type", cleared[1].Type, "scrap_metal")
	testutil.AssertEqual(t, "second quantity", cleared[1].Quantity, 5)
}

func TestInventory_Restore(t *testing.T) {
	inv := Restore(10, []Stack{
		{Type: "scrap_metal", Quantity: 4, UnitValue: 5},
		{Type: "empty", Quantity: 0, UnitValue: 1},
	})

	testutil.AssertEqual(t, "total", inv.Total(), 4)
	testutil.AssertEqual(t, "empty stacks dropped", inv.Quantity("empty"), 0)
}

func TestBulkDiscount(t *testing.T) {
	tests := map[string]struct {
		qty int
		exp float64
	}{
		"single item":     {qty: 1, exp: 1.0},
		"nine items":      {qty: 9, exp: 1.0},
		"ten items":       {qty: 10, exp: 0.95},
		"twenty items":    {qty: 20, exp: 0.9},
		"fifty items":     {qty: 50, exp: 0.75},
		"capped at 25%":   {qty: 100, exp: 0.75},
		"far beyond cap":  {qty: 1000, exp: 0.75},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			testutil.AssertEqual(t, "discount", BulkDiscount(tt.qty), tt.exp)
		})
	}
}

func TestItemValue_JitterRange(t *testing.T) {
	def := &DebrisType{Name: "Test", BaseValue: 500, SpawnWeight: 1, RarityStr: "common"}
	rng := testRNG(99)

	// Market jitter only: floor(500 × [0.9, 1.1]) for a single unit
	for range 1000 {
		v := ItemValue(def, 1, rng)
		if v < 450 || v > 550 {
			t.Fatalf("value %d outside jitter range [450, 550]", v)
		}
	}
}

func TestItemValue_RarityMultiplier(t *testing.T) {
	rng := testRNG(3)
	def := &DebrisType{Name: "Artifact", BaseValue: 100, SpawnWeight: 1, RarityStr: "legendary"}

	// Legendary multiplies by 5.0, so even the lowest jitter beats 400
	for range 100 {
		v := ItemValue(def, 1, rng)
		if v < 450 || v > 550 {
			t.Fatalf("value %d outside legendary range [450, 550]", v)
		}
	}
}

func TestItemValue_BulkDiscountApplied(t *testing.T) {
	def := &DebrisType{Name: "Test", BaseValue: 100, SpawnWeight: 1, RarityStr: "common"}
	rng := testRNG(5)

	// 50 units: 25% off, so floor(100 × [0.9, 1.1] × 0.75)
	for range 100 {
		v := ItemValue(def, 50, rng)
		if v < 67 || v > 82 {
			t.Fatalf("value %d outside discounted range [67, 82]", v)
		}
	}
}
