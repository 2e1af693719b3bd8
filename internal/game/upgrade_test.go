package game

import (
	"errors"
	"testing"

	"github.com/pixil98/go-testutil"
)

func testUpgrades() UpgradeCatalog {
	return UpgradeCatalog{
		"speed_boost": {
			Name:           "Speed Boost",
			MaxLevel:       5,
			BaseCost:       100,
			CostMultiplier: 1.5,
			EffectPerLevel: 50,
			CategoryStr:    "speed",
		},
		"inventory_expansion": {
			Name:           "Inventory Expansion",
			MaxLevel:       3,
			BaseCost:       150,
			CostMultiplier: 1.8,
			EffectPerLevel: 10,
			CategoryStr:    "capacity",
		},
	}
}

func TestUpgradeDefinition_Validate(t *testing.T) {
	tests := map[string]struct {
		def    UpgradeDefinition
		expErr string
	}{
		"valid": {
			def: UpgradeDefinition{Name: "Test", MaxLevel: 5, BaseCost: 100, CostMultiplier: 1.5, CategoryStr: "speed"},
		},
		"missing name": {
			def:    UpgradeDefinition{MaxLevel: 5, BaseCost: 100, CostMultiplier: 1.5, CategoryStr: "speed"},
			expErr: "name is required",
		},
		"flat cost curve": {
			def:    UpgradeDefinition{Name: "Test", MaxLevel: 5, BaseCost: 100, CostMultiplier: 1.0, CategoryStr: "speed"},
			expErr: "cost_multiplier must be greater than 1.0",
		},
		"bad category": {
			def:    UpgradeDefinition{Name: "Test", MaxLevel: 5, BaseCost: 100, CostMultiplier: 1.5, CategoryStr: "turbo"},
			expErr: "is invalid",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			err := tt.def.Validate()
			if tt.expErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
			} else {
				testutil.AssertErrorContains(t, err, tt.expErr)
			}
		})
	}
}

func TestUpgradeDefinition_CostMonotonic(t *testing.T) {
	for id, def := range DefaultUpgrades() {
		for level := 0; level < def.MaxLevel; level++ {
			if def.Cost(level+1) <= def.Cost(level) {
				t.Errorf("%s: cost(%d)=%d not greater than cost(%d)=%d",
					id, level+1, def.Cost(level+1), level, def.Cost(level))
			}
		}
	}
}

func TestLedger_PurchaseCostCurve(t *testing.T) {
	l := NewLedger(testUpgrades(), nil)

	// First purchase costs exactly the base cost
	receipt, err := l.Purchase("speed_boost", 1000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "first cost", receipt.Cost, 100)
	testutil.AssertEqual(t, "first level", receipt.NewLevel, 1)
	testutil.AssertEqual(t, "credits after", receipt.NewCredits, 900)

	// The next quote follows the curve exactly
	cost, err := l.CanPurchase("speed_boost", 1000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "second cost", cost, 150)
}

func TestLedger_PurchaseUnknownUpgrade(t *testing.T) {
	l := NewLedger(testUpgrades(), nil)

	_, err := l.Purchase("warp_drive", 10000)
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestLedger_PurchaseInsufficientCredits(t *testing.T) {
	l := NewLedger(testUpgrades(), nil)

	_, err := l.Purchase("speed_boost", 99)
	if !errors.Is(err, ErrAffordability) {
		t.Fatalf("expected ErrAffordability, got %v", err)
	}

	// Failed purchase changes nothing
	testutil.AssertEqual(t, "level unchanged", l.Level("speed_boost"), 0)
}

func TestLedger_PurchaseMaxLevel(t *testing.T) {
	l := NewLedger(testUpgrades(), map[string]int{"inventory_expansion": 3})

	_, err := l.Purchase("inventory_expansion", 1000000)
	if !errors.Is(err, ErrMaxLevel) {
		t.Fatalf("expected ErrMaxLevel, got %v", err)
	}
	testutil.AssertEqual(t, "level unchanged", l.Level("inventory_expansion"), 3)
}

func TestLedger_PurchaseToMax(t *testing.T) {
	l := NewLedger(testUpgrades(), nil)

	credits := 1000000
	for i := 1; i <= 3; i++ {
		receipt, err := l.Purchase("inventory_expansion", credits)
		if err != nil {
			t.Fatalf("purchase %d: unexpected error: %v", i, err)
		}
		testutil.AssertEqual(t, "level", receipt.NewLevel, i)
		credits = receipt.NewCredits
	}

	if _, err := l.Purchase("inventory_expansion", credits); !errors.Is(err, ErrMaxLevel) {
		t.Fatalf("expected ErrMaxLevel, got %v", err)
	}
}

func TestLedger_ClampsRestoredLevels(t *testing.T) {
	l := NewLedger(testUpgrades(), map[string]int{
		"speed_boost":         99, // above max
		"inventory_expansion": -2, // below zero
		"retired_upgrade":     3,  // no longer in the catalog
	})

	testutil.AssertEqual(t, "clamped high", l.Level("speed_boost"), 5)
	testutil.AssertEqual(t, "clamped low", l.Level("inventory_expansion"), 0)
	testutil.AssertEqual(t, "dropped unknown", l.Level("retired_upgrade"), 0)
}

func TestLedger_EffectAndActive(t *testing.T) {
	l := NewLedger(testUpgrades(), map[string]int{"speed_boost": 2})

	testutil.AssertEqual(t, "effect", l.Effect("speed_boost"), 100.0)
	testutil.AssertEqual(t, "active", l.Active("speed_boost"), true)
	testutil.AssertEqual(t, "inactive", l.Active("inventory_expansion"), false)
	testutil.AssertEqual(t, "unknown effect", l.Effect("warp_drive"), 0.0)
}

func TestLedger_Levels(t *testing.T) {
	l := NewLedger(testUpgrades(), map[string]int{"speed_boost": 1})

	levels := l.Levels()
	testutil.AssertEqual(t, "track count", len(levels), 2)
	testutil.AssertEqual(t, "purchased", levels["speed_boost"], 1)
	testutil.AssertEqual(t, "untouched", levels["inventory_expansion"], 0)
}
