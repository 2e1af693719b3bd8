package game

import (
	"errors"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/pixil98/go-testutil"
)

func testRNG(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed+1))
}

func TestNewSpawnTable_EmptyCatalog(t *testing.T) {
	_, err := NewSpawnTable(Catalog{})
	if !errors.Is(err, ErrConfiguration) {
		t.Fatalf("expected ErrConfiguration, got %v", err)
	}
}

func TestNewSpawnTable_AllZeroWeights(t *testing.T) {
	catalog := Catalog{
		"a": {Name: "A", BaseValue: 1, SpawnWeight: 0, RarityStr: "common"},
		"b": {Name: "B", BaseValue: 1, SpawnWeight: 0, RarityStr: "common"},
	}

	_, err := NewSpawnTable(catalog)
	if !errors.Is(err, ErrConfiguration) {
		t.Fatalf("expected ErrConfiguration, got %v", err)
	}
}

func TestSpawnTable_ExcludesZeroWeightTypes(t *testing.T) {
	catalog := Catalog{
		"common":   {Name: "Common", BaseValue: 1, SpawnWeight: 10, RarityStr: "common"},
		"disabled": {Name: "Disabled", BaseValue: 1, SpawnWeight: 0, RarityStr: "common"},
	}

	table, err := NewSpawnTable(catalog)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rng := testRNG(1)
	for range 100 {
		if id := table.Sample(rng); id == "disabled" {
			t.Fatal("sampled a zero-weight type")
		}
	}
}

func TestSpawnTable_TotalWeight(t *testing.T) {
	catalog := Catalog{
		"a": {Name: "A", BaseValue: 1, SpawnWeight: 60, RarityStr: "common"},
		"b": {Name: "B", BaseValue: 1, SpawnWeight: 25, RarityStr: "uncommon"},
		"c": {Name: "C", BaseValue: 1, SpawnWeight: 15, RarityStr: "rare"},
	}

	table, err := NewSpawnTable(catalog)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	testutil.AssertEqual(t, "total weight", table.TotalWeight(), 100)
}

func TestSpawnTable_SampleFrequencies(t *testing.T) {
	catalog := Catalog{
		"a": {Name: "A", BaseValue: 1, SpawnWeight: 10, RarityStr: "common"},
		"b": {Name: "B", BaseValue: 1, SpawnWeight: 30, RarityStr: "common"},
		"c": {Name: "C", BaseValue: 1, SpawnWeight: 60, RarityStr: "common"},
	}

	table, err := NewSpawnTable(catalog)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	const samples = 100000
	counts := map[string]int{}
	rng := testRNG(42)
	for range samples {
		counts[table.Sample(rng)]++
	}

	// Observed frequencies converge to weight/total within tolerance
	for id, weight := range map[string]int{"a": 10, "b": 30, "c": 60} {
		expected := float64(weight) / 100.0
		observed := float64(counts[id]) / samples
		if math.Abs(observed-expected) > 0.01 {
			t.Errorf("type %s: observed frequency %.4f, expected %.4f", id, observed, expected)
		}
	}
}

func TestSpawnTable_Deterministic(t *testing.T) {
	catalog := DefaultCatalog()

	table, err := NewSpawnTable(catalog)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	first := make([]string, 50)
	rng := testRNG(7)
	for i := range first {
		first[i] = table.Sample(rng)
	}

	rng = testRNG(7)
	for i := range first {
		if got := table.Sample(rng); got != first[i] {
			t.Fatalf("sample %d: got %s, want %s", i, got, first[i])
		}
	}
}
