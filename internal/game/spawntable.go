package game

import (
	"fmt"
	"math/rand/v2"
	"sort"
)

// SpawnTable selects debris types with probability proportional to their
// spawn weights. Weights are stored as a cumulative array and sampled with a
// binary search, so build cost is O(n) and each sample is O(log n) no matter
// how large the weights are.
type SpawnTable struct {
	ids []string
	cum []int
}

// NewSpawnTable builds a table from the catalog. Types with zero weight are
// excluded from sampling. A catalog with no positive weights is a
// configuration error.
func NewSpawnTable(catalog Catalog) (*SpawnTable, error) {
	ids := make([]string, 0, len(catalog))
	for id, def := range catalog {
		if def.SpawnWeight > 0 {
			ids = append(ids, id)
		}
	}
	// Map order is random; sort so identical seeds sample identically.
	sort.Strings(ids)

	if len(ids) == 0 {
		return nil, fmt.Errorf("%w: spawn table has no weighted entries", ErrConfiguration)
	}

	t := &SpawnTable{
		ids: ids,
		cum: make([]int, len(ids)),
	}

	total := 0
	for i, id := range ids {
		total += catalog[id].SpawnWeight
		t.cum[i] = total
	}

	return t, nil
}

// TotalWeight returns the sum of all weights in the table.
func (t *SpawnTable) TotalWeight() int {
	return t.cum[len(t.cum)-1]
}

// Sample draws one type id from the table.
func (t *SpawnTable) Sample(rng *rand.Rand) string {
	roll := rng.IntN(t.TotalWeight())
	i := sort.SearchInts(t.cum, roll+1)
	return t.ids[i]
}
