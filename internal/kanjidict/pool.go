package kanjidict

import (
	"errors"
	"math/rand/v2"
	"strconv"
)

// ErrNoEligibleKanji is returned when a level has no tagged entries.
// This is a reported condition, not a fault: the caller shows a message
// and waits for the next attempt.
var ErrNoEligibleKanji = errors.New("no kanji available for the requested level")

// PoolForLevel filters the dataset down to entries tagged with the
// requested level. The filter is pure: same dataset and level always yield
// the same pool, in dataset order. Entries with no level tag are excluded.
// A non-numeric level yields an empty pool; validating the level string is
// the caller's concern.
func PoolForLevel(level string) []PoolEntry {
	return filterPool(entries, level)
}

func filterPool(dataset []Entry, level string) []PoolEntry {
	want, err := strconv.Atoi(level)
	if err != nil {
		return nil
	}

	var pool []PoolEntry
	for _, e := range dataset {
		if e.Level == nil || *e.Level != want {
			continue
		}
		pool = append(pool, PoolEntry{Kanji: e.Kanji, Meaning: e.FirstMeaning()})
	}
	return pool
}

// PickOne selects one pool entry uniformly at random. The randomness
// source is injected so callers can seed it deterministically in tests.
func PickOne(pool []PoolEntry, rng *rand.Rand) (PoolEntry, error) {
	if len(pool) == 0 {
		return PoolEntry{}, ErrNoEligibleKanji
	}
	return pool[rng.IntN(len(pool))], nil
}
