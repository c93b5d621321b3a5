package kanjidict

import (
	"math/rand/v2"
	"testing"
)

func intp(n int) *int { return &n }

func testDataset() []Entry {
	return []Entry{
		{Kanji: "水", Level: intp(5), Meanings: []string{"water", "liquid"}},
		{Kanji: "火", Level: intp(5), Meanings: []string{"fire"}},
		{Kanji: "術", Level: intp(2), Meanings: []string{"technique"}},
		{Kanji: "凧", Meanings: []string{"kite"}},
		{Kanji: "凩", Level: intp(5)},
	}
}

func TestFilterPool_LevelMatch(t *testing.T) {
	pool := filterPool(testDataset(), "5")

	if len(pool) != 3 {
		t.Fatalf("expected 3 entries for level 5, got %d", len(pool))
	}
	if pool[0].Kanji != "水" || pool[1].Kanji != "火" || pool[2].Kanji != "凩" {
		t.Errorf("pool not in dataset order: %v", pool)
	}
	if pool[0].Meaning != "water" {
		t.Errorf("expected first meaning projection, got %q", pool[0].Meaning)
	}
	if pool[2].Meaning != "" {
		t.Errorf("expected empty meaning for gloss-less entry, got %q", pool[2].Meaning)
	}
}

func TestFilterPool_ExcludesUntagged(t *testing.T) {
	for _, level := range Levels() {
		for _, p := range filterPool(testDataset(), level) {
			if p.Kanji == "凧" {
				t.Fatalf("untagged entry leaked into level %s pool", level)
			}
		}
	}
}

func TestFilterPool_EmptyForMissingLevel(t *testing.T) {
	if pool := filterPool(testDataset(), "1"); pool != nil {
		t.Errorf("expected empty pool for level 1, got %v", pool)
	}
}

func TestFilterPool_NonNumericLevel(t *testing.T) {
	if pool := filterPool(testDataset(), "beginner"); pool != nil {
		t.Errorf("expected empty pool for non-numeric level, got %v", pool)
	}
}

func TestFilterPool_Deterministic(t *testing.T) {
	a := filterPool(testDataset(), "5")
	b := filterPool(testDataset(), "5")
	if len(a) != len(b) {
		t.Fatalf("filter not deterministic: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("entry %d differs between runs: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestPickOne_EmptyPool(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 1))
	_, err := PickOne(nil, rng)
	if err != ErrNoEligibleKanji {
		t.Fatalf("expected ErrNoEligibleKanji, got %v", err)
	}
}

func TestPickOne_SeededIsDeterministic(t *testing.T) {
	pool := filterPool(testDataset(), "5")

	a, err := PickOne(pool, rand.New(rand.NewPCG(42, 0)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := PickOne(pool, rand.New(rand.NewPCG(42, 0)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a != b {
		t.Errorf("same seed produced different picks: %v vs %v", a, b)
	}
}

func TestPickOne_CoversPool(t *testing.T) {
	pool := filterPool(testDataset(), "5")
	rng := rand.New(rand.NewPCG(7, 7))

	seen := make(map[string]bool)
	for range 200 {
		p, err := PickOne(pool, rng)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		seen[p.Kanji] = true
	}
	if len(seen) != len(pool) {
		t.Errorf("expected all %d pool entries to be reachable, saw %d", len(pool), len(seen))
	}
}

func TestEmbeddedDataset(t *testing.T) {
	if Count() == 0 {
		t.Fatal("embedded dataset is empty")
	}
	for _, level := range []string{"5", "4", "3", "2", "1"} {
		if len(PoolForLevel(level)) == 0 {
			t.Errorf("embedded dataset has no entries for level %s", level)
		}
	}
}

func TestParseDataset_Rejects(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"not json", "nope"},
		{"empty", "[]"},
		{"missing kanji", `[{"level": 5, "meanings": []}]`},
		{"duplicate", `[{"kanji": "水"}, {"kanji": "水"}]`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := parseDataset([]byte(tc.raw)); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}
