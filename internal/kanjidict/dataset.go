package kanjidict

import (
	_ "embed"
	"encoding/json"
	"fmt"
)

//go:embed kanji.json
var kanjiJSON []byte

// entries is the package-level dataset singleton, set by init().
var entries []Entry

func init() {
	loaded, err := parseDataset(kanjiJSON)
	if err != nil {
		panic(fmt.Sprintf("kanjidict: embedded dataset is invalid: %v", err))
	}
	entries = loaded
}

// parseDataset decodes the raw dataset and rejects structurally broken input.
func parseDataset(raw []byte) ([]Entry, error) {
	var loaded []Entry
	if err := json.Unmarshal(raw, &loaded); err != nil {
		return nil, fmt.Errorf("unmarshal: %w", err)
	}
	if len(loaded) == 0 {
		return nil, fmt.Errorf("dataset is empty")
	}
	seen := make(map[string]bool, len(loaded))
	for i, e := range loaded {
		if e.Kanji == "" {
			return nil, fmt.Errorf("entry %d has no kanji", i)
		}
		if seen[e.Kanji] {
			return nil, fmt.Errorf("duplicate kanji %q", e.Kanji)
		}
		seen[e.Kanji] = true
	}
	return loaded, nil
}

// AllEntries returns the full dataset in file order.
func AllEntries() []Entry {
	return entries
}

// Count returns the number of entries in the dataset.
func Count() int {
	return len(entries)
}
