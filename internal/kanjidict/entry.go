package kanjidict

// Entry is a single kanji in the reference dataset.
// The dataset is loaded once at startup and never mutated.
type Entry struct {
	// Kanji is the character itself, e.g. "水".
	Kanji string `json:"kanji"`

	// Level is the JLPT-style proficiency tier (5 = easiest, 1 = hardest).
	// Nil for characters outside the JLPT lists.
	Level *int `json:"level,omitempty"`

	// Meanings is the ordered list of English glosses. May be empty for
	// rare characters.
	Meanings []string `json:"meanings"`
}

// PoolEntry is one candidate for question generation: a kanji plus its
// primary gloss. Meaning is a display convenience only; the parser never
// sees it.
type PoolEntry struct {
	Kanji   string
	Meaning string
}

// FirstMeaning returns the first gloss or "" when none are recorded.
func (e Entry) FirstMeaning() string {
	if len(e.Meanings) == 0 {
		return ""
	}
	return e.Meanings[0]
}

// Levels returns the selectable levels in display order, easiest first.
func Levels() []string {
	return []string{"5", "4", "3", "2", "1"}
}
