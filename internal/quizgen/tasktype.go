package quizgen

import "math/rand/v2"

// TaskType is the archetype of question requested from the backend.
// It only parameterizes the generation prompt; the parser treats all
// task types identically.
type TaskType string

const (
	// TaskCompoundMeaning asks for the meaning of a compound word
	// containing the kanji.
	TaskCompoundMeaning TaskType = "compound-meaning"

	// TaskBaseMeaning asks for the base meaning of the kanji itself.
	TaskBaseMeaning TaskType = "base-meaning"

	// TaskReading asks for the correct reading of the kanji.
	TaskReading TaskType = "reading"
)

// AllTaskTypes returns the closed enumeration in display order.
func AllTaskTypes() []TaskType {
	return []TaskType{TaskCompoundMeaning, TaskBaseMeaning, TaskReading}
}

// PickTaskType selects one task type uniformly at random.
func PickTaskType(rng *rand.Rand) TaskType {
	all := AllTaskTypes()
	return all[rng.IntN(len(all))]
}
