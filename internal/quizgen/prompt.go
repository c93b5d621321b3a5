package quizgen

import (
	"fmt"
	"strings"
)

// formatRules pins the output format the parser expects. Changing this
// text changes the wire contract with ParseMCQ.
const formatRules = `Answer with the question on the first line, then exactly four option lines starting with "A. ", "B. ", "C. ", "D. ", then a line "Ans: X" where X is the letter of the correct option. Exactly one option is correct. After the answer line, write "---" on its own line and stop.

Example:
Which meaning fits the word 火山?
A. volcano
B. river
C. forest
D. harbor
Ans: A
---`

// buildPrompt constructs the generation prompt for one request.
func buildPrompt(input GenerateInput) string {
	var b strings.Builder

	fmt.Fprintf(&b, "You are writing a multiple-choice vocabulary quiz question for a student at JLPT level N%s.\n\n", input.Level)

	switch input.TaskType {
	case TaskCompoundMeaning:
		fmt.Fprintf(&b, "Pick a common Japanese word that contains the kanji %s and ask for its English meaning. The three wrong options must be plausible but clearly incorrect meanings.\n\n", input.Kanji)
	case TaskBaseMeaning:
		fmt.Fprintf(&b, "Ask for the English meaning of the kanji %s itself. The three wrong options must be meanings of other common kanji.\n\n", input.Kanji)
	case TaskReading:
		fmt.Fprintf(&b, "Pick a common Japanese word that contains the kanji %s and ask for its correct reading in hiragana. The three wrong options must be plausible misreadings.\n\n", input.Kanji)
	default:
		fmt.Fprintf(&b, "Write a vocabulary question about the kanji %s.\n\n", input.Kanji)
	}

	b.WriteString(formatRules)
	return b.String()
}
