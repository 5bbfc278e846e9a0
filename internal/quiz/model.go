package quiz

// Question is a single multiple-choice item. Correct indexes into Options.
type Question struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Correct  int      `json:"correct"`
}
