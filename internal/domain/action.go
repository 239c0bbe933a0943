package domain

import "regexp"

// Pattern is the shape a line of user input must fully match.
type Pattern struct {
	Name string
	re   *regexp.Regexp
}

// NewPattern compiles expr into a Pattern. expr must be anchored by the caller.
func NewPattern(name, expr string) Pattern {
	return Pattern{Name: name, re: regexp.MustCompile(expr)}
}

// Match reports whether input fully matches the pattern.
func (p Pattern) Match(input string) bool {
	return p.re != nil && p.re.MatchString(input)
}

// Input patterns used by the library actions
var (
	// PatternText accepts letters, digits and spaces
	PatternText = NewPattern("text", `^[a-zA-Z0-9 ]+$`)

	// PatternYear accepts exactly four digits
	PatternYear = NewPattern("year", `^[0-9]{4}$`)
)

// Field is one validated input an action collects before it runs.
type Field struct {
	Prompt  string
	Pattern Pattern
}

// Outcome is what an action reports back to the front end.
type Outcome struct {
	Output string // Rendered text, may be empty
	Pause  bool   // Block on "Press enter to continue..." afterwards
}

// Action is a named menu entry.
// Run receives the store handle and the collected field values in Fields order.
type Action struct {
	Label string

	// Heading is printed once before the first field prompt
	Heading string

	// ClearBeforeInput clears the screen before the first field prompt
	ClearBeforeInput bool

	Fields []Field
	Run    func(store Store, input []string) Outcome
}
