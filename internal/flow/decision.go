package flow

import "strings"

// DefaultType is used when the user skips type selection.
const DefaultType = "General Complaint"

// TypeDecision says how the final complaint type came about.
type TypeDecision int

const (
	// TypeConfirmed means the user accepted the AI suggestion.
	TypeConfirmed TypeDecision = iota
	// TypeSkipped means the user opted out and got the default label.
	TypeSkipped
	// TypeOverridden means the user typed their own label.
	TypeOverridden
)

var affirmatives = map[string]struct{}{
	"yes":     {},
	"correct": {},
	"ok":      {},
	"y":       {},
	"yeah":    {},
	"right":   {},
}

// DecideType resolves the user's reply to the type-confirmation prompt
// against the suggested type. An affirmative with no live suggestion falls
// back to the literal input.
func DecideType(input, suggested string) (string, TypeDecision) {
	trimmed := strings.TrimSpace(input)
	lower := strings.ToLower(trimmed)

	if _, ok := affirmatives[lower]; ok {
		if suggested != "" {
			return suggested, TypeConfirmed
		}
		return trimmed, TypeConfirmed
	}
	if lower == "skip" {
		return DefaultType, TypeSkipped
	}
	return trimmed, TypeOverridden
}

// isNegative reports whether the reply declines to add more details.
func isNegative(input string) bool {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "no", "skip", "none":
		return true
	}
	return false
}
