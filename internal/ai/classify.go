package ai

import (
	"context"
	"fmt"
	"strings"
)

// SuggestType asks the generator for a single complaint-type label for the
// given incident description. Callers treat an error as a cue to ask the
// user directly.
func SuggestType(ctx context.Context, gen Generator, userID int64, description string) (string, error) {
	raw, err := gen.Generate(ctx, userID, TypePrompt(description))
	if err != nil {
		return "", err
	}

	suggested := ParseTypeLabel(raw)
	if suggested == "" {
		return "", fmt.Errorf("no type label in response")
	}
	return suggested, nil
}

// ParseTypeLabel extracts the label from a "Type: X" style response: the
// text after a "Type:" tag if present, truncated to the first line.
func ParseTypeLabel(raw string) string {
	label := strings.TrimSpace(raw)
	if _, after, found := strings.Cut(label, "Type:"); found {
		label = strings.TrimSpace(after)
	}
	if line, _, found := strings.Cut(label, "\n"); found {
		label = strings.TrimSpace(line)
	}
	return label
}
