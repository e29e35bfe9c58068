package ai

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubGenerator struct {
	response string
	err      error
	prompt   string
}

func (s *stubGenerator) Generate(ctx context.Context, userID int64, prompt string) (string, error) {
	s.prompt = prompt
	return s.response, s.err
}

func (s *stubGenerator) Close() error { return nil }

func TestParseTypeLabel(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"tagged", "Type: Theft", "Theft"},
		{"tagged with trailing lines", "Type: Cyber Crime\nsome explanation", "Cyber Crime"},
		{"bare label", "Fraud", "Fraud"},
		{"multi line bare", "Harassment\nextra", "Harassment"},
		{"whitespace", "  Type:  Robbery  ", "Robbery"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseTypeLabel(tt.in))
		})
	}
}

func TestSuggestType(t *testing.T) {
	gen := &stubGenerator{response: "Type: Theft"}

	got, err := SuggestType(context.Background(), gen, 1, "someone stole my phone")
	require.NoError(t, err)
	assert.Equal(t, "Theft", got)
	assert.Contains(t, gen.prompt, "someone stole my phone")
}

func TestSuggestTypeGeneratorError(t *testing.T) {
	gen := &stubGenerator{err: errors.New("rate limited")}

	_, err := SuggestType(context.Background(), gen, 1, "description")
	require.Error(t, err)
}

func TestSuggestTypeEmptyResponse(t *testing.T) {
	gen := &stubGenerator{response: "   "}

	_, err := SuggestType(context.Background(), gen, 1, "description")
	require.Error(t, err)
}
