package bot

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ravitejak/legal-assist-bot/internal/rules"
)

func TestCleanMarkdown(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain text unchanged", "hello world", "hello world"},
		{"bold kept", "this is **bold** text", "this is **bold** text"},
		{"triple asterisks collapsed", "this is ***bold*** text", "this is **bold** text"},
		{"lone asterisks dropped", "a * stray * pair", "a  stray  pair"},
		{"lone asterisk next to bold", "**bold** and * stray", "**bold** and  stray"},
		{"heading becomes bold", "# Title\nbody", "*Title*\nbody"},
		{"deep heading becomes bold", "### Sub Title\nbody", "*Sub Title*\nbody"},
		{"blank runs collapsed", "a\n\n\n\nb", "a\n\nb"},
		{"surrounding space trimmed", "  text  ", "text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanMarkdown(tt.in))
		})
	}
}

func TestSplitMessageShortText(t *testing.T) {
	chunks := SplitMessage("short message", 100)
	require.Len(t, chunks, 1)
	assert.Equal(t, "short message", chunks[0])
}

func TestSplitMessageBreaksAtParagraphs(t *testing.T) {
	para := strings.Repeat("x", 60)
	text := para + "\n\n" + para + "\n\n" + para

	chunks := SplitMessage(text, 100)
	require.Len(t, chunks, 3)
	for _, chunk := range chunks {
		assert.LessOrEqual(t, len(chunk), 100)
		assert.Equal(t, para, chunk)
	}
}

func TestSplitMessageKeepsParagraphsTogether(t *testing.T) {
	text := "aaa\n\nbbb\n\n" + strings.Repeat("c", 90)

	chunks := SplitMessage(text, 100)
	require.Len(t, chunks, 2)
	assert.Equal(t, "aaa\n\nbbb", chunks[0])
}

func TestSplitMessageOversizedParagraph(t *testing.T) {
	big := strings.Repeat("y", 250)
	chunks := SplitMessage(big+"\n\n"+"tail", 100)
	require.GreaterOrEqual(t, len(chunks), 2)
	assert.Equal(t, big, chunks[0])
}

func TestTruncate(t *testing.T) {
	short := "short"
	assert.Equal(t, short, truncate(short, "hint"))

	long := strings.Repeat("z", maxMessageLength+100)
	got := truncate(long, "use /help for more")
	assert.LessOrEqual(t, len(got), maxMessageLength)
	assert.True(t, strings.HasSuffix(got, "use /help for more"))
}

func TestTruncateRespectsRuneBoundaries(t *testing.T) {
	// A 4-byte emoji straddling the cut position must not be split.
	long := strings.Repeat("🚨", 1200)
	got := truncate(long, "hint")
	assert.True(t, utf8.ValidString(got))
	assert.LessOrEqual(t, len(got), maxMessageLength)
	assert.True(t, strings.HasSuffix(got, "hint"))
}

func TestTruncateMultiByteAtEveryOffset(t *testing.T) {
	// Shift the emoji run by 0-3 single-byte characters so the cut lands on
	// each byte of a rune at least once.
	for pad := 0; pad < 4; pad++ {
		text := strings.Repeat("a", pad) + strings.Repeat("⚖", 2000)
		got := truncate(text, "hint")
		assert.True(t, utf8.ValidString(got), "pad %d", pad)
	}
}

func TestTopicFor(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"what does IPC 420 say", "law"},
		{"tell me about the consumer protection act", "law"},
		{"any pension scheme for farmers?", "schemes"},
		{"pm kisan yojana details", "schemes"},
		{"how do I file a complaint", "general"},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, topicFor(tt.text))
		})
	}
}

func TestFormatStations(t *testing.T) {
	got := formatStations(rules.NearestStations("theft"))

	assert.Contains(t, got, "Nearest Police Stations in Kakinada")
	assert.Contains(t, got, "1. Kakinada Town Police Station")
	assert.Contains(t, got, "0884-2365555")
	assert.Contains(t, got, "Police: 100")
	assert.Contains(t, got, "Women Helpline: 181")
}

func TestSuggestedQuestionsHaveGeneralFallback(t *testing.T) {
	require.NotEmpty(t, suggestedQuestions["general"])
	for topic, questions := range suggestedQuestions {
		assert.NotEmpty(t, questions, "topic %q has no questions", topic)
	}
}
