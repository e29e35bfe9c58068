package bot

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// maxMessageLength stays under Telegram's 4096-character cap with headroom
// for formatting.
const maxMessageLength = 3800

var (
	tripleAsterisks = regexp.MustCompile(`\*\*\*+`)
	heading         = regexp.MustCompile(`(?m)^#{1,3}\s+(.+)$`)
	blankRuns       = regexp.MustCompile(`\n{3,}`)
)

// CleanMarkdown normalizes model output for Telegram's Markdown parser:
// collapses asterisk runs, drops stray single asterisks, converts headings
// to bold, and trims blank-line runs.
func CleanMarkdown(text string) string {
	text = tripleAsterisks.ReplaceAllString(text, "**")
	// Drop lone asterisks while keeping double ones intact.
	text = strings.ReplaceAll(text, "**", "\x00")
	text = strings.ReplaceAll(text, "*", "")
	text = strings.ReplaceAll(text, "\x00", "**")
	text = heading.ReplaceAllString(text, "*$1*")
	text = blankRuns.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}

// SplitMessage breaks long text into chunks at paragraph boundaries, each
// within max characters. A single oversized paragraph becomes its own chunk.
func SplitMessage(text string, max int) []string {
	if len(text) <= max {
		return []string{text}
	}

	paragraphs := strings.Split(text, "\n\n")
	var chunks []string
	var current strings.Builder

	for _, para := range paragraphs {
		if current.Len()+len(para)+2 >= max && current.Len() > 0 {
			chunks = append(chunks, strings.TrimSpace(current.String()))
			current.Reset()
		}
		current.WriteString(para)
		current.WriteString("\n\n")
	}
	if current.Len() > 0 {
		chunks = append(chunks, strings.TrimSpace(current.String()))
	}

	return chunks
}

// truncate cuts the text under the message cap and appends a hint line. The
// cut backs up to a rune boundary so emoji-heavy text stays valid UTF-8.
func truncate(text, hint string) string {
	if len(text) <= maxMessageLength {
		return text
	}
	cut := 3700
	for cut > 0 && !utf8.RuneStart(text[cut]) {
		cut--
	}
	return text[:cut] + "...\n\n" + hint
}
