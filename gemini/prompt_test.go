package gemini

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"
)

func TestBuildSummaryPromptIsDeterministic(t *testing.T) {
	text := "Jane Doe, backend engineer. Ten years of Go, Postgres, and Kafka."

	first := BuildSummaryPrompt(text, "Backend Engineer")
	second := BuildSummaryPrompt(text, "Backend Engineer")

	require.Equal(t, first, second)
}

func TestBuildSummaryPromptContainsAllSections(t *testing.T) {
	prompt := BuildSummaryPrompt("some cv text", "Data Engineer")

	for _, section := range []string{
		"PROFESSIONAL SUMMARY",
		"KEY QUALIFICATIONS",
		"TECHNICAL SKILLS",
		"WORK EXPERIENCE HIGHLIGHTS",
		"EDUCATION & CERTIFICATIONS",
		"CAREER PROGRESSION ANALYSIS",
		"HIRING RECOMMENDATION",
		"INTERVIEW FOCUS AREAS",
	} {
		require.Contains(t, prompt, section)
	}

	require.Contains(t, prompt, "TARGET POSITION: Data Engineer")
	require.Contains(t, prompt, "some cv text")
}

func TestBuildSummaryPromptMissingJobPosition(t *testing.T) {
	prompt := BuildSummaryPrompt("some cv text", "")

	require.Contains(t, prompt, "TARGET POSITION: "+JobPositionPlaceholder)
}

func TestBuildSummaryPromptTruncatesLongText(t *testing.T) {
	long := strings.Repeat("a", MaxPromptTextChars+5000)

	prompt := BuildSummaryPrompt(long, "Backend Engineer")

	// The embedded source must be cut to the budget, never the full input
	require.NotContains(t, prompt, long)
	require.Contains(t, prompt, long[:MaxPromptTextChars])
	require.Less(t, len(prompt), MaxPromptTextChars+3000)
}

func TestBuildSummaryPromptTruncationKeepsValidUTF8(t *testing.T) {
	// Two ASCII bytes push the cutoff into the middle of a 3-byte rune
	text := "ab" + strings.Repeat("日", MaxPromptTextChars)

	prompt := BuildSummaryPrompt(text, "Backend Engineer")

	require.True(t, utf8.ValidString(prompt))
	require.NotContains(t, prompt, string(utf8.RuneError))
	require.Less(t, len(prompt), MaxPromptTextChars+3000)
}

func TestBuildSummaryPromptShortTextUntouched(t *testing.T) {
	text := strings.Repeat("b", 500)

	prompt := BuildSummaryPrompt(text, "QA Engineer")

	require.Contains(t, prompt, text)
}
