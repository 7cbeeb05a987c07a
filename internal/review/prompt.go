package review

import (
	"fmt"
	"strings"
)

// buildPrompt constructs the analysis prompt for one hunk. The model is
// told the snippet's position in the file and asked to number findings
// relative to the snippet's first line, matching what the feedback
// extractor accepts.
func buildPrompt(snippet string, newStart int) string {
	var sb strings.Builder

	sb.WriteString("You are a professional code reviewer. Review the following code diff and provide concrete improvement suggestions.\n")
	sb.WriteString("Focus on code quality, potential bugs, performance issues, and best practices.\n")
	sb.WriteString(fmt.Sprintf("The snippet below starts at line %d of the post-change file; number your feedback lines relative to the snippet, starting at 1.\n\n", newStart))

	sb.WriteString("Diff:\n```diff\n")
	sb.WriteString(snippet)
	sb.WriteString("\n```\n\n")

	sb.WriteString("Return formatted feedback, one finding per line:\n")
	sb.WriteString("- **Line [line_number]**: [feedback]\n")
	sb.WriteString("- **Suggestion** (optional): ```[language]\n[suggested code]\n```\n")

	return sb.String()
}
