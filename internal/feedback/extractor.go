// Package feedback extracts structured line comments from the free-text
// response of the LLM reviewer. The model is asked to report findings as
// "- **Line N**: <comment>" bullets; everything else in the response
// (prose, suggested-code blocks) is ignored.
package feedback

import (
	"regexp"
	"strconv"
	"strings"
)

// Item is one extracted finding. Line is 1-based and relative to the
// start of the hunk snippet the model was shown, not to the source file.
type Item struct {
	Line    int
	Comment string
}

var lineCommentRe = regexp.MustCompile(`^- \*\*Line (\d+)\*\*: (.*)`)

// Extract returns the line-anchored findings in feedbackText, in the
// order they appear. Malformed or non-matching lines contribute nothing;
// a response that ignores the convention entirely yields an empty slice.
func Extract(feedbackText string) []Item {
	var items []Item

	for _, line := range strings.Split(feedbackText, "\n") {
		if !strings.HasPrefix(line, "- **Line") {
			continue
		}
		m := lineCommentRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			// The regexp constrains the group to digits; overflow is
			// the only way to get here.
			continue
		}
		items = append(items, Item{Line: n, Comment: m[2]})
	}

	return items
}
