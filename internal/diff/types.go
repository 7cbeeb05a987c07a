package diff

import "strings"

// FileChange represents one file touched by a patch, in the order it
// appeared in the diff. Only files with at least one hunk are emitted
// by the parser; deleted files (new path /dev/null) never appear.
type FileChange struct {
	// Path is the file's path in the post-change tree.
	Path string
	// Hunks holds the file's hunks in order of appearance.
	Hunks []Hunk
}

// Hunk is one contiguous block of changed lines within a file.
type Hunk struct {
	// OldStart is the 1-based starting line in the pre-change file.
	OldStart int
	// NewStart is the 1-based starting line in the post-change file.
	NewStart int
	// Lines are the raw diff lines of the hunk, each keeping its
	// origin marker ("+", "-" or " ") exactly as encountered.
	Lines []string
}

// Snippet joins the hunk's lines into the text block handed to the
// analyzer, preserving per-line prefixes and order.
func (h Hunk) Snippet() string {
	return strings.Join(h.Lines, "\n")
}
