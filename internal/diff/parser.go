// Package diff turns raw unified-diff text into an addressable model of
// files and hunks, and maps hunk-relative line offsets back to absolute
// line numbers in the post-change file.
package diff

import (
	"log"
	"regexp"
	"strings"
)

// deletionSentinel is the new-file path git uses for deleted files.
const deletionSentinel = "/dev/null"

// hunkHeaderRe matches "@@ -oldStart[,oldCount] +newStart[,newCount] @@".
// Count fields are optional and ignored.
var hunkHeaderRe = regexp.MustCompile(`^@@ -(\d+)(?:,\d+)? \+(\d+)(?:,\d+)? @@`)

// Parse converts unified-diff text into an ordered sequence of
// FileChanges. It never fails: headers that don't match the expected
// shape are skipped and parsing continues from the next line, so
// arbitrarily messy or truncated input degrades to a best-effort model.
func Parse(diffText string) []FileChange {
	var (
		files       []FileChange
		currentFile *FileChange
		currentHunk *Hunk
	)

	closeHunk := func() {
		if currentHunk != nil && currentFile != nil {
			currentFile.Hunks = append(currentFile.Hunks, *currentHunk)
		}
		currentHunk = nil
	}

	closeFile := func() {
		closeHunk()
		if currentFile != nil && len(currentFile.Hunks) > 0 {
			files = append(files, *currentFile)
		}
		currentFile = nil
	}

	for _, line := range strings.Split(diffText, "\n") {
		switch {
		case strings.HasPrefix(line, "diff --git"):
			closeFile()

		case strings.HasPrefix(line, "--- a/") || strings.HasPrefix(line, "+++ b/"):
			// Only the new-file header fixes the path; a /dev/null
			// new path means the file was deleted and gets no record.
			path := line[len("+++ b/"):]
			if strings.HasPrefix(line, "+++ b/") && path != deletionSentinel {
				closeFile()
				currentFile = &FileChange{Path: path}
			}

		case strings.HasPrefix(line, "@@"):
			if currentFile == nil {
				// Hunk with no file context, e.g. a truncated diff.
				// Attaching it anywhere would corrupt the model.
				continue
			}
			closeHunk()
			m := hunkHeaderRe.FindStringSubmatch(line)
			if m == nil {
				log.Printf("diff: skipping malformed hunk header: %q", line)
				continue
			}
			currentHunk = &Hunk{
				OldStart: atoi(m[1]),
				NewStart: atoi(m[2]),
			}

		default:
			if currentHunk != nil && hasOriginMarker(line) {
				currentHunk.Lines = append(currentHunk.Lines, line)
			}
		}
	}

	closeFile()
	return files
}

func hasOriginMarker(line string) bool {
	if line == "" {
		return false
	}
	return line[0] == '+' || line[0] == '-' || line[0] == ' '
}

// atoi parses a digits-only string already constrained by the hunk
// header regexp, so it cannot fail in practice.
func atoi(s string) int {
	n := 0
	for _, r := range s {
		n = n*10 + int(r-'0')
	}
	return n
}
