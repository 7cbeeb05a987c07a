package diff

// ToAbsolute maps a 1-based line offset within a hunk's snippet to the
// absolute line number in the post-change file, assuming the snippet's
// first line corresponds to hunkNewStart. No bounds checking is done
// against the hunk's actual length; callers treat out-of-range results
// defensively.
func ToAbsolute(hunkNewStart, relativeLine int) int {
	return relativeLine + hunkNewStart - 1
}
