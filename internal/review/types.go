package review

// Request contains parameters for reviewing a PR
type Request struct {
	Owner    string
	Repo     string
	PRNumber int
	HeadSHA  string
}

// Result contains the outcome counters of a PR review
type Result struct {
	FilesReviewed        int
	HunksAnalyzed        int
	AnnotationsAttempted int
	AnnotationsSucceeded int
	FallbacksPosted      int
}

// Options configures orchestration behavior. Model selection lives with
// the LLM provider; the orchestrator only cares about diagnostics.
type Options struct {
	// Verbosity controls diagnostic detail: 0 quiet, 1 per-hunk
	// progress, 2 adds diff previews.
	Verbosity int
}
