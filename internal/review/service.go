// Package review orchestrates one full review pass over a pull request:
// fetch the diff, walk its hunks in order, analyze each with the LLM,
// and anchor the extracted feedback as inline comments.
package review

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/ai-fly/ai-code-review-action/internal/diff"
	"github.com/ai-fly/ai-code-review-action/internal/feedback"
	"github.com/ai-fly/ai-code-review-action/internal/github"
)

// fallbackComment is posted at a hunk's start when the LLM response
// yields no line-level findings, so no hunk is silently skipped.
const fallbackComment = "No specific issues found in this hunk. Please review the change manually."

// GitHubClient defines the GitHub operations needed for reviews
type GitHubClient interface {
	GetPullRequest(ctx context.Context, owner, repo string, prNumber int) (*github.PullRequest, error)
	GetPRDiff(ctx context.Context, owner, repo string, prNumber int) (string, error)
	CreateReviewComment(ctx context.Context, owner, repo string, prNumber int, commitID, path string, line int, body string) error
}

// LLMProvider defines the LLM operations needed for analysis
type LLMProvider interface {
	GenerateText(prompt string) (string, error)
}

// Service drives the diff → analyze → annotate pipeline
type Service struct {
	githubClient GitHubClient
	llmProvider  LLMProvider
	verbosity    int
}

// NewService creates a new review service
func NewService(gh GitHubClient, llm LLMProvider, opts Options) *Service {
	return &Service{
		githubClient: gh,
		llmProvider:  llm,
		verbosity:    opts.Verbosity,
	}
}

// ReviewPR performs a complete review of a pull request. Failure to
// fetch the diff is the only fatal error: every later anomaly (LLM
// failure, unparseable feedback, a rejected comment) is logged, counted
// and skipped so a single bad hunk never aborts the run.
func (s *Service) ReviewPR(ctx context.Context, req Request) (*Result, error) {
	if req.HeadSHA == "" {
		// Deliveries replayed from the GitHub UI can lack the head SHA.
		pr, err := s.githubClient.GetPullRequest(ctx, req.Owner, req.Repo, req.PRNumber)
		if err != nil {
			return nil, fmt.Errorf("resolve head sha: %w", err)
		}
		req.HeadSHA = pr.HeadSHA
	}

	log.Printf("Starting review for %s/%s PR #%d (commit: %s)", req.Owner, req.Repo, req.PRNumber, shortSHA(req.HeadSHA))

	diffText, err := s.githubClient.GetPRDiff(ctx, req.Owner, req.Repo, req.PRNumber)
	if err != nil {
		return nil, fmt.Errorf("fetch pr diff: %w", err)
	}
	log.Printf("Fetched diff for PR #%d (%d bytes)", req.PRNumber, len(diffText))

	if s.verbosity >= 2 {
		logDiffPreview(diffText)
	}

	changes := diff.Parse(diffText)
	log.Printf("Parsed %d changed files", len(changes))

	result := &Result{FilesReviewed: len(changes)}

	for _, fc := range changes {
		if s.verbosity >= 1 {
			log.Printf("Processing file: %s (%d hunks)", fc.Path, len(fc.Hunks))
		}
		for _, hunk := range fc.Hunks {
			if err := ctx.Err(); err != nil {
				return result, fmt.Errorf("review canceled: %w", err)
			}
			s.reviewHunk(ctx, req, fc.Path, hunk, result)
		}
	}

	log.Printf("Review of PR #%d done: %d hunks, %d/%d annotations posted, %d fallbacks",
		req.PRNumber, result.HunksAnalyzed, result.AnnotationsSucceeded, result.AnnotationsAttempted, result.FallbacksPosted)

	return result, nil
}

// reviewHunk analyzes a single hunk and dispatches its annotations.
func (s *Service) reviewHunk(ctx context.Context, req Request, path string, hunk diff.Hunk, result *Result) {
	result.HunksAnalyzed++

	if s.verbosity >= 1 {
		log.Printf("  Analyzing hunk at line %d of %s", hunk.NewStart, path)
	}

	response, err := s.llmProvider.GenerateText(buildPrompt(hunk.Snippet(), hunk.NewStart))
	if err != nil {
		log.Printf("Warning: llm analysis failed for %s@%d: %v", path, hunk.NewStart, err)
		return
	}

	items := feedback.Extract(response)
	if len(items) == 0 {
		result.FallbacksPosted++
		result.AnnotationsAttempted++
		if s.annotate(ctx, req, path, hunk.NewStart, fallbackComment) {
			result.AnnotationsSucceeded++
		}
		return
	}

	for _, item := range items {
		line := diff.ToAbsolute(hunk.NewStart, item.Line)
		result.AnnotationsAttempted++
		if s.annotate(ctx, req, path, line, item.Comment) {
			result.AnnotationsSucceeded++
		}
	}
}

// annotate posts one inline comment and reports whether it succeeded.
// Failures are logged and absorbed; the next item still gets its try.
func (s *Service) annotate(ctx context.Context, req Request, path string, line int, body string) bool {
	err := s.githubClient.CreateReviewComment(ctx, req.Owner, req.Repo, req.PRNumber, req.HeadSHA, path, line, body)
	if err != nil {
		log.Printf("Warning: failed to comment on %s:%d: %v", path, line, err)
		return false
	}
	if s.verbosity >= 1 {
		log.Printf("  Posted comment at %s:%d", path, line)
	}
	return true
}

func logDiffPreview(diffText string) {
	lines := strings.Split(diffText, "\n")
	n := len(lines)
	if n > 10 {
		n = 10
	}
	log.Printf("Diff preview (first %d lines):", n)
	for i := 0; i < n; i++ {
		log.Printf("  %s", lines[i])
	}
}

func shortSHA(sha string) string {
	if len(sha) > 7 {
		return sha[:7]
	}
	return sha
}
