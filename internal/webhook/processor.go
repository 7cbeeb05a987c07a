// Package webhook turns GitHub webhook deliveries into review runs.
package webhook

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/google/go-github/v82/github"

	ghclient "github.com/ai-fly/ai-code-review-action/internal/github"
	"github.com/ai-fly/ai-code-review-action/internal/review"
)

// ReviewService runs a full review pass over one pull request
type ReviewService interface {
	ReviewPR(ctx context.Context, req review.Request) (*review.Result, error)
}

// Processor routes webhook events to the review service
type Processor struct {
	reviewSvc ReviewService
}

// NewProcessor creates a webhook processor
func NewProcessor(reviewSvc ReviewService) *Processor {
	return &Processor{reviewSvc: reviewSvc}
}

// Process handles a single webhook delivery. Events that don't start a
// review (pings, unrelated actions) are acknowledged and dropped.
func (p *Processor) Process(ctx context.Context, eventType string, payload []byte, deliveryID string) error {
	if p.reviewSvc == nil {
		return fmt.Errorf("review service not configured")
	}

	event, err := github.ParseWebHook(eventType, payload)
	if err != nil {
		return fmt.Errorf("parse webhook event: %w", err)
	}

	switch e := event.(type) {
	case *github.PingEvent:
		return nil
	case *github.PullRequestEvent:
		return p.handlePullRequest(ctx, e, deliveryID)
	default:
		return nil
	}
}

func (p *Processor) handlePullRequest(ctx context.Context, e *github.PullRequestEvent, deliveryID string) error {
	action := strings.ToLower(e.GetAction())
	switch action {
	case "opened", "reopened", "synchronize":
	default:
		return nil
	}

	owner, repo, err := ghclient.ParseRepoFullName(e.GetRepo().GetFullName())
	if err != nil {
		return fmt.Errorf("webhook repo name: %w", err)
	}

	req := review.Request{
		Owner:    owner,
		Repo:     repo,
		PRNumber: e.GetPullRequest().GetNumber(),
		HeadSHA:  e.GetPullRequest().GetHead().GetSHA(),
	}

	result, err := p.reviewSvc.ReviewPR(ctx, req)
	if err != nil {
		return fmt.Errorf("review pr #%d: %w", req.PRNumber, err)
	}

	log.Printf("Webhook %s: reviewed %s/%s#%d (%d files, %d annotations)",
		deliveryID, owner, repo, req.PRNumber, result.FilesReviewed, result.AnnotationsSucceeded)
	return nil
}
