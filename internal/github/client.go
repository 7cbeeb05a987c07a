package github

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/google/go-github/v82/github"
)

// Client provides the GitHub API operations the review pipeline needs:
// fetching a PR's raw diff and anchoring comments to diff lines.
type Client struct {
	client *github.Client
	token  string
}

// NewClient creates a new GitHub API client
func NewClient(token string) *Client {
	if token == "" {
		token = os.Getenv("GITHUB_TOKEN")
	}

	httpClient := &http.Client{
		Transport: &tokenTransport{token: token},
	}

	return &Client{
		client: github.NewClient(httpClient),
		token:  token,
	}
}

type tokenTransport struct {
	token string
}

func (t *tokenTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.Header.Set("Authorization", "token "+t.token)
	return http.DefaultTransport.RoundTrip(req)
}

// PullRequest holds the PR fields the review pipeline cares about
type PullRequest struct {
	Number  int
	HeadSHA string
	HeadRef string
	Title   string
}

// GetPullRequest fetches PR metadata (head commit, branch)
func (c *Client) GetPullRequest(ctx context.Context, owner, repo string, prNumber int) (*PullRequest, error) {
	pr, _, err := c.client.PullRequests.Get(ctx, owner, repo, prNumber)
	if err != nil {
		return nil, fmt.Errorf("get pr: %w", err)
	}

	return &PullRequest{
		Number:  pr.GetNumber(),
		HeadSHA: pr.GetHead().GetSHA(),
		HeadRef: pr.GetHead().GetRef(),
		Title:   pr.GetTitle(),
	}, nil
}

// GetPRDiff fetches the PR's unified diff as raw text (the
// application/vnd.github.diff representation of the pull request).
func (c *Client) GetPRDiff(ctx context.Context, owner, repo string, prNumber int) (string, error) {
	diff, _, err := c.client.PullRequests.GetRaw(ctx, owner, repo, prNumber, github.RawOptions{Type: github.Diff})
	if err != nil {
		return "", fmt.Errorf("get pr diff: %w", err)
	}
	return diff, nil
}

// CreateReviewComment posts an inline comment anchored to a line on the
// new (RIGHT) side of the diff at the given commit.
func (c *Client) CreateReviewComment(ctx context.Context, owner, repo string, prNumber int, commitID, path string, line int, body string) error {
	comment := &github.PullRequestComment{
		Body:     github.Ptr(body),
		CommitID: github.Ptr(commitID),
		Path:     github.Ptr(path),
		Line:     github.Ptr(line),
		Side:     github.Ptr("RIGHT"),
	}

	_, _, err := c.client.PullRequests.CreateComment(ctx, owner, repo, prNumber, comment)
	if err != nil {
		return fmt.Errorf("create review comment: %w", err)
	}
	return nil
}

// ParseRepoFullName splits "owner/repo" into parts
func ParseRepoFullName(fullName string) (owner, repo string, err error) {
	parts := strings.SplitN(fullName, "/", 2)
	if len(parts) != 2 {
		return "", "", fmt.Errorf("invalid repo name: %s", fullName)
	}
	return parts[0], parts[1], nil
}
