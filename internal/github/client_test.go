package github

import (
	"testing"
)

func TestParseRepoFullName(t *testing.T) {
	tests := []struct {
		name      string
		fullName  string
		wantOwner string
		wantRepo  string
		wantErr   bool
	}{
		{
			name:      "valid repo name",
			fullName:  "owner/repo",
			wantOwner: "owner",
			wantRepo:  "repo",
		},
		{
			name:      "org with dashes",
			fullName:  "my-org/my-repo",
			wantOwner: "my-org",
			wantRepo:  "my-repo",
		},
		{
			name:      "repo with multiple slashes",
			fullName:  "owner/repo/extra",
			wantOwner: "owner",
			wantRepo:  "repo/extra",
		},
		{
			name:     "missing slash",
			fullName: "noslash",
			wantErr:  true,
		},
		{
			name:     "empty string",
			fullName: "",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			owner, repo, err := ParseRepoFullName(tt.fullName)

			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseRepoFullName(%q) expected error, got nil", tt.fullName)
				}
				return
			}

			if err != nil {
				t.Errorf("ParseRepoFullName(%q) unexpected error: %v", tt.fullName, err)
				return
			}

			if owner != tt.wantOwner {
				t.Errorf("owner = %q, want %q", owner, tt.wantOwner)
			}
			if repo != tt.wantRepo {
				t.Errorf("repo = %q, want %q", repo, tt.wantRepo)
			}
		})
	}
}

func TestNewClient_UsesProvidedToken(t *testing.T) {
	c := NewClient("test-token")
	if c.token != "test-token" {
		t.Errorf("token = %q, want test-token", c.token)
	}
}
