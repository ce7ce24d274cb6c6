package github

import (
	"strings"
	"testing"

	"github.com/repopulse/repopulse/pkg/errors"
)

func TestValidateRepoURL(t *testing.T) {
	valid := []string{
		"https://github.com/octocat/Hello-World",
		"https://github.com/octocat/Hello-World/",
		"https://github.com/torvalds/linux",
		"https://github.com/a/b",
		"https://github.com/my-org/repo.name_v2",
		"HTTPS://GITHUB.COM/octocat/Hello-World",
	}
	for _, url := range valid {
		if err := ValidateRepoURL(url); err != nil {
			t.Errorf("ValidateRepoURL(%q) = %v, want nil", url, err)
		}
	}

	invalid := []string{
		"",
		"github.com/octocat/Hello-World",
		"http://github.com/octocat/Hello-World",
		"https://gitlab.com/octocat/Hello-World",
		"https://github.com/octocat",
		"https://github.com/octocat/Hello-World/tree/main",
		"https://github.com/-octocat/Hello-World",
		"https://github.com/octocat/Hello World",
		"https://github.com//Hello-World",
	}
	for _, url := range invalid {
		err := ValidateRepoURL(url)
		if err == nil {
			t.Errorf("ValidateRepoURL(%q) = nil, want error", url)
			continue
		}
		if !errors.Is(err, errors.ErrCodeInvalidURL) {
			t.Errorf("ValidateRepoURL(%q) code = %v, want INVALID_URL", url, errors.GetCode(err))
		}
	}
}

func TestValidateRepoLength(t *testing.T) {
	max := strings.Repeat("r", 98)

	if err := ValidateRepo(max); err != nil {
		t.Errorf("ValidateRepo with 98 chars = %v, want nil", err)
	}
	if err := ValidateRepo(max + "r"); err == nil {
		t.Error("ValidateRepo with 99 chars should fail")
	}

	if err := ValidateRepoURL("https://github.com/octocat/" + max); err != nil {
		t.Errorf("ValidateRepoURL with 98-char repo = %v, want nil", err)
	}
	if err := ValidateRepoURL("https://github.com/octocat/" + max + "r"); err == nil {
		t.Error("ValidateRepoURL with 99-char repo should fail")
	}
}

func TestParseRepoURL(t *testing.T) {
	tests := []struct {
		url   string
		owner string
		repo  string
	}{
		{"https://github.com/octocat/Hello-World", "octocat", "Hello-World"},
		{"https://github.com/octocat/Hello-World/", "octocat", "Hello-World"},
		{"https://github.com/my-org/repo.name_v2", "my-org", "repo.name_v2"},
	}
	for _, tt := range tests {
		owner, repo, err := ParseRepoURL(tt.url)
		if err != nil {
			t.Fatalf("ParseRepoURL(%q) error: %v", tt.url, err)
		}
		if owner != tt.owner || repo != tt.repo {
			t.Errorf("ParseRepoURL(%q) = %q/%q, want %q/%q", tt.url, owner, repo, tt.owner, tt.repo)
		}
	}
}

func TestParseRepoURLInvalid(t *testing.T) {
	if _, _, err := ParseRepoURL("https://example.com/a/b"); err == nil {
		t.Error("ParseRepoURL should reject non-GitHub URLs")
	}
}

func TestValidateOwner(t *testing.T) {
	for _, owner := range []string{"octocat", "my-org", "a", "user123"} {
		if err := ValidateOwner(owner); err != nil {
			t.Errorf("ValidateOwner(%q) = %v, want nil", owner, err)
		}
	}
	for _, owner := range []string{"", "-octocat", "user name", "a_b"} {
		if err := ValidateOwner(owner); err == nil {
			t.Errorf("ValidateOwner(%q) = nil, want error", owner)
		}
	}
}

func TestValidateBranch(t *testing.T) {
	valid := []string{"master", "main", "feature/add-parser", "release-1.0", "v2"}
	for _, branch := range valid {
		if err := ValidateBranch(branch); err != nil {
			t.Errorf("ValidateBranch(%q) = %v, want nil", branch, err)
		}
	}

	invalid := []string{"", "my branch", "feat\\fix", "a\tb", "two\nlines"}
	for _, branch := range invalid {
		err := ValidateBranch(branch)
		if err == nil {
			t.Errorf("ValidateBranch(%q) = nil, want error", branch)
			continue
		}
		if !errors.Is(err, errors.ErrCodeInvalidBranch) {
			t.Errorf("ValidateBranch(%q) code = %v, want INVALID_BRANCH", branch, errors.GetCode(err))
		}
	}
}
