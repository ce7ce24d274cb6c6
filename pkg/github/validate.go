package github

import (
	"regexp"
	"strings"

	"github.com/repopulse/repopulse/pkg/errors"
)

// Regex patterns for GitHub resource validation.
var (
	// Repository address: https://github.com/<owner>/<repo> with an optional
	// trailing slash. Owner follows GitHub username rules (1-39 alphanumeric
	// or hyphen, not starting with hyphen); repo allows dots, hyphens and
	// underscores.
	validRepoURL = regexp.MustCompile(`(?i)^https://github\.com/[a-z0-9][a-z0-9-]{0,38}/[a-z0-9._-]{1,98}/?$`)

	// GitHub usernames/orgs: 1-39 alphanumeric or hyphen, not starting with hyphen
	validOwner = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9-]{0,38}$`)
	// GitHub repo names: 1-98 alphanumeric, hyphen, underscore, or dot
	validRepo = regexp.MustCompile(`^[a-zA-Z0-9._-]{1,98}$`)
	// Branch names: anything without whitespace or backslash
	validBranch = regexp.MustCompile(`^[^\s\\]+$`)
)

// ValidateRepoURL validates a GitHub repository address.
func ValidateRepoURL(url string) error {
	if url == "" {
		return errors.New(errors.ErrCodeInvalidURL, "repository URL is required")
	}
	if !validRepoURL.MatchString(url) {
		return errors.New(errors.ErrCodeInvalidURL, "%s is not a valid GitHub repository URL (expected https://github.com/<owner>/<repo>)", url)
	}
	return nil
}

// ValidateOwner validates a GitHub username or organization name.
func ValidateOwner(owner string) error {
	if owner == "" {
		return errors.New(errors.ErrCodeInvalidURL, "owner is required")
	}
	if !validOwner.MatchString(owner) {
		return errors.New(errors.ErrCodeInvalidURL, "invalid owner format: must be 1-39 alphanumeric characters or hyphens, cannot start with hyphen")
	}
	return nil
}

// ValidateRepo validates a GitHub repository name.
func ValidateRepo(repo string) error {
	if repo == "" {
		return errors.New(errors.ErrCodeInvalidURL, "repo is required")
	}
	if !validRepo.MatchString(repo) {
		return errors.New(errors.ErrCodeInvalidURL, "invalid repo format: must be 1-98 alphanumeric characters, hyphens, underscores, or dots")
	}
	return nil
}

// ValidateBranch validates a branch name. Branch names are free-form strings
// here; the only hard rule is no whitespace and no backslash.
func ValidateBranch(branch string) error {
	if !validBranch.MatchString(branch) {
		return errors.New(errors.ErrCodeInvalidBranch, "%q is not a valid branch name", branch)
	}
	return nil
}

// ParseRepoURL validates a repository URL and extracts its owner and name.
// Extraction trims a trailing slash and takes the last two path segments.
func ParseRepoURL(url string) (owner, repo string, err error) {
	if err := ValidateRepoURL(url); err != nil {
		return "", "", err
	}
	parts := strings.Split(strings.TrimSuffix(url, "/"), "/")
	owner, repo = parts[len(parts)-2], parts[len(parts)-1]
	return owner, repo, nil
}
