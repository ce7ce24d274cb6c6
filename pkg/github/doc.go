// Package github validates GitHub repository coordinates.
//
// Validation is purely syntactic: a URL that passes these checks names a
// well-formed repository address, not necessarily an existing repository.
// No network calls are made.
//
// # Usage
//
//	owner, repo, err := github.ParseRepoURL("https://github.com/octocat/Hello-World")
//	if err != nil {
//	    // INVALID_URL
//	}
//
//	if err := github.ValidateBranch("main"); err != nil {
//	    // INVALID_BRANCH
//	}
package github
