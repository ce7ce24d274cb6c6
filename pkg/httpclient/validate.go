package httpclient

import (
	"encoding/json"
	"regexp"

	"github.com/repopulse/repopulse/pkg/errors"
)

var (
	// Header values: empty, or non-whitespace first character and no CR/LF
	// anywhere. Leading whitespace and return characters are the classic
	// header-injection vectors.
	validHeaderValue = regexp.MustCompile(`^(?:\S[^\r\n]*)?$`)

	// Generic http(s) URL: domain, localhost or IPv4, optional port,
	// optional path/query.
	validURL = regexp.MustCompile(`(?i)^https?://` +
		`(?:(?:[a-z0-9](?:[a-z0-9-]{0,61}[a-z0-9])?\.)+(?:[a-z]{2,6}\.?|[a-z0-9-]{2,}\.?)` + // domain
		`|localhost` + // ...or localhost
		`|\d{1,3}\.\d{1,3}\.\d{1,3}\.\d{1,3})` + // ...or ip
		`(?::\d+)?` + // optional port
		`(?:/?|[/?]\S+)$`) // path and query
)

// ValidateURL validates a target URL string.
func ValidateURL(url string) error {
	if !validURL.MatchString(url) {
		return errors.New(errors.ErrCodeInvalidURL, "invalid URL: %s", url)
	}
	return nil
}

// ValidateHeader verifies that a header value contains no leading whitespace
// and no return characters.
func ValidateHeader(name, value string) error {
	if !validHeaderValue.MatchString(value) {
		return errors.New(errors.ErrCodeInvalidHeader, "invalid return character or leading space in header: %s", name)
	}
	return nil
}

// ValidateHeaders validates every header in the map.
func ValidateHeaders(headers map[string]string) error {
	for name, value := range headers {
		if err := ValidateHeader(name, value); err != nil {
			return err
		}
	}
	return nil
}

// ValidateJSON verifies that s is a valid JSON document.
func ValidateJSON(s string) error {
	if !json.Valid([]byte(s)) {
		return errors.New(errors.ErrCodeInvalidJSON, "the request body must be a valid JSON string")
	}
	return nil
}
