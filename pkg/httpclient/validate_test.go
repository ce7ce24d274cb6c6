package httpclient

import (
	"testing"

	"github.com/repopulse/repopulse/pkg/errors"
)

func TestValidateHeader(t *testing.T) {
	valid := map[string]string{
		"Accept":        "application/vnd.github.v3+json",
		"Authorization": "Bearer token",
		"X-Empty":       "",
	}
	for name, value := range valid {
		if err := ValidateHeader(name, value); err != nil {
			t.Errorf("ValidateHeader(%q, %q) = %v, want nil", name, value, err)
		}
	}

	invalid := map[string]string{
		"X-Leading-Space": " value",
		"X-Leading-Tab":   "\tvalue",
		"X-CRLF":          "value\r\nX-Injected: evil",
		"X-Newline":       "value\nmore",
		"X-CR":            "value\r",
	}
	for name, value := range invalid {
		err := ValidateHeader(name, value)
		if err == nil {
			t.Errorf("ValidateHeader(%q, %q) = nil, want error", name, value)
			continue
		}
		if !errors.Is(err, errors.ErrCodeInvalidHeader) {
			t.Errorf("ValidateHeader(%q) code = %v, want INVALID_HEADER", name, errors.GetCode(err))
		}
	}
}

func TestValidateHeaders(t *testing.T) {
	headers := map[string]string{
		"Accept":   "application/json",
		"X-Broken": "bad\r\nvalue",
	}
	if err := ValidateHeaders(headers); err == nil {
		t.Error("ValidateHeaders should reject a map containing an invalid value")
	}

	if err := ValidateHeaders(map[string]string{"Accept": "application/json"}); err != nil {
		t.Errorf("ValidateHeaders error: %v", err)
	}

	if err := ValidateHeaders(nil); err != nil {
		t.Errorf("ValidateHeaders(nil) error: %v", err)
	}
}

func TestValidateURL(t *testing.T) {
	valid := []string{
		"https://api.github.com",
		"https://api.github.com/repos/octocat/Hello-World",
		"http://localhost:8080/health",
		"http://127.0.0.1:9000/path?q=1",
		"https://example.co.uk/a/b?x=y",
	}
	for _, url := range valid {
		if err := ValidateURL(url); err != nil {
			t.Errorf("ValidateURL(%q) = %v, want nil", url, err)
		}
	}

	invalid := []string{
		"",
		"ftp://example.com",
		"api.github.com/repos",
		"https://",
		"https://exa mple.com",
	}
	for _, url := range invalid {
		err := ValidateURL(url)
		if err == nil {
			t.Errorf("ValidateURL(%q) = nil, want error", url)
			continue
		}
		if !errors.Is(err, errors.ErrCodeInvalidURL) {
			t.Errorf("ValidateURL(%q) code = %v, want INVALID_URL", url, errors.GetCode(err))
		}
	}
}

func TestValidateJSON(t *testing.T) {
	for _, s := range []string{`{}`, `{"a":1}`, `[1,2,3]`, `"str"`, `null`} {
		if err := ValidateJSON(s); err != nil {
			t.Errorf("ValidateJSON(%q) = %v, want nil", s, err)
		}
	}
	for _, s := range []string{``, `{`, `{"a":}`, `not json`} {
		err := ValidateJSON(s)
		if err == nil {
			t.Errorf("ValidateJSON(%q) = nil, want error", s)
			continue
		}
		if !errors.Is(err, errors.ErrCodeInvalidJSON) {
			t.Errorf("ValidateJSON(%q) code = %v, want INVALID_JSON", s, errors.GetCode(err))
		}
	}
}
