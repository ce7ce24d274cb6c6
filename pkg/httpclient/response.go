package httpclient

import (
	"encoding/json"
	"net/http"

	"github.com/repopulse/repopulse/pkg/errors"
)

// StatusConnectFailure is the surrogate status code reported when a request
// never produced an HTTP response (name resolution or connection failure).
const StatusConnectFailure = 101

// Response holds HTTP response data. For transport failures the body carries
// the failure reason and the status code is [StatusConnectFailure].
type Response struct {
	StatusCode int         `json:"status_code"`
	Body       string      `json:"body,omitempty"`
	Headers    http.Header `json:"headers,omitempty"`
}

// JSON decodes the response body. Objects come back as map[string]any and
// arrays as []any, per encoding/json defaults. An empty body decodes to an
// empty map; a non-JSON body yields an INVALID_JSON error.
func (r *Response) JSON() (any, error) {
	if r.Body == "" {
		return map[string]any{}, nil
	}
	var v any
	if err := json.Unmarshal([]byte(r.Body), &v); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidJSON, err, "the response body is not a valid JSON string")
	}
	return v, nil
}

// OK reports whether the response carries a 2xx status.
func (r *Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}
