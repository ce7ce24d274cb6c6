// Package httpclient provides a thin HTTP request wrapper.
//
// # Overview
//
// The client exposes the standard verbs (GET, HEAD, OPTIONS, POST, PUT,
// PATCH, DELETE) over a single request path that validates inputs before
// anything goes on the wire:
//
//   - header values may not start with whitespace or contain CR/LF
//     (basic header-injection guard)
//   - request bodies must be valid JSON
//   - target URLs must be well-formed http(s) addresses
//
// Validation failures are returned as [errors.Error] values with the codes
// INVALID_HEADER, INVALID_JSON and INVALID_URL. Nothing in this module
// catches them; callers decide.
//
// # Transport failures
//
// Transport-level failures (DNS, refused connections, timeouts) do not
// produce an error. The client maps them to a Response carrying the failure
// reason as its body and the surrogate status [StatusConnectFailure]. HTTP
// error statuses (4xx/5xx) pass through as ordinary responses.
//
// # Caching
//
// GET responses can optionally be cached via [cache.Cache]:
//
//	c := httpclient.New(httpclient.WithCache(fileCache, time.Hour))
//	resp, err := c.Get(ctx, "https://api.github.com/zen", nil, nil)
//
// Caching is off by default (a null cache is installed).
//
// The wrapper performs no retries, no backoff and holds no shared state; a
// request is a single synchronous round trip.
package httpclient
