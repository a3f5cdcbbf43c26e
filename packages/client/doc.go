// Package client implements the vane HTTP client core: a thin facade over
// net/http that turns a plain configuration record into a reusable client and
// a plain request record into a plain response record.
//
// The actual transport work (connection pooling, TLS, redirect traversal,
// timeout enforcement) is delegated to net/http. This package only:
//   - translates a Config into transport construction options
//   - merges default and per-request headers, query parameters and body
//   - converts the raw *http.Response into a Response record
//   - classifies transport failures into a small error taxonomy
//
// A single *Client is safe for concurrent use: its configuration and
// transport handle are immutable after New returns, and no call path mutates
// shared state.
package client
