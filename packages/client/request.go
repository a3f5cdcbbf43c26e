package client

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// Request describes a single HTTP exchange. One instance per call; the
// client never retains or mutates it after Do returns.
type Request struct {
	// URL is either absolute or relative to the client's base URL.
	URL string
	// Method is any syntactically valid HTTP method token, case-insensitive.
	Method string
	// Headers are applied over the client's default headers; on duplicate
	// keys the request value wins.
	Headers map[string]string
	// QueryParams are appended to the URL's query component. Duplicate keys
	// across the existing query and this map accumulate rather than replace.
	QueryParams map[string]string
	// Body is attached verbatim when non-nil. No content type is inferred.
	Body []byte
	// Timeout overrides the client default for this call only when positive.
	Timeout time.Duration
	// FollowRedirects mirrors the client configuration for callers that
	// inspect the record. Redirect policy is fixed at client construction
	// and this field does not change it per call.
	FollowRedirects bool
}

// NewRequest creates a request with empty header and query maps.
func NewRequest(method, requestURL string) *Request {
	return &Request{
		Method:      method,
		URL:         requestURL,
		Headers:     make(map[string]string),
		QueryParams: make(map[string]string),
	}
}

// SetHeader sets a request header.
func (r *Request) SetHeader(key, value string) *Request {
	r.Headers[key] = value
	return r
}

// SetQueryParam sets a query parameter.
func (r *Request) SetQueryParam(key, value string) *Request {
	r.QueryParams[key] = value
	return r
}

// SetBody sets the request payload.
func (r *Request) SetBody(body []byte) *Request {
	r.Body = body
	return r
}

// SetTimeout sets the per-request timeout override.
func (r *Request) SetTimeout(d time.Duration) *Request {
	r.Timeout = d
	return r
}

// resolveURL joins a request URL onto the base URL using relative-reference
// resolution, or parses it as an absolute URL when no base is configured.
// Pure: no I/O, deterministic for given inputs.
func resolveURL(baseURL, requestURL string) (*url.URL, *Error) {
	if baseURL != "" {
		base, err := url.Parse(baseURL)
		if err != nil {
			return nil, newError(KindURL, fmt.Sprintf("invalid base URL %q", baseURL), err)
		}
		ref, err := url.Parse(requestURL)
		if err != nil {
			return nil, newError(KindURL, fmt.Sprintf("invalid request URL %q", requestURL), err)
		}
		resolved := base.ResolveReference(ref)
		if resolved.Scheme == "" || resolved.Host == "" {
			return nil, newError(KindURL, fmt.Sprintf("cannot resolve %q against %q", requestURL, baseURL), nil)
		}
		return resolved, nil
	}

	u, err := url.Parse(requestURL)
	if err != nil {
		return nil, newError(KindURL, fmt.Sprintf("invalid URL %q", requestURL), err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, newError(KindURL, fmt.Sprintf("URL %q is not absolute", requestURL), nil)
	}
	return u, nil
}

// validateMethod checks that the method is a valid HTTP token per RFC 7230.
// Any token is accepted, not just the registered verbs.
func validateMethod(method string) *Error {
	if method == "" {
		return newError(KindMethod, "empty method", nil)
	}
	for i := 0; i < len(method); i++ {
		if !isTokenByte(method[i]) {
			return newError(KindMethod, fmt.Sprintf("invalid method %q", method), nil)
		}
	}
	return nil
}

// isTokenByte reports whether b may appear in an HTTP token: visible ASCII
// excluding the RFC 7230 separators.
func isTokenByte(b byte) bool {
	if b <= ' ' || b >= 0x7f {
		return false
	}
	return !strings.ContainsRune("\"(),/:;<=>?@[]\\{}", rune(b))
}
