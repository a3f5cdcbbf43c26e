package client

import (
	"io"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"
)

// Response is the plain-data record produced for every completed exchange.
// Every field is populated before it is returned; a call either yields a
// complete Response or an error, never a partial one.
type Response struct {
	StatusCode int
	// Headers holds one value per header name. When the server sends the
	// same name multiple times (Set-Cookie is the usual case) the last
	// occurrence wins; callers that need every value must not rely on this
	// map for multi-valued headers.
	Headers map[string]string
	Body    []byte
	// IsSuccess is true when StatusCode is in [200, 300).
	IsSuccess bool
	// URL is the final URL after any redirect traversal.
	URL      string
	Duration time.Duration
}

// convertResponse drains the body fully into memory and flattens the raw
// response into a Response record.
func convertResponse(httpResp *http.Response, duration time.Duration) (*Response, *Error) {
	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		// The status line has already been received, so attach it.
		cerr := newError(KindDecode, "read response body", err)
		cerr.StatusCode = httpResp.StatusCode
		return nil, cerr
	}

	headers := make(map[string]string, len(httpResp.Header))
	for k, values := range httpResp.Header {
		headers[k] = values[len(values)-1]
	}

	finalURL := ""
	if httpResp.Request != nil && httpResp.Request.URL != nil {
		finalURL = httpResp.Request.URL.String()
	}

	return &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    headers,
		Body:       body,
		IsSuccess:  httpResp.StatusCode >= 200 && httpResp.StatusCode < 300,
		URL:        finalURL,
		Duration:   duration,
	}, nil
}

// BodyString returns the body as a string without validation.
func (r *Response) BodyString() string {
	return string(r.Body)
}

// BodyUTF8 decodes the body as UTF-8 text.
func (r *Response) BodyUTF8() (string, error) {
	if !utf8.Valid(r.Body) {
		return "", newError(KindDecode, "response body is not valid UTF-8", nil)
	}
	return string(r.Body), nil
}

// Header returns the value of the named header, matching case-insensitively.
func (r *Response) Header(key string) string {
	for k, v := range r.Headers {
		if strings.EqualFold(k, key) {
			return v
		}
	}
	return ""
}

// ContentType returns the Content-Type header.
func (r *Response) ContentType() string {
	return r.Header("Content-Type")
}

// IsJSON reports whether the response declares a JSON content type.
func (r *Response) IsJSON() bool {
	return strings.Contains(r.ContentType(), "application/json")
}

// IsRedirect reports whether the status code is in the 3xx range.
func (r *Response) IsRedirect() bool {
	return r.StatusCode >= 300 && r.StatusCode < 400
}

// IsClientError reports whether the status code is in the 4xx range.
func (r *Response) IsClientError() bool {
	return r.StatusCode >= 400 && r.StatusCode < 500
}

// IsServerError reports whether the status code is 5xx or above.
func (r *Response) IsServerError() bool {
	return r.StatusCode >= 500
}

// DurationMs returns the exchange duration in milliseconds.
func (r *Response) DurationMs() int64 {
	return r.Duration.Milliseconds()
}
