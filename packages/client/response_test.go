package client

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponse_HeaderLookup(t *testing.T) {
	resp := &Response{Headers: map[string]string{"Content-Type": "text/plain"}}
	assert.Equal(t, "text/plain", resp.Header("content-type"))
	assert.Equal(t, "text/plain", resp.ContentType())
	assert.Equal(t, "", resp.Header("X-Missing"))
	assert.False(t, resp.IsJSON())
}

func TestResponse_DuplicateHeadersLastWins(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Add("X-Dup", "first")
		w.Header().Add("X-Dup", "second")
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	c, err := New(DefaultConfig())
	require.NoError(t, err)

	resp, err := c.Get(server.URL)
	require.NoError(t, err)
	assert.Equal(t, "second", resp.Header("X-Dup"))
}

func TestResponse_BodyUTF8(t *testing.T) {
	resp := &Response{Body: []byte("héllo")}
	s, err := resp.BodyUTF8()
	require.NoError(t, err)
	assert.Equal(t, "héllo", s)

	resp = &Response{Body: []byte{0xff, 0xfe, 0xfd}}
	_, err = resp.BodyUTF8()
	require.Error(t, err)
	assert.Equal(t, KindDecode, err.(*Error).Kind)
}

func TestResponse_TruncatedBodyKeepsStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Promise more bytes than are sent, then drop the connection so the
		// body read fails after the status line arrived.
		conn, buf, err := w.(http.Hijacker).Hijack()
		if !assert.NoError(t, err) {
			return
		}
		_, _ = buf.WriteString("HTTP/1.1 200 OK\r\nContent-Length: 100\r\n\r\npartial")
		_ = buf.Flush()
		_ = conn.Close()
	}))
	defer server.Close()

	c, err := New(DefaultConfig())
	require.NoError(t, err)

	_, err = c.Get(server.URL)
	require.Error(t, err)
	cerr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, KindDecode, cerr.Kind)
	assert.Equal(t, 200, cerr.StatusCode)
}

func TestResponse_StatusRanges(t *testing.T) {
	assert.True(t, (&Response{StatusCode: 201, IsSuccess: true}).IsSuccess)
	assert.True(t, (&Response{StatusCode: 302}).IsRedirect())
	assert.True(t, (&Response{StatusCode: 404}).IsClientError())
	assert.True(t, (&Response{StatusCode: 503}).IsServerError())
}
