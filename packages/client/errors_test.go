package client

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify_Timeout(t *testing.T) {
	err := &url.Error{Op: "Get", URL: "http://x.test", Err: context.DeadlineExceeded}
	cerr := classify(err)
	assert.Equal(t, KindTimeout, cerr.Kind)
}

func TestClassify_Dial(t *testing.T) {
	opErr := &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connection refused")}
	err := &url.Error{Op: "Get", URL: "http://x.test", Err: opErr}
	cerr := classify(err)
	assert.Equal(t, KindConnection, cerr.Kind)
}

func TestClassify_DNS(t *testing.T) {
	dnsErr := &net.DNSError{Err: "no such host", Name: "missing.test"}
	err := &url.Error{Op: "Get", URL: "http://missing.test", Err: dnsErr}
	cerr := classify(err)
	assert.Equal(t, KindConnection, cerr.Kind)
}

func TestClassify_Generic(t *testing.T) {
	err := &url.Error{Op: "Get", URL: "http://x.test", Err: errors.New("stream reset")}
	cerr := classify(err)
	assert.Equal(t, KindGeneric, cerr.Kind)
	assert.Contains(t, cerr.Error(), "request failed")
}

func TestError_Format(t *testing.T) {
	e := newError(KindURL, `invalid URL "x"`, nil)
	assert.Equal(t, `Url: invalid URL "x"`, e.Error())

	cause := errors.New("boom")
	e = newError(KindGeneric, "request failed", cause)
	assert.Equal(t, fmt.Sprintf("Generic: request failed (%v)", cause), e.Error())
	assert.Equal(t, cause, errors.Unwrap(e))
}

func TestError_IsComparesKinds(t *testing.T) {
	e := newError(KindTimeout, "request timed out", nil)
	assert.True(t, errors.Is(e, &Error{Kind: KindTimeout}))
	assert.False(t, errors.Is(e, &Error{Kind: KindConnection}))
}
