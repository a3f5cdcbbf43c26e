package binding

import (
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/vaneclient/vane/packages/client"
	"github.com/vaneclient/vane/packages/jsonx"
)

// ClientHandle identifies a registered client across the boundary. Zero is
// never a valid handle.
type ClientHandle uint64

// RequestSpec describes one HTTP exchange as a plain record.
type RequestSpec struct {
	URL             string            `json:"url"`
	Method          string            `json:"method"`
	Headers         map[string]string `json:"headers"`
	QueryParams     map[string]string `json:"query_params"`
	Body            []byte            `json:"body,omitempty"`
	TimeoutSeconds  uint64            `json:"timeout_seconds,omitempty"`
	FollowRedirects bool              `json:"follow_redirects"`
}

// ResponseResult is the plain record for a completed exchange.
type ResponseResult struct {
	StatusCode uint16            `json:"status_code"`
	Headers    map[string]string `json:"headers"`
	Body       []byte            `json:"body"`
	IsSuccess  bool              `json:"is_success"`
	URL        string            `json:"url"`
}

// ClientConfig is the plain record a client is built from.
type ClientConfig struct {
	BaseURL         string            `json:"base_url,omitempty"`
	DefaultHeaders  map[string]string `json:"default_headers"`
	TimeoutSeconds  uint64            `json:"timeout_seconds"`
	FollowRedirects bool              `json:"follow_redirects"`
	UserAgent       string            `json:"user_agent,omitempty"`
}

// ErrorInfo is the error record surfaced across the boundary.
type ErrorInfo struct {
	Kind       string `json:"kind"`
	Message    string `json:"message"`
	StatusCode uint16 `json:"status_code,omitempty"`
}

var (
	clients    sync.Map // ClientHandle -> *client.Client
	lastHandle atomic.Uint64
)

// CreateDefaultConfig returns the default configuration record: no base URL,
// no default headers, 30 second timeout, redirects followed.
func CreateDefaultConfig() ClientConfig {
	cfg := client.DefaultConfig()
	return ClientConfig{
		DefaultHeaders:  cfg.DefaultHeaders,
		TimeoutSeconds:  uint64(cfg.Timeout / time.Second),
		FollowRedirects: cfg.FollowRedirects,
		UserAgent:       cfg.UserAgent,
	}
}

// CreateClient builds a client and registers it in the handle table.
func CreateClient(cfg ClientConfig) (ClientHandle, *ErrorInfo) {
	c, err := client.New(client.Config{
		BaseURL:         cfg.BaseURL,
		DefaultHeaders:  cfg.DefaultHeaders,
		Timeout:         time.Duration(cfg.TimeoutSeconds) * time.Second,
		FollowRedirects: cfg.FollowRedirects,
		UserAgent:       cfg.UserAgent,
	})
	if err != nil {
		return 0, toErrorInfo(err)
	}

	handle := ClientHandle(lastHandle.Add(1))
	clients.Store(handle, c)
	return handle, nil
}

// CloseClient releases a handle. Closing an unknown handle is a no-op.
func CloseClient(handle ClientHandle) {
	clients.Delete(handle)
}

// ExecuteRequest runs the full pipeline for the given request record.
func ExecuteRequest(handle ClientHandle, spec RequestSpec) (*ResponseResult, *ErrorInfo) {
	c, errInfo := lookup(handle)
	if errInfo != nil {
		return nil, errInfo
	}

	resp, err := c.Do(&client.Request{
		URL:             spec.URL,
		Method:          spec.Method,
		Headers:         spec.Headers,
		QueryParams:     spec.QueryParams,
		Body:            spec.Body,
		Timeout:         time.Duration(spec.TimeoutSeconds) * time.Second,
		FollowRedirects: spec.FollowRedirects,
	})
	if err != nil {
		return nil, toErrorInfo(err)
	}
	return toResponseResult(resp), nil
}

// GetRequest issues a GET with empty headers and query parameters.
func GetRequest(handle ClientHandle, url string) (*ResponseResult, *ErrorInfo) {
	return simpleRequest(handle, "GET", url, nil)
}

// PostRequest issues a POST with the given body.
func PostRequest(handle ClientHandle, url string, body []byte) (*ResponseResult, *ErrorInfo) {
	return simpleRequest(handle, "POST", url, body)
}

// PutRequest issues a PUT with the given body.
func PutRequest(handle ClientHandle, url string, body []byte) (*ResponseResult, *ErrorInfo) {
	return simpleRequest(handle, "PUT", url, body)
}

// DeleteRequest issues a DELETE with no body.
func DeleteRequest(handle ClientHandle, url string) (*ResponseResult, *ErrorInfo) {
	return simpleRequest(handle, "DELETE", url, nil)
}

// PatchRequest issues a PATCH with the given body.
func PatchRequest(handle ClientHandle, url string, body []byte) (*ResponseResult, *ErrorInfo) {
	return simpleRequest(handle, "PATCH", url, body)
}

// ParseJSONPretty parses the response body as JSON and returns it
// re-serialized with stable indentation.
func ParseJSONPretty(resp *ResponseResult) (string, *ErrorInfo) {
	if resp == nil {
		return "", &ErrorInfo{Kind: string(client.KindGeneric), Message: "nil response"}
	}
	out, err := jsonx.Pretty(resp.Body)
	if err != nil {
		return "", toErrorInfo(err)
	}
	return out, nil
}

// BodyAsUTF8 decodes the response body as UTF-8 text.
func BodyAsUTF8(resp *ResponseResult) (string, *ErrorInfo) {
	if resp == nil {
		return "", &ErrorInfo{Kind: string(client.KindGeneric), Message: "nil response"}
	}
	r := client.Response{Body: resp.Body}
	out, err := r.BodyUTF8()
	if err != nil {
		return "", toErrorInfo(err)
	}
	return out, nil
}

// CreateJSONBody validates that input is JSON and returns it unchanged.
func CreateJSONBody(input string) (string, *ErrorInfo) {
	out, err := jsonx.Valid(input)
	if err != nil {
		return "", toErrorInfo(err)
	}
	return out, nil
}

// simpleRequest resolves the handle once and keeps the client for the whole
// call, so releasing the handle mid-flight cannot fail a started request.
func simpleRequest(handle ClientHandle, method, url string, body []byte) (*ResponseResult, *ErrorInfo) {
	c, errInfo := lookup(handle)
	if errInfo != nil {
		return nil, errInfo
	}

	resp, err := c.Do(&client.Request{
		URL:             url,
		Method:          method,
		Headers:         map[string]string{},
		QueryParams:     map[string]string{},
		Body:            body,
		FollowRedirects: c.Config().FollowRedirects,
	})
	if err != nil {
		return nil, toErrorInfo(err)
	}
	return toResponseResult(resp), nil
}

func lookup(handle ClientHandle) (*client.Client, *ErrorInfo) {
	value, ok := clients.Load(handle)
	if !ok {
		return nil, &ErrorInfo{Kind: string(client.KindGeneric), Message: "unknown client handle"}
	}
	return value.(*client.Client), nil
}

func toResponseResult(resp *client.Response) *ResponseResult {
	return &ResponseResult{
		StatusCode: uint16(resp.StatusCode),
		Headers:    resp.Headers,
		Body:       resp.Body,
		IsSuccess:  resp.IsSuccess,
		URL:        resp.URL,
	}
}

func toErrorInfo(err error) *ErrorInfo {
	var cerr *client.Error
	if errors.As(err, &cerr) {
		info := &ErrorInfo{Kind: string(cerr.Kind), Message: cerr.Error()}
		if cerr.StatusCode > 0 {
			info.StatusCode = uint16(cerr.StatusCode)
		}
		return info
	}
	return &ErrorInfo{Kind: string(client.KindGeneric), Message: err.Error()}
}
