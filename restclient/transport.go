// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restclient

// This file provides the HTTP transport the failover dispatcher runs
// over.

import (
	"bytes"
	"context"
	"io"
	"io/ioutil"
	"net/http"
	"strconv"
	"strings"

	"github.com/diffeo/go-connect/connect"
	"github.com/diffeo/go-connect/restdata"
)

// Request is a single HTTP request against a single endpoint.
type Request struct {
	// Method is the HTTP method to use.
	Method connect.Method

	// URL is the complete URL of the request.
	URL string

	// Body, if non-nil, is serialized as JSON and sent as the
	// request body.
	Body interface{}

	// Config holds the effective transport options.
	Config CallConfig

	// ID identifies the logical operation.  Every attempt made
	// for one operation shares the same ID.
	ID string
}

// Response is the raw result of a successful HTTP request.
type Response struct {
	// StatusCode is the numeric HTTP status, e.g. 200.
	StatusCode int

	// StatusText is the reason phrase, e.g. "OK".
	StatusText string

	// Header holds the response headers.
	Header http.Header

	// Body holds the complete response body.
	Body []byte
}

// Transport issues a single HTTP request.  It returns an error for
// network failures and for non-2xx responses.
type Transport interface {
	Do(ctx context.Context, req *Request) (*Response, error)
}

// HTTPTransport is a Transport built on net/http.  The zero value
// uses http.DefaultClient.
type HTTPTransport struct {
	// Client makes requests that do not set
	// CallConfig.HTTPClient.  If nil, uses http.DefaultClient.
	Client *http.Client
}

// Do performs an HTTP request.  If req.Body is non-nil it is
// serialized as JSON.  A non-2xx response produces an ErrorHTTP.
func (t *HTTPTransport) Do(ctx context.Context, req *Request) (*Response, error) {
	client := req.Config.HTTPClient
	if client == nil {
		client = t.Client
	}
	if client == nil {
		client = http.DefaultClient
	}

	if req.Config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, req.Config.Timeout)
		defer cancel()
	}

	// Set up the body as serialized JSON, if there is one
	var body io.Reader
	if req.Body != nil {
		buf := &bytes.Buffer{}
		if err := restdata.Encode(buf, req.Body); err != nil {
			return nil, err
		}
		body = buf
	}

	// Create the request and set headers
	httpReq, err := http.NewRequestWithContext(ctx, req.Method.String(), req.URL, body)
	if err != nil {
		return nil, err
	}
	for key, values := range req.Config.Headers {
		for _, value := range values {
			httpReq.Header.Add(key, value)
		}
	}
	if req.Body != nil {
		httpReq.Header.Set("Content-Type", restdata.JSONMediaType)
	}
	httpReq.Header.Set("Accept", restdata.JSONMediaType)
	if req.Config.UserAgent != "" {
		httpReq.Header.Set("User-Agent", req.Config.UserAgent)
	}
	if req.ID != "" {
		httpReq.Header.Set("X-Request-Id", req.ID)
	}
	if auth := req.Config.BasicAuth; auth != nil {
		httpReq.SetBasicAuth(auth.Username, auth.Password)
	}

	// Actually do the request
	httpResp, err := client.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer httpResp.Body.Close()

	data, err := ioutil.ReadAll(httpResp.Body)
	if err != nil {
		return nil, err
	}
	resp := &Response{
		StatusCode: httpResp.StatusCode,
		StatusText: statusText(httpResp),
		Header:     httpResp.Header,
		Body:       data,
	}
	if err = checkHTTPStatus(resp); err != nil {
		return resp, err
	}
	return resp, nil
}

// statusText extracts the reason phrase from a response, falling back
// to the standard text for the code.
func statusText(resp *http.Response) string {
	text := strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)+" ")
	if text == "" || text == resp.Status {
		text = http.StatusText(resp.StatusCode)
	}
	return text
}

// ErrorHTTP is a catch-all error for non-successes returned from the
// REST endpoint.
type ErrorHTTP struct {
	// StatusCode is the numeric HTTP status.
	StatusCode int

	// StatusText is the reason phrase.
	StatusText string

	// Message is the server-provided error message, if the body
	// was a Connect error response.
	Message string

	// Body holds the contents of the message body, presumed to
	// be text.
	Body string
}

func (e ErrorHTTP) Error() string {
	status := strconv.Itoa(e.StatusCode) + " " + e.StatusText
	if e.Message != "" {
		return status + ": " + e.Message
	}
	return status
}

// IsNotFound returns true if err is a 404 Not Found response.
func IsNotFound(err error) bool {
	httpErr, isHTTP := err.(ErrorHTTP)
	return isHTTP && httpErr.StatusCode == http.StatusNotFound
}

// checkHTTPStatus examines a response and returns an error if it is
// not successful.
func checkHTTPStatus(resp *Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	err := ErrorHTTP{
		StatusCode: resp.StatusCode,
		StatusText: resp.StatusText,
		Body:       string(resp.Body),
	}

	// Take a shot at decoding it as a better error
	var errResp restdata.ErrorResponse
	contentType := resp.Header.Get("Content-Type")
	if restdata.DecodeBytes(contentType, resp.Body, &errResp) == nil {
		err.Message = errResp.Message
	}
	return err
}
