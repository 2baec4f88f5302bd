// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restclient

import (
	"net/http"
	"time"
)

// BasicAuth holds HTTP basic authentication credentials.
type BasicAuth struct {
	Username string
	Password string
}

// CallConfig holds transport options for a request.  A Client has a
// default CallConfig, and every operation accepts further CallConfig
// values that are merged over it with Merge.
type CallConfig struct {
	// Headers are added to every request.  A non-nil override
	// replaces the default headers wholesale; the two maps are
	// not combined.
	Headers http.Header

	// Timeout bounds each individual attempt against a single
	// endpoint.  Zero means no timeout beyond the context's.
	Timeout time.Duration

	// BasicAuth, if set, sends HTTP basic authentication.
	BasicAuth *BasicAuth

	// UserAgent, if set, is sent as the User-Agent: header.
	UserAgent string

	// HTTPClient, if set, is used to make the request instead of
	// the transport's own client.  Proxy and TLS settings live
	// here.
	HTTPClient *http.Client
}

// Merge returns a copy of c with each non-zero field of the overrides
// replacing the corresponding field of c, in order.  This is a
// shallow merge: nested values are never combined.
func (c CallConfig) Merge(overrides ...CallConfig) CallConfig {
	result := c
	for _, o := range overrides {
		if o.Headers != nil {
			result.Headers = o.Headers
		}
		if o.Timeout != 0 {
			result.Timeout = o.Timeout
		}
		if o.BasicAuth != nil {
			result.BasicAuth = o.BasicAuth
		}
		if o.UserAgent != "" {
			result.UserAgent = o.UserAgent
		}
		if o.HTTPClient != nil {
			result.HTTPClient = o.HTTPClient
		}
	}
	return result
}
