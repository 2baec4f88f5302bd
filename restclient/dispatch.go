// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restclient

// This file contains the failover dispatcher every operation goes
// through.

import (
	"context"
	"reflect"
	"strings"

	"github.com/diffeo/go-connect/connect"
	"github.com/diffeo/go-connect/restdata"
	"github.com/satori/go.uuid"
	"github.com/sirupsen/logrus"
)

// pathFunc produces the full request URL for one endpoint.
type pathFunc func(endpoint string) (string, error)

// baseURL requests the endpoint's base URL itself.
func baseURL(endpoint string) (string, error) {
	return endpoint, nil
}

// resourceURL returns a pathFunc that expands a URI template from the
// restdata package and appends it to the endpoint.
func resourceURL(template string, vars map[string]interface{}) pathFunc {
	return func(endpoint string) (string, error) {
		path, err := restdata.Expand(template, vars)
		if err != nil {
			return "", err
		}
		return strings.TrimSuffix(endpoint, "/") + path, nil
	}
}

// dispatch runs one logical request against the configured endpoints
// in order, returning the first successful response.  If out is
// non-nil the response body is decoded into it, and a decoding
// failure counts as a failure of that endpoint.  If every endpoint
// fails, returns the error from the last one.
func (c *Client) dispatch(ctx context.Context, method connect.Method, path pathFunc, in, out interface{}, confs []CallConfig) (*Response, error) {
	conf := c.defaults.Merge(confs...)
	id := uuid.NewV4().String()

	var lastErr error
	for _, endpoint := range c.endpoints {
		if ctx.Err() != nil {
			break
		}
		resp, err := c.attempt(ctx, endpoint, method, path, in, out, conf, id)
		if err == nil {
			return resp, nil
		}
		lastErr = err
		c.logger.WithFields(logrus.Fields{
			"endpoint": endpoint,
			"method":   method,
			"request":  id,
			"err":      err,
		}).Debug("Connect endpoint failed")
	}

	if lastErr == nil {
		return nil, ctx.Err()
	}
	c.logger.WithFields(logrus.Fields{
		"method":    method,
		"request":   id,
		"endpoints": len(c.endpoints),
		"err":       lastErr,
	}).Warn("All Connect endpoints failed")
	return nil, lastErr
}

// attempt makes a single request against a single endpoint.
func (c *Client) attempt(ctx context.Context, endpoint string, method connect.Method, path pathFunc, in, out interface{}, conf CallConfig, id string) (resp *Response, err error) {
	start := c.clock.Now()
	defer func() {
		outcome := "success"
		if err != nil {
			outcome = "failure"
		}
		attemptsTotal.WithLabelValues(method.String(), outcome).Inc()
		attemptSeconds.WithLabelValues(method.String()).
			Observe(c.clock.Now().Sub(start).Seconds())
	}()

	url, err := path(endpoint)
	if err != nil {
		return nil, err
	}
	resp, err = c.transport.Do(ctx, &Request{
		Method: method,
		URL:    url,
		Body:   in,
		Config: conf,
		ID:     id,
	})
	if err != nil {
		return nil, err
	}
	if out != nil {
		// Clear anything a previous endpoint partially decoded
		target := reflect.ValueOf(out).Elem()
		target.Set(reflect.Zero(target.Type()))
		err = restdata.DecodeBytes(resp.Header.Get("Content-Type"), resp.Body, out)
		if err != nil {
			return nil, err
		}
	}
	return resp, nil
}
