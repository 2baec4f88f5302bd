// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

// Package restclient provides an HTTP REST client for a Kafka
// Connect cluster, or the compatible server in the "restserver"
// package.
//
// A Client is given one or more base URLs of cluster members.  Every
// operation tries them in order and returns the first success; later
// endpoints are not contacted once one succeeds.  If all of them fail
// the error from the last one is returned unchanged.  Nothing is
// remembered between calls, so every operation starts again with the
// first endpoint.
//
//	c, err := restclient.New("http://connect-1:8083,http://connect-2:8083", restclient.CallConfig{})
//	info, err := c.GetConnector(ctx, "my-connector")
//
// Every operation accepts optional CallConfig values that are merged
// over the client's default configuration for that call only.
package restclient

import (
	"context"
	"net/url"
	"strings"

	"github.com/benbjohnson/clock"
	"github.com/diffeo/go-connect/connect"
	"github.com/diffeo/go-connect/restdata"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Client talks to a Connect cluster through an ordered list of
// endpoints.  It is safe for concurrent use.
type Client struct {
	endpoints []string
	defaults  CallConfig
	transport Transport
	logger    logrus.FieldLogger
	clock     clock.Clock
}

// Option customizes a Client at construction time.
type Option func(*Client)

// WithTransport replaces the default HTTPTransport.
func WithTransport(t Transport) Option {
	return func(c *Client) { c.transport = t }
}

// WithLogger sets the logger endpoint failures are reported to.  The
// default is the logrus standard logger.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(c *Client) { c.logger = logger }
}

// WithClock sets the time source used to measure attempts.
func WithClock(clk clock.Clock) Option {
	return func(c *Client) { c.clock = clk }
}

// New creates a client from a comma-separated list of base URLs.  A
// single URL with no commas is fine.  Returns
// connect.ErrNoEndpoints if endpoints is empty.
func New(endpoints string, defaults CallConfig, opts ...Option) (*Client, error) {
	if endpoints == "" {
		return nil, connect.ErrNoEndpoints
	}
	return NewWithEndpoints(strings.Split(endpoints, ","), defaults, opts...)
}

// NewWithEndpoints creates a client from an explicit list of base
// URLs, tried in order.  Returns connect.ErrNoEndpoints if the list
// is empty.
func NewWithEndpoints(endpoints []string, defaults CallConfig, opts ...Option) (*Client, error) {
	if len(endpoints) == 0 {
		return nil, connect.ErrNoEndpoints
	}
	c := &Client{
		endpoints: make([]string, len(endpoints)),
		defaults:  defaults,
		transport: &HTTPTransport{},
		logger:    logrus.StandardLogger(),
		clock:     clock.New(),
	}
	for i, endpoint := range endpoints {
		endpoint = strings.TrimSpace(endpoint)
		if _, err := url.Parse(endpoint); err != nil {
			return nil, err
		}
		c.endpoints[i] = endpoint
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Endpoints returns a copy of the client's base URLs, in the order
// they are tried.
func (c *Client) Endpoints() []string {
	result := make([]string, len(c.endpoints))
	copy(result, c.endpoints)
	return result
}

// OperationResult is the raw outcome of an action on a connector.
type OperationResult struct {
	// Status is the HTTP status code.
	Status int

	// StatusText is the HTTP reason phrase.
	StatusText string

	// Data is the decoded response body.  It is nil if the body
	// was empty, and the body as a string if it was not JSON.
	Data interface{}
}

func operationResult(resp *Response) OperationResult {
	result := OperationResult{
		Status:     resp.StatusCode,
		StatusText: resp.StatusText,
	}
	var data interface{}
	err := restdata.DecodeBytes(resp.Header.Get("Content-Type"), resp.Body, &data)
	if err == nil {
		result.Data = data
	} else {
		result.Data = string(resp.Body)
	}
	return result
}

func nameVars(name string) map[string]interface{} {
	return map[string]interface{}{"name": name}
}

// Ping checks whether any endpoint is reachable.  It returns true on
// the first endpoint that answers successfully, and false if none
// do.  It never returns an error.
func (c *Client) Ping(ctx context.Context, conf ...CallConfig) bool {
	_, err := c.dispatch(ctx, connect.GET, baseURL, nil, nil, conf)
	return err == nil
}

// AddConnector creates a new connector.  connector.Name must be
// non-empty; if its configuration has a "name" it must match, and if
// not, one is added.  Returns the connector as the service created
// it.
func (c *Client) AddConnector(ctx context.Context, connector connect.Connector, conf ...CallConfig) (connect.Connector, error) {
	if connector.Name == "" {
		return connect.Connector{}, connect.ErrNoConnectorName
	}
	config := make(connect.Config, len(connector.Config)+1)
	for k, v := range connector.Config {
		config[k] = v
	}
	if name, present := config["name"]; !present {
		config["name"] = connector.Name
	} else if name != connector.Name {
		return connect.Connector{}, connect.ErrNameMismatch
	}

	req := restdata.ConnectorRequest{Name: connector.Name, Config: config}
	var info restdata.ConnectorInfo
	_, err := c.dispatch(ctx, connect.POST, resourceURL(restdata.ConnectorsPath, nil), req, &info, conf)
	if err != nil {
		return connect.Connector{}, err
	}
	return info.ToConnector(), nil
}

// UpdateConnector replaces the configuration of the connector named
// connector.Name, creating it if it does not exist.  The
// configuration is sent as-is, not wrapped with the name.
func (c *Client) UpdateConnector(ctx context.Context, connector connect.Connector, conf ...CallConfig) (connect.Connector, error) {
	if connector.Name == "" {
		return connect.Connector{}, connect.ErrNoConnectorName
	}
	config := connector.Config
	if config == nil {
		config = connect.Config{}
	}
	var info restdata.ConnectorInfo
	_, err := c.dispatch(ctx, connect.PUT, resourceURL(restdata.ConnectorConfigPath, nameVars(connector.Name)), config, &info, conf)
	if err != nil {
		return connect.Connector{}, err
	}
	return info.ToConnector(), nil
}

// GetConnector retrieves a single connector.
func (c *Client) GetConnector(ctx context.Context, name string, conf ...CallConfig) (connect.Connector, error) {
	var info restdata.ConnectorInfo
	_, err := c.dispatch(ctx, connect.GET, resourceURL(restdata.ConnectorPath, nameVars(name)), nil, &info, conf)
	if err != nil {
		return connect.Connector{}, err
	}
	return info.ToConnector(), nil
}

// GetConnectorStatus retrieves the run status of a connector and its
// tasks.
func (c *Client) GetConnectorStatus(ctx context.Context, name string, conf ...CallConfig) (connect.ConnectorStatus, error) {
	var status restdata.ConnectorStatus
	_, err := c.dispatch(ctx, connect.GET, resourceURL(restdata.ConnectorStatusPath, nameVars(name)), nil, &status, conf)
	if err != nil {
		return connect.ConnectorStatus{}, err
	}
	return status.ToConnectorStatus(), nil
}

// operation performs an action on a connector that takes an empty
// request body and has no typed response.
func (c *Client) operation(ctx context.Context, method connect.Method, template, name string, conf []CallConfig) (OperationResult, error) {
	resp, err := c.dispatch(ctx, method, resourceURL(template, nameVars(name)), map[string]interface{}{}, nil, conf)
	if err != nil {
		return OperationResult{}, err
	}
	return operationResult(resp), nil
}

// Pause pauses a connector and its tasks.
func (c *Client) Pause(ctx context.Context, name string, conf ...CallConfig) (OperationResult, error) {
	return c.operation(ctx, connect.PUT, restdata.ConnectorPausePath, name, conf)
}

// Resume resumes a paused connector.
func (c *Client) Resume(ctx context.Context, name string, conf ...CallConfig) (OperationResult, error) {
	return c.operation(ctx, connect.PUT, restdata.ConnectorResumePath, name, conf)
}

// Restart restarts a connector.
func (c *Client) Restart(ctx context.Context, name string, conf ...CallConfig) (OperationResult, error) {
	return c.operation(ctx, connect.POST, restdata.ConnectorRestartPath, name, conf)
}

// DeleteConnector deletes a connector.
func (c *Client) DeleteConnector(ctx context.Context, name string, conf ...CallConfig) (OperationResult, error) {
	resp, err := c.dispatch(ctx, connect.DELETE, resourceURL(restdata.ConnectorPath, nameVars(name)), nil, nil, conf)
	if err != nil {
		return OperationResult{}, err
	}
	return operationResult(resp), nil
}

// ListConnectorNames returns the names of all connectors.
func (c *Client) ListConnectorNames(ctx context.Context, conf ...CallConfig) ([]string, error) {
	var names []string
	_, err := c.dispatch(ctx, connect.GET, resourceURL(restdata.ConnectorsPath, nil), nil, &names, conf)
	if err != nil {
		return nil, err
	}
	return names, nil
}

// GetAllConnectors retrieves every connector.  It lists the connector
// names, then fetches each connector concurrently; each fetch fails
// over independently.  If any fetch fails the whole call fails.  The
// result is in the order the service listed the names.
func (c *Client) GetAllConnectors(ctx context.Context, conf ...CallConfig) ([]connect.Connector, error) {
	names, err := c.ListConnectorNames(ctx, conf...)
	if err != nil {
		return nil, err
	}

	result := make([]connect.Connector, len(names))
	g, gctx := errgroup.WithContext(ctx)
	for i, name := range names {
		i, name := i, name
		g.Go(func() error {
			connector, err := c.GetConnector(gctx, name, conf...)
			if err != nil {
				return err
			}
			result[i] = connector
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return result, nil
}

// GetConnectorPlugins lists the connector plugins installed on the
// cluster.
func (c *Client) GetConnectorPlugins(ctx context.Context, conf ...CallConfig) ([]connect.Plugin, error) {
	var infos []restdata.PluginInfo
	_, err := c.dispatch(ctx, connect.GET, resourceURL(restdata.PluginsPath, nil), nil, &infos, conf)
	if err != nil {
		return nil, err
	}
	result := make([]connect.Plugin, len(infos))
	for i, info := range infos {
		result[i] = info.ToPlugin()
	}
	return result, nil
}

// ValidateConfig validates a connector configuration against the
// plugin named class.
func (c *Client) ValidateConfig(ctx context.Context, class string, config connect.Config, conf ...CallConfig) (connect.ValidationResult, error) {
	if config == nil {
		config = connect.Config{}
	}
	vars := map[string]interface{}{"class": class}
	var infos restdata.ConfigInfos
	_, err := c.dispatch(ctx, connect.PUT, resourceURL(restdata.ValidatePath, vars), config, &infos, conf)
	if err != nil {
		return connect.ValidationResult{}, err
	}
	return infos.ToValidationResult(), nil
}
