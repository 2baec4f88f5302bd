// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/diffeo/go-connect/connect"
	"github.com/diffeo/go-connect/restclient"
	"github.com/diffeo/go-connect/restdata"
	"github.com/urfave/cli"
)

// errNoName is returned by commands that need a connector name or
// class as their first argument.
var errNoName = errors.New("missing NAME argument")

// errUnreachable is returned by ping when every worker fails.
var errUnreachable = errors.New("no Connect worker is reachable")

func (c *cmd) print(v interface{}) error {
	if err := restdata.Encode(c.Out, v); err != nil {
		return err
	}
	_, err := fmt.Fprintln(c.Out)
	return err
}

func (c *cmd) printOperation(result restclient.OperationResult, err error) error {
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(c.Out, "%d %s\n", result.Status, result.StatusText)
	return err
}

func firstArg(ctx *cli.Context) (string, error) {
	name := ctx.Args().First()
	if name == "" {
		return "", errNoName
	}
	return name, nil
}

func (c *cmd) ping(ctx *cli.Context) error {
	if !c.Client.Ping(context.Background()) {
		return errUnreachable
	}
	_, err := fmt.Fprintln(c.Out, "ok")
	return err
}

func (c *cmd) list(ctx *cli.Context) error {
	if !ctx.Bool("expand") {
		names, err := c.Client.ListConnectorNames(context.Background())
		if err != nil {
			return err
		}
		return c.print(names)
	}
	connectors, err := c.Client.GetAllConnectors(context.Background())
	if err != nil {
		return err
	}
	infos := make([]restdata.ConnectorInfo, len(connectors))
	for i, connector := range connectors {
		infos[i] = restdata.FromConnector(connector)
	}
	return c.print(infos)
}

func (c *cmd) get(ctx *cli.Context) error {
	name, err := firstArg(ctx)
	if err != nil {
		return err
	}
	connector, err := c.Client.GetConnector(context.Background(), name)
	if err != nil {
		return err
	}
	return c.print(restdata.FromConnector(connector))
}

func (c *cmd) status(ctx *cli.Context) error {
	name, err := firstArg(ctx)
	if err != nil {
		return err
	}
	status, err := c.Client.GetConnectorStatus(context.Background(), name)
	if err != nil {
		return err
	}
	return c.print(restdata.FromConnectorStatus(status))
}

// connectorArgs reads a connector name and its settings from the
// command line.
func connectorArgs(ctx *cli.Context) (connect.Connector, error) {
	name, err := firstArg(ctx)
	if err != nil {
		return connect.Connector{}, err
	}
	config, err := parseSettings(ctx.String("file"), ctx.Args().Tail())
	if err != nil {
		return connect.Connector{}, err
	}
	return connect.Connector{Name: name, Config: config}, nil
}

func (c *cmd) create(ctx *cli.Context) error {
	connector, err := connectorArgs(ctx)
	if err != nil {
		return err
	}
	connector, err = c.Client.AddConnector(context.Background(), connector)
	if err != nil {
		return err
	}
	return c.print(restdata.FromConnector(connector))
}

func (c *cmd) update(ctx *cli.Context) error {
	connector, err := connectorArgs(ctx)
	if err != nil {
		return err
	}
	connector, err = c.Client.UpdateConnector(context.Background(), connector)
	if err != nil {
		return err
	}
	return c.print(restdata.FromConnector(connector))
}

func (c *cmd) pause(ctx *cli.Context) error {
	name, err := firstArg(ctx)
	if err != nil {
		return err
	}
	return c.printOperation(c.Client.Pause(context.Background(), name))
}

func (c *cmd) resume(ctx *cli.Context) error {
	name, err := firstArg(ctx)
	if err != nil {
		return err
	}
	return c.printOperation(c.Client.Resume(context.Background(), name))
}

func (c *cmd) restart(ctx *cli.Context) error {
	name, err := firstArg(ctx)
	if err != nil {
		return err
	}
	return c.printOperation(c.Client.Restart(context.Background(), name))
}

func (c *cmd) delete(ctx *cli.Context) error {
	name, err := firstArg(ctx)
	if err != nil {
		return err
	}
	return c.printOperation(c.Client.DeleteConnector(context.Background(), name))
}

func (c *cmd) plugins(ctx *cli.Context) error {
	plugins, err := c.Client.GetConnectorPlugins(context.Background())
	if err != nil {
		return err
	}
	infos := make([]restdata.PluginInfo, len(plugins))
	for i, plugin := range plugins {
		infos[i] = restdata.FromPlugin(plugin)
	}
	return c.print(infos)
}

func (c *cmd) validate(ctx *cli.Context) error {
	class, err := firstArg(ctx)
	if err != nil {
		return err
	}
	config, err := parseSettings(ctx.String("file"), ctx.Args().Tail())
	if err != nil {
		return err
	}
	result, err := c.Client.ValidateConfig(context.Background(), class, config)
	if err != nil {
		return err
	}
	return c.print(restdata.FromValidationResult(result))
}
