// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

// Connectctl manages connectors on a Kafka Connect cluster from the
// command line.  Every command fails over between the configured
// worker URLs.  Usage:
//
//	connectctl --urls http://connect-1:8083,http://connect-2:8083 list --expand
//	connectctl --config connect.yaml create my-sink connector.class=FileStreamSink topics=t
//	connectctl status my-sink
//
// Results are printed as JSON in the Connect REST API's format.
package main

import (
	"errors"
	"io"
	"os"
	"time"

	"github.com/diffeo/go-connect/restclient"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

// errNoURLs is returned if neither --urls nor the configuration file
// names any workers.
var errNoURLs = errors.New("no Connect URLs: pass --urls or set urls in --config")

func main() {
	app := newApp(os.Stdout)
	if err := app.Run(os.Args); err != nil {
		logrus.WithFields(logrus.Fields{
			"err": err,
		}).Fatal("connectctl failed")
	}
}

// cmd holds state shared by all of the subcommands.
type cmd struct {
	Out    io.Writer
	Client *restclient.Client
}

func newApp(out io.Writer) *cli.App {
	c := &cmd{Out: out}
	app := cli.NewApp()
	app.Name = "connectctl"
	app.Usage = "Manage connectors on a Kafka Connect cluster"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:   "urls, u",
			Usage:  "comma-separated Connect worker base URLs, tried in order",
			EnvVar: "CONNECT_URLS",
		},
		cli.StringFlag{
			Name:   "config, c",
			Usage:  "YAML configuration file",
			EnvVar: "CONNECT_CONFIG",
		},
		cli.DurationFlag{
			Name:  "timeout",
			Usage: "timeout for each request to a single worker",
		},
		cli.StringFlag{
			Name:  "user",
			Usage: "HTTP basic auth user name",
		},
		cli.StringFlag{
			Name:   "password",
			Usage:  "HTTP basic auth password",
			EnvVar: "CONNECT_PASSWORD",
		},
		cli.BoolFlag{
			Name:  "debug",
			Usage: "log every failed endpoint",
		},
	}
	app.Before = c.setup
	app.Commands = []cli.Command{
		{
			Name:   "ping",
			Usage:  "check that some worker is reachable",
			Action: c.ping,
		},
		{
			Name:  "list",
			Usage: "list connectors",
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:  "expand",
					Usage: "fetch every connector instead of only names",
				},
			},
			Action: c.list,
		},
		{
			Name:      "get",
			Usage:     "show a connector",
			ArgsUsage: "NAME",
			Action:    c.get,
		},
		{
			Name:      "status",
			Usage:     "show the run status of a connector",
			ArgsUsage: "NAME",
			Action:    c.status,
		},
		{
			Name:      "create",
			Usage:     "create a connector",
			ArgsUsage: "NAME [KEY=VALUE...]",
			Flags:     []cli.Flag{settingsFileFlag},
			Action:    c.create,
		},
		{
			Name:      "update",
			Usage:     "replace the configuration of a connector",
			ArgsUsage: "NAME [KEY=VALUE...]",
			Flags:     []cli.Flag{settingsFileFlag},
			Action:    c.update,
		},
		{
			Name:      "pause",
			Usage:     "pause a connector",
			ArgsUsage: "NAME",
			Action:    c.pause,
		},
		{
			Name:      "resume",
			Usage:     "resume a connector",
			ArgsUsage: "NAME",
			Action:    c.resume,
		},
		{
			Name:      "restart",
			Usage:     "restart a connector",
			ArgsUsage: "NAME",
			Action:    c.restart,
		},
		{
			Name:      "delete",
			Usage:     "delete a connector",
			ArgsUsage: "NAME",
			Action:    c.delete,
		},
		{
			Name:   "plugins",
			Usage:  "list installed connector plugins",
			Action: c.plugins,
		},
		{
			Name:      "validate",
			Usage:     "validate a configuration against a plugin",
			ArgsUsage: "CLASS [KEY=VALUE...]",
			Flags:     []cli.Flag{settingsFileFlag},
			Action:    c.validate,
		},
	}
	return app
}

var settingsFileFlag = cli.StringFlag{
	Name:  "file, f",
	Usage: "YAML file of connector settings",
}

// setup builds the client from the configuration file and flags.
// Flags override the file.
func (c *cmd) setup(ctx *cli.Context) error {
	if ctx.Bool("debug") {
		logrus.SetLevel(logrus.DebugLevel)
	}

	var config Config
	if filename := ctx.String("config"); filename != "" {
		var err error
		config, err = LoadConfig(filename)
		if err != nil {
			return err
		}
	}
	if user := ctx.String("user"); user != "" {
		config.Username = user
	}
	if password := ctx.String("password"); password != "" {
		config.Password = password
	}
	defaults, err := config.CallConfig()
	if err != nil {
		return err
	}
	if timeout := ctx.Duration("timeout"); timeout != time.Duration(0) {
		defaults.Timeout = timeout
	}

	if urls := ctx.String("urls"); urls != "" {
		c.Client, err = restclient.New(urls, defaults)
	} else if len(config.URLs) > 0 {
		c.Client, err = restclient.NewWithEndpoints(config.URLs, defaults)
	} else {
		err = errNoURLs
	}
	return err
}
