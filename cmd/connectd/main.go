// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

// Connectd is a development stand-in for a Kafka Connect worker.  It
// serves the Connect REST API over an in-memory cluster, so it keeps
// connector configuration and state but never runs any tasks.
// Prometheus metrics are served at /metrics.
package main

import (
	"flag"
	"io/ioutil"
	"time"

	"github.com/diffeo/go-connect/connect"
	"github.com/diffeo/go-connect/memory"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

// Config is the contents of the -config file.
//
//	worker_id: connect-dev:8083
//	plugins:
//	  - class: org.example.MySinkConnector
//	    type: sink
//	    version: 1.0.0
type Config struct {
	WorkerID string `mapstructure:"worker_id"`
	Plugins  []struct {
		Class   string `mapstructure:"class"`
		Type    string `mapstructure:"type"`
		Version string `mapstructure:"version"`
	} `mapstructure:"plugins"`
}

func main() {
	httpBind := flag.String("http", ":8083",
		"[ip]:port for HTTP REST interface")
	workerID := flag.String("worker-id", "",
		"worker id reported in connector status")
	config := flag.String("config", "", "global configuration YAML file")
	logRequests := flag.Bool("log-requests", false, "log all requests")
	interval := flag.Duration("metrics-interval", 15*time.Second,
		"how often to refresh connector metrics")
	flag.Parse()

	var gConfig Config
	if *config != "" {
		var err error
		gConfig, err = loadConfig(*config)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"err": err,
			}).Fatal("Could not load YAML configuration")
			return
		}
	}
	if *workerID != "" {
		gConfig.WorkerID = *workerID
	}

	cluster := newCluster(gConfig)
	go observe(cluster, time.NewTicker(*interval).C)

	server := HTTP{
		cluster:     cluster,
		laddr:       *httpBind,
		logRequests: *logRequests,
	}
	logrus.WithFields(logrus.Fields{
		"http":      *httpBind,
		"worker_id": gConfig.WorkerID,
	}).Info("Serving Connect REST API")
	if err := server.Serve(); err != nil {
		logrus.WithFields(logrus.Fields{
			"err": err,
		}).Fatal("HTTP server failed")
	}
}

// newCluster builds the in-memory cluster a configuration describes.
// With no plugins configured it offers the default file connectors.
func newCluster(config Config) *memory.Cluster {
	workerID := config.WorkerID
	if workerID == "" {
		workerID = memory.DefaultWorkerID
	}
	plugins := memory.DefaultPlugins
	if len(config.Plugins) > 0 {
		plugins = make([]connect.Plugin, len(config.Plugins))
		for i, p := range config.Plugins {
			plugins[i] = connect.Plugin{
				Class:   p.Class,
				Type:    p.Type,
				Version: p.Version,
			}
		}
	}
	return memory.NewWithPlugins(workerID, plugins)
}

func loadConfig(filename string) (Config, error) {
	var config Config
	var options map[string]interface{}
	bytes, err := ioutil.ReadFile(filename)
	if err == nil {
		err = yaml.Unmarshal(bytes, &options)
	}
	if err == nil {
		err = mapstructure.Decode(options, &config)
	}
	return config, err
}
