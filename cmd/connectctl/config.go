// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package main

import (
	"errors"
	"fmt"
	"io/ioutil"
	"net/http"
	"strings"
	"time"

	"github.com/diffeo/go-connect/connect"
	"github.com/diffeo/go-connect/restclient"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v2"
)

// Config is the contents of the --config file.
//
//	urls:
//	  - http://connect-1:8083
//	  - http://connect-2:8083
//	timeout: 10s
//	username: admin
//	password: secret
//	headers:
//	  X-Team: data
type Config struct {
	URLs      []string          `mapstructure:"urls"`
	Timeout   string            `mapstructure:"timeout"`
	Username  string            `mapstructure:"username"`
	Password  string            `mapstructure:"password"`
	UserAgent string            `mapstructure:"user_agent"`
	Headers   map[string]string `mapstructure:"headers"`
}

func loadConfigYaml(filename string) (map[string]interface{}, error) {
	var result map[string]interface{}
	var err error
	var bytes []byte
	bytes, err = ioutil.ReadFile(filename)
	if err == nil {
		err = yaml.Unmarshal(bytes, &result)
	}
	return result, err
}

// decode is a helper that uses the mapstructure library to decode a
// string-keyed map into a structure.  Unknown keys are an error.
func decode(result interface{}, options map[string]interface{}) error {
	config := mapstructure.DecoderConfig{
		ErrorUnused: true,
		Result:      result,
	}
	decoder, err := mapstructure.NewDecoder(&config)
	if err == nil {
		err = decoder.Decode(options)
	}
	return err
}

// LoadConfig reads a YAML configuration file.
func LoadConfig(filename string) (Config, error) {
	var config Config
	options, err := loadConfigYaml(filename)
	if err == nil {
		err = decode(&config, options)
	}
	return config, err
}

// CallConfig converts the file settings to client defaults.
func (c Config) CallConfig() (restclient.CallConfig, error) {
	var conf restclient.CallConfig
	if c.Timeout != "" {
		timeout, err := time.ParseDuration(c.Timeout)
		if err != nil {
			return conf, err
		}
		conf.Timeout = timeout
	}
	if c.Username != "" || c.Password != "" {
		conf.BasicAuth = &restclient.BasicAuth{Username: c.Username, Password: c.Password}
	}
	conf.UserAgent = c.UserAgent
	if len(c.Headers) > 0 {
		conf.Headers = make(http.Header)
		for k, v := range c.Headers {
			conf.Headers.Set(k, v)
		}
	}
	return conf, nil
}

// errBadSetting is returned by parseSettings for an argument that is
// not key=value.
var errBadSetting = errors.New("settings must be key=value")

// parseSettings builds a connector configuration from an optional
// YAML file and key=value arguments, which override the file.
func parseSettings(filename string, args []string) (connect.Config, error) {
	config := connect.Config{}
	if filename != "" {
		options, err := loadConfigYaml(filename)
		if err != nil {
			return nil, err
		}
		for k, v := range options {
			config[k] = fmt.Sprint(v)
		}
	}
	for _, arg := range args {
		parts := strings.SplitN(arg, "=", 2)
		if len(parts) != 2 || parts[0] == "" {
			return nil, fmt.Errorf("%v: %q", errBadSetting, arg)
		}
		config[parts[0]] = parts[1]
	}
	return config, nil
}
