// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package main

import (
	"io/ioutil"
	"path/filepath"
	"testing"
	"time"

	"github.com/diffeo/go-connect/connect"
	"github.com/diffeo/go-connect/restclient"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, contents string) string {
	filename := filepath.Join(t.TempDir(), name)
	require.NoError(t, ioutil.WriteFile(filename, []byte(contents), 0644))
	return filename
}

func TestLoadConfig(t *testing.T) {
	filename := writeFile(t, "connect.yaml", `
urls:
  - http://connect-1:8083
  - http://connect-2:8083
timeout: 10s
username: admin
password: secret
headers:
  X-Team: data
`)
	config, err := LoadConfig(filename)
	require.NoError(t, err)
	assert.Equal(t, []string{"http://connect-1:8083", "http://connect-2:8083"}, config.URLs)
	assert.Equal(t, "admin", config.Username)

	conf, err := config.CallConfig()
	require.NoError(t, err)
	assert.Equal(t, 10*time.Second, conf.Timeout)
	assert.Equal(t, &restclient.BasicAuth{Username: "admin", Password: "secret"}, conf.BasicAuth)
	assert.Equal(t, "data", conf.Headers.Get("X-Team"))
}

func TestLoadConfigUnknownKey(t *testing.T) {
	filename := writeFile(t, "connect.yaml", "url: http://connect-1:8083\n")
	_, err := LoadConfig(filename)
	assert.Error(t, err)
}

func TestCallConfigEmpty(t *testing.T) {
	conf, err := Config{}.CallConfig()
	require.NoError(t, err)
	assert.Nil(t, conf.BasicAuth)
	assert.Nil(t, conf.Headers)
	assert.Zero(t, conf.Timeout)
}

func TestCallConfigBadTimeout(t *testing.T) {
	_, err := Config{Timeout: "soon"}.CallConfig()
	assert.Error(t, err)
}

func TestParseSettingsArgs(t *testing.T) {
	config, err := parseSettings("", []string{"connector.class=FileStreamSink", "file=/tmp/a=b"})
	require.NoError(t, err)
	assert.Equal(t, connect.Config{
		"connector.class": "FileStreamSink",
		"file":            "/tmp/a=b",
	}, config)
}

func TestParseSettingsFile(t *testing.T) {
	filename := writeFile(t, "sink.yaml", "connector.class: FileStreamSink\ntasks.max: 2\ntopics: t\n")
	config, err := parseSettings(filename, []string{"topics=u"})
	require.NoError(t, err)
	assert.Equal(t, connect.Config{
		"connector.class": "FileStreamSink",
		"tasks.max":       "2",
		"topics":          "u",
	}, config)
}

func TestParseSettingsBad(t *testing.T) {
	_, err := parseSettings("", []string{"topics"})
	assert.Error(t, err)
	_, err = parseSettings("", []string{"=x"})
	assert.Error(t, err)
}
