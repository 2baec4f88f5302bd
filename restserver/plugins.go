// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restserver

import (
	"github.com/diffeo/go-connect/connect"
	"github.com/diffeo/go-connect/restdata"
)

// PluginList returns the installed connector plugins.
func (api *restAPI) PluginList(ctx *request) (interface{}, error) {
	plugins, err := api.Cluster.Plugins()
	if err != nil {
		return nil, err
	}
	result := make([]restdata.PluginInfo, len(plugins))
	for i, plugin := range plugins {
		result[i] = restdata.FromPlugin(plugin)
	}
	return result, nil
}

// ValidateConfig validates a configuration against a plugin.
func (api *restAPI) ValidateConfig(ctx *request, in interface{}) (interface{}, error) {
	config, valid := in.(map[string]interface{})
	if !valid {
		return nil, errUnmarshal
	}
	result, err := api.Cluster.ValidateConfig(ctx.Class, connect.Config(config))
	if err != nil {
		return nil, err
	}
	return restdata.FromValidationResult(result), nil
}
