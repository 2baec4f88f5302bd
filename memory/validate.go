// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package memory

import (
	"fmt"
	"sort"
	"strings"

	"github.com/diffeo/go-connect/connect"
)

// validationGroup is the single configuration group every key is
// reported in.
const validationGroup = "Common"

// requiredKeys must be present in every connector configuration.
var requiredKeys = []string{"connector.class", "name"}

// findPlugin looks up a plugin by its full class name or its simple
// name, with or without a "Connector" suffix.
func (c *Cluster) findPlugin(class string) (connect.Plugin, bool) {
	for _, plugin := range c.plugins {
		if matchesClass(plugin, class) {
			return plugin, true
		}
	}
	return connect.Plugin{}, false
}

func matchesClass(plugin connect.Plugin, class string) bool {
	simple := plugin.Class[strings.LastIndex(plugin.Class, ".")+1:]
	return class == plugin.Class || class == simple || class+"Connector" == simple
}

// ValidateConfig checks that config has the required keys and that
// its "connector.class", if any, names the plugin being validated
// against.  Every key in config is reported, in sorted order.
func (c *Cluster) ValidateConfig(class string, config connect.Config) (connect.ValidationResult, error) {
	plugin, found := c.findPlugin(class)
	if !found {
		return connect.ValidationResult{}, connect.ErrNoSuchPlugin{Class: class}
	}

	keys := make([]string, 0, len(config)+len(requiredKeys))
	for key := range config {
		keys = append(keys, key)
	}
	for _, key := range requiredKeys {
		if _, present := config[key]; !present {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	errorCount := 0
	result := connect.ValidationResult{
		Name:    plugin.Class,
		Groups:  []string{validationGroup},
		Configs: make([]connect.ConfigValidation, len(keys)),
	}
	for i, key := range keys {
		errs := validateKey(key, config, plugin)
		errorCount += len(errs)
		value, present := config[key]
		if present {
			value = fmt.Sprint(value)
		}
		result.Configs[i] = connect.ConfigValidation{
			Definition: map[string]interface{}{
				"name":     key,
				"type":     "STRING",
				"required": isRequired(key),
				"group":    validationGroup,
			},
			Value: map[string]interface{}{
				"name":   key,
				"value":  value,
				"errors": errs,
			},
		}
	}
	result.ErrorCount = &errorCount
	return result, nil
}

func isRequired(key string) bool {
	for _, required := range requiredKeys {
		if key == required {
			return true
		}
	}
	return false
}

func validateKey(key string, config connect.Config, plugin connect.Plugin) []string {
	errs := []string{}
	value, present := config[key]
	if !present {
		if isRequired(key) {
			errs = append(errs, fmt.Sprintf("Missing required configuration %q which has no default value.", key))
		}
		return errs
	}
	if key == "connector.class" {
		class := fmt.Sprint(value)
		if !matchesClass(plugin, class) {
			errs = append(errs, fmt.Sprintf("Connector class %v does not match %v", class, plugin.Class))
		}
	}
	return errs
}
