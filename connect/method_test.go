// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package connect

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMethodRoundTrip(t *testing.T) {
	for _, m := range []Method{GET, POST, PUT, DELETE} {
		parsed, err := ParseMethod(m.String())
		if assert.NoError(t, err) {
			assert.Equal(t, m, parsed)
		}
	}
}

func TestParseMethodUnknown(t *testing.T) {
	_, err := ParseMethod("PATCH")
	assert.Error(t, err)
	assert.Equal(t, "Method(7)", Method(7).String())
}

func TestConfigName(t *testing.T) {
	assert.Equal(t, "c1", Config{"name": "c1"}.Name())
	assert.Equal(t, "", Config{"name": 17}.Name())
	assert.Equal(t, "", Config{}.Name())
}
