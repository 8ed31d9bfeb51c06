package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestConfigShow_YAML(t *testing.T) {
	t.Setenv("SHIPDOG_HOME", t.TempDir())

	var out bytes.Buffer
	err := runConfigShow(context.Background(), &out, &ConfigShowFlags{OutputFormat: "yaml"})
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &doc))
	assert.Contains(t, doc, "repo")
	assert.Contains(t, doc, "build")
	assert.Contains(t, doc, "service")
	assert.Contains(t, out.String(), "/root/telephony-forwarder")
}

func TestConfigShow_JSON(t *testing.T) {
	t.Setenv("SHIPDOG_HOME", t.TempDir())

	var out bytes.Buffer
	err := runConfigShow(context.Background(), &out, &ConfigShowFlags{OutputFormat: "json"})
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &doc))
	assert.NotEmpty(t, doc)
}

func TestConfigShow_EnvOverrideVisible(t *testing.T) {
	t.Setenv("SHIPDOG_HOME", t.TempDir())
	t.Setenv("SHIPDOG_SERVICE_NAME", "forwarder-staging")

	var out bytes.Buffer
	err := runConfigShow(context.Background(), &out, &ConfigShowFlags{OutputFormat: "yaml"})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "forwarder-staging")
}

func TestConfigShow_InvalidFormat(t *testing.T) {
	t.Setenv("SHIPDOG_HOME", t.TempDir())

	var out bytes.Buffer
	err := runConfigShow(context.Background(), &out, &ConfigShowFlags{OutputFormat: "toml"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid output format")
}
