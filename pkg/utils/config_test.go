package utils

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDefaultConfigIsValid(t *testing.T) {
	require.NoError(t, validateConfig(DefaultConfig()))
}

func TestSaveConfigRoundTrip(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	config := DefaultConfig()
	require.NoError(t, SaveConfig(config))

	path, err := GetConfigPath()
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var loaded Config
	require.NoError(t, yaml.Unmarshal(data, &loaded))
	assert.Equal(t, *config, loaded)
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "zero port", mutate: func(c *Config) { c.Server.Port = 0 }},
		{name: "port out of range", mutate: func(c *Config) { c.Server.Port = 70000 }},
		{name: "zero batch size", mutate: func(c *Config) { c.API.MaxBatchSize = 0 }},
		{name: "zero workers", mutate: func(c *Config) { c.API.BatchWorkers = 0 }},
		{name: "zero cache ttl", mutate: func(c *Config) { c.Cache.TTLSeconds = 0 }},
		{name: "zero cache entries", mutate: func(c *Config) { c.Cache.MaxEntries = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			tt.mutate(config)
			assert.Error(t, validateConfig(config))
		})
	}
}
