// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")

	jsonBody := `{
		"app": { "env": "local", "log_level": "debug", "debug_endpoints": false },
		"server": {
			"http_address": "localhost:8080",
			"request_timeout": "30s",
			"shutdown_timeout": "3s"
		},
		"adapter": { "http_address": "http://localhost:5000", "request_timeout": "7s" },
		"session": {
			"store": "redis",
			"cookie_name": "sid",
			"ttl": "12h",
			"redis": { "address": "localhost:6379", "password": "pw", "db": 2, "prefix": "s:" }
		},
		"auth": { "cookie_name": "token", "token_ttl": "5m", "token_sign_key": "k" },
		"upload": { "max_size": 2048, "temp_dir": "/tmp/up" }
	}`
	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "local", cfg.App.Env)
	assert.Equal(t, "debug", cfg.App.LogLevel)
	require.NotNil(t, cfg.App.DebugEndpoints)
	assert.False(t, *cfg.App.DebugEndpoints)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 3*time.Second, cfg.Server.ShutdownTimeout)

	assert.Equal(t, "http://localhost:5000", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 7*time.Second, cfg.Adapter.RequestTimeout)

	assert.Equal(t, "redis", cfg.Session.Store)
	assert.Equal(t, "sid", cfg.Session.CookieName)
	assert.Equal(t, 12*time.Hour, cfg.Session.TTL)
	assert.Equal(t, Redis{Address: "localhost:6379", Password: "pw", DB: 2, Prefix: "s:"}, cfg.Session.Redis)

	assert.Equal(t, "token", cfg.Auth.CookieName)
	assert.Equal(t, 5*time.Minute, cfg.Auth.TokenTTL)
	assert.Equal(t, "k", cfg.Auth.TokenSignKey)

	assert.Equal(t, int64(2048), cfg.Upload.MaxSize)
	assert.Equal(t, "/tmp/up", cfg.Upload.TempDir)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	cfg, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))

	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"server":`), 0o600))

	cfg, err := parseJSON(p)

	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{name: "string", input: `"1m30s"`, want: 90 * time.Second},
		{name: "nanoseconds", input: `1000000000`, want: time.Second},
		{name: "bad string", input: `"soon"`, wantErr: true},
		{name: "bool", input: `true`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := json.Unmarshal([]byte(tt.input), &d)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, time.Duration(d))
		})
	}
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(Duration(15 * time.Second))

	require.NoError(t, err)
	assert.JSONEq(t, `"15s"`, string(b))
}
