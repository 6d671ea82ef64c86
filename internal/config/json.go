// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags. Durations
// accept both "15s" strings and nanosecond numbers.
type StructuredJSONConfig struct {
	App struct {
		Env            string `json:"env"`
		LogLevel       string `json:"log_level"`
		DebugEndpoints *bool  `json:"debug_endpoints"`
	} `json:"app,omitempty"`

	Server struct {
		HTTPAddress     string   `json:"http_address"`
		RequestTimeout  Duration `json:"request_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout"`
	} `json:"server,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Session struct {
		Store      string   `json:"store"`
		CookieName string   `json:"cookie_name"`
		TTL        Duration `json:"ttl"`
		Redis      struct {
			Address  string `json:"address"`
			Password string `json:"password"`
			DB       int    `json:"db"`
			Prefix   string `json:"prefix"`
		} `json:"redis,omitempty"`
	} `json:"session,omitempty"`

	Auth struct {
		CookieName   string   `json:"cookie_name"`
		TokenTTL     Duration `json:"token_ttl"`
		TokenSignKey string   `json:"token_sign_key"`
	} `json:"auth,omitempty"`

	Upload struct {
		MaxSize int64  `json:"max_size"`
		TempDir string `json:"temp_dir"`
	} `json:"upload,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Env:            jsonCfg.App.Env,
			LogLevel:       jsonCfg.App.LogLevel,
			DebugEndpoints: jsonCfg.App.DebugEndpoints,
		},
		Server: Server{
			HTTPAddress:     jsonCfg.Server.HTTPAddress,
			RequestTimeout:  time.Duration(jsonCfg.Server.RequestTimeout),
			ShutdownTimeout: time.Duration(jsonCfg.Server.ShutdownTimeout),
		},
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Session: Session{
			Store:      jsonCfg.Session.Store,
			CookieName: jsonCfg.Session.CookieName,
			TTL:        time.Duration(jsonCfg.Session.TTL),
			Redis: Redis{
				Address:  jsonCfg.Session.Redis.Address,
				Password: jsonCfg.Session.Redis.Password,
				DB:       jsonCfg.Session.Redis.DB,
				Prefix:   jsonCfg.Session.Redis.Prefix,
			},
		},
		Auth: Auth{
			CookieName:   jsonCfg.Auth.CookieName,
			TokenTTL:     time.Duration(jsonCfg.Auth.TokenTTL),
			TokenSignKey: jsonCfg.Auth.TokenSignKey,
		},
		Upload: Upload{
			MaxSize: jsonCfg.Upload.MaxSize,
			TempDir: jsonCfg.Upload.TempDir,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
