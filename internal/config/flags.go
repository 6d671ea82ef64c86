// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags from args (usually os.Args[1:]).
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-backend backend API base URL
//	-c/-config json file path with configs
//	-env deployment environment name
//	-log-level minimum log level
//	-session-store session store kind (memory, redis)
//	-redis-address redis address for the session store
//	-request-timeout inbound request timeout (e.g., "30s", "1m")
//	-backend-timeout backend call timeout (e.g., "15s")
func ParseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var backendAddress string
	var jsonConfigPath string
	var appEnv string
	var logLevel string
	var sessionStore string
	var redisAddress string
	var requestTimeout time.Duration
	var backendTimeout time.Duration

	fs := flag.NewFlagSet("cardify", flag.ContinueOnError)
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&backendAddress, "backend", "", "Backend API base URL")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&appEnv, "env", "", "Deployment environment")
	fs.StringVar(&logLevel, "log-level", "", "Minimum log level")
	fs.StringVar(&sessionStore, "session-store", "", "Session store (memory, redis)")
	fs.StringVar(&redisAddress, "redis-address", "", "Redis address host:port")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&backendTimeout, "backend-timeout", 0, "Backend call timeout (e.g., 15s)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			Env:      appEnv,
			LogLevel: logLevel,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    backendAddress,
			RequestTimeout: backendTimeout,
		},
		Session: Session{
			Store: sessionStore,
			Redis: Redis{
				Address: redisAddress,
			},
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// An empty host means all interfaces. It validates the port range, checks IP
// correctness unless host is "localhost", and returns an error if the format
// or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be between 1 and 65535")
	}

	if host != "" && host != "localhost" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
