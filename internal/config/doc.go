// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// facilities for the cardify web front-end.
//
// Configuration is assembled from multiple sources. Earlier sources win for
// every field they set; later sources only fill fields that are still zero:
//  1. Environment variables (after loading optional .env files)
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults
//
// The main entry point is [GetStructuredConfig].
package config
