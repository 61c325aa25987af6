// Package config loads runtime configuration for the LearnTrack CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-u string   base URL of the backend API
//	-t int      request timeout (seconds)
//	-d string   path to the local credential database
//
// # JSON schema
//
// The JSON loader uses timex.Duration for durations, so values can be either
// strings like "15s" or integer nanoseconds:
//
//	{
//	  "api_base_url": "http://127.0.0.1:8080",
//	  "request_timeout": "15s",
//	  "credential_ttl": "168h",
//	  "database_path": "learntrack.db"
//	}
//
// This package does not read environment variables; use the JSON file or
// flags to configure values.
package config
