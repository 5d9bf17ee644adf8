// Package constants defines shared constants and environment configuration
// used throughout navkit.
package constants

import (
	"os"
	"strings"
)

// Environment variables read by navkit.
const (
	DebugEnvVar     = "NAVKIT_DEBUG"      // Enables internal debug logging and invariant checks
	LogLevelEnvVar  = "NAVKIT_LOG_LEVEL"  // Application log level (debug, info, warn, error)
	LogFormatEnvVar = "NAVKIT_LOG_FORMAT" // "json" (default) or "console"
	ConfigEnvVar    = "NAVKIT_CONFIG"     // Path to a TOML config file
)

// Defaults.
const (
	DefaultLanguage   = "en"
	DefaultConfigFile = "navkit.toml"
	RootRouterIndex   = 0
)

// IsDebug returns true if NAVKIT_DEBUG is set to a truthy value.
func IsDebug() bool {
	switch strings.ToLower(os.Getenv(DebugEnvVar)) {
	case "", "0", "false", "no", "off":
		return false
	default:
		return true
	}
}
