// Package timeouts defines shared timeout constants used by the command
// entrypoints.
package timeouts

import "time"

// TelemetryShutdown caps how long a command waits for buffered spans to be
// exported before it exits.
const TelemetryShutdown = 5 * time.Second
