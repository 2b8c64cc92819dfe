// Package timeouts defines shared timeout constants used across commands.
package timeouts

import "time"

// ReadHeader limits how long an HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long an HTTP server waits for in-flight requests
// during graceful shutdown.
const Shutdown = 5 * time.Second

// MachineTranslation caps one machine translation backend call.
const MachineTranslation = 10 * time.Second

// MachineTranslationAll caps a fan-out across every registered backend.
const MachineTranslationAll = 15 * time.Second
