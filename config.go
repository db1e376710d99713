// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package tor

// Accel selects the facade's engine-acceleration behavior at Initialize
// time.
type Accel int

const (
	// AccelTentative behaves like AccelOff (default implementations
	// only) but suppresses the "acceleration requested" log line.
	AccelTentative Accel = -1
	// AccelOff uses default (non-accelerated) implementations for every
	// primitive.
	AccelOff Accel = 0
	// AccelOn probes for and registers hardware/engine-accelerated
	// implementations where available, logging the backend chosen per
	// primitive (RSA, DH, RAND, SHA1, 3DES, AES).
	AccelOn Accel = 1
)

// Config controls Initialize's behavior.
type Config struct {
	// Accel selects the engine-acceleration tri-state described above.
	Accel Accel

	// Locks is the number of mutexes the facade allocates to model a
	// lower crypto library's requested lock count. A reference design
	// asks the lower library how many it needs; this Go facade has no
	// such library to ask (see DESIGN.md, Open Question #1), so a
	// fixed, generous default is used instead.
	Locks int
}

// DefaultConfig returns the default Initialize configuration: no engine
// acceleration, 16 mutexes.
func DefaultConfig() Config {
	return Config{
		Accel: AccelOff,
		Locks: 16,
	}
}

// Option configures Initialize.
type Option func(*Config)

// WithAccel sets the engine-acceleration tri-state.
func WithAccel(a Accel) Option {
	return func(c *Config) { c.Accel = a }
}

// WithLocks overrides the number of mutexes allocated for the lock-array
// shim.
func WithLocks(n int) Option {
	return func(c *Config) { c.Locks = n }
}
