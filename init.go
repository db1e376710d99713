// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package tor

import (
	"sync"

	"github.com/ParkerWen/tor/csprng"
	"github.com/ParkerWen/tor/internal/logbridge"
)

// facade holds the process-wide state Initialize/Teardown manage: the
// "is live" flag every lock-shim callback consults, and the mutex array
// modeling a lower crypto library's requested lock slots.
//
// See DESIGN.md, Open Question #1, for why this stands in for a raw C
// locking-callback ABI: Go's crypto primitives are already safe for
// concurrent per-call use, so there is no real lower library to hand
// callbacks to. What is preserved is the *contract*: the lock array is
// allocated at Initialize and released at Teardown, and any access after
// Teardown is a silent no-op rather than a crash.
type facade struct {
	mu    sync.RWMutex
	live  bool
	locks []sync.Mutex
}

var global facade

// Initialize brings the facade up: installs the lock array, performs the
// startup CSPRNG seeding (with the startup=true flag), and logs the
// selected acceleration backend. It is idempotent: a second successful
// call returns nil without repeating work. Teardown must be called to
// reverse it, and should always be attempted even if Initialize partially
// failed.
func Initialize(opts ...Option) error {
	global.mu.Lock()
	defer global.mu.Unlock()
	if global.live {
		return nil
	}

	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	op := logbridge.Begin("initialize")

	if cfg.Locks <= 0 {
		cfg.Locks = DefaultConfig().Locks
	}
	global.locks = make([]sync.Mutex, cfg.Locks)

	if err := csprng.Seed(true); err != nil {
		op.Error("seeding csprng at startup", err)
		global.locks = nil
		return err
	}

	switch cfg.Accel {
	case AccelOn:
		op.Info("acceleration requested", "backends", []string{"RSA", "DH", "RAND", "SHA1", "3DES", "AES"})
		logAccelBackend(op, "RSA", "default")
		logAccelBackend(op, "DH", "default")
		logAccelBackend(op, "RAND", "default")
		logAccelBackend(op, "SHA1", "default")
		logAccelBackend(op, "3DES", "default")
		logAccelBackend(op, "AES", "default")
	case AccelTentative:
		// Same as AccelOff, but the "acceleration requested" log line
		// above is intentionally suppressed.
	case AccelOff:
	}

	global.live = true
	return nil
}

// logAccelBackend records which backend was selected for primitive. Since
// this module has no hardware-engine registry to probe — every primitive
// is the Go standard library's own constant-shape implementation — every
// primitive always resolves to "default"; the log line itself is the
// observable contract callers rely on ("log which backend is chosen per
// primitive").
func logAccelBackend(op logbridge.Op, primitive, backend string) {
	op.Info("accelerated backend selected", "primitive", primitive, "backend", backend)
}

// Teardown releases the facade's process-wide state. It is always safe to
// call, including after a failed or repeated Initialize, and always safe
// to call more than once. After Teardown, lock-shim callbacks become
// silent no-ops rather than touching freed state.
func Teardown() {
	global.mu.Lock()
	defer global.mu.Unlock()
	global.live = false
	global.locks = nil
}

// IsInitialized reports whether Initialize has succeeded and Teardown has
// not since been called.
func IsInitialized() bool {
	global.mu.RLock()
	defer global.mu.RUnlock()
	return global.live
}

// lockAt acquires mutex n of the facade's lock array, modeling a static
// locking callback. If the facade has been torn down (or never
// initialized), it returns false without blocking: these callbacks must
// stay null-safe after teardown.
func lockAt(n int) (unlock func(), ok bool) {
	global.mu.RLock()
	if !global.live || n < 0 || n >= len(global.locks) {
		global.mu.RUnlock()
		return nil, false
	}
	m := &global.locks[n]
	global.mu.RUnlock()
	m.Lock()
	return m.Unlock, true
}

// WithLock runs fn while holding mutex n of the facade's lock array,
// modeling a single LOCK/UNLOCK pair from a static locking callback. If
// the facade is not live, fn is not run and WithLock returns false.
func WithLock(n int, fn func()) bool {
	unlock, ok := lockAt(n)
	if !ok {
		return false
	}
	defer unlock()
	fn()
	return true
}
