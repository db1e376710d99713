// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package tor

import (
	"log/slog"

	"github.com/ParkerWen/tor/internal/logbridge"
)

// SetLogger redirects the facade's drained-error log (underlying failures
// are drained into the log together with a human-readable "while doing X"
// tag, rather than surfaced to the caller) to dst. Passing nil restores
// the default devlog-backed stderr logger.
//
// Embedders of this facade can use this to route the drained log into
// their own slog pipeline instead of the default stderr destination.
func SetLogger(dst *slog.Logger) {
	logbridge.SetLogger(dst)
}
