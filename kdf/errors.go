// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package kdf

import "errors"

var (
	// ErrTooLong is returned by ExpandKeyMaterial when asked for more
	// than 20*256 bytes of output — beyond that point the one-byte
	// counter used in the expansion would wrap.
	ErrTooLong = errors.New("kdf: requested output exceeds counter-mode expansion maximum")

	// ErrInvalidCount is returned by S2K when the requested key length is
	// outside [0, 20]. An iteration count byte that decodes to fewer bytes
	// than the salted secret is not an error: S2K raises the count to one
	// full pass over salt||secret.
	ErrInvalidCount = errors.New("kdf: requested key length outside [0, 20]")
)
