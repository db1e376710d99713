// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package tor

import "errors"

var (
	// ErrNotInitialized reports use of the facade before a successful
	// Initialize call. No function in this module returns it; facade
	// operations do not check whether Initialize has run.
	ErrNotInitialized = errors.New("tor: facade not initialized")

	// ErrAlreadyTorndown reports use of the facade after Teardown. No
	// function in this module returns it; after Teardown, WithLock
	// reports false instead.
	ErrAlreadyTorndown = errors.New("tor: facade has been torn down")

	// ErrKeyLength is returned when a symmetric key buffer is not
	// exactly CipherKeyLen bytes.
	ErrKeyLength = errors.New("tor: key must be CipherKeyLen bytes")

	// ErrIVLength is returned when a counter block is not exactly
	// CipherIVLen bytes.
	ErrIVLength = errors.New("tor: iv must be CipherIVLen bytes")
)
