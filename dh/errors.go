// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package dh

import "errors"

var (
	// ErrNoPrivateExponent is returned by GetPublic/ComputeSecret before
	// GeneratePublic has been called.
	ErrNoPrivateExponent = errors.New("dh: no private exponent generated yet")

	// ErrRetriesExceeded is returned by GeneratePublic if it fails to
	// produce a public value passing Check within its retry bound.
	ErrRetriesExceeded = errors.New("dh: exceeded retry bound generating a valid public value")

	// ErrOutOfRange is returned by Check (and by ComputeSecret, which
	// checks the peer's value before using it) when a public value falls
	// outside [2, p-2].
	ErrOutOfRange = errors.New("dh: public value outside valid subgroup range")

	// ErrBadLength is returned when a wire-format public value is not
	// exactly tor.DHBytes bytes.
	ErrBadLength = errors.New("dh: public value has wrong byte length")

	// ErrSecretTooLong is returned by ComputeSecret when the requested
	// output length exceeds 20*255 bytes.
	ErrSecretTooLong = errors.New("dh: requested secret length exceeds 20*255 bytes")
)
