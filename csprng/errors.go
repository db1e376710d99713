// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package csprng

import "errors"

var (
	// ErrNotSeeded is returned by every draw operation when the
	// generator has not yet completed a successful Seed call.
	ErrNotSeeded = errors.New("csprng: generator has not been seeded")

	// ErrNoEntropySource is returned when Seed cannot read from any of the
	// platform's entropy sources and either startup is true or no prior
	// Seed call has succeeded.
	ErrNoEntropySource = errors.New("csprng: no entropy source available")

	// ErrInvalidBound is returned when RandomInt or RandomUint64 is
	// called with max <= 0, or max equal to the type's maximum value.
	ErrInvalidBound = errors.New("csprng: bound must be in (0, TYPE_MAX)")

	// ErrEmptySequence is returned by Choose when given a zero-length
	// sequence.
	ErrEmptySequence = errors.New("csprng: no element")

	// ErrShortBuffer is exported for callers but no function in this
	// package returns it: RandomBytes fails only with ErrNotSeeded.
	ErrShortBuffer = errors.New("csprng: destination buffer invalid")
)
