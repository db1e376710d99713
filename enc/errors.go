// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package enc

import "errors"

var (
	// ErrInvalidLength is returned when an encode/decode operation is
	// given a byte or character count that the codec cannot process
	// (e.g. a base32 source length whose bit count isn't a multiple of
	// 5, or a base32 destination length whose bit count isn't a
	// multiple of 8).
	ErrInvalidLength = errors.New("enc: invalid length for this codec")

	// ErrInvalidCharacter is returned when a decoder encounters a byte
	// outside its accepted alphabet.
	ErrInvalidCharacter = errors.New("enc: invalid character")

	// ErrInvalidDigestLength is returned by Base64ToDigest when the
	// decoded value is not exactly tor.DigestLen bytes.
	ErrInvalidDigestLength = errors.New("enc: decoded digest has the wrong length")

	// ErrTruncatedInput is returned by Base64Decode when trailing bits
	// left over at end-of-input cannot represent a whole byte (6 bits
	// left over with no further input).
	ErrTruncatedInput = errors.New("enc: truncated base64 input")
)
