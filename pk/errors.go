// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package pk

import "errors"

var (
	// ErrNoPublicKey is returned by any operation that needs modulus/
	// exponent material when the key is an empty shell (New, never
	// Generate'd or parsed into).
	ErrNoPublicKey = errors.New("pk: key has no public component")

	// ErrNoPrivateKey is returned by private-key-only operations
	// (PrivateDecrypt, PrivateSign, PEM private-key writers) when the key
	// holds only a public component.
	ErrNoPrivateKey = errors.New("pk: key has no private component")

	// ErrInvalidPEM is returned when a PEM blob does not decode to the
	// expected block type.
	ErrInvalidPEM = errors.New("pk: invalid or unexpected PEM block")

	// ErrInvalidExponent is returned by Generate when asked for a public
	// exponent other than 65537: the Go standard library's RSA key
	// generator fixes e=65537 and offers no way to override it.
	ErrInvalidExponent = errors.New("pk: only public exponent 65537 is supported")

	// ErrBadSignature is returned by PublicChecksig/PublicChecksigDigest
	// when the signature does not recover a validly PKCS#1-padded
	// message, or (digest form) the recovered message does not match the
	// expected digest.
	ErrBadSignature = errors.New("pk: signature verification failed")

	// ErrWrongLength is returned when an encrypt/decrypt input's length
	// does not fit the padding mode in use (e.g. PaddingNone requires an
	// exact modulus-sized block).
	ErrWrongLength = errors.New("pk: input length invalid for padding mode")

	// ErrInvalidFingerprint is returned by CheckFingerprintSyntax's
	// callers when a fingerprint string fails syntax validation; exported
	// so callers can distinguish it from other failures if needed.
	ErrInvalidFingerprint = errors.New("pk: malformed fingerprint syntax")
)
