// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package streamcipher

import "errors"

var (
	// ErrNoKey is returned by operations that require a key to have
	// been installed via SetKey or GenerateKey first. Encrypt and Decrypt
	// (and their in-place forms) also return it when no IV has been
	// installed via SetIV since the key was set.
	ErrNoKey = errors.New("streamcipher: no key installed")

	// ErrEnvelopeTooShort is returned by OpenEnvelope when the input is
	// shorter than the 16-byte IV prefix plus at least one byte of
	// ciphertext.
	ErrEnvelopeTooShort = errors.New("streamcipher: envelope ciphertext shorter than IV")
)
