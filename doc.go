// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

// Package tor is the process-wide facade for this module's cryptographic
// primitives: RSA public keys (package pk), AES-128-CTR streams (package
// streamcipher), SHA-1 digests and HMAC-SHA1 (package digest), a fixed
// 1024-bit MODP Diffie-Hellman group (package dh), a seeded CSPRNG (package
// csprng), a hybrid RSA+AES-CTR envelope (package hybrid), counter-mode and
// RFC 2440 key derivation (package kdf), and base16/base32/base64 text
// encodings (package enc).
//
// This package itself holds only the facade-wide lifecycle: Initialize and
// Teardown, the accelerated-backend selection knob, padding-mode constants,
// and the byte-length constants every other package's doc comments refer
// back to. Initialize seeds package csprng, whose draws fail with
// csprng.ErrNotSeeded until a seed has succeeded; no package checks
// whether Initialize itself has run.
package tor

// Byte-length constants shared across the facade.
const (
	// DigestLen is the length in bytes of a SHA-1 digest.
	DigestLen = 20
	// HexDigestLen is the length of a DigestLen digest rendered as
	// upper-case hex.
	HexDigestLen = 40
	// FingerprintLen is the length of a space-grouped hex fingerprint
	// (40 hex chars + 9 spaces).
	FingerprintLen = 49
	// Base64DigestLen is the length of a DigestLen digest rendered in the
	// short base64 form (no padding, no newline).
	Base64DigestLen = 27
	// CipherKeyLen is the key length, in bytes, of the facade's AES-128
	// stream cipher.
	CipherKeyLen = 16
	// CipherIVLen is the counter-block length, in bytes, of the facade's
	// AES-128-CTR stream cipher.
	CipherIVLen = 16
	// DHBytes is the byte length of the fixed 1024-bit MODP group's
	// modulus, and therefore of every left-zero-padded DH public value.
	DHBytes = 128
	// PKBytes is the facade's usual RSA modulus size, in bytes.
	// pk.Generate always takes an explicit bit length and does not read
	// this constant.
	PKBytes = 128
)

// Padding identifies an RSA padding scheme accepted by package pk and
// package hybrid.
type Padding int

const (
	// PaddingNone applies no padding; the input must exactly fill the
	// modulus.
	PaddingNone Padding = iota
	// PaddingPKCS1 applies PKCS#1 v1.5 padding (11 bytes of overhead).
	PaddingPKCS1
	// PaddingOAEP applies PKCS#1 OAEP padding with SHA-1 (42 bytes of
	// overhead).
	PaddingOAEP
)

// Overhead returns the number of plaintext bytes reserved by p: 0 for
// PaddingNone, 11 for PaddingPKCS1, 42 for PaddingOAEP.
func (p Padding) Overhead() int {
	switch p {
	case PaddingNone:
		return 0
	case PaddingPKCS1:
		return 11
	case PaddingOAEP:
		return 42
	default:
		return -1
	}
}

// String renders p for logging and error messages.
func (p Padding) String() string {
	switch p {
	case PaddingNone:
		return "none"
	case PaddingPKCS1:
		return "pkcs1"
	case PaddingOAEP:
		return "oaep"
	default:
		return "unknown"
	}
}
