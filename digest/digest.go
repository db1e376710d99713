// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

// Package digest wraps SHA-1 and HMAC-SHA1.
//
// SHA-1 is fixed by the facade's contract, not negotiable. Package pk's
// Digest/Fingerprint build on this package; package kdf and package pk's
// OAEP and signature-digest paths call crypto/sha1 directly.
package digest

import (
	"crypto/hmac"
	"crypto/sha1" //nolint:gosec // SHA-1 is fixed by this facade's protocol contract, not a collision-resistance choice.
	"encoding"
	"hash"

	"github.com/ParkerWen/tor"
	"github.com/ParkerWen/tor/internal/logbridge"
)

// Sum computes the one-shot SHA-1 digest of msg, always 20 bytes
// (tor.DigestLen).
func Sum(msg []byte) [tor.DigestLen]byte {
	return sha1.Sum(msg) //nolint:gosec
}

// Digest is an incremental SHA-1 context. The zero value is not ready for
// use; construct one with New. Use Dup or Assign to duplicate a Digest: a
// plain assignment of the dereferenced value copies the hash.Hash
// interface, so both copies share one running SHA-1 state.
type Digest struct {
	h hash.Hash
}

// New returns a fresh, empty incremental SHA-1 context.
func New() *Digest {
	return &Digest{h: sha1.New()} //nolint:gosec
}

// Add feeds more message bytes into the running digest. It never fails
// (hash.Hash.Write never returns an error for SHA-1).
func (d *Digest) Add(p []byte) {
	_, _ = d.h.Write(p)
}

// Sum returns the first prefixLen bytes of the digest over everything fed
// to Add so far, without disturbing the running state: it finalizes a
// duplicate of the context, so getting a digest is non-destructive.
// prefixLen must be in [1, 20].
func (d *Digest) Sum(prefixLen int) ([]byte, error) {
	if prefixLen < 1 || prefixLen > tor.DigestLen {
		logbridge.Begin("digest sum").Error("checking requested prefix length", ErrPrefixTooLong, "prefix_len", prefixLen)
		return nil, ErrPrefixTooLong
	}
	full := d.snapshot().Sum(nil)
	return full[:prefixLen], nil
}

// snapshot returns a hash.Hash holding an independent copy of d's running
// state, so that finalizing it (via Sum) does not consume d's state.
//
// crypto/sha1's hash.Hash implementation supports encoding.BinaryMarshaler
// and encoding.BinaryUnmarshaler for exactly this kind of state checkpoint;
// marshal-then-unmarshal into a fresh context is the supported way to clone
// a running SHA-1 state without re-feeding every byte written so far.
func (d *Digest) snapshot() hash.Hash {
	state, err := d.h.(encoding.BinaryMarshaler).MarshalBinary()
	if err != nil {
		panic(err) // crypto/sha1's digest always marshals successfully.
	}
	clone := sha1.New() //nolint:gosec
	if err := clone.(encoding.BinaryUnmarshaler).UnmarshalBinary(state); err != nil {
		panic(err)
	}
	return clone
}

// Dup returns an independent copy of d: further Add calls on either copy
// do not affect the other.
func (d *Digest) Dup() *Digest {
	return &Digest{h: d.snapshot()}
}

// Assign replaces dst's running state with an independent copy of src's.
func Assign(dst, src *Digest) {
	dst.h = src.snapshot()
}

// HMACSum computes HMAC-SHA1 over msg under key, fully per RFC 2104.
func HMACSum(key, msg []byte) []byte {
	mac := hmac.New(func() hash.Hash { return sha1.New() }, key) //nolint:gosec
	mac.Write(msg)
	return mac.Sum(nil)
}
