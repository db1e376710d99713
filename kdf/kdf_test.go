// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package kdf

import (
	"crypto/sha1" //nolint:gosec // verifying against the same fixed primitive the facade uses.
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandKeyMaterialIsPrefixConsistent(t *testing.T) {
	is := assert.New(t)
	k := []byte("shared secret material")

	short, err := ExpandKeyMaterial(k, 20)
	is.NoError(err)
	long, err := ExpandKeyMaterial(k, 40)
	is.NoError(err)

	is.Equal(short, long[:20], "the first 20 bytes of a longer expansion must match a shorter one")
}

func TestExpandKeyMaterialRejectsTooLong(t *testing.T) {
	is := assert.New(t)
	_, err := ExpandKeyMaterial([]byte("k"), 20*256+1)
	is.ErrorIs(err, ErrTooLong)
}

func TestExpandKeyMaterialMatchesDefinition(t *testing.T) {
	is := assert.New(t)
	k := []byte("key")

	got, err := ExpandKeyMaterial(k, 44) // spans two SHA-1 blocks (20+20) plus 4 extra bytes
	is.NoError(err)

	h0 := sha1.Sum(append(append([]byte{}, k...), 0x00)) //nolint:gosec
	h1 := sha1.Sum(append(append([]byte{}, k...), 0x01)) //nolint:gosec
	want := append(append([]byte{}, h0[:]...), h1[:]...)
	is.Equal(want[:44], got)
}

func TestS2KZeroSaltEmptySecretMatchesSHA1Of1024Zeros(t *testing.T) {
	is := assert.New(t)

	salt := make([]byte, 8)
	got, err := S2K(salt, 0x00, nil, 20)
	is.NoError(err)

	want := sha1.Sum(make([]byte, 1024)) //nolint:gosec
	is.Equal(want[:], got)
}

func TestS2KCountIsAtLeastInputLength(t *testing.T) {
	is := assert.New(t)
	salt := []byte("01234567")
	secret := make([]byte, 2000) // longer than any count byte 0x00 would imply (1024)

	got, err := S2K(salt, 0x00, secret, 20)
	is.NoError(err)
	is.Len(got, 20)

	// With count forced up to len(input), S2K degenerates to a one-shot
	// SHA-1 of salt||secret.
	want := sha1.Sum(append(append([]byte{}, salt...), secret...)) //nolint:gosec
	is.Equal(want[:], got)
}

func TestS2KDiffersBySalt(t *testing.T) {
	is := assert.New(t)
	a, err := S2K(make([]byte, 8), 0x10, []byte("passphrase"), 20)
	is.NoError(err)
	saltB := make([]byte, 8)
	saltB[0] = 1
	b, err := S2K(saltB, 0x10, []byte("passphrase"), 20)
	is.NoError(err)
	is.NotEqual(a, b)
}
