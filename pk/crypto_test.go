// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package pk

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ParkerWen/tor"
)

func TestPublicEncryptPrivateDecryptPKCS1(t *testing.T) {
	is := assert.New(t)
	key := generateTestKey(t)
	defer Release(key)

	msg := []byte("a short message under PKCS1 padding")
	ct, err := key.PublicEncrypt(msg, tor.PaddingPKCS1)
	is.NoError(err)
	is.Len(ct, 128)

	pt, err := key.PrivateDecrypt(ct, tor.PaddingPKCS1)
	is.NoError(err)
	is.Equal(msg, pt)
}

func TestPublicEncryptPrivateDecryptOAEP(t *testing.T) {
	is := assert.New(t)
	key := generateTestKey(t)
	defer Release(key)

	msg := []byte("a short message under OAEP padding")
	ct, err := key.PublicEncrypt(msg, tor.PaddingOAEP)
	is.NoError(err)

	pt, err := key.PrivateDecrypt(ct, tor.PaddingOAEP)
	is.NoError(err)
	is.Equal(msg, pt)
}

func TestPublicEncryptPrivateDecryptNoPadding(t *testing.T) {
	is := assert.New(t)
	key := generateTestKey(t)
	defer Release(key)

	size, err := key.KeySize()
	is.NoError(err)

	msg := make([]byte, size)
	msg[0] = 0x01 // keep it < modulus
	ct, err := key.PublicEncrypt(msg, tor.PaddingNone)
	is.NoError(err)
	is.Len(ct, size)

	pt, err := key.PrivateDecrypt(ct, tor.PaddingNone)
	is.NoError(err)
	is.Equal(msg, pt)
}

func TestPublicEncryptNoPaddingRejectsWrongLength(t *testing.T) {
	is := assert.New(t)
	key := generateTestKey(t)
	defer Release(key)

	_, err := key.PublicEncrypt([]byte("too short"), tor.PaddingNone)
	is.ErrorIs(err, ErrWrongLength)
}

func TestSignAndChecksig(t *testing.T) {
	is := assert.New(t)
	key := generateTestKey(t)
	defer Release(key)

	msg := make([]byte, 20)
	copy(msg, "a 20-byte message!!!")

	sig, err := key.PrivateSign(msg)
	is.NoError(err)

	recovered, err := key.PublicChecksig(sig)
	is.NoError(err)
	is.Equal(msg, recovered)
}

func TestChecksigRejectsTamperedSignature(t *testing.T) {
	is := assert.New(t)
	key := generateTestKey(t)
	defer Release(key)

	sig, err := key.PrivateSign([]byte("message to sign"))
	is.NoError(err)
	sig[len(sig)-1] ^= 0xff

	_, err = key.PublicChecksig(sig)
	is.Error(err)
}

func TestSignDigestAndChecksigDigest(t *testing.T) {
	is := assert.New(t)
	key := generateTestKey(t)
	defer Release(key)

	msg := []byte("arbitrary length message bound via its SHA-1 digest")
	sig, err := key.PrivateSignDigest(msg)
	is.NoError(err)

	is.NoError(key.PublicChecksigDigest(msg, sig))

	tampered := append([]byte(nil), msg...)
	tampered[0] ^= 0x01
	is.ErrorIs(key.PublicChecksigDigest(tampered, sig), ErrBadSignature)
}

func TestPrivateDecryptRequiresPrivateKey(t *testing.T) {
	is := assert.New(t)
	key := generateTestKey(t)
	defer Release(key)

	pemStr, err := key.WritePublicToString()
	is.NoError(err)
	pubOnly := New()
	defer Release(pubOnly)
	is.NoError(pubOnly.ReadPublicFromString(pemStr))

	ct, err := pubOnly.PublicEncrypt([]byte("x"), tor.PaddingOAEP)
	is.NoError(err)
	_, err = pubOnly.PrivateDecrypt(ct, tor.PaddingOAEP)
	is.ErrorIs(err, ErrNoPrivateKey)
}
