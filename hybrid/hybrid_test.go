// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package hybrid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ParkerWen/tor"
	"github.com/ParkerWen/tor/csprng"
	"github.com/ParkerWen/tor/pk"
)

func generateTestKey(t *testing.T) *pk.PublicKey {
	t.Helper()
	require.NoError(t, csprng.Seed(true))
	key, err := pk.Generate(1024, 65537)
	require.NoError(t, err)
	return key
}

func TestShortBranchUsesPlainRSA(t *testing.T) {
	is := assert.New(t)
	key := generateTestKey(t)
	defer pk.Release(key)

	msg := make([]byte, 100)
	copy(msg, "short message, well under the threshold")

	ct, err := Encrypt(key, msg, tor.PaddingPKCS1, false)
	is.NoError(err)
	is.Len(ct, 128, "short branch output is exactly one RSA block")

	pt, err := Decrypt(key, ct, tor.PaddingPKCS1)
	is.NoError(err)
	is.Equal(msg, pt)
}

func TestLongBranchUsesEnvelope(t *testing.T) {
	is := assert.New(t)
	key := generateTestKey(t)
	defer pk.Release(key)

	msg := make([]byte, 500)
	for i := range msg {
		msg[i] = byte(i)
	}

	ct, err := Encrypt(key, msg, tor.PaddingPKCS1, false)
	is.NoError(err)
	is.Len(ct, 527, "128 + (500 - (128-11-16))")

	pt, err := Decrypt(key, ct, tor.PaddingPKCS1)
	is.NoError(err)
	is.Equal(msg, pt)
}

func TestForceEnvelopeEvenForShortMessage(t *testing.T) {
	is := assert.New(t)
	key := generateTestKey(t)
	defer pk.Release(key)

	msg := []byte("tiny message")
	ct, err := Encrypt(key, msg, tor.PaddingOAEP, true)
	is.NoError(err)
	is.Greater(len(ct), 128, "forced envelope still carries an AES-CTR tail even for a message that would otherwise fit in one RSA block")

	pt, err := Decrypt(key, ct, tor.PaddingOAEP)
	is.NoError(err)
	is.Equal(msg, pt)
}

func TestRoundTripAcrossPaddingModesAndLengths(t *testing.T) {
	key := generateTestKey(t)
	defer pk.Release(key)

	for _, padding := range []tor.Padding{tor.PaddingPKCS1, tor.PaddingOAEP} {
		for _, n := range []int{0, 1, 50, 117, 200, 1000} {
			is := assert.New(t)
			msg := make([]byte, n)
			for i := range msg {
				msg[i] = byte(i * 7)
			}
			ct, err := Encrypt(key, msg, padding, false)
			is.NoError(err)
			pt, err := Decrypt(key, ct, padding)
			is.NoError(err)
			is.Equal(msg, pt)
		}
	}
}

func TestNoPaddingRejectsShortMessage(t *testing.T) {
	is := assert.New(t)
	key := generateTestKey(t)
	defer pk.Release(key)

	_, err := Encrypt(key, []byte("too short"), tor.PaddingNone, false)
	is.ErrorIs(err, ErrTooShortForNoPadding)
}
