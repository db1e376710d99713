// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package dh

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ParkerWen/tor"
	"github.com/ParkerWen/tor/csprng"
)

func seedOnce(t *testing.T) {
	t.Helper()
	if err := csprng.Seed(true); err != nil {
		t.Fatalf("seeding csprng: %v", err)
	}
}

func TestGeneratePublicThenGetPublicIsPadded(t *testing.T) {
	is := assert.New(t)
	seedOnce(t)

	d := New()
	is.NoError(d.GeneratePublic())

	pub, err := d.GetPublic()
	is.NoError(err)
	is.Len(pub, tor.DHBytes)
	is.NoError(Check(pub))
}

func TestGetBytesIsModulusSize(t *testing.T) {
	is := assert.New(t)
	is.Len(GetBytes(), tor.DHBytes)
}

func TestAgreementBetweenTwoStates(t *testing.T) {
	is := assert.New(t)
	seedOnce(t)

	alice, bob := New(), New()
	is.NoError(alice.GeneratePublic())
	is.NoError(bob.GeneratePublic())

	alicePub, err := alice.GetPublic()
	is.NoError(err)
	bobPub, err := bob.GetPublic()
	is.NoError(err)

	aliceSecret, err := alice.ComputeSecret(bobPub, 48)
	is.NoError(err)
	bobSecret, err := bob.ComputeSecret(alicePub, 48)
	is.NoError(err)

	is.Equal(aliceSecret, bobSecret)
}

func TestCheckRejectsOutOfRangeValues(t *testing.T) {
	is := assert.New(t)

	zero := leftPad(big.NewInt(0).Bytes(), tor.DHBytes)
	is.ErrorIs(Check(zero), ErrOutOfRange)

	one := leftPad(big.NewInt(1).Bytes(), tor.DHBytes)
	is.ErrorIs(Check(one), ErrOutOfRange)

	pMinus1 := leftPad(new(big.Int).Sub(groupPrime, big.NewInt(1)).Bytes(), tor.DHBytes)
	is.ErrorIs(Check(pMinus1), ErrOutOfRange)

	p := leftPad(groupPrime.Bytes(), tor.DHBytes)
	is.ErrorIs(Check(p), ErrOutOfRange)

	pPlus1 := leftPad(new(big.Int).Add(groupPrime, big.NewInt(1)).Bytes(), tor.DHBytes)
	is.ErrorIs(Check(pPlus1), ErrOutOfRange)
}

func TestCheckRejectsWrongLength(t *testing.T) {
	is := assert.New(t)
	is.ErrorIs(Check(make([]byte, tor.DHBytes-1)), ErrBadLength)
	is.ErrorIs(Check(make([]byte, tor.DHBytes+1)), ErrBadLength)
}

func TestCheckAcceptsBoundaryValues(t *testing.T) {
	is := assert.New(t)
	is.NoError(Check(leftPad(big.NewInt(2).Bytes(), tor.DHBytes)))
	is.NoError(Check(leftPad(pMinus2().Bytes(), tor.DHBytes)))
}

func TestGetPublicLeftPadsShortValues(t *testing.T) {
	is := assert.New(t)

	// Force a small pub value directly to exercise the left-padding path
	// deterministically rather than relying on a lucky random draw.
	d := &DH{priv: big.NewInt(7), pub: big.NewInt(5)}
	pub, err := d.GetPublic()
	is.NoError(err)
	is.Len(pub, tor.DHBytes)
	for _, b := range pub[:tor.DHBytes-1] {
		is.Equal(byte(0), b)
	}
	is.Equal(byte(5), pub[tor.DHBytes-1])
}

func TestComputeSecretRejectsTooLongOutput(t *testing.T) {
	is := assert.New(t)
	seedOnce(t)

	d := New()
	is.NoError(d.GeneratePublic())
	peer := New()
	is.NoError(peer.GeneratePublic())
	peerPub, err := peer.GetPublic()
	is.NoError(err)

	_, err = d.ComputeSecret(peerPub, 20*255+1)
	is.ErrorIs(err, ErrSecretTooLong)
}

func TestComputeSecretBeforeGeneratePublicFails(t *testing.T) {
	is := assert.New(t)
	d := New()
	_, err := d.ComputeSecret(GetBytes(), 20)
	is.ErrorIs(err, ErrNoPrivateExponent)
}
