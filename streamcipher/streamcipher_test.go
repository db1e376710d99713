// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package streamcipher

import (
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

func TestEncryptDecryptRoundTrip(t *testing.T) {
	is := assert.New(t)
	seedOnce(t)

	key := make([]byte, tor.CipherKeyLen)
	iv := make([]byte, tor.CipherIVLen)
	is.NoError(csprng.RandomBytes(key))
	is.NoError(csprng.RandomBytes(iv))

	plain := []byte("attack at dawn, bring the usual supplies")

	enc := New()
	is.NoError(enc.SetKey(key))
	is.NoError(enc.SetIV(iv))
	cipher := make([]byte, len(plain))
	is.NoError(enc.Encrypt(cipher, plain))

	dec := New()
	is.NoError(dec.SetKey(key))
	is.NoError(dec.SetIV(iv))
	recovered := make([]byte, len(cipher))
	is.NoError(dec.Decrypt(recovered, cipher))

	is.Equal(plain, recovered)
}

func TestReinstallingIVRepeatsKeystream(t *testing.T) {
	is := assert.New(t)
	seedOnce(t)

	c := New()
	is.NoError(c.GenerateKey())
	is.NoError(c.SetIV(make([]byte, tor.CipherIVLen)))

	plain := []byte("idempotent-ish under fresh state each time")
	first := make([]byte, len(plain))
	is.NoError(c.Encrypt(first, plain))

	is.NoError(c.SetIV(make([]byte, tor.CipherIVLen)))
	second := make([]byte, len(plain))
	is.NoError(c.Encrypt(second, plain))

	is.Equal(first, second, "re-installing the same IV resets the counter, producing identical keystream")
}

func TestSetKeyRejectsWrongLength(t *testing.T) {
	is := assert.New(t)
	c := New()
	err := c.SetKey(make([]byte, 8))
	is.ErrorIs(err, tor.ErrKeyLength)
}

func TestSetIVRejectsWrongLength(t *testing.T) {
	is := assert.New(t)
	c := New()
	is.NoError(c.SetKey(make([]byte, tor.CipherKeyLen)))
	err := c.SetIV(make([]byte, 8))
	is.ErrorIs(err, tor.ErrIVLength)
}

func TestEncryptWithoutIVFails(t *testing.T) {
	is := assert.New(t)
	c := New()
	is.NoError(c.SetKey(make([]byte, tor.CipherKeyLen)))
	err := c.Encrypt(make([]byte, 4), make([]byte, 4))
	is.ErrorIs(err, ErrNoKey)
}

func TestSealOpenEnvelopeRoundTrip(t *testing.T) {
	is := assert.New(t)
	seedOnce(t)

	key := make([]byte, tor.CipherKeyLen)
	is.NoError(csprng.RandomBytes(key))
	plain := []byte("envelope contents, any length at all")

	sealer := New()
	is.NoError(sealer.SetKey(key))
	sealed, err := sealer.SealEnvelope(plain)
	is.NoError(err)
	is.Len(sealed, len(plain)+tor.CipherIVLen)

	opener := New()
	is.NoError(opener.SetKey(key))
	opened, err := opener.OpenEnvelope(sealed)
	is.NoError(err)
	is.Equal(plain, opened)
}

func TestOpenEnvelopeRejectsShortInput(t *testing.T) {
	is := assert.New(t)
	c := New()
	is.NoError(c.SetKey(make([]byte, tor.CipherKeyLen)))
	_, err := c.OpenEnvelope(make([]byte, tor.CipherIVLen))
	is.ErrorIs(err, ErrEnvelopeTooShort)
}

func TestInPlaceMatchesCopyingForm(t *testing.T) {
	is := assert.New(t)
	seedOnce(t)

	key := make([]byte, tor.CipherKeyLen)
	iv := make([]byte, tor.CipherIVLen)
	is.NoError(csprng.RandomBytes(key))
	is.NoError(csprng.RandomBytes(iv))
	plain := []byte("in place vs copying should match byte for byte")

	a := New()
	is.NoError(a.SetKey(key))
	is.NoError(a.SetIV(iv))
	copying := make([]byte, len(plain))
	is.NoError(a.Encrypt(copying, plain))

	b := New()
	is.NoError(b.SetKey(key))
	is.NoError(b.SetIV(iv))
	inPlace := append([]byte(nil), plain...)
	is.NoError(b.EncryptInPlace(inPlace))

	is.Equal(copying, inPlace)
}
