// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

// Package streamcipher is the facade's AES-128-CTR stream state.
//
// A Cipher owns exactly one 16-byte key and one AES-CTR stream position;
// every byte produced or consumed advances the counter, and reusing a
// (key, IV) pair for two distinct messages is a contract violation the
// type cannot itself detect. Encrypt and Decrypt are the same operation —
// XOR of keystream onto data — mirroring the ctrdrbg.fillBlocks
// counter-advance discipline it is adapted from, but delegating the
// actual keystream generation to crypto/cipher.NewCTR rather than
// hand-rolling it, since here (unlike csprng) there is no whitening or
// pooling concern to layer on top of the stdlib primitive.
package streamcipher

import (
	"crypto/aes"
	"crypto/cipher"

	"github.com/ParkerWen/tor"
	"github.com/ParkerWen/tor/csprng"
	"github.com/ParkerWen/tor/internal/logbridge"
)

// Cipher is an AES-128-CTR stream. The zero value has no key installed;
// use New, then SetKey or GenerateKey, then SetIV, before Encrypt/Decrypt.
type Cipher struct {
	key    [tor.CipherKeyLen]byte
	block  cipher.Block
	stream cipher.Stream
}

// New returns a Cipher with no key installed: its key buffer is zero
// until SetKey or GenerateKey is called.
func New() *Cipher {
	return &Cipher{}
}

// SetKey installs key as this Cipher's 16-byte AES key. len(key) must be
// exactly tor.CipherKeyLen.
func (c *Cipher) SetKey(key []byte) error {
	op := logbridge.Begin("streamcipher set-key")
	if len(key) != tor.CipherKeyLen {
		op.Error("checking key length", tor.ErrKeyLength, "len", len(key))
		return tor.ErrKeyLength
	}
	copy(c.key[:], key)
	block, err := aes.NewCipher(c.key[:])
	if err != nil {
		op.Error("constructing AES block cipher", err)
		return err
	}
	c.block = block
	c.stream = nil
	return nil
}

// GenerateKey fills this Cipher's key from the facade's seeded CSPRNG.
func (c *Cipher) GenerateKey() error {
	op := logbridge.Begin("streamcipher generate-key")
	var key [tor.CipherKeyLen]byte
	if err := csprng.RandomBytes(key[:]); err != nil {
		op.Error("drawing random key", err)
		return err
	}
	if err := c.SetKey(key[:]); err != nil {
		op.Error("installing generated key", err)
		return err
	}
	return nil
}

// Key returns a copy of the installed 16-byte key.
func (c *Cipher) Key() [tor.CipherKeyLen]byte {
	return c.key
}

// SetIV installs iv as the 16-byte CTR counter block and resets the stream
// position. EncryptInit and DecryptInit in the reference design are
// identical for CTR mode; SetIV plays both roles here.
func (c *Cipher) SetIV(iv []byte) error {
	op := logbridge.Begin("streamcipher set-iv")
	if c.block == nil {
		op.Error("checking key installed", ErrNoKey)
		return ErrNoKey
	}
	if len(iv) != tor.CipherIVLen {
		op.Error("checking IV length", tor.ErrIVLength, "len", len(iv))
		return tor.ErrIVLength
	}
	c.stream = cipher.NewCTR(c.block, iv)
	return nil
}

// Encrypt writes XOR(keystream, in) to out, advancing the stream position
// by len(in) bytes; the next call continues from that position, even
// mid-block. Encrypt and Decrypt are the same operation.
func (c *Cipher) Encrypt(out, in []byte) error {
	if c.stream == nil {
		logbridge.Begin("streamcipher encrypt").Error("checking IV installed", ErrNoKey)
		return ErrNoKey
	}
	c.stream.XORKeyStream(out, in)
	return nil
}

// Decrypt is Encrypt under another name: AES-CTR XOR is its own inverse.
func (c *Cipher) Decrypt(out, in []byte) error {
	return c.Encrypt(out, in)
}

// EncryptInPlace XORs the keystream directly onto buf.
func (c *Cipher) EncryptInPlace(buf []byte) error {
	return c.Encrypt(buf, buf)
}

// DecryptInPlace is EncryptInPlace under another name.
func (c *Cipher) DecryptInPlace(buf []byte) error {
	return c.EncryptInPlace(buf)
}

// SealEnvelope generates a fresh random 16-byte IV, installs it, and
// encrypts in into an IV-prefixed envelope: out = iv || encrypt(in). The
// returned slice has length len(in)+tor.CipherIVLen.
func (c *Cipher) SealEnvelope(in []byte) ([]byte, error) {
	op := logbridge.Begin("streamcipher seal-envelope")
	if c.block == nil {
		op.Error("checking key installed", ErrNoKey)
		return nil, ErrNoKey
	}
	out := make([]byte, tor.CipherIVLen+len(in))
	iv := out[:tor.CipherIVLen]
	if err := csprng.RandomBytes(iv); err != nil {
		op.Error("drawing random IV", err)
		return nil, err
	}
	if err := c.SetIV(iv); err != nil {
		op.Error("installing IV", err)
		return nil, err
	}
	if err := c.Encrypt(out[tor.CipherIVLen:], in); err != nil {
		op.Error("encrypting envelope body", err)
		return nil, err
	}
	return out, nil
}

// OpenEnvelope reads the first 16 bytes of in as the IV, installs it, and
// decrypts the remainder. It fails with ErrEnvelopeTooShort if in has
// fewer than 17 bytes.
func (c *Cipher) OpenEnvelope(in []byte) ([]byte, error) {
	op := logbridge.Begin("streamcipher open-envelope")
	if c.block == nil {
		op.Error("checking key installed", ErrNoKey)
		return nil, ErrNoKey
	}
	if len(in) < tor.CipherIVLen+1 {
		op.Error("checking envelope length", ErrEnvelopeTooShort, "len", len(in))
		return nil, ErrEnvelopeTooShort
	}
	if err := c.SetIV(in[:tor.CipherIVLen]); err != nil {
		op.Error("installing IV", err)
		return nil, err
	}
	out := make([]byte, len(in)-tor.CipherIVLen)
	if err := c.Decrypt(out, in[tor.CipherIVLen:]); err != nil {
		op.Error("decrypting envelope body", err)
		return nil, err
	}
	return out, nil
}
