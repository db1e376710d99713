// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

// Package hybrid implements the facade's non-standard hybrid public-key
// envelope: an RSA block carrying a fresh 16-byte symmetric key plus a
// prefix of the message, followed by an AES-CTR tail carrying the rest.
// It is neither RSA-KEM nor OAEP-hybrid — the exact byte layout, including
// the 127-bit symmetric-key quirk under tor.PaddingNone, is this facade's
// own protocol, built on package pk and package streamcipher.
package hybrid

import (
	"github.com/ParkerWen/tor"
	"github.com/ParkerWen/tor/csprng"
	"github.com/ParkerWen/tor/internal/logbridge"
	"github.com/ParkerWen/tor/pk"
	"github.com/ParkerWen/tor/streamcipher"
)

// symKeyLen is the length of the hybrid envelope's generated AES key.
const symKeyLen = 16

var zeroIV = make([]byte, tor.CipherIVLen)

// Encrypt seals from under key using padding. If force is false and from
// fits within the RSA block alone (len(from) <= key-size - padding
// overhead), the output is a plain RSA ciphertext of exactly key-size
// bytes; otherwise it is the full envelope: an RSA block of key-size bytes
// carrying the symmetric key plus as much of from's prefix as fits,
// followed by an AES-CTR tail carrying the remainder (empty when from is
// shorter than the RSA block can absorb, as happens when force is true for
// a short message).
func Encrypt(key *pk.PublicKey, from []byte, padding tor.Padding, force bool) ([]byte, error) {
	op := logbridge.Begin("hybrid encrypt")

	k, err := key.KeySize()
	if err != nil {
		op.Error("reading key size", err)
		return nil, err
	}
	threshold := k - padding.Overhead()

	if padding == tor.PaddingNone && len(from) < k {
		op.Error("checking no-padding length floor", ErrTooShortForNoPadding, "len", len(from), "key_size", k)
		return nil, ErrTooShortForNoPadding
	}

	if !force && len(from) <= threshold {
		ct, err := key.PublicEncrypt(from, padding)
		if err != nil {
			op.Error("RSA-encrypting short-branch plaintext", err)
		}
		return ct, err
	}

	symKey := make([]byte, symKeyLen)
	if err := csprng.RandomBytes(symKey); err != nil {
		op.Error("generating envelope symmetric key", err)
		return nil, err
	}
	if padding == tor.PaddingNone {
		symKey[0] &= 0x7F
	}

	prefixLen := threshold - symKeyLen
	if prefixLen < 0 {
		prefixLen = 0
	}
	if prefixLen > len(from) {
		prefixLen = len(from)
	}

	rsaPlain := make([]byte, symKeyLen+prefixLen)
	copy(rsaPlain[:symKeyLen], symKey)
	copy(rsaPlain[symKeyLen:], from[:prefixLen])

	rsaBlock, err := key.PublicEncrypt(rsaPlain, padding)
	zero(rsaPlain)
	if err != nil {
		zero(symKey)
		op.Error("RSA-encrypting envelope block", err)
		return nil, err
	}

	tailPlain := from[prefixLen:]
	c := streamcipher.New()
	if err := c.SetKey(symKey); err != nil {
		zero(symKey)
		op.Error("installing envelope symmetric key", err)
		return nil, err
	}
	zero(symKey)
	if err := c.SetIV(zeroIV); err != nil {
		op.Error("installing envelope IV", err)
		return nil, err
	}
	tailCipher := make([]byte, len(tailPlain))
	if err := c.Encrypt(tailCipher, tailPlain); err != nil {
		op.Error("AES-CTR-encrypting envelope tail", err)
		return nil, err
	}

	out := make([]byte, 0, len(rsaBlock)+len(tailCipher))
	out = append(out, rsaBlock...)
	out = append(out, tailCipher...)
	return out, nil
}

// Decrypt is Encrypt's exact inverse: if ciphertext is no longer than one
// RSA block, it is decrypted directly as a plain RSA ciphertext; otherwise
// the first key-size bytes are RSA-decrypted to recover the symmetric key
// and message prefix, and the remainder is AES-CTR decrypted as the tail.
func Decrypt(key *pk.PublicKey, ciphertext []byte, padding tor.Padding) ([]byte, error) {
	op := logbridge.Begin("hybrid decrypt")

	k, err := key.KeySize()
	if err != nil {
		op.Error("reading key size", err)
		return nil, err
	}

	if len(ciphertext) <= k {
		pt, err := key.PrivateDecrypt(ciphertext, padding)
		if err != nil {
			op.Error("RSA-decrypting short-branch ciphertext", err)
		}
		return pt, err
	}

	rsaPlain, err := key.PrivateDecrypt(ciphertext[:k], padding)
	if err != nil {
		op.Error("RSA-decrypting envelope block", err)
		return nil, err
	}
	if len(rsaPlain) < symKeyLen {
		zero(rsaPlain)
		op.Error("checking envelope block length", ErrShortRSAPlaintext, "len", len(rsaPlain))
		return nil, ErrShortRSAPlaintext
	}

	symKey := append([]byte(nil), rsaPlain[:symKeyLen]...)
	prefix := append([]byte(nil), rsaPlain[symKeyLen:]...)
	zero(rsaPlain)

	c := streamcipher.New()
	if err := c.SetKey(symKey); err != nil {
		zero(symKey)
		op.Error("installing envelope symmetric key", err)
		return nil, err
	}
	zero(symKey)
	if err := c.SetIV(zeroIV); err != nil {
		op.Error("installing envelope IV", err)
		return nil, err
	}

	tailCipher := ciphertext[k:]
	tailPlain := make([]byte, len(tailCipher))
	if err := c.Decrypt(tailPlain, tailCipher); err != nil {
		op.Error("AES-CTR-decrypting envelope tail", err)
		return nil, err
	}

	out := make([]byte, 0, len(prefix)+len(tailPlain))
	out = append(out, prefix...)
	out = append(out, tailPlain...)
	return out, nil
}

func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
