// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package pk

import (
	"crypto/rsa"
	"crypto/sha1" //nolint:gosec // OAEP's hash is fixed to SHA-1 by this facade's protocol contract.
	"math/big"

	"github.com/ParkerWen/tor"
	"github.com/ParkerWen/tor/csprng"
	"github.com/ParkerWen/tor/internal/logbridge"
)

// PublicEncrypt encrypts from under k's public component using padding.
// PaddingNone requires len(from) to exactly equal the modulus size.
func (k *PublicKey) PublicEncrypt(from []byte, padding tor.Padding) ([]byte, error) {
	op := logbridge.Begin("pk public-encrypt")
	if !k.hasPublic() {
		op.Error("checking public component present", ErrNoPublicKey)
		return nil, ErrNoPublicKey
	}
	switch padding {
	case tor.PaddingNone:
		size, err := k.KeySize()
		if err != nil {
			op.Error("reading key size", err)
			return nil, err
		}
		if len(from) != size {
			op.Error("checking no-padding length", ErrWrongLength, "len", len(from), "key_size", size)
			return nil, ErrWrongLength
		}
		pt, err := rawPublicTransform(k.pub, from)
		if err != nil {
			op.Error("computing raw public transform", err)
		}
		return pt, err
	case tor.PaddingPKCS1:
		ct, err := rsa.EncryptPKCS1v15(csprng.Reader, k.pub, from)
		if err != nil {
			op.Error("PKCS1-encrypting", err)
		}
		return ct, err
	case tor.PaddingOAEP:
		ct, err := rsa.EncryptOAEP(sha1.New(), csprng.Reader, k.pub, from, nil) //nolint:gosec
		if err != nil {
			op.Error("OAEP-encrypting", err)
		}
		return ct, err
	default:
		op.Error("checking padding mode", ErrWrongLength, "padding", padding)
		return nil, ErrWrongLength
	}
}

// PrivateDecrypt decrypts ciphertext under k's private component using
// padding. PaddingNone returns a modulus-sized, left-zero-padded block;
// the other modes return the recovered, depadded plaintext.
func (k *PublicKey) PrivateDecrypt(ciphertext []byte, padding tor.Padding) ([]byte, error) {
	op := logbridge.Begin("pk private-decrypt")
	if !k.hasPrivate() {
		op.Error("checking private component present", ErrNoPrivateKey)
		return nil, ErrNoPrivateKey
	}
	switch padding {
	case tor.PaddingNone:
		size, err := k.KeySize()
		if err != nil {
			op.Error("reading key size", err)
			return nil, err
		}
		if len(ciphertext) != size {
			op.Error("checking no-padding length", ErrWrongLength, "len", len(ciphertext), "key_size", size)
			return nil, ErrWrongLength
		}
		pt, err := rawPrivateTransform(k.priv, ciphertext)
		if err != nil {
			op.Error("computing raw private transform", err)
		}
		return pt, err
	case tor.PaddingPKCS1:
		pt, err := rsa.DecryptPKCS1v15(csprng.Reader, k.priv, ciphertext)
		if err != nil {
			op.Error("PKCS1-decrypting", err)
		}
		return pt, err
	case tor.PaddingOAEP:
		pt, err := rsa.DecryptOAEP(sha1.New(), csprng.Reader, k.priv, ciphertext, nil) //nolint:gosec
		if err != nil {
			op.Error("OAEP-decrypting", err)
		}
		return pt, err
	default:
		op.Error("checking padding mode", ErrWrongLength, "padding", padding)
		return nil, ErrWrongLength
	}
}

// PrivateSign produces a textbook RSA signature over from: PKCS#1 v1.5
// padding applied to the raw bytes (no digest algorithm identifier
// prepended), then the private-key transform.
//
// crypto/rsa.SignPKCS1v15 supports exactly this "raw" mode when its hash
// argument is 0: per its documentation, hashed is then treated as the
// literal message to pad and sign, rather than a value requiring a
// DigestInfo prefix.
func (k *PublicKey) PrivateSign(from []byte) ([]byte, error) {
	op := logbridge.Begin("pk private-sign")
	if !k.hasPrivate() {
		op.Error("checking private component present", ErrNoPrivateKey)
		return nil, ErrNoPrivateKey
	}
	sig, err := rsa.SignPKCS1v15(csprng.Reader, k.priv, 0, from)
	if err != nil {
		op.Error("signing raw message", err)
	}
	return sig, err
}

// PrivateSignDigest signs the SHA-1 digest of data, the facade's usual
// sign-what-you-hashed path.
func (k *PublicKey) PrivateSignDigest(data []byte) ([]byte, error) {
	d := shaSum(data)
	return k.PrivateSign(d[:])
}

// PublicChecksig recovers the message embedded in sig: the public
// transform followed by stripping PKCS#1 v1.5 type-1 padding. It returns
// ErrBadSignature if sig does not decode to a validly padded block.
//
// There is no standard-library equivalent: crypto/rsa.VerifyPKCS1v15 only
// reports a match against an already-known expected value, it does not
// hand back the recovered message, so the public transform and the padding
// strip are implemented directly here — checksig is a recovery operation,
// not a yes/no verifier.
func (k *PublicKey) PublicChecksig(sig []byte) ([]byte, error) {
	op := logbridge.Begin("pk public-checksig")
	if !k.hasPublic() {
		op.Error("checking public component present", ErrNoPublicKey)
		return nil, ErrNoPublicKey
	}
	em, err := rawPublicTransform(k.pub, sig)
	if err != nil {
		op.Error("computing raw public transform", err)
		return nil, ErrBadSignature
	}
	msg, err := unpadPKCS1Type1(em)
	if err != nil {
		op.Error("stripping PKCS1 type-1 padding", err)
		return nil, ErrBadSignature
	}
	return msg, nil
}

// PublicChecksigDigest verifies that sig is k's signature over the SHA-1
// digest of data.
func (k *PublicKey) PublicChecksigDigest(data, sig []byte) error {
	op := logbridge.Begin("pk public-checksig-digest")
	recovered, err := k.PublicChecksig(sig)
	if err != nil {
		op.Error("recovering signed message", err)
		return err
	}
	want := shaSum(data)
	if len(recovered) != len(want) || string(recovered) != string(want[:]) {
		op.Error("comparing recovered digest", ErrBadSignature, "len", len(recovered))
		return ErrBadSignature
	}
	return nil
}

func shaSum(data []byte) [tor.DigestLen]byte {
	return sha1.Sum(data) //nolint:gosec
}

// rawPublicTransform computes c = m^e mod n, left-zero-padded to the
// modulus size, for PaddingNone encryption and for the first half of
// signature verification.
func rawPublicTransform(pub *rsa.PublicKey, in []byte) ([]byte, error) {
	size := (pub.N.BitLen() + 7) / 8
	m := new(big.Int).SetBytes(in)
	if m.Cmp(pub.N) >= 0 {
		return nil, ErrWrongLength
	}
	c := new(big.Int).Exp(m, big.NewInt(int64(pub.E)), pub.N)
	return leftPad(c.Bytes(), size), nil
}

// rawPrivateTransform computes m = c^d mod n, left-zero-padded to the
// modulus size, for PaddingNone decryption.
func rawPrivateTransform(priv *rsa.PrivateKey, in []byte) ([]byte, error) {
	size := (priv.N.BitLen() + 7) / 8
	c := new(big.Int).SetBytes(in)
	if c.Cmp(priv.N) >= 0 {
		return nil, ErrWrongLength
	}
	m := new(big.Int).Exp(c, priv.D, priv.N)
	return leftPad(m.Bytes(), size), nil
}

func leftPad(b []byte, size int) []byte {
	if len(b) >= size {
		return b
	}
	out := make([]byte, size)
	copy(out[size-len(b):], b)
	return out
}

// unpadPKCS1Type1 strips PKCS#1 v1.5 type-1 padding (0x00 0x01 FF...FF 0x00
// M) from em, returning M.
func unpadPKCS1Type1(em []byte) ([]byte, error) {
	if len(em) < 11 || em[0] != 0x00 || em[1] != 0x01 {
		return nil, ErrBadSignature
	}
	i := 2
	for i < len(em) && em[i] == 0xFF {
		i++
	}
	if i < 10 || i >= len(em) || em[i] != 0x00 {
		return nil, ErrBadSignature
	}
	return em[i+1:], nil
}
