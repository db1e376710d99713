// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

// Package pk is the facade's RSA public-key object: a reference-counted,
// shared-ownership handle that wraps an RSA key pair (or public component
// alone), offering PEM/DER I/O, comparison, fingerprinting, and the
// facade's padding-mode-aware encrypt/decrypt/sign/verify operations.
//
// Unlike package digest's plain-value Digest, a PublicKey is always handled
// through a pointer and a manual reference count (New starts a key at one
// reference; Dup takes another; Release drops one, freeing the underlying
// key material once the count reaches zero). This mirrors a reference
// count, shared ownership, strong-references-only object model more
// directly than Go's garbage collector alone would: Release is also where
// private-key material is explicitly zeroed, which a GC'd value never
// guarantees.
package pk

import (
	"bytes"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"math/big"
	"os"
	"strings"
	"sync/atomic"

	"github.com/ParkerWen/tor"
	"github.com/ParkerWen/tor/csprng"
	"github.com/ParkerWen/tor/digest"
	"github.com/ParkerWen/tor/enc"
	"github.com/ParkerWen/tor/internal/logbridge"
)

// PublicKey is a reference-counted RSA key handle. Its zero value is not
// usable; construct one with New, Generate, or one of the PEM readers.
type PublicKey struct {
	refs int32
	pub  *rsa.PublicKey
	priv *rsa.PrivateKey // nil when only the public component is known
}

// New returns an empty key shell at reference count 1, ready to be filled
// in by Generate or one of the PEM readers.
func New() *PublicKey {
	return &PublicKey{refs: 1}
}

// Dup takes an additional reference to k and returns k, so callers can
// write `other := pk.Dup(k)` to mean "share k, don't copy it".
func Dup(k *PublicKey) *PublicKey {
	atomic.AddInt32(&k.refs, 1)
	return k
}

// Release drops one reference to k. Once the count reaches zero, any
// private-key material is zeroed and k is left empty; k itself must not be
// used again by the releasing caller.
func Release(k *PublicKey) {
	if k == nil {
		return
	}
	if atomic.AddInt32(&k.refs, -1) > 0 {
		return
	}
	if k.priv != nil {
		zeroBigInt(k.priv.D)
		for _, p := range k.priv.Primes {
			zeroBigInt(p)
		}
		if k.priv.Precomputed.Dp != nil {
			zeroBigInt(k.priv.Precomputed.Dp)
		}
		if k.priv.Precomputed.Dq != nil {
			zeroBigInt(k.priv.Precomputed.Dq)
		}
		if k.priv.Precomputed.Qinv != nil {
			zeroBigInt(k.priv.Precomputed.Qinv)
		}
	}
	k.priv = nil
	k.pub = nil
}

func zeroBigInt(n *big.Int) {
	if n == nil {
		return
	}
	b := n.Bits()
	for i := range b {
		b[i] = 0
	}
}

// CopyFull returns a new, independent key (reference count 1) holding a
// deep copy of k's key material — private material included, if k has
// any. Unlike Dup, the copy does not share storage with k.
func CopyFull(k *PublicKey) *PublicKey {
	out := &PublicKey{refs: 1}
	if k.pub != nil {
		out.pub = &rsa.PublicKey{N: new(big.Int).Set(k.pub.N), E: k.pub.E}
	}
	if k.priv != nil {
		priv := &rsa.PrivateKey{
			PublicKey: *out.pub,
			D:         new(big.Int).Set(k.priv.D),
		}
		priv.Primes = make([]*big.Int, len(k.priv.Primes))
		for i, p := range k.priv.Primes {
			priv.Primes[i] = new(big.Int).Set(p)
		}
		priv.Precompute()
		out.priv = priv
	}
	return out
}

// hasPublic reports whether k holds modulus/exponent material.
func (k *PublicKey) hasPublic() bool { return k != nil && k.pub != nil }

// hasPrivate reports whether k holds a private exponent.
func (k *PublicKey) hasPrivate() bool { return k != nil && k.priv != nil }

// Generate creates a fresh RSA key pair of the given modulus size in bits
// (PKBytes*8 is the facade's usual default) and public exponent e.
//
// The Go standard library's RSA generator fixes e=65537 internally and
// offers no parameter to change it (crypto/rsa.GenerateKey has no exponent
// argument), so e must be 65537; any other value returns
// ErrInvalidExponent rather than silently substituting a different
// exponent than the caller asked for.
func Generate(bits int, e int) (*PublicKey, error) {
	op := logbridge.Begin("pk generate")
	if e != 65537 {
		op.Error("checking public exponent", ErrInvalidExponent, "exponent", e)
		return nil, ErrInvalidExponent
	}
	priv, err := rsa.GenerateKey(csprng.Reader, bits)
	if err != nil {
		op.Error("generating RSA key pair", err, "bits", bits)
		return nil, err
	}
	return &PublicKey{refs: 1, pub: &priv.PublicKey, priv: priv}, nil
}

// CheckKey validates k's private-key material (that the primes multiply to
// the modulus, and that D is the modular inverse of E). It requires a
// private component.
func (k *PublicKey) CheckKey() error {
	op := logbridge.Begin("pk check-key")
	if !k.hasPrivate() {
		op.Error("checking private component present", ErrNoPrivateKey)
		return ErrNoPrivateKey
	}
	if err := k.priv.Validate(); err != nil {
		op.Error("validating RSA private key", err)
		return err
	}
	return nil
}

// KeySize returns the modulus size of k in bytes.
func (k *PublicKey) KeySize() (int, error) {
	if !k.hasPublic() {
		return 0, ErrNoPublicKey
	}
	return (k.pub.N.BitLen() + 7) / 8, nil
}

// Compare orders two keys lexicographically by modulus bytes, then by
// public exponent; a nil key or one with no public component sorts before
// every key that has one.
func Compare(a, b *PublicKey) int {
	aOK, bOK := a.hasPublic(), b.hasPublic()
	switch {
	case !aOK && !bOK:
		return 0
	case !aOK:
		return -1
	case !bOK:
		return 1
	}
	if c := bytes.Compare(a.pub.N.Bytes(), b.pub.N.Bytes()); c != 0 {
		return c
	}
	switch {
	case a.pub.E < b.pub.E:
		return -1
	case a.pub.E > b.pub.E:
		return 1
	default:
		return 0
	}
}

// ASN1Encode renders k's public component as the DER encoding of the
// PKCS#1 RSAPublicKey structure (SEQUENCE{ modulus, publicExponent }).
func (k *PublicKey) ASN1Encode() ([]byte, error) {
	if !k.hasPublic() {
		return nil, ErrNoPublicKey
	}
	return x509.MarshalPKCS1PublicKey(k.pub), nil
}

// ASN1Decode fills k's public component by parsing der as a PKCS#1
// RSAPublicKey DER blob. Any existing key material in k is discarded first.
func (k *PublicKey) ASN1Decode(der []byte) error {
	op := logbridge.Begin("pk asn1-decode")
	pub, err := x509.ParsePKCS1PublicKey(der)
	if err != nil {
		wrapped := fmt.Errorf("pk: parsing ASN.1 public key: %w", err)
		op.Error("parsing PKCS1 public key DER", wrapped)
		return wrapped
	}
	k.pub = pub
	k.priv = nil
	return nil
}

// Digest returns the SHA-1 digest of k's ASN1Encode output.
func (k *PublicKey) Digest() ([tor.DigestLen]byte, error) {
	var zero [tor.DigestLen]byte
	der, err := k.ASN1Encode()
	if err != nil {
		return zero, err
	}
	return digest.Sum(der), nil
}

// Fingerprint renders k's Digest as upper-case hex. If grouped is true, a
// single space is inserted after every 4 hex characters except the last
// group, producing a 49-character grouped form; otherwise the plain
// 40-character form is returned.
func (k *PublicKey) Fingerprint(grouped bool) (string, error) {
	d, err := k.Digest()
	if err != nil {
		return "", err
	}
	hex := enc.Base16Encode(d[:])
	if !grouped {
		return hex, nil
	}
	var b strings.Builder
	for i, c := range hex {
		if i > 0 && i%4 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(c)
	}
	return b.String(), nil
}

// CheckFingerprintSyntax reports whether s has the shape of a grouped
// fingerprint produced by Fingerprint(true): exactly 49 characters, upper-
// case hex digits at every position except positions 4, 9, 14, ..., 44,
// which must be a single space.
func CheckFingerprintSyntax(s string) bool {
	if len(s) != tor.FingerprintLen {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if i%5 == 4 {
			if c != ' ' {
				return false
			}
			continue
		}
		if !isUpperHex(c) {
			return false
		}
	}
	return true
}

func isUpperHex(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'A' && c <= 'F')
}

// --- PEM I/O -----------------------------------------------------------

const (
	pemPrivateType = "RSA PRIVATE KEY"
	pemPublicType  = "RSA PUBLIC KEY"
)

// WritePrivateToString renders k's full key pair as a PKCS#1
// "RSA PRIVATE KEY" PEM block.
func (k *PublicKey) WritePrivateToString() (string, error) {
	op := logbridge.Begin("pk write-private-string")
	if !k.hasPrivate() {
		op.Error("checking private component present", ErrNoPrivateKey)
		return "", ErrNoPrivateKey
	}
	block := &pem.Block{Type: pemPrivateType, Bytes: x509.MarshalPKCS1PrivateKey(k.priv)}
	return string(pem.EncodeToMemory(block)), nil
}

// WritePrivateToFile writes k's PEM-encoded private key to path with mode
// 0600, since the file holds secret key material.
func (k *PublicKey) WritePrivateToFile(path string) error {
	op := logbridge.Begin("pk write-private-file")
	s, err := k.WritePrivateToString()
	if err != nil {
		op.Error("rendering private key PEM", err)
		return err
	}
	if err := os.WriteFile(path, []byte(s), 0o600); err != nil {
		op.Error("writing private key file", err, "path", path)
		return err
	}
	return nil
}

// ReadPrivateFromString fills k from a PKCS#1 "RSA PRIVATE KEY" PEM block,
// discarding any existing key material in k first.
func (k *PublicKey) ReadPrivateFromString(s string) error {
	op := logbridge.Begin("pk read-private-string")
	block, _ := pem.Decode([]byte(s))
	if block == nil || block.Type != pemPrivateType {
		op.Error("decoding private key PEM block", ErrInvalidPEM)
		return ErrInvalidPEM
	}
	priv, err := x509.ParsePKCS1PrivateKey(block.Bytes)
	if err != nil {
		wrapped := fmt.Errorf("pk: parsing PKCS#1 private key: %w", err)
		op.Error("parsing PKCS1 private key DER", wrapped)
		return wrapped
	}
	k.priv = priv
	k.pub = &priv.PublicKey
	return nil
}

// ReadPrivateFromFile fills k from the PEM-encoded private key stored at
// path.
func (k *PublicKey) ReadPrivateFromFile(path string) error {
	op := logbridge.Begin("pk read-private-file")
	data, err := os.ReadFile(path)
	if err != nil {
		op.Error("reading private key file", err, "path", path)
		return err
	}
	if err := k.ReadPrivateFromString(string(data)); err != nil {
		op.Error("parsing private key file contents", err, "path", path)
		return err
	}
	return nil
}

// WritePublicToString renders k's public component as an "RSA PUBLIC KEY"
// PEM block (PKCS#1, not SubjectPublicKeyInfo).
func (k *PublicKey) WritePublicToString() (string, error) {
	op := logbridge.Begin("pk write-public-string")
	if !k.hasPublic() {
		op.Error("checking public component present", ErrNoPublicKey)
		return "", ErrNoPublicKey
	}
	block := &pem.Block{Type: pemPublicType, Bytes: x509.MarshalPKCS1PublicKey(k.pub)}
	return string(pem.EncodeToMemory(block)), nil
}

// ReadPublicFromString fills k's public component from an "RSA PUBLIC KEY"
// PEM block, discarding any private component k previously held.
func (k *PublicKey) ReadPublicFromString(s string) error {
	op := logbridge.Begin("pk read-public-string")
	block, _ := pem.Decode([]byte(s))
	if block == nil || block.Type != pemPublicType {
		op.Error("decoding public key PEM block", ErrInvalidPEM)
		return ErrInvalidPEM
	}
	pub, err := x509.ParsePKCS1PublicKey(block.Bytes)
	if err != nil {
		wrapped := fmt.Errorf("pk: parsing PKCS#1 public key: %w", err)
		op.Error("parsing PKCS1 public key DER", wrapped)
		return wrapped
	}
	k.pub = pub
	k.priv = nil
	return nil
}
