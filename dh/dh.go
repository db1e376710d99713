// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

// Package dh implements Diffie-Hellman key agreement over a single fixed
// group: RFC 2409's "Second Oakley Group", a 1024-bit MODP group with
// generator 2. The facade does not negotiate or accept caller-supplied
// groups — the group is a protocol constant, not a parameter.
package dh

import (
	"math/big"

	"github.com/ParkerWen/tor"
	"github.com/ParkerWen/tor/csprng"
	"github.com/ParkerWen/tor/internal/logbridge"
	"github.com/ParkerWen/tor/kdf"
)

// privateExponentBits is the bit length of the random private exponent:
// 320 bits gives a security margin appropriate to this group without
// paying for a full 1024-bit exponent.
const privateExponentBits = 320

// maxGenerateRetries bounds GeneratePublic's retry loop. See DESIGN.md,
// Open Question #3: in practice a freshly drawn exponent in range always
// yields a public value inside [2, p-2], so this bound is reached only if
// the CSPRNG itself is degenerate.
const maxGenerateRetries = 3

var (
	groupPrime, _ = new(big.Int).SetString(
		"FFFFFFFFFFFFFFFFC90FDAA22168C234C4C6628B80DC1CD129024E08"+
			"8A67CC74020BBEA63B139B22514A08798E3404DDEF9519B3CD3A431B"+
			"302B0A6DF25F14374FE1356D6D51C245E485B576625E7EC6F44C42E9"+
			"A637ED6B0BFF5CB6F406B7EDEE386BFB5A899FA5AE9F24117C4B1FE6"+
			"49286651ECE65381FFFFFFFFFFFFFFFF",
		16,
	)
	groupGenerator = big.NewInt(2)
	two            = big.NewInt(2)
)

// pMinus2 returns p-2, the upper (exclusive-of-neither, see Check) bound
// of the valid public-value subgroup range.
func pMinus2() *big.Int {
	return new(big.Int).Sub(groupPrime, two)
}

// DH holds one side of a single key-agreement exchange: the fixed group,
// this side's private exponent once GeneratePublic has been called, and
// the corresponding public value.
type DH struct {
	priv *big.Int
	pub  *big.Int
}

// New returns a DH handle bound to the facade's fixed group, with no
// private exponent generated yet.
func New() *DH {
	return &DH{}
}

// GeneratePublic draws a random private exponent and computes the
// corresponding public value g^x mod p, retrying (up to maxGenerateRetries
// times) if the result ever falls outside the valid subgroup range.
func (d *DH) GeneratePublic() error {
	op := logbridge.Begin("dh generate-public")
	for attempt := 0; attempt < maxGenerateRetries; attempt++ {
		x, err := randomExponent()
		if err != nil {
			op.Error("drawing random private exponent", err, "attempt", attempt)
			return err
		}
		pub := new(big.Int).Exp(groupGenerator, x, groupPrime)
		if checkRange(pub) == nil {
			d.priv = x
			d.pub = pub
			return nil
		}
		op.Warn("rejecting out-of-range public value, retrying", ErrOutOfRange, "attempt", attempt)
	}
	op.Error("exhausting public-value retry budget", ErrRetriesExceeded, "retries", maxGenerateRetries)
	return ErrRetriesExceeded
}

// randomExponent draws a uniform random privateExponentBits-bit integer
// using the facade's seeded CSPRNG.
func randomExponent() (*big.Int, error) {
	buf := make([]byte, privateExponentBits/8)
	if err := csprng.RandomBytes(buf); err != nil {
		return nil, err
	}
	return new(big.Int).SetBytes(buf), nil
}

// GetPublic returns this side's public value, left-zero-padded to
// tor.DHBytes bytes (the fixed group's modulus size), for wire transport.
func (d *DH) GetPublic() ([]byte, error) {
	op := logbridge.Begin("dh get-public")
	if d.pub == nil {
		op.Error("checking public value generated", ErrNoPrivateExponent)
		return nil, ErrNoPrivateExponent
	}
	return leftPad(d.pub.Bytes(), tor.DHBytes), nil
}

// GetBytes returns the fixed group's modulus, left-zero-padded to
// tor.DHBytes bytes, for callers that want to confirm both sides agree on
// the group in use.
func GetBytes() []byte {
	return leftPad(groupPrime.Bytes(), tor.DHBytes)
}

// Check reports whether a wire-format public value (tor.DHBytes bytes) is
// in the valid subgroup range [2, p-2]. Values outside this range cannot
// have been produced by an honest peer and must be rejected before use in
// ComputeSecret (small-subgroup confinement).
func Check(wire []byte) error {
	op := logbridge.Begin("dh check")
	if len(wire) != tor.DHBytes {
		op.Error("checking wire-format length", ErrBadLength, "len", len(wire))
		return ErrBadLength
	}
	if err := checkRange(new(big.Int).SetBytes(wire)); err != nil {
		op.Error("checking subgroup range", err)
		return err
	}
	return nil
}

func checkRange(v *big.Int) error {
	if v.Cmp(two) < 0 || v.Cmp(pMinus2()) > 0 {
		return ErrOutOfRange
	}
	return nil
}

// ComputeSecret validates peerPublic (per Check) and computes the shared
// secret peerPublic^x mod p, then expands it via the facade's counter-mode
// KDF (package kdf) to outLen bytes. outLen must not exceed 20*255 bytes,
// one 20-byte block less than the KDF's own 20*256-byte maximum.
func (d *DH) ComputeSecret(peerPublic []byte, outLen int) ([]byte, error) {
	op := logbridge.Begin("dh compute-secret")
	if d.priv == nil {
		op.Error("checking private exponent generated", ErrNoPrivateExponent)
		return nil, ErrNoPrivateExponent
	}
	if err := Check(peerPublic); err != nil {
		op.Error("validating peer public value", err)
		return nil, err
	}
	if outLen > 20*255 {
		op.Error("checking requested secret length", ErrSecretTooLong, "out_len", outLen)
		return nil, ErrSecretTooLong
	}
	peer := new(big.Int).SetBytes(peerPublic)
	shared := new(big.Int).Exp(peer, d.priv, groupPrime)
	sharedBytes := leftPad(shared.Bytes(), tor.DHBytes)
	out, err := kdf.ExpandKeyMaterial(sharedBytes, outLen)
	if err != nil {
		op.Error("expanding shared secret via KDF", err)
	}
	return out, err
}

func leftPad(b []byte, size int) []byte {
	if len(b) >= size {
		return b
	}
	out := make([]byte, size)
	copy(out[size-len(b):], b)
	return out
}
