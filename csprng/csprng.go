// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

// Package csprng is the facade's seeded cryptographically secure random
// generator.
//
// It is a single process-wide AES-CTR stream, keyed from OS entropy at
// Seed time and optionally whitened through a ChaCha20 pass (grounded on
// sixafter/prng-chacha) before it is split into the AES key and initial
// counter. Unlike a pool of independently-seeded generators sharded across
// goroutines for high-throughput issuance, this CSPRNG is a single state
// gated by an explicit, observable Seed call (driven by package tor's
// Initialize) so its lifecycle stays visible to callers. The AES-CTR
// counter-advance discipline (one block per 16 bytes of output, in call
// order) follows the same technique as the pool-backed generators it is
// adapted from.
package csprng

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/binary"
	"sync"

	"golang.org/x/crypto/chacha20"
	"golang.org/x/exp/constraints"

	"github.com/ParkerWen/tor/enc"
	"github.com/ParkerWen/tor/internal/logbridge"
)

// generator holds the single process-wide CSPRNG state: an AES-128 block
// cipher and a 16-byte counter, advanced one block per 16 bytes produced,
// in strict call order.
type generator struct {
	mu         sync.Mutex
	block      cipher.Block
	counter    [16]byte
	seeded     bool
	everSeeded bool
	cfg        Config
}

var global = &generator{cfg: DefaultConfig()}

// Configure replaces the package-level generator's configuration. It must
// be called before Seed to take effect; it does not itself reseed.
func Configure(opts ...Option) {
	global.mu.Lock()
	defer global.mu.Unlock()
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	global.cfg = cfg
}

// Seed (re)harvests OS entropy and reinitializes the generator's AES key
// and counter from it.
//
// startup should be true for the initial seeding performed by the
// facade's Initialize; subsequent calls (e.g. a caller-triggered reseed)
// should pass false. The flag only affects whether a harvest failure is
// treated as fatal: failure to obtain any entropy source is fatal unless a
// prior poll already seeded the generator successfully, in which case Seed
// leaves the existing state in place and returns nil.
func Seed(startup bool) error {
	global.mu.Lock()
	defer global.mu.Unlock()

	n := global.cfg.EntropyLen
	if n < 32 {
		n = 32
	}
	raw, err := harvestEntropy(n)
	if err != nil {
		if global.everSeeded && !startup {
			return nil
		}
		return err
	}
	defer zero(raw)

	seed := raw
	if global.cfg.Whiten {
		seed, err = whiten(raw)
		if err != nil {
			if global.everSeeded && !startup {
				return nil
			}
			return err
		}
		defer zero(seed)
	}

	material := expandSeed(seed)
	defer zero(material)

	block, err := aes.NewCipher(material[:16])
	if err != nil {
		return err
	}
	global.block = block
	copy(global.counter[:], material[16:32])
	global.seeded = true
	global.everSeeded = true
	return nil
}

// whiten runs a ChaCha20 stream over a zero buffer keyed/nonced from raw
// entropy, folding the result back with raw to whiten it before it keys
// the AES-CTR output stream. raw must be at least 32 bytes.
func whiten(raw []byte) ([]byte, error) {
	var key [32]byte
	var nonce [chacha20.NonceSize]byte
	copy(key[:], raw)
	if len(raw) >= 32+chacha20.NonceSize {
		copy(nonce[:], raw[32:])
	}
	c, err := chacha20.NewUnauthenticatedCipher(key[:], nonce[:])
	if err != nil {
		return nil, err
	}
	out := make([]byte, len(raw))
	c.XORKeyStream(out, raw)
	return out, nil
}

// expandSeed folds an arbitrary-length seed down to exactly 32 bytes (16
// key bytes + 16 counter bytes) by repeated XOR-folding, so Seed can accept
// an EntropyLen larger than 32 from Config without discarding entropy.
func expandSeed(seed []byte) []byte {
	out := make([]byte, 32)
	for i, b := range seed {
		out[i%32] ^= b
	}
	return out
}

func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// incCounter increments the 128-bit big-endian counter by one block.
func incCounter(v *[16]byte) {
	for i := 15; i >= 0; i-- {
		v[i]++
		if v[i] != 0 {
			break
		}
	}
}

// reader adapts the package-level generator to io.Reader, for callers
// (package pk's RSA key generation and RSA padding) that need an
// io.Reader rather than a RandomBytes-shaped function.
type reader struct{}

// Read fills p via RandomBytes, satisfying io.Reader. It always either
// fills p completely or returns a non-nil error; a short, non-error read
// never occurs.
func (reader) Read(p []byte) (int, error) {
	if err := RandomBytes(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

// Reader is an io.Reader backed by the facade's seeded CSPRNG, for
// interop with standard library APIs (crypto/rsa.GenerateKey and
// friends) that expect an io.Reader source of randomness.
var Reader reader

// RandomBytes fills out with cryptographically strong random bytes, using
// the facade's seeded AES-CTR stream. It fails with ErrNotSeeded if Seed
// has never succeeded.
func RandomBytes(out []byte) error {
	global.mu.Lock()
	defer global.mu.Unlock()
	if !global.seeded {
		logbridge.Begin("csprng random-bytes").Error("checking generator seeded", ErrNotSeeded, "len", len(out))
		return ErrNotSeeded
	}
	fillBlocks(out, global.block, &global.counter)
	return nil
}

// fillBlocks writes len(b) bytes of AES-CTR keystream into b, advancing v
// by one block (16 bytes) at a time, including a final partial block.
func fillBlocks(b []byte, block cipher.Block, v *[16]byte) {
	n := len(b)
	offset := 0
	for ; offset+16 <= n; offset += 16 {
		incCounter(v)
		block.Encrypt(b[offset:offset+16], v[:])
	}
	if tail := n - offset; tail > 0 {
		var tmp [16]byte
		incCounter(v)
		block.Encrypt(tmp[:], v[:])
		copy(b[offset:], tmp[:tail])
	}
}

func randomUint32() (uint32, error) {
	var b [4]byte
	if err := RandomBytes(b[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b[:]), nil
}

func randomUint64Raw() (uint64, error) {
	var b [8]byte
	if err := RandomBytes(b[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(b[:]), nil
}

// rejectSample implements uniform bounded sampling by rejection: draw a
// full-width value; if it falls in the biased tail above cutoff, redraw.
// cutoff = TYPE_MAX - (TYPE_MAX mod max), so no modulo bias is possible.
func rejectSample[T constraints.Unsigned](draw func() (T, error), max T) (T, error) {
	typeMax := ^T(0)
	if max == 0 || max == typeMax {
		return 0, ErrInvalidBound
	}
	cutoff := typeMax - (typeMax % max)
	for {
		v, err := draw()
		if err != nil {
			return 0, err
		}
		if v < cutoff {
			return v % max, nil
		}
	}
}

// RandomInt returns a uniform random value in [0, max), for 0 < max <
// 2^32-1, via 32-bit rejection sampling.
func RandomInt(max int32) (int32, error) {
	op := logbridge.Begin("csprng random-int")
	if max <= 0 {
		op.Error("checking requested bound", ErrInvalidBound, "max", max)
		return 0, ErrInvalidBound
	}
	v, err := rejectSample(randomUint32, uint32(max))
	if err != nil {
		op.Error("rejection-sampling bounded value", err)
		return 0, err
	}
	return int32(v), nil
}

// RandomUint64 returns a uniform random value in [0, max), for 0 < max <
// 2^64-1, via 64-bit rejection sampling.
func RandomUint64(max uint64) (uint64, error) {
	op := logbridge.Begin("csprng random-uint64")
	v, err := rejectSample(randomUint64Raw, max)
	if err != nil {
		op.Error("rejection-sampling bounded value", err, "max", max)
	}
	return v, err
}

// Shuffle permutes seq in place using Fisher-Yates, drawing from the end:
// for i from len(seq)-1 down to 1, it draws j uniformly from [0, i]
// (inclusive of i, so "no swap" occurs with the same probability as any
// other outcome) and swaps seq[i], seq[j].
func Shuffle[T any](seq []T) error {
	op := logbridge.Begin("csprng shuffle")
	for i := len(seq) - 1; i >= 1; i-- {
		j, err := RandomInt(int32(i + 1))
		if err != nil {
			op.Error("drawing swap index", err, "i", i)
			return err
		}
		seq[i], seq[j] = seq[j], seq[i]
	}
	return nil
}

// Choose returns a uniformly random element of seq. It returns
// ErrEmptySequence if seq has no elements.
func Choose[T any](seq []T) (T, error) {
	op := logbridge.Begin("csprng choose")
	var zeroVal T
	if len(seq) == 0 {
		op.Error("checking sequence non-empty", ErrEmptySequence)
		return zeroVal, ErrEmptySequence
	}
	idx, err := RandomInt(int32(len(seq)))
	if err != nil {
		op.Error("drawing random index", err, "len", len(seq))
		return zeroVal, err
	}
	return seq[idx], nil
}

// RandomHostname builds a random hostname of the form prefix + random +
// suffix, where random is randLen characters long, randLen drawn uniformly
// from [minR, maxR].
//
// The number of random bytes read is
// roundUp5(ceilDiv(randLen*5, 8)) — enough base32-encoded characters to
// cover randLen after truncation, rounded up to a multiple of 5 bytes
// because this facade's base32 codec (package enc) only encodes byte
// counts that are themselves multiples of 5 (no padding characters).
func RandomHostname(minR, maxR int, prefix, suffix string) (string, error) {
	op := logbridge.Begin("csprng random-hostname")
	if minR < 0 || maxR < minR {
		op.Error("checking requested length range", ErrInvalidBound, "min", minR, "max", maxR)
		return "", ErrInvalidBound
	}
	span := int32(maxR-minR) + 1
	offset, err := RandomInt(span)
	if err != nil {
		op.Error("drawing random length within range", err)
		return "", err
	}
	randLen := minR + int(offset)

	rawBytesNeeded := ceilDiv(randLen*5, 8)
	nbytes := roundUp5(rawBytesNeeded)
	if nbytes == 0 {
		return prefix + suffix, nil
	}

	buf := make([]byte, nbytes)
	if err := RandomBytes(buf); err != nil {
		op.Error("drawing random label bytes", err, "nbytes", nbytes)
		return "", err
	}
	encoded, err := enc.Base32Encode(buf)
	if err != nil {
		op.Error("base32-encoding random label", err)
		return "", err
	}
	if len(encoded) > randLen {
		encoded = encoded[:randLen]
	}
	return prefix + encoded + suffix, nil
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

func roundUp5(n int) int {
	return ((n + 4) / 5) * 5
}
