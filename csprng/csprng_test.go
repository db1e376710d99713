// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package csprng

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRandomBytesRequiresSeed(t *testing.T) {
	is := assert.New(t)
	global.mu.Lock()
	global.seeded = false
	global.mu.Unlock()

	var buf [16]byte
	err := RandomBytes(buf[:])
	is.ErrorIs(err, ErrNotSeeded)
}

func TestSeedThenRandomBytes(t *testing.T) {
	is := assert.New(t)
	is.NoError(Seed(true))

	var a, b [32]byte
	is.NoError(RandomBytes(a[:]))
	is.NoError(RandomBytes(b[:]))
	is.NotEqual(a, b, "two successive draws should not collide")
}

func TestRandomIntNeverReturnsBound(t *testing.T) {
	is := assert.New(t)
	is.NoError(Seed(true))

	const max = int32(3)
	seen := map[int32]bool{}
	for i := 0; i < 5000; i++ {
		v, err := RandomInt(max)
		is.NoError(err)
		is.Less(v, max)
		is.GreaterOrEqual(v, int32(0))
		seen[v] = true
	}
	is.Len(seen, int(max), "every value in [0, max) should eventually be drawn")
}

func TestRandomIntRejectsNonPositiveBound(t *testing.T) {
	is := assert.New(t)
	_, err := RandomInt(0)
	is.ErrorIs(err, ErrInvalidBound)
	_, err = RandomInt(-1)
	is.ErrorIs(err, ErrInvalidBound)
}

func TestShuffleIsAPermutation(t *testing.T) {
	is := assert.New(t)
	is.NoError(Seed(true))

	seq := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	orig := append([]int(nil), seq...)
	is.NoError(Shuffle(seq))

	is.ElementsMatch(orig, seq)
}

func TestChooseRejectsEmptySequence(t *testing.T) {
	is := assert.New(t)
	is.NoError(Seed(true))

	_, err := Choose([]int{})
	is.ErrorIs(err, ErrEmptySequence)

	v, err := Choose([]int{42})
	is.NoError(err)
	is.Equal(42, v)
}

func TestRandomHostnameShape(t *testing.T) {
	is := assert.New(t)
	is.NoError(Seed(true))

	for i := 0; i < 20; i++ {
		host, err := RandomHostname(5, 10, "host-", ".example")
		is.NoError(err)
		is.True(len(host) >= len("host-")+5+len(".example"))
		is.True(len(host) <= len("host-")+10+len(".example"))
	}
}

func TestConfigureChangesEntropyLen(t *testing.T) {
	is := assert.New(t)
	Configure(WithEntropyLen(64), WithWhitening(false))
	is.NoError(Seed(true))
	is.Equal(64, global.cfg.EntropyLen)
	is.False(global.cfg.Whiten)

	Configure() // restore defaults for subsequent tests in the package
	is.NoError(Seed(true))
}
