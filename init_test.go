// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package tor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInitializeIdempotent(t *testing.T) {
	is := assert.New(t)
	defer Teardown()

	is.False(IsInitialized())
	is.NoError(Initialize())
	is.True(IsInitialized())
	is.NoError(Initialize(), "a second Initialize call should be a no-op success")
	is.True(IsInitialized())
}

func TestTeardownIsSafeBeforeInitialize(t *testing.T) {
	is := assert.New(t)
	Teardown()
	is.False(IsInitialized())
	Teardown()
	is.False(IsInitialized())
}

func TestWithLockAfterTeardownIsNoop(t *testing.T) {
	is := assert.New(t)
	is.NoError(Initialize(WithLocks(4)))

	ran := false
	ok := WithLock(0, func() { ran = true })
	is.True(ok)
	is.True(ran)

	Teardown()

	ran = false
	ok = WithLock(0, func() { ran = true })
	is.False(ok)
	is.False(ran)
}

func TestPaddingOverhead(t *testing.T) {
	is := assert.New(t)
	is.Equal(0, PaddingNone.Overhead())
	is.Equal(11, PaddingPKCS1.Overhead())
	is.Equal(42, PaddingOAEP.Overhead())
	is.Equal("none", PaddingNone.String())
	is.Equal("pkcs1", PaddingPKCS1.String())
	is.Equal("oaep", PaddingOAEP.String())
}
