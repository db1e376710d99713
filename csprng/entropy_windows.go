// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

//go:build windows

package csprng

import (
	"crypto/rand"
	"fmt"
	"io"
)

// harvestEntropy reads exactly n bytes from the Windows cryptographic
// service provider.
//
// A CryptAcquireContext handle plus CryptGenRandom is the traditional way
// to pull entropy on Windows. Go's crypto/rand already performs the
// CryptGenRandom-equivalent syscall internally on Windows (see DESIGN.md,
// Open Question #2), so this is that call, named to match the seeding step
// it stands in for rather than reimplemented against the raw Win32 API.
func harvestEntropy(n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(rand.Reader, buf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoEntropySource, err)
	}
	return buf, nil
}
