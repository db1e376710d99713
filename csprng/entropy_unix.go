// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

//go:build !windows

package csprng

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// unixEntropySources lists the device files tried, in order, to harvest
// seed material on Unix-family hosts. The first one that opens is read
// from; later ones are never tried once an earlier one succeeds.
var unixEntropySources = []string{"/dev/srandom", "/dev/urandom", "/dev/random"}

// harvestEntropy reads exactly n bytes from the first Unix entropy source
// that can be opened, trying unixEntropySources in order.
func harvestEntropy(n int) ([]byte, error) {
	var lastErr error
	for _, path := range unixEntropySources {
		fd, err := unix.Open(path, unix.O_RDONLY|unix.O_NOFOLLOW, 0)
		if err != nil {
			lastErr = err
			continue
		}
		buf := make([]byte, n)
		read := 0
		for read < n {
			m, rerr := unix.Read(fd, buf[read:])
			if rerr != nil {
				lastErr = rerr
				break
			}
			if m == 0 {
				lastErr = fmt.Errorf("%s: unexpected EOF", path)
				break
			}
			read += m
		}
		_ = unix.Close(fd)
		if read == n {
			return buf, nil
		}
	}
	if lastErr == nil {
		lastErr = ErrNoEntropySource
	}
	return nil, fmt.Errorf("%w: %v", ErrNoEntropySource, lastErr)
}
