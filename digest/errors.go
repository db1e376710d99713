// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package digest

import "errors"

// ErrPrefixTooLong is returned by Sum when the requested prefix length is
// outside [1, 20] (fewer than 1 or more than 20 bytes of SHA-1 output).
var ErrPrefixTooLong = errors.New("digest: prefix length must be in [1, 20]")
