// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package cmd

import (
	"fmt"

	"github.com/ParkerWen/tor"
)

// parsePadding maps a --padding flag value to its tor.Padding constant.
func parsePadding(s string) (tor.Padding, error) {
	switch s {
	case "none":
		return tor.PaddingNone, nil
	case "pkcs1":
		return tor.PaddingPKCS1, nil
	case "oaep":
		return tor.PaddingOAEP, nil
	default:
		return 0, fmt.Errorf("unknown padding %q: want one of none, pkcs1, oaep", s)
	}
}
