// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package enc

import (
	"strings"

	"github.com/ParkerWen/tor/internal/logbridge"
)

// DigestToBase64 renders a 20-byte digest as the facade's short base64
// form: 27 characters, with the trailing '=' padding character and
// newline that Base64Encode would normally emit stripped off.
func DigestToBase64(digest []byte) (string, error) {
	if len(digest) != 20 {
		logbridge.Begin("enc digest-to-base64").Error("checking digest length", ErrInvalidDigestLength, "len", len(digest))
		return "", ErrInvalidDigestLength
	}
	full := Base64Encode(digest)
	return strings.TrimRight(full, "=\n"), nil
}

// Base64ToDigest parses the 27-character short base64 form back into a
// 20-byte digest. It appends "=\n" before delegating to Base64Decode, same
// as the reference library form, then validates the decoded length.
func Base64ToDigest(s string) ([]byte, error) {
	op := logbridge.Begin("enc base64-to-digest")
	decoded, err := Base64Decode(s + "=\n")
	if err != nil {
		op.Error("decoding short base64 form", err)
		return nil, err
	}
	if len(decoded) != 20 {
		op.Error("checking decoded digest length", ErrInvalidDigestLength, "len", len(decoded))
		return nil, ErrInvalidDigestLength
	}
	return decoded, nil
}
