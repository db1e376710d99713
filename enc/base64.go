// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package enc

import (
	"encoding/base64"

	"github.com/ParkerWen/tor/internal/logbridge"
)

const base64Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

var base64Reverse = func() [256]int8 {
	var t [256]int8
	for i := range t {
		t[i] = -1
	}
	for i := 0; i < len(base64Alphabet); i++ {
		t[base64Alphabet[i]] = int8(i)
	}
	return t
}()

// base64LineLen is the number of output characters per line before a
// newline is inserted, matching the classic 64-column base64 body used by
// PEM and OpenSSL's BIO base64 filter. 48 input bytes produce 64 output
// characters.
const base64LineLen = 64

// Base64EncodeCap returns the buffer capacity a caller must provide to
// Base64Encode for an input of n bytes: at most ((n/48)+1)*66 bytes,
// accounting for the padded body, one newline per 64-character line, and a
// trailing newline.
func Base64EncodeCap(n int) int {
	return (n/48+1)*66
}

// Base64Encode renders src as padded base64 text, with a newline inserted
// every 64 output characters (and a trailing newline), matching the
// classic OpenSSL/PEM body layout.
func Base64Encode(src []byte) string {
	out := make([]byte, 0, Base64EncodeCap(len(src)))
	lineCount := 0
	emit := func(c byte) {
		out = append(out, c)
		lineCount++
		if lineCount == base64LineLen {
			out = append(out, '\n')
			lineCount = 0
		}
	}

	i := 0
	for ; i+3 <= len(src); i += 3 {
		n := uint32(src[i])<<16 | uint32(src[i+1])<<8 | uint32(src[i+2])
		emit(base64Alphabet[(n>>18)&0x3f])
		emit(base64Alphabet[(n>>12)&0x3f])
		emit(base64Alphabet[(n>>6)&0x3f])
		emit(base64Alphabet[n&0x3f])
	}
	switch len(src) - i {
	case 1:
		n := uint32(src[i]) << 16
		emit(base64Alphabet[(n>>18)&0x3f])
		emit(base64Alphabet[(n>>12)&0x3f])
		emit('=')
		emit('=')
	case 2:
		n := uint32(src[i])<<16 | uint32(src[i+1])<<8
		emit(base64Alphabet[(n>>18)&0x3f])
		emit(base64Alphabet[(n>>12)&0x3f])
		emit(base64Alphabet[(n>>6)&0x3f])
		emit('=')
	}
	if lineCount != 0 {
		out = append(out, '\n')
	}
	return string(out)
}

func isBase64Whitespace(c byte) bool {
	switch c {
	case '\t', '\n', '\v', '\f', '\r', ' ':
		return true
	default:
		return false
	}
}

// Base64Decode decodes base64 text, tolerating internal whitespace
// (TAB, LF, VT, FF, CR, SP) as no-ops. '=' ends decoding at that point
// (padding count is not verified: "YQ==", "YQ", and "YQ===" all decode to
// "a"). Any other character outside the base64 alphabet is rejected.
//
// Leftover bits at end-of-input: 0 bits is fine; 6 bits (a single dangling
// base64 character) is an error (ErrTruncatedInput); 12 bits emits 1 byte
// from the top 8 bits; 18 bits emits 2 bytes.
func Base64Decode(s string) ([]byte, error) {
	op := logbridge.Begin("enc base64-decode")
	out := make([]byte, 0, len(s)/4*3+3)
	var acc uint32
	var bits int
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isBase64Whitespace(c) {
			continue
		}
		if c == '=' {
			break
		}
		v := base64Reverse[c]
		if v < 0 {
			op.Error("decoding character", ErrInvalidCharacter, "pos", i)
			return nil, ErrInvalidCharacter
		}
		acc = acc<<6 | uint32(v)
		bits += 6
		if bits >= 8 {
			bits -= 8
			out = append(out, byte(acc>>uint(bits)))
		}
	}
	if bits == 6 {
		op.Error("checking for dangling trailing bits", ErrTruncatedInput, "bits", bits)
		return nil, ErrTruncatedInput
	}
	return out, nil
}

// Base64DecodeStrict is the documented strictness escape hatch for
// Base64Decode's permissive padding: it strips the same whitespace set
// Base64Decode tolerates, then requires exact, correctly-padded standard
// base64 — encoding/base64's StdEncoding.Strict() already implements that
// exact check, and there is nothing in the facade's own codec worth
// duplicating it for.
func Base64DecodeStrict(s string) ([]byte, error) {
	op := logbridge.Begin("enc base64-decode-strict")
	compact := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isBase64Whitespace(c) {
			continue
		}
		compact = append(compact, c)
	}
	out, err := base64.StdEncoding.Strict().DecodeString(string(compact))
	if err != nil {
		op.Error("strict-decoding standard base64", err)
		return nil, ErrInvalidCharacter
	}
	return out, nil
}
