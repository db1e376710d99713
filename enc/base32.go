// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package enc

import "github.com/ParkerWen/tor/internal/logbridge"

// base32Alphabet is the RFC 3548 lower-case subset this facade uses (no
// padding characters; only whole 5-byte/8-character blocks are valid).
const base32Alphabet = "abcdefghijklmnopqrstuvwxyz234567"

var base32Reverse = func() [256]int8 {
	var t [256]int8
	for i := range t {
		t[i] = -1
	}
	for i := 0; i < len(base32Alphabet); i++ {
		t[base32Alphabet[i]] = int8(i)
	}
	return t
}()

// Base32Encode encodes src to the facade's lower-case, unpadded base32
// alphabet. len(src) must be a multiple of 5 (so that len(src)*8 is a
// multiple of 5 bits-per-char... equivalently a whole number of 8-char
// blocks); ErrInvalidLength otherwise.
func Base32Encode(src []byte) (string, error) {
	if len(src)%5 != 0 {
		logbridge.Begin("enc base32-encode").Error("checking input length multiple of 5", ErrInvalidLength, "len", len(src))
		return "", ErrInvalidLength
	}
	out := make([]byte, 0, len(src)/5*8)
	for i := 0; i < len(src); i += 5 {
		block := src[i : i+5]
		var buf [8]byte
		buf[0] = base32Alphabet[block[0]>>3]
		buf[1] = base32Alphabet[(block[0]<<2|block[1]>>6)&0x1f]
		buf[2] = base32Alphabet[(block[1]>>1)&0x1f]
		buf[3] = base32Alphabet[(block[1]<<4|block[2]>>4)&0x1f]
		buf[4] = base32Alphabet[(block[2]<<1|block[3]>>7)&0x1f]
		buf[5] = base32Alphabet[(block[3]>>2)&0x1f]
		buf[6] = base32Alphabet[(block[3]<<3|block[4]>>5)&0x1f]
		buf[7] = base32Alphabet[block[4]&0x1f]
		out = append(out, buf[:]...)
	}
	return string(out), nil
}

// Base32Decode decodes a string produced by Base32Encode. len(s)*5 must be
// a multiple of 8 (equivalently len(s) a multiple of 8); any character
// outside base32Alphabet is rejected.
func Base32Decode(s string) ([]byte, error) {
	op := logbridge.Begin("enc base32-decode")
	if len(s)%8 != 0 {
		op.Error("checking input length multiple of 8", ErrInvalidLength, "len", len(s))
		return nil, ErrInvalidLength
	}
	out := make([]byte, 0, len(s)/8*5)
	for i := 0; i < len(s); i += 8 {
		var v [8]int8
		for j := 0; j < 8; j++ {
			c := s[i+j]
			val := base32Reverse[c]
			if val < 0 {
				op.Error("decoding character", ErrInvalidCharacter, "pos", i+j)
				return nil, ErrInvalidCharacter
			}
			v[j] = val
		}
		out = append(out,
			byte(v[0])<<3|byte(v[1])>>2,
			byte(v[1])<<6|byte(v[2])<<1|byte(v[3])>>4,
			byte(v[3])<<4|byte(v[4])>>1,
			byte(v[4])<<7|byte(v[5])<<2|byte(v[6])>>3,
			byte(v[6])<<5|byte(v[7]),
		)
	}
	return out, nil
}
