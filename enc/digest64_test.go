// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package enc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDigestToBase64RoundTrip(t *testing.T) {
	is := assert.New(t)
	digest := bytesOfLen(20)

	s, err := DigestToBase64(digest)
	is.NoError(err)
	is.Len(s, 27)

	back, err := Base64ToDigest(s)
	is.NoError(err)
	is.Equal(digest, back)
}

func TestDigestToBase64RejectsWrongLength(t *testing.T) {
	is := assert.New(t)
	_, err := DigestToBase64(bytesOfLen(19))
	is.ErrorIs(err, ErrInvalidDigestLength)
}

func TestBase64ToDigestRejectsWrongLength(t *testing.T) {
	is := assert.New(t)
	short, err := DigestToBase64(bytesOfLen(20))
	is.NoError(err)
	_, err = Base64ToDigest(short[:10])
	is.Error(err)
}
