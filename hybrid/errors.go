// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package hybrid

import "errors"

var (
	// ErrTooShortForNoPadding is returned by Encrypt when padding is
	// tor.PaddingNone and the message is shorter than the key size: a
	// no-padding RSA block must exactly fill the modulus, so there is no
	// room to both carry the message and fall back to the AES-CTR tail.
	ErrTooShortForNoPadding = errors.New("hybrid: message shorter than key size under no padding")

	// ErrShortRSAPlaintext is returned by Decrypt when the RSA-decrypted
	// block is shorter than the 16-byte symmetric key it must carry.
	ErrShortRSAPlaintext = errors.New("hybrid: recovered RSA plaintext shorter than symmetric key")
)
