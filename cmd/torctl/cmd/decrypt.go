// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package cmd

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/ParkerWen/tor/hybrid"
	"github.com/ParkerWen/tor/pk"
)

var (
	decryptKeyPath string
	decryptIn      string
	decryptOut     string
	decryptPadding string
)

// NewDecryptCommand reverses NewEncryptCommand's hybrid envelope.
func NewDecryptCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decrypt",
		Short: "Decrypt a hybrid-encrypted file under an RSA private key",
		RunE:  runDecrypt,
	}
	cmd.Flags().StringVarP(&decryptKeyPath, "key", "k", "", "path to a PKCS#1 private key PEM (required)")
	cmd.Flags().StringVarP(&decryptIn, "in", "i", "", "input ciphertext path (required)")
	cmd.Flags().StringVarP(&decryptOut, "out", "o", "", "output plaintext path (required)")
	cmd.Flags().StringVar(&decryptPadding, "padding", "oaep", "RSA padding mode: none, pkcs1, oaep")
	for _, name := range []string{"key", "in", "out"} {
		_ = cmd.MarkFlagRequired(name)
	}
	return cmd
}

func runDecrypt(cmd *cobra.Command, args []string) error {
	padding, err := parsePadding(decryptPadding)
	if err != nil {
		return err
	}

	keyPEM, err := os.ReadFile(decryptKeyPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", decryptKeyPath, err)
	}
	key := pk.New()
	defer pk.Release(key)
	if err := key.ReadPrivateFromString(string(keyPEM)); err != nil {
		return fmt.Errorf("%s is not a recognized RSA private key PEM block", decryptKeyPath)
	}

	cipher, err := os.ReadFile(decryptIn)
	if err != nil {
		return fmt.Errorf("reading %s: %w", decryptIn, err)
	}

	plain, err := hybrid.Decrypt(key, cipher, padding)
	if err != nil {
		return fmt.Errorf("decrypting: %w", err)
	}

	if err := os.WriteFile(decryptOut, plain, 0o600); err != nil {
		return fmt.Errorf("writing %s: %w", decryptOut, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s to %s\n", humanize.Bytes(uint64(len(plain))), decryptOut)
	return nil
}
