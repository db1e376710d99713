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
	encryptKeyPath string
	encryptIn      string
	encryptOut     string
	encryptPadding string
	encryptForce   bool
)

// NewEncryptCommand hybrid-encrypts a file under a PEM public key.
func NewEncryptCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encrypt",
		Short: "Hybrid-encrypt a file under an RSA public key",
		RunE:  runEncrypt,
	}
	cmd.Flags().StringVarP(&encryptKeyPath, "key", "k", "", "path to a PKCS#1 public or private key PEM (required)")
	cmd.Flags().StringVarP(&encryptIn, "in", "i", "", "input plaintext path (required)")
	cmd.Flags().StringVarP(&encryptOut, "out", "o", "", "output ciphertext path (required)")
	cmd.Flags().StringVar(&encryptPadding, "padding", "oaep", "RSA padding mode: none, pkcs1, oaep")
	cmd.Flags().BoolVar(&encryptForce, "force", false, "always use the full envelope, even for short messages")
	for _, name := range []string{"key", "in", "out"} {
		_ = cmd.MarkFlagRequired(name)
	}
	return cmd
}

func runEncrypt(cmd *cobra.Command, args []string) error {
	padding, err := parsePadding(encryptPadding)
	if err != nil {
		return err
	}

	keyPEM, err := os.ReadFile(encryptKeyPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", encryptKeyPath, err)
	}
	key := pk.New()
	defer pk.Release(key)
	if err := key.ReadPublicFromString(string(keyPEM)); err != nil {
		if err := key.ReadPrivateFromString(string(keyPEM)); err != nil {
			return fmt.Errorf("%s is not a recognized RSA PEM block", encryptKeyPath)
		}
	}

	plain, err := os.ReadFile(encryptIn)
	if err != nil {
		return fmt.Errorf("reading %s: %w", encryptIn, err)
	}

	cipher, err := hybrid.Encrypt(key, plain, padding, encryptForce)
	if err != nil {
		return fmt.Errorf("encrypting: %w", err)
	}

	if err := os.WriteFile(encryptOut, cipher, 0o600); err != nil {
		return fmt.Errorf("writing %s: %w", encryptOut, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%s -> %s)\n", humanize.Bytes(uint64(len(cipher))), humanize.Bytes(uint64(len(plain))), encryptOut)
	return nil
}
