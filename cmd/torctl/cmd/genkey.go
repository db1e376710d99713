// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package cmd

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/ParkerWen/tor/pk"
)

var (
	genKeyBits   int
	genKeyOutput string
)

// NewGenKeyCommand generates an RSA key pair and writes it to a PEM file.
func NewGenKeyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "genkey",
		Short: "Generate an RSA key pair and write it as a PKCS#1 PEM file",
		RunE:  runGenKey,
	}
	cmd.Flags().IntVarP(&genKeyBits, "bits", "b", 1024, "RSA modulus size in bits")
	cmd.Flags().StringVarP(&genKeyOutput, "out", "o", "torctl.pem", "output path for the private key PEM")
	return cmd
}

func runGenKey(cmd *cobra.Command, args []string) error {
	key, err := pk.Generate(genKeyBits, 65537)
	if err != nil {
		return fmt.Errorf("generating key: %w", err)
	}
	defer pk.Release(key)

	if err := key.WritePrivateToFile(genKeyOutput); err != nil {
		return fmt.Errorf("writing private key: %w", err)
	}

	size, err := key.KeySize()
	if err != nil {
		return err
	}
	fp, err := key.Fingerprint(true)
	if err != nil {
		return fmt.Errorf("computing fingerprint: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "wrote %d-bit key (%s modulus) to %s\n", genKeyBits, humanize.Bytes(uint64(size)), genKeyOutput)
	fmt.Fprintf(cmd.OutOrStdout(), "fingerprint: %s\n", fp)
	return nil
}
