// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ParkerWen/tor/pk"
)

var fingerprintInput string

// NewFingerprintCommand prints the grouped fingerprint of a PEM key file
// (private or public).
func NewFingerprintCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fingerprint",
		Short: "Print the fingerprint of a PEM-encoded RSA key",
		RunE:  runFingerprint,
	}
	cmd.Flags().StringVarP(&fingerprintInput, "in", "i", "", "path to a PKCS#1 PEM file (required)")
	_ = cmd.MarkFlagRequired("in")
	return cmd
}

func runFingerprint(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(fingerprintInput)
	if err != nil {
		return fmt.Errorf("reading %s: %w", fingerprintInput, err)
	}

	key := pk.New()
	defer pk.Release(key)

	if err := key.ReadPrivateFromString(string(data)); err != nil {
		if err := key.ReadPublicFromString(string(data)); err != nil {
			return fmt.Errorf("%s is not a recognized RSA PEM block", fingerprintInput)
		}
	}

	fp, err := key.Fingerprint(true)
	if err != nil {
		return fmt.Errorf("computing fingerprint: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), fp)
	return nil
}
