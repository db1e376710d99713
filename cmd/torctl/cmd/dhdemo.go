// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package cmd

import (
	"bytes"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/ParkerWen/tor/dh"
	"github.com/ParkerWen/tor/enc"
)

var dhDemoSecretLen int

// NewDHDemoCommand runs a local two-party Diffie-Hellman agreement over
// the facade's fixed group, as a sanity check that both sides derive the
// same expanded secret.
func NewDHDemoCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dh-demo",
		Short: "Run a local two-party Diffie-Hellman agreement and print the shared secret",
		RunE:  runDHDemo,
	}
	cmd.Flags().IntVar(&dhDemoSecretLen, "secret-len", 32, "length in bytes of the expanded shared secret")
	return cmd
}

func runDHDemo(cmd *cobra.Command, args []string) error {
	alice := dh.New()
	bob := dh.New()

	if err := alice.GeneratePublic(); err != nil {
		return fmt.Errorf("alice generating public value: %w", err)
	}
	if err := bob.GeneratePublic(); err != nil {
		return fmt.Errorf("bob generating public value: %w", err)
	}

	alicePub, err := alice.GetPublic()
	if err != nil {
		return err
	}
	bobPub, err := bob.GetPublic()
	if err != nil {
		return err
	}

	aliceSecret, err := alice.ComputeSecret(bobPub, dhDemoSecretLen)
	if err != nil {
		return fmt.Errorf("alice computing secret: %w", err)
	}
	bobSecret, err := bob.ComputeSecret(alicePub, dhDemoSecretLen)
	if err != nil {
		return fmt.Errorf("bob computing secret: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "group modulus size: %s\n", humanize.Bytes(uint64(len(dh.GetBytes()))))
	fmt.Fprintf(out, "alice public: %s\n", enc.Base16Encode(alicePub))
	fmt.Fprintf(out, "bob public:   %s\n", enc.Base16Encode(bobPub))

	if !bytes.Equal(aliceSecret, bobSecret) {
		return fmt.Errorf("agreement failed: alice and bob derived different secrets")
	}
	fmt.Fprintf(out, "shared secret (%d bytes): %s\n", len(aliceSecret), enc.Base16Encode(aliceSecret))
	return nil
}
