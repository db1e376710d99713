// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

// Package cmd implements torctl's subcommands: a small command-line
// harness exercising the facade (RSA key generation and fingerprinting,
// hybrid file encryption, and a local Diffie-Hellman agreement demo).
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ParkerWen/tor"
)

// RootCmd is torctl's base command.
var RootCmd = &cobra.Command{
	Use:   "torctl",
	Short: "Exercise the facade's RSA, hybrid, and DH primitives from the command line",
	Long: `torctl is a small harness around this module's cryptographic facade:
RSA key generation and fingerprinting, hybrid (RSA+AES-CTR) file encryption,
and a local two-party Diffie-Hellman agreement demo.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return tor.Initialize()
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		tor.Teardown()
	},
}

// Execute runs torctl, exiting the process with status 1 on error.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "torctl: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	RootCmd.AddCommand(NewGenKeyCommand())
	RootCmd.AddCommand(NewFingerprintCommand())
	RootCmd.AddCommand(NewEncryptCommand())
	RootCmd.AddCommand(NewDecryptCommand())
	RootCmd.AddCommand(NewDHDemoCommand())
}
