// Command aegis is a thin CLI wrapper over the aegis path-safety library.
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package main

import (
	"fmt"
	"os"

	"github.com/agilira/orpheus/pkg/orpheus"

	"github.com/agilira/aegis/internal/cli"
)

func main() {
	manager := cli.NewManager()

	if err := manager.Run(os.Args[1:]); err != nil {
		if orpheusErr, ok := err.(*orpheus.OrpheusError); ok {
			fmt.Fprintf(os.Stderr, "aegis: %s\n", orpheusErr.UserMessage())
			os.Exit(orpheusErr.ExitCode())
		}
		fmt.Fprintf(os.Stderr, "aegis: %s\n", err.Error())
		os.Exit(1)
	}
}
