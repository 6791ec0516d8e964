// Package cli provides the command-line interface for the aegis path-safety
// validator.
//
// This package implements a thin Orpheus-powered wrapper around the three
// library entry points: check (PathCheck), name (NameCheck), and filename
// (FileNameCheck), plus an audit query command over an optional SQLite
// rejection store.
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package cli

import (
	"github.com/agilira/orpheus/pkg/orpheus"
)

// Manager orchestrates the aegis CLI, built on top of Orpheus for
// git-style subcommands and fast flag parsing.
type Manager struct {
	app       *orpheus.App
	auditPath string // not set by any command; audit query reads its database path from --db
}

// NewManager builds the command tree and returns a ready-to-run Manager.
func NewManager() *Manager {
	app := orpheus.New("aegis").
		SetDescription("Path-safety validation: reject traversal, encoding, and Unicode evasion before it touches disk").
		SetVersion("1.0.0")

	m := &Manager{app: app}

	app.AddGlobalFlag("audit-log", "", "", "Optional JSONL file to record rejection events to")

	m.setupCheckCommand()
	m.setupNameCommand()
	m.setupFilenameCommand()
	m.setupAuditCommand()

	return m
}

// Run executes the CLI with the given arguments (typically os.Args[1:]).
func (m *Manager) Run(args []string) error {
	return m.app.Run(args)
}

func (m *Manager) setupCheckCommand() {
	checkCmd := orpheus.NewCommand("check", "Validate a path against a trusted base directory").
		AddFlag("base", "b", "", "Base directory the path must resolve within (required)").
		AddBoolFlag("allow-temp-roots", "", false, "Permit /tmp, /var/tmp and similar temp roots (Rule Group 7 override)").
		SetHandler(m.handleCheck)
	m.app.AddCommand(checkCmd)
}

func (m *Manager) setupNameCommand() {
	nameCmd := orpheus.NewCommand("name", "Validate a project or identifier name").
		SetHandler(m.handleName)
	m.app.AddCommand(nameCmd)
}

func (m *Manager) setupFilenameCommand() {
	filenameCmd := orpheus.NewCommand("filename", "Validate a bare filename (no separators)").
		SetHandler(m.handleFilename)
	m.app.AddCommand(filenameCmd)
}

func (m *Manager) setupAuditCommand() {
	auditCmd := orpheus.NewCommand("audit", "Inspect a SQLite rejection audit store")

	queryCmd := auditCmd.Subcommand("query", "Count stored rejections by kind", m.handleAuditQuery)
	queryCmd.AddFlag("db", "", "", "SQLite audit database to query (required)")
	queryCmd.AddFlag("kind", "k", "", "Error kind to count (e.g. AEGIS_CONTAINMENT)")

	m.app.AddCommand(auditCmd)
}
