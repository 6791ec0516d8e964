// handlers.go: command handler implementations for the aegis CLI.
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package cli

import (
	"fmt"

	"github.com/agilira/aegis"
	"github.com/agilira/orpheus/pkg/orpheus"
)

func (m *Manager) handleCheck(ctx *orpheus.Context) error {
	base := ctx.GetFlagString("base")
	if base == "" {
		return orpheus.ValidationError("check", "--base is required").
			WithUserMessage("Provide the trusted base directory with --base")
	}
	if ctx.ArgCount() < 1 {
		return orpheus.ValidationError("check", "a path argument is required")
	}
	input := ctx.GetArg(0)

	var opts []aegis.Option
	if ctx.GetFlagBool("allow-temp-roots") {
		opts = append(opts, aegis.WithRootPolicy(aegis.RootPolicy{AllowTempRoots: true}))
	}

	auditor, closeAuditor, err := m.openAuditorIfConfigured(ctx)
	if err != nil {
		return err
	}
	defer closeAuditor()
	if auditor != nil {
		opts = append(opts, aegis.WithAuditor(auditor))
	}

	result, err := aegis.PathCheck(input, base, opts...)
	if err != nil {
		return reportRejection("check", err)
	}

	fmt.Println(result)
	return nil
}

func (m *Manager) handleName(ctx *orpheus.Context) error {
	if ctx.ArgCount() < 1 {
		return orpheus.ValidationError("name", "a name argument is required")
	}

	auditor, closeAuditor, err := m.openAuditorIfConfigured(ctx)
	if err != nil {
		return err
	}
	defer closeAuditor()

	result, err := aegis.NameCheck(ctx.GetArg(0))
	if auditor != nil {
		auditor.ObserveExternal("name", err)
	}
	if err != nil {
		return reportRejection("name", err)
	}
	fmt.Println(result)
	return nil
}

func (m *Manager) handleFilename(ctx *orpheus.Context) error {
	if ctx.ArgCount() < 1 {
		return orpheus.ValidationError("filename", "a filename argument is required")
	}

	auditor, closeAuditor, err := m.openAuditorIfConfigured(ctx)
	if err != nil {
		return err
	}
	defer closeAuditor()

	result, err := aegis.FileNameCheck(ctx.GetArg(0))
	if auditor != nil {
		auditor.ObserveExternal("filename", err)
	}
	if err != nil {
		return reportRejection("filename", err)
	}
	fmt.Println(result)
	return nil
}

func (m *Manager) handleAuditQuery(ctx *orpheus.Context) error {
	dbPath := ctx.GetFlagString("db")
	if dbPath == "" {
		return orpheus.ValidationError("audit query", "--db is required")
	}
	store, err := aegis.OpenSQLiteAuditStore(dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	kind := ctx.GetFlagString("kind")
	count, err := store.CountByKind(aegis.ErrorKind(kind))
	if err != nil {
		return err
	}
	fmt.Printf("%s: %d\n", kind, count)
	return nil
}

// openAuditorIfConfigured opens the JSONL RejectionAuditor named by the
// global --audit-log flag, if any. A command with no --audit-log runs with
// no observability overhead at all.
func (m *Manager) openAuditorIfConfigured(ctx *orpheus.Context) (*aegis.RejectionAuditor, func(), error) {
	logPath := ctx.GetGlobalFlagString("audit-log")
	if logPath == "" {
		return nil, func() {}, nil
	}
	auditor, err := aegis.NewRejectionAuditor(aegis.AuditConfig{
		OutputFile:    logPath,
		BufferSize:    1,
		FlushInterval: 0,
	})
	if err != nil {
		return nil, func() {}, err
	}
	return auditor, func() { auditor.Close() }, nil
}

// reportRejection surfaces an aegis error through Orpheus with its kind
// preserved, so scripted callers can branch on exit code or stderr text.
func reportRejection(command string, err error) error {
	kind, _ := aegis.KindOf(err)
	return orpheus.ValidationError(command, err.Error()).
		WithContext("kind", string(kind))
}
