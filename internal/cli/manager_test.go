// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCheckCommandAcceptsCleanPath(t *testing.T) {
	base := t.TempDir()
	if err := os.MkdirAll(filepath.Join(base, "user"), 0755); err != nil {
		t.Fatal(err)
	}

	manager := NewManager()
	err := manager.Run([]string{"check", "--base", base, "user/document.pdf"})
	if err != nil {
		t.Fatalf("expected check to accept a clean path, got %v", err)
	}
}

func TestCheckCommandRejectsTraversal(t *testing.T) {
	base := t.TempDir()

	manager := NewManager()
	err := manager.Run([]string{"check", "--base", base, "../../../etc/passwd"})
	if err == nil {
		t.Fatal("expected check to reject a traversal attempt")
	}
}

func TestCheckCommandRequiresBase(t *testing.T) {
	manager := NewManager()
	err := manager.Run([]string{"check", "user/document.pdf"})
	if err == nil {
		t.Fatal("expected an error when --base is missing")
	}
}

func TestNameCommand(t *testing.T) {
	manager := NewManager()
	if err := manager.Run([]string{"name", "my-project"}); err != nil {
		t.Fatalf("expected valid name to be accepted, got %v", err)
	}
	if err := manager.Run([]string{"name", "CON"}); err == nil {
		t.Fatal("expected reserved name to be rejected")
	}
}

func TestFilenameCommand(t *testing.T) {
	manager := NewManager()
	if err := manager.Run([]string{"filename", "report.pdf"}); err != nil {
		t.Fatalf("expected valid filename to be accepted, got %v", err)
	}
	if err := manager.Run([]string{"filename", "file.txt::$DATA"}); err == nil {
		t.Fatal("expected NTFS stream filename to be rejected")
	}
}

func TestCheckCommandWithAuditLog(t *testing.T) {
	base := t.TempDir()
	logPath := filepath.Join(t.TempDir(), "rejections.jsonl")

	manager := NewManager()
	err := manager.Run([]string{"--audit-log", logPath, "check", "--base", base, "/etc/passwd"})
	if err == nil {
		t.Fatal("expected rejection")
	}

	data, readErr := os.ReadFile(logPath)
	if readErr != nil {
		t.Fatalf("reading audit log: %v", readErr)
	}
	if len(data) == 0 {
		t.Fatal("expected a recorded rejection event")
	}
}

func TestAuditQueryRequiresDB(t *testing.T) {
	manager := NewManager()
	err := manager.Run([]string{"audit", "query"})
	if err == nil {
		t.Fatal("expected an error when --db is missing")
	}
}
