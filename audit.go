// audit.go: optional rejection audit trail.
//
// The core contract in doc.go never requires this: a caller that wants to
// observe rejections wires a RejectionAuditor in with WithAuditor. Everything
// else about PathCheck/NameCheck/FileNameCheck is unaffected by its presence.
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package aegis

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/agilira/go-timecache"
)

// RejectionEvent records one call to an entry point, successful or not.
type RejectionEvent struct {
	Timestamp  time.Time `json:"timestamp"`
	EntryPoint string    `json:"entry_point"`
	Accepted   bool      `json:"accepted"`
	Kind       ErrorKind `json:"kind,omitempty"`
	Detail     string    `json:"detail,omitempty"`
	ProcessID  int       `json:"process_id"`
	Checksum   string    `json:"checksum"`
}

// AuditConfig configures a RejectionAuditor.
type AuditConfig struct {
	OutputFile    string
	BufferSize    int
	FlushInterval time.Duration
	// OnReject, if set, is invoked synchronously for every observed call,
	// rejected or accepted (accepted tells which), in addition to buffering
	// (the "single optional callback" hook a host can wire into its own
	// observability stack).
	OnReject func(kind ErrorKind, accepted bool)
}

// DefaultAuditConfig returns a RejectionAuditor configuration writing to a
// JSONL file under the OS temp directory.
func DefaultAuditConfig() AuditConfig {
	return AuditConfig{
		OutputFile:    filepath.Join(os.TempDir(), "aegis", "rejections.jsonl"),
		BufferSize:    1000,
		FlushInterval: 5 * time.Second,
	}
}

// RejectionAuditor buffers RejectionEvents and periodically flushes them as
// tamper-evident JSONL. It never influences the outcome of a call, it only
// observes.
type RejectionAuditor struct {
	config      AuditConfig
	file        *os.File
	buffer      []RejectionEvent
	bufferMu    sync.Mutex
	flushTicker *time.Ticker
	stopCh      chan struct{}
	processID   int
}

// NewRejectionAuditor opens (creating if needed) the configured output file,
// if any, and starts the background flush loop when FlushInterval is positive.
func NewRejectionAuditor(config AuditConfig) (*RejectionAuditor, error) {
	auditor := &RejectionAuditor{
		config:    config,
		buffer:    make([]RejectionEvent, 0, config.BufferSize),
		stopCh:    make(chan struct{}),
		processID: os.Getpid(),
	}

	if config.OutputFile != "" {
		if err := os.MkdirAll(filepath.Dir(config.OutputFile), 0750); err != nil {
			return nil, fmt.Errorf("aegis: create audit directory: %w", err)
		}
		file, err := os.OpenFile(config.OutputFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if err != nil {
			return nil, fmt.Errorf("aegis: open audit file: %w", err)
		}
		auditor.file = file
	}

	if config.FlushInterval > 0 {
		auditor.flushTicker = time.NewTicker(config.FlushInterval)
		go auditor.flushLoop()
	}

	return auditor, nil
}

// ObserveExternal records a rejection event for an entry point that does
// not accept Options, such as NameCheck and FileNameCheck. A caller that
// wants those calls audited invokes this explicitly with the result.
func (a *RejectionAuditor) ObserveExternal(entryPoint string, err error) {
	a.observe(entryPoint, "", err)
}

// observe is called by PathCheck (through WithAuditor) on every call,
// success or failure, and by ObserveExternal.
func (a *RejectionAuditor) observe(entryPoint, _ string, err error) {
	accepted := err == nil
	var kind ErrorKind
	var detail string
	if !accepted {
		kind, _ = KindOf(err)
		detail = err.Error()
	}

	event := RejectionEvent{
		Timestamp:  timecache.CachedTime(),
		EntryPoint: entryPoint,
		Accepted:   accepted,
		Kind:       kind,
		Detail:     detail,
		ProcessID:  a.processID,
	}
	event.Checksum = a.generateChecksum(event)

	a.bufferMu.Lock()
	a.buffer = append(a.buffer, event)
	if len(a.buffer) >= a.config.BufferSize {
		a.flushBufferUnsafe()
	}
	a.bufferMu.Unlock()

	if a.config.OnReject != nil {
		a.config.OnReject(kind, accepted)
	}
}

// Flush immediately writes all buffered events.
func (a *RejectionAuditor) Flush() error {
	a.bufferMu.Lock()
	defer a.bufferMu.Unlock()
	return a.flushBufferUnsafe()
}

// Close stops the flush loop, flushes one last time, and closes the file.
func (a *RejectionAuditor) Close() error {
	close(a.stopCh)
	if a.flushTicker != nil {
		a.flushTicker.Stop()
	}
	if err := a.Flush(); err != nil {
		return err
	}
	if a.file != nil {
		return a.file.Close()
	}
	return nil
}

func (a *RejectionAuditor) flushLoop() {
	for {
		select {
		case <-a.flushTicker.C:
			a.Flush()
		case <-a.stopCh:
			return
		}
	}
}

func (a *RejectionAuditor) flushBufferUnsafe() error {
	if len(a.buffer) == 0 || a.file == nil {
		return nil
	}
	for _, event := range a.buffer {
		data, err := json.Marshal(event)
		if err != nil {
			continue
		}
		a.file.Write(data)
		a.file.Write([]byte("\n"))
	}
	a.file.Sync()
	a.buffer = a.buffer[:0]
	return nil
}

func (a *RejectionAuditor) generateChecksum(event RejectionEvent) string {
	data := fmt.Sprintf("%s:%s:%v:%s",
		event.Timestamp.Format(time.RFC3339Nano), event.EntryPoint, event.Accepted, event.Kind)
	hash := sha256.Sum256([]byte(data))
	return fmt.Sprintf("%x", hash)
}
