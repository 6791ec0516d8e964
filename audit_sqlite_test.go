package aegis

import (
	"path/filepath"
	"testing"
	"time"
)

func TestSQLiteAuditStoreWriteAndCount(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "rejections.db")

	store, err := OpenSQLiteAuditStore(dbPath)
	if err != nil {
		t.Fatalf("OpenSQLiteAuditStore: %v", err)
	}
	defer store.Close()

	events := []RejectionEvent{
		{Timestamp: time.Now(), EntryPoint: "PathCheck", Accepted: false, Kind: ContainmentErrorKind, Detail: "escapes base", ProcessID: 1, Checksum: "a"},
		{Timestamp: time.Now(), EntryPoint: "PathCheck", Accepted: false, Kind: ContainmentErrorKind, Detail: "escapes base again", ProcessID: 1, Checksum: "b"},
		{Timestamp: time.Now(), EntryPoint: "NameCheck", Accepted: false, Kind: ReservedNameErrorKind, Detail: "CON is reserved", ProcessID: 1, Checksum: "c"},
	}
	if err := store.Write(events); err != nil {
		t.Fatalf("Write: %v", err)
	}

	count, err := store.CountByKind(ContainmentErrorKind)
	if err != nil {
		t.Fatalf("CountByKind: %v", err)
	}
	if count != 2 {
		t.Fatalf("CountByKind(ContainmentErrorKind) = %d, want 2", count)
	}

	count, err = store.CountByKind(ReservedNameErrorKind)
	if err != nil {
		t.Fatalf("CountByKind: %v", err)
	}
	if count != 1 {
		t.Fatalf("CountByKind(ReservedNameErrorKind) = %d, want 1", count)
	}
}

func TestSQLiteAuditStorePrune(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "rejections.db")
	store, err := OpenSQLiteAuditStore(dbPath)
	if err != nil {
		t.Fatalf("OpenSQLiteAuditStore: %v", err)
	}
	defer store.Close()

	old := time.Now().Add(-48 * time.Hour)
	recent := time.Now()
	events := []RejectionEvent{
		{Timestamp: old, EntryPoint: "PathCheck", Kind: ContainmentErrorKind, ProcessID: 1, Checksum: "old"},
		{Timestamp: recent, EntryPoint: "PathCheck", Kind: ContainmentErrorKind, ProcessID: 1, Checksum: "new"},
	}
	if err := store.Write(events); err != nil {
		t.Fatalf("Write: %v", err)
	}

	boundary := time.Now().Add(-24 * time.Hour).Format("2006-01-02T15:04:05.000000000Z07:00")
	pruned, err := store.Prune(boundary)
	if err != nil {
		t.Fatalf("Prune: %v", err)
	}
	if pruned != 1 {
		t.Fatalf("Prune deleted %d rows, want 1", pruned)
	}
}
