package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/louisbranch/gamedata/internal/storage"
)

func openTempStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(context.Background(), filepath.Join(t.TempDir(), "gamedata.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Fatalf("close store: %v", err)
		}
	})
	return store
}

func TestOpenRequiresPath(t *testing.T) {
	t.Parallel()

	if _, err := Open(context.Background(), ""); err == nil {
		t.Fatal("expected empty path error")
	}
}

func TestReplaceListNPCClassesRoundTrip(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	now := time.Date(2026, time.March, 3, 10, 0, 0, 0, time.UTC)
	input := []storage.NPCClassRecord{
		{ID: "NC_TEST", Position: 1, Name: "Tester", JobDescription: "I test things.", Common: false, BonusStr: "2", BonusDex: "1d4", ExportedAt: now},
		{ID: "NC_NONE", Position: 0, Name: "No class", JobDescription: "None.", Common: true, ExportedAt: now},
	}
	if err := store.ReplaceNPCClasses(context.Background(), input); err != nil {
		t.Fatalf("replace npc classes: %v", err)
	}

	got, err := store.ListNPCClasses(context.Background())
	if err != nil {
		t.Fatalf("list npc classes: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("records = %d, want 2", len(got))
	}
	if got[0].ID != "NC_NONE" || got[1].ID != "NC_TEST" {
		t.Fatalf("order = %s,%s, want NC_NONE,NC_TEST", got[0].ID, got[1].ID)
	}
	test := got[1]
	if test.Name != "Tester" || test.JobDescription != "I test things." {
		t.Fatalf("text = %q/%q", test.Name, test.JobDescription)
	}
	if test.Common {
		t.Fatal("expected common false")
	}
	if test.BonusStr != "2" || test.BonusDex != "1d4" || test.BonusInt != "0" || test.BonusPer != "0" {
		t.Fatalf("bonuses = %s/%s/%s/%s", test.BonusStr, test.BonusDex, test.BonusInt, test.BonusPer)
	}
	if !test.ExportedAt.Equal(now) {
		t.Fatalf("exported_at = %v, want %v", test.ExportedAt, now)
	}
	if !got[0].Common {
		t.Fatal("expected NC_NONE common")
	}
}

func TestReplaceNPCClassesDropsPreviousSnapshot(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	ctx := context.Background()
	if err := store.ReplaceNPCClasses(ctx, []storage.NPCClassRecord{{ID: "NC_OLD", Name: "Old", JobDescription: "x"}}); err != nil {
		t.Fatalf("first export: %v", err)
	}
	if err := store.ReplaceNPCClasses(ctx, []storage.NPCClassRecord{{ID: "NC_NEW", Name: "New", JobDescription: "y"}}); err != nil {
		t.Fatalf("second export: %v", err)
	}

	got, err := store.ListNPCClasses(ctx)
	if err != nil {
		t.Fatalf("list npc classes: %v", err)
	}
	if len(got) != 1 || got[0].ID != "NC_NEW" {
		t.Fatalf("records = %+v, want only NC_NEW", got)
	}
	if got[0].ExportedAt.IsZero() {
		t.Fatal("expected exported_at to default to now")
	}
}

func TestReplaceNPCClassesRejectsEmptyID(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	ctx := context.Background()
	if err := store.ReplaceNPCClasses(ctx, []storage.NPCClassRecord{{ID: "NC_KEEP", Name: "Keep", JobDescription: "x"}}); err != nil {
		t.Fatalf("seed export: %v", err)
	}
	if err := store.ReplaceNPCClasses(ctx, []storage.NPCClassRecord{{ID: "  "}}); err == nil {
		t.Fatal("expected empty id error")
	}

	got, err := store.ListNPCClasses(ctx)
	if err != nil {
		t.Fatalf("list npc classes: %v", err)
	}
	if len(got) != 1 || got[0].ID != "NC_KEEP" {
		t.Fatalf("records = %+v, want NC_KEEP untouched", got)
	}
}

func TestReplaceNPCClassesRollsBackOnDuplicate(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	ctx := context.Background()
	if err := store.ReplaceNPCClasses(ctx, []storage.NPCClassRecord{{ID: "NC_KEEP", Name: "Keep", JobDescription: "x"}}); err != nil {
		t.Fatalf("seed export: %v", err)
	}
	dup := []storage.NPCClassRecord{
		{ID: "NC_DUP", Name: "a", JobDescription: "a"},
		{ID: "NC_DUP", Name: "b", JobDescription: "b"},
	}
	if err := store.ReplaceNPCClasses(ctx, dup); err == nil {
		t.Fatal("expected duplicate id error")
	}

	got, err := store.ListNPCClasses(ctx)
	if err != nil {
		t.Fatalf("list npc classes: %v", err)
	}
	if len(got) != 1 || got[0].ID != "NC_KEEP" {
		t.Fatalf("records = %+v, want previous snapshot kept", got)
	}
}

func TestStoreMethodsHonorCancelledContext(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := store.ReplaceNPCClasses(ctx, nil); !errors.Is(err, context.Canceled) {
		t.Fatalf("replace err = %v, want context canceled", err)
	}
	if _, err := store.ListNPCClasses(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("list err = %v, want context canceled", err)
	}
}

func TestNilStoreIsNotConfigured(t *testing.T) {
	t.Parallel()

	var store *Store
	if err := store.Close(); err != nil {
		t.Fatalf("close nil store: %v", err)
	}
	if err := store.ReplaceNPCClasses(context.Background(), nil); err == nil {
		t.Fatal("expected not configured error")
	}
}
