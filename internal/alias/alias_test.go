package alias

import (
	"testing"

	"github.com/jeffrimko/quickwin/internal/storage"
)

func newTestStore(t *testing.T) (*Store, storage.Blob) {
	t.Helper()
	blob := storage.NewFileBlob(t.TempDir())
	return NewStore(blob, "alias"), blob
}

func TestGetUnaliased(t *testing.T) {
	s, _ := newTestStore(t)
	if got := s.Get("nope"); got != "" {
		t.Fatalf("Get = %q, want empty", got)
	}
}

func TestSetAndGet(t *testing.T) {
	s, _ := newTestStore(t)
	if err := s.Set("win-a", "mail"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if got := s.Get("win-a"); got != "mail" {
		t.Fatalf("Get = %q, want mail", got)
	}
}

func TestAliasUniquenessMoves(t *testing.T) {
	s, _ := newTestStore(t)
	if err := s.Set("win-a", "x"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := s.Set("win-b", "x"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if got := s.Get("win-a"); got != "" {
		t.Fatalf("Get(win-a) = %q, want empty after move", got)
	}
	if got := s.Get("win-b"); got != "x" {
		t.Fatalf("Get(win-b) = %q, want x", got)
	}
}

func TestSetReplacesPriorAlias(t *testing.T) {
	s, _ := newTestStore(t)
	if err := s.Set("win-a", "one"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := s.Set("win-a", "two"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if got := s.Get("win-a"); got != "two" {
		t.Fatalf("Get = %q, want two", got)
	}
}

func TestEmptyAliasClears(t *testing.T) {
	s, _ := newTestStore(t)
	if err := s.Set("win-a", "tag"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := s.Set("win-a", ""); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if got := s.Get("win-a"); got != "" {
		t.Fatalf("Get = %q, want cleared", got)
	}
}

func TestDeleteAll(t *testing.T) {
	s, _ := newTestStore(t)
	if err := s.Set("a", "one"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := s.Set("b", "two"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := s.DeleteAll(); err != nil {
		t.Fatalf("DeleteAll: %v", err)
	}
	if s.Get("a") != "" || s.Get("b") != "" {
		t.Fatal("aliases should be empty after DeleteAll")
	}
}

func TestPruneAgainstUniverseOnSave(t *testing.T) {
	s, blob := newTestStore(t)
	if err := s.Set("stale", "old"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := s.Set("live", "new"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	s.SetKnown([]string{"live"})
	if err := s.Set("live", "renamed"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if got := s.Get("stale"); got != "" {
		t.Fatalf("Get(stale) = %q, want pruned", got)
	}
	reloaded := NewStore(blob, "alias")
	if got := reloaded.Get("stale"); got != "" {
		t.Fatalf("reloaded Get(stale) = %q, want pruned", got)
	}
	if got := reloaded.Get("live"); got != "renamed" {
		t.Fatalf("reloaded Get(live) = %q, want renamed", got)
	}
}

func TestRoundTripPreservesOrder(t *testing.T) {
	blob := storage.NewFileBlob(t.TempDir())
	s := NewStore(blob, "alias")
	pairs := []Record{{"a", "one"}, {"b", "two"}, {"c", "three"}}
	for _, p := range pairs {
		if err := s.Set(p.ID, p.Alias); err != nil {
			t.Fatalf("Set: %v", err)
		}
	}
	reloaded := NewStore(blob, "alias")
	for _, p := range pairs {
		if got := reloaded.Get(p.ID); got != p.Alias {
			t.Fatalf("reloaded Get(%s) = %q, want %q", p.ID, got, p.Alias)
		}
	}
}

func TestMalformedBlobTreatedAsEmpty(t *testing.T) {
	blob := storage.NewFileBlob(t.TempDir())
	if err := blob.Write("alias", []byte("{{")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	s := NewStore(blob, "alias")
	if got := s.Get("anything"); got != "" {
		t.Fatalf("Get = %q, want empty", got)
	}
}
