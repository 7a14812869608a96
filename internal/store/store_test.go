package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), ".cch", "sessions.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return st
}

// save upserts and then sleeps briefly so successive records get
// distinct timestamps.
func save(t *testing.T, st *Store, id, title string) {
	t.Helper()
	if err := st.Upsert(id, title, "/tmp/"+id); err != nil {
		t.Fatalf("upsert %s: %v", id, err)
	}
	time.Sleep(2 * time.Millisecond)
}

func TestOpenCreatesFileAndDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deep", "nested", "sessions.db")
	st, err := Open(path)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer st.Close()

	if err := st.Upsert("a", "A", "/tmp"); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("database file not created: %v", err)
	}
}

func TestUpsertOverwrites(t *testing.T) {
	st := newTestStore(t)

	save(t, st, "abc123", "First title")
	first, err := st.GetByID("abc123")
	if err != nil {
		t.Fatalf("get: %v", err)
	}

	save(t, st, "abc123", "Second title")

	all, err := st.All()
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected 1 record after re-save, got %d", len(all))
	}
	if all[0].Title != "Second title" {
		t.Errorf("expected overwritten title, got %q", all[0].Title)
	}
	if all[0].CreatedAt <= first.CreatedAt {
		t.Errorf("created_at not updated: %q -> %q", first.CreatedAt, all[0].CreatedAt)
	}
}

func TestListLimitAndOrder(t *testing.T) {
	st := newTestStore(t)
	save(t, st, "one", "Oldest")
	save(t, st, "two", "Middle")
	save(t, st, "three", "Newest")

	sessions, err := st.List(2)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(sessions) != 2 {
		t.Fatalf("expected 2 sessions, got %d", len(sessions))
	}
	if sessions[0].Title != "Newest" || sessions[1].Title != "Middle" {
		t.Errorf("wrong order: %q, %q", sessions[0].Title, sessions[1].Title)
	}

	sessions, err = st.List(10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(sessions) != 3 {
		t.Errorf("expected all 3 sessions under a large limit, got %d", len(sessions))
	}
	for i := 1; i < len(sessions); i++ {
		if sessions[i-1].CreatedAt < sessions[i].CreatedAt {
			t.Errorf("sessions not sorted descending at index %d", i)
		}
	}
}

func TestSearchMatchesTitleOrID(t *testing.T) {
	st := newTestStore(t)
	save(t, st, "abc123", "Fix login bug")
	save(t, st, "def456", "Add dashboard")

	byTitle, err := st.Search("login")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(byTitle) != 1 || byTitle[0].ID != "abc123" {
		t.Errorf("title search failed: %+v", byTitle)
	}

	byID, err := st.Search("ef45")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(byID) != 1 || byID[0].ID != "def456" {
		t.Errorf("id search failed: %+v", byID)
	}

	none, err := st.Search("nothing")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(none) != 0 {
		t.Errorf("expected no matches, got %d", len(none))
	}
}

func TestSearchIsCaseSensitive(t *testing.T) {
	st := newTestStore(t)
	save(t, st, "abc123", "Fix login bug")

	upper, err := st.Search("LOGIN")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(upper) != 0 {
		t.Errorf("search must be case-sensitive, got %+v", upper)
	}

	upperID, err := st.Search("ABC")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(upperID) != 0 {
		t.Errorf("id search must be case-sensitive, got %+v", upperID)
	}

	lower, err := st.Search("login")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(lower) != 1 {
		t.Errorf("expected exact-case match, got %d", len(lower))
	}
}

func TestIDMatchingIsCaseSensitive(t *testing.T) {
	st := newTestStore(t)
	save(t, st, "abc123", "A")

	sess, err := st.FindByIDPattern("ABC")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if sess != nil {
		t.Errorf("substring lookup must be case-sensitive, got %+v", sess)
	}

	n, err := st.DeleteByPattern("ABC")
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if n != 0 {
		t.Errorf("pattern delete must be case-sensitive, removed %d", n)
	}
}

func TestSearchTreatsWildcardsLiterally(t *testing.T) {
	st := newTestStore(t)
	save(t, st, "plain", "No special chars")
	save(t, st, "odd_one", "100% done")

	pct, err := st.Search("%")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(pct) != 1 || pct[0].ID != "odd_one" {
		t.Errorf("%% should only match literal percent signs: %+v", pct)
	}

	und, err := st.Search("_")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(und) != 1 || und[0].ID != "odd_one" {
		t.Errorf("_ should only match literal underscores: %+v", und)
	}
}

func TestAllEmptyIsNotNil(t *testing.T) {
	st := newTestStore(t)
	sessions, err := st.All()
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if sessions == nil {
		t.Error("expected empty slice, got nil")
	}
	if len(sessions) != 0 {
		t.Errorf("expected no sessions, got %d", len(sessions))
	}
}

func TestDeleteByIDExactOnly(t *testing.T) {
	st := newTestStore(t)
	save(t, st, "abc", "Short")
	save(t, st, "abc123", "Long")

	n, err := st.DeleteByID("abc")
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1 deleted, got %d", n)
	}

	remaining, err := st.All()
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(remaining) != 1 || remaining[0].ID != "abc123" {
		t.Errorf("superset id should survive exact delete: %+v", remaining)
	}
}

func TestDeleteByIDMissing(t *testing.T) {
	st := newTestStore(t)
	n, err := st.DeleteByID("ghost")
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if n != 0 {
		t.Errorf("expected 0 deleted, got %d", n)
	}
}

func TestDeleteByPatternRemovesAllMatches(t *testing.T) {
	st := newTestStore(t)
	save(t, st, "work-1", "A")
	save(t, st, "work-2", "B")
	save(t, st, "play-1", "C")

	n, err := st.DeleteByPattern("work")
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if n != 2 {
		t.Fatalf("expected 2 deleted, got %d", n)
	}

	remaining, err := st.All()
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(remaining) != 1 || remaining[0].ID != "play-1" {
		t.Errorf("unexpected remaining sessions: %+v", remaining)
	}
}

func TestSaveThenDeleteRoundTrip(t *testing.T) {
	st := newTestStore(t)
	if err := st.Upsert("abc123", "Fix bug", "/home/me/proj"); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	sessions, err := st.List(5)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(sessions) != 1 || sessions[0].Title != "Fix bug" || sessions[0].ID != "abc123" {
		t.Fatalf("unexpected listing: %+v", sessions)
	}

	if _, err := st.DeleteByID("abc123"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	sessions, err = st.List(5)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(sessions) != 0 {
		t.Errorf("expected empty store after delete, got %d", len(sessions))
	}
}
