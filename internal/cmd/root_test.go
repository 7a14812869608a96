package cmd

import (
	"os"
	"testing"
)

func TestShorthandSave(t *testing.T) {
	tests := []struct {
		args  []string
		id    string
		title string
		ok    bool
	}{
		{[]string{"abc123", "Fix bug"}, "abc123", "Fix bug", true},
		{[]string{"abc123", "Fix bug", "extra"}, "abc123", "Fix bug", true},
		{[]string{"save", "abc123", "Fix bug"}, "", "", false},
		{[]string{"ls"}, "", "", false},
		{[]string{"r", "1"}, "", "", false},
		{[]string{"rm", "abc"}, "", "", false},
		{[]string{"web", "extra"}, "", "", false},
		{[]string{"completion", "bash"}, "", "", false},
		{[]string{"--help", "x"}, "", "", false},
		{[]string{"-p", "5112"}, "", "", false},
		{[]string{"--bogus", "value"}, "", "", false},
		{[]string{"abc123"}, "", "", false},
		{nil, "", "", false},
	}
	for _, tt := range tests {
		id, title, ok := shorthandSave(tt.args)
		if id != tt.id || title != tt.title || ok != tt.ok {
			t.Errorf("shorthandSave(%v) = (%q, %q, %v), want (%q, %q, %v)",
				tt.args, id, title, ok, tt.id, tt.title, tt.ok)
		}
	}
}

func TestRunSavePersistsRecord(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	if err := runSave("abc123", "Fix bug"); err != nil {
		t.Fatalf("save: %v", err)
	}

	st, err := openStore()
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer st.Close()

	sessions, err := st.List(5)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(sessions) != 1 {
		t.Fatalf("expected 1 session, got %d", len(sessions))
	}
	if sessions[0].ID != "abc123" || sessions[0].Title != "Fix bug" {
		t.Errorf("unexpected record: %+v", sessions[0])
	}
	wd, _ := os.Getwd()
	if sessions[0].Pwd != wd {
		t.Errorf("expected working directory %q, got %q", wd, sessions[0].Pwd)
	}
}

func TestShortID(t *testing.T) {
	if got := shortID("abcdefghij"); got != "abcdefgh" {
		t.Errorf("unexpected short id: %q", got)
	}
	if got := shortID("abc"); got != "abc" {
		t.Errorf("short ids should pass through: %q", got)
	}
}
