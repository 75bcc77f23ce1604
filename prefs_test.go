package finboard

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestPrefsTheme(t *testing.T) {
	prefs, err := OpenPrefs(t.TempDir())
	if err != nil {
		t.Fatalf("OpenPrefs() error = %v", err)
	}

	if got := prefs.Theme(); got != DefaultTheme {
		t.Errorf("default theme = %q, want %q", got, DefaultTheme)
	}

	if err := prefs.SetTheme("light"); err != nil {
		t.Fatalf("SetTheme() error = %v", err)
	}
	if got := prefs.Theme(); got != "light" {
		t.Errorf("theme = %q, want light", got)
	}
}

func TestPrefsThemeMalformed(t *testing.T) {
	dir := t.TempDir()
	prefs, err := OpenPrefs(dir)
	if err != nil {
		t.Fatalf("OpenPrefs() error = %v", err)
	}

	// Whitespace-only entry reads as the default.
	os.WriteFile(filepath.Join(dir, "theme"), []byte("  \n"), 0644)
	if got := prefs.Theme(); got != DefaultTheme {
		t.Errorf("malformed theme = %q, want %q", got, DefaultTheme)
	}
}

func TestPrefsUserRecords(t *testing.T) {
	prefs, err := OpenPrefs(t.TempDir())
	if err != nil {
		t.Fatalf("OpenPrefs() error = %v", err)
	}

	if got := prefs.UserRecords(); got != nil {
		t.Errorf("fresh cache returned %d records, want none", len(got))
	}

	r1 := expense(NewDate(2026, time.January, 24), "Coffee", Food, 4.50)
	r2 := income(NewDate(2026, time.January, 25), "Refund", Other, 20)
	if err := prefs.AppendUserRecord(r1); err != nil {
		t.Fatalf("AppendUserRecord() error = %v", err)
	}
	if err := prefs.AppendUserRecord(r2); err != nil {
		t.Fatalf("AppendUserRecord() error = %v", err)
	}

	got := prefs.UserRecords()
	if len(got) != 2 {
		t.Fatalf("got %d records, want 2", len(got))
	}
	if got[0].ID != r1.ID || got[1].ID != r2.ID {
		t.Error("records came back in the wrong order")
	}

	if err := prefs.Reset(); err != nil {
		t.Fatalf("Reset() error = %v", err)
	}
	if got := prefs.UserRecords(); got != nil {
		t.Error("records survived a reset")
	}
	// Resetting twice is fine.
	if err := prefs.Reset(); err != nil {
		t.Errorf("second Reset() error = %v", err)
	}
}

func TestPrefsUserRecordsMalformed(t *testing.T) {
	dir := t.TempDir()
	prefs, err := OpenPrefs(dir)
	if err != nil {
		t.Fatalf("OpenPrefs() error = %v", err)
	}

	os.WriteFile(filepath.Join(dir, "records.jsonl"), []byte("{not json\n"), 0644)
	if got := prefs.UserRecords(); got != nil {
		t.Errorf("malformed cache returned %d records, want none", len(got))
	}
}
