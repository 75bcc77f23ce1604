package finboard

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// Well-known keys of the local preference cache.
const (
	themeFile       = "theme"
	userRecordsFile = "records.jsonl"
)

// DefaultTheme is used when no theme preference is stored.
const DefaultTheme = "dark"

// Prefs is a tiny key-value cache on disk for the session-crossing
// extras: the theme preference and the user-added records. A missing
// or malformed entry is never an error; it reads as the default and is
// silently replaced on the next save.
type Prefs struct {
	dir string
}

// OpenPrefs returns the preference cache rooted at dir, creating the
// directory when needed.
func OpenPrefs(dir string) (*Prefs, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &Prefs{dir: dir}, nil
}

// Theme returns the stored theme preference, or DefaultTheme when none
// is stored or the entry is unreadable.
func (p *Prefs) Theme() string {
	b, err := os.ReadFile(filepath.Join(p.dir, themeFile))
	if err != nil {
		return DefaultTheme
	}
	theme := string(bytes.TrimSpace(b))
	if theme == "" {
		return DefaultTheme
	}
	return theme
}

// SetTheme stores the theme preference.
func (p *Prefs) SetTheme(theme string) error {
	return os.WriteFile(filepath.Join(p.dir, themeFile), []byte(theme+"\n"), 0644)
}

// UserRecords returns the user-added records stored in the cache. A
// missing or malformed file reads as no records.
func (p *Prefs) UserRecords() []Record {
	f, err := os.Open(filepath.Join(p.dir, userRecordsFile))
	if err != nil {
		return nil
	}
	defer f.Close()
	records, err := DecodeRecords(f)
	if err != nil {
		// Malformed cache entries are a cache miss, not an error.
		return nil
	}
	return records
}

// AppendUserRecord appends one record to the user records file,
// creating it when needed.
func (p *Prefs) AppendUserRecord(r Record) error {
	f, err := os.OpenFile(filepath.Join(p.dir, userRecordsFile), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer f.Close()
	return EncodeRecord(f, r)
}

// Reset drops the user records entry. A missing entry is fine.
func (p *Prefs) Reset() error {
	err := os.Remove(filepath.Join(p.dir, userRecordsFile))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
