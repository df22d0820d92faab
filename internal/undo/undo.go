// Package undo persists the single-record journal that reverses the
// most recent mutation of the prompts directory.
package undo

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// Op names the mutation a record reverses.
type Op string

const (
	OpAdd    Op = "add"
	OpRemove Op = "remove"
	OpRename Op = "rename"
)

// Record captures how to reverse the most recent mutation. At most one
// record exists; every mutation overwrites it.
type Record struct {
	Op Op `json:"op"`

	// Source is the path an added file came from
	Source string `json:"source,omitempty"`
	// Dest is the path inside the prompts directory an add landed at,
	// or the original location of a removed prompt
	Dest string `json:"dest,omitempty"`

	// Old and New are the paths before and after a rename
	Old string `json:"old,omitempty"`
	New string `json:"new,omitempty"`

	// Trashed is where a removed prompt went
	Trashed string `json:"trashed,omitempty"`
	// Displaced is the trashed copy of a prompt overwritten by a
	// forced add or rename
	Displaced string `json:"displaced,omitempty"`

	RecordedAt time.Time `json:"recorded_at"`
}

// Load reads the undo record from disk. A missing file yields nil.
func Load(path string) (*Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, err
	}

	return &rec, nil
}

// Save writes the record to disk, creating the parent directory if needed
func Save(path string, rec *Record) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Clear removes the record from disk. A missing file is not an error.
func Clear(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
