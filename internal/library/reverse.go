package library

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pmpts/pmpts/internal/errors"
	"github.com/pmpts/pmpts/internal/prompt"
	"github.com/pmpts/pmpts/internal/undo"
)

// Undo reverses rec against the current state of the prompts directory
// and returns a description of what was done. The directory may have
// changed since the record was written: a missing file to restore is
// NotFound, an occupied destination is Conflict, and nothing is
// overwritten either way.
func (l *Library) Undo(rec *undo.Record) (string, error) {
	switch rec.Op {
	case undo.OpAdd:
		return l.undoAdd(rec)
	case undo.OpRemove:
		return l.undoRemove(rec)
	case undo.OpRename:
		return l.undoRename(rec)
	default:
		return "", errors.Invalid("unknown operation '%s' in undo record", rec.Op)
	}
}

// undoAdd moves the added prompt back to where it came from, then puts a
// displaced prompt back in its place.
func (l *Library) undoAdd(rec *undo.Record) (string, error) {
	name := prompt.DisplayName(filepath.Base(rec.Dest))

	if _, err := os.Stat(rec.Dest); err != nil {
		if os.IsNotExist(err) {
			return "", errors.NotFound("cannot undo add: prompt '%s' is gone", name)
		}
		return "", errors.IO(err, "cannot access %s", rec.Dest)
	}
	if _, err := os.Stat(rec.Source); err == nil {
		return "", errors.Conflict("cannot undo add: '%s' already exists", rec.Source)
	}

	if err := os.MkdirAll(filepath.Dir(rec.Source), 0755); err != nil {
		return "", errors.IO(err, "failed to recreate %s", filepath.Dir(rec.Source))
	}
	if err := moveFile(rec.Dest, rec.Source); err != nil {
		return "", errors.IO(err, "failed to move '%s' back", name)
	}

	if rec.Displaced != "" {
		if err := moveFile(rec.Displaced, rec.Dest); err != nil {
			return "", errors.IO(err, "moved '%s' back to %s but failed to restore the overwritten prompt", name, rec.Source)
		}
		return fmt.Sprintf("moved '%s' back to %s and restored the overwritten prompt", name, rec.Source), nil
	}
	return fmt.Sprintf("moved '%s' back to %s", name, rec.Source), nil
}

// undoRemove restores the trashed copy to its original location.
func (l *Library) undoRemove(rec *undo.Record) (string, error) {
	name := prompt.DisplayName(filepath.Base(rec.Dest))

	if _, err := os.Stat(rec.Trashed); err != nil {
		if os.IsNotExist(err) {
			return "", errors.NotFound("cannot undo remove: the trashed copy of '%s' is gone", name)
		}
		return "", errors.IO(err, "cannot access %s", rec.Trashed)
	}
	if _, err := os.Stat(rec.Dest); err == nil {
		return "", errors.Conflict("cannot undo remove: prompt '%s' already exists", name)
	}

	if err := moveFile(rec.Trashed, rec.Dest); err != nil {
		return "", errors.IO(err, "failed to restore '%s'", name)
	}
	return fmt.Sprintf("restored '%s'", name), nil
}

// undoRename moves the prompt back to its old name, then puts a displaced
// prompt back under the new name.
func (l *Library) undoRename(rec *undo.Record) (string, error) {
	oldName := prompt.DisplayName(filepath.Base(rec.Old))
	newName := prompt.DisplayName(filepath.Base(rec.New))

	if _, err := os.Stat(rec.New); err != nil {
		if os.IsNotExist(err) {
			return "", errors.NotFound("cannot undo rename: prompt '%s' is gone", newName)
		}
		return "", errors.IO(err, "cannot access %s", rec.New)
	}
	if _, err := os.Stat(rec.Old); err == nil {
		return "", errors.Conflict("cannot undo rename: prompt '%s' already exists", oldName)
	}

	if err := os.Rename(rec.New, rec.Old); err != nil {
		return "", errors.IO(err, "failed to rename '%s' back to '%s'", newName, oldName)
	}

	if rec.Displaced != "" {
		if err := moveFile(rec.Displaced, rec.New); err != nil {
			return "", errors.IO(err, "renamed '%s' back to '%s' but failed to restore the overwritten prompt", newName, oldName)
		}
		return fmt.Sprintf("renamed '%s' back to '%s' and restored the overwritten prompt", newName, oldName), nil
	}
	return fmt.Sprintf("renamed '%s' back to '%s'", newName, oldName), nil
}
