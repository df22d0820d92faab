package library

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/pmpts/pmpts/internal/errors"
)

// TrashDirName is the retention directory inside the prompts directory.
// Removed prompts and prompts displaced by forced overwrites land here,
// which is what makes those operations reversible.
const TrashDirName = ".trash"

// TrashDir returns the retention directory path.
func (l *Library) TrashDir() string {
	return filepath.Join(l.root, TrashDirName)
}

// moveToTrash retains the file at path under a timestamped name and
// returns where it went.
func (l *Library) moveToTrash(path string) (string, error) {
	trashDir := l.TrashDir()
	if err := os.MkdirAll(trashDir, 0755); err != nil {
		return "", errors.IO(err, "failed to create trash directory")
	}

	base := filepath.Base(path)
	ts := time.Now().Unix()
	trashed := filepath.Join(trashDir, fmt.Sprintf("%d_%s", ts, base))
	// Trashing the same prompt twice within a second must not overwrite
	// the first copy.
	for i := 1; ; i++ {
		if _, err := os.Lstat(trashed); os.IsNotExist(err) {
			break
		}
		trashed = filepath.Join(trashDir, fmt.Sprintf("%d-%d_%s", ts, i, base))
	}

	if err := moveFile(path, trashed); err != nil {
		return "", errors.IO(err, "failed to move %s to the trash", base)
	}
	return trashed, nil
}

// TrashEntry describes one retained file.
type TrashEntry struct {
	// FileName is the original filename before trashing
	FileName string
	// Path is the location inside the trash
	Path string
	// DeletedAt is parsed from the timestamped trash name; zero when
	// the name does not carry one
	DeletedAt time.Time

	Size int64
}

// TrashEntries returns the retained files, newest first. A missing trash
// directory yields no entries.
func (l *Library) TrashEntries() ([]TrashEntry, error) {
	entries, err := os.ReadDir(l.TrashDir())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.IO(err, "failed to read trash directory")
	}

	var out []TrashEntry
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		e := TrashEntry{
			FileName: entry.Name(),
			Path:     filepath.Join(l.TrashDir(), entry.Name()),
		}
		if tsPart, rest, ok := strings.Cut(entry.Name(), "_"); ok && rest != "" {
			// The collision counter after the dash is not part of the
			// timestamp.
			if idx := strings.IndexByte(tsPart, '-'); idx != -1 {
				tsPart = tsPart[:idx]
			}
			if ts, err := strconv.ParseInt(tsPart, 10, 64); err == nil {
				e.DeletedAt = time.Unix(ts, 0)
				e.FileName = rest
			}
		}
		if fi, err := entry.Info(); err == nil {
			e.Size = fi.Size()
		}
		out = append(out, e)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DeletedAt.After(out[j].DeletedAt)
	})
	return out, nil
}

// EmptyTrash deletes every retained file and returns how many there were.
func (l *Library) EmptyTrash() (int, error) {
	entries, err := l.TrashEntries()
	if err != nil {
		return 0, err
	}

	if err := os.RemoveAll(l.TrashDir()); err != nil {
		return 0, errors.IO(err, "failed to empty the trash")
	}
	return len(entries), nil
}
