// Package library implements access to the prompts directory. All
// filesystem mutations happen here; commands decide what to ask for and
// how to present the result.
package library

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pmpts/pmpts/internal/errors"
	"github.com/pmpts/pmpts/internal/prompt"
	"github.com/pmpts/pmpts/internal/undo"
)

// Library provides access to one prompts directory.
type Library struct {
	root string
}

// Open ensures the prompts directory exists and returns an accessor for it.
func Open(root string) (*Library, error) {
	if err := os.MkdirAll(root, 0755); err != nil {
		return nil, errors.Wrap(err, errors.KindNotFound, "prompts directory %s is not usable", root)
	}
	return &Library{root: root}, nil
}

// Root returns the prompts directory path.
func (l *Library) Root() string {
	return l.root
}

// List returns the prompts sorted by filename. Subdirectories and files
// without the prompt suffix are ignored.
func (l *Library) List() ([]prompt.Info, error) {
	entries, err := os.ReadDir(l.root)
	if err != nil {
		return nil, errors.IO(err, "failed to read prompts directory")
	}

	var prompts []prompt.Info
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !isPromptFile(name) {
			continue
		}
		fi, err := entry.Info()
		if err != nil {
			// File vanished between the directory read and the stat.
			continue
		}
		prompts = append(prompts, prompt.Info{
			Name:     prompt.DisplayName(name),
			FileName: name,
			Path:     filepath.Join(l.root, name),
			Size:     fi.Size(),
			ModTime:  fi.ModTime(),
		})
	}

	return prompts, nil
}

// Resolve maps a user-supplied name, with or without the prompt suffix,
// to the prompt it names.
func (l *Library) Resolve(name string) (*prompt.Info, error) {
	if err := prompt.ValidateName(name); err != nil {
		return nil, err
	}

	fileName := prompt.CanonicalFileName(name)
	path := filepath.Join(l.root, fileName)

	fi, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFound("prompt '%s' not found", prompt.DisplayName(fileName))
		}
		return nil, errors.IO(err, "cannot access %s", path)
	}
	if fi.IsDir() {
		return nil, errors.NotFound("prompt '%s' not found", prompt.DisplayName(fileName))
	}

	return &prompt.Info{
		Name:     prompt.DisplayName(fileName),
		FileName: fileName,
		Path:     path,
		Size:     fi.Size(),
		ModTime:  fi.ModTime(),
	}, nil
}

// Add moves the file at src into the prompts directory under its derived
// name. With force, an existing prompt of that name is retained in the
// trash first. Returns the record that reverses the add.
func (l *Library) Add(src string, force bool) (*undo.Record, *prompt.Info, error) {
	absSrc, err := filepath.Abs(src)
	if err != nil {
		return nil, nil, errors.IO(err, "cannot resolve %s", src)
	}

	fi, err := os.Stat(absSrc)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, errors.NotFound("file '%s' not found", src)
		}
		return nil, nil, errors.IO(err, "cannot access %s", src)
	}
	if fi.IsDir() {
		return nil, nil, errors.Invalid("'%s' is a directory", src)
	}

	fileName := prompt.FileNameFor(filepath.Base(absSrc))
	if err := prompt.ValidateName(prompt.DisplayName(fileName)); err != nil {
		return nil, nil, err
	}

	dest := filepath.Join(l.root, fileName)
	if dest == absSrc {
		return nil, nil, errors.Invalid("'%s' is already in the prompts directory", src)
	}

	rec := &undo.Record{
		Op:         undo.OpAdd,
		Source:     absSrc,
		Dest:       dest,
		RecordedAt: time.Now(),
	}

	if _, err := os.Stat(dest); err == nil {
		if !force {
			return nil, nil, errors.Conflict("prompt '%s' already exists", prompt.DisplayName(fileName))
		}
		trashed, err := l.moveToTrash(dest)
		if err != nil {
			return nil, nil, err
		}
		rec.Displaced = trashed
	}

	if err := moveFile(absSrc, dest); err != nil {
		return nil, nil, errors.IO(err, "failed to move '%s' into the prompts directory", src)
	}

	info := &prompt.Info{
		Name:     prompt.DisplayName(fileName),
		FileName: fileName,
		Path:     dest,
	}
	if st, err := os.Stat(dest); err == nil {
		info.Size = st.Size()
		info.ModTime = st.ModTime()
	}
	return rec, info, nil
}

// Remove moves the named prompt to the trash. Returns the record that
// restores it.
func (l *Library) Remove(name string) (*undo.Record, error) {
	info, err := l.Resolve(name)
	if err != nil {
		return nil, err
	}

	trashed, err := l.moveToTrash(info.Path)
	if err != nil {
		return nil, err
	}

	return &undo.Record{
		Op:         undo.OpRemove,
		Dest:       info.Path,
		Trashed:    trashed,
		RecordedAt: time.Now(),
	}, nil
}

// Rename gives a prompt a new name. With force, an existing prompt under
// the new name is retained in the trash first. Returns the record that
// reverses the rename.
func (l *Library) Rename(oldName, newName string, force bool) (*undo.Record, error) {
	info, err := l.Resolve(oldName)
	if err != nil {
		return nil, err
	}

	// The derived name is what must be valid: the bare suffix would
	// derive an empty name and produce a file the listing skips.
	newFile := prompt.CanonicalFileName(newName)
	if err := prompt.ValidateName(prompt.DisplayName(newFile)); err != nil {
		return nil, err
	}
	newPath := filepath.Join(l.root, newFile)
	if newPath == info.Path {
		return nil, errors.Invalid("'%s' is already named '%s'", info.Name, prompt.DisplayName(newFile))
	}

	rec := &undo.Record{
		Op:         undo.OpRename,
		Old:        info.Path,
		New:        newPath,
		RecordedAt: time.Now(),
	}

	if _, err := os.Stat(newPath); err == nil {
		if !force {
			return nil, errors.Conflict("prompt '%s' already exists", prompt.DisplayName(newFile))
		}
		trashed, err := l.moveToTrash(newPath)
		if err != nil {
			return nil, err
		}
		rec.Displaced = trashed
	}

	if err := os.Rename(info.Path, newPath); err != nil {
		return nil, errors.IO(err, "failed to rename '%s'", info.Name)
	}

	return rec, nil
}

// CopyTo copies the named prompt to an external path, preserving mode
// and modification time. A directory destination receives the prompt
// under its stored filename. Copies are not mutations of the prompts
// directory and leave the undo record alone.
func (l *Library) CopyTo(name, dest string) (string, error) {
	info, err := l.Resolve(name)
	if err != nil {
		return "", err
	}

	absDest, err := filepath.Abs(dest)
	if err != nil {
		return "", errors.IO(err, "cannot resolve %s", dest)
	}
	if fi, err := os.Stat(absDest); err == nil && fi.IsDir() {
		absDest = filepath.Join(absDest, info.FileName)
	}

	if err := copyFile(info.Path, absDest); err != nil {
		return "", errors.IO(err, "failed to copy '%s'", info.Name)
	}
	return absDest, nil
}

// isPromptFile reports whether name is a stored prompt. A file named
// exactly like the suffix would have an empty display name and is not one.
func isPromptFile(name string) bool {
	return strings.HasSuffix(name, prompt.Suffix) && name != prompt.Suffix
}

// moveFile renames src to dst, falling back to copy and remove when the
// rename fails (typically a move across filesystems).
func moveFile(src, dst string) error {
	renameErr := os.Rename(src, dst)
	if renameErr == nil {
		return nil
	}
	if err := copyFile(src, dst); err != nil {
		return renameErr
	}
	return os.Remove(src)
}

// copyFile copies src to dst, preserving mode and modification time.
func copyFile(src, dst string) error {
	fi, err := os.Stat(src)
	if err != nil {
		return err
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, fi.Mode().Perm())
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}

	return os.Chtimes(dst, time.Now(), fi.ModTime())
}
