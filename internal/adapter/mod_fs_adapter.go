// Package adapter contains filesystem and persistence adapters for the
// orfix CLI.
package adapter

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	m "github.com/sanddino/orfix/internal/model"
)

// backupTimestampLayout is the suffix format for backup files, e.g.
// mod.ini.bak_2025-01-31_12-00-00.
const backupTimestampLayout = "2006-01-02_15-04-05"

// ModFSAdapter abstracts the filesystem operations the workflow relies on
// when scanning and rewriting mod folders. It hides direct `os` access so
// the workflow logic can be tested without touching the disk.
type ModFSAdapter interface {
	// CollectFiles gathers every .ini file under the given roots. When
	// recursive is false, subdirectories of a root are not descended into.
	CollectFiles(roots []m.Path, recursive bool) ([]m.Path, error)

	// ReadLines loads a file, verifies it decodes as UTF-8, and returns its
	// lines without terminators plus the layout needed to write them back.
	ReadLines(path m.Path) ([]string, m.FileLayout, error)

	// WriteLines writes lines back using the captured layout.
	WriteLines(path m.Path, lines []string, layout m.FileLayout) error

	// Backup copies the file to a timestamped .bak sibling and returns the
	// backup path.
	Backup(path m.Path) (m.Path, error)

	// LatestBackup returns the newest .bak sibling of path, or "" when the
	// file has never been backed up.
	LatestBackup(path m.Path) (m.Path, error)

	// Restore copies the newest backup over the file and returns the backup
	// that was used.
	Restore(path m.Path) (m.Path, error)
}

// LocalModFSAdapter is the disk-backed ModFSAdapter implementation.
type LocalModFSAdapter struct{}

// NewLocalModFSAdapter constructs a LocalModFSAdapter ready to be wired
// into the workflow.
func NewLocalModFSAdapter() *LocalModFSAdapter {
	return &LocalModFSAdapter{}
}

// CollectFiles gathers .ini files under each root, sorted by path.
func (a *LocalModFSAdapter) CollectFiles(roots []m.Path, recursive bool) ([]m.Path, error) {
	seen := make(map[m.Path]struct{})

	var files []m.Path

	add := func(path string) {
		p := m.Path(path)
		if _, ok := seen[p]; ok {
			return
		}

		seen[p] = struct{}{}
		files = append(files, p)
	}

	for _, root := range roots {
		info, err := os.Stat(string(root))
		if err != nil {
			return nil, fmt.Errorf("path %s: %w", root, err)
		}

		if !info.IsDir() {
			if isIniFile(string(root)) {
				add(string(root))
			}

			continue
		}

		rootStr := string(root)

		err = filepath.Walk(rootStr, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			if info.IsDir() {
				if !recursive && path != rootStr {
					return filepath.SkipDir
				}

				return nil
			}

			if isIniFile(path) {
				add(path)
			}

			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walk %s: %w", root, err)
		}
	}

	sort.Slice(files, func(i, j int) bool { return files[i] < files[j] })

	return files, nil
}

func isIniFile(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".ini")
}

// ReadLines loads file contents, normalizing CRLF line endings for the
// engine and remembering the on-disk layout.
func (a *LocalModFSAdapter) ReadLines(path m.Path) ([]string, m.FileLayout, error) {
	data, err := os.ReadFile(string(path))
	if err != nil {
		return nil, m.FileLayout{}, err
	}

	if !utf8.Valid(data) {
		return nil, m.FileLayout{}, fmt.Errorf("%s: content is not valid UTF-8", path)
	}

	text := string(data)

	var layout m.FileLayout
	if strings.Contains(text, "\r\n") {
		layout.CRLF = true
		text = strings.ReplaceAll(text, "\r\n", "\n")
	}

	if strings.HasSuffix(text, "\n") {
		layout.TrailingNewline = true
		text = strings.TrimSuffix(text, "\n")
	}

	return strings.Split(text, "\n"), layout, nil
}

// WriteLines writes the lines back to disk, restoring the original line
// endings and trailing newline.
func (a *LocalModFSAdapter) WriteLines(path m.Path, lines []string, layout m.FileLayout) error {
	text := strings.Join(lines, "\n")
	if layout.TrailingNewline {
		text += "\n"
	}

	if layout.CRLF {
		text = strings.ReplaceAll(text, "\n", "\r\n")
	}

	perm := os.FileMode(0o644)
	if info, err := os.Stat(string(path)); err == nil {
		perm = info.Mode().Perm()
	}

	return os.WriteFile(string(path), []byte(text), perm)
}

// Backup copies the file to <path>.bak_<timestamp> before it is rewritten.
func (a *LocalModFSAdapter) Backup(path m.Path) (m.Path, error) {
	backup := fmt.Sprintf("%s.bak_%s", path, time.Now().Format(backupTimestampLayout))

	if err := copyFile(string(path), backup); err != nil {
		return "", fmt.Errorf("backup %s: %w", path, err)
	}

	return m.Path(backup), nil
}

// LatestBackup finds the newest backup sibling of path. The timestamp
// format sorts lexicographically, so the last match is the newest.
func (a *LocalModFSAdapter) LatestBackup(path m.Path) (m.Path, error) {
	matches, err := filepath.Glob(string(path) + ".bak_*")
	if err != nil {
		return "", err
	}

	if len(matches) == 0 {
		return "", nil
	}

	sort.Strings(matches)

	return m.Path(matches[len(matches)-1]), nil
}

// Restore copies the newest backup over path.
func (a *LocalModFSAdapter) Restore(path m.Path) (m.Path, error) {
	backup, err := a.LatestBackup(path)
	if err != nil {
		return "", err
	}

	if backup == "" {
		return "", fmt.Errorf("no backup found for %s", path)
	}

	if err := copyFile(string(backup), string(path)); err != nil {
		return "", fmt.Errorf("restore %s: %w", path, err)
	}

	return backup, nil
}

func copyFile(src, dst string) error {
	// #nosec G304 - paths come from the scanned mod folder, not the network
	sourceFile, err := os.Open(src)
	if err != nil {
		return err
	}

	defer func() { _ = sourceFile.Close() }()

	info, err := sourceFile.Stat()
	if err != nil {
		return err
	}

	destFile, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}

	defer func() { _ = destFile.Close() }()

	if _, err := io.Copy(destFile, sourceFile); err != nil {
		return err
	}

	return nil
}
