package notes

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

func (s *implStore) Taxonomy() string {
	data, err := os.ReadFile(filepath.Join(s.root, "README.md"))
	if err != nil {
		return ""
	}
	return string(data)
}

func (s *implStore) ListFolders() ([]Folder, error) {
	dirents, err := os.ReadDir(s.root)
	if err != nil {
		return nil, fmt.Errorf("read data root: %w", err)
	}

	folders := make([]Folder, 0, len(dirents))
	for _, d := range dirents {
		if !d.IsDir() || strings.HasPrefix(d.Name(), ".") {
			continue
		}
		folders = append(folders, Folder{
			Name:  d.Name(),
			Count: s.countNotes(filepath.Join(s.root, d.Name())),
		})
	}

	// Default folder first, everything else alphabetical.
	sort.Slice(folders, func(i, j int) bool {
		if (folders[i].Name == DefaultFolder) != (folders[j].Name == DefaultFolder) {
			return folders[i].Name == DefaultFolder
		}
		return folders[i].Name < folders[j].Name
	})

	return folders, nil
}

func (s *implStore) countNotes(dir string) int {
	dirents, err := os.ReadDir(dir)
	if err != nil {
		return 0
	}
	count := 0
	for _, d := range dirents {
		if !d.IsDir() && strings.HasSuffix(d.Name(), Extension) {
			count++
		}
	}
	return count
}

// NormalizeFolderName maps a requested display name to its filesystem form.
func NormalizeFolderName(name string) string {
	return strings.ToLower(strings.ReplaceAll(name, " ", "-"))
}

func (s *implStore) CreateFolder(name, description string) (*Folder, error) {
	normalized := NormalizeFolderName(name)
	path := filepath.Join(s.root, normalized)

	if _, err := os.Stat(path); err == nil {
		return nil, fmt.Errorf("%w: %s", ErrFolderExists, normalized)
	}

	if err := os.MkdirAll(path, 0o755); err != nil {
		return nil, fmt.Errorf("create folder %s: %w", normalized, err)
	}

	return &Folder{Name: normalized, Count: 0, Description: description}, nil
}

func (s *implStore) SaveNote(relPath, body string) (string, error) {
	full := filepath.Join(s.root, relPath)

	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", fmt.Errorf("create note folder: %w", err)
	}

	// Collisions within the same second and slug overwrite silently; the
	// filename scheme makes them rare and the transcript is the same second's
	// capture either way.
	if err := os.WriteFile(full, []byte(body), 0o644); err != nil {
		return "", fmt.Errorf("write note: %w", err)
	}

	return full, nil
}

func (s *implStore) ListEntries(ctx context.Context, folder string, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 10
	}

	files, err := s.collectNoteFiles(folder)
	if err != nil {
		return nil, err
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].modTime.After(files[j].modTime)
	})

	entries := make([]Entry, 0, limit)
	for _, f := range files {
		if len(entries) >= limit {
			break
		}

		data, err := os.ReadFile(f.path)
		if err != nil {
			s.logger.Warn(ctx, "Skipping unreadable note %s: %v", f.path, err)
			continue
		}
		content := string(data)
		stem := strings.TrimSuffix(filepath.Base(f.path), Extension)

		entries = append(entries, Entry{
			ID:        clip(stem, 8),
			Preview:   Preview(content),
			Folder:    filepath.Base(filepath.Dir(f.path)),
			Timestamp: stemTimestamp(stem, f.modTime),
			Title:     FirstLineTitle(content),
		})
	}

	return entries, nil
}

type noteFile struct {
	path    string
	modTime time.Time
}

func (s *implStore) collectNoteFiles(folder string) ([]noteFile, error) {
	var dirs []string
	if folder != "" {
		dir := filepath.Join(s.root, folder)
		if _, err := os.Stat(dir); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil, nil
			}
			return nil, fmt.Errorf("stat folder %s: %w", folder, err)
		}
		dirs = []string{dir}
	} else {
		dirents, err := os.ReadDir(s.root)
		if err != nil {
			return nil, fmt.Errorf("read data root: %w", err)
		}
		for _, d := range dirents {
			if d.IsDir() && !strings.HasPrefix(d.Name(), ".") {
				dirs = append(dirs, filepath.Join(s.root, d.Name()))
			}
		}
	}

	var files []noteFile
	for _, dir := range dirs {
		dirents, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, d := range dirents {
			if d.IsDir() || !strings.HasSuffix(d.Name(), Extension) {
				continue
			}
			info, err := d.Info()
			if err != nil {
				continue
			}
			files = append(files, noteFile{
				path:    filepath.Join(dir, d.Name()),
				modTime: info.ModTime(),
			})
		}
	}

	return files, nil
}

// stemTimestamp reconstructs the capture time from the two-underscore
// filename prefix, falling back to the file's modification time for names
// that don't match the scheme.
func stemTimestamp(stem string, modTime time.Time) string {
	parts := strings.Split(stem, "_")
	if len(parts) >= 2 {
		return parts[0] + "T" + strings.ReplaceAll(parts[1], "-", ":")
	}
	return modTime.Format("2006-01-02T15:04:05")
}

func (s *implStore) FindEntryFile(id string) (string, string, error) {
	files, err := s.collectNoteFiles("")
	if err != nil {
		return "", "", err
	}

	for _, f := range files {
		stem := strings.TrimSuffix(filepath.Base(f.path), Extension)
		if clip(stem, 8) == id {
			data, err := os.ReadFile(f.path)
			if err != nil {
				return "", "", fmt.Errorf("read note %s: %w", f.path, err)
			}
			return f.path, string(data), nil
		}
	}

	return "", "", fmt.Errorf("entry %s not found", id)
}
