package notes

import "context"

// Store provides access to the note corpus on disk.
type Store interface {
	// Bootstrap creates the data root, the default folders, and the taxonomy
	// README when missing. Safe to call repeatedly.
	Bootstrap(ctx context.Context) error

	// Taxonomy returns the folder-structure guide used as classifier context,
	// or "" when none exists.
	Taxonomy() string

	// ListFolders returns all folders with note counts, default folder first,
	// remainder alphabetical.
	ListFolders() ([]Folder, error)

	// CreateFolder normalizes the requested name and creates the folder.
	// Returns ErrFolderExists when the target already exists.
	CreateFolder(name, description string) (*Folder, error)

	// ListEntries returns up to limit recent entries, newest first, optionally
	// scoped to one folder. Unreadable files are logged and skipped.
	ListEntries(ctx context.Context, folder string, limit int) ([]Entry, error)

	// SaveNote writes body at relPath under the root, creating the folder on
	// demand. Returns the absolute file path.
	SaveNote(relPath, body string) (string, error)

	// FindEntryFile resolves a listing ID (the first 8 characters of a
	// filename stem) back to the note's path and content.
	FindEntryFile(id string) (path string, content string, err error)
}
