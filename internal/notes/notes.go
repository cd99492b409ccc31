// Package notes owns the on-disk corpus: one directory per folder under the
// data root, markdown files named YYYY-MM-DD_HH-MM-SS_<slug>.md, and a
// root-level README.md describing what each folder is for.
package notes

import "errors"

// Extension is the note file extension.
const Extension = ".md"

// DefaultFolder receives anything the classifier cannot place.
const DefaultFolder = "inbox"

var (
	// ErrFolderExists is returned when creating a folder that already exists.
	ErrFolderExists = errors.New("folder already exists")

	// ErrBadTimestamp is returned when a client-supplied timestamp cannot be
	// parsed. There is no sane fallback date, so this surfaces to the caller.
	ErrBadTimestamp = errors.New("malformed timestamp")
)

// Folder describes one topical container of notes.
type Folder struct {
	Name        string `json:"name"`
	Count       int    `json:"count"`
	Description string `json:"description"`
}

// Entry is the lightweight listing view of a stored note.
type Entry struct {
	ID        string `json:"id"`
	Preview   string `json:"preview"`
	Folder    string `json:"folder"`
	Timestamp string `json:"timestamp"`
	Title     string `json:"title"`
}
