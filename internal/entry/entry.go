// Package entry provides filesystem entry snapshots consumed by filters,
// comparators, and the tree renderer. Metadata is read live from the
// filesystem at traversal time and never cached across render calls.
package entry

import (
	"os"
	"path/filepath"
	"time"
)

// Entry describes a single filesystem node at the moment it was observed.
type Entry struct {
	Path    string
	Name    string
	IsDir   bool
	Size    int64
	ModTime time.Time
}

// FromPath builds an Entry for the given path. The second return value
// reports whether the path could be statted; when it is false the Entry
// still carries the path-derived name with zero metadata, so callers can
// render a placeholder line for a missing root.
func FromPath(path string) (Entry, bool) {
	cleanPath := filepath.Clean(path)
	entryValue := Entry{
		Path: cleanPath,
		Name: filepath.Base(cleanPath),
	}
	fileInformation, statError := os.Stat(cleanPath)
	if statError != nil {
		return entryValue, false
	}
	entryValue.IsDir = fileInformation.IsDir()
	entryValue.Size = fileInformation.Size()
	entryValue.ModTime = fileInformation.ModTime()
	return entryValue, true
}

// List returns the direct children of a directory in filesystem-native
// order. An unreadable or inaccessible directory yields no children rather
// than an error. Children whose metadata cannot be read are kept with zero
// size and modification time.
func List(directoryPath string) []Entry {
	directoryEntries, readDirectoryError := os.ReadDir(directoryPath)
	if readDirectoryError != nil {
		return nil
	}

	children := make([]Entry, 0, len(directoryEntries))
	for _, directoryEntry := range directoryEntries {
		child := Entry{
			Path:  filepath.Join(directoryPath, directoryEntry.Name()),
			Name:  directoryEntry.Name(),
			IsDir: directoryEntry.IsDir(),
		}
		entryInformation, informationError := directoryEntry.Info()
		if informationError == nil {
			child.Size = entryInformation.Size()
			child.ModTime = entryInformation.ModTime()
		}
		children = append(children, child)
	}
	return children
}
