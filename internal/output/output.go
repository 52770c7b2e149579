// Package output persists rendered trees and shares them through the
// system clipboard.
package output

import (
	"fmt"
	"os"

	"github.com/atotto/clipboard"
)

const (
	// treeFilePermissions is the mode used for newly written tree files.
	treeFilePermissions = 0o644
	// errorWriteTreeFormat reports a failed write of the rendered tree.
	errorWriteTreeFormat = "writing tree to %s: %w"
)

// WriteTree writes the rendered tree text to the destination file as UTF-8.
// Write failures are wrapped and surfaced to the caller.
func WriteTree(destinationPath string, treeText string) error {
	writeError := os.WriteFile(destinationPath, []byte(treeText), treeFilePermissions)
	if writeError != nil {
		return fmt.Errorf(errorWriteTreeFormat, destinationPath, writeError)
	}
	return nil
}

// Copier copies textual data to the system clipboard.
type Copier interface {
	Copy(text string) error
}

// ClipboardService implements Copier using github.com/atotto/clipboard.
type ClipboardService struct{}

// NewClipboardService constructs a ClipboardService.
func NewClipboardService() *ClipboardService {
	return &ClipboardService{}
}

// Copy writes text to the system clipboard.
func (service *ClipboardService) Copy(text string) error {
	return clipboard.WriteAll(text)
}

var _ Copier = (*ClipboardService)(nil)
