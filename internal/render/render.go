// Package render builds the textual tree representation of a directory
// hierarchy, applying an optional entry filter and an optional sibling
// comparator during a depth-first walk.
package render

import (
	"sort"
	"strings"

	"github.com/temirov/treegen/internal/entry"
)

const (
	treeBranchConnector = "├── "
	treeLastConnector   = "└── "
	treeBranchPadding   = "│   "
	treeLastPadding     = "    "
	directorySuffix     = "/"
	lineTerminator      = "\n"
)

// EntryFilter decides whether an entry appears in the rendered tree.
// Rejecting an entry prunes its entire subtree.
type EntryFilter interface {
	Accept(candidate entry.Entry) bool
}

// EntryComparator orders sibling entries within a directory.
type EntryComparator interface {
	Compare(first entry.Entry, second entry.Entry) int
}

// TreeRenderer renders a rooted filesystem entry into an indented text
// tree. A renderer holds no state between calls; every Render builds into
// a fresh locally-owned buffer, so repeated renders of an unchanged
// filesystem are byte-identical. A single renderer must not be invoked
// concurrently.
//
// Recursion depth is bounded only by the real filesystem depth.
type TreeRenderer struct{}

// NewTreeRenderer constructs a renderer.
func NewTreeRenderer() *TreeRenderer {
	return &TreeRenderer{}
}

// Render walks the filesystem rooted at rootPath and returns the
// accumulated tree text, one newline-terminated line per entry. A nil
// filter includes everything; a nil comparator keeps filesystem-native
// order. A root that cannot be statted renders as a single childless line.
func (treeRenderer *TreeRenderer) Render(rootPath string, entryFilter EntryFilter, entryComparator EntryComparator) string {
	var builder strings.Builder
	rootEntry, _ := entry.FromPath(rootPath)
	if entryFilter == nil || entryFilter.Accept(rootEntry) {
		treeRenderer.writeEntry(&builder, rootEntry, "", true, true, entryFilter, entryComparator)
	}
	return builder.String()
}

// writeEntry emits one line for an already-accepted entry and recurses into
// its children. The root line carries no connector and its children extend
// an empty prefix.
func (treeRenderer *TreeRenderer) writeEntry(builder *strings.Builder, current entry.Entry, prefix string, isRoot bool, isLast bool, entryFilter EntryFilter, entryComparator EntryComparator) {
	linePrefix, childPrefix := treeLinePrefix(prefix, isRoot, isLast)
	builder.WriteString(linePrefix)
	builder.WriteString(current.Name)
	if current.IsDir {
		builder.WriteString(directorySuffix)
	}
	builder.WriteString(lineTerminator)

	if !current.IsDir {
		return
	}
	children := visibleChildren(current.Path, entryFilter)
	if entryComparator != nil {
		sort.SliceStable(children, func(leftIndex, rightIndex int) bool {
			return entryComparator.Compare(children[leftIndex], children[rightIndex]) < 0
		})
	}
	for childIndex, child := range children {
		treeRenderer.writeEntry(builder, child, childPrefix, false, childIndex == len(children)-1, entryFilter, entryComparator)
	}
}

// visibleChildren lists a directory's children and drops filtered-out
// entries up front, so last-child glyphs are computed against the filtered
// list. An unreadable directory yields no children.
func visibleChildren(directoryPath string, entryFilter EntryFilter) []entry.Entry {
	children := entry.List(directoryPath)
	if entryFilter == nil {
		return children
	}
	visible := children[:0]
	for _, child := range children {
		if entryFilter.Accept(child) {
			visible = append(visible, child)
		}
	}
	return visible
}

// treeLinePrefix returns the prefix for the current line and the extended
// prefix inherited by the entry's children.
func treeLinePrefix(prefix string, isRoot bool, isLast bool) (string, string) {
	if isRoot {
		return "", ""
	}
	connector := treeBranchConnector
	childPrefix := prefix + treeBranchPadding
	if isLast {
		connector = treeLastConnector
		childPrefix = prefix + treeLastPadding
	}
	return prefix + connector, childPrefix
}
