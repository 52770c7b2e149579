// Package filter decides which filesystem entries appear in a rendered tree.
package filter

import (
	"strings"

	"github.com/temirov/treegen/internal/entry"
	"github.com/temirov/treegen/internal/utils"
)

// StructureFilter accepts or rejects entries based on four optional rule
// sets: included and excluded extensions, and included and excluded file
// names. A nil set means the rule is inactive, which is distinct from a set
// that is present but empty. Sets are created lazily on first addition.
//
// Extensions are matched case-insensitively; file names are matched by
// exact string.
type StructureFilter struct {
	includedExtensions map[string]struct{}
	excludedExtensions map[string]struct{}
	includedFiles      map[string]struct{}
	excludedFiles      map[string]struct{}
}

// NewStructureFilter constructs a filter with no active rules.
func NewStructureFilter() *StructureFilter {
	return &StructureFilter{}
}

// Accept reports whether the candidate entry should be included.
//
// Directories are accepted unless their name is present in the excluded
// file names; the included file names are never consulted for directories.
// For regular files, an extension match against the included extensions
// accepts the file unless its exact name is excluded, an extension match
// against the excluded extensions rejects the file unless its exact name is
// included, and files matching no extension rule are accepted.
func (structureFilter *StructureFilter) Accept(candidate entry.Entry) bool {
	entryName := candidate.Name
	if candidate.IsDir {
		return !setContains(structureFilter.excludedFiles, entryName)
	}

	extension := utils.ExtensionOf(entryName)
	if setContains(structureFilter.includedExtensions, extension) {
		return !setContains(structureFilter.excludedFiles, entryName)
	}
	if setContains(structureFilter.excludedExtensions, extension) {
		return setContains(structureFilter.includedFiles, entryName)
	}
	return true
}

// AddIncludedExtension activates the included-extensions rule and adds one extension.
func (structureFilter *StructureFilter) AddIncludedExtension(extension string) {
	structureFilter.includedExtensions = setAdd(structureFilter.includedExtensions, normalizeExtension(extension))
}

// AddIncludedExtensions activates the included-extensions rule and adds every listed extension.
func (structureFilter *StructureFilter) AddIncludedExtensions(extensions []string) {
	for _, extension := range extensions {
		structureFilter.AddIncludedExtension(extension)
	}
}

// AddExcludedExtension activates the excluded-extensions rule and adds one extension.
func (structureFilter *StructureFilter) AddExcludedExtension(extension string) {
	structureFilter.excludedExtensions = setAdd(structureFilter.excludedExtensions, normalizeExtension(extension))
}

// AddExcludedExtensions activates the excluded-extensions rule and adds every listed extension.
func (structureFilter *StructureFilter) AddExcludedExtensions(extensions []string) {
	for _, extension := range extensions {
		structureFilter.AddExcludedExtension(extension)
	}
}

// AddIncludedFile activates the included-files rule and adds one exact file name.
func (structureFilter *StructureFilter) AddIncludedFile(fileName string) {
	structureFilter.includedFiles = setAdd(structureFilter.includedFiles, fileName)
}

// AddIncludedFiles activates the included-files rule and adds every listed file name.
func (structureFilter *StructureFilter) AddIncludedFiles(fileNames []string) {
	for _, fileName := range fileNames {
		structureFilter.AddIncludedFile(fileName)
	}
}

// AddExcludedFile activates the excluded-files rule and adds one exact file name.
func (structureFilter *StructureFilter) AddExcludedFile(fileName string) {
	structureFilter.excludedFiles = setAdd(structureFilter.excludedFiles, fileName)
}

// AddExcludedFiles activates the excluded-files rule and adds every listed file name.
func (structureFilter *StructureFilter) AddExcludedFiles(fileNames []string) {
	for _, fileName := range fileNames {
		structureFilter.AddExcludedFile(fileName)
	}
}

// normalizeExtension strips a leading dot and lowercases the extension so
// that ".TXT", "TXT", and "txt" configure the same rule.
func normalizeExtension(extension string) string {
	return strings.ToLower(strings.TrimPrefix(extension, "."))
}

func setContains(ruleSet map[string]struct{}, value string) bool {
	if ruleSet == nil {
		return false
	}
	_, present := ruleSet[value]
	return present
}

func setAdd(ruleSet map[string]struct{}, value string) map[string]struct{} {
	if ruleSet == nil {
		ruleSet = make(map[string]struct{})
	}
	ruleSet[value] = struct{}{}
	return ruleSet
}
