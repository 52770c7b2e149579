package filter_test

import (
	"testing"

	"github.com/temirov/treegen/internal/entry"
	"github.com/temirov/treegen/internal/filter"
)

func fileEntry(name string) entry.Entry {
	return entry.Entry{Path: name, Name: name}
}

func directoryEntry(name string) entry.Entry {
	return entry.Entry{Path: name, Name: name, IsDir: true}
}

// TestAcceptWithoutRules verifies that a filter with no configured rules
// accepts every entry.
func TestAcceptWithoutRules(testingInstance *testing.T) {
	structureFilter := filter.NewStructureFilter()
	if !structureFilter.Accept(fileEntry("anything.bin")) {
		testingInstance.Error("expected file to be accepted")
	}
	if !structureFilter.Accept(directoryEntry("anywhere")) {
		testingInstance.Error("expected directory to be accepted")
	}
}

// TestAcceptDirectories verifies that directory acceptance consults only
// the excluded file names.
func TestAcceptDirectories(testingInstance *testing.T) {
	structureFilter := filter.NewStructureFilter()
	structureFilter.AddExcludedFile("node_modules")
	structureFilter.AddIncludedExtension("txt")
	structureFilter.AddExcludedExtension("txt")

	if structureFilter.Accept(directoryEntry("node_modules")) {
		testingInstance.Error("expected excluded directory to be rejected")
	}
	if !structureFilter.Accept(directoryEntry("src.txt")) {
		testingInstance.Error("extension rules must not affect directories")
	}
}

// TestAcceptIncludedExtension verifies extension inclusion and the
// name-exclusion override.
func TestAcceptIncludedExtension(testingInstance *testing.T) {
	structureFilter := filter.NewStructureFilter()
	structureFilter.AddIncludedExtension("txt")
	structureFilter.AddExcludedFile("secret.txt")

	if !structureFilter.Accept(fileEntry("notes.txt")) {
		testingInstance.Error("expected matching extension to be accepted")
	}
	if structureFilter.Accept(fileEntry("secret.txt")) {
		testingInstance.Error("explicit name exclusion must override extension inclusion")
	}
	if !structureFilter.Accept(fileEntry("NOTES.TXT")) {
		testingInstance.Error("extension matching must be case-insensitive")
	}
}

// TestAcceptExcludedExtension verifies extension exclusion and the
// name-inclusion override.
func TestAcceptExcludedExtension(testingInstance *testing.T) {
	structureFilter := filter.NewStructureFilter()
	structureFilter.AddExcludedExtension("tmp")
	structureFilter.AddIncludedFile("keep.tmp")

	if structureFilter.Accept(fileEntry("scratch.tmp")) {
		testingInstance.Error("expected matching extension to be rejected")
	}
	if !structureFilter.Accept(fileEntry("keep.tmp")) {
		testingInstance.Error("explicit name inclusion must override extension exclusion")
	}
	if !structureFilter.Accept(fileEntry("scratch.log")) {
		testingInstance.Error("files matching no extension rule are accepted")
	}
}

// TestAcceptDefaultPermit verifies the default-permit rule when an
// inclusion set exists but the extension matches neither set.
func TestAcceptDefaultPermit(testingInstance *testing.T) {
	structureFilter := filter.NewStructureFilter()
	structureFilter.AddIncludedExtension("go")

	if !structureFilter.Accept(fileEntry("readme.md")) {
		testingInstance.Error("non-matching extension falls through to default accept")
	}
	if !structureFilter.Accept(fileEntry("Makefile")) {
		testingInstance.Error("files without an extension fall through to default accept")
	}
}

// TestAcceptNoExtension verifies that names without a dot use the empty
// extension for rule matching.
func TestAcceptNoExtension(testingInstance *testing.T) {
	structureFilter := filter.NewStructureFilter()
	structureFilter.AddExcludedExtension("")

	if structureFilter.Accept(fileEntry("LICENSE")) {
		testingInstance.Error("expected empty-extension rule to match extensionless file")
	}
	if !structureFilter.Accept(fileEntry("main.go")) {
		testingInstance.Error("expected file with an extension to be unaffected")
	}
}

// TestBatchMutators verifies the batch addition helpers.
func TestBatchMutators(testingInstance *testing.T) {
	structureFilter := filter.NewStructureFilter()
	structureFilter.AddExcludedExtensions([]string{"tmp", ".BAK"})
	structureFilter.AddIncludedFiles([]string{"keep.tmp"})
	structureFilter.AddExcludedFiles([]string{"target"})
	structureFilter.AddIncludedExtensions(nil)

	if structureFilter.Accept(fileEntry("old.bak")) {
		testingInstance.Error("expected batch-excluded extension with leading dot to match")
	}
	if !structureFilter.Accept(fileEntry("keep.tmp")) {
		testingInstance.Error("expected batch-included file to override exclusion")
	}
	if structureFilter.Accept(directoryEntry("target")) {
		testingInstance.Error("expected batch-excluded directory name to be rejected")
	}
	if !structureFilter.Accept(fileEntry("unrelated.md")) {
		testingInstance.Error("an empty batch must not activate the inclusion rule")
	}
}
