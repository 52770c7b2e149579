package utils_test

import (
	"testing"

	"github.com/temirov/treegen/internal/utils"
)

// TestExtensionOf verifies extension extraction and lowercasing.
func TestExtensionOf(testingInstance *testing.T) {
	testCases := []struct {
		name              string
		fileName          string
		expectedExtension string
	}{
		{name: "simple extension", fileName: "notes.txt", expectedExtension: "txt"},
		{name: "uppercase extension lowercased", fileName: "ARCHIVE.TAR", expectedExtension: "tar"},
		{name: "multiple dots use last segment", fileName: "bundle.tar.gz", expectedExtension: "gz"},
		{name: "no dot has empty extension", fileName: "Makefile", expectedExtension: ""},
		{name: "trailing dot has empty extension", fileName: "weird.", expectedExtension: ""},
		{name: "leading dot file", fileName: ".gitignore", expectedExtension: "gitignore"},
	}

	for _, testCase := range testCases {
		testingInstance.Run(testCase.name, func(subtest *testing.T) {
			actualExtension := utils.ExtensionOf(testCase.fileName)
			if actualExtension != testCase.expectedExtension {
				subtest.Errorf("ExtensionOf(%q) = %q, expected %q", testCase.fileName, actualExtension, testCase.expectedExtension)
			}
		})
	}
}

// TestDeduplicateStrings verifies order-preserving deduplication.
func TestDeduplicateStrings(testingInstance *testing.T) {
	input := []string{"txt", "md", "txt", "go", "md"}
	expected := []string{"txt", "md", "go"}
	actual := utils.DeduplicateStrings(input)
	if len(actual) != len(expected) {
		testingInstance.Fatalf("unexpected length %d, expected %d", len(actual), len(expected))
	}
	for index := range expected {
		if actual[index] != expected[index] {
			testingInstance.Errorf("position %d: got %q, expected %q", index, actual[index], expected[index])
		}
	}
}
