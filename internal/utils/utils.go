// Package utils contains general helper functions used across the treegen tool.
package utils

import "strings"

const extensionSeparator = "."

// ExtensionOf extracts the lowercased extension from a file name.
// The extension is the substring after the last dot; names without a dot
// have the empty extension.
func ExtensionOf(fileName string) string {
	separatorIndex := strings.LastIndex(fileName, extensionSeparator)
	if separatorIndex == -1 {
		return ""
	}
	return strings.ToLower(fileName[separatorIndex+1:])
}

// DeduplicateStrings removes duplicate values from a slice while preserving order.
// The first occurrence of each unique value is kept.
func DeduplicateStrings(values []string) []string {
	encounteredValues := make(map[string]struct{})
	result := make([]string, 0, len(values))
	for _, value := range values {
		if _, exists := encounteredValues[value]; !exists {
			encounteredValues[value] = struct{}{}
			result = append(result, value)
		}
	}
	return result
}
