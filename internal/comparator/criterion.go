package comparator

import (
	"fmt"
	"strings"
)

// SortCriterion identifies one atomic sibling-ordering rule.
type SortCriterion string

const (
	// SortDirectoriesFirst orders directories before regular files.
	SortDirectoriesFirst SortCriterion = "directories-first"
	// SortAlphabetical orders entries by case-insensitive name.
	SortAlphabetical SortCriterion = "alphabetical"
	// SortExtension orders entries by case-insensitive extension.
	SortExtension SortCriterion = "extension"
	// SortLastModified orders entries by ascending modification time.
	SortLastModified SortCriterion = "last-modified"
	// SortSize orders entries by ascending byte size.
	SortSize SortCriterion = "size"
)

// unknownCriterionFormat reports an unrecognized criterion name.
const unknownCriterionFormat = "unknown sort criterion '%s'"

// ParseSortCriterion converts a user-supplied name into a SortCriterion.
// Names are matched case-insensitively with surrounding whitespace ignored.
func ParseSortCriterion(criterionName string) (SortCriterion, error) {
	normalizedName := strings.ToLower(strings.TrimSpace(criterionName))
	switch SortCriterion(normalizedName) {
	case SortDirectoriesFirst, SortAlphabetical, SortExtension, SortLastModified, SortSize:
		return SortCriterion(normalizedName), nil
	default:
		return "", fmt.Errorf(unknownCriterionFormat, criterionName)
	}
}

// ParseSortCriteria converts an ordered list of names, failing on the first
// unrecognized one.
func ParseSortCriteria(criterionNames []string) ([]SortCriterion, error) {
	criteria := make([]SortCriterion, 0, len(criterionNames))
	for _, criterionName := range criterionNames {
		criterion, parseError := ParseSortCriterion(criterionName)
		if parseError != nil {
			return nil, parseError
		}
		criteria = append(criteria, criterion)
	}
	return criteria, nil
}
