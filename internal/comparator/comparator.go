// Package comparator orders sibling filesystem entries according to a
// configurable ordered sequence of sorting criteria.
package comparator

import (
	"slices"
	"strings"

	"go.uber.org/zap"

	"github.com/temirov/treegen/internal/entry"
	"github.com/temirov/treegen/internal/utils"
)

const (
	warnCriterionAlreadyConfigured = "sort criterion already configured"
	warnNegativeInsertPosition     = "insertion position cannot be negative"
	warnInsertPositionOutOfRange   = "insertion position out of range, appending last"
	warnCriterionNotDefined        = "sort criterion is not defined"

	criterionFieldName = "criterion"
	positionFieldName  = "position"
)

// criterionComparisons maps every known criterion to its three-way
// comparison function. Unknown criteria are reported, never dispatched.
var criterionComparisons = map[SortCriterion]func(entry.Entry, entry.Entry) int{
	SortDirectoriesFirst: compareDirectoriesFirst,
	SortAlphabetical:     compareAlphabetical,
	SortExtension:        compareExtension,
	SortLastModified:     compareLastModified,
	SortSize:             compareSize,
}

// EntryComparator produces a total ordering over sibling entries from an
// ordered, duplicate-free criteria sequence and a reverse flag.
//
// When criteria are configured, every criterion in the sequence is
// evaluated and the result of the last one is returned; earlier criteria do
// not short-circuit the combination. An empty sequence compares all pairs
// equal, leaving siblings in their given order. Both behaviors are load
// bearing and pinned by tests.
type EntryComparator struct {
	logger   *zap.Logger
	criteria []SortCriterion
	reverse  bool
}

// NewEntryComparator constructs a comparator with an empty criteria
// sequence. Configuration warnings are reported through the provided
// logger; a nil logger disables reporting.
func NewEntryComparator(logger *zap.Logger) *EntryComparator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EntryComparator{logger: logger}
}

// Compare returns a negative, zero, or positive value ordering the first
// entry relative to the second.
func (entryComparator *EntryComparator) Compare(first entry.Entry, second entry.Entry) int {
	comparisonResult := 0
	for _, criterion := range entryComparator.criteria {
		comparison, known := criterionComparisons[criterion]
		if !known {
			entryComparator.logger.Warn(warnCriterionNotDefined, zap.String(criterionFieldName, string(criterion)))
			continue
		}
		comparisonResult = comparison(first, second)
	}
	if entryComparator.reverse {
		return -comparisonResult
	}
	return comparisonResult
}

// Add appends a criterion to the end of the sequence. Adding a criterion
// that is already configured is a reported no-op.
func (entryComparator *EntryComparator) Add(criterion SortCriterion) {
	existingPosition := slices.Index(entryComparator.criteria, criterion)
	if existingPosition != -1 {
		entryComparator.logger.Warn(warnCriterionAlreadyConfigured,
			zap.String(criterionFieldName, string(criterion)),
			zap.Int(positionFieldName, existingPosition))
		return
	}
	entryComparator.criteria = append(entryComparator.criteria, criterion)
}

// Insert places a criterion at the given position in the sequence.
// Duplicates and negative positions are reported no-ops; a position past
// the end of the sequence is reported and appends instead.
func (entryComparator *EntryComparator) Insert(criterion SortCriterion, position int) {
	existingPosition := slices.Index(entryComparator.criteria, criterion)
	if existingPosition != -1 {
		entryComparator.logger.Warn(warnCriterionAlreadyConfigured,
			zap.String(criterionFieldName, string(criterion)),
			zap.Int(positionFieldName, existingPosition))
		return
	}
	if position < 0 {
		entryComparator.logger.Warn(warnNegativeInsertPosition,
			zap.String(criterionFieldName, string(criterion)),
			zap.Int(positionFieldName, position))
		return
	}
	if position >= len(entryComparator.criteria) {
		entryComparator.logger.Warn(warnInsertPositionOutOfRange,
			zap.String(criterionFieldName, string(criterion)),
			zap.Int(positionFieldName, position))
		entryComparator.criteria = append(entryComparator.criteria, criterion)
		return
	}
	entryComparator.criteria = slices.Insert(entryComparator.criteria, position, criterion)
}

// AddAll appends every listed criterion in order, subject to the same
// duplicate rule as Add.
func (entryComparator *EntryComparator) AddAll(criteria []SortCriterion) {
	for _, criterion := range criteria {
		entryComparator.Add(criterion)
	}
}

// AddAllAtPositions inserts criteria at their mapped positions. Entries
// with negative positions are skipped. The map carries no ordering, so
// relative placement of simultaneously inserted criteria is unspecified.
func (entryComparator *EntryComparator) AddAllAtPositions(criterionPositions map[SortCriterion]int) {
	for criterion, position := range criterionPositions {
		if position < 0 {
			continue
		}
		entryComparator.Insert(criterion, position)
	}
}

// SetReverse enables or disables negation of the combined comparison result.
func (entryComparator *EntryComparator) SetReverse(reverse bool) {
	entryComparator.reverse = reverse
}

// Criteria returns a copy of the configured criteria sequence.
func (entryComparator *EntryComparator) Criteria() []SortCriterion {
	return slices.Clone(entryComparator.criteria)
}

func compareDirectoriesFirst(first entry.Entry, second entry.Entry) int {
	if first.IsDir && !second.IsDir {
		return -1
	}
	if !first.IsDir && second.IsDir {
		return 1
	}
	return 0
}

func compareAlphabetical(first entry.Entry, second entry.Entry) int {
	return strings.Compare(strings.ToLower(first.Name), strings.ToLower(second.Name))
}

func compareExtension(first entry.Entry, second entry.Entry) int {
	return strings.Compare(utils.ExtensionOf(first.Name), utils.ExtensionOf(second.Name))
}

func compareLastModified(first entry.Entry, second entry.Entry) int {
	return first.ModTime.Compare(second.ModTime)
}

func compareSize(first entry.Entry, second entry.Entry) int {
	switch {
	case first.Size < second.Size:
		return -1
	case first.Size > second.Size:
		return 1
	default:
		return 0
	}
}
