package gridlogic

import (
	"fmt"
	"regexp"
	"sort"

	"github.com/samber/lo"
)

var trailingDigits = regexp.MustCompile(`[0-9]+$`)

// RowMapping is one row of a solved puzzle: category tag to the name
// of the variable assigned that row.
type RowMapping map[string]string

// SortedCategories returns the tags present in r, sorted
// lexicographically, matching the stable output order required of the
// result projector.
func (r RowMapping) SortedCategories() []string {
	tags := lo.Keys(r)
	sort.Strings(tags)
	return tags
}

// Result is a row-indexed mapping: Result[i] holds the categories
// assigned to row i.
type Result []RowMapping

// Lines renders r as one human-readable line per row, each tag's
// assignment in sorted order, for CLI and log output.
func (r Result) Lines() []string {
	return lo.Map(r, func(mapping RowMapping, row int) string {
		line := fmt.Sprintf("row %d:", row)
		for _, tag := range mapping.SortedCategories() {
			line += fmt.Sprintf(" %s=%s", tag, mapping[tag])
		}
		return line
	})
}

// ProjectResult converts a fully assigned puzzle into a row-indexed
// mapping. For every variable v with assigned row r, the category tag
// is the variable's name with its trailing decimal digits stripped,
// and result[r][tag] = v.Name.
//
// The source also contains a second, unused projector variant with an
// incorrect trailing-digits regex; it is not reproduced here.
func ProjectResult(p *Puzzle) (Result, error) {
	result := make(Result, p.N)
	for i := range result {
		result[i] = make(RowMapping)
	}

	for _, tag := range p.Categories() {
		names, err := p.CategoryVariables(tag)
		if err != nil {
			return nil, err
		}
		for _, name := range names {
			v, err := p.GetVariable(name)
			if err != nil {
				return nil, err
			}
			row, err := v.AssignedValue()
			if err != nil {
				return nil, fmt.Errorf("project result: %s: %w", name, err)
			}
			result[row][categoryTagOf(name)] = name
		}
	}
	return result, nil
}

// categoryTagOf recovers the category tag from a variable name by
// stripping its trailing decimal digits.
func categoryTagOf(name string) string {
	return trailingDigits.ReplaceAllString(name, "")
}
