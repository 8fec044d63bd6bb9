// Package panel implements the button panel: definitions extracted from
// configuration, per-label press counting, drag tracking, and click handling.
package panel

import (
	"regexp"
	"slices"
	"strconv"
)

// ButtonDefinition is one configured button
type ButtonDefinition struct {
	Index   int
	Label   string
	Payload string
}

var buttonKeyPattern = regexp.MustCompile(`^button([0-9]+)\.(label|text)$`)

// LabelKey returns the configuration key holding the label for index
func LabelKey(index int) string {
	return "button" + strconv.Itoa(index) + ".label"
}

// TextKey returns the configuration key holding the payload for index
func TextKey(index int) string {
	return "button" + strconv.Itoa(index) + ".text"
}

// Extract builds the ordered button list from configuration properties.
//
// Every key of the form button<N>.label or button<N>.text contributes N to
// the index set. Indices are visited in ascending numeric order and looked up
// by their canonical decimal form, so button007.label is collected as 7 but
// only button7.label and button7.text can satisfy it. An index missing either
// key is skipped without error.
func Extract(props map[string]string) []ButtonDefinition {
	seen := make(map[int]struct{})

	for key := range props {
		m := buttonKeyPattern.FindStringSubmatch(key)
		if m == nil {
			continue
		}

		n, err := strconv.Atoi(m[1])
		if err != nil {
			// Out of int range
			continue
		}

		seen[n] = struct{}{}
	}

	indices := make([]int, 0, len(seen))
	for n := range seen {
		indices = append(indices, n)
	}

	slices.Sort(indices)

	defs := make([]ButtonDefinition, 0, len(indices))
	for _, n := range indices {
		label, hasLabel := props[LabelKey(n)]
		text, hasText := props[TextKey(n)]

		if !hasLabel || !hasText {
			continue
		}

		defs = append(defs, ButtonDefinition{
			Index:   n,
			Label:   label,
			Payload: text,
		})
	}

	return defs
}
