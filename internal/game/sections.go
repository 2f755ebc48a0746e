package game

import "strings"

// SectionSeparator joins a parent section path to its child in the flat
// section list, e.g. "Media → Music videos".
const SectionSeparator = " → "

// Score grid glyphs: purple for revealed (used) sections, blue for sections
// the player never needed.
const (
	RevealedMarker   = "🟪"
	UnrevealedMarker = "🟦"
)

// SectionGroup is one top-level section together with its nested entries,
// in document order.
type SectionGroup struct {
	Parent   string
	Children []string
}

// GroupByParent folds the flat ordered section list into two levels: entries
// without the separator open a group, entries with it attach to the group
// named by the text before the first separator. Paths nested deeper than two
// levels are kept as children of their top-level ancestor. Group order is
// first-occurrence order.
func GroupByParent(sections []string) []SectionGroup {
	var groups []SectionGroup
	index := make(map[string]int)

	for _, section := range sections {
		parent, nested := splitParent(section)

		i, ok := index[parent]
		if !ok {
			i = len(groups)
			index[parent] = i
			groups = append(groups, SectionGroup{Parent: parent})
		}

		if nested {
			groups[i].Children = append(groups[i].Children, section)
		}
	}

	return groups
}

// splitParent returns the top-level group key for a section entry and
// whether the entry is a nested child.
func splitParent(section string) (string, bool) {
	if i := strings.Index(section, SectionSeparator); i >= 0 {
		return section[:i], true
	}
	return section, false
}

// ScoreGrid renders the shareable score visualization: one row per group,
// one marker per parent then per child. It only affects the share text,
// never game logic.
func ScoreGrid(groups []SectionGroup, revealed []string) []string {
	seen := make(map[string]bool, len(revealed))
	for _, s := range revealed {
		seen[s] = true
	}

	marker := func(s string) string {
		if seen[s] {
			return RevealedMarker
		}
		return UnrevealedMarker
	}

	rows := make([]string, 0, len(groups))
	for _, g := range groups {
		var row strings.Builder
		row.WriteString(marker(g.Parent))
		for _, child := range g.Children {
			row.WriteString(marker(child))
		}
		rows = append(rows, row.String())
	}
	return rows
}
