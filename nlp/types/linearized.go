package types

import "strings"

// A LinRow is one position of a linearized tree.
type LinRow struct {
	Word    string
	POS     string
	FeatStr string
	Label   Label
}

// A LinearizedTree is a dependency tree flattened to one row per word,
// ready for a sequence-tagging model. Row i holds word i+1 of the
// sentence; the virtual root has no row. NumFeats is the largest feature
// count seen on any row, for fixed-width downstream consumption.
type LinearizedTree struct {
	Rows     []LinRow
	NumFeats int
}

func NewLinearizedTree(rows []LinRow) *LinearizedTree {
	lt := &LinearizedTree{Rows: rows}
	for _, row := range rows {
		if row.FeatStr == "_" || row.FeatStr == "" {
			continue
		}
		if count := strings.Count(row.FeatStr, FeaturesSeparator) + 1; count > lt.NumFeats {
			lt.NumFeats = count
		}
	}
	return lt
}

func (lt *LinearizedTree) Len() int {
	return len(lt.Rows)
}

// Row returns position i counting from the given direction: i=0 is the
// first row when forward, the last when not. Iteration by Row is
// restartable and never mutates the underlying rows.
func (lt *LinearizedTree) Row(i int, forward bool) LinRow {
	if forward {
		return lt.Rows[i]
	}
	return lt.Rows[len(lt.Rows)-1-i]
}
