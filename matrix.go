package kinshipmap

import (
	"sort"

	"gonum.org/v1/gonum/mat"
)

// ScaleFactor multiplies every kinship coefficient stored in a Matrix, keeping
// displayed values in a readable range.
const ScaleFactor = 10000.0

// Matrix is a symmetric subject-by-subject matrix of scaled kinship values.
// The same sorted label list indexes rows and columns. Cells for pairs that
// were never observed, and the whole diagonal, are zero.
type Matrix struct {
	labels []string
	index  map[string]int
	sym    *mat.SymDense
}

// Build expands the rows into a Matrix. When an unordered pair appears more
// than once the last row wins, and a warning is returned for each overwrite.
// Rows that pair a subject with itself are skipped with a warning.
func Build(rows []Relationship) (*Matrix, []DuplicatePairWarning, error) {
	if len(rows) == 0 {
		return nil, nil, ErrNoRelationships
	}

	seen := make(map[string]struct{})
	for _, row := range rows {
		seen[row.ID1] = struct{}{}
		seen[row.ID2] = struct{}{}
	}

	labels := make([]string, 0, len(seen))
	for id := range seen {
		labels = append(labels, id)
	}
	sort.Strings(labels)

	m := &Matrix{
		labels: labels,
		index:  make(map[string]int, len(labels)),
		sym:    mat.NewSymDense(len(labels), nil),
	}
	for i, id := range labels {
		m.index[id] = i
	}

	var warnings []DuplicatePairWarning
	written := make(map[[2]int]struct{}, len(rows))
	for _, row := range rows {
		i, j := m.index[row.ID1], m.index[row.ID2]
		scaled := row.Kinship * ScaleFactor

		if i == j {
			warnings = append(warnings, DuplicatePairWarning{ID1: row.ID1, ID2: row.ID2, Current: scaled})
			continue
		}

		key := [2]int{i, j}
		if j < i {
			key = [2]int{j, i}
		}
		if _, dup := written[key]; dup {
			warnings = append(warnings, DuplicatePairWarning{ID1: row.ID1, ID2: row.ID2, Previous: m.sym.At(i, j), Current: scaled})
		}
		written[key] = struct{}{}

		// SetSym writes both (i,j) and (j,i)
		m.sym.SetSym(i, j, scaled)
	}

	return m, warnings, nil
}

// Len is the number of subjects on each axis.
func (m *Matrix) Len() int {
	return len(m.labels)
}

// Labels returns the axis labels in matrix order. The slice must not be
// modified.
func (m *Matrix) Labels() []string {
	return m.labels
}

// Index returns the position of a subject on both axes.
func (m *Matrix) Index(id string) (int, bool) {
	i, exists := m.index[id]
	return i, exists
}

// At returns the scaled kinship at row i, column j.
func (m *Matrix) At(i, j int) float64 {
	return m.sym.At(i, j)
}

// Value returns the scaled kinship between two subjects by id.
func (m *Matrix) Value(id1, id2 string) (float64, bool) {
	i, ok1 := m.index[id1]
	j, ok2 := m.index[id2]
	if !ok1 || !ok2 {
		return 0, false
	}

	return m.sym.At(i, j), true
}

// Pair is one cell from the lower triangle of a Matrix.
type Pair struct {
	Row    int
	Col    int
	Scaled float64
}

// Pairs lists every cell strictly below the diagonal, row by row. This is
// exactly the set of cells the heatmap draws.
func (m *Matrix) Pairs() []Pair {
	n := m.Len()
	out := make([]Pair, 0, n*(n-1)/2)
	for i := 1; i < n; i++ {
		for j := 0; j < i; j++ {
			out = append(out, Pair{Row: i, Col: j, Scaled: m.sym.At(i, j)})
		}
	}

	return out
}
