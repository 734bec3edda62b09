package kinshipmap

// Column names used by KING. Columns not listed here (N_SNP, Z0, Phi, HetHet,
// IBS0, Error) are present in the files but dropped on load.
const (
	ColFID     = "FID"
	ColFID1    = "FID1"
	ColFID2    = "FID2"
	ColID1     = "ID1"
	ColID2     = "ID2"
	ColKinship = "Kinship"
)

// Layout describes one of the two KING output tables.
type Layout struct {
	Suffix   string
	Source   Source
	Required []string
}

var (
	// KinLayout is the within-family table. It has a single FID column.
	KinLayout = Layout{
		Suffix:   ".kin",
		Source:   SameFamily,
		Required: []string{ColFID, ColID1, ColID2, ColKinship},
	}

	// Kin0Layout is the between-family table.
	Kin0Layout = Layout{
		Suffix:   ".kin0",
		Source:   CrossFamily,
		Required: []string{ColFID1, ColID1, ColFID2, ColID2, ColKinship},
	}
)

// Layouts are tried in this order, so .kin rows always precede .kin0 rows.
var Layouts = []Layout{KinLayout, Kin0Layout}

// kinRecord is one row of a .kin file. Kinship stays a string so that a bad
// value can be reported with its line number.
type kinRecord struct {
	FID     string `csv:"FID"`
	ID1     string `csv:"ID1"`
	ID2     string `csv:"ID2"`
	Kinship string `csv:"Kinship"`
}

// kin0Record is one row of a .kin0 file.
type kin0Record struct {
	FID1    string `csv:"FID1"`
	ID1     string `csv:"ID1"`
	FID2    string `csv:"FID2"`
	ID2     string `csv:"ID2"`
	Kinship string `csv:"Kinship"`
}
