package kinshipmap

// Source identifies which KING table a row came from.
type Source byte

const (
	SourceUnknown Source = iota
	SameFamily           // <prefix>.kin
	CrossFamily          // <prefix>.kin0
)

func (s Source) String() string {
	switch s {
	case SameFamily:
		return "kin"
	case CrossFamily:
		return "kin0"
	}

	return "unknown"
}

// Relationship is one normalized row from either KING table. For same-family
// rows FID2 is a copy of FID1.
type Relationship struct {
	ID1     string
	ID2     string
	FID1    string
	FID2    string
	Kinship float64
	Source  Source
}
