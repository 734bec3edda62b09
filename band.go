package kinshipmap

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Degree is a relationship band, ordered from least to most related.
type Degree byte

const (
	Unrelated Degree = iota
	ThirdDegree
	SecondDegree
	FirstDegree
	Duplicate
)

func (d Degree) String() string {
	switch d {
	case Unrelated:
		return "Unrelated"
	case ThirdDegree:
		return "Third degree"
	case SecondDegree:
		return "Second degree"
	case FirstDegree:
		return "First degree"
	case Duplicate:
		return "Duplicate"
	}

	return fmt.Sprintf("Degree(%d)", d)
}

// Threshold returns the kinship coefficient 1/2^(n/2). KING's inference
// criteria place the lower bound of each band at n = 9 (third degree), 7
// (second), 5 (first) and 3 (duplicate or monozygotic twin).
func Threshold(n float64) float64 {
	return 1 / math.Pow(2, n/2)
}

// Unscaled lower bounds of each related band.
var (
	ThirdDegreeThreshold  = Threshold(9)
	SecondDegreeThreshold = Threshold(7)
	FirstDegreeThreshold  = Threshold(5)
	DuplicateThreshold    = Threshold(3)
)

// The heatmap covers kinship from -1 to 0.5.
const (
	ScaleMin = -1 * ScaleFactor
	ScaleMax = 0.5 * ScaleFactor
)

// ScaledThresholds returns the third, second, first and duplicate thresholds
// multiplied by ScaleFactor, in increasing order.
func ScaledThresholds() [4]float64 {
	return [4]float64{
		ThirdDegreeThreshold * ScaleFactor,
		SecondDegreeThreshold * ScaleFactor,
		FirstDegreeThreshold * ScaleFactor,
		DuplicateThreshold * ScaleFactor,
	}
}

// NegativePolicy decides what happens to negative kinship values.
type NegativePolicy byte

const (
	// PreserveNegative keeps the sign and classifies negatives into five
	// mirrored bands below zero.
	PreserveNegative NegativePolicy = iota

	// ClampNegative treats every negative value as zero, i.e. unrelated.
	ClampNegative
)

func (p NegativePolicy) String() string {
	if p == ClampNegative {
		return "clamp"
	}

	return "preserve"
}

// ParseNegativePolicy accepts "preserve" or "clamp".
func ParseNegativePolicy(s string) (NegativePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "preserve", "":
		return PreserveNegative, nil
	case "clamp":
		return ClampNegative, nil
	}

	return PreserveNegative, fmt.Errorf("unknown negative kinship policy %q (expected preserve or clamp)", s)
}

// Interval is one left-inclusive band of scaled kinship: [Lower, Upper).
// The topmost interval also includes ScaleMax.
type Interval struct {
	Lower float64
	Upper float64

	// Degree is the band this interval mirrors. Negative intervals reuse the
	// degree at the same distance from zero, so that the colour scale is
	// symmetric.
	Degree   Degree
	Negative bool

	// Label is what the colour bar prints in the middle of the interval.
	Label string
}

// Relationship is the biological reading of the interval: anything negative
// is unrelated.
func (iv Interval) Relationship() Degree {
	if iv.Negative {
		return Unrelated
	}

	return iv.Degree
}

// Name is a single-line name for the interval, e.g. "First degree" or
// "First degree (negative)".
func (iv Interval) Name() string {
	if iv.Negative {
		return iv.Degree.String() + " (negative)"
	}

	return iv.Degree.String()
}

func (iv Interval) String() string {
	if iv.Negative {
		return fmt.Sprintf("[%.2f, %.2f) negative %s", iv.Lower, iv.Upper, iv.Degree)
	}

	return fmt.Sprintf("[%.2f, %.2f) %s", iv.Lower, iv.Upper, iv.Degree)
}

// Scale partitions scaled kinship values into ordered intervals with no gaps
// and no overlaps.
type Scale struct {
	policy    NegativePolicy
	intervals []Interval
}

// NewScale builds the interval partition for a policy.
func NewScale(policy NegativePolicy) Scale {
	t := ScaledThresholds()
	third, second, first, dup := t[0], t[1], t[2], t[3]

	positive := []Interval{
		{Lower: 0, Upper: third, Degree: Unrelated, Label: Unrelated.String()},
		{Lower: third, Upper: second, Degree: ThirdDegree, Label: ThirdDegree.String()},
		{Lower: second, Upper: first, Degree: SecondDegree, Label: SecondDegree.String()},
		{Lower: first, Upper: dup, Degree: FirstDegree, Label: FirstDegree.String()},
		{Lower: dup, Upper: ScaleMax, Degree: Duplicate, Label: Duplicate.String()},
	}

	if policy == ClampNegative {
		return Scale{policy: policy, intervals: positive}
	}

	negative := []Interval{
		{Lower: ScaleMin, Upper: -dup, Degree: Duplicate, Negative: true, Label: "High genetic distance\n(Negative Value)"},
		{Lower: -dup, Upper: -first, Degree: FirstDegree, Negative: true},
		{Lower: -first, Upper: -second, Degree: SecondDegree, Negative: true},
		{Lower: -second, Upper: -third, Degree: ThirdDegree, Negative: true},
		{Lower: -third, Upper: 0, Degree: Unrelated, Negative: true, Label: "Unrelated and from\ndifferent populations\n(Negative Value)"},
	}

	return Scale{policy: policy, intervals: append(negative, positive...)}
}

// Policy returns the negative-value policy the scale was built with.
func (s Scale) Policy() NegativePolicy {
	return s.policy
}

// Intervals returns the partition from most negative to most positive.
func (s Scale) Intervals() []Interval {
	out := make([]Interval, len(s.intervals))
	copy(out, s.intervals)
	return out
}

// Boundaries returns every interval edge in increasing order, including the
// scale minimum and maximum.
func (s Scale) Boundaries() []float64 {
	out := make([]float64, 0, len(s.intervals)+1)
	for _, iv := range s.intervals {
		out = append(out, iv.Lower)
	}
	if len(s.intervals) > 0 {
		out = append(out, s.intervals[len(s.intervals)-1].Upper)
	}

	return out
}

// Min is the lowest value the scale draws.
func (s Scale) Min() float64 {
	return s.intervals[0].Lower
}

// Max is the highest value the scale draws.
func (s Scale) Max() float64 {
	return s.intervals[len(s.intervals)-1].Upper
}

// Display is the value that is classified and annotated for v. Under
// ClampNegative negatives become zero; otherwise v is returned unchanged.
func (s Scale) Display(v float64) float64 {
	if s.policy == ClampNegative && v < 0 {
		return 0
	}

	return v
}

// Index returns the position of the interval holding v. A value sitting on a
// boundary belongs to the interval that starts there. Values outside the scale
// land in the first or last interval.
func (s Scale) Index(v float64) int {
	v = s.Display(v)

	i := sort.Search(len(s.intervals), func(i int) bool { return s.intervals[i].Lower > v }) - 1
	if i < 0 {
		return 0
	}

	return i
}

// Classify returns the interval holding v.
func (s Scale) Classify(v float64) Interval {
	return s.intervals[s.Index(v)]
}

// ClassifyMatrix returns the interval index of every cell of m.
func ClassifyMatrix(m *Matrix, s Scale) [][]int {
	n := m.Len()
	out := make([][]int, n)
	for i := 0; i < n; i++ {
		out[i] = make([]int, n)
		for j := 0; j < n; j++ {
			out[i][j] = s.Index(m.At(i, j))
		}
	}

	return out
}
