package kinshipmap

import (
	"fmt"

	"github.com/montanaflynn/stats"
)

// Summary describes the lower triangle of a classified Matrix.
type Summary struct {
	Pairs  int
	Min    float64
	Max    float64
	Mean   float64
	Median float64

	// Counts holds the number of pairs in each interval of the scale, in
	// the same order as Scale.Intervals.
	Counts []int
}

// Summarize computes descriptive statistics over every off-diagonal pair of m
// (including pairs absent from the input, which are zero) and tallies them by
// interval. Statistics are on the scaled values as classified by s.
func Summarize(m *Matrix, s Scale) (Summary, error) {
	out := Summary{Counts: make([]int, len(s.intervals))}

	pairs := m.Pairs()
	out.Pairs = len(pairs)
	if len(pairs) == 0 {
		return out, nil
	}

	data := make(stats.Float64Data, 0, len(pairs))
	for _, p := range pairs {
		v := s.Display(p.Scaled)
		data = append(data, v)
		out.Counts[s.Index(v)]++
	}

	var err error
	if out.Min, err = data.Min(); err != nil {
		return out, err
	}
	if out.Max, err = data.Max(); err != nil {
		return out, err
	}
	if out.Mean, err = data.Mean(); err != nil {
		return out, err
	}
	if out.Median, err = data.Median(); err != nil {
		return out, err
	}

	return out, nil
}

func (s Summary) String() string {
	return fmt.Sprintf("%d pairs; kinship*%g min %.2f, max %.2f, mean %.2f, median %.2f", s.Pairs, ScaleFactor, s.Min, s.Max, s.Mean, s.Median)
}
