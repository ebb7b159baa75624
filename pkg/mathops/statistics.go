package mathops

import (
	"math"
	"sort"
)

// Summary holds the statistical measures computed for a sample.
// Mode is nil when the sample has no unique most-frequent value.
type Summary struct {
	Count    int      `json:"count"`
	Mean     float64  `json:"mean"`
	Median   float64  `json:"median"`
	Mode     *float64 `json:"mode,omitempty"`
	Min      float64  `json:"min"`
	Max      float64  `json:"max"`
	Range    float64  `json:"range"`
	Variance float64  `json:"variance"`
	StdDev   float64  `json:"std_dev"`
}

// Statistics computes summary statistics for nums. The input is not
// modified. An empty sample returns *DomainError. Variance and standard
// deviation are the sample (n-1) forms and are zero for samples of one.
func Statistics(nums []float64) (Summary, error) {
	if len(nums) == 0 {
		return Summary{}, domainErrf("stats", "cannot calculate statistics on an empty list")
	}

	sorted := append([]float64(nil), nums...)
	sort.Float64s(sorted)

	s := Summary{
		Count: len(sorted),
		Min:   sorted[0],
		Max:   sorted[len(sorted)-1],
	}
	s.Range = s.Max - s.Min

	var sum float64
	for _, v := range sorted {
		sum += v
	}
	s.Mean = sum / float64(len(sorted))

	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		s.Median = sorted[mid]
	} else {
		s.Median = (sorted[mid-1] + sorted[mid]) / 2
	}

	s.Mode = mode(sorted)

	if len(sorted) > 1 {
		var ss float64
		for _, v := range sorted {
			d := v - s.Mean
			ss += d * d
		}
		s.Variance = ss / float64(len(sorted)-1)
		s.StdDev = math.Sqrt(s.Variance)
	}

	return s, nil
}

// mode returns the unique most-frequent value in a sorted sample, or nil
// when the highest frequency is shared by more than one value.
func mode(sorted []float64) *float64 {
	var (
		best      float64
		bestCount int
		tied      bool
	)
	for i := 0; i < len(sorted); {
		j := i
		for j < len(sorted) && sorted[j] == sorted[i] {
			j++
		}
		switch count := j - i; {
		case count > bestCount:
			best, bestCount, tied = sorted[i], count, false
		case count == bestCount:
			tied = true
		}
		i = j
	}
	if tied {
		return nil
	}
	return &best
}
