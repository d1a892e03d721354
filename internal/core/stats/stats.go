// Package stats holds the numeric half of the duration analysis: descriptive
// summaries, the Mann-Whitney U test, and Cliff's delta effect size. Pure
// functions over float64 slices, no storage or transport concerns
package stats

import (
	"errors"
	"math"
	"sort"
)

// ErrInsufficientData is returned when a test needs more observations than a
// group provides
var ErrInsufficientData = errors.New("stats: need at least 2 observations per group")

// Summary is the descriptive profile of one sample
type Summary struct {
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	Std    float64 `json:"std"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Q25    float64 `json:"q25"`
	Q75    float64 `json:"q75"`
}

// Describe computes the descriptive summary of xs. Std is the sample standard
// deviation (0 for a single observation); quartiles use exclusive
// interpolation, falling back to min/max when fewer than 4 observations exist.
// A nil or empty sample yields the zero Summary
func Describe(xs []float64) Summary {
	n := len(xs)
	if n == 0 {
		return Summary{}
	}

	sorted := append([]float64(nil), xs...)
	sort.Float64s(sorted)

	var sum float64
	for _, x := range sorted {
		sum += x
	}
	mean := sum / float64(n)

	var sq float64
	for _, x := range sorted {
		d := x - mean
		sq += d * d
	}
	std := 0.0
	if n > 1 {
		std = math.Sqrt(sq / float64(n-1))
	}

	s := Summary{
		Count:  n,
		Mean:   mean,
		Median: median(sorted),
		Std:    std,
		Min:    sorted[0],
		Max:    sorted[n-1],
		Q25:    sorted[0],
		Q75:    sorted[n-1],
	}
	if n >= 4 {
		s.Q25 = quantile(sorted, 0.25)
		s.Q75 = quantile(sorted, 0.75)
	}
	return s
}

// median expects sorted input
func median(sorted []float64) float64 {
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

// quantile interpolates at position (n+1)*q over 1-based ranks, clamped to
// the sample range. Expects sorted input
func quantile(sorted []float64, q float64) float64 {
	n := len(sorted)
	pos := float64(n+1) * q
	if pos <= 1 {
		return sorted[0]
	}
	if pos >= float64(n) {
		return sorted[n-1]
	}
	lo := int(math.Floor(pos))
	frac := pos - float64(lo)
	return sorted[lo-1] + frac*(sorted[lo]-sorted[lo-1])
}

// TestResult is the Mann-Whitney outcome for two independent samples
type TestResult struct {
	UStatistic float64 `json:"u_statistic"`
	PValue     float64 `json:"p_value"`
}

// MannWhitneyU runs the two-sided Mann-Whitney U test using the normal
// approximation with tie correction and continuity correction. UStatistic is
// the U of the first sample. Both samples need at least 2 observations
func MannWhitneyU(xs, ys []float64) (TestResult, error) {
	n1, n2 := len(xs), len(ys)
	if n1 < 2 || n2 < 2 {
		return TestResult{}, ErrInsufficientData
	}

	ranks, tieSum := rankAll(xs, ys)

	var r1 float64
	for i := 0; i < n1; i++ {
		r1 += ranks[i]
	}
	u1 := r1 - float64(n1)*float64(n1+1)/2

	n := float64(n1 + n2)
	mu := float64(n1) * float64(n2) / 2
	variance := float64(n1) * float64(n2) / 12 * ((n + 1) - tieSum/(n*(n-1)))
	if variance <= 0 {
		// every observation tied with every other
		return TestResult{UStatistic: u1, PValue: 1}, nil
	}
	sigma := math.Sqrt(variance)

	diff := u1 - mu
	switch {
	case diff > 0.5:
		diff -= 0.5
	case diff < -0.5:
		diff += 0.5
	default:
		diff = 0
	}
	z := diff / sigma

	p := math.Erfc(math.Abs(z) / math.Sqrt2)
	if p > 1 {
		p = 1
	}
	return TestResult{UStatistic: u1, PValue: p}, nil
}

// rankAll assigns mid-ranks to the pooled samples, returning the ranks in
// input order (xs first) and the tie correction term sum(t^3 - t)
func rankAll(xs, ys []float64) (ranks []float64, tieSum float64) {
	type obs struct {
		v   float64
		idx int
	}
	all := make([]obs, 0, len(xs)+len(ys))
	for i, v := range xs {
		all = append(all, obs{v, i})
	}
	for i, v := range ys {
		all = append(all, obs{v, len(xs) + i})
	}
	sort.Slice(all, func(i, j int) bool { return all[i].v < all[j].v })

	ranks = make([]float64, len(all))
	for i := 0; i < len(all); {
		j := i
		for j < len(all) && all[j].v == all[i].v {
			j++
		}
		// 1-based mid-rank over the tied block [i, j)
		mid := float64(i+j+1) / 2
		for k := i; k < j; k++ {
			ranks[all[k].idx] = mid
		}
		if t := float64(j - i); t > 1 {
			tieSum += t*t*t - t
		}
		i = j
	}
	return ranks, tieSum
}

// CliffsDelta measures how often xs exceed ys, from -1 (always below) through
// 0 (no tendency) to +1 (always above). Empty input yields 0
func CliffsDelta(xs, ys []float64) float64 {
	if len(xs) == 0 || len(ys) == 0 {
		return 0
	}
	var more, less int
	for _, x := range xs {
		for _, y := range ys {
			switch {
			case x > y:
				more++
			case x < y:
				less++
			}
		}
	}
	return float64(more-less) / float64(len(xs)*len(ys))
}

// Effect size magnitude labels per Cohen's conventional thresholds
const (
	magnitudeNegligible = "negligible"
	magnitudeSmall      = "small"
	magnitudeMedium     = "medium"
	magnitudeLarge      = "large"
)

// InterpretDelta renders a Cliff's delta as "<magnitude> (<direction>)",
// e.g. "small (higher)". Direction reads from the first sample's side
func InterpretDelta(delta float64) string {
	abs := math.Abs(delta)
	var size string
	switch {
	case abs < 0.147:
		size = magnitudeNegligible
	case abs < 0.33:
		size = magnitudeSmall
	case abs < 0.474:
		size = magnitudeMedium
	default:
		size = magnitudeLarge
	}
	direction := "lower"
	if delta > 0 {
		direction = "higher"
	}
	return size + " (" + direction + ")"
}
