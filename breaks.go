package housestyle

import (
	"fmt"
	"math"
)

const (
	defaultBreakCount = 6
	minSpan           = 1e-10
)

type InvalidInputError struct {
	Reason string
}

func (e InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input series: %s", e.Reason)
}

// Breaks holds the tick positions and display range computed for one
// axis: evenly spaced major ticks, minor ticks halfway between them,
// and limits that enclose all majors.
type Breaks struct {
	Major  []float64
	Minor  []float64
	Limits Range
}

func (b Breaks) Step() float64 {
	if len(b.Major) < 2 {
		return 0
	}
	return b.Major[1] - b.Major[0]
}

func (b Breaks) Domain() Domain[float64] {
	return NumberDomain(b.Limits.F, b.Limits.T)
}

// Flip returns the limits as a reversed domain, the form wanted by a
// vertical scaler where pixel coordinates grow downwards.
func (b Breaks) Flip() Domain[float64] {
	return NumberDomain(b.Limits.T, b.Limits.F)
}

// GenerateBreaks computes major ticks, minor ticks and limits from the
// given series. The step is the smallest value of the 1-2-5 ladder
// that divides the data span into at most defaultBreakCount intervals,
// majors are aligned on multiples of the step and extended to enclose
// the data. NaN and infinite entries are discarded.
func GenerateBreaks(series []float64) (Breaks, error) {
	return generateBreaks(series, 0)
}

// GenerateBreaksBy is GenerateBreaks with a caller-chosen step.
func GenerateBreaksBy(series []float64, step float64) (Breaks, error) {
	if step <= 0 || math.IsNaN(step) || math.IsInf(step, 0) {
		return Breaks{}, InvalidInputError{Reason: "step should be a positive finite number"}
	}
	return generateBreaks(series, step)
}

func generateBreaks(series []float64, step float64) (Breaks, error) {
	if len(series) == 0 {
		return Breaks{}, InvalidInputError{Reason: "empty series"}
	}
	values := keepFinite(series)
	if len(values) == 0 {
		return Breaks{}, InvalidInputError{Reason: "no finite value"}
	}
	min, max := minMax(values)
	if max-min < minSpan {
		min, max = min-1, max+1
	}
	if step == 0 {
		step = niceStep(max-min, defaultBreakCount)
	}
	var (
		fst = math.Floor(min/step) * step
		lst = math.Ceil(max/step) * step
		n   = int(math.Round((lst - fst) / step))
	)
	if n == 0 {
		lst = fst + step
		n = 1
	}
	major := make([]float64, 0, n+1)
	for i := 0; i <= n; i++ {
		major = append(major, fst+float64(i)*step)
	}
	return Breaks{
		Major:  major,
		Minor:  midpoints(major),
		Limits: NewRange(fst, lst),
	}, nil
}

// niceStep rounds span/count up to the nearest value of the form
// 1, 2 or 5 times a power of ten.
func niceStep(span float64, count int) float64 {
	var (
		raw = span / float64(count)
		mag = math.Pow(10, math.Floor(math.Log10(raw)))
	)
	for _, m := range []float64{1, 2, 5} {
		if m*mag >= raw {
			return m * mag
		}
	}
	return 10 * mag
}

func midpoints(major []float64) []float64 {
	var list []float64
	for i := 1; i < len(major); i++ {
		list = append(list, major[i-1]+(major[i]-major[i-1])/2)
	}
	return list
}

func keepFinite(series []float64) []float64 {
	list := make([]float64, 0, len(series))
	for _, v := range series {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		list = append(list, v)
	}
	return list
}

func minMax(values []float64) (float64, float64) {
	min, max := values[0], values[0]
	for _, v := range values {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}
