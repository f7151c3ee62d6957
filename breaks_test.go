package housestyle

import (
	"errors"
	"math"
	"reflect"
	"testing"
)

func TestGenerateBreaks(t *testing.T) {
	t.Run("round span snaps to step of five", func(t *testing.T) {
		brk, err := GenerateBreaks([]float64{0, 3, 7, 12, 18, 25})
		if err != nil {
			t.Fatalf("GenerateBreaks() returned error: %v", err)
		}
		want := []float64{0, 5, 10, 15, 20, 25}
		if !almostEqualSlice(brk.Major, want) {
			t.Errorf("Major = %v, want %v", brk.Major, want)
		}
		if brk.Limits.Min() != 0 || brk.Limits.Max() != 25 {
			t.Errorf("Limits = (%g, %g), want (0, 25)", brk.Limits.Min(), brk.Limits.Max())
		}
	})

	t.Run("majors are strictly increasing with constant step", func(t *testing.T) {
		series := [][]float64{
			{0, 3, 7, 12, 18, 25},
			{-12.4, 3.7, 41.9},
			{0.02, 0.07, 0.031},
			{-900, 1200, 45, 7},
			{1e6, 2.5e6},
		}
		for _, values := range series {
			brk, err := GenerateBreaks(values)
			if err != nil {
				t.Fatalf("GenerateBreaks(%v) returned error: %v", values, err)
			}
			if len(brk.Major) < 2 {
				t.Fatalf("GenerateBreaks(%v): too few majors: %v", values, brk.Major)
			}
			step := brk.Major[1] - brk.Major[0]
			for i := 1; i < len(brk.Major); i++ {
				diff := brk.Major[i] - brk.Major[i-1]
				if diff <= 0 {
					t.Errorf("GenerateBreaks(%v): majors not increasing at %d: %v", values, i, brk.Major)
				}
				if !almostEqual(diff, step) {
					t.Errorf("GenerateBreaks(%v): step not constant at %d: %g != %g", values, i, diff, step)
				}
			}
		}
	})

	t.Run("step belongs to the 1-2-5 ladder", func(t *testing.T) {
		series := [][]float64{
			{0, 3, 7, 12, 18, 25},
			{-12.4, 3.7, 41.9},
			{0.02, 0.07, 0.031},
			{-900, 1200, 45, 7},
			{1e6, 2.5e6},
			{4.5, 4.7},
		}
		for _, values := range series {
			brk, err := GenerateBreaks(values)
			if err != nil {
				t.Fatalf("GenerateBreaks(%v) returned error: %v", values, err)
			}
			var (
				step = brk.Step()
				mag  = math.Pow(10, math.Floor(math.Log10(step)))
				unit = step / mag
			)
			if !almostEqual(unit, 1) && !almostEqual(unit, 2) && !almostEqual(unit, 5) {
				t.Errorf("GenerateBreaks(%v): step %g not on the 1-2-5 ladder", values, step)
			}
		}
	})

	t.Run("limits enclose all majors", func(t *testing.T) {
		brk, err := GenerateBreaks([]float64{-3.3, 18.1, 7.7})
		if err != nil {
			t.Fatalf("GenerateBreaks() returned error: %v", err)
		}
		if brk.Limits.Min() > brk.Major[0] {
			t.Errorf("Limits.Min() = %g above first major %g", brk.Limits.Min(), brk.Major[0])
		}
		if last := brk.Major[len(brk.Major)-1]; brk.Limits.Max() < last {
			t.Errorf("Limits.Max() = %g below last major %g", brk.Limits.Max(), last)
		}
	})

	t.Run("minors lie strictly between consecutive majors", func(t *testing.T) {
		brk, err := GenerateBreaks([]float64{0, 3, 7, 12, 18, 25})
		if err != nil {
			t.Fatalf("GenerateBreaks() returned error: %v", err)
		}
		if len(brk.Minor) != len(brk.Major)-1 {
			t.Fatalf("got %d minors for %d majors", len(brk.Minor), len(brk.Major))
		}
		for i, m := range brk.Minor {
			if m <= brk.Major[i] || m >= brk.Major[i+1] {
				t.Errorf("minor %g not strictly between %g and %g", m, brk.Major[i], brk.Major[i+1])
			}
		}
	})

	t.Run("constant series gets a substituted span", func(t *testing.T) {
		brk, err := GenerateBreaks([]float64{100, 100, 100})
		if err != nil {
			t.Fatalf("GenerateBreaks() returned error: %v", err)
		}
		if len(brk.Major) == 0 {
			t.Fatal("Major is empty")
		}
		if brk.Limits.Min() > 100 || brk.Limits.Max() < 100 {
			t.Errorf("Limits = (%g, %g) do not enclose 100", brk.Limits.Min(), brk.Limits.Max())
		}
		if brk.Step() <= 0 {
			t.Errorf("Step() = %g, want > 0", brk.Step())
		}
	})

	t.Run("single value behaves like a constant series", func(t *testing.T) {
		brk, err := GenerateBreaks([]float64{5})
		if err != nil {
			t.Fatalf("GenerateBreaks() returned error: %v", err)
		}
		if len(brk.Major) < 2 {
			t.Errorf("Major = %v, want at least two ticks", brk.Major)
		}
	})

	t.Run("non finite values are discarded", func(t *testing.T) {
		brk, err := GenerateBreaks([]float64{math.NaN(), 0, math.Inf(1), 25, math.NaN()})
		if err != nil {
			t.Fatalf("GenerateBreaks() returned error: %v", err)
		}
		if last := brk.Major[len(brk.Major)-1]; last > 30 {
			t.Errorf("infinite value leaked into majors: %v", brk.Major)
		}
	})

	t.Run("empty series is rejected", func(t *testing.T) {
		_, err := GenerateBreaks(nil)
		var ie InvalidInputError
		if !errors.As(err, &ie) {
			t.Fatalf("GenerateBreaks(nil) error = %v, want InvalidInputError", err)
		}
	})

	t.Run("all nan series is rejected", func(t *testing.T) {
		_, err := GenerateBreaks([]float64{math.NaN(), math.NaN()})
		var ie InvalidInputError
		if !errors.As(err, &ie) {
			t.Fatalf("error = %v, want InvalidInputError", err)
		}
	})

	t.Run("generation is pure", func(t *testing.T) {
		values := []float64{-3.3, 18.1, 7.7, 0.4}
		fst, err := GenerateBreaks(values)
		if err != nil {
			t.Fatalf("GenerateBreaks() returned error: %v", err)
		}
		snd, err := GenerateBreaks(values)
		if err != nil {
			t.Fatalf("GenerateBreaks() returned error: %v", err)
		}
		if !reflect.DeepEqual(fst, snd) {
			t.Errorf("two runs differ: %+v != %+v", fst, snd)
		}
	})
}

func TestGenerateBreaksBy(t *testing.T) {
	t.Run("forced step is honored", func(t *testing.T) {
		brk, err := GenerateBreaksBy([]float64{1, 19}, 4)
		if err != nil {
			t.Fatalf("GenerateBreaksBy() returned error: %v", err)
		}
		want := []float64{0, 4, 8, 12, 16, 20}
		if !almostEqualSlice(brk.Major, want) {
			t.Errorf("Major = %v, want %v", brk.Major, want)
		}
	})

	t.Run("non positive step is rejected", func(t *testing.T) {
		for _, step := range []float64{0, -2, math.NaN(), math.Inf(1)} {
			_, err := GenerateBreaksBy([]float64{1, 19}, step)
			var ie InvalidInputError
			if !errors.As(err, &ie) {
				t.Errorf("GenerateBreaksBy(step=%g) error = %v, want InvalidInputError", step, err)
			}
		}
	})
}

func TestBreaksDomain(t *testing.T) {
	brk, err := GenerateBreaks([]float64{0, 25})
	if err != nil {
		t.Fatalf("GenerateBreaks() returned error: %v", err)
	}
	if got := brk.Domain().Extend(); !almostEqual(got, 25) {
		t.Errorf("Domain().Extend() = %g, want 25", got)
	}
	if got := brk.Flip().Extend(); !almostEqual(got, -25) {
		t.Errorf("Flip().Extend() = %g, want -25", got)
	}
}

func almostEqual(a, b float64) bool {
	if a == b {
		return true
	}
	scale := math.Max(math.Abs(a), math.Abs(b))
	return math.Abs(a-b) <= 1e-9*scale
}

func almostEqualSlice(got, want []float64) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if !almostEqual(got[i], want[i]) {
			return false
		}
	}
	return true
}
