package shift

import (
	"math"
	"math/rand/v2"
	"strconv"
	"strings"
)

// Range is an inclusive bound on the per-row shift, in days.
type Range struct {
	Min, Max int
}

// Validate reports an *InvalidRangeError when Min > Max.
func (r Range) Validate() error {
	if r.Min > r.Max {
		return &InvalidRangeError{Min: r.Min, Max: r.Max}
	}
	return nil
}

// ParseBound parses one shift bound given as text. name is used in the error
// ("min_shift" or "max_shift"). Only base-10 integers are accepted: "1.5",
// "1e3" and "" all fail with *InvalidRangeTypeError.
func ParseBound(name, raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, &InvalidRangeTypeError{Bound: name, Value: raw, Err: err}
	}
	return n, nil
}

// ParseRange parses both bounds and validates their order.
func ParseRange(minRaw, maxRaw string) (Range, error) {
	lo, err := ParseBound("min_shift", minRaw)
	if err != nil {
		return Range{}, err
	}
	hi, err := ParseBound("max_shift", maxRaw)
	if err != nil {
		return Range{}, err
	}
	r := Range{Min: lo, Max: hi}
	if err := r.Validate(); err != nil {
		return Range{}, err
	}
	return r, nil
}

// Source is the random number source used for draws. *rand.Rand satisfies it.
type Source interface {
	Uint64() uint64
	Uint64N(n uint64) uint64
}

// NewSource returns a deterministic source: the same seed yields the same draws.
func NewSource(seed int64) Source {
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)>>1|1))
}

// NewRandomSource returns a source seeded from the runtime's entropy.
func NewRandomSource() Source {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// Draw returns an integer uniformly distributed over [r.Min, r.Max].
// r must be valid. The full int range is supported without overflow.
func Draw(src Source, r Range) int {
	// Two's complement wrap-around makes these conversions exact.
	span := uint64(int64(r.Max) - int64(r.Min))
	var off uint64
	if span == math.MaxUint64 {
		off = src.Uint64()
	} else {
		off = src.Uint64N(span + 1)
	}
	return int(int64(r.Min) + int64(off))
}
