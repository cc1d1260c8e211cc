package cms

import (
	"errors"
	"math"
)

// ErrValue is the sentinel returned by the *WithHashes entry points when
// fewer precomputed hashes than the sketch depth are supplied.
const ErrValue int32 = math.MinInt32

var (
	// ErrInvalidDimensions is returned when width or depth is below 1.
	ErrInvalidDimensions = errors.New("cms: width and depth must be at least 1")

	// ErrInvalidProbability is returned when the error rate or confidence is
	// outside the open interval (0, 1).
	ErrInvalidProbability = errors.New("cms: error rate and confidence must be in (0, 1)")
)

// HashFunc yields depth independent 64-bit hash values for a key, one per
// sketch row.
type HashFunc func(depth uint32, key string) []uint64

// Options represents the options for configuring a Sketch.
type Options struct {
	// Hash overrides the hash generation function. If nil, DefaultHash
	// (seed-mixed FNV-1a) is used.
	Hash HashFunc
}

// Sketch is a count-min sketch.
type Sketch struct {
	width      uint32
	depth      uint32
	total      int64
	confidence float64
	errorRate  float64
	hashFn     HashFunc
	bins       []int32 // row-major, row i at offset i*width
}

// NewByDim creates a Sketch with the given matrix dimensions. The derived
// accuracy is confidence = 1 - 2^(-depth) and error rate = 2/width.
func NewByDim(width, depth uint32, optFns ...func(o *Options)) (*Sketch, error) {
	if width < 1 || depth < 1 {
		return nil, ErrInvalidDimensions
	}

	confidence := 1 - 1/math.Pow(2, float64(depth))
	errorRate := 2 / float64(width)

	return newSketch(width, depth, errorRate, confidence, optFns), nil
}

// NewByProb creates a Sketch sized for the given error rate and confidence,
// both strictly inside (0, 1). The derived dimensions are
// width = ceil(2/errorRate) and depth = ceil(log2(1/(1-confidence))), each
// floored at 1.
func NewByProb(errorRate, confidence float64, optFns ...func(o *Options)) (*Sketch, error) {
	if errorRate <= 0 || errorRate >= 1 {
		return nil, ErrInvalidProbability
	}

	if confidence <= 0 || confidence >= 1 {
		return nil, ErrInvalidProbability
	}

	width := uint32(math.Ceil(2 / errorRate))
	depth := uint32(math.Ceil(math.Log2(1 / (1 - confidence))))

	if width < 1 {
		width = 1
	}

	if depth < 1 {
		depth = 1
	}

	return newSketch(width, depth, errorRate, confidence, optFns), nil
}

func newSketch(width, depth uint32, errorRate, confidence float64, optFns []func(o *Options)) *Sketch {
	opts := Options{
		Hash: DefaultHash,
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.Hash == nil {
		opts.Hash = DefaultHash
	}

	return &Sketch{
		width:      width,
		depth:      depth,
		confidence: confidence,
		errorRate:  errorRate,
		hashFn:     opts.Hash,
		bins:       make([]int32, width*depth),
	}
}

// Width returns the number of bins per row.
func (s *Sketch) Width() uint32 { return s.width }

// Depth returns the number of rows.
func (s *Sketch) Depth() uint32 { return s.depth }

// Total returns the net sum of all increments and decrements applied.
func (s *Sketch) Total() int64 { return s.total }

// Confidence returns the probability that an estimate is within the error
// bound.
func (s *Sketch) Confidence() float64 { return s.confidence }

// ErrorRate returns the maximum relative error per estimate.
func (s *Sketch) ErrorRate() float64 { return s.errorRate }

// Hashes returns the per-row hash values for key, suitable for the
// *WithHashes entry points.
func (s *Sketch) Hashes(key string) []uint64 {
	return s.hashFn(s.depth, key)
}

// Add increments key by one and returns the post-update point estimate.
func (s *Sketch) Add(key string) int32 {
	return s.AddN(key, 1)
}

// AddN increments key by x and returns the post-update point estimate, the
// minimum bin value across rows. Bins saturate at math.MaxInt32.
func (s *Sketch) AddN(key string, x uint32) int32 {
	return s.AddNWithHashes(s.Hashes(key), x)
}

// AddNWithHashes is AddN over precomputed hashes. It returns ErrValue
// without mutating the sketch when fewer than Depth hashes are given.
func (s *Sketch) AddNWithHashes(hashes []uint64, x uint32) int32 {
	if uint32(len(hashes)) < s.depth {
		return ErrValue
	}

	estimate := int32(math.MaxInt32)

	for i := uint32(0); i < s.depth; i++ {
		bin := uint32(hashes[i]%uint64(s.width)) + i*s.width
		s.bins[bin] = saturatingAdd(s.bins[bin], x)

		if s.bins[bin] < estimate {
			estimate = s.bins[bin]
		}
	}

	s.total += int64(x)

	return estimate
}

// Remove decrements key by one and returns the post-update point estimate.
func (s *Sketch) Remove(key string) int32 {
	return s.RemoveN(key, 1)
}

// RemoveN decrements key by x and returns the post-update point estimate.
// Bins saturate at math.MinInt32 and are deliberately not clamped at zero,
// so removal-heavy workloads can drive an estimate negative.
func (s *Sketch) RemoveN(key string, x uint32) int32 {
	return s.RemoveNWithHashes(s.Hashes(key), x)
}

// RemoveNWithHashes is RemoveN over precomputed hashes. It returns ErrValue
// without mutating the sketch when fewer than Depth hashes are given.
func (s *Sketch) RemoveNWithHashes(hashes []uint64, x uint32) int32 {
	if uint32(len(hashes)) < s.depth {
		return ErrValue
	}

	estimate := int32(math.MaxInt32)

	for i := uint32(0); i < s.depth; i++ {
		bin := uint32(hashes[i]%uint64(s.width)) + i*s.width
		s.bins[bin] = saturatingSub(s.bins[bin], x)

		if s.bins[bin] < estimate {
			estimate = s.bins[bin]
		}
	}

	s.total -= int64(x)

	return estimate
}

// Count returns the point estimate for key, the minimum of its bins across
// rows. It never undercounts a true non-negative count.
func (s *Sketch) Count(key string) int32 {
	return s.CountWithHashes(s.Hashes(key))
}

// CountWithHashes is Count over precomputed hashes.
func (s *Sketch) CountWithHashes(hashes []uint64) int32 {
	if uint32(len(hashes)) < s.depth {
		return ErrValue
	}

	estimate := int32(math.MaxInt32)

	for i := uint32(0); i < s.depth; i++ {
		bin := uint32(hashes[i]%uint64(s.width)) + i*s.width
		if s.bins[bin] < estimate {
			estimate = s.bins[bin]
		}
	}

	return estimate
}

// Mean returns the truncating integer mean of key's bins across rows. It is
// a separate, collision-sensitive estimator and can undercount as well as
// overcount.
func (s *Sketch) Mean(key string) int32 {
	return s.MeanWithHashes(s.Hashes(key))
}

// MeanWithHashes is Mean over precomputed hashes.
func (s *Sketch) MeanWithHashes(hashes []uint64) int32 {
	if uint32(len(hashes)) < s.depth {
		return ErrValue
	}

	sum := int32(0)

	for i := uint32(0); i < s.depth; i++ {
		bin := uint32(hashes[i]%uint64(s.width)) + i*s.width
		sum += s.bins[bin]
	}

	return sum / int32(s.depth)
}

// Reset zeroes every bin and the running total. The matrix dimensions are
// fixed at construction and survive a reset.
func (s *Sketch) Reset() {
	for i := range s.bins {
		s.bins[i] = 0
	}

	s.total = 0
}

// saturatingAdd adds x to a, clamping at math.MaxInt32. A bin already
// saturated in either direction stays put.
func saturatingAdd(a int32, x uint32) int32 {
	if a == math.MaxInt32 || a == math.MinInt32 {
		return a
	}

	sum := int64(a) + int64(x)
	if sum > math.MaxInt32 {
		return math.MaxInt32
	}

	return int32(sum)
}

// saturatingSub subtracts x from a, clamping at math.MinInt32. A bin already
// saturated in either direction stays put.
func saturatingSub(a int32, x uint32) int32 {
	if a == math.MaxInt32 || a == math.MinInt32 {
		return a
	}

	diff := int64(a) - int64(x)
	if diff < math.MinInt32 {
		return math.MinInt32
	}

	return int32(diff)
}
