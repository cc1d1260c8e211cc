package kvkit

import (
	"strings"

	"github.com/hupe1980/kvkit/cms"
	"github.com/hupe1980/kvkit/skiplist"
)

// Default matrix dimensions for sketches created without explicit sizing.
const (
	DefaultSketchWidth uint32 = 100
	DefaultSketchDepth uint32 = 5
)

// Registry owns named frequency-estimator and ordered-set instances on
// behalf of the command layer. It is the sole owner of the instances it
// holds and is not safe for concurrent use.
type Registry struct {
	sketches map[string]*cms.Sketch
	sets     map[string]*skiplist.SkipList[string]
	opts     options
}

// NewRegistry creates an empty Registry.
func NewRegistry(optFns ...Option) *Registry {
	return &Registry{
		sketches: make(map[string]*cms.Sketch),
		sets:     make(map[string]*skiplist.SkipList[string]),
		opts:     applyOptions(optFns),
	}
}

// CreateSketch registers a sketch under name with the given dimensions.
// Zero width and depth select the registry defaults. A name that is already
// registered is rejected with ErrSketchExists.
func (r *Registry) CreateSketch(name string, width, depth uint32) error {
	if _, ok := r.sketches[name]; ok {
		r.opts.logger.LogCreateSketch(name, width, depth, ErrSketchExists)
		return ErrSketchExists
	}

	if width == 0 && depth == 0 {
		width, depth = r.opts.defaultWidth, r.opts.defaultDepth
	}

	sketch, err := cms.NewByDim(width, depth)
	if err != nil {
		r.opts.logger.LogCreateSketch(name, width, depth, err)
		return err
	}

	r.sketches[name] = sketch
	r.opts.logger.LogCreateSketch(name, width, depth, nil)

	return nil
}

// CreateSketchByProb registers a sketch under name sized from a target error
// rate and confidence.
func (r *Registry) CreateSketchByProb(name string, errorRate, confidence float64) error {
	if _, ok := r.sketches[name]; ok {
		r.opts.logger.LogCreateSketch(name, 0, 0, ErrSketchExists)
		return ErrSketchExists
	}

	sketch, err := cms.NewByProb(errorRate, confidence)
	if err != nil {
		r.opts.logger.LogCreateSketch(name, 0, 0, err)
		return err
	}

	r.sketches[name] = sketch
	r.opts.logger.LogCreateSketch(name, sketch.Width(), sketch.Depth(), nil)

	return nil
}

// Sketch returns the sketch registered under name, or ErrSketchNotFound.
func (r *Registry) Sketch(name string) (*cms.Sketch, error) {
	sketch, ok := r.sketches[name]
	if !ok {
		return nil, ErrSketchNotFound
	}

	return sketch, nil
}

// OrderedSet returns the ordered set registered under name, creating it on
// first use. Member order is lexicographic.
func (r *Registry) OrderedSet(name string) *skiplist.SkipList[string] {
	if set, ok := r.sets[name]; ok {
		return set
	}

	set, _ := skiplist.New(strings.Compare) // compare is non-nil, cannot fail
	r.sets[name] = set

	return set
}

// Len returns the number of registered sketches.
func (r *Registry) Len() int {
	return len(r.sketches)
}

// SaveToFile persists the registry to path.
//
// Persistence is declared by the upstream command surface but carries no
// on-disk format yet; the call currently succeeds without writing.
func (r *Registry) SaveToFile(path string) error {
	_ = path
	return nil
}

// LoadFromFile restores the registry from path.
//
// See SaveToFile; the call currently succeeds without reading.
func (r *Registry) LoadFromFile(path string) error {
	_ = path
	return nil
}
