package annotation

import (
	"maps"
	"math/rand/v2"

	"github.com/nitro-bio/platemap/pkg/errors"
	"github.com/nitro-bio/platemap/pkg/plate"
)

// Shuffler permutes n elements in place. *rand.Rand satisfies it.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// RandomizeRequest is the input to [Randomize].
type RandomizeRequest struct {
	Size        plate.Size
	Excluded    []int
	Annotations []WellAnnotation
}

// NewRand returns a PCG-backed generator for seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0xdeadbeef))
}

// Randomize moves every annotated well to a random non-excluded well.
//
// The mapping is shared across all annotations: a well that belongs to two
// groups lands on the same destination in both. Distinct source wells get
// distinct destinations. Excluded wells stay where they are, and per-well
// metadata follows its well. The input is not modified.
//
// A nil rng uses a randomly seeded generator. The call fails with
// INSUFFICIENT_CAPACITY when the annotated wells outnumber the free wells.
func Randomize(req RandomizeRequest, rng Shuffler) ([]WellAnnotation, error) {
	if _, err := plate.Dimensions(req.Size); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = NewRand(rand.Uint64())
	}
	size := int(req.Size)

	excluded := make(map[int]bool, len(req.Excluded))
	for _, w := range req.Excluded {
		excluded[w] = true
	}

	available := make([]int, 0, size)
	for w := range size {
		if !excluded[w] {
			available = append(available, w)
		}
	}
	rng.Shuffle(len(available), func(i, j int) {
		available[i], available[j] = available[j], available[i]
	})

	// Excluded indices past the plate still take a destination.
	var sources []int
	seen := make(map[int]bool)
	for _, a := range req.Annotations {
		for _, w := range a.Wells {
			if seen[w] || (excluded[w] && w < size) {
				continue
			}
			seen[w] = true
			sources = append(sources, w)
		}
	}

	mapping := make(map[int]int, len(sources))
	for _, w := range sources {
		if len(available) == 0 {
			return nil, errors.New(errors.ErrCodeInsufficientCapacity,
				"failed to map well %d to a destination well: %d annotated wells, %d free wells",
				w, len(sources), size-countOnPlate(excluded, size))
		}
		mapping[w] = available[len(available)-1]
		available = available[:len(available)-1]
	}

	out := make([]WellAnnotation, len(req.Annotations))
	for i, a := range req.Annotations {
		moved := a.Clone()
		moved.WellData = nil
		for j, w := range a.Wells {
			dest := w
			if !excluded[w] {
				dest = mapping[w]
			}
			moved.Wells[j] = dest
			if fields, ok := a.WellData[w]; ok {
				if moved.WellData == nil {
					moved.WellData = make(map[int]map[string]string)
				}
				moved.WellData[dest] = maps.Clone(fields)
			}
		}
		out[i] = moved
	}
	return out, nil
}

func countOnPlate(excluded map[int]bool, size int) int {
	n := 0
	for w := range excluded {
		if w >= 0 && w < size {
			n++
		}
	}
	return n
}
