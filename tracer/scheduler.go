package tracer

import "errors"

var (
	ErrNoTracers        = errors.New("tracer: no tracers to schedule")
	ErrIndivisibleFrame = errors.New("tracer: frame height is not evenly divisible by the number of tracers")
)

// The BlockScheduler interface is implemented by all block scheduling algorithms.
type BlockScheduler interface {
	// Split frame into row blocks and assign one to each tracer. This
	// function returns the block height assignment for each tracer.
	Schedule(numTracers int, frameH uint32) ([]uint32, error)
}

// The even scheduler splits the frame into equally sized blocks.
type evenScheduler struct{}

// Create a scheduler that assigns each tracer a block of frameH / numTracers
// rows. Frames whose height is not a multiple of the tracer count are
// rejected.
func EvenScheduler() BlockScheduler {
	return evenScheduler{}
}

func (evenScheduler) Schedule(numTracers int, frameH uint32) ([]uint32, error) {
	if numTracers <= 0 {
		return nil, ErrNoTracers
	}
	if frameH == 0 || frameH%uint32(numTracers) != 0 {
		return nil, ErrIndivisibleFrame
	}

	blockH := frameH / uint32(numTracers)
	blockAssignment := make([]uint32, numTracers)
	for idx := range blockAssignment {
		blockAssignment[idx] = blockH
	}

	return blockAssignment, nil
}
