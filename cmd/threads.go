package cmd

import (
	"fmt"
	"runtime"
	"strconv"
	"strings"

	"github.com/shirou/gopsutil/cpu"
)

// Select the number of tracers for a frame with the given height. Each
// tracer renders an equal band of rows so the result is the largest divisor
// of frameH that does not exceed the number of logical CPUs.
func autoTracerCount(frameH uint32) uint32 {
	numCPU, err := cpu.Counts(true)
	if err != nil || numCPU < 1 {
		logger.Warningf("could not detect logical cpu count; falling back to runtime.NumCPU")
		numCPU = runtime.NumCPU()
	}

	return largestDivisor(frameH, uint32(numCPU))
}

// Find the largest divisor of n that is less than or equal to limit.
func largestDivisor(n, limit uint32) uint32 {
	if limit > n {
		limit = n
	}
	for d := limit; d > 1; d-- {
		if n%d == 0 {
			return d
		}
	}
	return 1
}

// Parse an aspect ratio given either as "w:h" or as a decimal number.
func parseAspect(value string) (float32, error) {
	var aspect float32
	if w, h, found := strings.Cut(value, ":"); found {
		fw, errW := strconv.ParseFloat(strings.TrimSpace(w), 32)
		fh, errH := strconv.ParseFloat(strings.TrimSpace(h), 32)
		if errW != nil || errH != nil || fh == 0 {
			return 0, fmt.Errorf("invalid aspect ratio %q", value)
		}
		aspect = float32(fw) / float32(fh)
	} else {
		f, err := strconv.ParseFloat(strings.TrimSpace(value), 32)
		if err != nil {
			return 0, fmt.Errorf("invalid aspect ratio %q", value)
		}
		aspect = float32(f)
	}

	if !(aspect > 0) {
		return 0, fmt.Errorf("aspect ratio must be positive; got %q", value)
	}
	return aspect, nil
}
