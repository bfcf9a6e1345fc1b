package renderer

type Options struct {
	// Frame dims.
	FrameW uint32
	FrameH uint32

	// Max number of ray bounces.
	NumBounces uint32

	// Number of samples.
	SamplesPerPixel uint32

	// Number of tracers. The frame height must be a multiple of this value.
	NumTracers uint32

	// Randomize sample positions inside each pixel.
	Jitter bool

	// Seed for the tracer random number generators. Tracer i is seeded with
	// Seed+i. A zero value seeds the generators from the clock.
	Seed int64
}
