package types

import "github.com/chewxy/math32"

// Channel values are clamped to this value before being scaled to 8 bits.
const maxChannelIntensity float32 = 0.999

// An 8-bit per channel RGB pixel.
type Pixel struct {
	R, G, B uint8
}

// Map an accumulated radiance sum over the given number of samples to an
// 8-bit pixel. Each channel is averaged, gamma corrected with gamma=2 and
// clamped to [0, 0.999] before scaling.
func ToneMap(sum Vec3, samples uint32) Pixel {
	scale := 1.0 / float32(samples)
	return Pixel{
		R: toByte(math32.Sqrt(scale * sum[0])),
		G: toByte(math32.Sqrt(scale * sum[1])),
		B: toByte(math32.Sqrt(scale * sum[2])),
	}
}

func toByte(c float32) uint8 {
	// NaN fails both comparisons; treat it as black.
	if !(c > 0) {
		return 0
	}
	if c > maxChannelIntensity {
		c = maxChannelIntensity
	}
	return uint8(256 * c)
}
