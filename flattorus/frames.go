package flattorus

import (
	"fmt"
	"math"
)

// Frame is one step of an animated trace: the wrapped line generated so
// far and the point reached at the frame's end.
type Frame struct {
	Line    Line
	Current Point
}

// Frames traces the line through start incrementally, extending the
// parameter range by wrapsPerFrame each frame and re-wrapping the whole
// trace, so a caller can replay the geodesic growing across the square.
// The wrap count of every frame uses the same discontinuity count as
// Generate.
func Frames(start Point, slope Slope, nframes int, wrapsPerFrame float64) ([]Frame, error) {
	if nframes < 1 {
		return nil, fmt.Errorf("%w: nframes %d", ErrInvalidArgument, nframes)
	}
	if !(wrapsPerFrame > 0) {
		return nil, fmt.Errorf("%w: wrapsPerFrame %v", ErrInvalidArgument, wrapsPerFrame)
	}

	frames := make([]Frame, 0, nframes)
	for i := 0; i < nframes; i++ {
		tmax := float64(i+1) * wrapsPerFrame
		samples := int(math.Ceil(tmax*200)) + 10
		ln, err := Generate(start, slope, tmax, samples)
		if err != nil {
			return nil, err
		}
		frames = append(frames, Frame{Line: ln, Current: ln.End})
	}
	return frames, nil
}
