package sim

// FrameLimit stops the loop after a fixed number of frames.
type FrameLimit struct {
	limit  int
	polled int
}

func NewFrameLimit(frames int) *FrameLimit {
	return &FrameLimit{limit: frames}
}

func (f *FrameLimit) ShouldStop() bool {
	if f.polled >= f.limit {
		return true
	}
	f.polled++
	return false
}
