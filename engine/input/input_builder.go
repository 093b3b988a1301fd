package input

// MapperBuilderOption is a functional option for configuring a Mapper.
type MapperBuilderOption func(*mapper)

// WithSeekStep sets the arrow-key seek distance in seconds. Non-positive values are ignored.
//
// Parameters:
//   - seconds: the seek step
//
// Returns:
//   - MapperBuilderOption: option function to apply
func WithSeekStep(seconds float64) MapperBuilderOption {
	return func(m *mapper) {
		if seconds > 0 {
			m.seekStep = seconds
		}
	}
}

// WithViewport sets the initial viewport size.
//
// Parameters:
//   - width, height: the viewport size in pixels
//
// Returns:
//   - MapperBuilderOption: option function to apply
func WithViewport(width, height float32) MapperBuilderOption {
	return func(m *mapper) {
		m.setViewport(width, height)
	}
}
