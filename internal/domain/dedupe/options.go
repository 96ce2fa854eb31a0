package dedupe

// settings collects option values applied at construction time.
type settings struct {
	initialCapacity int
}

// Option applies a configuration option to the deduper.
type Option func(*settings)

// WithInitialCapacity pre-sizes the seen set for an expected batch size.
func WithInitialCapacity(n int) Option {
	return func(s *settings) {
		if n > 0 {
			s.initialCapacity = n
		}
	}
}
