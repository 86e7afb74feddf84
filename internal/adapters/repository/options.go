package repository

// Option applies a configuration option to the RosterStore.
type Option func(*RosterStore)

// WithIDGenerator overrides how ids are minted for entities added without
// one. Useful for deterministic ids in tests.
func WithIDGenerator(gen func() string) Option {
	return func(s *RosterStore) {
		if gen != nil {
			s.newID = gen
		}
	}
}
