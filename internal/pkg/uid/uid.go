package uid

// StringID generates unique string identifiers.
type StringID interface {
	// Generate returns a new unique string ID.
	Generate() string
}

// NumberID generates unique numeric identifiers.
type NumberID interface {
	// Generate returns a new unique numeric ID.
	Generate() int64
}
