package pkguid

// StringID generates unique string identifiers.
type StringID interface {
	// Generate generates a unique identifier as a string.
	Generate() string
}

// Fixed always returns the same identifier. Useful for deterministic tests.
type Fixed string

// Generate returns the fixed identifier.
func (f Fixed) Generate() string {
	return string(f)
}
