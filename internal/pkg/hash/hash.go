package hash

// Hash abstracts hashing and verification of secrets such as passwords.
type Hash interface {
	// Hash hashes the plaintext and returns the encoded hash.
	Hash(plaintext string) ([]byte, error)
	// Verify reports whether plaintext matches the hashed value.
	Verify(hashed, plaintext string) bool
}
