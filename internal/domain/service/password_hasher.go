package service

// PasswordHasher defines the interface for password hashing at registration.
// This abstracts the underlying hashing algorithm (e.g., bcrypt), keeping the
// domain pure. Login is a lookup, not a challenge, so no verification method
// is part of the contract.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password.
	Hash(password string) (string, error)
}
