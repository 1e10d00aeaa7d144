package password

import "golang.org/x/crypto/bcrypt"

// VerificationResult is the three-valued outcome of checking a plaintext
// password against a stored hash.
type VerificationResult int

const (
	// Failed means the password does not match the hash.
	Failed VerificationResult = iota
	// Success means the password matches and the hash is current.
	Success
	// SuccessRehashNeeded means the password matches but the hash was
	// produced with stale parameters and should be regenerated.
	SuccessRehashNeeded
)

// Hasher hashes and verifies user passwords.
type Hasher interface {
	Hash(password string) (string, error)
	Verify(hash, password string) VerificationResult
}

// BcryptHasher is the bcrypt-backed Hasher. A stored hash whose cost
// differs from the configured cost verifies as SuccessRehashNeeded.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher creates a hasher with the given cost. Costs outside the
// bcrypt range fall back to the library default.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func (h *BcryptHasher) Verify(hash, password string) VerificationResult {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return Failed
	}
	cost, err := bcrypt.Cost([]byte(hash))
	if err != nil || cost != h.cost {
		return SuccessRehashNeeded
	}
	return Success
}
