package security

import "golang.org/x/crypto/bcrypt"

// PasswordHasher wraps bcrypt with a configurable work factor. The cost is
// fixed at construction; re-tuning it is a config change, not an interface
// change.
type PasswordHasher struct {
	cost int
}

func NewPasswordHasher(cost int) *PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &PasswordHasher{cost: cost}
}

// Hash produces a salted, one-way digest of the plaintext secret.
func (h *PasswordHasher) Hash(plain string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Compare reports whether plain matches digest using bcrypt's own
// verification routine.
func (h *PasswordHasher) Compare(plain, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain)) == nil
}
