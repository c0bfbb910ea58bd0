package domain

import "time"

// User is a registered storefront account. The password itself is never
// stored; only the derived key together with the salt and iteration count
// that produced it, so hashes written under an older iteration count stay
// verifiable after the default is raised.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Salt         string    `json:"-"`
	Iterations   int       `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}
