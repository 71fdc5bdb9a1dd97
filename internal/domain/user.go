package domain

// User is the profile written at registration, keyed by the uid the identity
// provider issued. It is never updated or deleted afterwards.
type User struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}
