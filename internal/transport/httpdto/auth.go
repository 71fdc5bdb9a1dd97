package httpdto

// RegisterRequest is used for POST /register
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Username string `json:"username"`
}

// LoginRequest is used for POST /login. A non-empty GoogleToken selects
// Google sign-in and the other fields are ignored.
type LoginRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	GoogleToken string `json:"googleToken"`
}
