package model

// User is an account record. The password field holds a bcrypt hash and is
// never serialized into responses.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"`
}

// CreateUserRequest is the payload for registering a user.
type CreateUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
