package v1

import (
	"fmt"
	"time"
)

const minCredentialLength = 3

// User is a registered account. PasswordHash never leaves the server.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	Blogs        []Blog    `json:"blogs"`
	CreatedAt    time.Time `json:"-"`
}

// Owner returns the summary embedded in listed blogs.
func (u User) Owner() *Owner {
	return &Owner{ID: u.ID, Username: u.Username, Name: u.Name}
}

// CreateUserRequest is the body of POST /api/users.
type CreateUserRequest struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

// Validate checks presence first, then length.
func (r *CreateUserRequest) Validate() error {
	if r.Username == "" || r.Password == "" {
		return fmt.Errorf("username and password are required")
	}
	if len(r.Username) < minCredentialLength || len(r.Password) < minCredentialLength {
		return fmt.Errorf("username and password must be at least %d characters long", minCredentialLength)
	}
	return nil
}

// LoginRequest is the body of POST /api/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse carries the bearer token for subsequent requests.
type LoginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Name     string `json:"name"`
}
