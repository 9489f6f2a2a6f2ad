package dto

// CreateUserRequest is the payload for registering a tracker user.
type CreateUserRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
}
