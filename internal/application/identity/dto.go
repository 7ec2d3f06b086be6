package identity

import (
	"github.com/shoppy/backend/internal/domain/identity"
	"github.com/shoppy/backend/internal/infrastructure/auth"
)

// RegisterRequest is the input for user registration
type RegisterRequest struct {
	Username   string `json:"username" binding:"required,min=3,max=100"`
	Password   string `json:"password" binding:"required,min=8,max=128"`
	Email      string `json:"email" binding:"required,email"`
	GivenName  string `json:"givenName" binding:"required,max=100"`
	FamilyName string `json:"familyName" binding:"required,max=100"`
}

// LoginRequest is the input for authentication
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RefreshRequest is the input for token refresh
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// UserResponse is the public view of a user
type UserResponse struct {
	ID         string   `json:"id"`
	Username   string   `json:"username"`
	Email      string   `json:"email"`
	GivenName  string   `json:"givenName"`
	FamilyName string   `json:"familyName"`
	Roles      []string `json:"roles"`
}

// AuthResponse carries tokens and the authenticated user
type AuthResponse struct {
	User   UserResponse    `json:"user"`
	Tokens *auth.TokenPair `json:"tokens"`
}

// ToUserResponse converts a domain user to its public view
func ToUserResponse(user *identity.User) UserResponse {
	return UserResponse{
		ID:         user.ID.String(),
		Username:   user.Username,
		Email:      user.Email,
		GivenName:  user.GivenName,
		FamilyName: user.FamilyName,
		Roles:      user.Roles,
	}
}
