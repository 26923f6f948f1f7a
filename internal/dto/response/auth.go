package response

import (
	"time"

	"property-hub/internal/data/entity"
)

type UserResponse struct {
	ID        string          `json:"id"`
	Email     string          `json:"email"`
	FullName  *string         `json:"full_name,omitempty"`
	Phone     *string         `json:"phone,omitempty"`
	AvatarURL *string         `json:"avatar_url,omitempty"`
	Role      entity.UserRole `json:"role"`
	CreatedAt time.Time       `json:"created_at"`
}

type AuthResponse struct {
	User      UserResponse `json:"user"`
	Token     string       `json:"token,omitempty"`
	ExpiresAt *time.Time   `json:"expires_at,omitempty"`
}

func UserToResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:        user.ID.String(),
		Email:     user.Email,
		FullName:  user.FullName,
		Phone:     user.Phone,
		AvatarURL: user.AvatarURL,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
	}
}
