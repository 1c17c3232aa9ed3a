package types

// CreateFavoriteRequest represents the request body for saving a favorite
type CreateFavoriteRequest struct {
	Title        string   `json:"title" binding:"required"`
	Image        string   `json:"image"`
	Instructions string   `json:"instructions"`
	Ingredients  []string `json:"ingredients"`
	ReadyIn      *int     `json:"readyIn"`
}

// UpdateFavoriteRequest represents a partial update of a favorite. Pointer
// fields distinguish "not supplied" from an explicit empty value.
type UpdateFavoriteRequest struct {
	Title        *string  `json:"title"`
	Image        *string  `json:"image"`
	Instructions *string  `json:"instructions"`
	Ingredients  []string `json:"ingredients"`
}

// RegisterRequest represents the request body for user registration
type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// LoginRequest represents the request body for user login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UpdateProfileRequest represents the request body for profile updates
type UpdateProfileRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

// UpdatePasswordRequest represents the request body for password changes
type UpdatePasswordRequest struct {
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=6"`
}
