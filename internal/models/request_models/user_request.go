package request_models

type CreateUserRequest struct {
	Nom     *string `json:"nom" binding:"required,max=100"`
	Prenom  *string `json:"prenom" binding:"required,max=100"`
	Email   *string `json:"email" binding:"required,email"`
	Adresse *string `json:"adresse"`
}

// UpdateUserRequest is the partial variant: nil fields are left untouched.
type UpdateUserRequest struct {
	Nom     *string `json:"nom" binding:"omitempty,max=100"`
	Prenom  *string `json:"prenom" binding:"omitempty,max=100"`
	Email   *string `json:"email" binding:"omitempty,email"`
	Adresse *string `json:"adresse"`
}

type AddFavoriteRequest struct {
	DestinationID *uint `json:"destination_id" binding:"required"`
}
