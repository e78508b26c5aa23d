package response_models

type UserResponse struct {
	ID      uint    `json:"id"`
	Nom     string  `json:"nom"`
	Prenom  string  `json:"prenom"`
	Email   string  `json:"email"`
	Adresse *string `json:"adresse"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
