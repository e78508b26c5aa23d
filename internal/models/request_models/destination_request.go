package request_models

type CreateDestinationRequest struct {
	City        *string `json:"city" binding:"required,max=100"`
	Country     *string `json:"country" binding:"required"`
	Description *string `json:"description"`
}
