package response_models

type DestinationResponse struct {
	ID          uint    `json:"id"`
	City        string  `json:"city"`
	Country     string  `json:"country"`
	Description *string `json:"description"`
}
