package response_models

type ActivityResponse struct {
	ID             uint     `json:"id"`
	Name           string   `json:"name"`
	Type           string   `json:"type"`
	PriceEstimated *float64 `json:"price_estimated"`
	DestinationID  *uint    `json:"destination_id"`
}
