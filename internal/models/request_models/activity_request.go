package request_models

// Required strings are pointers so that "required" checks presence only;
// an empty string that was sent is kept.
type ActivityRequest struct {
	Name           *string  `json:"name" binding:"required"`
	Type           *string  `json:"type" binding:"required,oneof=transport loisir repas"`
	PriceEstimated *float64 `json:"price_estimated" binding:"required"`
	DestinationID  *uint    `json:"destination_id" binding:"required"`
}

type EcoPlanRequest struct {
	Activities []ActivityRequest `json:"activities" binding:"required,min=1,dive"`
}
