package response_models

import (
	"gorm.io/datatypes"

	"ecotrip/internal/models/request_models"
)

// EcoPlanResponse keeps the French keys clients already consume.
type EcoPlanResponse struct {
	Destination            DestinationResponse              `json:"destination"`
	ActivitesSoumises      []request_models.ActivityRequest `json:"activites_soumises"`
	SuggestionsEcologiques datatypes.JSON                   `json:"suggestions_ecologiques"`
}
