package services

import (
	"ecotrip/internal/models/db_models"
	"ecotrip/internal/models/response_models"
)

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func toUserResponse(u *db_models.User) response_models.UserResponse {
	return response_models.UserResponse{
		ID:      u.ID,
		Nom:     u.Nom,
		Prenom:  u.Prenom,
		Email:   u.Email,
		Adresse: u.Adresse,
	}
}

func toDestinationResponse(d *db_models.Destination) response_models.DestinationResponse {
	return response_models.DestinationResponse{
		ID:          d.ID,
		City:        d.City,
		Country:     d.Country,
		Description: d.Description,
	}
}

func toDestinationResponses(destinations []db_models.Destination) []response_models.DestinationResponse {
	out := make([]response_models.DestinationResponse, 0, len(destinations))
	for i := range destinations {
		out = append(out, toDestinationResponse(&destinations[i]))
	}
	return out
}

func toActivityResponse(a *db_models.Activity) response_models.ActivityResponse {
	return response_models.ActivityResponse{
		ID:             a.ID,
		Name:           a.Name,
		Type:           a.Type,
		PriceEstimated: a.PriceEstimated,
		DestinationID:  a.DestinationID,
	}
}
