package dto

import "github.com/ecotrail/ecopoints/internal/domain/entity"

// PlaceResponse represents a place catalog row in API responses
type PlaceResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Area        string  `json:"area"`
	Points      int     `json:"points"`
	Description string  `json:"description"`
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
}

// NewPlaceResponses maps place entities to their API representation
func NewPlaceResponses(places []entity.Place) []PlaceResponse {
	responses := make([]PlaceResponse, 0, len(places))
	for _, place := range places {
		responses = append(responses, PlaceResponse{
			ID:          place.ID,
			Name:        place.Name,
			Category:    place.Category,
			Area:        place.Area,
			Points:      place.Points,
			Description: place.Description,
			Lat:         place.Lat,
			Lng:         place.Lng,
		})
	}
	return responses
}
