package dto

// CheckinRequest represents the API request for a check-in. Coordinates are
// pointers so that absent fields can be told apart from a zero value.
type CheckinRequest struct {
	PlaceID string   `json:"placeId"`
	UserLat *float64 `json:"userLat"`
	UserLng *float64 `json:"userLng"`
}

// CheckinResponse represents the API response for a successful check-in
type CheckinResponse struct {
	OK             bool     `json:"ok"`
	Place          string   `json:"place"`
	Gained         int      `json:"gained"`
	DistanceMeters int      `json:"distanceMeters"`
	Username       string   `json:"username"`
	Points         int      `json:"points"`
	Streak         int      `json:"streak"`
	Badges         []string `json:"badges"`
	Today          string   `json:"today"`
	TZ             string   `json:"tz"`
}
