package dto

import "github.com/ecotrail/ecopoints/internal/domain/entity"

// RewardResponse represents a reward catalog row in API responses
type RewardResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Brand      string `json:"brand"`
	CostPoints int    `json:"cost_points"`
	ImageURL   string `json:"image_url"`
}

// NewRewardResponse maps a reward entity to its API representation
func NewRewardResponse(reward entity.Reward) RewardResponse {
	return RewardResponse{
		ID:         reward.ID,
		Name:       reward.Name,
		Brand:      reward.Brand,
		CostPoints: reward.CostPoints,
		ImageURL:   reward.ImageURL,
	}
}

// NewRewardResponses maps reward entities to their API representation
func NewRewardResponses(rewards []entity.Reward) []RewardResponse {
	responses := make([]RewardResponse, 0, len(rewards))
	for _, reward := range rewards {
		responses = append(responses, NewRewardResponse(reward))
	}
	return responses
}
