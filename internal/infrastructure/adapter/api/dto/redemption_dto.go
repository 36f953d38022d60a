package dto

import (
	"time"

	"github.com/ecotrail/ecopoints/internal/domain/entity"
)

// RedeemRequest represents the API request for redeeming a reward
type RedeemRequest struct {
	RewardID string `json:"rewardId"`
}

// RedeemResponse represents the API response for a successful redemption
type RedeemResponse struct {
	OK              bool           `json:"ok"`
	Reward          RewardResponse `json:"reward"`
	VoucherCode     string         `json:"voucherCode"`
	PointsRemaining int            `json:"pointsRemaining"`
	Badges          []string       `json:"badges"`
}

// RedemptionReward is the joined catalog row shown on a redemption history
// entry. It omits the reward id on purpose, matching the history contract.
type RedemptionReward struct {
	Name       string `json:"name"`
	Brand      string `json:"brand"`
	ImageURL   string `json:"image_url"`
	CostPoints int    `json:"cost_points"`
}

// RedemptionResponse represents one redemption history entry
type RedemptionResponse struct {
	ID          uint64            `json:"id"`
	VoucherCode string            `json:"voucher_code"`
	PointsSpent int               `json:"points_spent"`
	CreatedAt   string            `json:"created_at"`
	Reward      *RedemptionReward `json:"reward"`
}

// NewRedemptionResponses maps redemption entities to their API representation
func NewRedemptionResponses(redemptions []entity.Redemption) []RedemptionResponse {
	responses := make([]RedemptionResponse, 0, len(redemptions))
	for _, redemption := range redemptions {
		response := RedemptionResponse{
			ID:          redemption.ID,
			VoucherCode: redemption.VoucherCode,
			PointsSpent: redemption.PointsSpent,
			CreatedAt:   redemption.CreatedAt.UTC().Format(time.RFC3339),
		}
		if redemption.Reward != nil {
			response.Reward = &RedemptionReward{
				Name:       redemption.Reward.Name,
				Brand:      redemption.Reward.Brand,
				ImageURL:   redemption.Reward.ImageURL,
				CostPoints: redemption.Reward.CostPoints,
			}
		}
		responses = append(responses, response)
	}
	return responses
}
