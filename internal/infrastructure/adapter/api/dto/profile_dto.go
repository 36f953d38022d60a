package dto

import "github.com/ecotrail/ecopoints/internal/domain/entity"

// ProfileResponse represents the authenticated user's profile
type ProfileResponse struct {
	Username        string   `json:"username"`
	Email           string   `json:"email"`
	Points          int      `json:"points"`
	Streak          int      `json:"streak"`
	Badges          []string `json:"badges"`
	LastCheckinDate string   `json:"lastCheckinDate"`
}

// NewProfileResponse maps a user entity to its profile representation
func NewProfileResponse(user *entity.User) ProfileResponse {
	return ProfileResponse{
		Username:        user.Username,
		Email:           user.Email,
		Points:          user.Points(),
		Streak:          user.Streak,
		Badges:          user.Badges(),
		LastCheckinDate: user.LastCheckinDate,
	}
}

// LeaderboardEntryResponse represents one leaderboard row
type LeaderboardEntryResponse struct {
	Username string `json:"username"`
	Points   int    `json:"points"`
}

// NewLeaderboardResponses maps leaderboard entries to their API representation
func NewLeaderboardResponses(entries []entity.LeaderboardEntry) []LeaderboardEntryResponse {
	responses := make([]LeaderboardEntryResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, LeaderboardEntryResponse{
			Username: entry.Username,
			Points:   entry.Points,
		})
	}
	return responses
}
