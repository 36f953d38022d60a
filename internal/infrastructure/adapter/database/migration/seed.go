package migration

import (
	coreport "github.com/ecotrail/ecopoints/internal/domain/port/core"
	"github.com/ecotrail/ecopoints/internal/infrastructure/adapter/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// defaultPlaces is the starter place catalog. Seeding only runs against an
// empty table, so operator-managed catalogs are never overwritten.
var defaultPlaces = []model.Place{
	{
		Name:        "Botanic Gardens",
		Category:    "park",
		Area:        "Tanglin",
		Description: "UNESCO-listed gardens with rainforest and orchid trails",
		Points:      20,
		Lat:         1.3138,
		Lng:         103.8159,
	},
	{
		Name:        "East Coast Park",
		Category:    "park",
		Area:        "Marine Parade",
		Description: "Seaside park with cycling paths and hawker food",
		Points:      15,
		Lat:         1.3008,
		Lng:         103.9122,
	},
	{
		Name:        "Marina Barrage",
		Category:    "attraction",
		Area:        "Marina South",
		Description: "Reservoir rooftop green with skyline views",
		Points:      25,
		Lat:         1.2806,
		Lng:         103.8708,
	},
	{
		Name:        "Kampung Admiralty Farm",
		Category:    "community",
		Area:        "Woodlands",
		Description: "Rooftop community farm and urban greenery showcase",
		Points:      30,
		Lat:         1.4399,
		Lng:         103.8009,
	},
	{
		Name:        "Green Hub Recycling Centre",
		Category:    "recycling",
		Area:        "Jurong East",
		Description: "Drop-off point for e-waste and recyclables",
		Points:      35,
		Lat:         1.3331,
		Lng:         103.7422,
	},
}

// defaultRewards is the starter reward catalog.
var defaultRewards = []model.Reward{
	{
		Name:       "Reusable Cup Discount",
		Brand:      "BrewWell",
		CostPoints: 40,
		ImageURL:   "https://cdn.ecotrail.example/rewards/brewwell-cup.png",
	},
	{
		Name:       "$5 Grocery Voucher",
		Brand:      "FreshMart",
		CostPoints: 80,
		ImageURL:   "https://cdn.ecotrail.example/rewards/freshmart-5.png",
	},
	{
		Name:       "Bike Share Day Pass",
		Brand:      "CycleGo",
		CostPoints: 120,
		ImageURL:   "https://cdn.ecotrail.example/rewards/cyclego-pass.png",
	},
	{
		Name:       "Tree Planting Kit",
		Brand:      "RootedSG",
		CostPoints: 200,
		ImageURL:   "https://cdn.ecotrail.example/rewards/rooted-kit.png",
	},
}

// SeedCatalog populates the place and reward tables when they are empty.
func SeedCatalog(db *gorm.DB, logger coreport.Logger) error {
	var placeCount int64
	if err := db.Model(&model.Place{}).Count(&placeCount).Error; err != nil {
		return err
	}

	if placeCount == 0 {
		places := make([]model.Place, len(defaultPlaces))
		copy(places, defaultPlaces)
		for i := range places {
			places[i].ID = uuid.NewString()
		}
		if err := db.Create(&places).Error; err != nil {
			return err
		}
		logger.Info("Seeded place catalog", map[string]any{
			"count": len(places),
		})
	}

	var rewardCount int64
	if err := db.Model(&model.Reward{}).Count(&rewardCount).Error; err != nil {
		return err
	}

	if rewardCount == 0 {
		rewards := make([]model.Reward, len(defaultRewards))
		copy(rewards, defaultRewards)
		for i := range rewards {
			rewards[i].ID = uuid.NewString()
		}
		if err := db.Create(&rewards).Error; err != nil {
			return err
		}
		logger.Info("Seeded reward catalog", map[string]any{
			"count": len(rewards),
		})
	}

	return nil
}
