package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ecotrail/ecopoints/internal/domain/entity"
	errs "github.com/ecotrail/ecopoints/internal/domain/error"
	coreport "github.com/ecotrail/ecopoints/internal/domain/port/core"
	"github.com/ecotrail/ecopoints/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// PlaceRepository implements persistence.PlaceRepository using GORM
type PlaceRepository struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewPlaceRepository creates a new PlaceRepository instance
func NewPlaceRepository(db *gorm.DB, logger coreport.Logger) *PlaceRepository {
	return &PlaceRepository{
		db:     db,
		logger: logger,
	}
}

func placeModelToEntity(placeModel *model.Place) entity.Place {
	return entity.Place{
		ID:          placeModel.ID,
		Name:        placeModel.Name,
		Category:    placeModel.Category,
		Area:        placeModel.Area,
		Description: placeModel.Description,
		Points:      placeModel.Points,
		Lat:         placeModel.Lat,
		Lng:         placeModel.Lng,
	}
}

// GetByID retrieves a place by id
func (r *PlaceRepository) GetByID(ctx context.Context, id string) (*entity.Place, error) {
	var placeModel model.Place
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&placeModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			r.logger.Warn("Place not found", map[string]any{
				"place_id": id,
			})
			return nil, errs.ErrPlaceNotFound
		}
		r.logger.Error("Database error when getting place", map[string]any{
			"place_id": id,
			"error":    result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	place := placeModelToEntity(&placeModel)
	return &place, nil
}

// List returns places matching the filter, ordered by name ascending
func (r *PlaceRepository) List(ctx context.Context, filter entity.PlaceFilter) ([]entity.Place, error) {
	query := r.db.WithContext(ctx).Model(&model.Place{})

	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}

	if search := strings.TrimSpace(strings.ToLower(filter.Search)); search != "" {
		like := "%" + search + "%"
		query = query.Where(
			"LOWER(name) LIKE ? OR LOWER(description) LIKE ? OR LOWER(area) LIKE ?",
			like, like, like,
		)
	}

	var placeModels []model.Place
	result := query.Order("name ASC").Find(&placeModels)
	if result.Error != nil {
		r.logger.Error("Database error when listing places", map[string]any{
			"error": result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	places := make([]entity.Place, 0, len(placeModels))
	for i := range placeModels {
		places = append(places, placeModelToEntity(&placeModels[i]))
	}
	return places, nil
}
