package persistence

import (
	"context"

	"github.com/ecotrail/ecopoints/internal/domain/entity"
)

// PlaceRepository defines read access to the seeded place catalog.
type PlaceRepository interface {
	// GetByID retrieves a place by id
	//
	// Possible errors:
	// - ErrPlaceNotFound: if no place with the id exists
	// - ErrDatabaseConnection: if the database is unreachable
	GetByID(ctx context.Context, id string) (*entity.Place, error)

	// List returns places matching the filter, ordered by name ascending.
	List(ctx context.Context, filter entity.PlaceFilter) ([]entity.Place, error)
}
