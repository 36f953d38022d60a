package checkin

import (
	"context"
	"math"

	"github.com/ecotrail/ecopoints/internal/domain/entity"
	errs "github.com/ecotrail/ecopoints/internal/domain/error"
	coreport "github.com/ecotrail/ecopoints/internal/domain/port/core"
	"github.com/ecotrail/ecopoints/internal/domain/port/persistence"
)

// Request represents a check-in attempt by an authenticated user.
type Request struct {
	PlaceID string
	UserLat float64
	UserLng float64
}

// Result represents a successful check-in.
type Result struct {
	PlaceName      string
	Gained         int
	DistanceMeters int
	Username       string
	Points         int
	Streak         int
	Badges         []string
	Today          string
	Zone           string
}

// Service runs the check-in operation: validate the place and distance,
// then award points, advance the streak and append the audit row in one
// database transaction.
type Service struct {
	uow          persistence.UnitOfWork
	placeRepo    persistence.PlaceRepository
	calendar     *entity.Calendar
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	radiusMeters float64
}

// NewService creates a new check-in service
func NewService(
	uow persistence.UnitOfWork,
	placeRepo persistence.PlaceRepository,
	calendar *entity.Calendar,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	radiusMeters float64,
) *Service {
	return &Service{
		uow:          uow,
		placeRepo:    placeRepo,
		calendar:     calendar,
		timeProvider: timeProvider,
		logger:       logger,
		radiusMeters: radiusMeters,
	}
}

// CheckIn validates and applies a check-in for the given user.
//
// Possible errors:
// - ErrPlaceNotFound: unknown place id
// - OutOfRangeError: claimed coordinate beyond the place radius
// - ErrAlreadyCheckedIn: one award per user per calendar day
func (s *Service) CheckIn(ctx context.Context, user *entity.User, req Request) (*Result, error) {
	place, err := s.placeRepo.GetByID(ctx, req.PlaceID)
	if err != nil {
		return nil, err
	}

	distance := entity.HaversineMeters(req.UserLat, req.UserLng, place.Lat, place.Lng)
	rounded := int(math.Round(distance))
	if distance > s.radiusMeters {
		s.logger.Warn("Check-in rejected: out of range", map[string]any{
			"user_id":         user.ID,
			"place_id":        place.ID,
			"distance_meters": rounded,
			"radius_meters":   int(s.radiusMeters),
		})
		return nil, errs.NewOutOfRangeError(rounded, int(s.radiusMeters))
	}

	today := s.calendar.Today()
	yesterday := s.calendar.Yesterday()

	// Fast path on the provisioned snapshot; the locked re-check inside the
	// transaction below remains authoritative.
	if user.LastCheckinDate == today {
		return nil, errs.ErrAlreadyCheckedIn
	}

	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}

	userRepo := s.uow.GetUserRepository(txCtx)

	fresh, err := userRepo.GetByIDForUpdate(txCtx, user.ID)
	if err != nil {
		s.rollback(txCtx)
		return nil, err
	}

	if err := fresh.ApplyCheckin(place.Points, today, yesterday, s.timeProvider); err != nil {
		s.rollback(txCtx)
		return nil, err
	}

	audit := &entity.Checkin{
		UserID:       fresh.ID,
		PlaceID:      place.ID,
		PointsGained: place.Points,
		CheckinDate:  today,
		CreatedAt:    s.timeProvider.Now(),
	}
	if err := s.uow.GetCheckinRepository(txCtx).Create(txCtx, audit); err != nil {
		s.rollback(txCtx)
		return nil, err
	}

	if err := userRepo.Update(txCtx, fresh); err != nil {
		s.rollback(txCtx)
		return nil, err
	}

	if err := s.uow.Commit(txCtx); err != nil {
		s.rollback(txCtx)
		return nil, err
	}

	s.logger.Info("Check-in recorded", map[string]any{
		"user_id":         fresh.ID,
		"place_id":        place.ID,
		"points_gained":   place.Points,
		"points_total":    fresh.Points(),
		"streak":          fresh.Streak,
		"distance_meters": rounded,
		"date":            today,
	})

	return &Result{
		PlaceName:      place.Name,
		Gained:         place.Points,
		DistanceMeters: rounded,
		Username:       fresh.Username,
		Points:         fresh.Points(),
		Streak:         fresh.Streak,
		Badges:         fresh.Badges(),
		Today:          today,
		Zone:           s.calendar.Zone(),
	}, nil
}

func (s *Service) rollback(ctx context.Context) {
	if err := s.uow.Rollback(ctx); err != nil {
		s.logger.Error("Failed to rollback check-in transaction", map[string]any{
			"error": err.Error(),
		})
	}
}
