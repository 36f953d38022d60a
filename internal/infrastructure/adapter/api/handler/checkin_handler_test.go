package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/ecotrail/ecopoints/internal/domain/entity"
	checkinUseCase "github.com/ecotrail/ecopoints/internal/domain/usecase/checkin"
	coremocks "github.com/ecotrail/ecopoints/mocks/port/core"
	persistencemocks "github.com/ecotrail/ecopoints/mocks/port/persistence"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// 04:00 UTC is noon in Singapore.
var fixedTime = time.Date(2025, 3, 10, 4, 0, 0, 0, time.UTC)

type checkinHandlerFixture struct {
	router      *gin.Engine
	uow         *persistencemocks.MockUnitOfWork
	placeRepo   *persistencemocks.MockPlaceRepository
	userRepo    *persistencemocks.MockUserRepository
	checkinRepo *persistencemocks.MockCheckinRepository
}

func newCheckinFixture(t *testing.T, user *entity.User) *checkinHandlerFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	f := &checkinHandlerFixture{
		uow:         persistencemocks.NewMockUnitOfWork(t),
		placeRepo:   persistencemocks.NewMockPlaceRepository(t),
		userRepo:    persistencemocks.NewMockUserRepository(t),
		checkinRepo: persistencemocks.NewMockCheckinRepository(t),
	}

	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()
	mockLogger := coremocks.NewMockLogger(t)
	mockLogger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()

	calendar, err := entity.NewCalendar("Asia/Singapore", mockTime)
	require.NoError(t, err)

	service := checkinUseCase.NewService(f.uow, f.placeRepo, calendar, mockTime, mockLogger, 200)
	checkinHandler := NewCheckinHandler(service, mockLogger)

	f.router = gin.New()
	f.router.POST("/api/checkins", func(c *gin.Context) {
		c.Set("currentUser", user)
		checkinHandler.CheckIn(c)
	})
	return f
}

func postCheckin(router *gin.Engine, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/checkins", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestCheckinHandler(t *testing.T) {
	place := &entity.Place{ID: "place-1", Name: "Botanic Gardens", Points: 20, Lat: 1.3, Lng: 103.8}

	t.Run("Missing placeId", func(t *testing.T) {
		f := newCheckinFixture(t, &entity.User{ID: 7})

		w := postCheckin(f.router, `{"userLat":1.3,"userLng":103.8}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"placeId required"}`, w.Body.String())
	})

	t.Run("Missing coordinates", func(t *testing.T) {
		f := newCheckinFixture(t, &entity.User{ID: 7})

		w := postCheckin(f.router, `{"placeId":"place-1"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"userLat and userLng required"}`, w.Body.String())
	})

	t.Run("Out of range maps to 403", func(t *testing.T) {
		f := newCheckinFixture(t, &entity.User{ID: 7})
		f.placeRepo.EXPECT().GetByID(mock.Anything, "place-1").Return(place, nil).Once()

		w := postCheckin(f.router, `{"placeId":"place-1","userLat":1.3036,"userLng":103.8}`)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.JSONEq(t, `{"error":"Too far. You are ~400m away (need within 200m)."}`, w.Body.String())
	})

	t.Run("Duplicate day maps to 409", func(t *testing.T) {
		f := newCheckinFixture(t, &entity.User{ID: 7, LastCheckinDate: "2025-03-10"})
		f.placeRepo.EXPECT().GetByID(mock.Anything, "place-1").Return(place, nil).Once()

		w := postCheckin(f.router, `{"placeId":"place-1","userLat":1.3,"userLng":103.8}`)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.JSONEq(t, `{"error":"Already checked in today."}`, w.Body.String())
	})

	t.Run("Unknown place maps to generic 500", func(t *testing.T) {
		f := newCheckinFixture(t, &entity.User{ID: 7})
		f.placeRepo.EXPECT().GetByID(mock.Anything, "missing").
			Return(nil, assert.AnError).Once()

		w := postCheckin(f.router, `{"placeId":"missing","userLat":1.3,"userLng":103.8}`)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error":"Check-in failed"}`, w.Body.String())
	})

	t.Run("Successful check-in response shape", func(t *testing.T) {
		user := &entity.User{ID: 7, Username: "alice"}
		fresh := &entity.User{ID: 7, Username: "alice"}
		fresh.RestorePoints(40)

		f := newCheckinFixture(t, user)
		f.placeRepo.EXPECT().GetByID(mock.Anything, "place-1").Return(place, nil).Once()
		f.uow.EXPECT().Begin(mock.Anything).RunAndReturn(func(ctx context.Context) (context.Context, error) {
			return ctx, nil
		}).Once()
		f.uow.EXPECT().GetUserRepository(mock.Anything).Return(f.userRepo).Once()
		f.userRepo.EXPECT().GetByIDForUpdate(mock.Anything, uint64(7)).Return(fresh, nil).Once()
		f.uow.EXPECT().GetCheckinRepository(mock.Anything).Return(f.checkinRepo).Once()
		f.checkinRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Once()
		f.userRepo.EXPECT().Update(mock.Anything, fresh).Return(nil).Once()
		f.uow.EXPECT().Commit(mock.Anything).Return(nil).Once()

		w := postCheckin(f.router, `{"placeId":"place-1","userLat":1.3,"userLng":103.8}`)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{
			"ok": true,
			"place": "Botanic Gardens",
			"gained": 20,
			"distanceMeters": 0,
			"username": "alice",
			"points": 60,
			"streak": 1,
			"badges": ["Green Starter"],
			"today": "2025-03-10",
			"tz": "Asia/Singapore"
		}`, w.Body.String())
	})
}
