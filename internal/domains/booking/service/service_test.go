package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"venue/config"
	"venue/infras/memstore"
	"venue/infras/otel/mocks"
	bookingMocks "venue/internal/domains/booking/mocks"
	"venue/internal/domains/booking/model"
	"venue/internal/domains/booking/model/dto"
	"venue/internal/domains/booking/service"
	cacheMocks "venue/shared/cache/mocks"
	"venue/shared/constant"
	"venue/shared/failure"
)

func newService(t *testing.T) (service.Booking, *bookingMocks.MockBooking, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	return service.New(mockRepo, cfg, mockCache, mockOtel), mockRepo, mockCache
}

func validRequest() dto.CreateBookingRequest {
	return dto.CreateBookingRequest{
		CustomerName: "Bob",
		Date:         "2024-01-01",
		StartTime:    "09:00",
		EndTime:      "10:00",
		RoomID:       1,
	}
}

func TestBookingService_Create(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(repo *bookingMocks.MockBooking, cache *cacheMocks.MockRedisCache)
		wantErr   bool
		wantCode  int
		wantMsg   string
	}{
		{
			name: "successful booking",
			setupMock: func(repo *bookingMocks.MockBooking, cache *cacheMocks.MockRedisCache) {
				repo.EXPECT().
					Insert(gomock.Any(), 1, gomock.Any()).
					DoAndReturn(func(_ context.Context, roomID int, slot model.Slot) (model.Record, error) {
						return model.Record{RoomID: roomID, RoomName: "Alpha", Slot: slot}, nil
					})

				cache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "room not found",
			setupMock: func(repo *bookingMocks.MockBooking, cache *cacheMocks.MockRedisCache) {
				repo.EXPECT().
					Insert(gomock.Any(), 1, gomock.Any()).
					Return(model.Record{}, memstore.ErrRoomNotFound)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
			wantMsg:  constant.ResponseRoomNotFound,
		},
		{
			name: "overlapping slot",
			setupMock: func(repo *bookingMocks.MockBooking, cache *cacheMocks.MockRedisCache) {
				repo.EXPECT().
					Insert(gomock.Any(), 1, gomock.Any()).
					Return(model.Record{}, memstore.ErrSlotTaken)
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
			wantMsg:  constant.ResponseRoomUnavailable,
		},
		{
			name: "unexpected repository error",
			setupMock: func(repo *bookingMocks.MockBooking, cache *cacheMocks.MockRedisCache) {
				repo.EXPECT().
					Insert(gomock.Any(), 1, gomock.Any()).
					Return(model.Record{}, errors.New("store error"))
			},
			wantErr:  true,
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, mockCache := newService(t)
			tt.setupMock(mockRepo, mockCache)

			res, err := svc.Create(context.Background(), validRequest())

			time.Sleep(10 * time.Millisecond)

			if !tt.wantErr {
				require.NoError(t, err)
				assert.Equal(t, "Bob", res.CustomerName)
				assert.Equal(t, "09:00", res.StartTime)

				return
			}

			require.Error(t, err)
			assert.Equal(t, tt.wantCode, failure.GetCode(err))

			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, err.Error())
			}
		})
	}
}

func TestBookingService_GetAll_CacheMiss(t *testing.T) {
	svc, mockRepo, mockCache := newService(t)

	mockCache.EXPECT().
		Get(gomock.Any(), "booking:gets", gomock.Any()).
		Return(errors.New("cache miss"))

	mockRepo.EXPECT().
		GetAll(gomock.Any()).
		Return([]model.Record{
			{
				RoomID:   1,
				RoomName: "Alpha",
				Slot:     model.Slot{CustomerName: "Bob", Date: "2024-01-01", StartTime: "09:00", EndTime: "10:00"},
			},
		}, nil)

	mockCache.EXPECT().
		Save(gomock.Any(), "booking:gets", gomock.Any(), 3600).
		Return(nil).
		AnyTimes()

	res, err := svc.GetAll(context.Background())

	time.Sleep(10 * time.Millisecond)

	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, 1, res[0].RoomID)
	assert.Equal(t, "Alpha", res[0].RoomName)
	assert.Equal(t, "Bob", res[0].CustomerName)
}

func TestBookingService_GetAll_CacheHit(t *testing.T) {
	svc, _, mockCache := newService(t)

	cached := []dto.RecordResponse{{RoomID: 7, RoomName: "Cached", CustomerName: "Eve"}}

	mockCache.EXPECT().
		Get(gomock.Any(), "booking:gets", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, value any) error {
			ptr := value.(*[]dto.RecordResponse)
			*ptr = cached

			return nil
		})

	res, err := svc.GetAll(context.Background())

	require.NoError(t, err)
	assert.Equal(t, cached, res)
}
