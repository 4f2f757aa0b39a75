package service

import (
	"context"
	"errors"
	"fmt"

	"venue/config"
	"venue/infras/memstore"
	"venue/infras/otel"
	"venue/internal/domains/booking/model"
	"venue/internal/domains/booking/model/dto"
	"venue/internal/domains/booking/repository"
	"venue/shared"
	"venue/shared/cache"
	"venue/shared/constant"
	"venue/shared/failure"

	roomModel "venue/internal/domains/room/model"

	"github.com/rs/zerolog/log"
)

var (
	cacheGetAllBooking = shared.BuildCacheKey(model.EntityName, "gets")

	// The rooms listing embeds each room's slots, so a new booking invalidates
	// it together with the customers listing.
	cacheGetAllRoom = shared.BuildCacheKey(roomModel.EntityName, "gets")
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.SlotResponse, error)
	GetAll(ctx context.Context) ([]dto.RecordResponse, error)
}

type serviceImpl struct {
	repo  repository.Booking
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Booking, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Booking {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.SlotResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	record, err := s.repo.Insert(ctx, req.RoomID, req.ToModel())
	if err != nil {
		if errors.Is(err, memstore.ErrRoomNotFound) {
			return res, failure.NotFound(constant.ResponseRoomNotFound) // nolint:wrapcheck
		}

		if errors.Is(err, memstore.ErrSlotTaken) {
			return res, failure.RoomUnavailable // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to book room")

		return res, fmt.Errorf("failed to book room: %w", err)
	}

	res.FromModel(record.Slot)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheGetAllRoom)
	}()

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context) (res []dto.RecordResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAllBookings")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := cacheGetAllBooking

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	models, err := s.repo.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res = dto.RecordsFromModels(models)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}
