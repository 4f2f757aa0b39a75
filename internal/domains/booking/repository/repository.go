package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"venue/infras/memstore"
	"venue/infras/otel"
	"venue/internal/domains/booking/model"
	"venue/shared/constant"
)

type Booking interface {
	Insert(ctx context.Context, roomID int, slot model.Slot) (model.Record, error)
	GetAll(ctx context.Context) ([]model.Record, error)
}

type repositoryImpl struct {
	store *memstore.Store
	otel  otel.Otel
}

func New(store *memstore.Store, otel otel.Otel) Booking {
	return &repositoryImpl{
		store: store,
		otel:  otel,
	}
}

// Insert runs the conflict scan and the double append as one atomic store
// operation; memstore sentinels (ErrRoomNotFound, ErrSlotTaken) pass through
// for the service to translate.
func (r *repositoryImpl) Insert(ctx context.Context, roomID int, slot model.Slot) (record model.Record, err error) {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".InsertBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute("room.id", roomID)

	record, err = r.store.InsertBooking(roomID, slot)

	return record, err
}

func (r *repositoryImpl) GetAll(ctx context.Context) ([]model.Record, error) {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".GetAllBookings")
	defer scope.End()

	return r.store.Records(), nil
}
