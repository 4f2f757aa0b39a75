package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"venue/infras/memstore"
	"venue/infras/otel"
	"venue/internal/domains/room/model"
	"venue/shared/constant"
)

type Room interface {
	Insert(ctx context.Context, room model.Room) (model.Room, error)
	GetAll(ctx context.Context) ([]model.Room, error)
}

type repositoryImpl struct {
	store *memstore.Store
	otel  otel.Otel
}

func New(store *memstore.Store, otel otel.Otel) Room {
	return &repositoryImpl{
		store: store,
		otel:  otel,
	}
}

func (r *repositoryImpl) Insert(ctx context.Context, room model.Room) (model.Room, error) {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".InsertRoom")
	defer scope.End()

	created := r.store.InsertRoom(room)
	scope.SetAttribute("room.id", created.ID)

	return created, nil
}

func (r *repositoryImpl) GetAll(ctx context.Context) ([]model.Room, error) {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".GetAllRooms")
	defer scope.End()

	return r.store.Rooms(), nil
}
