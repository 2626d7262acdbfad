package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"decor/infras/otel"
	"decor/infras/postgres"
	"decor/internal/domains/moment/model"
	gDto "decor/shared/dto"
	gRepo "decor/shared/repository"
)

type Moment interface {
	Insert(ctx context.Context, model model.Moment) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Moment, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Moment, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Moment]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Moment {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Moment](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
