package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"chukchukgo/infras/otel"
	"chukchukgo/infras/postgres"
	"chukchukgo/internal/domains/train/model"
	"chukchukgo/shared/constant"
	gDto "chukchukgo/shared/dto"
	gRepo "chukchukgo/shared/repository"
)

type Train interface {
	Insert(ctx context.Context, model model.Train) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Train, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Train, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	InsertClass(ctx context.Context, model model.ClassInventory) error
	GetClasses(ctx context.Context, trainNumber string) ([]model.ClassInventory, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Train]
	classRepo gRepo.Repository[model.ClassInventory]
	db        *postgres.Connection
	otel      otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Train {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Train](model.EntityName, model.TableName, model.FieldNumber, db, otel),
		classRepo:  gRepo.NewRepository[model.ClassInventory](model.ClassEntityName, model.ClassTableName, model.ClassFieldTrainNumber, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (repo *repositoryImpl) InsertClass(ctx context.Context, model model.ClassInventory) error {
	return repo.classRepo.Insert(ctx, model)
}

func (repo *repositoryImpl) GetClasses(ctx context.Context, trainNumber string) ([]model.ClassInventory, error) {
	params := gDto.QueryParams{
		Page:    constant.DefaultValuePage,
		Limit:   constant.DefaultValueLimit,
		SortBy:  model.ClassFieldTravelClass,
		SortDir: gDto.SortDirAsc,
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.ClassFieldTrainNumber,
				Table:    model.ClassTableName,
				Operator: gDto.FilterOperatorEq,
				Value:    trainNumber,
			},
		},
	}

	return repo.classRepo.GetAll(ctx, params, filter)
}
