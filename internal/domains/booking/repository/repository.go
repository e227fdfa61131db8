package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"

	"chukchukgo/infras/otel"
	"chukchukgo/infras/postgres"
	"chukchukgo/internal/domains/booking/model"
	"chukchukgo/shared/constant"
	gDto "chukchukgo/shared/dto"
	"chukchukgo/shared/logger"
	gRepo "chukchukgo/shared/repository"

	"github.com/lib/pq"
)

type Booking interface {
	CreateWithPassengers(ctx context.Context, model model.Booking) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	GetPassengers(ctx context.Context, pnr string) ([]model.Passenger, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	passengerRepo gRepo.Repository[model.Passenger]
	db            *postgres.Connection
	otel          otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository:    gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldPNR, db, otel),
		passengerRepo: gRepo.NewRepository[model.Passenger](model.PassengerEntityName, model.PassengerTableName, model.PassengerFieldPNR, db, otel),
		db:            db,
		otel:          otel,
	}
}

// CreateWithPassengers inserts the booking and its passengers in one
// transaction so a locator collision rolls everything back.
func (repo *repositoryImpl) CreateWithPassengers(ctx context.Context, booking model.Booking) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.CreateWithPassengers")
	defer scope.End()
	defer scope.TraceIfError(err)

	tx, err := repo.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if err = repo.InsertTx(ctx, tx, booking); err != nil {
		return err
	}

	if err = repo.passengerRepo.InsertBulkTx(ctx, tx, booking.Passengers); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func (repo *repositoryImpl) GetPassengers(ctx context.Context, pnr string) ([]model.Passenger, error) {
	params := gDto.QueryParams{
		Page:    constant.DefaultValuePage,
		Limit:   constant.DefaultValueLimit,
		SortBy:  model.PassengerFieldIndex,
		SortDir: gDto.SortDirAsc,
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.PassengerFieldPNR,
				Table:    model.PassengerTableName,
				Operator: gDto.FilterOperatorEq,
				Value:    pnr,
			},
		},
	}

	return repo.passengerRepo.GetAll(ctx, params, filter)
}

// IsUniqueViolation reports whether err is a Postgres unique constraint
// violation, which signals a locator collision on insert.
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == constant.PqErrorCodeUniqueViolation
	}

	return false
}
