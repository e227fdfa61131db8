package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"chukchukgo/config"
	"chukchukgo/infras/otel"
	"chukchukgo/internal/domains/train/model"
	"chukchukgo/internal/domains/train/model/dto"
	"chukchukgo/internal/domains/train/repository"
	"chukchukgo/shared"
	"chukchukgo/shared/cache"
	"chukchukgo/shared/constant"
	gDto "chukchukgo/shared/dto"
	"chukchukgo/shared/failure"
	"chukchukgo/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetTrain     = "train:get"
	cacheSearchTrains = "train:search"
)

type Train interface {
	Search(ctx context.Context, req dto.SearchTrainsRequest) (dto.SearchTrainsResponse, error)
	Get(ctx context.Context, number string) (dto.TrainResponse, error)
	Register(ctx context.Context, req dto.RegisterTrainRequest) (dto.TrainResponse, error)
}

type serviceImpl struct {
	repo  repository.Train
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Train, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Train {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Search(ctx context.Context, req dto.SearchTrainsRequest) (res dto.SearchTrainsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Search")
	defer scope.End()
	defer scope.TraceIfError(err)

	journeyDate, err := time.ParseInLocation(constant.JourneyDateFormat, req.JourneyDate, timezone.GetLocation())
	if err != nil {
		return res, failure.BadRequestFromString("journey date must be in YYYY-MM-DD format") // nolint:wrapcheck
	}

	cacheKey := shared.BuildCacheKey(cacheSearchTrains, req.FromStation, req.ToStation, req.JourneyDate, req.TravelClass)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for train search")

		return res, nil
	}

	ctx, cancel := context.WithTimeout(ctx, s.cfg.Booking.LookupTimeout)
	defer cancel()

	params := gDto.QueryParams{
		Page:    constant.DefaultValuePage,
		Limit:   constant.DefaultValueLimit,
		SortBy:  model.FieldDepartureTime,
		SortDir: gDto.SortDirAsc,
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldFromStation, Table: model.TableName, Operator: gDto.FilterOperatorEq, Value: req.FromStation},
			gDto.Filter{Field: model.FieldToStation, Table: model.TableName, Operator: gDto.FilterOperatorEq, Value: req.ToStation},
			gDto.Filter{Field: model.FieldActive, Table: model.TableName, Operator: gDto.FilterOperatorEq, Value: true},
		},
	}

	trains, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return res, failure.GatewayTimeout("train lookup timed out") // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to search trains")

		return res, fmt.Errorf("failed to search trains: %w", err)
	}

	weekday := int(journeyDate.Weekday())

	res.Trains = []dto.TrainResponse{}

	for _, train := range trains {
		if !train.RunsOn(weekday) {
			continue
		}

		classes, err := s.repo.GetClasses(ctx, train.Number)
		if err != nil {
			if errors.Is(err, context.DeadlineExceeded) {
				return res, failure.GatewayTimeout("train lookup timed out") // nolint:wrapcheck
			}

			log.Error().Err(err).Msg("failed to get train classes")

			return res, fmt.Errorf("failed to get train classes: %w", err)
		}

		if req.TravelClass != constant.Empty && !hasClass(classes, req.TravelClass) {
			continue
		}

		var item dto.TrainResponse
		item.FromModel(train, classes)
		res.Trains = append(res.Trains, item)
	}

	res.TotalData = len(res.Trains)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save train search to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, number string) (res dto.TrainResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetTrain, number)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for train")

		return res, nil
	}

	ctx, cancel := context.WithTimeout(ctx, s.cfg.Booking.LookupTimeout)
	defer cancel()

	train, err := s.repo.Get(ctx, shared.FilterByID(number, model.FieldNumber, model.TableName))
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return res, failure.GatewayTimeout("train lookup timed out") // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to get train")

		return res, fmt.Errorf("failed to get train: %w", err)
	}

	if train.Number == constant.Empty {
		return res, failure.NotFound(fmt.Sprintf("train %s not found", number)) // nolint:wrapcheck
	}

	classes, err := s.repo.GetClasses(ctx, train.Number)
	if err != nil {
		log.Error().Err(err).Msg("failed to get train classes")

		return res, fmt.Errorf("failed to get train classes: %w", err)
	}

	res.FromModel(train, classes)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save train to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Register(ctx context.Context, req dto.RegisterTrainRequest) (res dto.TrainResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Register")
	defer scope.End()
	defer scope.TraceIfError(err)

	exists, err := s.repo.Exist(ctx, shared.FilterByID(req.Number, model.FieldNumber, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check train existence")

		return res, fmt.Errorf("failed to check train existence: %w", err)
	}

	if exists {
		return res, failure.Conflict(fmt.Sprintf("train %s is already registered", req.Number)) // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserEmail).(string)
	if user == constant.Empty {
		user = constant.ContextGuest
	}

	train, classes := req.ToModel(user)

	if err = s.repo.Insert(ctx, train); err != nil {
		log.Error().Err(err).Msg("failed to insert train")

		return res, fmt.Errorf("failed to insert train: %w", err)
	}

	for _, class := range classes {
		if err = s.repo.InsertClass(ctx, class); err != nil {
			log.Error().Err(err).Msg("failed to insert train class")

			return res, fmt.Errorf("failed to insert train class: %w", err)
		}
	}

	res.FromModel(train, classes)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetTrain)
		shared.InvalidateCaches(c, s.cache, cacheSearchTrains)
	}()

	return res, nil
}

func hasClass(classes []model.ClassInventory, travelClass string) bool {
	for _, class := range classes {
		if class.TravelClass == travelClass {
			return true
		}
	}

	return false
}
