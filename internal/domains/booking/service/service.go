package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"chukchukgo/config"
	"chukchukgo/infras/kafka"
	"chukchukgo/infras/otel"
	"chukchukgo/internal/domains/booking/eticket"
	"chukchukgo/internal/domains/booking/model"
	"chukchukgo/internal/domains/booking/model/dto"
	"chukchukgo/internal/domains/booking/policy"
	"chukchukgo/internal/domains/booking/repository"
	trainModel "chukchukgo/internal/domains/train/model"
	trainRepository "chukchukgo/internal/domains/train/repository"
	"chukchukgo/shared"
	"chukchukgo/shared/cache"
	"chukchukgo/shared/constant"
	gDto "chukchukgo/shared/dto"
	"chukchukgo/shared/failure"
	"chukchukgo/shared/pnr"
	"chukchukgo/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"
)

var errLocatorExhausted = errors.New("could not issue a unique booking locator")

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.CreateBookingResponse, error)
	Get(ctx context.Context, pnrCode string) (dto.BookingResponse, error)
	GetAllByEmail(ctx context.Context, email string, params gDto.QueryParams) (dto.GetBookingsResponse, error)
	Cancel(ctx context.Context, pnrCode string, req dto.CancelBookingRequest) (dto.CancelBookingResponse, error)
}

type serviceImpl struct {
	repo      repository.Booking
	trainRepo trainRepository.Train
	cfg       *config.Config
	cache     cache.RedisCache
	kafka     kafka.Client
	eticket   eticket.Service
	otel      otel.Otel
}

func New(repo repository.Booking, trainRepo trainRepository.Train, cfg *config.Config, cache cache.RedisCache, kafkaClient kafka.Client, eticket eticket.Service, otel otel.Otel) Booking {
	return &serviceImpl{
		repo:      repo,
		trainRepo: trainRepo,
		cfg:       cfg,
		cache:     cache,
		kafka:     kafkaClient,
		eticket:   eticket,
		otel:      otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.CreateBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validatePassengers(req.Passengers); err != nil {
		return res, err
	}

	journeyDate, err := time.ParseInLocation(constant.JourneyDateFormat, req.JourneyDate, timezone.GetLocation())
	if err != nil {
		return res, failure.BadRequestFromString("journey date must be in YYYY-MM-DD format") // nolint:wrapcheck
	}

	now := timezone.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, timezone.GetLocation())
	if journeyDate.Before(today) {
		return res, failure.BadRequestFromString("journey date cannot be in the past") // nolint:wrapcheck
	}

	train, err := s.trainRepo.Get(ctx, shared.FilterByID(req.TrainNumber, trainModel.FieldNumber, trainModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get train for booking")

		return res, fmt.Errorf("failed to get train: %w", err)
	}

	if train.Number == constant.Empty {
		return res, failure.BadRequestFromString(fmt.Sprintf("train %s does not exist", req.TrainNumber)) // nolint:wrapcheck
	}

	if !train.RunsOn(int(journeyDate.Weekday())) {
		return res, failure.BadRequestFromString(fmt.Sprintf("train %s does not run on %s", train.Number, req.JourneyDate)) // nolint:wrapcheck
	}

	classes, err := s.trainRepo.GetClasses(ctx, train.Number)
	if err != nil {
		log.Error().Err(err).Msg("failed to get train classes for booking")

		return res, fmt.Errorf("failed to get train classes: %w", err)
	}

	inv, err := policy.SelectClass(classes, req.TravelClass)
	if err != nil {
		return res, err
	}

	totalFare, err := policy.ComputeFare(classes, req.TravelClass, len(req.Passengers))
	if err != nil {
		return res, err
	}

	user, _ := ctx.Value(constant.ContextKeyUserEmail).(string)
	if user == constant.Empty {
		user = req.ContactDetails.Email
	}

	booking := req.ToModel(train.Name, train.FromStation, train.ToStation, train.DepartureTime, train.ArrivalTime, s.cfg.Booking.DefaultQuota, totalFare, user)

	assigned, aggregate := policy.Assign(booking.Passengers, inv)
	booking.Passengers = assigned
	booking.BookingStatus = aggregate

	if err = s.persistWithLocator(ctx, &booking); err != nil {
		return res, err
	}

	go s.afterCreate(context.WithoutCancel(ctx), booking)

	return dto.CreateBookingResponse{
		Success: true,
		PNR:     booking.PNR,
		Status:  booking.BookingStatus,
	}, nil
}

// persistWithLocator draws fresh locators until the insert commits or the
// attempt budget runs out. Only unique violations are retried.
func (s *serviceImpl) persistWithLocator(ctx context.Context, booking *model.Booking) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".persistWithLocator")
	defer scope.End()
	defer scope.TraceIfError(err)

	for attempt := 0; attempt < s.cfg.Booking.MaxLocatorAttempts; attempt++ {
		booking.PNR = pnr.Generate()
		for i := range booking.Passengers {
			booking.Passengers[i].PNR = booking.PNR
		}

		err = s.repo.CreateWithPassengers(ctx, *booking)
		if err == nil {
			return nil
		}

		if !repository.IsUniqueViolation(err) {
			log.Error().Err(err).Msg("failed to create booking")

			return fmt.Errorf("failed to create booking: %w", err)
		}

		log.Warn().Str("pnr", booking.PNR).Int("attempt", attempt+1).Msg("booking locator collision, retrying")
	}

	log.Error().Int("attempts", s.cfg.Booking.MaxLocatorAttempts).Msg("booking locator space exhausted")

	return failure.InternalError(errLocatorExhausted) // nolint:wrapcheck
}

func (s *serviceImpl) afterCreate(ctx context.Context, booking model.Booking) {
	event := dto.BookingCreatedEvent{
		PNR:            booking.PNR,
		TrainNumber:    booking.TrainNumber,
		TravelClass:    booking.TravelClass,
		JourneyDate:    booking.JourneyDate.Format(constant.JourneyDateFormat),
		TotalFare:      booking.TotalFare,
		BookingStatus:  booking.BookingStatus,
		PassengerCount: len(booking.Passengers),
		OccurredAt:     timezone.Now(),
	}

	if err := s.kafka.SendMessages(ctx, s.cfg.Kafka.Topics.BookingCreated, kafka.Message{Key: booking.PNR, Value: event}); err != nil {
		log.Error().Err(err).Str("pnr", booking.PNR).Msg("failed to publish booking created event")
	}

	if s.cfg.External.S3.Enable {
		if _, err := s.eticket.Archive(ctx, booking); err != nil {
			log.Error().Err(err).Str("pnr", booking.PNR).Msg("failed to archive e-ticket")
		}
	}

	shared.InvalidateCaches(ctx, s.cache, cacheGetAllBooking)
	shared.InvalidateCaches(ctx, s.cache, cacheCountBooking)
}

func (s *serviceImpl) Get(ctx context.Context, pnrCode string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !pnr.IsValid(pnrCode) {
		return res, failure.BadRequestFromString("PNR must be a 10 digit number") // nolint:wrapcheck
	}

	cacheKey := shared.BuildCacheKey(cacheGetBooking, pnrCode)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	booking, err := s.fetchBooking(ctx, pnrCode)
	if err != nil {
		return res, err
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetAllByEmail(ctx context.Context, email string, params gDto.QueryParams) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAllByEmail")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldContactEmail,
				Table:    model.TableName,
				Operator: gDto.FilterOperatorEq,
				Value:    email,
			},
		},
	}

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, params, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	bookings, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	for i := range bookings {
		passengers, err := s.repo.GetPassengers(ctx, bookings[i].PNR)
		if err != nil {
			log.Error().Err(err).Msg("failed to get booking passengers")

			return res, fmt.Errorf("failed to get booking passengers: %w", err)
		}

		bookings[i].Passengers = passengers
	}

	res.FromModels(bookings, total)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Cancel(ctx context.Context, pnrCode string, req dto.CancelBookingRequest) (res dto.CancelBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cancel")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !pnr.IsValid(pnrCode) {
		return res, failure.BadRequestFromString("PNR must be a 10 digit number") // nolint:wrapcheck
	}

	booking, err := s.fetchBooking(ctx, pnrCode)
	if err != nil {
		return res, err
	}

	// Contact email acts as the cancellation credential and must match exactly.
	if req.Email != booking.ContactEmail {
		return res, failure.Forbidden("email does not match the booking contact") // nolint:wrapcheck
	}

	if !booking.CanCancel || booking.BookingStatus == model.StatusCancelled {
		return res, failure.Conflict("booking is no longer cancellable") // nolint:wrapcheck
	}

	now := timezone.Now()
	departure := booking.DepartureAt(timezone.GetLocation())
	refund := policy.ComputeRefund(booking.TotalFare, booking.TravelClass, len(booking.Passengers), departure, now)

	mod := map[string]any{
		model.FieldBookingStatus: model.StatusCancelled,
		model.FieldCanCancel:     false,
		"modified_at":            now,
		"modified_by":            req.Email,
	}

	if err = s.repo.Update(ctx, mod, shared.FilterByID(pnrCode, model.FieldPNR, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to cancel booking")

		return res, fmt.Errorf("failed to cancel booking: %w", err)
	}

	go s.afterCancel(context.WithoutCancel(ctx), pnrCode, refund)

	return dto.CancelBookingResponse{
		Success:      true,
		PNR:          pnrCode,
		RefundAmount: refund,
	}, nil
}

func (s *serviceImpl) afterCancel(ctx context.Context, pnrCode string, refund float64) {
	event := dto.BookingCancelledEvent{
		PNR:          pnrCode,
		RefundAmount: refund,
		OccurredAt:   timezone.Now(),
	}

	if err := s.kafka.SendMessages(ctx, s.cfg.Kafka.Topics.BookingCancelled, kafka.Message{Key: pnrCode, Value: event}); err != nil {
		log.Error().Err(err).Str("pnr", pnrCode).Msg("failed to publish booking cancelled event")
	}

	if err := s.cache.Delete(ctx, shared.BuildCacheKey(cacheGetBooking, pnrCode)); err != nil {
		log.Error().Err(err).Msg("failed to drop booking from cache")
	}

	shared.InvalidateCaches(ctx, s.cache, cacheGetAllBooking)
	shared.InvalidateCaches(ctx, s.cache, cacheCountBooking)
}

func (s *serviceImpl) fetchBooking(ctx context.Context, pnrCode string) (model.Booking, error) {
	booking, err := s.repo.Get(ctx, shared.FilterByID(pnrCode, model.FieldPNR, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return booking, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.PNR == constant.Empty {
		return booking, failure.NotFound(fmt.Sprintf("no booking found for PNR %s", pnrCode)) // nolint:wrapcheck
	}

	passengers, err := s.repo.GetPassengers(ctx, pnrCode)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking passengers")

		return booking, fmt.Errorf("failed to get booking passengers: %w", err)
	}

	booking.Passengers = passengers

	return booking, nil
}

func validatePassengers(passengers []dto.PassengerRequest) error {
	if len(passengers) < 1 || len(passengers) > 6 {
		return failure.BadRequestFromString("a booking must carry between 1 and 6 passengers") // nolint:wrapcheck
	}

	for i, p := range passengers {
		if p.Concession != constant.Empty && p.Concession != model.ConcessionNone {
			if p.IDProofType == constant.Empty || p.IDProofNumber == constant.Empty {
				return failure.BadRequestFromString(fmt.Sprintf("passenger %d: concession %s requires an ID proof type and number", i+1, p.Concession)) // nolint:wrapcheck
			}
		}
	}

	return nil
}
