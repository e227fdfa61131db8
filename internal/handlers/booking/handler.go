package booking

import (
	"net/http"

	"chukchukgo/infras/otel"
	"chukchukgo/internal/domains/booking/model/dto"
	"chukchukgo/internal/domains/booking/service"
	"chukchukgo/shared/constant"
	gDto "chukchukgo/shared/dto"
	"chukchukgo/shared/failure"
	"chukchukgo/shared/validator"
	"chukchukgo/transport/http/middleware"
	"chukchukgo/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Booking
	auth    middleware.AuthRole
	otel    otel.Otel
}

func New(service service.Booking, auth middleware.AuthRole, otel otel.Otel) Handler {
	return Handler{
		service: service,
		auth:    auth,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateBooking)
		routerGroup.With(handler.auth.Auth).Get("/mybookings", handler.GetMyBookings)
		routerGroup.Get("/{pnr}", handler.GetBookingByPNR)
		routerGroup.Post("/{pnr}/cancel", handler.CancelBooking)
	})
}

// CreateBooking books a journey for up to six passengers.
// @Summary Create a new booking
// @Description Book a train journey and receive a PNR locator.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Create Booking Request"
// @Success 201 {object} dto.CreateBookingResponse "Booking created successfully"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings [post]
func (handler *Handler) CreateBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	req := dto.CreateBookingRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create booking")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Booking created with PNR " + res.PNR)

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetBookingByPNR looks a booking up by its locator.
// @Summary Get booking by PNR
// @Description Retrieve a booking and its passenger statuses by PNR.
// @Tags Booking
// @Produce json
// @Param pnr path string true "PNR locator"
// @Success 200 {object} response.Data[dto.BookingResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/bookings/{pnr} [get]
func (handler *Handler) GetBookingByPNR(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingByPNR")
	defer scope.End()

	pnrCode := chi.URLParam(request, constant.RequestParamPNR)

	res, err := handler.service.Get(ctx, pnrCode)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get booking")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetMyBookings lists the bookings of the authenticated user.
// @Summary Get my bookings
// @Description Retrieve bookings made with the authenticated user's email.
// @Tags Booking
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} dto.GetBookingsResponse
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/mybookings [get]
// @Security BearerAuth
func (handler *Handler) GetMyBookings(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMyBookings")
	defer scope.End()

	email, _ := ctx.Value(constant.ContextKeyUserEmail).(string)
	if email == constant.Empty {
		err := failure.Unauthorized("Missing user identity")
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(request, true)

	res, err := handler.service.GetAllByEmail(ctx, email, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// CancelBooking cancels a booking and reports the refund.
// @Summary Cancel a booking
// @Description Cancel a booking identified by PNR after verifying the contact email.
// @Tags Booking
// @Accept json
// @Produce json
// @Param pnr path string true "PNR locator"
// @Param request body dto.CancelBookingRequest true "Cancel Booking Request"
// @Success 200 {object} dto.CancelBookingResponse
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/bookings/{pnr}/cancel [post]
func (handler *Handler) CancelBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CancelBooking")
	defer scope.End()

	pnrCode := chi.URLParam(request, constant.RequestParamPNR)

	req := dto.CancelBookingRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Cancel(ctx, pnrCode, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to cancel booking")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Booking " + pnrCode + " cancelled")

	response.WithJSON(writer, http.StatusOK, res)
}
