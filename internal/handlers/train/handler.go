package train

import (
	"net/http"

	"chukchukgo/infras/otel"
	"chukchukgo/internal/domains/train/model/dto"
	"chukchukgo/internal/domains/train/service"
	"chukchukgo/shared/constant"
	"chukchukgo/shared/validator"
	"chukchukgo/transport/http/middleware"
	"chukchukgo/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Train
	auth    middleware.AuthRole
	otel    otel.Otel
}

func New(service service.Train, auth middleware.AuthRole, otel otel.Otel) Handler {
	return Handler{
		service: service,
		auth:    auth,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/trains", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.SearchTrains)
		routerGroup.Get("/{number}", handler.GetTrainByNumber)
		routerGroup.With(handler.auth.Auth, handler.auth.RequireRole(constant.RoleAdmin)).Post("/", handler.RegisterTrain)
	})
}

// SearchTrains lists trains between two stations on a date.
// @Summary Search trains
// @Description Search trains by origin, destination and journey date, optionally narrowed to one class.
// @Tags Train
// @Produce json
// @Param from query string true "Origin station code"
// @Param to query string true "Destination station code"
// @Param date query string true "Journey date (YYYY-MM-DD)"
// @Param class query string false "Travel class"
// @Success 200 {object} dto.SearchTrainsResponse
// @Failure 400 {object} response.Error
// @Failure 504 {object} response.Error
// @Router /v1/trains [get]
func (handler *Handler) SearchTrains(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SearchTrains")
	defer scope.End()

	query := request.URL.Query()

	req := dto.SearchTrainsRequest{
		FromStation: query.Get("from"),
		ToStation:   query.Get("to"),
		JourneyDate: query.Get("date"),
		TravelClass: query.Get("class"),
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate search query")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Search(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to search trains")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetTrainByNumber looks a train up with its class availability.
// @Summary Get train by number
// @Description Retrieve a train and its bookable classes.
// @Tags Train
// @Produce json
// @Param number path string true "Train number"
// @Success 200 {object} dto.TrainResponse
// @Failure 404 {object} response.Error
// @Router /v1/trains/{number} [get]
func (handler *Handler) GetTrainByNumber(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTrainByNumber")
	defer scope.End()

	number := chi.URLParam(request, constant.RequestParamTrainNumber)

	res, err := handler.service.Get(ctx, number)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get train")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// RegisterTrain adds a train and its class inventory to the catalog.
// @Summary Register a train
// @Description Register a new train with its bookable classes. Admin only.
// @Tags Train
// @Accept json
// @Produce json
// @Param request body dto.RegisterTrainRequest true "Register Train Request"
// @Success 201 {object} dto.TrainResponse
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/trains [post]
// @Security BearerAuth
func (handler *Handler) RegisterTrain(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RegisterTrain")
	defer scope.End()

	req := dto.RegisterTrainRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Register(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to register train")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusCreated, res)
}
