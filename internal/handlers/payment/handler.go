package payment

import (
	"net/http"

	"chukchukgo/infras/otel"
	"chukchukgo/internal/domains/payment/model/dto"
	"chukchukgo/internal/domains/payment/service"
	"chukchukgo/shared/constant"
	"chukchukgo/shared/validator"
	"chukchukgo/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Payment
	otel    otel.Otel
}

func New(service service.Payment, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/payments", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.ProcessPayment)
	})
}

// ProcessPayment runs a payment attempt for a pending booking.
// @Summary Process a payment
// @Description Validate the payment instrument and attempt the charge.
// @Tags Payment
// @Accept json
// @Produce json
// @Param request body dto.ProcessPaymentRequest true "Process Payment Request"
// @Success 200 {object} dto.ProcessPaymentResponse
// @Failure 400 {object} response.Error
// @Router /v1/payments [post]
func (handler *Handler) ProcessPayment(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ProcessPayment")
	defer scope.End()

	req := dto.ProcessPaymentRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Process(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to process payment")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}
