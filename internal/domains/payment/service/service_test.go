package service_test

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"chukchukgo/config"
	"chukchukgo/infras/otel/mocks"
	"chukchukgo/internal/domains/payment/model/dto"
	"chukchukgo/internal/domains/payment/service"
	"chukchukgo/shared/failure"
)

func always(outcome bool) service.Decider {
	return func() bool { return outcome }
}

func cardRequest() dto.ProcessPaymentRequest {
	return dto.ProcessPaymentRequest{
		Amount:     3735.00,
		Method:     "card",
		CardNumber: "4111111111111111",
		ExpiryDate: "12/28",
		CVV:        "123",
		CardName:   "Rahul Sharma",
	}
}

func TestPaymentService_Process(t *testing.T) {
	cfg := &config.Config{}

	t.Run("approved card payment issues payment and txn IDs", func(t *testing.T) {
		svc := service.NewWithDecider(cfg, mocks.NewOtel(), always(true))

		res, err := svc.Process(context.Background(), cardRequest())

		assert.NoError(t, err)
		assert.True(t, res.Success)
		assert.True(t, strings.HasPrefix(res.PaymentID, "pay_"))
		assert.True(t, strings.HasPrefix(res.TxnID, "txn_"))
		assert.Len(t, res.PaymentID, len("pay_")+16)
		assert.Len(t, res.TxnID, len("txn_")+14)
	})

	t.Run("declined payment carries a method specific message", func(t *testing.T) {
		svc := service.NewWithDecider(cfg, mocks.NewOtel(), always(false))

		res, err := svc.Process(context.Background(), cardRequest())

		assert.NoError(t, err)
		assert.False(t, res.Success)
		assert.Empty(t, res.PaymentID)
		assert.Contains(t, res.Message, "Card")
	})

	t.Run("card payment without card fields is rejected", func(t *testing.T) {
		svc := service.NewWithDecider(cfg, mocks.NewOtel(), always(true))

		_, err := svc.Process(context.Background(), dto.ProcessPaymentRequest{Amount: 100, Method: "card"})

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		assert.Contains(t, err.Error(), "card_number")
	})

	t.Run("upi payment requires the upi id", func(t *testing.T) {
		svc := service.NewWithDecider(cfg, mocks.NewOtel(), always(true))

		_, err := svc.Process(context.Background(), dto.ProcessPaymentRequest{Amount: 100, Method: "upi"})

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "upi_id")
	})

	t.Run("wallet payment with a wallet type goes through", func(t *testing.T) {
		svc := service.NewWithDecider(cfg, mocks.NewOtel(), always(true))

		res, err := svc.Process(context.Background(), dto.ProcessPaymentRequest{
			Amount:     685.00,
			Method:     "wallet",
			WalletType: "paytm",
		})

		assert.NoError(t, err)
		assert.True(t, res.Success)
	})
}
