package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"

	"chukchukgo/config"
	"chukchukgo/infras/otel"
	"chukchukgo/internal/domains/payment/model/dto"
	"chukchukgo/shared/constant"
	"chukchukgo/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	MethodCard       = "card"
	MethodUPI        = "upi"
	MethodNetbanking = "netbanking"
	MethodWallet     = "wallet"
)

const (
	paymentIDLength = 16
	txnIDLength     = 14

	idAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
)

// Decider resolves whether a simulated payment attempt goes through.
type Decider func() bool

type Payment interface {
	Process(ctx context.Context, req dto.ProcessPaymentRequest) (dto.ProcessPaymentResponse, error)
}

type serviceImpl struct {
	cfg    *config.Config
	otel   otel.Otel
	decide Decider
}

func New(cfg *config.Config, otel otel.Otel) Payment {
	return NewWithDecider(cfg, otel, func() bool {
		return rand.Float64() < cfg.Payment.SuccessRate
	})
}

// NewWithDecider allows pinning the payment outcome, mainly for tests.
func NewWithDecider(cfg *config.Config, otel otel.Otel, decide Decider) Payment {
	return &serviceImpl{
		cfg:    cfg,
		otel:   otel,
		decide: decide,
	}
}

func (s *serviceImpl) Process(ctx context.Context, req dto.ProcessPaymentRequest) (res dto.ProcessPaymentResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Process")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validateMethodFields(req); err != nil {
		return res, err
	}

	res.Amount = req.Amount
	res.Method = req.Method

	if !s.decide() {
		res.Message = declineMessage(req.Method)

		log.Warn().Str("method", req.Method).Msg("payment attempt declined")

		return res, nil
	}

	res.Success = true
	res.PaymentID = "pay_" + randomID(paymentIDLength)
	res.TxnID = "txn_" + randomID(txnIDLength)

	return res, nil
}

func validateMethodFields(req dto.ProcessPaymentRequest) error {
	var missing []string

	switch req.Method {
	case MethodCard:
		if req.CardNumber == constant.Empty {
			missing = append(missing, "card_number")
		}

		if req.ExpiryDate == constant.Empty {
			missing = append(missing, "expiry_date")
		}

		if req.CVV == constant.Empty {
			missing = append(missing, "cvv")
		}

		if req.CardName == constant.Empty {
			missing = append(missing, "card_name")
		}
	case MethodUPI:
		if req.UPIID == constant.Empty {
			missing = append(missing, "upi_id")
		}
	case MethodNetbanking:
		if req.Bank == constant.Empty {
			missing = append(missing, "bank")
		}
	case MethodWallet:
		if req.WalletType == constant.Empty {
			missing = append(missing, "wallet_type")
		}
	}

	if len(missing) > 0 {
		return failure.BadRequestFromString(fmt.Sprintf("missing required fields for %s payment: %s", req.Method, strings.Join(missing, ", "))) // nolint:wrapcheck
	}

	return nil
}

func declineMessage(method string) string {
	switch method {
	case MethodCard:
		return "Card declined by the issuing bank"
	case MethodUPI:
		return "UPI transaction failed, please retry"
	case MethodNetbanking:
		return "Net banking session could not be established"
	default:
		return "Wallet balance could not be charged"
	}
}

func randomID(length int) string {
	b := make([]byte, length)
	for i := range b {
		b[i] = idAlphabet[rand.IntN(len(idAlphabet))]
	}

	return string(b)
}
