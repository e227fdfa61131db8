package dto

type ProcessPaymentRequest struct {
	Amount     float64 `json:"amount"      validate:"required,gt=0"`
	Method     string  `json:"method"      validate:"required,oneof=card upi netbanking wallet"`
	CardNumber string  `json:"card_number" validate:"omitempty,min=12,max=19,numeric"`
	ExpiryDate string  `json:"expiry_date" validate:"omitempty,len=5"`
	CVV        string  `json:"cvv"         validate:"omitempty,min=3,max=4,numeric"`
	CardName   string  `json:"card_name"   validate:"omitempty,max=100"`
	UPIID      string  `json:"upi_id"      validate:"omitempty,max=100"`
	Bank       string  `json:"bank"        validate:"omitempty,max=50"`
	WalletType string  `json:"wallet_type" validate:"omitempty,max=50"`
}

type ProcessPaymentResponse struct {
	Success   bool    `json:"success"`
	PaymentID string  `json:"payment_id,omitempty"`
	TxnID     string  `json:"txn_id,omitempty"`
	Amount    float64 `json:"amount"`
	Method    string  `json:"method"`
	Message   string  `json:"message,omitempty"`
}
