package dto

import (
	"bytes"
	"encoding/json"

	"github.com/Gayatri-ch/UniPay/internal/domain"
)

// AmountText is an amount as the client sent it, either a JSON string or a
// JSON number. Parsing into a decimal happens in the wallet service.
type AmountText string

func (a *AmountText) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case bytes.Equal(b, []byte("null")):
		*a = ""
		return nil
	case len(b) > 0 && b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return domain.ErrInvalidAmount
		}
		*a = AmountText(s)
		return nil
	default:
		var n json.Number
		if err := json.Unmarshal(b, &n); err != nil {
			return domain.ErrInvalidAmount
		}
		*a = AmountText(n.String())
		return nil
	}
}

type PaymentRequest struct {
	Receiver string     `json:"receiver" validate:"required,max=100"`
	Amount   AmountText `json:"amount"`
}

type WalletResponse struct {
	Balance  string `json:"balance"`
	Currency string `json:"currency"`
}
