package dto

import "time"

const (
	EventBankLinked    = "bank.linked"
	EventWalletPayment = "wallet.payment"
)

type BankLinkedEvent struct {
	Type          string    `json:"type"`
	UniqueID      string    `json:"unique_id"`
	BankCode      string    `json:"bank_code"`
	AccountNumber string    `json:"account_number"`
	IFSC          string    `json:"ifsc"`
	LinkedOn      time.Time `json:"linked_on"`
}

type WalletPaymentEvent struct {
	Type          string    `json:"type"`
	UniqueID      string    `json:"unique_id"`
	TransactionID string    `json:"transaction_id"`
	Receiver      string    `json:"receiver"`
	Amount        string    `json:"amount"`
	Status        string    `json:"status"`
	At            time.Time `json:"at"`
}

// EventEnvelope is decoded first to route a message by type.
type EventEnvelope struct {
	Type     string `json:"type"`
	UniqueID string `json:"unique_id"`
}
