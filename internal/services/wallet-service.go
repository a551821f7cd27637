package services

import (
	"encoding/json"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/Gayatri-ch/UniPay/internal/domain"
	"github.com/Gayatri-ch/UniPay/internal/dto"
	"github.com/Gayatri-ch/UniPay/internal/interfaces"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	// amounts outside 10^-maxScale .. 10^maxScale magnitudes are rejected
	maxScale     = 18
	maxAmountLen = 64

	rewardThreshold  = 5
	rewardMinAmount  = 50
	rewardPerReached = 25
)

// Ledger is a wallet balance with an append-only history. The balance is
// only changed by AttemptPayment and never goes below zero.
type Ledger struct {
	mu      sync.Mutex
	balance decimal.Decimal
	history []domain.Transaction
	now     func() time.Time
}

func NewLedger(initial decimal.Decimal) *Ledger {
	return &Ledger{balance: initial, now: time.Now}
}

// ParseAmount reads a user-entered amount. Anything that is not a positive
// number is ErrInvalidAmount.
func ParseAmount(raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || len(raw) > maxAmountLen {
		return decimal.Zero, domain.ErrInvalidAmount
	}
	amount, err := decimal.NewFromString(raw)
	if err != nil || !validAmount(amount) {
		return decimal.Zero, domain.ErrInvalidAmount
	}
	return amount, nil
}

// validAmount bounds the exponent so comparisons never rescale to huge
// coefficients.
func validAmount(amount decimal.Decimal) bool {
	exp := amount.Exponent()
	return amount.Sign() > 0 && exp >= -maxScale && exp <= maxScale
}

// AttemptPayment debits amount for receiver. A non-positive amount is
// rejected without touching the history. An amount over the balance is
// recorded as a Failed transaction and the balance is left as is.
func (l *Ledger) AttemptPayment(receiver string, amount decimal.Decimal) (domain.Transaction, error) {
	if !validAmount(amount) {
		return domain.Transaction{}, domain.ErrInvalidAmount
	}
	receiver = strings.TrimSpace(receiver)
	if receiver == "" {
		return domain.Transaction{}, domain.ErrInvalidReceiver
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	tx := domain.Transaction{
		ID:       uuid.NewString(),
		Receiver: receiver,
		Amount:   amount,
		Status:   domain.TransactionSuccess,
		At:       l.now(),
	}
	if amount.GreaterThan(l.balance) {
		tx.Status = domain.TransactionFailed
	} else {
		l.balance = l.balance.Sub(amount)
	}
	l.history = append(l.history, tx)
	return tx, nil
}

func (l *Ledger) Balance() decimal.Decimal {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.balance
}

func (l *Ledger) History() []domain.Transaction {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]domain.Transaction, len(l.history))
	copy(out, l.history)
	return out
}

// Rewards summarises successful payments per receiver, in order of first
// payment. Every 5 payments of at least 50 earn a discount of 25.
func (l *Ledger) Rewards() []domain.RewardSummary {
	threshold := decimal.NewFromInt(rewardMinAmount)
	index := map[string]int{}
	qualifying := map[string]int{}
	out := []domain.RewardSummary{}

	for _, tx := range l.History() {
		if tx.Status != domain.TransactionSuccess {
			continue
		}
		i, ok := index[tx.Receiver]
		if !ok {
			i = len(out)
			index[tx.Receiver] = i
			out = append(out, domain.RewardSummary{Receiver: tx.Receiver, Total: decimal.Zero})
		}
		out[i].Count++
		out[i].Total = out[i].Total.Add(tx.Amount)
		if tx.Amount.GreaterThanOrEqual(threshold) {
			qualifying[tx.Receiver]++
		}
	}
	for i := range out {
		out[i].Points = out[i].Count
		out[i].Discount = decimal.NewFromInt(int64(qualifying[out[i].Receiver] / rewardThreshold * rewardPerReached))
	}
	return out
}

// Summary totals successful spending, overall and per merchant category in
// order of first spend.
func (l *Ledger) Summary() domain.SpendingSummary {
	index := map[string]int{}
	out := domain.SpendingSummary{
		Balance:      l.Balance(),
		TotalExpense: decimal.Zero,
		Categories:   []domain.CategorySpend{},
	}

	for _, tx := range l.History() {
		if tx.Status != domain.TransactionSuccess {
			continue
		}
		out.TotalExpense = out.TotalExpense.Add(tx.Amount)

		category := domain.CategoryFor(tx.Receiver)
		i, ok := index[category]
		if !ok {
			i = len(out.Categories)
			index[category] = i
			out.Categories = append(out.Categories, domain.CategorySpend{Category: category, Total: decimal.Zero})
		}
		out.Categories[i].Total = out.Categories[i].Total.Add(tx.Amount)
	}
	return out
}

type WalletService interface {
	Balance(s *Session) decimal.Decimal
	Pay(s *Session, receiver, rawAmount string) (domain.Transaction, error)
	History(s *Session) []domain.Transaction
	Rewards(s *Session) []domain.RewardSummary
	Summary(s *Session) domain.SpendingSummary
}

type walletService struct {
	producer interfaces.ProducerHandler
}

func NewWalletService(producer interfaces.ProducerHandler) WalletService {
	return &walletService{producer: producer}
}

func (w *walletService) Balance(s *Session) decimal.Decimal {
	return s.ledger.Balance()
}

func (w *walletService) Pay(s *Session, receiver, rawAmount string) (domain.Transaction, error) {
	amount, err := ParseAmount(rawAmount)
	if err != nil {
		return domain.Transaction{}, err
	}

	s.mu.Lock()
	tx, err := s.ledger.AttemptPayment(receiver, amount)
	s.mu.Unlock()
	if err != nil {
		return domain.Transaction{}, err
	}

	w.publish(s.UniqueID, tx)
	return tx, nil
}

func (w *walletService) History(s *Session) []domain.Transaction {
	return s.ledger.History()
}

func (w *walletService) Rewards(s *Session) []domain.RewardSummary {
	return s.ledger.Rewards()
}

func (w *walletService) Summary(s *Session) domain.SpendingSummary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.Summary()
}

func (w *walletService) publish(uniqueID string, tx domain.Transaction) {
	if w.producer == nil {
		return
	}
	payload, err := json.Marshal(dto.WalletPaymentEvent{
		Type:          dto.EventWalletPayment,
		UniqueID:      uniqueID,
		TransactionID: tx.ID,
		Receiver:      tx.Receiver,
		Amount:        tx.Amount.String(),
		Status:        string(tx.Status),
		At:            tx.At,
	})
	if err != nil {
		log.Printf("encode payment event: %v", err)
		return
	}
	if err := w.producer.PublishMessage([]byte(dto.EventWalletPayment), payload); err != nil {
		log.Printf("publish payment event: %v", err)
	}
}
